package classifier

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tezansahu/sentiment-analyzer-mcp/internal/domain/service"
	"github.com/tezansahu/sentiment-analyzer-mcp/internal/infrastructure/config"
)

// New constructs the configured classifier backend. The model is loaded
// exactly once here; the returned classifier is read-only afterwards and
// must be closed at process exit.
func New(cfg *config.ClassifierConfig, log *zap.Logger) (service.Classifier, error) {
	switch cfg.Backend {
	case "onnx":
		return NewONNXClassifier(cfg, log)
	case "vader":
		return NewVaderClassifier(), nil
	default:
		return nil, fmt.Errorf("unknown classifier backend %q", cfg.Backend)
	}
}
