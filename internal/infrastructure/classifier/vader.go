package classifier

import (
	"context"
	"math"

	"github.com/jonreiter/govader"

	"github.com/tezansahu/sentiment-analyzer-mcp/internal/domain/service"
)

// VaderClassifier is a lexicon-based backend that needs no model files.
// It keeps the binary positive/negative contract of the ONNX backend and
// is mainly useful for development and tests.
type VaderClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderClassifier creates a new VADER classifier
func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

// Classify scores a single text. A non-negative compound score maps to
// positive, everything else to negative.
func (c *VaderClassifier) Classify(ctx context.Context, text string) (*service.Classification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scores := c.analyzer.PolarityScores(text)

	label := "negative"
	if scores.Compound >= 0 {
		label = "positive"
	}

	return &service.Classification{
		Label: label,
		Score: math.Abs(scores.Compound),
	}, nil
}

// Close is a no-op; VADER holds no runtime resources
func (c *VaderClassifier) Close() error {
	return nil
}
