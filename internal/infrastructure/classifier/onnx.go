package classifier

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"go.uber.org/zap"

	"github.com/tezansahu/sentiment-analyzer-mcp/internal/domain/service"
	"github.com/tezansahu/sentiment-analyzer-mcp/internal/infrastructure/config"
)

// ONNXClassifier runs the pretrained sentiment model through an ONNX
// runtime session. The session and pipeline are built once at startup and
// shared by all requests.
type ONNXClassifier struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

// NewONNXClassifier downloads the model if it is not present locally, then
// initializes the runtime session and classification pipeline.
func NewONNXClassifier(cfg *config.ClassifierConfig, log *zap.Logger) (*ONNXClassifier, error) {
	modelPath, err := ensureModel(cfg, log)
	if err != nil {
		return nil, err
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX session: %w", err)
	}

	pipelineCfg := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "sentimentClassificationPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, pipelineCfg)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to initialize sentiment pipeline: %w", err)
	}

	log.Info("Sentiment model loaded", zap.String("path", modelPath))

	return &ONNXClassifier{
		session:  session,
		pipeline: pipeline,
	}, nil
}

// ensureModel returns the local model path, downloading the pretrained
// model on first start.
func ensureModel(cfg *config.ClassifierConfig, log *zap.Logger) (string, error) {
	if err := os.MkdirAll(cfg.ModelDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create model directory: %w", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.ModelDir, "config.json")); err == nil {
		log.Info("Using existing model", zap.String("dir", cfg.ModelDir))
		return cfg.ModelDir, nil
	}

	log.Info("Model not found, downloading...", zap.String("model", cfg.ModelName))
	modelPath, err := hugot.DownloadModel(cfg.ModelName, cfg.ModelDir, hugot.NewDownloadOptions())
	if err != nil {
		return "", fmt.Errorf("failed to download model %s: %w", cfg.ModelName, err)
	}
	log.Info("Model downloaded", zap.String("path", modelPath))

	return modelPath, nil
}

// Classify runs a single text through the sentiment pipeline
func (c *ONNXClassifier) Classify(ctx context.Context, text string) (*service.Classification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	output, err := c.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("model inference failed: %w", err)
	}

	raw := output.GetOutput()
	if len(raw) == 0 {
		return nil, fmt.Errorf("model returned no output")
	}

	predictions, ok := raw[0].([]pipelines.ClassificationOutput)
	if !ok || len(predictions) == 0 {
		return nil, fmt.Errorf("unexpected output format from pipeline")
	}

	best := predictions[0]
	for _, p := range predictions[1:] {
		if p.Score > best.Score {
			best = p
		}
	}

	return &service.Classification{
		Label: strings.ToLower(best.Label),
		Score: float64(best.Score),
	}, nil
}

// Close destroys the runtime session
func (c *ONNXClassifier) Close() error {
	return c.session.Destroy()
}
