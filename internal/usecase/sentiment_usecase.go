package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tezansahu/sentiment-analyzer-mcp/internal/domain/entity"
	"github.com/tezansahu/sentiment-analyzer-mcp/internal/domain/service"
)

// MaxBatchSize caps a single batch request
const MaxBatchSize = 50

// healthProbeText is the fixed sentinel text sent by the health prober
const healthProbeText = "This is a test"

// Error definitions for sentiment usecase
var (
	ErrEmptyText     = errors.New("text cannot be empty")
	ErrEmptyBatch    = errors.New("text list cannot be empty")
	ErrBatchTooLarge = fmt.Errorf("maximum %d texts allowed per batch", MaxBatchSize)
)

// SentimentUsecase defines the interface for sentiment analysis business logic
type SentimentUsecase interface {
	// Analyze classifies a single text, propagating any failure to the caller
	Analyze(ctx context.Context, text string) (*entity.SentimentResult, error)

	// AnalyzeBatch classifies up to MaxBatchSize texts concurrently. After
	// the batch preconditions pass it always returns exactly one result per
	// input, substituting a sentinel error result for each failed item.
	AnalyzeBatch(ctx context.Context, texts []string) ([]*entity.SentimentResult, error)

	// CheckHealth probes the sentiment API. It never fails; every outcome
	// is folded into the returned status.
	CheckHealth(ctx context.Context) *entity.HealthStatus

	// Endpoint returns the base URL of the sentiment API
	Endpoint() string
}

type sentimentUsecase struct {
	predictor    service.Predictor
	itemTimeout  time.Duration
	probeTimeout time.Duration
	logger       *zap.Logger
}

// NewSentimentUsecase creates a new sentiment usecase. itemTimeout bounds
// each batch item independently; probeTimeout bounds the health probe.
func NewSentimentUsecase(predictor service.Predictor, itemTimeout, probeTimeout time.Duration, logger *zap.Logger) SentimentUsecase {
	return &sentimentUsecase{
		predictor:    predictor,
		itemTimeout:  itemTimeout,
		probeTimeout: probeTimeout,
		logger:       logger,
	}
}

func (u *sentimentUsecase) Analyze(ctx context.Context, text string) (*entity.SentimentResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	prediction, err := u.predictor.Predict(ctx, text)
	if err != nil {
		return nil, err
	}

	return entity.NewSentimentResult(text, prediction.Sentiment, prediction.Confidence, prediction.Raw), nil
}

func (u *sentimentUsecase) AnalyzeBatch(ctx context.Context, texts []string) ([]*entity.SentimentResult, error) {
	// Both precondition checks happen before any network activity
	if len(texts) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(texts) > MaxBatchSize {
		return nil, ErrBatchTooLarge
	}

	results := make([]*entity.SentimentResult, len(texts))

	// Fan out one analysis per text. Each goroutine owns exactly one slot
	// of the results slice, so completion order never affects output order
	// and no locking is needed. A failed item becomes a sentinel result in
	// its slot; it cannot fail the batch.
	var g errgroup.Group
	for i, text := range texts {
		g.Go(func() error {
			itemCtx, cancel := context.WithTimeout(ctx, u.itemTimeout)
			defer cancel()

			result, err := u.Analyze(itemCtx, text)
			if err != nil {
				u.logger.Warn("batch item failed",
					zap.Int("index", i),
					zap.Error(err))
				results[i] = entity.NewErrorResult(text, err)
				return nil
			}
			results[i] = result
			return nil
		})
	}
	_ = g.Wait()

	return results, nil
}

func (u *sentimentUsecase) Endpoint() string {
	return u.predictor.Endpoint()
}

func (u *sentimentUsecase) CheckHealth(ctx context.Context) *entity.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, u.probeTimeout)
	defer cancel()

	status := &entity.HealthStatus{APIURL: u.predictor.Endpoint()}

	prediction, err := u.predictor.Predict(ctx, healthProbeText)
	switch {
	case err == nil:
		status.Status = entity.HealthStateHealthy
		status.TestResult = prediction.Raw
	case errors.Is(err, service.ErrTimeout):
		status.Status = entity.HealthStateTimeout
		status.Error = fmt.Sprintf("API request timed out after %s", u.probeTimeout)
	case errors.Is(err, service.ErrConnection):
		status.Status = entity.HealthStateConnectionError
		status.Error = err.Error()
	case errors.Is(err, service.ErrUpstreamValidation), errors.Is(err, service.ErrUpstreamAPI):
		status.Status = entity.HealthStateUnhealthy
		status.Error = err.Error()
	default:
		status.Status = entity.HealthStateError
		status.Error = fmt.Sprintf("Unexpected error: %s", err)
	}

	return status
}
