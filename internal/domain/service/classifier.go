package service

import "context"

// Classification represents the raw output of a sentiment model
type Classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier defines the interface for local sentiment classification.
// Implementations load their model once at construction time and are safe
// for concurrent use afterwards.
type Classifier interface {
	// Classify classifies a single text
	Classify(ctx context.Context, text string) (*Classification, error)

	// Close releases model resources
	Close() error
}
