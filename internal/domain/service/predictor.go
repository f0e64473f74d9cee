package service

import (
	"context"
	"errors"
)

// Error kinds for a single prediction call. Callers classify failures with
// errors.Is; the concrete client wraps these with transport detail.
var (
	// ErrUpstreamValidation means the API rejected the input (HTTP 422)
	ErrUpstreamValidation = errors.New("sentiment API rejected input")

	// ErrUpstreamAPI means the API returned a non-success status
	ErrUpstreamAPI = errors.New("sentiment API request failed")

	// ErrConnection means the API could not be reached at all
	ErrConnection = errors.New("failed to connect to sentiment API")

	// ErrTimeout means the call exceeded its deadline
	ErrTimeout = errors.New("sentiment API request timed out")
)

// Prediction represents one successful response from the sentiment API
type Prediction struct {
	Sentiment  string
	Confidence *float64

	// Raw holds the decoded response body for diagnostics
	Raw map[string]any
}

// Predictor issues a single prediction request to the remote sentiment API
type Predictor interface {
	// Predict classifies one text. The text is assumed non-blank;
	// validation happens upstream of this interface.
	Predict(ctx context.Context, text string) (*Prediction, error)

	// Endpoint returns the base URL of the API this predictor talks to
	Endpoint() string
}
