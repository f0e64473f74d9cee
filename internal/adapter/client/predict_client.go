package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/tezansahu/sentiment-analyzer-mcp/internal/domain/service"
)

// PredictRequest represents a request to the sentiment API
type PredictRequest struct {
	Text string `json:"text"`
}

// PredictResponse represents the response from the sentiment API
type PredictResponse struct {
	Sentiment  string   `json:"sentiment"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// PredictClient is an HTTP client for the sentiment API
type PredictClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPredictClient creates a new sentiment API client
func NewPredictClient(baseURL string, timeout time.Duration) *PredictClient {
	return &PredictClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Endpoint returns the base URL of the sentiment API
func (c *PredictClient) Endpoint() string {
	return c.baseURL
}

// Predict sends a single text for sentiment prediction. Failures are
// classified into the service error kinds: HTTP 422 wraps
// ErrUpstreamValidation, any other non-200 wraps ErrUpstreamAPI, and
// transport failures wrap ErrConnection or ErrTimeout. A failed call is
// never retried.
func (c *PredictClient) Predict(ctx context.Context, text string) (*service.Prediction, error) {
	reqBody := PredictRequest{Text: text}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(c.baseURL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decoding
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s", service.ErrUpstreamValidation, string(respBody))
	default:
		return nil, fmt.Errorf("%w: status %d: %s", service.ErrUpstreamAPI, resp.StatusCode, string(respBody))
	}

	var result PredictResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", service.ErrUpstreamAPI, err)
	}

	// Keep the decoded body around for diagnostics
	raw := make(map[string]any)
	_ = json.Unmarshal(respBody, &raw)

	return &service.Prediction{
		Sentiment:  result.Sentiment,
		Confidence: result.Confidence,
		Raw:        raw,
	}, nil
}

func classifyTransportError(baseURL string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", service.ErrTimeout, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %v", service.ErrTimeout, err)
	default:
		return fmt.Errorf("%w at %s: %v", service.ErrConnection, baseURL, err)
	}
}
