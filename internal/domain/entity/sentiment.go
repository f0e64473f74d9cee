package entity

// Sentiment represents the predicted sentiment of a text
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentError    Sentiment = "error"
)

// SentimentResult represents the outcome of analyzing a single text.
// It is constructed once per analyzed item and never mutated afterwards.
type SentimentResult struct {
	Text        string         `json:"text"`
	Sentiment   Sentiment      `json:"sentiment"`
	Confidence  *float64       `json:"confidence,omitempty"`
	APIResponse map[string]any `json:"api_response"`
}

// NewSentimentResult creates a SentimentResult from an upstream prediction.
// Any label other than exactly "positive" maps to "negative": the upstream
// model is a binary classifier.
func NewSentimentResult(text, label string, confidence *float64, apiResponse map[string]any) *SentimentResult {
	return &SentimentResult{
		Text:        text,
		Sentiment:   NormalizeLabel(label),
		Confidence:  confidence,
		APIResponse: apiResponse,
	}
}

// NewErrorResult creates a sentinel result for a failed analysis. It stands
// in for the failed item so batch output keeps one entry per input.
func NewErrorResult(text string, err error) *SentimentResult {
	return &SentimentResult{
		Text:        text,
		Sentiment:   SentimentError,
		APIResponse: map[string]any{"error": err.Error()},
	}
}

// NormalizeLabel maps an upstream label into the closed positive/negative set
func NormalizeLabel(label string) Sentiment {
	if label == string(SentimentPositive) {
		return SentimentPositive
	}
	return SentimentNegative
}

// IsError returns true if this result stands in for a failed analysis
func (r *SentimentResult) IsError() bool {
	return r.Sentiment == SentimentError
}
