package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected Sentiment
	}{
		{
			name:     "positive stays positive",
			label:    "positive",
			expected: SentimentPositive,
		},
		{
			name:     "negative stays negative",
			label:    "negative",
			expected: SentimentNegative,
		},
		{
			name:     "unknown label maps to negative",
			label:    "neutral",
			expected: SentimentNegative,
		},
		{
			name:     "case-sensitive match",
			label:    "POSITIVE",
			expected: SentimentNegative,
		},
		{
			name:     "empty label maps to negative",
			label:    "",
			expected: SentimentNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeLabel(tt.label))
		})
	}
}

func TestNewSentimentResult(t *testing.T) {
	confidence := 0.93
	raw := map[string]any{"sentiment": "positive", "confidence": 0.93}

	result := NewSentimentResult("great stuff", "positive", &confidence, raw)

	assert.Equal(t, "great stuff", result.Text)
	assert.Equal(t, SentimentPositive, result.Sentiment)
	assert.Equal(t, &confidence, result.Confidence)
	assert.Equal(t, raw, result.APIResponse)
	assert.False(t, result.IsError())
}

func TestNewErrorResult(t *testing.T) {
	result := NewErrorResult("bad item", errors.New("connection refused"))

	assert.Equal(t, "bad item", result.Text)
	assert.Equal(t, SentimentError, result.Sentiment)
	assert.Nil(t, result.Confidence)
	assert.Equal(t, "connection refused", result.APIResponse["error"])
	assert.True(t, result.IsError())
}
