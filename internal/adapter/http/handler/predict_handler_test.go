package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tezansahu/sentiment-analyzer-mcp/internal/domain/service"
	"github.com/tezansahu/sentiment-analyzer-mcp/internal/infrastructure/classifier"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// brokenClassifier always fails inference
type brokenClassifier struct{}

func (brokenClassifier) Classify(context.Context, string) (*service.Classification, error) {
	return nil, errors.New("onnx runtime exploded")
}
func (brokenClassifier) Close() error { return nil }

func predictRouter(c service.Classifier) *gin.Engine {
	router := gin.New()
	h := NewPredictHandler(c, zap.NewNop())
	router.POST("/predict", h.Predict)
	return router
}

func doPredict(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest("POST", "/predict", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPredictHandler_Predict(t *testing.T) {
	router := predictRouter(classifier.NewVaderClassifier())

	t.Run("classifies positive text", func(t *testing.T) {
		w := doPredict(t, router, `{"text":"I love this product! It works perfectly."}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp PredictResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "positive", resp.Sentiment)
	})

	t.Run("classifies negative text", func(t *testing.T) {
		w := doPredict(t, router, `{"text":"This is terrible, I hate it."}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp PredictResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "negative", resp.Sentiment)
	})

	t.Run("rejects blank text with 422", func(t *testing.T) {
		for _, body := range []string{`{"text":""}`, `{"text":"   "}`, `{}`} {
			w := doPredict(t, router, body)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, w.Body.String(), "detail")
		}
	})

	t.Run("rejects malformed JSON with 422", func(t *testing.T) {
		w := doPredict(t, router, `{"text":`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("returns 500 on inference failure", func(t *testing.T) {
		w := doPredict(t, predictRouter(brokenClassifier{}), `{"text":"anything"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "model processing failed")
	})
}
