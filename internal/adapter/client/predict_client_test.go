package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tezansahu/sentiment-analyzer-mcp/internal/domain/service"
)

func TestPredictClient_Predict(t *testing.T) {
	t.Run("successful prediction", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/predict", r.URL.Path)
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req PredictRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "I love this", req.Text)

			w.Header().Set("Content-Type", "application/json")
			err = json.NewEncoder(w).Encode(map[string]any{
				"sentiment":  "positive",
				"confidence": 0.98,
			})
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewPredictClient(server.URL, 5*time.Second)
		result, err := client.Predict(context.Background(), "I love this")

		require.NoError(t, err)
		assert.Equal(t, "positive", result.Sentiment)
		require.NotNil(t, result.Confidence)
		assert.Equal(t, 0.98, *result.Confidence)
		assert.Equal(t, "positive", result.Raw["sentiment"])
	})

	t.Run("prediction without confidence", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte(`{"sentiment":"negative"}`))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewPredictClient(server.URL, 5*time.Second)
		result, err := client.Predict(context.Background(), "this is terrible")

		require.NoError(t, err)
		assert.Equal(t, "negative", result.Sentiment)
		assert.Nil(t, result.Confidence)
	})

	t.Run("validation error on 422", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, err := w.Write([]byte(`{"detail":"Text input is required."}`))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewPredictClient(server.URL, 5*time.Second)
		_, err := client.Predict(context.Background(), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrUpstreamValidation)
		assert.Contains(t, err.Error(), "Text input is required")
	})

	t.Run("api error on 500", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, err := w.Write([]byte("internal error"))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewPredictClient(server.URL, 5*time.Second)
		_, err := client.Predict(context.Background(), "test")

		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrUpstreamAPI)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("connection error when unreachable", func(t *testing.T) {
		// Port reserved and immediately closed, nothing is listening
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		addr := server.URL
		server.Close()

		client := NewPredictClient(addr, 1*time.Second)
		_, err := client.Predict(context.Background(), "test")

		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrConnection)
	})

	t.Run("timeout error on slow upstream", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(2 * time.Second):
			case <-r.Context().Done():
			}
		}))
		defer server.Close()

		client := NewPredictClient(server.URL, 5*time.Second)
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := client.Predict(ctx, "test")

		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrTimeout)
	})

	t.Run("api error on malformed success body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, err := w.Write([]byte("not json"))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewPredictClient(server.URL, 5*time.Second)
		_, err := client.Predict(context.Background(), "test")

		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrUpstreamAPI)
	})
}

func TestPredictClient_Endpoint(t *testing.T) {
	client := NewPredictClient("http://localhost:8000", time.Second)
	assert.Equal(t, "http://localhost:8000", client.Endpoint())
}
