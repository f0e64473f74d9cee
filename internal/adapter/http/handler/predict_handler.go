package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tezansahu/sentiment-analyzer-mcp/internal/domain/entity"
	"github.com/tezansahu/sentiment-analyzer-mcp/internal/domain/service"
	"github.com/tezansahu/sentiment-analyzer-mcp/internal/infrastructure/metrics"
)

// PredictRequest represents the body of a prediction request
type PredictRequest struct {
	Text string `json:"text"`
}

// PredictResponse represents a successful prediction. This is the wire
// contract the MCP gateway consumes; it stays flat on purpose.
type PredictResponse struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

// PredictHandler handles sentiment prediction requests
type PredictHandler struct {
	classifier service.Classifier
	logger     *zap.Logger
}

// NewPredictHandler creates a new predict handler
func NewPredictHandler(classifier service.Classifier, logger *zap.Logger) *PredictHandler {
	return &PredictHandler{
		classifier: classifier,
		logger:     logger,
	}
}

// Predict handles POST /predict
func (h *PredictHandler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondDetail(c, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		respondDetail(c, http.StatusUnprocessableEntity, "Text input is required.")
		return
	}

	start := time.Now()
	result, err := h.classifier.Classify(c.Request.Context(), req.Text)
	if err != nil {
		metrics.PredictionErrors.Inc()
		h.logger.Error("Model inference failed",
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err))
		respondDetail(c, http.StatusInternalServerError, "model processing failed")
		return
	}
	metrics.PredictionDuration.Observe(time.Since(start).Seconds())

	sentiment := entity.NormalizeLabel(result.Label)
	metrics.PredictionsTotal.WithLabelValues(string(sentiment)).Inc()

	c.JSON(http.StatusOK, PredictResponse{
		Sentiment:  string(sentiment),
		Confidence: result.Score,
	})
}
