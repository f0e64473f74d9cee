package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tezansahu/sentiment-analyzer-mcp/internal/domain/service"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	classifier service.Classifier
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(classifier service.Classifier) *HealthHandler {
	return &HealthHandler{classifier: classifier}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string)
	healthy := true

	// Exercise the model with a trivial input
	if h.classifier != nil {
		if _, err := h.classifier.Classify(ctx, "ok"); err != nil {
			components["model"] = "error: " + err.Error()
			healthy = false
		} else {
			components["model"] = "ok"
		}
	} else {
		components["model"] = "not configured"
		healthy = false
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if h.classifier == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "model not loaded"})
		return
	}
	if _, err := h.classifier.Classify(ctx, "ok"); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "model inference failing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
