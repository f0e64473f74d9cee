package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tezansahu/sentiment-analyzer-mcp/internal/adapter/http/handler"
	"github.com/tezansahu/sentiment-analyzer-mcp/internal/adapter/http/middleware"
	"github.com/tezansahu/sentiment-analyzer-mcp/internal/domain/service"
)

// Setup creates and configures the Gin router for the inference service
func Setup(classifier service.Classifier, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(classifier)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Prediction endpoint
	predictHandler := handler.NewPredictHandler(classifier, logger)
	router.POST("/predict", predictHandler.Predict)

	return router
}
