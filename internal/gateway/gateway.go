// Package gateway exposes the sentiment analysis API as MCP tools
// consumable by an LLM runtime.
package gateway

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/tezansahu/sentiment-analyzer-mcp/internal/domain/entity"
	"github.com/tezansahu/sentiment-analyzer-mcp/internal/usecase"
)

// Gateway wires the sentiment usecase into an MCP server
type Gateway struct {
	uc     usecase.SentimentUsecase
	logger *zap.Logger
}

// New creates a new gateway
func New(uc usecase.SentimentUsecase, logger *zap.Logger) *Gateway {
	return &Gateway{
		uc:     uc,
		logger: logger,
	}
}

// AnalyzeInput is the input schema for analyze_sentiment
type AnalyzeInput struct {
	Text string `json:"text" jsonschema:"the text to analyze for sentiment"`
}

// BatchAnalyzeInput is the input schema for batch_analyze_sentiment
type BatchAnalyzeInput struct {
	Texts []string `json:"texts" jsonschema:"list of texts to analyze for sentiment"`
}

// BatchAnalyzeOutput wraps the per-item results of a batch analysis
type BatchAnalyzeOutput struct {
	Results []*entity.SentimentResult `json:"results"`
}

// HealthInput is the (empty) input schema for check_api_health
type HealthInput struct{}

// Server builds the MCP server with all tools and resources registered
func (g *Gateway) Server(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "Sentiment Analyzer",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name: "analyze_sentiment",
		Description: "Analyze the sentiment of input text using a pretrained deep learning model. " +
			"Returns whether the sentiment is positive or negative. Useful for understanding the " +
			"emotional tone of text, customer feedback, social media posts, reviews, etc.",
	}, g.analyzeSentiment)

	mcp.AddTool(server, &mcp.Tool{
		Name: "batch_analyze_sentiment",
		Description: "Analyze sentiment for multiple texts in parallel. Takes a list of up to 50 " +
			"texts and returns one result per input; a failed item yields an error result at its " +
			"position instead of failing the batch.",
	}, g.batchAnalyzeSentiment)

	mcp.AddTool(server, &mcp.Tool{
		Name: "check_api_health",
		Description: "Check if the sentiment analysis API is available and responding. Performs a " +
			"bounded-timeout test prediction and reports a status of healthy, unhealthy, timeout, " +
			"connection_error or error.",
	}, g.checkAPIHealth)

	g.registerResources(server)

	return server
}

func (g *Gateway) analyzeSentiment(ctx context.Context, req *mcp.CallToolRequest, in AnalyzeInput) (*mcp.CallToolResult, *entity.SentimentResult, error) {
	result, err := g.uc.Analyze(ctx, in.Text)
	if err != nil {
		g.logger.Warn("analyze_sentiment failed", zap.Error(err))
		return nil, nil, err
	}

	g.logger.Debug("analyze_sentiment succeeded", zap.String("sentiment", string(result.Sentiment)))
	return nil, result, nil
}

func (g *Gateway) batchAnalyzeSentiment(ctx context.Context, req *mcp.CallToolRequest, in BatchAnalyzeInput) (*mcp.CallToolResult, *BatchAnalyzeOutput, error) {
	results, err := g.uc.AnalyzeBatch(ctx, in.Texts)
	if err != nil {
		g.logger.Warn("batch_analyze_sentiment rejected", zap.Error(err))
		return nil, nil, err
	}

	g.logger.Debug("batch_analyze_sentiment completed", zap.Int("items", len(results)))
	return nil, &BatchAnalyzeOutput{Results: results}, nil
}

func (g *Gateway) checkAPIHealth(ctx context.Context, req *mcp.CallToolRequest, in HealthInput) (*mcp.CallToolResult, *entity.HealthStatus, error) {
	status := g.uc.CheckHealth(ctx)

	g.logger.Info("check_api_health",
		zap.String("status", string(status.Status)),
		zap.String("api_url", status.APIURL))
	return nil, status, nil
}
