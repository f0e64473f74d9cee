package gateway

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	apiInfoURI  = "sentiment://api/info"
	examplesURI = "sentiment://examples"
)

func (g *Gateway) registerResources(server *mcp.Server) {
	server.AddResource(&mcp.Resource{
		URI:         apiInfoURI,
		Name:        "api-info",
		Description: "Information about the sentiment analysis API",
		MIMEType:    "text/markdown",
	}, g.apiInfo)

	server.AddResource(&mcp.Resource{
		URI:         examplesURI,
		Name:        "examples",
		Description: "Example usage scenarios for sentiment analysis",
		MIMEType:    "text/markdown",
	}, g.examples)
}

func (g *Gateway) apiInfo(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	text := fmt.Sprintf(`# Sentiment Analysis API Information

**Base URL**: %s

## Available Endpoints

### POST /predict
Predicts the sentiment (positive/negative) of provided text using a pretrained deep learning model.

**Request Body**:
`+"```json"+`
{
  "text": "Your text to analyze"
}
`+"```"+`

**Response**:
`+"```json"+`
{
  "sentiment": "positive" | "negative",
  "confidence": 0.98
}
`+"```"+`

## Usage Notes
- The API uses a pretrained deep learning model for sentiment classification
- Returns binary classification: positive or negative
- Response time typically under 1 second for standard text lengths

## Error Handling
- 422: Validation Error (empty text or invalid request format)
- 500: Internal Server Error (model processing failed)
`, g.uc.Endpoint())

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: apiInfoURI, MIMEType: "text/markdown", Text: text},
		},
	}, nil
}

func (g *Gateway) examples(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	const text = `# Sentiment Analysis Examples

## Positive Examples
- "I love this product! It works perfectly and exceeded my expectations."
- "What a beautiful day! The weather is amazing."
- "Thank you so much for your help. You're the best!"
- "This movie was absolutely fantastic. Highly recommend!"

## Negative Examples
- "This is the worst service I've ever experienced."
- "I'm really disappointed with this purchase. It broke immediately."
- "The weather is terrible today. Rain and cold."
- "This software is buggy and unreliable."

## Neutral/Mixed Examples (may vary in classification)
- "The product is okay, nothing special."
- "It works as expected, no complaints."
- "Standard quality for the price."
- "The meeting was informative but long."

## Use Cases
- **Customer Feedback**: Analyze reviews and support tickets
- **Social Media Monitoring**: Track brand sentiment on platforms
- **Content Moderation**: Identify potentially negative content
- **Market Research**: Understand public opinion about products/services
- **Email Analysis**: Classify customer emails by sentiment
`

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: examplesURI, MIMEType: "text/markdown", Text: text},
		},
	}, nil
}
