package classifier

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is used unless GEMINI_MODEL overrides it
const DefaultModel = "gemini-2.0-flash"

// Labeler asks a language model for sentiment/intent labels on one article.
// The return value is the raw model reply; transport or API failures are
// embedded in it so the caller's parsing degrades to empty labels instead of
// failing the request.
type Labeler interface {
	Classify(ctx context.Context, text, harmWords string) string
}

const promptTemplate = `You are analyzing potentially harmful or scam-related news.
I will provide news/article content and a list of detected harmful words.
Please classify:
- Sentiment: one of [positive1, positive2, negative1, negative2, neutral]
- Intent: one of [harmful1, harmful2, harmless1, harmless2]
Definitions:
- positive1: mildly positive, positive2: strongly positive.
- negative1: mildly negative, negative2: highly negative.
- harmful1: contains mild threat/scam indicators, harmful2: high threat/scam/severe issue.
- harmless1: content totally safe, harmless2: content with minor caution but not an actual threat.
Base your answer on the article and the detected harmful words.
Return in the exact format:
SENTIMENT={sentiment_label} INTENT={intent_label} REASON={short_reason}

Article: %s
Harmful words: %s
`

// Gemini classifies articles with a single synchronous GenerateContent call
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed classifier
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Gemini{client: client, model: model}, nil
}

// Classify invokes the model once per article, no retry. harmWords is the
// comma-joined detected keyword set, or the literal "None".
func (c *Gemini) Classify(ctx context.Context, text, harmWords string) string {
	prompt := fmt.Sprintf(promptTemplate, text, harmWords)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("[Gemini] Classification failed: %v", err)
		return fmt.Sprintf("[Gemini API error: %v]", err)
	}

	return strings.TrimSpace(resp.Text())
}
