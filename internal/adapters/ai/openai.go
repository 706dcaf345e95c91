package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// systemPrompt frames every generation request. The user prompt carries
// the per-token stats.
const systemPrompt = `You are a financial market analysis AI. Analyze the following token's market data and produce structured insight as valid JSON only.

Respond strictly in this JSON format:
{
  "reasoning": "Explain short reasoning behind the market behavior in 2-3 sentences.",
  "sentiment": "Bullish / Bearish / Neutral"
}`

// Options are the fixed decoding parameters for the generator. Values
// are configuration, not computed.
type Options struct {
	Model       string
	APIKey      string
	BaseURL     string // OpenAI-compatible endpoint
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// Generator is a process-lifetime text-generation handle. The client is
// initialized lazily on first use and reused for every request;
// concurrent first calls cannot double-initialize.
type Generator struct {
	opts   Options
	once   sync.Once
	client *openai.Client
}

func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Generate returns the model's free-text completion for prompt. No
// retries; the call runs to completion or failure.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	g.once.Do(g.init)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.opts.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   g.opts.MaxTokens,
		Temperature: g.opts.Temperature,
		TopP:        g.opts.TopP,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (g *Generator) init() {
	log.Printf("⏳ Loading text-generation model client (%s)...", g.opts.Model)
	cfg := openai.DefaultConfig(g.opts.APIKey)
	if g.opts.BaseURL != "" {
		cfg.BaseURL = g.opts.BaseURL
	}
	g.client = openai.NewClientWithConfig(cfg)
	log.Printf("✅ Model client ready")
}
