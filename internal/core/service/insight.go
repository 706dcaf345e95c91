package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/tokensight/insight-backend/internal/core/domain"
)

const (
	// promptPlaceholder is the literal template phrase the model is shown;
	// its presence in a reasoning string means the model echoed the prompt.
	promptPlaceholder = "1-2 sentence concise explanation of market trend and volume context"

	// failedReasoning is the fixed insight emitted when the model call
	// itself errors. The quality gate always replaces it.
	failedReasoning = "Failed to generate insight"

	maxReasoningSentences = 2
)

// instructionLeak matches reasoning that echoes prompt instructions, a
// common small-model failure mode.
var instructionLeak = regexp.MustCompile(`(?i)analyze|provide|return`)

// InsightService turns a market snapshot into an insight, preferring
// the generation model and falling back to the rule-based synthesizer
// whenever the generated text fails the quality gate.
type InsightService struct {
	market    domain.MarketDataGateway
	generator domain.TextGenerator
	model     domain.ModelInfo
}

func NewInsightService(market domain.MarketDataGateway, generator domain.TextGenerator, model domain.ModelInfo) *InsightService {
	return &InsightService{
		market:    market,
		generator: generator,
		model:     model,
	}
}

// TokenInsight fetches the token's market snapshot, generates an
// insight for it, and assembles the response payload. historyDays is
// accepted for API compatibility but not consulted beyond the request.
//
// The market_data block always reports the usd fields; the requested
// vs_currency only shapes the prompt.
func (s *InsightService) TokenInsight(ctx context.Context, id, vsCurrency string, historyDays int) (*domain.TokenInsightResponse, error) {
	token, err := s.market.FetchToken(ctx, id, vsCurrency)
	if err != nil {
		return nil, err
	}

	prompt := buildPrompt(token.Snapshot, vsCurrency)
	insight := s.GenerateInsight(ctx, prompt)

	if !validInsight(insight) {
		log.Printf("⚠️ Generated insight rejected by quality gate, using synthesized reasoning for %s", id)
		insight = Synthesize(token.Snapshot.Change24h, token.Snapshot.Volume, token.Snapshot.MarketCap)
	}

	return &domain.TokenInsightResponse{
		Source: "coingecko",
		Token: domain.TokenInfo{
			ID:         token.ID,
			Symbol:     token.Symbol,
			Name:       token.Name,
			MarketData: token.MarketUSD,
		},
		Insight: insight,
		Model:   s.model,
	}, nil
}

// GenerateInsight invokes the model and parses its completion. It never
// fails outward: model errors become a fixed insight, and unstructured
// output falls back to truncating the raw text.
func (s *InsightService) GenerateInsight(ctx context.Context, prompt string) domain.Insight {
	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("❌ Insight generation failed: %v", err)
		return domain.Insight{Reasoning: failedReasoning, Sentiment: domain.SentimentNeutral}
	}
	raw = strings.TrimSpace(raw)

	if parsed, ok := extractJSONObject(raw); ok {
		return domain.Insight{
			Reasoning: firstSentences(parsed.Reasoning, maxReasoningSentences),
			Sentiment: normalizeSentiment(parsed.Sentiment),
		}
	}

	log.Printf("⚠️ No JSON insight in model output, falling back to raw-text parsing")
	reasoning := firstSentences(raw, maxReasoningSentences)
	if reasoning == "" {
		reasoning = "No usable insight produced by model."
	}
	return domain.Insight{
		Reasoning: reasoning,
		Sentiment: normalizeSentiment(raw),
	}
}

// validInsight is the quality gate: a pure predicate rejecting empty,
// too-short, instruction-echoing, or template-echoing reasoning, plus
// the fixed model-error insight.
func validInsight(in domain.Insight) bool {
	if in.Reasoning == "" || len(in.Reasoning) < 20 {
		return false
	}
	if in.Reasoning == failedReasoning {
		return false
	}
	if instructionLeak.MatchString(in.Reasoning) {
		return false
	}
	if strings.Contains(in.Reasoning, promptPlaceholder) {
		return false
	}
	return true
}

// buildPrompt renders the fixed analysis template for one snapshot.
func buildPrompt(snap domain.MarketSnapshot, vsCurrency string) string {
	return fmt.Sprintf(`You are a cryptocurrency market analyst.
Analyze %s (%s) using these stats:
- Current Price: %s %s
- Market Cap: %s USD
- 24h Change: %s%%
- Total Volume: %s USD

Return ONLY a JSON object with:
{
  "reasoning": "%s based on the stats above",
  "sentiment": "Bullish | Bearish | Neutral"
}
Do not include any template text or instructions in the output.`,
		snap.Name,
		strings.ToUpper(snap.Symbol),
		formatStat(snap.Price),
		strings.ToUpper(vsCurrency),
		formatStat(snap.MarketCap),
		formatStat(snap.Change24h),
		formatStat(snap.Volume),
		promptPlaceholder,
	)
}

// formatStat prints a stat without exponent notation so prompts stay
// readable for the model.
func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
