package service

import (
	"encoding/json"
	"strings"

	"github.com/tokensight/insight-backend/internal/core/domain"
)

// modelInsight is the structured shape the model is asked to emit.
// Parsed from untrusted completion text.
type modelInsight struct {
	Reasoning string `json:"reasoning"`
	Sentiment string `json:"sentiment"`
}

// extractJSONObject scans text left to right tracking brace depth and
// tries to parse each balanced {...} span as JSON. Spans that fail to
// parse are skipped and the scan continues, so braces appearing in
// surrounding prose or inside JSON string values do not defeat it the
// way a first-{ to last-} slice would.
func extractJSONObject(text string) (*modelInsight, bool) {
	depth := 0
	start := -1
	for i, r := range text {
		switch r {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start >= 0 {
				var out modelInsight
				if err := json.Unmarshal([]byte(text[start:i+1]), &out); err == nil {
					return &out, true
				}
				start = -1
			}
		}
	}
	return nil, false
}

// firstSentences returns up to n sentences of text. A sentence ends at
// a run of '.', '!' or '?' characters, consumed greedily.
func firstSentences(text string, n int) string {
	var sentences []string
	var b strings.Builder

	runes := []rune(text)
	i := 0
	for i < len(runes) && len(sentences) < n {
		for i < len(runes) && !isSentenceEnd(runes[i]) {
			b.WriteRune(runes[i])
			i++
		}
		for i < len(runes) && isSentenceEnd(runes[i]) {
			b.WriteRune(runes[i])
			i++
		}
		if s := strings.TrimSpace(b.String()); s != "" {
			sentences = append(sentences, s)
		}
		b.Reset()
	}
	return strings.Join(sentences, " ")
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// normalizeSentiment maps free-form sentiment text onto the fixed label
// set via case-insensitive keyword match. Anything unrecognized is
// Neutral.
func normalizeSentiment(raw string) string {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, "bull"), strings.Contains(s, "positive"):
		return domain.SentimentBullish
	case strings.Contains(s, "bear"), strings.Contains(s, "negative"):
		return domain.SentimentBearish
	default:
		return domain.SentimentNeutral
	}
}
