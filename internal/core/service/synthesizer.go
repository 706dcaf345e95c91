package service

import (
	"fmt"

	"github.com/tokensight/insight-backend/internal/core/domain"
)

// Sentiment thresholds: a dead zone of [-0.6, 0.6] around zero keeps
// small noise moves from flipping the label.
const (
	bullishThreshold = 0.6
	bearishThreshold = -0.6
)

// Synthesize builds a deterministic rule-based insight from the 24h
// change percentage, trading volume, and market cap. It is the fallback
// target whenever the generated insight fails the quality gate, so it
// must be reproducible without any model dependency.
func Synthesize(changePct, volume, marketCap float64) domain.Insight {
	sentiment := domain.SentimentNeutral
	if changePct >= bullishThreshold {
		sentiment = domain.SentimentBullish
	} else if changePct <= bearishThreshold {
		sentiment = domain.SentimentBearish
	}

	ratio := 0.0
	if marketCap > 0 {
		ratio = volume / marketCap
	}

	volumeDesc := "low volume"
	switch {
	case ratio > 0.02:
		volumeDesc = "very high trading volume"
	case ratio > 0.005:
		volumeDesc = "elevated trading volume"
	case ratio > 0.001:
		volumeDesc = "moderate trading volume"
	}

	var direction string
	switch sentiment {
	case domain.SentimentBullish:
		direction = fmt.Sprintf("Price is up %.2f%% in 24h, suggesting short-term bullish momentum.", changePct)
	case domain.SentimentBearish:
		direction = fmt.Sprintf("Price is down %.2f%% in 24h, indicating short-term bearish pressure.", -changePct)
	default:
		direction = fmt.Sprintf("Price moved %.2f%% in 24h, showing limited directional bias.", changePct)
	}

	judgment := "limited conviction among traders."
	if ratio > 0.005 {
		judgment = "active trading."
	}

	var behavior string
	if marketCap > 0 {
		behavior = fmt.Sprintf("The %s relative to market cap (%.2f%%) suggests %s", volumeDesc, ratio*100, judgment)
	} else {
		behavior = fmt.Sprintf("The %s relative to market cap suggests %s", volumeDesc, judgment)
	}

	return domain.Insight{
		Reasoning: direction + " " + behavior,
		Sentiment: sentiment,
	}
}
