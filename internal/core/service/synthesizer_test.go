package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tokensight/insight-backend/internal/core/domain"
)

func TestSynthesize_BullishVeryHighVolume(t *testing.T) {
	insight := Synthesize(1.5, 50_000_000, 1_000_000_000)

	assert.Equal(t, domain.SentimentBullish, insight.Sentiment)
	assert.Contains(t, insight.Reasoning, "Price is up 1.50% in 24h")
	assert.Contains(t, insight.Reasoning, "very high trading volume")
	assert.Contains(t, insight.Reasoning, "(5.00%)")
	assert.Contains(t, insight.Reasoning, "active trading.")
}

func TestSynthesize_BearishUsesAbsoluteChange(t *testing.T) {
	insight := Synthesize(-2.75, 3_000_000, 1_000_000_000)

	assert.Equal(t, domain.SentimentBearish, insight.Sentiment)
	assert.Contains(t, insight.Reasoning, "Price is down 2.75% in 24h")
	assert.Contains(t, insight.Reasoning, "moderate trading volume")
	assert.Contains(t, insight.Reasoning, "limited conviction among traders.")
}

func TestSynthesize_ZeroEverything(t *testing.T) {
	insight := Synthesize(0, 0, 0)

	assert.Equal(t, domain.SentimentNeutral, insight.Sentiment)
	assert.Contains(t, insight.Reasoning, "Price moved 0.00% in 24h")
	assert.Contains(t, insight.Reasoning, "low volume")
	assert.NotContains(t, insight.Reasoning, "%)", "no ratio shown when market cap is zero")
}

func TestSynthesize_SentimentThresholds(t *testing.T) {
	tests := []struct {
		name      string
		changePct float64
		want      string
	}{
		{"at bullish threshold", 0.6, domain.SentimentBullish},
		{"inside dead zone positive", 0.59, domain.SentimentNeutral},
		{"inside dead zone negative", -0.59, domain.SentimentNeutral},
		{"at bearish threshold", -0.6, domain.SentimentBearish},
		{"strongly bearish", -12.3, domain.SentimentBearish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight := Synthesize(tt.changePct, 1_000_000, 100_000_000)
			assert.Equal(t, tt.want, insight.Sentiment)
		})
	}
}

func TestSynthesize_VolumeDescriptors(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
		want   string
	}{
		{"very high", 25_000_000, "very high trading volume"},
		{"elevated", 6_000_000, "elevated trading volume"},
		{"moderate", 2_000_000, "moderate trading volume"},
		{"low", 500_000, "low volume"},
	}

	const marketCap = 1_000_000_000
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight := Synthesize(0, tt.volume, marketCap)
			assert.Contains(t, insight.Reasoning, tt.want)
		})
	}
}
