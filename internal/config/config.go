package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds application-level configuration loaded from environment
// variables. Every field has a documented default so the service starts
// with an empty environment.
type Config struct {
	Port int // PORT, default 8080

	AIModelProvider string  // AI_MODEL_PROVIDER, default "huggingface"
	AIModel         string  // AI_MODEL, default "HuggingFaceTB/SmolLM2-1.7B-Instruct"
	HFAccessToken   string  // HF_ACCESS_TOKEN, model credential (optional)
	AIBaseURL       string  // AI_BASE_URL, default Hugging Face OpenAI-compatible router
	AIMaxTokens     int     // AI_MAX_TOKENS, default 300
	AITemperature   float32 // AI_TEMP, default 0.4
	AITopP          float32 // AI_TOP_P, default 0.9

	HyperliquidAPIBase string // HYPERLIQUID_API_BASE, default testnet
	CoinGeckoAPIBase   string // COINGECKO_API_BASE, default public API
}

// Load reads configuration from the environment, filling defaults for
// anything unset.
func Load() *Config {
	return &Config{
		Port:               envInt("PORT", 8080),
		AIModelProvider:    envString("AI_MODEL_PROVIDER", "huggingface"),
		AIModel:            envString("AI_MODEL", "HuggingFaceTB/SmolLM2-1.7B-Instruct"),
		HFAccessToken:      os.Getenv("HF_ACCESS_TOKEN"),
		AIBaseURL:          envString("AI_BASE_URL", "https://router.huggingface.co/v1"),
		AIMaxTokens:        envInt("AI_MAX_TOKENS", 300),
		AITemperature:      envFloat32("AI_TEMP", 0.4),
		AITopP:             envFloat32("AI_TOP_P", 0.9),
		HyperliquidAPIBase: envString("HYPERLIQUID_API_BASE", "https://api.hyperliquid-testnet.xyz"),
		CoinGeckoAPIBase:   envString("COINGECKO_API_BASE", "https://api.coingecko.com"),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ Invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return parsed
}

func envFloat32(key string, fallback float32) float32 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 32)
	if err != nil {
		log.Printf("⚠️ Invalid %s=%q, using default %g", key, v, fallback)
		return fallback
	}
	return float32(parsed)
}
