package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/tokensight/insight-backend/internal/adapters/ai"
	"github.com/tokensight/insight-backend/internal/adapters/market"
	"github.com/tokensight/insight-backend/internal/adapters/trading"
	"github.com/tokensight/insight-backend/internal/api"
	"github.com/tokensight/insight-backend/internal/config"
	"github.com/tokensight/insight-backend/internal/core/domain"
	"github.com/tokensight/insight-backend/internal/core/service"
	"github.com/tokensight/insight-backend/internal/version"
)

func main() {
	// Load environment variables from .env file, if present.
	godotenv.Load()

	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	marketGateway := market.NewClient(cfg.CoinGeckoAPIBase)
	tradingGateway := trading.NewClient(cfg.HyperliquidAPIBase)
	generator := ai.NewGenerator(ai.Options{
		Model:       cfg.AIModel,
		APIKey:      cfg.HFAccessToken,
		BaseURL:     cfg.AIBaseURL,
		MaxTokens:   cfg.AIMaxTokens,
		Temperature: cfg.AITemperature,
		TopP:        cfg.AITopP,
	})

	insightService := service.NewInsightService(marketGateway, generator, domain.ModelInfo{
		Provider: cfg.AIModelProvider,
		Model:    cfg.AIModel,
	})
	pnlService := service.NewPnLService(tradingGateway)

	handler := api.NewAPIHandler(insightService, pnlService, logger)

	log.Printf("✅ %s v%s listening on port %d", version.ServiceName, version.Version(), cfg.Port)
	if err := handler.StartServer(cfg.Port); err != nil {
		log.Fatalf("❌ Server error: %v", err)
	}
}
