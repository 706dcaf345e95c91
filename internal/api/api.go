package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tokensight/insight-backend/internal/core/domain"
)

// The API package is split by concern:
// - api.go: handler struct, service interfaces, routing
// - handler.go: HTTP request handlers
// - middleware.go: middleware functions
// - validator.go: request validation

const (
	DefaultTimeout      = 120 * time.Second // generation latency dominates
	RequestIDContextKey = "request_id"
	RequestIDHeaderKey  = "X-Request-ID"
)

// InsightService produces an AI market-sentiment insight for a token.
type InsightService interface {
	TokenInsight(ctx context.Context, id, vsCurrency string, historyDays int) (*domain.TokenInsightResponse, error)
}

// PnLService computes the daily PnL ledger for a wallet. It never
// fails; degraded results carry the reason in diagnostics.
type PnLService interface {
	ComputePnL(ctx context.Context, wallet, start, end string) *domain.PnLReport
}

// APIHandler handles HTTP requests using the Gin framework.
type APIHandler struct {
	insight InsightService
	pnl     PnLService
	logger  *slog.Logger
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(insight InsightService, pnl PnLService, logger *slog.Logger) *APIHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &APIHandler{
		insight: insight,
		pnl:     pnl,
		logger:  logger,
	}
}

// StartServer starts the HTTP server on the given port.
func (h *APIHandler) StartServer(port int) error {
	router := h.SetupRoutes()
	return router.Run(":" + strconv.Itoa(port))
}

// SetupRoutes configures all API routes.
func (h *APIHandler) SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(requestIDMiddleware())
	router.Use(requestLoggerMiddleware(h.logger))
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/", h.Root)
	router.POST("/api/token/:id/insight", h.TokenInsight)
	router.GET("/api/hyperliquid/:wallet/pnl", h.WalletPnL)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}
