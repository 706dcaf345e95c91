package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tokensight/insight-backend/internal/core/domain"
	"github.com/tokensight/insight-backend/internal/version"
)

// Root handles GET / liveness requests.
func (h *APIHandler) Root(c *gin.Context) {
	info := version.GetBuildInfo()
	c.JSON(http.StatusOK, gin.H{
		"message": "✅ Token Insight Backend API running!",
		"service": info.Service,
		"version": info.Version,
	})
}

// TokenInsight handles POST /api/token/:id/insight requests.
func (h *APIHandler) TokenInsight(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultTimeout)
	defer cancel()

	// Body is optional; defaults apply when absent or malformed.
	var body insightRequestBody
	_ = c.ShouldBindJSON(&body)

	req, err := ValidateInsightRequest(c.Param("id"), body)
	if err != nil {
		h.handleError(c, err, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.insight.TokenInsight(ctx, req.TokenID, req.VsCurrency, req.HistoryDays)
	if err != nil {
		// A missing snapshot gets a specific message; an insight is
		// meaningless without one, so both cases surface as 500.
		if errors.Is(err, domain.ErrNoMarketData) {
			h.handleError(c, err, http.StatusInternalServerError,
				fmt.Sprintf("CoinGecko returned no market data for id: %s", req.TokenID))
			return
		}
		h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch token data or generate insight")
		return
	}

	c.JSON(http.StatusOK, result)
}

// WalletPnL handles GET /api/hyperliquid/:wallet/pnl requests.
func (h *APIHandler) WalletPnL(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultTimeout)
	defer cancel()

	req, err := ValidatePnLRequest(c.Param("wallet"), c.Query("start"), c.Query("end"))
	if err != nil {
		h.handleError(c, err, http.StatusBadRequest, err.Error())
		return
	}

	report := h.pnl.ComputePnL(ctx, req.Wallet, req.Start, req.End)
	if report == nil || report.Daily == nil {
		status := http.StatusInternalServerError
		payload := gin.H{"error": "Failed to fetch wallet PnL"}
		if report != nil {
			payload["diagnostics"] = report.Diagnostics
		}
		h.logger.Error("wallet PnL returned malformed report",
			slog.String("request_id", requestID(c)),
			slog.String("wallet", req.Wallet),
		)
		c.JSON(status, payload)
		return
	}

	c.JSON(http.StatusOK, report)
}

// handleError logs the error and sends the HTTP response.
func (h *APIHandler) handleError(c *gin.Context, err error, statusCode int, userMessage string) {
	h.logger.Error("API error",
		slog.String("request_id", requestID(c)),
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("error", err.Error()),
		slog.Int("status_code", statusCode),
	)

	c.JSON(statusCode, gin.H{"error": userMessage})
}

func requestID(c *gin.Context) string {
	if id, ok := c.Get(RequestIDContextKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return "unknown"
}
