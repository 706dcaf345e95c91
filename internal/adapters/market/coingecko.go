package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tokensight/insight-backend/internal/core/domain"
)

const defaultBaseURL = "https://api.coingecko.com"

// Client fetches token market snapshots from the CoinGecko API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// coinPayload mirrors the subset of /api/v3/coins/{id} this service reads.
type coinPayload struct {
	ID         string `json:"id"`
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	MarketData *struct {
		CurrentPrice             map[string]float64 `json:"current_price"`
		MarketCap                map[string]float64 `json:"market_cap"`
		TotalVolume              map[string]float64 `json:"total_volume"`
		PriceChangePercentage24h *float64           `json:"price_change_percentage_24h"`
	} `json:"market_data"`
}

// FetchToken retrieves one token's market snapshot. A response without
// a market_data block yields domain.ErrNoMarketData rather than a
// transport error.
func (c *Client) FetchToken(ctx context.Context, id, vsCurrency string) (*domain.TokenData, error) {
	url := fmt.Sprintf("%s/api/v3/coins/%s?localization=false", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("coingecko returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload coinPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if payload.MarketData == nil {
		return nil, fmt.Errorf("%w for id: %s", domain.ErrNoMarketData, id)
	}
	md := payload.MarketData

	change := 0.0
	if md.PriceChangePercentage24h != nil {
		change = *md.PriceChangePercentage24h
	}

	return &domain.TokenData{
		ID:     payload.ID,
		Symbol: payload.Symbol,
		Name:   payload.Name,
		Snapshot: domain.MarketSnapshot{
			ID:        payload.ID,
			Symbol:    payload.Symbol,
			Name:      payload.Name,
			Price:     resolveQuote(md.CurrentPrice, vsCurrency),
			Change24h: change,
			Volume:    resolveQuote(md.TotalVolume, vsCurrency),
			MarketCap: resolveQuote(md.MarketCap, vsCurrency),
		},
		MarketUSD: domain.MarketDataUSD{
			CurrentPriceUSD:          usdField(md.CurrentPrice),
			MarketCapUSD:             usdField(md.MarketCap),
			TotalVolumeUSD:           usdField(md.TotalVolume),
			PriceChangePercentage24h: md.PriceChangePercentage24h,
		},
	}, nil
}

// resolveQuote reads the requested currency key, falling back to usd,
// then zero. The fallback order is fixed per field.
func resolveQuote(quotes map[string]float64, vsCurrency string) float64 {
	if v, ok := quotes[vsCurrency]; ok {
		return v
	}
	return quotes["usd"]
}

func usdField(quotes map[string]float64) *float64 {
	if v, ok := quotes["usd"]; ok {
		return &v
	}
	return nil
}
