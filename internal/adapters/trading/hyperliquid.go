package trading

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tokensight/insight-backend/internal/core/domain"
)

const defaultBaseURL = "https://api.hyperliquid-testnet.xyz"

// Client fetches wallet activity from the HyperLiquid testnet API.
// Trades, positions, and funding are three independent endpoints.
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

// FetchTrades returns the wallet's fills, oldest upstream order preserved.
func (c *Client) FetchTrades(ctx context.Context, wallet string) ([]domain.TradeRecord, error) {
	var records []domain.TradeRecord
	if err := c.get(ctx, fmt.Sprintf("/wallets/%s/trades", wallet), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FetchPositions returns the wallet's position marks.
func (c *Client) FetchPositions(ctx context.Context, wallet string) ([]domain.PositionRecord, error) {
	var records []domain.PositionRecord
	if err := c.get(ctx, fmt.Sprintf("/wallets/%s/positions", wallet), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FetchFunding returns the wallet's funding payments.
func (c *Client) FetchFunding(ctx context.Context, wallet string) ([]domain.FundingRecord, error) {
	var records []domain.FundingRecord
	if err := c.get(ctx, fmt.Sprintf("/wallets/%s/funding", wallet), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("hyperliquid returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
