package domain

import (
	"context"
	"errors"
)

// ErrNoMarketData signals that the upstream answered but carried no
// market data for the requested token. Distinct from transport failure
// so callers can surface a specific message.
var ErrNoMarketData = errors.New("no market data")

// MarketDataGateway fetches a raw token market snapshot.
type MarketDataGateway interface {
	// FetchToken resolves the token's stats against vsCurrency, falling
	// back to usd per field when the requested key is absent upstream.
	FetchToken(ctx context.Context, id, vsCurrency string) (*TokenData, error)
}

// TradingDataGateway fetches raw wallet activity from the trading venue.
// The three calls are independent; a failure in one does not imply
// anything about the others.
type TradingDataGateway interface {
	FetchTrades(ctx context.Context, wallet string) ([]TradeRecord, error)
	FetchPositions(ctx context.Context, wallet string) ([]PositionRecord, error)
	FetchFunding(ctx context.Context, wallet string) ([]FundingRecord, error)
}

// TextGenerator produces a free-text completion for a prompt. The
// underlying model handle is loaded lazily once per process and reused
// across requests.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
