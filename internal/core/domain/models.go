package domain

// Sentiment labels. Every insight, model-generated or synthesized,
// carries exactly one of these.
const (
	SentimentBullish = "Bullish"
	SentimentBearish = "Bearish"
	SentimentNeutral = "Neutral"
)

// MarketSnapshot is a point-in-time view of one token's market stats,
// resolved against the requested quote currency (usd fallback).
type MarketSnapshot struct {
	ID        string
	Symbol    string
	Name      string
	Price     float64 // per quote currency
	Change24h float64 // 24h percentage price change
	Volume    float64 // total trading volume, quote currency
	MarketCap float64 // market capitalization, quote currency
}

// MarketDataUSD carries the usd-denominated fields reported in the
// insight response. Pointers so absent upstream values serialize as null.
type MarketDataUSD struct {
	CurrentPriceUSD          *float64 `json:"current_price_usd"`
	MarketCapUSD             *float64 `json:"market_cap_usd"`
	TotalVolumeUSD           *float64 `json:"total_volume_usd"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
}

// TokenData is the market gateway's result for one token: the
// vs_currency-resolved snapshot used for prompt construction plus the
// usd fields echoed in the response.
type TokenData struct {
	ID        string
	Symbol    string
	Name      string
	Snapshot  MarketSnapshot
	MarketUSD MarketDataUSD
}

// Insight is a short natural-language market read with a sentiment label.
type Insight struct {
	Reasoning string `json:"reasoning"`
	Sentiment string `json:"sentiment"`
}

// TokenInfo identifies the analyzed token in the insight response.
type TokenInfo struct {
	ID         string        `json:"id"`
	Symbol     string        `json:"symbol"`
	Name       string        `json:"name"`
	MarketData MarketDataUSD `json:"market_data"`
}

// ModelInfo names the text-generation backend that served the request.
type ModelInfo struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// TokenInsightResponse is the full payload of the insight endpoint.
type TokenInsightResponse struct {
	Source  string    `json:"source"`
	Token   TokenInfo `json:"token"`
	Insight Insight   `json:"insight"`
	Model   ModelInfo `json:"model"`
}

// TradeRecord is one fill reported by the trading venue. Date is an
// ISO-date-prefixed timestamp; monetary fields absent upstream decode to 0.
type TradeRecord struct {
	Date           string  `json:"date"`
	RealizedPnLUSD float64 `json:"realized_pnl_usd"`
	FeeUSD         float64 `json:"fee_usd"`
}

// PositionRecord is one position mark reported by the trading venue.
type PositionRecord struct {
	LastUpdated      string  `json:"last_updated"`
	UnrealizedPnLUSD float64 `json:"unrealized_pnl_usd"`
}

// FundingRecord is one funding payment reported by the trading venue.
type FundingRecord struct {
	Date      string  `json:"date"`
	AmountUSD float64 `json:"amount_usd"`
}

// DailyPnL is one calendar day of the ledger. Every monetary field is
// rounded to 2 decimals at emission.
type DailyPnL struct {
	Date             string  `json:"date"`
	RealizedPnLUSD   float64 `json:"realized_pnl_usd"`
	UnrealizedPnLUSD float64 `json:"unrealized_pnl_usd"`
	FeesUSD          float64 `json:"fees_usd"`
	FundingUSD       float64 `json:"funding_usd"`
	NetPnLUSD        float64 `json:"net_pnl_usd"`
	EquityUSD        float64 `json:"equity_usd"`
}

// PnLSummary sums each daily component across the requested range.
// Equity is a running point-in-time value and is deliberately excluded.
type PnLSummary struct {
	TotalRealizedUSD   float64 `json:"total_realized_usd"`
	TotalUnrealizedUSD float64 `json:"total_unrealized_usd"`
	TotalFeesUSD       float64 `json:"total_fees_usd"`
	TotalFundingUSD    float64 `json:"total_funding_usd"`
	NetPnLUSD          float64 `json:"net_pnl_usd"`
}

// Diagnostics describes where the report's data came from.
type Diagnostics struct {
	DataSource  string `json:"data_source"`
	LastAPICall string `json:"last_api_call"`
	Notes       string `json:"notes"`
}

// PnLReport is the full payload of the PnL endpoint. Constructed fresh
// per request, never cached.
type PnLReport struct {
	Wallet      string      `json:"wallet"`
	Start       string      `json:"start"`
	End         string      `json:"end"`
	Daily       []DailyPnL  `json:"daily"`
	Summary     PnLSummary  `json:"summary"`
	Diagnostics Diagnostics `json:"diagnostics"`
}
