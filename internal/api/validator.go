package api

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

// Validation error messages are part of the API contract; clients match
// on them.
var (
	errMissingPnLParams = errors.New("Missing wallet, start, or end date")
	errInvalidDate      = errors.New("Invalid date format. Use YYYY-MM-DD")
	errStartAfterEnd    = errors.New("Start date cannot be after end date")
	errMissingTokenID   = errors.New("Missing token id in params")
)

// PnLRequest is a validated PnL query.
type PnLRequest struct {
	Wallet string
	Start  string
	End    string
}

// ValidatePnLRequest checks presence, date format, and ordering. No
// aggregation is attempted when validation fails.
func ValidatePnLRequest(wallet, start, end string) (*PnLRequest, error) {
	if wallet == "" || start == "" || end == "" {
		return nil, errMissingPnLParams
	}

	startDate, errS := time.Parse(dateLayout, start)
	endDate, errE := time.Parse(dateLayout, end)
	if errS != nil || errE != nil {
		return nil, errInvalidDate
	}

	if startDate.After(endDate) {
		return nil, errStartAfterEnd
	}

	return &PnLRequest{Wallet: wallet, Start: start, End: end}, nil
}

// insightRequestBody is the optional JSON body of the insight endpoint.
type insightRequestBody struct {
	VsCurrency  string `json:"vs_currency"`
	HistoryDays int    `json:"history_days"`
}

// InsightRequest is a validated insight request with defaults applied.
type InsightRequest struct {
	TokenID     string
	VsCurrency  string
	HistoryDays int
}

// ValidateInsightRequest applies the documented defaults; an absent or
// unreadable body is not an error.
func ValidateInsightRequest(id string, body insightRequestBody) (*InsightRequest, error) {
	if id == "" {
		return nil, errMissingTokenID
	}

	vsCurrency := body.VsCurrency
	if vsCurrency == "" {
		vsCurrency = "usd"
	}
	historyDays := body.HistoryDays
	if historyDays <= 0 {
		historyDays = 30
	}

	return &InsightRequest{
		TokenID:     id,
		VsCurrency:  vsCurrency,
		HistoryDays: historyDays,
	}, nil
}
