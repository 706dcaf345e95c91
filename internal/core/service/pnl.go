package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tokensight/insight-backend/internal/core/domain"
)

const (
	// startingEquityUSD seeds the running equity series.
	startingEquityUSD = 10000.0

	// demoWallet always yields a deterministic, data-free report. The
	// trading gateway is not queried for it.
	demoWallet = "0xD257573De7072634D3a05825ec59aC1b998CE365"

	pnlDataSource = "hyperliquid_testnet_api"
	dateLayout    = "2006-01-02"
)

// PnLService reduces raw wallet activity into a daily PnL ledger.
type PnLService struct {
	trading domain.TradingDataGateway
}

func NewPnLService(trading domain.TradingDataGateway) *PnLService {
	return &PnLService{trading: trading}
}

// ComputePnL buckets trades, position marks, and funding payments by
// calendar day over the inclusive start..end range and accumulates a
// running equity balance. It never returns an error: unrecoverable
// failures yield a report with empty daily entries and the reason in
// diagnostics; per-call gateway failures degrade to empty record lists.
func (s *PnLService) ComputePnL(ctx context.Context, wallet, start, end string) *domain.PnLReport {
	startDate, errStart := time.Parse(dateLayout, start)
	endDate, errEnd := time.Parse(dateLayout, end)
	if errStart != nil || errEnd != nil || endDate.Before(startDate) {
		return s.failureReport(wallet, start, end, "invalid date range")
	}

	var (
		trades    []domain.TradeRecord
		positions []domain.PositionRecord
		funding   []domain.FundingRecord
	)

	demo := isDemoWallet(wallet)
	if !demo {
		// Each fetch degrades to an empty list on its own; a partial
		// failure must not abort the whole request.
		if recs, err := s.trading.FetchTrades(ctx, wallet); err != nil {
			log.Printf("⚠️ trades fetch failed for %s: %v", wallet, err)
		} else {
			trades = recs
		}
		if recs, err := s.trading.FetchPositions(ctx, wallet); err != nil {
			log.Printf("⚠️ positions fetch failed for %s: %v", wallet, err)
		} else {
			positions = recs
		}
		if recs, err := s.trading.FetchFunding(ctx, wallet); err != nil {
			log.Printf("⚠️ funding fetch failed for %s: %v", wallet, err)
		} else {
			funding = recs
		}
	}

	equity := startingEquityUSD
	daily := make([]domain.DailyPnL, 0, int(endDate.Sub(startDate).Hours()/24)+1)

	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		day := d.Format(dateLayout)

		var realized, fees, unrealized, dayFunding float64
		for _, t := range trades {
			if strings.HasPrefix(t.Date, day) {
				realized += t.RealizedPnLUSD
				fees += t.FeeUSD
			}
		}
		for _, p := range positions {
			if strings.HasPrefix(p.LastUpdated, day) {
				unrealized += p.UnrealizedPnLUSD
			}
		}
		for _, f := range funding {
			if strings.HasPrefix(f.Date, day) {
				dayFunding += f.AmountUSD
			}
		}

		// Round at every emission point so the series reproduces
		// bit-for-bit at 2-decimal precision.
		net := round2(realized - fees + unrealized + dayFunding)
		equity = round2(equity + net)

		daily = append(daily, domain.DailyPnL{
			Date:             day,
			RealizedPnLUSD:   round2(realized),
			UnrealizedPnLUSD: round2(unrealized),
			FeesUSD:          round2(fees),
			FundingUSD:       round2(dayFunding),
			NetPnLUSD:        net,
			EquityUSD:        equity,
		})
	}

	var summary domain.PnLSummary
	for _, d := range daily {
		summary.TotalRealizedUSD += d.RealizedPnLUSD
		summary.TotalUnrealizedUSD += d.UnrealizedPnLUSD
		summary.TotalFeesUSD += d.FeesUSD
		summary.TotalFundingUSD += d.FundingUSD
		summary.NetPnLUSD += d.NetPnLUSD
	}
	summary.TotalRealizedUSD = round2(summary.TotalRealizedUSD)
	summary.TotalUnrealizedUSD = round2(summary.TotalUnrealizedUSD)
	summary.TotalFeesUSD = round2(summary.TotalFeesUSD)
	summary.TotalFundingUSD = round2(summary.TotalFundingUSD)
	summary.NetPnLUSD = round2(summary.NetPnLUSD)

	notes := "PnL calculated from HyperLiquid Testnet trades/positions/funding"
	if demo {
		notes = "Demo PnL used (designated demo wallet, upstream not queried)"
	}

	return &domain.PnLReport{
		Wallet:  wallet,
		Start:   start,
		End:     end,
		Daily:   daily,
		Summary: summary,
		Diagnostics: domain.Diagnostics{
			DataSource:  pnlDataSource,
			LastAPICall: time.Now().UTC().Format(time.RFC3339),
			Notes:       notes,
		},
	}
}

// failureReport keeps the never-throw contract: the caller always
// receives a well-formed report.
func (s *PnLService) failureReport(wallet, start, end, reason string) *domain.PnLReport {
	return &domain.PnLReport{
		Wallet:  wallet,
		Start:   start,
		End:     end,
		Daily:   []domain.DailyPnL{},
		Summary: domain.PnLSummary{},
		Diagnostics: domain.Diagnostics{
			DataSource:  pnlDataSource,
			LastAPICall: time.Now().UTC().Format(time.RFC3339),
			Notes:       fmt.Sprintf("Failed to compute wallet PnL: %s", reason),
		},
	}
}

// isDemoWallet compares case-insensitively; hex-parseable wallets go
// through address normalization so checksummed forms match too.
func isDemoWallet(wallet string) bool {
	if common.IsHexAddress(wallet) {
		return common.HexToAddress(wallet) == common.HexToAddress(demoWallet)
	}
	return strings.EqualFold(wallet, demoWallet)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
