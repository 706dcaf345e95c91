package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokensight/insight-backend/internal/core/domain"
)

// fakeTradingGateway returns canned records and counts calls so tests
// can assert the demo wallet never reaches the gateway.
type fakeTradingGateway struct {
	trades    []domain.TradeRecord
	positions []domain.PositionRecord
	funding   []domain.FundingRecord

	tradesErr    error
	positionsErr error
	fundingErr   error

	calls int
}

func (f *fakeTradingGateway) FetchTrades(ctx context.Context, wallet string) ([]domain.TradeRecord, error) {
	f.calls++
	return f.trades, f.tradesErr
}

func (f *fakeTradingGateway) FetchPositions(ctx context.Context, wallet string) ([]domain.PositionRecord, error) {
	f.calls++
	return f.positions, f.positionsErr
}

func (f *fakeTradingGateway) FetchFunding(ctx context.Context, wallet string) ([]domain.FundingRecord, error) {
	f.calls++
	return f.funding, f.fundingErr
}

func TestComputePnL_DemoWalletFlatline(t *testing.T) {
	gw := &fakeTradingGateway{
		// Data that would corrupt the report if the gateway were consulted.
		trades: []domain.TradeRecord{{Date: "2025-08-01T10:00:00Z", RealizedPnLUSD: 999}},
	}
	svc := NewPnLService(gw)

	report := svc.ComputePnL(context.Background(), demoWallet, "2025-08-01", "2025-08-06")

	require.Len(t, report.Daily, 6)
	assert.Equal(t, 0, gw.calls, "demo wallet must not query the gateway")

	for _, day := range report.Daily {
		assert.Zero(t, day.RealizedPnLUSD)
		assert.Zero(t, day.UnrealizedPnLUSD)
		assert.Zero(t, day.FeesUSD)
		assert.Zero(t, day.FundingUSD)
		assert.Zero(t, day.NetPnLUSD)
		assert.Equal(t, 10000.0, day.EquityUSD)
	}
	assert.Equal(t, domain.PnLSummary{}, report.Summary)
	assert.Contains(t, report.Diagnostics.Notes, "Demo")
}

func TestComputePnL_DemoWalletCaseInsensitive(t *testing.T) {
	gw := &fakeTradingGateway{}
	svc := NewPnLService(gw)

	report := svc.ComputePnL(context.Background(), "0xd257573de7072634d3a05825ec59ac1b998ce365", "2025-08-01", "2025-08-01")

	require.Len(t, report.Daily, 1)
	assert.Equal(t, 0, gw.calls)
	assert.Equal(t, 10000.0, report.Daily[0].EquityUSD)
}

func TestComputePnL_DayCountAndChronology(t *testing.T) {
	svc := NewPnLService(&fakeTradingGateway{})

	report := svc.ComputePnL(context.Background(), "0x1111111111111111111111111111111111111111", "2025-07-28", "2025-08-03")

	want := []string{"2025-07-28", "2025-07-29", "2025-07-30", "2025-07-31", "2025-08-01", "2025-08-02", "2025-08-03"}
	require.Len(t, report.Daily, len(want))
	for i, day := range report.Daily {
		assert.Equal(t, want[i], day.Date)
	}
}

func TestComputePnL_BucketsAndRunningEquity(t *testing.T) {
	gw := &fakeTradingGateway{
		trades: []domain.TradeRecord{
			{Date: "2025-08-01T10:15:00Z", RealizedPnLUSD: 100.45, FeeUSD: 10.11},
			{Date: "2025-08-01T18:40:00Z", RealizedPnLUSD: -50, FeeUSD: 5},
			{Date: "2025-08-03T09:00:00Z", RealizedPnLUSD: 20},
			{Date: "2025-09-01T00:00:00Z", RealizedPnLUSD: 7777}, // outside range
		},
		positions: []domain.PositionRecord{
			{LastUpdated: "2025-08-02T12:00:00Z", UnrealizedPnLUSD: 30.55},
		},
		funding: []domain.FundingRecord{
			{Date: "2025-08-01T08:00:00Z", AmountUSD: 2.5},
		},
	}
	svc := NewPnLService(gw)

	report := svc.ComputePnL(context.Background(), "0x1111111111111111111111111111111111111111", "2025-08-01", "2025-08-03")
	require.Len(t, report.Daily, 3)

	day1 := report.Daily[0]
	assert.Equal(t, 50.45, day1.RealizedPnLUSD)
	assert.Equal(t, 15.11, day1.FeesUSD)
	assert.Equal(t, 2.5, day1.FundingUSD)
	assert.Equal(t, 37.84, day1.NetPnLUSD) // 50.45 - 15.11 + 2.50
	assert.Equal(t, 10037.84, day1.EquityUSD)

	day2 := report.Daily[1]
	assert.Equal(t, 30.55, day2.UnrealizedPnLUSD)
	assert.Equal(t, 30.55, day2.NetPnLUSD)
	assert.Equal(t, 10068.39, day2.EquityUSD)

	day3 := report.Daily[2]
	assert.Equal(t, 20.0, day3.RealizedPnLUSD)
	assert.Equal(t, 20.0, day3.NetPnLUSD)
	assert.Equal(t, 10088.39, day3.EquityUSD)

	assert.Equal(t, 70.45, report.Summary.TotalRealizedUSD)
	assert.Equal(t, 30.55, report.Summary.TotalUnrealizedUSD)
	assert.Equal(t, 15.11, report.Summary.TotalFeesUSD)
	assert.Equal(t, 2.5, report.Summary.TotalFundingUSD)
	assert.Equal(t, 88.39, report.Summary.NetPnLUSD)
}

func TestComputePnL_EmptyDaysCarryEquity(t *testing.T) {
	gw := &fakeTradingGateway{
		trades: []domain.TradeRecord{
			{Date: "2025-08-01T00:00:00Z", RealizedPnLUSD: 10},
		},
	}
	svc := NewPnLService(gw)

	report := svc.ComputePnL(context.Background(), "0x1111111111111111111111111111111111111111", "2025-08-01", "2025-08-04")
	require.Len(t, report.Daily, 4)

	assert.Equal(t, 10010.0, report.Daily[0].EquityUSD)
	for _, day := range report.Daily[1:] {
		assert.Zero(t, day.NetPnLUSD)
		assert.Equal(t, 10010.0, day.EquityUSD)
	}
}

func TestComputePnL_RoundsAtEmission(t *testing.T) {
	gw := &fakeTradingGateway{
		trades: []domain.TradeRecord{
			{Date: "2025-08-01T00:00:00Z", RealizedPnLUSD: 10.333},
			{Date: "2025-08-01T01:00:00Z", RealizedPnLUSD: 10.333},
		},
	}
	svc := NewPnLService(gw)

	report := svc.ComputePnL(context.Background(), "0x1111111111111111111111111111111111111111", "2025-08-01", "2025-08-01")
	require.Len(t, report.Daily, 1)

	// 20.666 rounds once, at emission.
	assert.Equal(t, 20.67, report.Daily[0].RealizedPnLUSD)
	assert.Equal(t, 20.67, report.Daily[0].NetPnLUSD)
	assert.Equal(t, 10020.67, report.Daily[0].EquityUSD)
}

func TestComputePnL_PartialGatewayFailure(t *testing.T) {
	gw := &fakeTradingGateway{
		tradesErr: errors.New("upstream down"),
		positions: []domain.PositionRecord{
			{LastUpdated: "2025-08-01T12:00:00Z", UnrealizedPnLUSD: 12.34},
		},
	}
	svc := NewPnLService(gw)

	report := svc.ComputePnL(context.Background(), "0x1111111111111111111111111111111111111111", "2025-08-01", "2025-08-01")
	require.Len(t, report.Daily, 1)

	// Failed trades call degrades to no trades; positions still count.
	assert.Zero(t, report.Daily[0].RealizedPnLUSD)
	assert.Equal(t, 12.34, report.Daily[0].UnrealizedPnLUSD)
	assert.Equal(t, 10012.34, report.Daily[0].EquityUSD)
}

func TestComputePnL_InvalidRangeFailureReport(t *testing.T) {
	svc := NewPnLService(&fakeTradingGateway{})

	report := svc.ComputePnL(context.Background(), "0x1111111111111111111111111111111111111111", "not-a-date", "2025-08-01")

	require.NotNil(t, report)
	assert.Empty(t, report.Daily)
	assert.Equal(t, domain.PnLSummary{}, report.Summary)
	assert.Contains(t, report.Diagnostics.Notes, "Failed to compute wallet PnL")
}
