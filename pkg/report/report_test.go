package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/tradereport/pkg/pricesolver"
	"github.com/c9s/tradereport/pkg/types"
)

type resolverStub struct {
	prices map[string]float64
	calls  map[string]int
	err    error
}

func (s *resolverStub) ResolveUsdPrice(ctx context.Context, asset string) (float64, error) {
	if s.calls == nil {
		s.calls = map[string]int{}
	}
	s.calls[asset]++

	if s.err != nil {
		return 0, s.err
	}

	p, ok := s.prices[asset]
	if !ok {
		return 0, pricesolver.PriceNotFoundError{Asset: asset}
	}

	return p, nil
}

func TestFormat_ResolvesEachFeeCurrencyOnce(t *testing.T) {
	solver := &resolverStub{prices: map[string]float64{"BNB": 310.5, "USDT": 1}}
	f := NewFetcher(nil, solver)

	// 1000 rows split between two fee currencies
	var trades []types.Trade
	for i := 0; i < 1000; i++ {
		feeCurrency := "BNB"
		if i%2 == 0 {
			feeCurrency = "USDT"
		}

		trades = append(trades, types.Trade{
			ID:          uint64(i + 1),
			IsBuyer:     i%3 == 0,
			Fee:         0.002,
			FeeCurrency: feeCurrency,
			Time:        types.NewTimeFromMillis(1690000000000),
		})
	}

	report, err := f.format(context.Background(), "BTCUSDT", trades)
	require.NoError(t, err)
	require.Len(t, report.Rows, 1000)

	assert.Equal(t, 1, solver.calls["BNB"])
	assert.Equal(t, 1, solver.calls["USDT"])

	for _, row := range report.Rows {
		switch row.CommissionAsset {
		case "BNB":
			assert.Equal(t, 310.5, row.CommissionAssetUsdPrice)
		case "USDT":
			assert.Equal(t, 1.0, row.CommissionAssetUsdPrice)
		}
	}
}

func TestFormat_SideMapping(t *testing.T) {
	solver := &resolverStub{prices: map[string]float64{"USDT": 1}}
	f := NewFetcher(nil, solver)

	trades := []types.Trade{
		{ID: 1, IsBuyer: true, FeeCurrency: "USDT"},
		{ID: 2, IsBuyer: false, FeeCurrency: "USDT"},
	}

	report, err := f.format(context.Background(), "BTCUSDT", trades)
	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "buy", report.Rows[0].Side)
	assert.Equal(t, "sell", report.Rows[1].Side)
}

func TestFormat_MissingPrice(t *testing.T) {
	solver := &resolverStub{prices: map[string]float64{}}
	f := NewFetcher(nil, solver)

	trades := []types.Trade{
		{ID: 1, Fee: 0.5, FeeCurrency: "WEIRD"},
		{ID: 2, Fee: 0.5, FeeCurrency: "WEIRD"},
	}

	report, err := f.format(context.Background(), "BTCUSDT", trades)
	require.NoError(t, err)
	require.Len(t, report.Rows, 2)

	assert.Equal(t, []string{"WEIRD"}, report.MissingPrices)
	assert.Equal(t, 1, solver.calls["WEIRD"])
	for _, row := range report.Rows {
		assert.Zero(t, row.CommissionAssetUsdPrice)
	}
}

func TestFormat_ResolverErrorPropagates(t *testing.T) {
	boom := errors.New("connection reset")
	solver := &resolverStub{err: boom}
	f := NewFetcher(nil, solver)

	_, err := f.format(context.Background(), "BTCUSDT", []types.Trade{{ID: 1, FeeCurrency: "BNB"}})
	assert.ErrorIs(t, err, boom)
}

func TestTradeReport_Csv(t *testing.T) {
	solver := &resolverStub{prices: map[string]float64{"BNB": 310.5}}
	f := NewFetcher(nil, solver)

	trades := []types.Trade{
		{
			ID:            28457,
			Price:         25000.5,
			Quantity:      0.012,
			QuoteQuantity: 300.006,
			IsBuyer:       true,
			Fee:           0.00025,
			FeeCurrency:   "BNB",
			Time:          types.NewTimeFromMillis(1690000000000),
		},
	}

	report, err := f.format(context.Background(), "BTCUSDT", trades)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"price", "qty", "quoteQty", "commission", "commissionAsset", "side", "commissionAssetUsdPrice", "date_time",
	}, report.CsvHeader())

	records := report.CsvRecords()
	require.Len(t, records, 1)
	assert.Equal(t, []string{
		"25000.5", "0.012", "300.006", "0.00025", "BNB", "buy", "310.5",
		types.NewTimeFromMillis(1690000000000).Format(),
	}, records[0])

	var buf bytes.Buffer
	require.NoError(t, WriteCsv(&buf, report))
	assert.Contains(t, buf.String(), "price,qty,quoteQty,commission,commissionAsset,side,commissionAssetUsdPrice,date_time")
}

func TestTradeReport_TotalFeeUsd(t *testing.T) {
	report := &TradeReport{
		Rows: []Row{
			{Commission: 0.5, CommissionAssetUsdPrice: 2},
			{Commission: 1.5, CommissionAssetUsdPrice: 4},
		},
	}

	assert.Equal(t, 7.0, report.TotalFeeUsd())
}
