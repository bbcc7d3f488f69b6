package report

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/c9s/tradereport/pkg/pricesolver"
	"github.com/c9s/tradereport/pkg/types"
)

// Row is one normalized trade of the report. ID is the trade id, it is the
// row identity but not one of the exported columns.
type Row struct {
	ID uint64

	Price                   float64
	Qty                     float64
	QuoteQty                float64
	Commission              float64
	CommissionAsset         string
	Side                    string
	CommissionAssetUsdPrice float64
	Time                    types.Time
}

// TradeReport is the shaped trade history of one symbol.
type TradeReport struct {
	Symbol string
	Rows   []Row

	// MissingPrices lists the fee currencies that could not be resolved to
	// a USD price. Their rows carry a zero CommissionAssetUsdPrice.
	MissingPrices []string
}

// Generate fetches the full trade history of the symbol and shapes it.
func (f *Fetcher) Generate(ctx context.Context, symbol string, since time.Time) (*TradeReport, error) {
	trades, err := f.FetchTrades(ctx, symbol, since)
	if err != nil {
		return nil, err
	}

	return f.format(ctx, symbol, trades)
}

// format maps trades into report rows. The USD price of each distinct fee
// currency is resolved exactly once per call, the memo below is the only
// state and lives for this call only.
func (f *Fetcher) format(ctx context.Context, symbol string, trades []types.Trade) (*TradeReport, error) {
	report := &TradeReport{
		Symbol: symbol,
		Rows:   make([]Row, 0, len(trades)),
	}

	usdPrices := map[string]float64{}

	for _, trade := range trades {
		usdPrice, ok := usdPrices[trade.FeeCurrency]
		if !ok {
			p, err := f.solver.ResolveUsdPrice(ctx, trade.FeeCurrency)
			if err != nil {
				var notFound pricesolver.PriceNotFoundError
				if !errors.As(err, &notFound) {
					return nil, err
				}

				log.WithError(err).Warnf("fee currency %s has no usd price, the fee value column will be zero", trade.FeeCurrency)
				report.MissingPrices = append(report.MissingPrices, trade.FeeCurrency)
				p = 0
			}

			usdPrices[trade.FeeCurrency] = p
			usdPrice = p
		}

		side := "sell"
		if trade.IsBuyer {
			side = "buy"
		}

		report.Rows = append(report.Rows, Row{
			ID:                      trade.ID,
			Price:                   trade.Price,
			Qty:                     trade.Quantity,
			QuoteQty:                trade.QuoteQuantity,
			Commission:              trade.Fee,
			CommissionAsset:         trade.FeeCurrency,
			Side:                    side,
			CommissionAssetUsdPrice: usdPrice,
			Time:                    trade.Time,
		})
	}

	return report, nil
}

// TotalFeeUsd sums commission * commissionAssetUsdPrice over all rows.
func (r *TradeReport) TotalFeeUsd() float64 {
	var total float64
	for _, row := range r.Rows {
		total += row.Commission * row.CommissionAssetUsdPrice
	}

	return total
}

func (r *TradeReport) CsvHeader() []string {
	return []string{"price", "qty", "quoteQty", "commission", "commissionAsset", "side", "commissionAssetUsdPrice", "date_time"}
}

func (r *TradeReport) CsvRecords() [][]string {
	records := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		records = append(records, []string{
			strconv.FormatFloat(row.Price, 'f', -1, 64),
			strconv.FormatFloat(row.Qty, 'f', -1, 64),
			strconv.FormatFloat(row.QuoteQty, 'f', -1, 64),
			strconv.FormatFloat(row.Commission, 'f', -1, 64),
			row.CommissionAsset,
			row.Side,
			strconv.FormatFloat(row.CommissionAssetUsdPrice, 'f', -1, 64),
			row.Time.Format(),
		})
	}

	return records
}
