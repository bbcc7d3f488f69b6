package binance

import (
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/pkg/errors"

	"github.com/c9s/tradereport/pkg/types"
)

func toGlobalMarket(symbol binance.Symbol) types.Market {
	return types.Market{
		Symbol:          symbol.Symbol,
		LocalSymbol:     symbol.Symbol,
		PricePrecision:  symbol.QuotePrecision,
		VolumePrecision: symbol.BaseAssetPrecision,
		BaseCurrency:    symbol.BaseAsset,
		QuoteCurrency:   symbol.QuoteAsset,
	}
}

func toGlobalTicker(stats *binance.PriceChangeStats) (*types.Ticker, error) {
	var parseErr error
	parse := func(name, s string) float64 {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil && parseErr == nil {
			parseErr = errors.Wrapf(err, "ticker %s parse error, value: %q", name, s)
		}
		return v
	}

	ticker := &types.Ticker{
		Time:   time.Unix(0, stats.CloseTime*int64(time.Millisecond)),
		Volume: parse("volume", stats.Volume),
		Last:   parse("lastPrice", stats.LastPrice),
		Open:   parse("openPrice", stats.OpenPrice),
		High:   parse("highPrice", stats.HighPrice),
		Low:    parse("lowPrice", stats.LowPrice),
		Buy:    parse("bidPrice", stats.BidPrice),
		Sell:   parse("askPrice", stats.AskPrice),
	}

	if parseErr != nil {
		return nil, parseErr
	}

	return ticker, nil
}

func toGlobalBalance(b binance.Balance) (types.Balance, error) {
	free, err := strconv.ParseFloat(b.Free, 64)
	if err != nil {
		return types.Balance{}, errors.Wrapf(err, "free balance parse error, value: %q", b.Free)
	}

	locked, err := strconv.ParseFloat(b.Locked, 64)
	if err != nil {
		return types.Balance{}, errors.Wrapf(err, "locked balance parse error, value: %q", b.Locked)
	}

	return types.Balance{
		Currency:  b.Asset,
		Available: free,
		Locked:    locked,
	}, nil
}

func toGlobalTrade(t binance.TradeV3) (*types.Trade, error) {
	var side types.SideType
	if t.IsBuyer {
		side = types.SideTypeBuy
	} else {
		side = types.SideTypeSell
	}

	price, err := strconv.ParseFloat(t.Price, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "price parse error, price: %+v", t.Price)
	}

	quantity, err := strconv.ParseFloat(t.Quantity, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "quantity parse error, quantity: %+v", t.Quantity)
	}

	quoteQuantity, err := strconv.ParseFloat(t.QuoteQuantity, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "quote quantity parse error, quoteQty: %+v", t.QuoteQuantity)
	}

	fee, err := strconv.ParseFloat(t.Commission, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "commission parse error, commission: %+v", t.Commission)
	}

	return &types.Trade{
		ID:            uint64(t.ID),
		OrderID:       uint64(t.OrderID),
		Exchange:      types.ExchangeBinance,
		Symbol:        t.Symbol,
		Price:         price,
		Quantity:      quantity,
		QuoteQuantity: quoteQuantity,
		Side:          side,
		IsBuyer:       t.IsBuyer,
		IsMaker:       t.IsMaker,
		Time:          types.NewTimeFromMillis(t.Time),
		Fee:           fee,
		FeeCurrency:   t.CommissionAsset,
	}, nil
}
