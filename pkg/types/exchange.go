package types

import "context"

type ExchangeTickerService interface {
	QueryTicker(ctx context.Context, symbol string) (*Ticker, error)
}

type ExchangeAccountService interface {
	QueryAssetBalance(ctx context.Context, asset string) (Balance, error)
}

type ExchangeMarketService interface {
	QueryMarket(ctx context.Context, symbol string) (*Market, error)
}

type ExchangeTradeHistoryService interface {
	QueryTrades(ctx context.Context, symbol string, options *TradeQueryOptions) ([]Trade, error)
}

// Exchange is the minimal exchange surface this tool needs.
type Exchange interface {
	Name() ExchangeName

	ExchangeTickerService
	ExchangeAccountService
	ExchangeMarketService
	ExchangeTradeHistoryService
}
