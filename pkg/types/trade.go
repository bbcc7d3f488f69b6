package types

import (
	"fmt"
	"time"
)

type ExchangeName string

const ExchangeBinance = ExchangeName("binance")

func (n ExchangeName) String() string {
	return string(n)
}

// Trade is a normalized account trade record pulled from the exchange.
type Trade struct {
	// ID is the source trade ID, it is also the pagination cursor of the
	// trade history endpoint.
	ID       uint64       `json:"id"`
	OrderID  uint64       `json:"orderID"`
	Exchange ExchangeName `json:"exchange"`
	Symbol   string       `json:"symbol"`

	Price         float64 `json:"price"`
	Quantity      float64 `json:"qty"`
	QuoteQuantity float64 `json:"quoteQty"`

	Side    SideType `json:"side"`
	IsBuyer bool     `json:"isBuyer"`
	IsMaker bool     `json:"isMaker"`
	Time    Time     `json:"tradedAt"`

	Fee         float64 `json:"commission"`
	FeeCurrency string  `json:"commissionAsset"`
}

func (trade Trade) String() string {
	return fmt.Sprintf("TRADE %s %s %4s %f @ %f orderID %d %s",
		trade.Exchange.String(),
		trade.Symbol,
		trade.Side,
		trade.Quantity,
		trade.Price,
		trade.OrderID,
		trade.Time.Time().Format(time.StampMilli),
	)
}

// TradeQueryOptions is the query options of the trade history endpoint.
// LastTradeID is the fromId cursor, the returned page includes the cursor
// record itself.
type TradeQueryOptions struct {
	StartTime   *time.Time
	EndTime     *time.Time
	Limit       int64
	LastTradeID uint64
}
