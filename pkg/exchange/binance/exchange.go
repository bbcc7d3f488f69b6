package binance

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/c9s/tradereport/pkg/types"
)

const defaultQueryLimit = 1000

var log = logrus.WithFields(logrus.Fields{
	"exchange": "binance",
})

// binance rate limits are weight based, pacing the history endpoint is
// enough to keep a full export under the request weight budget.
var queryTradeLimiter = rate.NewLimiter(rate.Every(250*time.Millisecond), 2)

func init() {
	_ = types.Exchange(&Exchange{})
}

type Exchange struct {
	client *binance.Client
}

func New(key, secret string) *Exchange {
	var client = binance.NewClient(key, secret)

	// the SDK defaults to http.DefaultClient, which is shared and has no timeout
	client.HTTPClient = &http.Client{Timeout: 15 * time.Second}

	return &Exchange{
		client: client,
	}
}

func (e *Exchange) Name() types.ExchangeName {
	return types.ExchangeBinance
}

func (e *Exchange) QueryTicker(ctx context.Context, symbol string) (*types.Ticker, error) {
	symbol = strings.ToUpper(symbol)

	stats, err := e.client.NewListPriceChangeStatsService().Symbol(symbol).Do(ctx)
	if err != nil {
		recordAPICall("ticker", err)
		return nil, convertError(err)
	}
	recordAPICall("ticker", nil)

	if len(stats) != 1 {
		return nil, fmt.Errorf("unexpected ticker response for %s, got %d stats", symbol, len(stats))
	}

	return toGlobalTicker(stats[0])
}

// QueryAssetBalance returns the spot balance of a single asset. An asset
// that does not appear in the account payload is reported as a zero
// balance, binance omits assets the account never touched.
func (e *Exchange) QueryAssetBalance(ctx context.Context, asset string) (types.Balance, error) {
	asset = strings.ToUpper(asset)

	account, err := e.client.NewGetAccountService().Do(ctx)
	if err != nil {
		recordAPICall("account", err)
		return types.Balance{}, convertError(err)
	}
	recordAPICall("account", nil)

	for _, b := range account.Balances {
		if b.Asset != asset {
			continue
		}

		return toGlobalBalance(b)
	}

	return types.Balance{Currency: asset}, nil
}

func (e *Exchange) QueryMarket(ctx context.Context, symbol string) (*types.Market, error) {
	symbol = strings.ToUpper(symbol)

	log.Infof("querying market info for %s...", symbol)

	exchangeInfo, err := e.client.NewExchangeInfoService().Symbol(symbol).Do(ctx)
	if err != nil {
		recordAPICall("exchangeInfo", err)
		if isInvalidSymbolError(err) {
			return nil, types.InvalidTradingPairError{Symbol: symbol}
		}

		return nil, convertError(err)
	}
	recordAPICall("exchangeInfo", nil)

	for _, s := range exchangeInfo.Symbols {
		if s.Symbol != symbol {
			continue
		}

		market := toGlobalMarket(s)
		return &market, nil
	}

	return nil, types.InvalidTradingPairError{Symbol: symbol}
}

// QueryTrades fetches one page of account trades. When LastTradeID is set
// the page starts from that trade id inclusively, which is how the caller
// walks the history with the fromId cursor.
func (e *Exchange) QueryTrades(ctx context.Context, symbol string, options *types.TradeQueryOptions) (trades []types.Trade, err error) {
	symbol = strings.ToUpper(symbol)

	if err := queryTradeLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	req := e.client.NewListTradesService().
		Symbol(symbol).
		Limit(defaultQueryLimit)

	if options.Limit > 0 {
		req.Limit(int(options.Limit))
	}

	if options.LastTradeID > 0 {
		// fromId and startTime are mutually exclusive on this endpoint
		req.FromID(int64(options.LastTradeID))
	} else {
		if options.StartTime != nil {
			req.StartTime(options.StartTime.UnixMilli())
		}
		if options.EndTime != nil {
			req.EndTime(options.EndTime.UnixMilli())
		}
	}

	remoteTrades, err := req.Do(ctx)
	if err != nil {
		recordAPICall("myTrades", err)
		return nil, convertError(err)
	}
	recordAPICall("myTrades", nil)

	for _, t := range remoteTrades {
		localTrade, err := toGlobalTrade(*t)
		if err != nil {
			return nil, err
		}

		log.Debugf("trade: %d %s %4s price: %s volume: %s %s", t.ID, t.Symbol, localTrade.Side, t.Price, t.Quantity, localTrade.Time)
		trades = append(trades, *localTrade)
	}

	return trades, nil
}
