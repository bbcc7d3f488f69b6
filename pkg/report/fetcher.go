package report

import (
	"context"
	"errors"
	"strings"
	"time"

	backoff2 "github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/c9s/tradereport/pkg/types"
	"github.com/c9s/tradereport/pkg/util/backoff"
)

var log = logrus.WithField("service", "report")

const (
	// DefaultPageLimit is the page size of the trade history endpoint.
	DefaultPageLimit = 1000

	// DefaultRateLimitInterval covers the one minute violation window of
	// the exchange rate limiter, plus a second of slack.
	DefaultRateLimitInterval = 61 * time.Second

	// DefaultMaxRateLimitRetries bounds the backoff loop of a single page
	// fetch. Exceeding it surfaces types.RateLimitExceededError.
	DefaultMaxRateLimitRetries = 8
)

// UsdPriceResolver resolves the approximate USD price of an asset.
// *pricesolver.UsdPriceSolver is the production implementation.
type UsdPriceResolver interface {
	ResolveUsdPrice(ctx context.Context, asset string) (float64, error)
}

// Fetcher pulls the complete trade history of a symbol from the exchange
// and shapes it into a TradeReport. Each call owns its own accumulation,
// the zero value holds no state between calls.
type Fetcher struct {
	service types.ExchangeTradeHistoryService
	solver  UsdPriceResolver

	// RateLimitInterval is the base wait after the exchange reports a
	// rate limit violation.
	RateLimitInterval time.Duration

	// MaxRateLimitRetries bounds consecutive rate limited retries of one
	// page fetch.
	MaxRateLimitRetries uint64

	limiter *rate.Limiter
	sleep   func(ctx context.Context, d time.Duration) error
}

func NewFetcher(service types.ExchangeTradeHistoryService, solver UsdPriceResolver) *Fetcher {
	return &Fetcher{
		service:             service,
		solver:              solver,
		RateLimitInterval:   DefaultRateLimitInterval,
		MaxRateLimitRetries: DefaultMaxRateLimitRetries,
		limiter:             rate.NewLimiter(rate.Every(250*time.Millisecond), 2),
		sleep:               sleepWithContext,
	}
}

// FetchTrades retrieves every trade of the symbol since the given start
// time, walking the history with the fromId cursor until the last trade id
// stops advancing.
func (f *Fetcher) FetchTrades(ctx context.Context, symbol string, since time.Time) ([]types.Trade, error) {
	symbol = strings.ToUpper(symbol)

	trades, err := f.fetchPage(ctx, symbol, &types.TradeQueryOptions{
		StartTime: &since,
		Limit:     DefaultPageLimit,
	})
	if err != nil {
		return nil, err
	}

	if len(trades) == 0 {
		return nil, types.NoTradesFoundError{Symbol: symbol, StartTime: since}
	}

	for {
		lastID := trades[len(trades)-1].ID

		page, err := f.fetchPage(ctx, symbol, &types.TradeQueryOptions{
			LastTradeID: lastID,
			Limit:       DefaultPageLimit,
		})
		if err != nil {
			return nil, err
		}

		// the cursor is inclusive, so a page that only repeats the cursor
		// record means the history is exhausted
		if len(page) == 0 || page[len(page)-1].ID == lastID {
			break
		}

		trades = append(trades, page[1:]...)
	}

	log.Infof("fetched %d trades for %s since %s", len(trades), symbol, since.Format(time.RFC3339))
	return trades, nil
}

// fetchPage queries one history page, absorbing rate limit errors with a
// bounded backoff. Any other error fails the page immediately.
func (f *Fetcher) fetchPage(ctx context.Context, symbol string, options *types.TradeQueryOptions) ([]types.Trade, error) {
	bo := backoff.NewRateLimit(f.RateLimitInterval, f.MaxRateLimitRetries)

	var attempts int
	for {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		trades, err := f.service.QueryTrades(ctx, symbol, options)
		if err == nil {
			return trades, nil
		}

		if !errors.Is(err, types.ErrRateLimited) {
			return nil, err
		}

		next := bo.NextBackOff()
		if next == backoff2.Stop {
			return nil, types.RateLimitExceededError{Symbol: symbol, Attempts: attempts}
		}

		attempts++
		log.Warnf("rate limit exceeded on %s, sleeping for %s (retry %d/%d)", symbol, next, attempts, f.MaxRateLimitRetries)

		if err := f.sleep(ctx, next); err != nil {
			return nil, err
		}
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
