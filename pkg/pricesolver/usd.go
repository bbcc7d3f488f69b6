package pricesolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/c9s/tradereport/pkg/types"
)

// StableCoins are the quote currencies assumed pegged 1:1 to USD. The
// order matters, the first pair that yields a ticker wins.
var StableCoins = []string{"USDT", "USDC", "BUSD", "TUSD"}

// PriceNotFoundError means none of the stable coin pairs of the asset is
// listed on the exchange, so no USD reference price could be resolved.
type PriceNotFoundError struct {
	Asset string
}

func (e PriceNotFoundError) Error() string {
	return fmt.Sprintf("no usd price found for asset %s", e.Asset)
}

// UsdPriceSolver resolves an approximate USD price of an asset by probing
// the {asset}{stableCoin} tickers one by one.
type UsdPriceSolver struct {
	service types.ExchangeTickerService
}

func New(service types.ExchangeTickerService) *UsdPriceSolver {
	return &UsdPriceSolver{service: service}
}

// ResolveUsdPrice returns the last traded USD price of the given asset.
// Stable coins resolve to 1 without touching the exchange. A pair that the
// exchange does not list is skipped; rate limit and context errors abort
// the probing and propagate.
func (s *UsdPriceSolver) ResolveUsdPrice(ctx context.Context, asset string) (float64, error) {
	asset = strings.ToUpper(asset)

	for _, stable := range StableCoins {
		if asset == stable {
			return 1.0, nil
		}
	}

	for _, stable := range StableCoins {
		symbol := asset + stable

		ticker, err := s.service.QueryTicker(ctx, symbol)
		if err != nil {
			if errors.Is(err, types.ErrRateLimited) || ctx.Err() != nil {
				return 0, err
			}

			// most likely the symbol combination is not listed
			log.WithError(err).Debugf("ticker %s not available, trying the next quote", symbol)
			continue
		}

		if price := ticker.GetValidPrice(); price > 0 {
			return price, nil
		}
	}

	return 0, PriceNotFoundError{Asset: asset}
}
