package retry

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/c9s/tradereport/pkg/types"
	"github.com/c9s/tradereport/pkg/util/backoff"
)

func QueryAssetBalanceUntilSuccessful(
	ctx context.Context, ex types.ExchangeAccountService, asset string,
) (bal types.Balance, err error) {
	var op = func() (err2 error) {
		bal, err2 = ex.QueryAssetBalance(ctx, asset)
		if err2 != nil {
			log.WithError(err2).Errorf("failed to query %s balance", asset)
		}

		return err2
	}

	err = backoff.RetryGeneral(ctx, op)
	return bal, err
}

func QueryMarketUntilSuccessful(
	ctx context.Context, ex types.ExchangeMarketService, symbol string,
) (market *types.Market, err error) {
	var stopOnErr error
	var op = func() (err2 error) {
		market, err2 = ex.QueryMarket(ctx, symbol)

		var invalidPair types.InvalidTradingPairError
		if errors.As(err2, &invalidPair) {
			// an unknown symbol never becomes known by retrying
			stopOnErr = err2
			return nil
		}

		return err2
	}

	err = backoff.RetryGeneral(ctx, op)
	if stopOnErr != nil {
		err = stopOnErr
	}
	return market, err
}
