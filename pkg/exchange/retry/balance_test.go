package retry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/tradereport/pkg/types"
)

type accountStub struct {
	calls   int
	balance types.Balance
}

func (s *accountStub) QueryAssetBalance(ctx context.Context, asset string) (types.Balance, error) {
	s.calls++
	return s.balance, nil
}

type marketStub struct {
	calls int
}

func (s *marketStub) QueryMarket(ctx context.Context, symbol string) (*types.Market, error) {
	s.calls++
	return nil, types.InvalidTradingPairError{Symbol: symbol}
}

func TestQueryAssetBalanceUntilSuccessful(t *testing.T) {
	stub := &accountStub{balance: types.Balance{Currency: "BTC", Available: 0.5, Locked: 0.25}}

	balance, err := QueryAssetBalanceUntilSuccessful(context.Background(), stub, "BTC")
	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, 0.75, balance.Total())
}

func TestQueryMarketUntilSuccessful_InvalidPairStopsRetrying(t *testing.T) {
	stub := &marketStub{}

	_, err := QueryMarketUntilSuccessful(context.Background(), stub, "NOPEUSDT")
	require.Error(t, err)

	var invalidPair types.InvalidTradingPairError
	require.ErrorAs(t, err, &invalidPair)
	assert.Equal(t, "NOPEUSDT", invalidPair.Symbol)

	// a permanent error must not burn the retry budget
	assert.Equal(t, 1, stub.calls)
}
