package binance

import (
	"errors"
	"testing"

	"github.com/adshao/go-binance/v2/common"
	"github.com/stretchr/testify/assert"

	"github.com/c9s/tradereport/pkg/types"
)

func TestIsRateLimitError(t *testing.T) {
	apiErr := &common.APIError{Code: errTooManyRequests, Message: "Too many requests."}
	assert.True(t, isRateLimitError(apiErr))
	assert.False(t, isRateLimitError(errors.New("plain error")))
	assert.False(t, isRateLimitError(&common.APIError{Code: errInvalidSymbol}))
	assert.False(t, isRateLimitError(nil))
}

func TestIsInvalidSymbolError(t *testing.T) {
	assert.True(t, isInvalidSymbolError(&common.APIError{Code: errInvalidSymbol, Message: "Invalid symbol."}))
	assert.False(t, isInvalidSymbolError(&common.APIError{Code: errTooManyRequests}))
}

func TestConvertError(t *testing.T) {
	converted := convertError(&common.APIError{Code: errTooManyRequests, Message: "Too many requests."})
	assert.True(t, errors.Is(converted, types.ErrRateLimited))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, convertError(plain))
}
