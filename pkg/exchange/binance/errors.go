package binance

import (
	"errors"

	"github.com/adshao/go-binance/v2/common"
	pkgerrors "github.com/pkg/errors"

	"github.com/c9s/tradereport/pkg/types"
)

// https://binance-docs.github.io/apidocs/spot/en/#error-codes
const (
	errTooManyRequests = -1003
	errInvalidSymbol   = -1121
)

func apiErrorCode(err error) (int64, bool) {
	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}

	return 0, false
}

func isRateLimitError(err error) bool {
	code, ok := apiErrorCode(err)
	return ok && code == errTooManyRequests
}

func isInvalidSymbolError(err error) bool {
	code, ok := apiErrorCode(err)
	return ok && code == errInvalidSymbol
}

// convertError translates SDK errors into the shared taxonomy. Rate limit
// errors become matchable via errors.Is(err, types.ErrRateLimited), anything
// else passes through untouched.
func convertError(err error) error {
	if isRateLimitError(err) {
		return pkgerrors.Wrap(types.ErrRateLimited, err.Error())
	}

	return err
}
