package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrRateLimited is wrapped by exchange implementations whenever the remote
// side reports that the request frequency budget is exhausted, so that
// callers can match it with errors.Is regardless of the SDK error type.
var ErrRateLimited = errors.New("rate limit exceeded")

// InvalidTradingPairError means the symbol is unknown to the exchange.
type InvalidTradingPairError struct {
	Symbol string
}

func (e InvalidTradingPairError) Error() string {
	return fmt.Sprintf("trading pair %s is not valid for the exchange", e.Symbol)
}

// NoTradesFoundError means the very first page of the trade history is
// empty. A later empty page is the normal loop termination, not this error.
type NoTradesFoundError struct {
	Symbol    string
	StartTime time.Time
}

func (e NoTradesFoundError) Error() string {
	return fmt.Sprintf("no trades found for trading pair %s since %s", e.Symbol, e.StartTime.Format(time.RFC3339))
}

// RateLimitExceededError is the terminal form of ErrRateLimited: the
// bounded backoff retries were all consumed and the page still could not
// be fetched.
type RateLimitExceededError struct {
	Symbol   string
	Attempts int
}

func (e RateLimitExceededError) Error() string {
	return fmt.Sprintf("rate limit exceeded for %s, giving up after %d retries", e.Symbol, e.Attempts)
}

func (e RateLimitExceededError) Unwrap() error {
	return ErrRateLimited
}
