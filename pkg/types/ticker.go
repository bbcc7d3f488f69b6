package types

import (
	"fmt"
	"time"
)

type Ticker struct {
	Time   time.Time
	Volume float64 // `volume` from binance
	Last   float64 // `lastPrice` from binance
	Open   float64 // `openPrice` from binance
	High   float64 // `highPrice` from binance
	Low    float64 // `lowPrice` from binance
	Buy    float64 // `bidPrice` from binance
	Sell   float64 // `askPrice` from binance
}

// GetValidPrice returns the valid price from the ticker
// if the last price is not zero, return the last price
// if the buy price is not zero, return the buy price
// if the sell price is not zero, return the sell price
// otherwise return the open price
func (t *Ticker) GetValidPrice() float64 {
	if t.Last != 0 {
		return t.Last
	}

	if t.Buy != 0 {
		return t.Buy
	}

	if t.Sell != 0 {
		return t.Sell
	}

	return t.Open
}

func (t *Ticker) String() string {
	return fmt.Sprintf("O:%f H:%f L:%f LAST:%f BID/ASK:%f/%f TIME:%s", t.Open, t.High, t.Low, t.Last, t.Buy, t.Sell, t.Time.String())
}
