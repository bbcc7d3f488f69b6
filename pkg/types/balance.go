package types

import "fmt"

type Balance struct {
	Currency  string  `json:"currency"`
	Available float64 `json:"available"`
	Locked    float64 `json:"locked,omitempty"`
}

// Total returns the total balance of the asset, the locked part included.
func (b Balance) Total() float64 {
	return b.Available + b.Locked
}

func (b Balance) String() string {
	if b.Locked > 0 {
		return fmt.Sprintf("%s: %f (locked %f)", b.Currency, b.Available, b.Locked)
	}

	return fmt.Sprintf("%s: %f", b.Currency, b.Available)
}
