package types

// Market is the trading pair metadata the exchange publishes for a symbol.
type Market struct {
	Symbol      string `json:"symbol"`
	LocalSymbol string `json:"localSymbol,omitempty"`

	PricePrecision  int `json:"pricePrecision"`
	VolumePrecision int `json:"volumePrecision"`

	BaseCurrency  string `json:"baseCurrency"`
	QuoteCurrency string `json:"quoteCurrency"`
}
