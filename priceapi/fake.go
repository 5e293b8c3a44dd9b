package priceapi

import "context"

// FakeOracle is an in-memory PriceOracle for tests: a fixed table of
// prices, with unknown names resolving to Known=false rather than an
// error.
type FakeOracle struct {
	Prices map[string]Money
}

// Lookup implements PriceOracle.
func (f *FakeOracle) Lookup(_ context.Context, name string) (PriceResult, error) {
	price, ok := f.Prices[name]
	if !ok {
		return PriceResult{Known: false}, nil
	}
	return PriceResult{Price: price, Known: true}, nil
}
