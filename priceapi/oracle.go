package priceapi

import "context"

// PriceOracle looks up a single card's market price. Implementations may
// cache and rate-limit; Lookup must be safe for concurrent use. Any
// failure is returned as an error; Gate.PriceOf retries failed lookups
// itself, so implementations make a single attempt per call.
type PriceOracle interface {
	Lookup(ctx context.Context, name string) (PriceResult, error)
}

// PriceResult is the outcome of a single PriceOracle.Lookup call. Known is
// false when the oracle has no price data for the name — distinct from an
// error, and treated leniently by price-ceiling checks.
type PriceResult struct {
	Price Money
	Known bool
}
