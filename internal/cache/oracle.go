package cache

import (
	"context"

	"github.com/commanderforge/commanderforge/priceapi"
)

// CachingOracle wraps a priceapi.PriceOracle with the on-disk Store,
// checking it before delegating, and persisting every delegate result.
// This sits below priceapi.Gate's own in-memory per-run cache, giving
// repeated composition runs a warm start across process restarts.
type CachingOracle struct {
	Store    *Store
	Delegate priceapi.PriceOracle
}

// Lookup implements priceapi.PriceOracle.
func (c *CachingOracle) Lookup(ctx context.Context, name string) (priceapi.PriceResult, error) {
	if cents, known, found, err := c.Store.Get(ctx, name); err == nil && found {
		return priceapi.PriceResult{Price: priceapi.Money(cents), Known: known}, nil
	}

	result, err := c.Delegate.Lookup(ctx, name)
	if err != nil {
		return priceapi.PriceResult{}, err
	}

	_ = c.Store.Put(ctx, name, int64(result.Price), result.Known)
	return result, nil
}
