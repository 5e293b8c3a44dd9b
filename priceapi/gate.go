package priceapi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"
)

// ErrPriceLimit is returned by CheckCard/CheckDeck when a price exceeds
// its ceiling, even after the 1.1x tolerance.
var ErrPriceLimit = errors.New("priceapi: price limit exceeded")

const (
	maxLookupRetries = 3
	retryBackoff     = 100 * time.Millisecond

	// toleranceMultiplier is the deliberate 1.1x slack on every ceiling
	// check: a card at 102% of budget still clears.
	toleranceMultiplier = 1.1
)

// Unlimited is the Gate sentinel for "no price ceiling": CheckCard and
// CheckDeck always succeed.
var Unlimited *Gate = nil

// Gate is the stateful, per-composition-run price ceiling enforcer from
// the Price Gate component. It owns a local lookup cache and a running
// deck total; neither is shared across composition runs.
type Gate struct {
	oracle       PriceOracle
	maxCardPrice *Money
	maxDeckPrice *Money

	mu      sync.Mutex
	cache   map[string]PriceResult
	running Money
}

// NewGate builds a Gate backed by oracle, with optional per-card and
// per-deck ceilings. A nil oracle is valid: PriceOf then always returns
// Known=false, and every check passes.
func NewGate(oracle PriceOracle, maxCardPrice, maxDeckPrice *Money) *Gate {
	return &Gate{
		oracle:       oracle,
		maxCardPrice: maxCardPrice,
		maxDeckPrice: maxDeckPrice,
		cache:        make(map[string]PriceResult),
	}
}

// IsUnlimited reports whether g has no ceilings configured, matching the
// "unlimited sentinel" contract: a nil Gate, or a Gate with both ceilings
// unset, bypasses every check.
func (g *Gate) IsUnlimited() bool {
	return g == nil || (g.maxCardPrice == nil && g.maxDeckPrice == nil)
}

// PriceOf looks up name, caching the result. A failed lookup, whatever
// the error, is tried again after a fixed backoff, up to maxLookupRetries
// attempts in all; a final failure is returned as an error (and not
// cached) rather than treated as Unknown.
func (g *Gate) PriceOf(ctx context.Context, name string) (PriceResult, error) {
	if g == nil || g.oracle == nil {
		return PriceResult{Known: false}, nil
	}

	g.mu.Lock()
	if cached, ok := g.cache[name]; ok {
		g.mu.Unlock()
		return cached, nil
	}
	g.mu.Unlock()

	var result PriceResult
	var err error
	for attempt := 0; attempt < maxLookupRetries; attempt++ {
		result, err = g.oracle.Lookup(ctx, name)
		if err == nil {
			break
		}
		if attempt < maxLookupRetries-1 {
			select {
			case <-ctx.Done():
				return PriceResult{}, ctx.Err()
			case <-time.After(retryBackoff):
			}
		}
	}
	if err != nil {
		return PriceResult{}, fmt.Errorf("priceapi: lookup %q: %w", name, err)
	}

	g.mu.Lock()
	g.cache[name] = result
	g.mu.Unlock()
	return result, nil
}

// CheckCard succeeds iff price is within the per-card ceiling (times the
// tolerance multiplier), or no per-card ceiling is set.
func (g *Gate) CheckCard(name string, price PriceResult) error {
	if g == nil || g.maxCardPrice == nil || !price.Known {
		return nil
	}
	limit := Money(math.Round(float64(*g.maxCardPrice) * toleranceMultiplier))
	if price.Price > limit {
		return fmt.Errorf("%w: %s at %s exceeds limit %s", ErrPriceLimit, name, price.Price.Dollars(), limit.Dollars())
	}
	return nil
}

// Accumulate adds price to the running deck total. Unknown prices don't
// contribute, since there's nothing to accumulate.
func (g *Gate) Accumulate(price PriceResult) {
	if g == nil || !price.Known {
		return
	}
	g.mu.Lock()
	g.running += price.Price
	g.mu.Unlock()
}

// WouldExceedDeck reports whether accumulating price on top of the
// current running total would fail CheckDeck, without mutating state.
// Callers use this to decide whether to add a card before committing to
// Accumulate, since Accumulate has no rollback.
func (g *Gate) WouldExceedDeck(price PriceResult) bool {
	if g == nil || g.maxDeckPrice == nil || !price.Known {
		return false
	}
	g.mu.Lock()
	total := g.running + price.Price
	g.mu.Unlock()
	limit := Money(math.Round(float64(*g.maxDeckPrice) * toleranceMultiplier))
	return total > limit
}

// CheckDeck succeeds iff the running total is within the per-deck ceiling
// (times the tolerance multiplier), or no per-deck ceiling is set.
func (g *Gate) CheckDeck() error {
	if g == nil || g.maxDeckPrice == nil {
		return nil
	}
	g.mu.Lock()
	total := g.running
	g.mu.Unlock()

	limit := Money(math.Round(float64(*g.maxDeckPrice) * toleranceMultiplier))
	if total > limit {
		return fmt.Errorf("%w: deck total %s exceeds limit %s", ErrPriceLimit, total.Dollars(), limit.Dollars())
	}
	return nil
}
