package priceapi

import (
	"context"
	"errors"
	"testing"
)

func money(dollars float64) Money {
	return Money(dollars * 100)
}

func TestGateUnlimitedBypassesChecks(t *testing.T) {
	var g *Gate
	if !g.IsUnlimited() {
		t.Fatal("nil gate should report unlimited")
	}
	if err := g.CheckCard("anything", PriceResult{Price: money(10000), Known: true}); err != nil {
		t.Errorf("unlimited gate rejected a card: %v", err)
	}
}

func TestGateCheckCardWithinTolerance(t *testing.T) {
	limit := money(10)
	g := NewGate(&FakeOracle{}, &limit, nil)

	if err := g.CheckCard("x", PriceResult{Price: money(10.9), Known: true}); err != nil {
		t.Errorf("expected price within 1.1x tolerance to pass, got %v", err)
	}
	if err := g.CheckCard("x", PriceResult{Price: money(12), Known: true}); !errors.Is(err, ErrPriceLimit) {
		t.Errorf("expected ErrPriceLimit for price over tolerance, got %v", err)
	}
}

func TestGatePriceOfCaches(t *testing.T) {
	fake := &FakeOracle{Prices: map[string]Money{"Sol Ring": money(2)}}
	g := NewGate(fake, nil, nil)

	first, err := g.PriceOf(context.Background(), "Sol Ring")
	if err != nil {
		t.Fatalf("PriceOf: %v", err)
	}
	if !first.Known || first.Price != money(2) {
		t.Fatalf("unexpected price: %+v", first)
	}

	second, err := g.PriceOf(context.Background(), "Sol Ring")
	if err != nil {
		t.Fatalf("PriceOf (cached): %v", err)
	}
	if second != first {
		t.Errorf("cached lookup diverged: %+v vs %+v", first, second)
	}
}

func TestGateAccumulateAndCheckDeck(t *testing.T) {
	limit := money(20)
	g := NewGate(&FakeOracle{}, nil, &limit)

	g.Accumulate(PriceResult{Price: money(10), Known: true})
	g.Accumulate(PriceResult{Price: money(8), Known: true})
	if err := g.CheckDeck(); err != nil {
		t.Errorf("expected deck total within tolerance, got %v", err)
	}

	g.Accumulate(PriceResult{Price: money(10), Known: true})
	if err := g.CheckDeck(); !errors.Is(err, ErrPriceLimit) {
		t.Errorf("expected ErrPriceLimit once over tolerance, got %v", err)
	}
}
