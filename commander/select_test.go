package commander

import (
	"context"
	"testing"

	"github.com/commanderforge/commanderforge/corpus"
)

func poolWith(cards ...*corpus.Card) *corpus.Table {
	return &corpus.Table{Cards: cards}
}

func TestSelectCommanderExactMatch(t *testing.T) {
	atraxa := &corpus.Card{Name: "Atraxa, Praetors' Voice", TypeLine: "Legendary Creature — Phyrexian Angel Horror"}
	pool := poolWith(atraxa, &corpus.Card{Name: "Lightning Bolt", TypeLine: "Instant"})
	ui := &scriptedUI{texts: []string{"atraxa, praetors' voice"}, confirms: []bool{true}}

	got, err := SelectCommander(context.Background(), pool, ui)
	if err != nil {
		t.Fatalf("SelectCommander: %v", err)
	}
	if got != atraxa {
		t.Errorf("expected exact match on Atraxa, got %v", got)
	}
}

func TestSelectCommanderFuzzyAboveThreshold(t *testing.T) {
	atraxa := &corpus.Card{Name: "Atraxa, Praetors' Voice", TypeLine: "Legendary Creature — Phyrexian Angel Horror"}
	pool := poolWith(atraxa)
	ui := &scriptedUI{texts: []string{"Atraxa Praetors Voice"}, confirms: []bool{true}}

	got, err := SelectCommander(context.Background(), pool, ui)
	if err != nil {
		t.Fatalf("SelectCommander: %v", err)
	}
	if got != atraxa {
		t.Errorf("expected fuzzy match on Atraxa, got %v", got)
	}
}

func TestSelectCommanderRejectedConfirmationLoopsBack(t *testing.T) {
	atraxa := &corpus.Card{Name: "Atraxa, Praetors' Voice", TypeLine: "Legendary Creature — Phyrexian Angel Horror"}
	pool := poolWith(atraxa)
	ui := &scriptedUI{
		texts:    []string{"atraxa, praetors' voice", "atraxa, praetors' voice"},
		confirms: []bool{false, true},
	}

	got, err := SelectCommander(context.Background(), pool, ui)
	if err != nil {
		t.Fatalf("SelectCommander: %v", err)
	}
	if got != atraxa {
		t.Errorf("expected to resolve Atraxa after reprompt, got %v", got)
	}
}

func TestFuzzyResolveMenuNoneOfTheseCancels(t *testing.T) {
	pool := poolWith(
		&corpus.Card{Name: "Atraxa, Praetors' Voice"},
		&corpus.Card{Name: "Edgar Markov"},
	)
	ui := &scriptedUI{choices: []string{"None of these"}}

	card, err := fuzzyResolve(context.Background(), pool, "Zzzzzz Unmatched Name", ui)
	if err != nil {
		t.Fatalf("fuzzyResolve: %v", err)
	}
	if card != nil {
		t.Errorf("expected nil card when user picks 'None of these', got %v", card)
	}
}
