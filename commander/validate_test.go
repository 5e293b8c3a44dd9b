package commander

import (
	"errors"
	"testing"

	"github.com/commanderforge/commanderforge/corpus"
)

func legendaryCreature(name string, identity ...string) *corpus.Card {
	return &corpus.Card{
		Name:          name,
		TypeLine:      "Legendary Creature — Phyrexian Angel Horror",
		ManaValue:     4,
		ColorIdentity: identity,
	}
}

func TestValidateCommanderAcceptsLegendaryCreature(t *testing.T) {
	c := legendaryCreature("Atraxa, Praetors' Voice", "W", "U", "B", "G")
	if err := ValidateCommander(c); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateCommanderAcceptsCanBeYourCommanderText(t *testing.T) {
	text := "Grist, the Hunger Tide can be your commander."
	c := &corpus.Card{
		Name:       "Grist, the Hunger Tide",
		TypeLine:   "Legendary Planeswalker — Grist",
		OracleText: &text,
	}
	if err := ValidateCommander(c); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateCommanderRejectsNonLegendary(t *testing.T) {
	c := &corpus.Card{Name: "Grizzly Bears", TypeLine: "Creature — Bear"}
	if err := ValidateCommander(c); !errors.Is(err, errNotEligible) {
		t.Errorf("expected errNotEligible, got %v", err)
	}
}

func TestValidateCommanderRejectsNegativeManaValue(t *testing.T) {
	c := legendaryCreature("Bad Card", "R")
	c.ManaValue = -1
	if err := ValidateCommander(c); !errors.Is(err, errBadStats) {
		t.Errorf("expected errBadStats, got %v", err)
	}
}

func TestValidateCommanderRejectsNegativeToughness(t *testing.T) {
	c := legendaryCreature("Bad Toughness", "B")
	toughness := "-2"
	c.Toughness = &toughness
	if err := ValidateCommander(c); !errors.Is(err, errBadStats) {
		t.Errorf("expected errBadStats, got %v", err)
	}
}

func TestValidateCommanderAllowsNegativePowerStarToughness(t *testing.T) {
	c := legendaryCreature("Tarmogoyf-like", "G")
	power := "-1"
	toughness := "*"
	c.Power = &power
	c.Toughness = &toughness
	if err := ValidateCommander(c); err != nil {
		t.Errorf("expected no error for star toughness, got %v", err)
	}
}

func TestValidateCommanderRejectsInexpressibleIdentity(t *testing.T) {
	c := legendaryCreature("Impossible Card", "W", "C")
	if err := ValidateCommander(c); !errors.Is(err, errBadIdentity) {
		t.Errorf("expected errBadIdentity, got %v", err)
	}
}
