package tagengine

import (
	"testing"

	"github.com/commanderforge/commanderforge/corpus"
)

// TestCostReductionFamilyTagsGenericReduction checks a card with plain
// "costs {1} less" phrasing is tagged Cost Reduction.
func TestCostReductionFamilyTagsGenericReduction(t *testing.T) {
	table := &corpus.Table{Cards: []*corpus.Card{{
		Name:       "Test Artificer",
		TypeLine:   "Creature — Human Artificer",
		OracleText: strPtr("Artifact spells you cast cost {1} less to cast."),
	}}}
	Run(table)
	c := table.Cards[0]
	if !c.HasTag("Cost Reduction") {
		t.Errorf("expected Cost Reduction tag, got %v", c.ThemeTags)
	}
}

// TestCostReductionFamilyNamedCardWithoutMatchingText checks the hardcoded
// name list fires even when the oracle text doesn't match any pattern.
func TestCostReductionFamilyNamedCardWithoutMatchingText(t *testing.T) {
	table := &corpus.Table{Cards: []*corpus.Card{{
		Name:       "Cloud Key",
		TypeLine:   "Artifact",
		OracleText: strPtr("As Cloud Key enters, choose a card type."),
	}}}
	Run(table)
	c := table.Cards[0]
	if !c.HasTag("Cost Reduction") {
		t.Errorf("expected Cost Reduction tag from named-card list, got %v", c.ThemeTags)
	}
}

// TestCostReductionFamilySpellslingerOnlyForNoncreatureSpells checks the
// Spellslinger/Spells Matter layer fires on an instant/sorcery cost
// reducer, not on a creature that reduces creature spell costs.
func TestCostReductionFamilySpellslingerOnlyForNoncreatureSpells(t *testing.T) {
	table := &corpus.Table{Cards: []*corpus.Card{
		{
			Name:       "Test Discount Sorcery",
			TypeLine:   "Sorcery",
			OracleText: strPtr("Instant and sorcery spells you cast cost {1} less to cast."),
		},
		{
			Name:       "Test Discount Creature",
			TypeLine:   "Creature — Human Wizard",
			OracleText: strPtr("Creature spells you cast cost {1} less to cast."),
		},
	}}
	Run(table)

	sorcery := cardByName(table, "Test Discount Sorcery")
	if !sorcery.HasTag("Spellslinger") || !sorcery.HasTag("Spells Matter") {
		t.Errorf("expected sorcery to carry Spellslinger and Spells Matter, got %v", sorcery.ThemeTags)
	}

	creature := cardByName(table, "Test Discount Creature")
	if creature.HasTag("Spellslinger") {
		t.Errorf("creature-cost-reduction card should not carry Spellslinger, got %v", creature.ThemeTags)
	}
}
