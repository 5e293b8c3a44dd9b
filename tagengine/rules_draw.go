package tagengine

import "github.com/commanderforge/commanderforge/corpus"

// drawCountPatterns matches "draw <n> card(s)" for n in {a, an, one,
// any one- or two-digit number, x, "one or more"}.
var drawCountPatterns = []Pattern{
	Rx(`draws? (a|an|one|x|one or more|\d{1,2}) cards?`),
}

// applyDrawFamily runs the draw family in declaration order: Cycling and
// Loot first, then Conditional draw (which excludes those two), then
// cost-paid draw, replacement draw and wheels, and Unconditional draw
// last, which consults every earlier draw tag as an exclusion.
func applyDrawFamily(table *corpus.Table) {
	cyclingRule := Rule{
		Name: "Cycling",
		Mask: Or(KeywordMask("Cycling"), TextMask(Rx(`cycling`))),
		Tags: []string{"Card Draw", "Cycling"},
	}
	cyclingRule.Apply(table)

	lootRule := Rule{
		Name: "Loot",
		Mask: Or(
			KeywordMask("Connive", "Blood token"),
			TextMask(Rx(`draw a card,?\s*(then|and)\s*discard`), Lit("connive"), Lit("blood token")),
		),
		Tags: []string{"Card Draw", "Loot"},
	}
	lootRule.Apply(table)

	conditionalRule := Rule{
		Name: "Conditional Draw",
		Mask: TextMask(
			Rx(`unless .* pays? \{`),
			Rx(`if you (don'?t|do),? draw`),
			Rx(`may draw a card`),
			Rx(`draw a card for each`),
			Rx(`draws? a card.{0,40}if `),
		),
		Exclusion: TagMask(Lit("Cycling"), Lit("Loot")),
		Tags:      []string{"Card Draw", "Conditional Draw"},
	}
	conditionalRule.Apply(table)

	costPaidRule := Rule{
		Name: "Cost-paid Draw",
		Mask: Or(
			TextMask(Rx(`pay \d+ life.{0,40}draws? (a|an|\d+) cards?`)),
			TextMask(Rx(`sacrifice .{0,60}: draws? (a|an|\d+) cards?`)),
		),
		Exclusion: TagMask(Lit("Cycling"), Lit("Loot"), Lit("Conditional Draw")),
		Tags:      []string{"Card Draw"},
	}
	costPaidRule.Apply(table)
	ApplyTags(table, And(costPaidRule.Mask, Not(costPaidRule.Exclusion), TextMask(Lit("pay"), Lit("life"))), "Life to Draw")
	ApplyTags(table, And(costPaidRule.Mask, Not(costPaidRule.Exclusion), TextMask(Lit("sacrifice"))), "Sacrifice to Draw")

	replacementRule := Rule{
		Name:      "Replacement Draw",
		Mask:      TextMask(Rx(`instead of drawing`), Rx(`draws? (two|double) cards? instead`)),
		Exclusion: TagMask(Lit("Cycling"), Lit("Loot")),
		Tags:      []string{"Card Draw", "Replacement Draw"},
	}
	replacementRule.Apply(table)

	wheelRule := Rule{
		Name: "Wheels",
		Mask: TextMask(
			Rx(`each player discards (their|his or her) hand,? then draws`),
			Rx(`discard your hand,? (then|and) draw`),
		),
		Tags: []string{"Card Draw", "Wheels"},
	}
	wheelRule.Apply(table)

	// Unconditional Draw: the residue after every other draw category has
	// had first refusal.
	unconditionalRule := Rule{
		Name: "Unconditional Draw",
		Mask: TextMask(drawCountPatterns...),
		Exclusion: Or(
			TagMask(
				Lit("Cycling"), Lit("Conditional Draw"), Lit("Loot"),
				Lit("Replacement Draw"), Lit("Life to Draw"), Lit("Sacrifice to Draw"),
				Lit("Unconditional Draw"),
			),
			TextMask(Lit("annihilator"), Lit("ravenous")),
		),
		Tags: []string{"Card Draw", "Unconditional Draw"},
	}
	unconditionalRule.Apply(table)
}
