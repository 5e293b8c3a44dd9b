package tagengine

import "github.com/commanderforge/commanderforge/corpus"

// impulseHardcodedList names cards whose impulse-draw effect is phrased in
// a way the generic text patterns miss.
var impulseHardcodedList = map[string]bool{
	"Light Up the Stage": true,
	"Wild Wasteland":     true,
}

// applyExileFamily runs the exile family, including the verbatim
// Impulse contract (two-layer exclusion).
func applyExileFamily(table *corpus.Table) {
	ApplyTags(table, TextMask(Rx(`exile .{0,60}(shuffle|put it into its owner's graveyard|rather than)`)), "Exile Matters")

	ApplyTags(table, KeywordMask("Cascade"), "Exile Matters", "Cascade")
	ApplyTags(table, KeywordMask("Discover"), "Exile Matters", "Discover")
	ApplyTags(table, KeywordMask("Foretell"), "Exile Matters", "Foretell")
	ApplyTags(table, TextMask(Rx(`imprint`)), "Exile Matters", "Imprint")
	ApplyTags(table, KeywordMask("Plot"), "Exile Matters", "Plot")
	ApplyTags(table, KeywordMask("Suspend"), "Exile Matters", "Suspend")

	impulsePositive := Or(
		And(TextMask(Lit("exile the top")), TextMask(Lit("may cast"), Lit("may play"))),
		NameMaskFromSet(impulseHardcodedList),
		TextMask(Lit("junk token")),
	)

	layerOneExclusion := TextMask(
		Rx(`damage to each`), Rx(`damage to target`), Rx(`deals combat damage`),
		Lit("raid"), Rx(`target opponent'?s hand`),
	)

	layerTwoExclusion := And(
		Not(TypeMask(Lit("Planeswalker"))),
		TextMask(
			Lit("each opponent"), Lit("morph"), Lit("opponent's library"),
			Lit("skip your draw"), Lit("target opponent"), Lit("that player's"),
			Lit("you may look at the top card"),
		),
	)

	impulseRule := Rule{
		Name:      "Impulse",
		Mask:      impulsePositive,
		Exclusion: Or(layerOneExclusion, layerTwoExclusion),
		Tags:      []string{"Exile Matters", "Impulse"},
	}
	impulseRule.Apply(table)

	ApplyTags(table,
		And(Not(impulseRule.Exclusion), TextMask(Lit("junk token"))),
		"Junk Tokens")
}

// NameMaskFromSet matches names present in a lookup set.
func NameMaskFromSet(set map[string]bool) Predicate {
	return func(c *corpus.Card) bool { return set[c.Name] }
}
