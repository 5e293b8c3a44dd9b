package tagengine

import "github.com/commanderforge/commanderforge/corpus"

// applyOtherThemes applies the "other themes" family: themes that are mutually
// order-independent and run after the families that precede them. None of
// them reads tags set earlier; each matches text, type, keywords or mana
// value directly (Stax matches the same "unless that player pays" tax
// phrasing that Conditional Draw matches).
func applyOtherThemes(table *corpus.Table) {
	ApplyTags(table, And(ManaValueCmp(Le, 2), TypeMask(Lit("Creature"))), "Aggro")

	ApplyTags(table,
		TextMask(Rx(`whenever (a|another) creature you control dies`), Lit("sacrifice a creature")),
		"Aristocrats")

	ApplyTags(table, ManaValueCmp(Ge, 6), "Big Mana")

	ApplyTags(table, TextMask(Rx(`exile .{0,10}return.{0,20}battlefield`), Lit("flicker")), "Blink")
	ApplyTags(table, TextMask(Rx(`deals? \d+ damage to (any target|each opponent|target player)`)), "Burn")
	ApplyTags(table, TextMask(Rx(`copy target (creature|permanent|artifact)`)), "Clones")

	ApplyTags(table,
		TextMask(Lit("can't attack"), Lit("can't cast"), Lit("doesn't untap"), Lit("unless that player pays")),
		"Control", "Stax")

	ApplyTags(table, KeywordMask("Energy"), "Energy")
	ApplyTags(table, TextMask(Lit("infect"), Lit("toxic")), "Infect")
	ApplyTags(table, TypeMask(Lit("Legendary")), "Legends Matter")
	ApplyTags(table, And(ManaValueCmp(Le, 2), PowerToughnessCmp("power", Le, 2)), "Little Fellas")
	ApplyTags(table, TextMask(Rx(`mills? (a|an|\d+|x) cards?`)), "Mill")
	ApplyTags(table, TextMask(Lit("the monarch")), "Monarch")
	ApplyTags(table, multipleCopyMask, "Multiple Copies")
	ApplyTags(table, TypeMask(Lit("Planeswalker")), "Superfriends")
	ApplyTags(table, TextMask(Rx(`return .{0,40}from (your|a) graveyard to the battlefield`)), "Reanimate")
	ApplyTags(table, TextMask(Rx(`gain control of target`)), "Theft")
	ApplyTags(table, TextMask(Rx(`toughness rather than`), Lit("toughness instead")), "Toughness Matters")
	ApplyTags(table, TextMask(Lit("play with the top card of your library revealed"), Lit("you may play lands and cast spells from the top")), "Topdeck")
	ApplyTags(table, TextMask(Rx(`an amount of \{x\}`), Lit("{x}{x}")), "X Spells")
}

// multipleCopyMask matches the hard-coded multiple-copy name list, not any
// tag named "Kindred": the multiple-copy mechanic is a property of a fixed
// set of card names, unrelated to tribal typing.
func multipleCopyMask(c *corpus.Card) bool {
	return corpus.IsMultipleCopyAllowed(c.Name)
}
