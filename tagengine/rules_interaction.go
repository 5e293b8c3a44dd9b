package tagengine

import "github.com/commanderforge/commanderforge/corpus"

// applyInteractionFamily is the last rule family. Combat Tricks reads the
// Instant type and the Flash keyword directly from the card, not from
// tags set by earlier phases.
func applyInteractionFamily(table *corpus.Table) {
	ApplyTags(table, TextMask(Rx(`counter target spell`)), "Counterspells")

	ApplyTags(table,
		TextMask(Rx(`destroy all creatures`), Rx(`each (creature|player'?s creature) .{0,10}(gets? -\d|dies)`), Lit("all creatures get -")),
		"Board Wipes")

	isInstantOrFlash := Or(TypeMask(Lit("Instant")), KeywordMask("Flash"))
	ApplyTags(table,
		And(isInstantOrFlash, TextMask(Lit("target creature gets +"), Lit("target creature you control gets"))),
		"Combat Tricks")

	ApplyTags(table,
		TextMask(Lit("hexproof"), Lit("protection from"), Lit("indestructible"), Lit("can't be countered")),
		"Protection")

	notPlaneswalker := Not(TypeMask(Lit("Planeswalker")))
	ApplyTags(table,
		And(notPlaneswalker, TextMask(Rx(`destroy target`), Rx(`exile target`), Rx(`deals? \d+ damage to target creature`))),
		"Removal")
}
