package tagengine

import "github.com/commanderforge/commanderforge/corpus"

func applyRampFamily(table *corpus.Table) {
	manaDork := And(
		TypeMask(Lit("Creature")),
		TextMask(Rx(`\{t\}:? add`)),
	)
	ApplyTags(table, manaDork, "Ramp", "Mana Dork")

	manaRock := And(
		Not(TypeMask(Lit("Creature"))),
		TypeMask(Lit("Artifact")),
		TextMask(Rx(`\{t\}:? add`)),
	)
	ApplyTags(table, manaRock, "Ramp", "Mana Rock")

	ApplyTags(table, TextMask(Rx(`put (a|an|\d+) lands?.{0,20}onto the battlefield`)), "Ramp", "Extra Lands")
	ApplyTags(table, TextMask(Rx(`search your library for a (basic )?land card`)), "Ramp", "Land Search")
}
