package tagengine

import "github.com/commanderforge/commanderforge/corpus"

func applySpellslingerFamily(table *corpus.Table) {
	isInstantSorcery := TypeMask(Lit("Instant"), Lit("Sorcery"))

	ApplyTags(table,
		TextMask(Rx(`whenever you cast an? (instant|sorcery|noncreature spell)`)),
		"Spellslinger")

	ApplyTags(table, KeywordMask("Storm"), "Spellslinger", "Storm")
	ApplyTags(table, TextMask(Rx(`whenever you cast .{0,30}instant or sorcery spell`)), "Spellslinger", "Magecraft")
	ApplyTags(table, And(isInstantSorcery, ManaValueCmp(Le, 1), TextMask(Lit("draw a card"))), "Spellslinger", "Cantrips")
	ApplyTags(table, TextMask(Rx(`copy (that|target) (instant or sorcery )?spell`)), "Spellslinger", "Spell Copy")
}
