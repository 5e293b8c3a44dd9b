package tagengine

import "github.com/commanderforge/commanderforge/corpus"

var lifeAdjacentKindred = []string{"Angel", "Bat", "Cleric", "Vampire"}

func applyLifeFamily(table *corpus.Table) {
	ApplyTags(table, TextMask(Rx(`you gain \d+ life`), Rx(`gain life equal to`), Lit("whenever you gain life")), "Lifegain")
	ApplyTags(table, And(KeywordMask("Lifelink"), Not(TextMask(Lit("gain life equal to damage")))), "Lifegain", "Lifelink")
	ApplyTags(table, TextMask(Lit("gain life equal to damage")), "Lifegain", "Lifelink")

	ApplyTags(table, TextMask(Rx(`each (player|opponent) loses \d+ life`), Lit("whenever you lose life")), "Life Loss")
	ApplyTags(table, TagMask(Lit("Food Tokens")), "Lifegain")

	for _, t := range lifeAdjacentKindred {
		ApplyTags(table, func(creatureType string) Predicate {
			return func(c *corpus.Card) bool { return containsExact(c.CreatureTypes, creatureType) }
		}(t), "Lifegain")
	}
}
