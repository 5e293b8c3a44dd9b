package tagengine

import "github.com/commanderforge/commanderforge/corpus"

func applyEnchantmentFamily(table *corpus.Table) {
	ApplyTags(table, TextMask(Rx(`create[s]? (a|an|\d+).{0,20}role token`)), "Enchantment Tokens", "Roles")
	ApplyTags(table, TextMask(Rx(`shard counter`), Lit("shard token")), "Enchantment Tokens", "Shard")
	ApplyTags(table, TextMask(Rx(`create[s]? (a|an|\d+).{0,20}enchantment token`)), "Enchantment Tokens")

	ApplyTags(table,
		TextMask(Rx(`whenever (a|an)(nother)? enchantment (enters|you control)`)),
		"Enchantments Matter", "Constellation")

	ApplyTags(table, TypeMask(Lit("Aura")), "Auras")
	ApplyTags(table, TypeMask(Lit("Saga")), "Sagas")
	ApplyTags(table, TypeMask(Lit("Case")), "Cases")
	ApplyTags(table, TypeMask(Lit("Room")), "Rooms")
	ApplyTags(table, And(TypeMask(Lit("Room")), TextMask(Lit("eerie"))), "Eerie")
	ApplyTags(table, TypeMask(Lit("Class")), "Classes")
	ApplyTags(table, TypeMask(Lit("Background")), "Backgrounds")
	ApplyTags(table, NameMask(Lit("Shrine")), "Shrines")
}
