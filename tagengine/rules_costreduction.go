package tagengine

import "github.com/commanderforge/commanderforge/corpus"

// costReductionNamedCards lists cards whose cost-reduction effect is phrased
// in a way the generic text patterns miss.
var costReductionNamedCards = map[string]bool{
	"Ancient Cellarspawn": true, "Beluna Grandsquall": true, "Cheering Fanatic": true,
	"Cloud Key": true, "Conduit of Ruin": true, "Eluge, the Shoreless Sea": true,
	"Goblin Anarchomancer": true, "Goreclaw, Terror of Qal Sisma": true,
	"Helm of Awakening": true, "Hymn of the Wilds": true, "It that Heralds the End": true,
	"K'rrik, Son of Yawgmoth": true, "Killian, Ink Duelist": true, "Krosan Drover": true,
	"Memory Crystal": true, "Myth Unbound": true, "Mistform Warchief": true,
	"Ranar the Ever-Watchful": true, "Rowan, Scion of War": true, "Semblence Anvil": true,
	"Spectacle Mage": true, "Spellwild Ouphe": true, "Strong Back": true,
	"Thryx, the Sudden Storm": true, "Urza's Filter": true, "Will, Scion of Peace": true,
	"Will Kenrith": true,
}

// applyCostReductionFamily tags general and affinity-style cost reduction
// effects, then layers Spellslinger/Spells Matter onto the subset that
// reduces noncreature spell costs (instants, sorceries, and cards whose
// text mentions noncreature spells). Runs immediately before the draw
// family; no later rule reads the tags it sets.
func applyCostReductionFamily(table *corpus.Table) {
	costMask := Or(
		TextMask(
			Rx(`costs? \{[\da-z]\} less`),
			Lit("affinity for"),
			Rx(`costs? less to cast`),
			Lit("chosen type cost"),
			Lit("copy cost"),
			Lit("from exile cost"),
			Lit("from exile this turn cost"),
			Lit("from your graveyard cost"),
			Lit("has undaunted"),
			Lit("have affinity for artifacts"),
			Lit("other than your hand cost"),
			Lit("spells cost"),
			Lit("spells you cast cost"),
			Rx(`that target .* cost`),
			Lit("those spells cost"),
			Lit("you cast cost"),
			Lit("you pay cost"),
		),
		NameMaskFromSet(costReductionNamedCards),
	)

	ApplyTags(table, costMask, "Cost Reduction")

	spellMask := And(costMask, Or(TypeMask(Lit("Sorcery"), Lit("Instant")), TextMask(Lit("noncreature"))))
	ApplyTags(table, spellMask, "Spellslinger", "Spells Matter")
}
