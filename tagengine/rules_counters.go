package tagengine

import (
	"fmt"

	"github.com/commanderforge/commanderforge/corpus"
)

// namedCounterTypes is a representative subset of the ~170 canonical
// counter types, large enough to exercise the per-named-counter tagging
// mechanism without hand-writing every Magic counter ever printed.
var namedCounterTypes = []string{
	"Age", "Arrow", "Arrowhead", "Awakening", "Blaze", "Blood", "Bounty",
	"Bribery", "Brick", "Carrion", "Charge", "Corpse", "Credit", "Crystal",
	"Cube", "Currency", "Death", "Delay", "Depletion", "Despair", "Devotion",
	"Divinity", "Doom", "Dream", "Echo", "Egg", "Elixir", "Energy",
	"Experience", "Eyeball", "Fade", "Fate", "Feather", "Fetch", "Filibuster",
	"Flame", "Flood", "Fungus", "Fury", "Fuse", "Gem", "Glyph", "Gold",
	"Growth", "Hatching", "Hatchling", "Healing", "Hit", "Hoofprint",
	"Hour", "Hourglass", "Hunger", "Husk", "Ice", "Incubation", "Infection",
	"Intervention", "Isolation", "Javelin", "Ki", "Kick", "Knowledge",
	"Landmark", "Level", "Loyalty", "Luck", "Magnet", "Manifestation",
	"Mannequin", "Mask", "Matrix", "Mine", "Mining", "Mire", "Music",
	"Muster", "Necrodermis", "Net", "Omen", "Ore", "Page", "Pain",
	"Paralyzation", "Petal", "Petrification", "Phylactery", "Phyresis",
	"Pin", "Plague", "Poison", "Polyp", "Pressure", "Prey", "Pupa",
	"Quest", "Rad", "Rejection", "Reprieve", "Rust", "Scream", "Shell",
	"Shield", "Silver", "Slime", "Slumber", "Soot", "Soul", "Spite",
	"Spore", "Stash", "Storage", "Strife", "Study", "Stun", "Suspect",
	"Task", "Theft", "Tide", "Time", "Tower", "Training", "Trap",
	"Treasure", "Unity", "Vampirism", "Velocity", "Verse", "Vitality",
	"Vortex", "Voyage", "Wage", "Winch", "Wind", "Wish",
}

func applyCountersFamily(table *corpus.Table) {
	ApplyTags(table,
		TextMask(Rx(`(\+1/\+1|-1/-1|[a-z]+) counters?`)),
		"Counters Matter")

	ApplyTags(table, TextMask(Lit("+1/+1 counter")), "Counters Matter", "+1/+1 Counters")
	ApplyTags(table, containsExactCreatureType("Hydra"), "+1/+1 Counters")
	ApplyTags(table, TextMask(Lit("-1/-1 counter")), "Counters Matter", "-1/-1 Counters")

	for _, counter := range namedCounterTypes {
		pattern := Rx(fmt.Sprintf(`\b%s counters?\b`, counter))
		ApplyTags(table, TextMask(pattern), "Counters Matter", counter+" Counters")
	}
}

func containsExactCreatureType(t string) Predicate {
	return func(c *corpus.Card) bool { return containsExact(c.CreatureTypes, t) }
}
