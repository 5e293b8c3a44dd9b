package tagengine

import (
	"sort"

	"github.com/commanderforge/commanderforge/corpus"
)

// applyKindredMirroring runs the kindred-mirroring phase: for every
// creature type T on a card, add the tag "T Kindred".
func applyKindredMirroring(table *corpus.Table) {
	for _, c := range table.Cards {
		for _, t := range c.CreatureTypes {
			c.AddTags(t + " Kindred")
		}
	}
}

// typeBlanketTags is the (type substring -> tag set) table for the
// card-type blanket-tag phase.
var typeBlanketTags = []struct {
	TypeSubstr string
	Tags       []string
}{
	{"Artifact", []string{"Artifacts Matter"}},
	{"Enchantment", []string{"Enchantments Matter"}},
	{"Instant", []string{"Spells Matter", "Spellslinger"}},
	{"Sorcery", []string{"Spells Matter", "Spellslinger"}},
	{"Land", []string{"Lands Matter"}},
	{"Planeswalker", []string{"Superfriends"}},
	{"Battle", []string{"Battles Matter"}},
	{"Equipment", []string{"Equipment", "Voltron"}},
	{"Aura", []string{"Auras", "Voltron"}},
}

// applyCardTypeBlanketTags runs the card-type blanket-tag phase.
func applyCardTypeBlanketTags(table *corpus.Table) {
	for _, entry := range typeBlanketTags {
		ApplyTags(table, TypeMask(Lit(entry.TypeSubstr)), entry.Tags...)
	}
}

// applyRawKeywordMirror runs the keyword-mirror phase: every keyword
// becomes a tag verbatim.
func applyRawKeywordMirror(table *corpus.Table) {
	for _, c := range table.Cards {
		c.AddTags(c.Keywords...)
	}
}

// applySortFinalization is the last phase: every row's theme_tags is
// sorted lexicographically. Sorting (rather than the
// not-yet-final map order) also makes this the single point after which
// callers may rely on set-equality-as-slice-equality.
func applySortFinalization(table *corpus.Table) {
	for _, c := range table.Cards {
		sort.Strings(c.ThemeTags)
		sort.Strings(c.CreatureTypes)
	}
}
