// Package tagengine enriches a corpus.Table with creature types and theme
// tags by running a fixed-order sequence of declarative rule families. Each
// family reads oracle text, type lines, and keywords already present, plus
// any tags set by families that ran before it; the order is load-bearing
// and must never be reshuffled.
package tagengine

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/commanderforge/commanderforge/corpus"
)

// phase is one step of the fixed-order pipeline. Phases run sequentially
// within a single slice because later phases consult tags earlier ones set.
type phase struct {
	name string
	run  func(*corpus.Table)
}

func phases() []phase {
	return []phase{
		{"creature_type_extraction", extractCreatureTypes},
		{"outlaw_rollup", applyOutlawRollup},
		{"kindred_mirroring", applyKindredMirroring},
		{"card_type_blanket_tags", applyCardTypeBlanketTags},
		{"raw_keyword_mirror", applyRawKeywordMirror},
		{"cost_reduction_family", applyCostReductionFamily},
		{"draw_family", applyDrawFamily},
		{"artifact_family", applyArtifactFamily},
		{"enchantment_family", applyEnchantmentFamily},
		{"exile_family", applyExileFamily},
		{"tokens_family", applyTokensFamily},
		{"life_family", applyLifeFamily},
		{"counters_family", applyCountersFamily},
		{"voltron_family", applyVoltronFamily},
		{"lands_matter_family", applyLandsMatterFamily},
		{"spellslinger_family", applySpellslingerFamily},
		{"ramp_family", applyRampFamily},
		{"other_themes", applyOtherThemes},
		{"interaction_family", applyInteractionFamily},
		{"sort_finalization", applySortFinalization},
	}
}

// Run enriches a single color-identity slice in place, in fixed phase
// order. It is a pure function of the slice's starting state: running it
// twice on the same unenriched input produces identical tags.
func Run(table *corpus.Table) {
	for _, p := range phases() {
		p.run(table)
	}
}

// RunAll enriches every slice of a color-identity partition. Slices are
// independent of one another, so each runs in its own goroutine; no rule
// within a slice ever runs concurrently with another rule on that same
// slice, since phase.run is invoked sequentially inside Run.
func RunAll(slices map[corpus.ColorIdentity]*corpus.Table) {
	var wg sync.WaitGroup
	for _, table := range slices {
		wg.Add(1)
		go func(t *corpus.Table) {
			defer wg.Done()
			Run(t)
		}(table)
	}
	wg.Wait()
}

// RunAllLogged is RunAll with a per-slice progress line written through
// log, reporting row counts and elapsed time in human-readable form for
// the 32-slice full-corpus pass.
func RunAllLogged(slices map[corpus.ColorIdentity]*corpus.Table, log func(string)) {
	var wg sync.WaitGroup
	for name, table := range slices {
		wg.Add(1)
		go func(name corpus.ColorIdentity, t *corpus.Table) {
			defer wg.Done()
			start := time.Now()
			Run(t)
			log(fmt.Sprintf("tagged %s: %s cards in %s", name, humanize.Comma(int64(t.Len())), time.Since(start).Round(time.Millisecond)))
		}(name, table)
	}
	wg.Wait()
}

// sortedTagNames returns every distinct theme tag present in the table,
// sorted. Useful for diagnostics and for building rule-coverage reports.
func sortedTagNames(table *corpus.Table) []string {
	seen := make(map[string]bool)
	for _, c := range table.Cards {
		for _, t := range c.ThemeTags {
			seen[t] = true
		}
	}
	names := make([]string, 0, len(seen))
	for t := range seen {
		names = append(names, t)
	}
	sort.Strings(names)
	return names
}
