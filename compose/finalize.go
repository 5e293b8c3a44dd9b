package compose

import (
	"sort"
	"strings"
)

// typeOrder is the fixed sort key for the finalized library: entries
// sort by this order first, then by name.
var typeOrder = []string{"Planeswalker", "Battle", "Creature", "Instant", "Sorcery", "Artifact", "Enchantment", "Land"}

// Stats summarizes the finalized library: average converted mana cost
// over non-land entries, and the WUBRG pip distribution over every
// mana_cost string in the deck.
type Stats struct {
	AverageCMC  float64
	PipsByColor map[string]int
}

// finalize collapses multi-copy duplicates, sorts the library into its
// canonical presentation order, and moves the commander to index 0.
func finalize(s *builderState) {
	s.library = collapseDuplicates(s.library)

	sort.SliceStable(s.library, func(i, j int) bool {
		oi, oj := typeRank(s.library[i]), typeRank(s.library[j])
		if oi != oj {
			return oi < oj
		}
		return s.library[i].Card.Name < s.library[j].Card.Name
	})

	for i, e := range s.library {
		if e.Card.Name != s.commander.Name {
			continue
		}
		e.IsCommander = true
		rest := make([]Entry, 0, len(s.library)-1)
		rest = append(rest, s.library[:i]...)
		rest = append(rest, s.library[i+1:]...)
		s.library = append([]Entry{e}, rest...)
		break
	}
}

// collapseDuplicates merges rows with the same card name into one entry
// with the summed count, preserving Count==1 for everything not already
// multi-copy.
func collapseDuplicates(entries []Entry) []Entry {
	order := make([]string, 0, len(entries))
	byName := make(map[string]Entry, len(entries))
	for _, e := range entries {
		if existing, ok := byName[e.Card.Name]; ok {
			existing.Count += e.Count
			byName[e.Card.Name] = existing
			continue
		}
		byName[e.Card.Name] = e
		order = append(order, e.Card.Name)
	}
	out := make([]Entry, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out
}

func typeRank(e Entry) int {
	for i, t := range typeOrder {
		if e.Card.HasType(t) {
			return i
		}
	}
	return len(typeOrder)
}

// ComputeStats computes the average CMC over non-land entries and the
// WUBRG pip distribution across every mana_cost string in library.
func ComputeStats(library []Entry) Stats {
	var totalCMC float64
	nonLand := 0
	pips := map[string]int{"W": 0, "U": 0, "B": 0, "R": 0, "G": 0}

	for _, e := range library {
		if !e.Card.HasType("Land") {
			totalCMC += float64(e.Card.ManaValue) * float64(e.Count)
			nonLand += e.Count
		}
		if e.Card.ManaCost == nil {
			continue
		}
		for color := range pips {
			pips[color] += strings.Count(*e.Card.ManaCost, color) * e.Count
		}
	}

	avg := 0.0
	if nonLand > 0 {
		avg = totalCMC / float64(nonLand)
	}
	return Stats{AverageCMC: avg, PipsByColor: pips}
}
