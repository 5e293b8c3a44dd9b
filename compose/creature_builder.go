package compose

import (
	"context"
	"sort"

	"github.com/commanderforge/commanderforge/corpus"
)

// creaturePoolWeight and creatureTargetWeight are the 2.0/0.9 multipliers
// from the theme-weighted creature pass: the candidate pool is sized
// generously, the per-theme target conservatively, leaving headroom for
// cross-theme overlap and the later fill pass.
const (
	creaturePoolWeight   = 2.0
	creatureTargetWeight = 0.9
)

// buildCreatures fills the creature role by walking resolved themes in
// [hidden, primary, secondary, tertiary] order, each contributing a
// weight-scaled share of ideals.Creatures from a theme-matching,
// EDHREC-ranked candidate pool.
func buildCreatures(_ context.Context, s *builderState) {
	target := s.ideals.Creatures
	themeNames := s.themes.Names()

	type themeShare struct {
		name   string
		weight float64
	}
	shares := []themeShare{
		{s.themes.Hidden, s.themes.Weights.Hidden},
		{s.themes.Primary, s.themes.Weights.Primary},
		{s.themes.Secondary, s.themes.Weights.Secondary},
		{s.themes.Tertiary, s.themes.Weights.Tertiary},
	}

	creaturePool := s.slice.Filter(func(c *corpus.Card) bool {
		return c.HasType("Creature")
	})

	for _, share := range shares {
		if share.name == "" || share.weight <= 0 {
			continue
		}
		themeTarget := ceilFloat(float64(target) * share.weight * creatureTargetWeight)
		poolSize := ceilFloat(float64(target) * share.weight * creaturePoolWeight)

		matches := matchingCreatures(creaturePool, share.name)
		sortByRank(matches)
		if len(matches) > poolSize {
			matches = matches[:poolSize]
		}
		sort.SliceStable(matches, func(i, j int) bool {
			return priorityScore(matches[i], themeNames) > priorityScore(matches[j], themeNames)
		})

		added := 0
		for _, card := range matches {
			if added >= themeTarget {
				break
			}
			if s.contains(card.Name) && !corpus.IsMultipleCopyAllowed(card.Name) {
				continue
			}
			if !gateApproves(s, card) {
				continue
			}
			s.add(card, 1)
			added++
		}
		if added == 0 {
			s.addWarning(ErrNoEligibleCards)
		}
	}
}

// matchingCreatures returns creatures whose theme tags carry theme, or
// "Kindred Support" when theme is itself a kindred theme.
func matchingCreatures(pool *corpus.Table, theme string) []*corpus.Card {
	isKindred := len(theme) > 7 && theme[len(theme)-7:] == "Kindred"
	var out []*corpus.Card
	for _, c := range pool.Cards {
		if hasCardTag(c, theme) {
			out = append(out, c)
			continue
		}
		if isKindred && hasCardTag(c, "Kindred Support") {
			out = append(out, c)
		}
	}
	return out
}
