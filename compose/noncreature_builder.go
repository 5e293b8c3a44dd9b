package compose

import (
	"context"
	"sort"

	"github.com/commanderforge/commanderforge/corpus"
)

// addByTagPoolMultiplier sizes the candidate pool for "add by tag" at
// twice the remaining shortfall, giving the rank-then-score pass enough
// headroom to skip gate-rejected or already-present cards.
const addByTagPoolMultiplier = 2.0

// softCreatureCapMultiplier bounds how far "add by tag" may push the
// creature count above ideals.Creatures (Mana Dork draws from the
// creature pool too).
const softCreatureCapMultiplier = 1.1

// buildNonCreatures runs the fixed non-creature add-by-tag sequence:
// ramp, board wipes, interaction, then card advantage.
func buildNonCreatures(ctx context.Context, s *builderState) {
	nonPlaneswalkers := s.slice.Filter(func(c *corpus.Card) bool { return !c.HasType("Planeswalker") })
	nonCreatures := s.slice.Filter(func(c *corpus.Card) bool { return !c.HasType("Creature") })
	creatures := s.slice.Filter(func(c *corpus.Card) bool { return c.HasType("Creature") })

	addByTag(s, "Mana Rock", ceilDiv(s.ideals.Ramp, 3), nonCreatures)
	addByTagCapped(s, "Mana Dork", ceilDiv(s.ideals.Ramp, 4), creatures, true)
	addByTag(s, "Ramp", s.ideals.Ramp, nonCreatures)

	addByTag(s, "Board Wipes", s.ideals.Wipes, s.slice)

	addByTag(s, "Removal", s.ideals.Removal, nonPlaneswalkers)
	addByTag(s, "Protection", s.ideals.Protection, nonPlaneswalkers)

	addByTag(s, "Conditional Draw", ceilFloat(float64(s.ideals.CardAdvantage)*0.2), s.slice)
	addByTag(s, "Unconditional Draw", ceilFloat(float64(s.ideals.CardAdvantage)*0.8), nonPlaneswalkers)
}

// addByTag is the shared "count present, fill the gap from a ranked
// candidate pool" routine every non-creature role uses.
func addByTag(s *builderState, tag string, target int, pool *corpus.Table) {
	addByTagCapped(s, tag, target, pool, false)
}

// addByTagCapped is the shared routine behind addByTag. Creature
// candidates are skipped once the deck holds the soft creature cap;
// respectCreatureCap (used by Mana Dork, whose pool holds only creatures)
// ends the pass at that point instead.
func addByTagCapped(s *builderState, tag string, target int, pool *corpus.Table, respectCreatureCap bool) {
	if target <= 0 {
		return
	}

	present := 0
	for _, e := range s.library {
		if hasCardTag(e.Card, tag) {
			present += e.Count
		}
	}
	if present >= target {
		return
	}
	remaining := target - present + 1

	candidates := pool.Filter(func(c *corpus.Card) bool { return hasCardTag(c, tag) }).Cards
	sortByRank(candidates)
	poolSize := ceilFloat(float64(remaining) * addByTagPoolMultiplier)
	if len(candidates) > poolSize {
		candidates = candidates[:poolSize]
	}

	themeNames := s.themes.Names()
	sort.SliceStable(candidates, func(i, j int) bool {
		return priorityScore(candidates[i], themeNames) > priorityScore(candidates[j], themeNames)
	})

	softCap := ceilFloat(float64(s.ideals.Creatures) * softCreatureCapMultiplier)

	added := 0
	for _, card := range candidates {
		if added >= remaining {
			break
		}
		if s.contains(card.Name) && !corpus.IsMultipleCopyAllowed(card.Name) {
			continue
		}
		if card.HasType("Creature") && countCreatures(s) >= softCap {
			if respectCreatureCap {
				break
			}
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

func countCreatures(s *builderState) int {
	total := 0
	for _, e := range s.library {
		if e.Card.HasType("Creature") {
			total += e.Count
		}
	}
	return total
}
