package compose

import (
	"context"
	"time"

	"github.com/commanderforge/commanderforge/corpus"
)

// fillWeightMultipliers scales each iteration's per-theme target off the
// current shortfall, weighted toward hidden and primary themes.
var fillWeightMultipliers = map[string]float64{
	"hidden":    1.0,
	"primary":   0.5,
	"secondary": 0.3,
	"tertiary":  0.2,
}

const (
	fillMinAttempts       = 20
	fillAttemptMultiplier = 2
	fillTimeBudget        = 60 * time.Second
	fillMaxZeroStreak     = 5
)

// fillToTarget repeatedly tops up the library from each resolved theme's
// candidate pool, proportioned by fillWeightMultipliers against the
// current shortfall, until it reaches 100 entries or exhausts its
// attempt/time/zero-streak budget.
func fillToTarget(_ context.Context, s *builderState) {
	initialShortfall := 100 - s.totalCount()
	if initialShortfall <= 0 {
		return
	}

	maxAttempts := fillMinAttempts
	if want := fillAttemptMultiplier * initialShortfall; want > maxAttempts {
		maxAttempts = want
	}

	pool := s.slice.Filter(func(c *corpus.Card) bool { return !c.HasType("Land") })

	type themeEntry struct {
		key  string
		name string
	}
	order := []themeEntry{
		{"hidden", s.themes.Hidden},
		{"primary", s.themes.Primary},
		{"secondary", s.themes.Secondary},
		{"tertiary", s.themes.Tertiary},
	}

	deadline := time.Now().Add(fillTimeBudget)
	zeroStreak := 0

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if time.Now().After(deadline) {
			break
		}
		shortfall := 100 - s.totalCount()
		if shortfall <= 0 {
			break
		}

		before := s.totalCount()
		for _, t := range order {
			if t.name == "" {
				continue
			}
			perTheme := ceilFloat(float64(shortfall) * fillWeightMultipliers[t.key])
			addByTag(s, t.name, perTheme+countByTag(s, t.name), pool)
			if s.totalCount() >= 100 {
				break
			}
		}

		if s.totalCount() == before {
			zeroStreak++
			if zeroStreak >= fillMaxZeroStreak {
				break
			}
		} else {
			zeroStreak = 0
		}
	}
}

func countByTag(s *builderState, tag string) int {
	total := 0
	for _, e := range s.library {
		if hasCardTag(e.Card, tag) {
			total += e.Count
		}
	}
	return total
}
