package compose

import (
	"math"

	"github.com/commanderforge/commanderforge/corpus"
)

// hasCardTag reports whether card carries the given theme/role tag.
func hasCardTag(c *corpus.Card, tag string) bool {
	for _, t := range c.ThemeTags {
		if t == tag {
			return true
		}
	}
	return false
}

// matchCount is the number of s's resolved theme names a card's tags
// also carry, the basis of the 1.2^n multi-match priority score.
func matchCount(c *corpus.Card, themeNames []string) int {
	n := 0
	for _, theme := range themeNames {
		if hasCardTag(c, theme) {
			n++
		}
	}
	return n
}

// priorityScore is 1.2^matchCount(c), the score "add by tag" and the
// creature builder both rank candidate pools by.
func priorityScore(c *corpus.Card, themeNames []string) float64 {
	return math.Pow(1.2, float64(matchCount(c, themeNames)))
}

// ceilDiv is ceil(a/b) for positive ints.
func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// ceilFloat is ceil(x) as an int, for the weight-scaled target formulas.
func ceilFloat(x float64) int {
	return int(math.Ceil(x))
}
