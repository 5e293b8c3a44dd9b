package commander

import "strings"

// fuzzyRatio scores how similar a and b are on a 0-100 scale, the same
// scale the "names scoring >= 90" contract uses. No fuzzy-matching library
// appears anywhere in the example pack, so this is a small hand-rolled
// Levenshtein-distance ratio: 100 * (1 - distance / max(len(a), len(b))).
func fuzzyRatio(a, b string) int {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 100
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 100
	}
	dist := levenshtein(a, b)
	ratio := 100 * (1 - float64(dist)/float64(maxLen))
	if ratio < 0 {
		ratio = 0
	}
	return int(ratio + 0.5)
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
