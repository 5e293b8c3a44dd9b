package corpus

import (
	"fmt"
	"regexp"
)

var powerToughnessPattern = regexp.MustCompile(`^[\d*+\-X]+$`)

// Validate checks schema and value invariants. It is run once by
// LoadFullCorpus/LoadFullCorpusFrom; nothing downstream re-validates.
func Validate(t *Table) error {
	seen := make(map[string]bool, len(t.Cards))

	for _, c := range t.Cards {
		if seen[c.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateName, c.Name)
		}
		seen[c.Name] = true

		if c.ManaValue < 0 || c.ManaValue > 20 {
			return fmt.Errorf("%w: %s has manaValue %d out of [0,20]", ErrInvalidRow, c.Name, c.ManaValue)
		}

		if c.EdhrecRank != nil && (*c.EdhrecRank < 0 || *c.EdhrecRank > 100000) {
			return fmt.Errorf("%w: %s has edhrecRank %d out of [0,100000]", ErrInvalidRow, c.Name, *c.EdhrecRank)
		}

		if c.Power != nil && !powerToughnessPattern.MatchString(*c.Power) {
			return fmt.Errorf("%w: %s has malformed power %q", ErrInvalidRow, c.Name, *c.Power)
		}
		if c.Toughness != nil && !powerToughnessPattern.MatchString(*c.Toughness) {
			return fmt.Errorf("%w: %s has malformed toughness %q", ErrInvalidRow, c.Name, *c.Toughness)
		}

		if !colorSubset(c.Colors, c.ColorIdentity) {
			return fmt.Errorf("%w: %s colors %v not subset of color identity %v", ErrInvalidRow, c.Name, c.Colors, c.ColorIdentity)
		}
	}

	return nil
}

func colorSubset(colors, identity []string) bool {
	in := make(map[string]bool, len(identity))
	for _, c := range identity {
		in[c] = true
	}
	for _, c := range colors {
		if !in[c] {
			return false
		}
	}
	return true
}
