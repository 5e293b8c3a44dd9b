package commander

import (
	"fmt"
	"strings"

	"github.com/commanderforge/commanderforge/corpus"
)

const canBeYourCommanderText = "can be your commander"

// ValidateCommander checks the legality rules a card must satisfy to lead
// a Commander deck: type line or rules text grants commander eligibility,
// mana value is non-negative, toughness is non-negative (power may be
// negative, as with "*-1/*" creatures), and its color identity is
// expressible as one of the 32 canonical partition names.
func ValidateCommander(c *corpus.Card) error {
	typeLine := strings.ToLower(c.TypeLine)
	eligibleByType := strings.Contains(typeLine, "legendary") && strings.Contains(typeLine, "creature")
	eligibleByText := strings.Contains(strings.ToLower(c.Text()), canBeYourCommanderText)
	if !eligibleByType && !eligibleByText {
		return fmt.Errorf("commander: %q is not commander-eligible: %w", c.Name, errNotEligible)
	}

	if c.ManaValue < 0 {
		return fmt.Errorf("commander: %q has negative mana value: %w", c.Name, errBadStats)
	}

	if c.Toughness != nil {
		if t, ok := parseSignedInt(*c.Toughness); ok && t < 0 {
			return fmt.Errorf("commander: %q has negative toughness: %w", c.Name, errBadStats)
		}
	}

	for _, sym := range c.ColorIdentity {
		if !strings.Contains("WUBRG", sym) {
			return fmt.Errorf("commander: %q has an inexpressible color identity %v: %w", c.Name, c.ColorIdentity, errBadIdentity)
		}
	}
	return nil
}

func parseSignedInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" || strings.ContainsAny(s, "Xx*+") {
		return 0, false
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}
