package corpus

import "strings"

// commanderTypeLines are the type-line substrings that make a card
// commander-eligible by type.
var commanderTypeLines = []string{
	"Legendary Creature",
	"Legendary Artifact Creature",
	"Legendary Enchantment Creature",
	"Legendary Planeswalker",
	"Legendary Artifact",
}

const canBeYourCommanderText = "can be your commander"

// IsCommanderEligible reports whether a card could sit in the command zone,
// before banned-list filtering.
func IsCommanderEligible(c *Card) bool {
	for _, t := range commanderTypeLines {
		if c.HasType(t) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(c.Text()), canBeYourCommanderText)
}

// LoadCommanderPool retains commander-eligible, non-banned rows from table.
func LoadCommanderPool(t *Table) *Table {
	return t.Filter(func(c *Card) bool {
		return IsCommanderEligible(c) && !IsBanned(c.Name)
	})
}
