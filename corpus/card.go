// Package corpus loads, validates, and partitions the Commander card table
// that feeds the tag engine and deck composer.
//
// Card rows use plain exported fields, pointer fields for nullable
// scalars, and slice fields for sets.
package corpus

// Card is a single row of the card table.
//
// CreatureTypes and ThemeTags start out exactly as read from the CSV
// (usually empty) and are populated/enriched by the tag engine; nothing
// else in this package writes to them after load.
type Card struct {
	Name      string
	FaceName  string
	EdhrecRank *int

	ColorIdentity []string // ordered subset of {W,U,B,R,G}
	Colors        []string

	ManaCost  *string
	ManaValue int

	TypeLine string

	Power     *string
	Toughness *string

	OracleText *string
	Keywords   []string

	CreatureTypes []string
	ThemeTags     []string

	Layout string
	Side   string
}

// HasType reports whether the type line contains the given substring,
// case-insensitively. Convenience used throughout tagengine/compose.
func (c *Card) HasType(substr string) bool {
	return containsFold(c.TypeLine, substr)
}

// HasKeyword reports case-insensitive membership in Keywords.
func (c *Card) HasKeyword(kw string) bool {
	for _, k := range c.Keywords {
		if equalFold(k, kw) {
			return true
		}
	}
	return false
}

// HasTag reports whether any theme tag contains substr, case-insensitively.
func (c *Card) HasTag(substr string) bool {
	for _, t := range c.ThemeTags {
		if containsFold(t, substr) {
			return true
		}
	}
	return false
}

// Text returns the oracle text, or "" if absent — callers never need to
// nil-check.
func (c *Card) Text() string {
	if c.OracleText == nil {
		return ""
	}
	return *c.OracleText
}

// Cost returns the mana cost string, or "" if absent.
func (c *Card) Cost() string {
	if c.ManaCost == nil {
		return ""
	}
	return *c.ManaCost
}

// AddTags unions tags into ThemeTags, deduplicated. Idempotent.
func (c *Card) AddTags(tags ...string) {
	for _, t := range tags {
		if t == "" {
			continue
		}
		if !containsExact(c.ThemeTags, t) {
			c.ThemeTags = append(c.ThemeTags, t)
		}
	}
}

// AddCreatureTypes unions creature types, deduplicated.
func (c *Card) AddCreatureTypes(types ...string) {
	for _, t := range types {
		if t == "" {
			continue
		}
		if !containsExact(c.CreatureTypes, t) {
			c.CreatureTypes = append(c.CreatureTypes, t)
		}
	}
}

func containsExact(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}
