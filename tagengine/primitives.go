// Package tagengine implements the declarative, rule-driven card classifier.
// The implementation is row-oriented: each "mask" is a predicate over a
// single *corpus.Card rather than a boolean vector over the whole table,
// and a rule is folded into one pass over the table instead of
// materializing an intermediate column.
package tagengine

import (
	"regexp"
	"strings"

	"github.com/commanderforge/commanderforge/corpus"
)

// Predicate is the row-oriented equivalent of a boolean mask: a function
// from a card to whether it matches.
type Predicate func(*corpus.Card) bool

// Or combines predicates with logical OR.
func Or(preds ...Predicate) Predicate {
	return func(c *corpus.Card) bool {
		for _, p := range preds {
			if p(c) {
				return true
			}
		}
		return false
	}
}

// And combines predicates with logical AND, for callers that explicitly
// request AND-combination instead of the OR default.
func And(preds ...Predicate) Predicate {
	return func(c *corpus.Card) bool {
		for _, p := range preds {
			if !p(c) {
				return false
			}
		}
		return true
	}
}

// Not negates a predicate — the shared idiom for building ExclusionMask
// from a positive pattern set.
func Not(p Predicate) Predicate {
	return func(c *corpus.Card) bool { return !p(c) }
}

// AndNot is Mask AND NOT(Exclusion) — the rule shape of:
// (Mask, ExclusionMask, TagsToAdd), exclusions subtracted after the
// positive mask.
func AndNot(mask, exclusion Predicate) Predicate {
	if exclusion == nil {
		return mask
	}
	return And(mask, Not(exclusion))
}

// Pattern is either a literal substring or a precompiled regular
// expression. PatternSet accepts either at the caller's
// choice; regexes are compiled once, at rule-construction time, never
// per row.
type Pattern struct {
	Literal string
	Regex   *regexp.Regexp
}

// Lit builds a literal, case-insensitive substring pattern.
func Lit(s string) Pattern { return Pattern{Literal: strings.ToLower(s)} }

// Rx compiles s as a case-insensitive regular expression pattern. Panics
// on invalid regex — patterns are static rule-table data, so a bad
// pattern is a programming error caught the first time the rule family
// declaring it runs, not a runtime condition to recover from.
func Rx(s string) Pattern {
	return Pattern{Regex: regexp.MustCompile(`(?i)` + s)}
}

func (p Pattern) matches(s string) bool {
	if p.Regex != nil {
		return p.Regex.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), p.Literal)
}

// matchAny reports whether s matches any of patterns (OR-combined, the
// PatternSet default).
func matchAny(s string, patterns []Pattern) bool {
	for _, p := range patterns {
		if p.matches(s) {
			return true
		}
	}
	return false
}

// TextMask matches oracle_text against a pattern set.
func TextMask(patterns ...Pattern) Predicate {
	return func(c *corpus.Card) bool { return matchAny(c.Text(), patterns) }
}

// TypeMask matches type_line (case-insensitive substring, OR-combined).
func TypeMask(patterns ...Pattern) Predicate {
	return func(c *corpus.Card) bool { return matchAny(c.TypeLine, patterns) }
}

// NameMask matches name (case-insensitive substring, OR-combined).
func NameMask(patterns ...Pattern) Predicate {
	return func(c *corpus.Card) bool { return matchAny(c.Name, patterns) }
}

// KeywordMask matches case-insensitive keyword membership; a card with no
// keywords never matches.
func KeywordMask(keywords ...string) Predicate {
	return func(c *corpus.Card) bool {
		for _, kw := range keywords {
			if c.HasKeyword(kw) {
				return true
			}
		}
		return false
	}
}

// TagMask matches substring against any member of theme_tags.
func TagMask(patterns ...Pattern) Predicate {
	return func(c *corpus.Card) bool {
		for _, t := range c.ThemeTags {
			if matchAny(t, patterns) {
				return true
			}
		}
		return false
	}
}

// CmpOp is a comparison operator for the numeric helpers.
type CmpOp string

const (
	Eq CmpOp = "="
	Ne CmpOp = "!="
	Lt CmpOp = "<"
	Le CmpOp = "<="
	Gt CmpOp = ">"
	Ge CmpOp = ">="
)

func cmp(op CmpOp, a, b float64) bool {
	switch op {
	case Eq:
		return a == b
	case Ne:
		return a != b
	case Lt:
		return a < b
	case Le:
		return a <= b
	case Gt:
		return a > b
	case Ge:
		return a >= b
	default:
		return false
	}
}

// ManaValueCmp compares mana_value against n.
func ManaValueCmp(op CmpOp, n int) Predicate {
	return func(c *corpus.Card) bool { return cmp(op, float64(c.ManaValue), float64(n)) }
}

// PowerToughnessCmp compares numeric power or toughness against n. Cards
// with non-numeric power/toughness ("*", "X") never match — they carry no
// comparable value.
func PowerToughnessCmp(field string, op CmpOp, n float64) Predicate {
	return func(c *corpus.Card) bool {
		var raw *string
		switch field {
		case "power":
			raw = c.Power
		case "toughness":
			raw = c.Toughness
		}
		if raw == nil {
			return false
		}
		v, ok := parseNumeric(*raw)
		if !ok {
			return false
		}
		return cmp(op, v, n)
	}
}

func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	var neg bool
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var n float64
	var any bool
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		any = true
		n = n*10 + float64(r-'0')
	}
	if !any {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

// ApplyTags unions tags into every card in table matching mask. Idempotent
// and order-independent: applying the same rule twice changes nothing.
func ApplyTags(table *corpus.Table, mask Predicate, tags ...string) {
	for _, c := range table.Cards {
		if mask(c) {
			c.AddTags(tags...)
		}
	}
}

// Rule is the triple from: (Mask, ExclusionMask, TagsToAdd).
type Rule struct {
	Name      string
	Mask      Predicate
	Exclusion Predicate
	Tags      []string
}

// Apply runs the rule against table.
func (r Rule) Apply(table *corpus.Table) {
	mask := AndNot(r.Mask, r.Exclusion)
	ApplyTags(table, mask, r.Tags...)
}

// ApplyAll runs every rule, in slice order, against table.
func ApplyAll(table *corpus.Table, rules []Rule) {
	for _, r := range rules {
		r.Apply(table)
	}
}
