package csvio

import "strings"

// ParsePyList parses a Python-style list literal such as
// "['Artifacts Matter', 'Equipment']" or `["Elf", "Druid"]` into a string
// slice. Accepts both quote styles per element, an empty literal, and a
// bare empty string (both mean "no elements"). Malformed input degrades
// gracefully to an empty slice rather than erroring — the corpus loader's
// schema validation is responsible for rejecting truly broken rows.
func ParsePyList(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.Trim(p, "'\"")
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FormatPyList renders a string slice back into the single-quoted
// Python-list-literal form used by the schema, e.g. ['A', 'B'].
func FormatPyList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(strings.ReplaceAll(it, "'", `\'`))
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}

// ParseColorSet parses a "B, G" style comma-and-space separated color
// string into a canonical WUBRG-ordered slice. "" and "Colorless" both
// mean the empty set.
func ParseColorSet(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "Colorless") {
		return nil
	}

	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		c := strings.ToUpper(strings.TrimSpace(part))
		if c != "" {
			seen[c] = true
		}
	}

	order := []string{"W", "U", "B", "R", "G"}
	out := make([]string, 0, len(seen))
	for _, c := range order {
		if seen[c] {
			out = append(out, c)
		}
	}
	return out
}
