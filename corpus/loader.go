package corpus

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/commanderforge/commanderforge/internal/csvio"
)

// Table is an in-memory card table. Cards are held as pointers so the tag
// engine can mutate CreatureTypes/ThemeTags in place without the loader
// re-indexing anything.
type Table struct {
	Cards []*Card
}

// ByName indexes the table by (case-sensitive, schema-guaranteed-unique) name.
func (t *Table) ByName() map[string]*Card {
	m := make(map[string]*Card, len(t.Cards))
	for _, c := range t.Cards {
		m[c.Name] = c
	}
	return m
}

// Len is the number of rows.
func (t *Table) Len() int { return len(t.Cards) }

// Filter returns a new Table containing only cards for which pred is true.
// The underlying *Card pointers are shared, not copied.
func (t *Table) Filter(pred func(*Card) bool) *Table {
	out := &Table{Cards: make([]*Card, 0, len(t.Cards))}
	for _, c := range t.Cards {
		if pred(c) {
			out.Cards = append(out.Cards, c)
		}
	}
	return out
}

// LoadFullCorpus reads and validates the card table CSV at path.
func LoadFullCorpus(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingCorpus, path)
		}
		return nil, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadFullCorpusFrom(f)
}

// LoadFullCorpusFrom reads and validates a card table from an arbitrary
// reader, so callers (and tests) aren't forced through the filesystem.
func LoadFullCorpusFrom(r io.Reader) (*Table, error) {
	reader, err := csvio.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}

	if missing := reader.HasColumns(RequiredColumns...); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %v", ErrSchemaMismatch, missing)
	}

	var table Table
	lineNum := 1
	err = reader.Each(func(row map[string]string) error {
		lineNum++
		card, err := rowToCard(row)
		if err != nil {
			return fmt.Errorf("corpus: line %d: %w", lineNum, err)
		}
		table.Cards = append(table.Cards, card)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(table.Cards) == 0 {
		return nil, ErrEmptyCorpus
	}

	if err := Validate(&table); err != nil {
		return nil, err
	}

	return &table, nil
}

func rowToCard(row map[string]string) (*Card, error) {
	c := &Card{
		Name:          strings.TrimSpace(row["name"]),
		FaceName:      strings.TrimSpace(row["faceName"]),
		ColorIdentity: csvio.ParseColorSet(row["colorIdentity"]),
		Colors:        csvio.ParseColorSet(row["colors"]),
		TypeLine:      row["type"],
		Keywords:      csvio.ParsePyList(row["keywords"]),
		CreatureTypes: csvio.ParsePyList(row["creatureTypes"]),
		ThemeTags:     csvio.ParsePyList(row["themeTags"]),
		Layout:        row["layout"],
		Side:          row["side"],
	}

	if c.Name == "" {
		return nil, fmt.Errorf("empty name")
	}
	if c.FaceName == "" {
		c.FaceName = c.Name
	}

	if v := strings.TrimSpace(row["edhrecRank"]); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("bad edhrecRank %q: %w", v, err)
		}
		c.EdhrecRank = &n
	}

	if v := strings.TrimSpace(row["manaCost"]); v != "" {
		c.ManaCost = &v
	}

	if v := strings.TrimSpace(row["manaValue"]); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("bad manaValue %q: %w", v, err)
		}
		c.ManaValue = int(n)
	}

	if v := row["text"]; strings.TrimSpace(v) != "" {
		c.OracleText = &v
	}

	if v := strings.TrimSpace(row["power"]); v != "" {
		c.Power = &v
	}
	if v := strings.TrimSpace(row["toughness"]); v != "" {
		c.Toughness = &v
	}

	return c, nil
}
