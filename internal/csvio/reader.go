package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Reader wraps encoding/csv with a header-name-to-index lookup, the same
// shape RdHamilton-MTGA-Companion's dataset parser uses for 17Lands CSVs:
// parse the header once, then look columns up by name per row instead of
// by fragile positional index.
type Reader struct {
	r      *csv.Reader
	header []string
	index  map[string]int
}

// NewReader opens a csv.Reader in lenient mode (lazy quotes, trimmed
// leading space) and reads its header row.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("csvio: read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}

	return &Reader{r: cr, header: header, index: index}, nil
}

// HasColumns reports whether every named column is present in the header.
func (r *Reader) HasColumns(names ...string) []string {
	var missing []string
	for _, n := range names {
		if _, ok := r.index[n]; !ok {
			missing = append(missing, n)
		}
	}
	return missing
}

// Next reads the next row as a name->value map. Returns io.EOF when exhausted.
func (r *Reader) Next() (map[string]string, error) {
	row, err := r.r.Read()
	if err != nil {
		return nil, err
	}

	rec := make(map[string]string, len(r.index))
	for name, idx := range r.index {
		if idx < len(row) {
			rec[name] = row[idx]
		}
	}
	return rec, nil
}

// Each calls fn for every row until EOF or fn returns a non-nil error.
func (r *Reader) Each(fn func(row map[string]string) error) error {
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("csvio: read row: %w", err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}
