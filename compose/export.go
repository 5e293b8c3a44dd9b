package compose

import (
	"strconv"

	"github.com/commanderforge/commanderforge/internal/csvio"
)

var exportHeaders = []string{"name", "count", "type", "manaCost", "manaValue", "commander"}

// ExportCSV writes the finalized library to path in the corpus loader's
// column convention, one row per entry in its finalized order.
func ExportCSV(path string, library []Entry) error {
	rows := make([][]string, 0, len(library))
	for _, e := range library {
		manaCost := ""
		if e.Card.ManaCost != nil {
			manaCost = *e.Card.ManaCost
		}
		commander := "0"
		if e.IsCommander {
			commander = "1"
		}
		rows = append(rows, []string{
			e.Card.Name,
			strconv.Itoa(e.Count),
			e.Card.TypeLine,
			manaCost,
			strconv.Itoa(e.Card.ManaValue),
			commander,
		})
	}
	return csvio.Write(path, exportHeaders, rows)
}
