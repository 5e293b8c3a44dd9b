package priceclient

import (
	"fmt"
	"strconv"
	"strings"
)

// parseDollarsToCents parses a decimal dollar string ("12.34", "0.5",
// "7") into integer cents.
func parseDollarsToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	whole, frac, hasFrac := strings.Cut(s, ".")

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid dollar amount %q: %w", s, err)
	}

	var cents int64
	if hasFrac {
		frac = (frac + "00")[:2]
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid cents in %q: %w", s, err)
		}
		cents = f
	}

	total := w*100 + cents
	if w < 0 {
		total = w*100 - cents
	}
	return total, nil
}
