// Package priceapi implements the Price Gate: per-card and per-deck price
// ceiling enforcement backed by a pluggable external price oracle.
package priceapi

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// Money is an integer count of US cents. Integer cents avoid the rounding
// drift floating-point dollars would introduce across a 100-card running
// total.
type Money int64

// Dollars renders the amount as a comma-grouped dollar string, e.g.
// "$1,234.56", for deck totals that regularly run into four figures.
func (m Money) Dollars() string {
	neg := m < 0
	cents := int64(m)
	if neg {
		cents = -cents
	}
	whole, frac := cents/100, cents%100
	sign := ""
	if neg {
		sign = "-"
	}
	fracStr := strconv.FormatInt(frac, 10)
	if frac < 10 {
		fracStr = "0" + fracStr
	}
	return sign + "$" + humanize.Comma(whole) + "." + fracStr
}
