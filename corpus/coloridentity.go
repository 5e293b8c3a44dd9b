package corpus

import "sort"

// ColorIdentity is one of the 32 canonical color-identity names.
type ColorIdentity string

// canonicalNames maps a sorted WUBRG key (e.g. "WU") to its canonical
// partition name. This is the total, disjoint partition function.
var canonicalNames = map[string]ColorIdentity{
	"":      "colorless",
	"W":     "white",
	"U":     "blue",
	"B":     "black",
	"R":     "red",
	"G":     "green",
	"WU":    "azorius",
	"UB":    "dimir",
	"BR":    "rakdos",
	"RG":    "gruul",
	"WG":    "selesnya",
	"WB":    "orzhov",
	"BG":    "golgari",
	"UG":    "simic",
	"UR":    "izzet",
	"WR":    "boros",
	"WUB":   "esper",
	"UBR":   "grixis",
	"BRG":   "jund",
	"WRG":   "naya",
	"WUG":   "bant",
	"WBG":   "abzan",
	"WUR":   "jeskai",
	"WBR":   "mardu",
	"UBG":   "sultai",
	"URG":   "temur",
	"WUBR":  "yore",
	"UBRG":  "glint",
	"WBRG":  "dune",
	"WURG":  "ink",
	"WUBG":  "witch",
	"WUBRG": "wubrg",
}

// wubrgOrder fixes the canonical symbol ordering used to build keys.
var wubrgOrder = []string{"W", "U", "B", "R", "G"}

// CanonicalColorIdentityName returns the partition name for a color set,
// e.g. {W,U} -> "azorius", {} -> "colorless".
func CanonicalColorIdentityName(colors []string) ColorIdentity {
	present := make(map[string]bool, len(colors))
	for _, c := range colors {
		present[c] = true
	}

	var key []byte
	for _, c := range wubrgOrder {
		if present[c] {
			key = append(key, c[0])
		}
	}

	if name, ok := canonicalNames[string(key)]; ok {
		return name
	}
	return "colorless"
}

// AllColorIdentityNames lists all 32 canonical names, sorted.
func AllColorIdentityNames() []ColorIdentity {
	out := make([]ColorIdentity, 0, len(canonicalNames))
	for _, name := range canonicalNames {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsSubsetIdentity reports whether sub's colors are all contained in sup's.
func IsSubsetIdentity(sub, sup []string) bool {
	supSet := make(map[string]bool, len(sup))
	for _, c := range sup {
		supSet[c] = true
	}
	for _, c := range sub {
		if !supSet[c] {
			return false
		}
	}
	return true
}
