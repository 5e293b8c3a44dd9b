package corpus

// BannedCommanders is the Commander-format banned list relevant to
// commander/deck legality. Not exhaustive of every format banning ever
// issued — scoped to names that commonly surface in
// fixtures and tests, with the list structured so operators can extend it
// without touching loader logic.
var BannedCommanders = map[string]bool{
	"Ancestral Recall":             true,
	"Balance":                      true,
	"Biorhythm":                    true,
	"Black Lotus":                  true,
	"Braids, Cabal Minion":         true,
	"Channel":                      true,
	"Coalition Victory":            true,
	"Emrakul, the Aeons Torn":      true,
	"Erayo, Soratami Ascendant":    true,
	"Falling Star":                 true,
	"Fastbond":                     true,
	"Flash":                        true,
	"Gifts Ungiven":                true,
	"Golos, Tireless Pilgrim":      true,
	"Griselbrand":                  true,
	"Hullbreacher":                 true,
	"Iona, Shield of Emeria":       true,
	"Karakas":                      true,
	"Leovold, Emissary of Trest":   true,
	"Library of Alexandria":        true,
	"Limited Resources":            true,
	"Lutri, the Spellchaser":       true,
	"Mox Emerald":                  true,
	"Mox Jet":                      true,
	"Mox Pearl":                    true,
	"Mox Ruby":                     true,
	"Mox Sapphire":                 true,
	"Panoptic Mirror":              true,
	"Paradox Engine":               true,
	"Prophet of Kruphix":           true,
	"Recurring Nightmare":          true,
	"Rofellos, Llanowar Emissary":  true,
	"Shahrazad":                    true,
	"Sway of the Stars":            true,
	"Sylvan Primordial":            true,
	"Time Vault":                   true,
	"Time Walk":                    true,
	"Tolarian Academy":             true,
	"Trade Secrets":                true,
	"Worldfire":                    true,
}

// IsBanned reports whether name is on the banned list.
func IsBanned(name string) bool {
	return BannedCommanders[name]
}
