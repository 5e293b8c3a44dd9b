package corpus

// multipleCopyAllowed is the hard-coded list of non-basic-land cards
// Commander's singleton rule exempts: their oracle text explicitly
// permits any number of copies in a single deck.
var multipleCopyAllowed = map[string]bool{
	"Relentless Rats":      true,
	"Shadowborn Apostle":   true,
	"Persistent Petitioners": true,
	"Rat Colony":           true,
	"Dragon's Approach":    true,
	"Nazgul":                true,
	"Templar Knight":       true,
	"Slime Against Humanity": true,
	"Hare Apparent":        true,
}

// IsMultipleCopyAllowed reports whether name may appear more than once in
// a Commander-format deck.
func IsMultipleCopyAllowed(name string) bool {
	return multipleCopyAllowed[name]
}

// basicLandNames are always multiple-copy-allowed regardless of the
// hard-coded list above.
var basicLandNames = map[string]bool{
	"Plains": true, "Island": true, "Swamp": true, "Mountain": true, "Forest": true,
	"Snow-Covered Plains": true, "Snow-Covered Island": true, "Snow-Covered Swamp": true,
	"Snow-Covered Mountain": true, "Snow-Covered Forest": true,
	"Wastes": true,
}

// IsBasicLand reports whether name is a basic land (including the
// snow-covered variants; Wastes has no snow variant).
func IsBasicLand(name string) bool {
	return basicLandNames[name]
}
