package tagengine

import "github.com/commanderforge/commanderforge/corpus"

// voltronCommanders is the hard-coded commander list for the Voltron
// family — legendary creatures whose design explicitly rewards loading
// up a single attacker.
var voltronCommanders = map[string]bool{
	"Uril, the Miststalker":          true,
	"Rafiq of the Many":              true,
	"Sigarda, Host of Herons":        true,
	"Kemba, Kha Regent":              true,
	"Tiana, Ship's Caretaker":        true,
}

func applyVoltronFamily(table *corpus.Table) {
	ApplyTags(table, NameMaskFromSet(voltronCommanders), "Voltron")
	ApplyTags(table, TextMask(Rx(`equipped creature`), Rx(`enchanted creature`)), "Voltron")
	ApplyTags(table, And(TagMask(Lit("+1/+1 Counters")), TextMask(Lit("commander"))), "Voltron")
}
