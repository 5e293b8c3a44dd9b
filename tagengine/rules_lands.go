package tagengine

import "github.com/commanderforge/commanderforge/corpus"

// specialLandTypes covers basic and nonbasic land types referenced by
// the "Land Types Matter" sub-rule.
var specialLandTypes = []string{"Plains", "Island", "Swamp", "Mountain", "Forest", "Desert", "Gate", "Cave", "Sphere"}

func applyLandsMatterFamily(table *corpus.Table) {
	ApplyTags(table, TextMask(Rx(`whenever (a |one or more )?lands? (enters|you control)`)), "Lands Matter")
	ApplyTags(table, TextMask(Lit("domain")), "Lands Matter", "Domain")
	ApplyTags(table, TextMask(Rx(`landfall`)), "Lands Matter", "Landfall")
	ApplyTags(table, TextMask(Rx(`islandwalk|swampwalk|mountainwalk|plainswalk|forestwalk|landwalk`)), "Lands Matter", "Landwalk")

	for _, lt := range specialLandTypes {
		ApplyTags(table, TextMask(Lit(lt+"s you control")), "Lands Matter", lt+" Types Matter")
	}
}
