package tagengine

import "github.com/commanderforge/commanderforge/corpus"

// typedArtifactTokens is the generic-plus-typed artifact token table for
// the artifact family.
var typedArtifactTokens = []struct {
	Name string
	Tags []string
}{
	{"Treasure", []string{"Artifact Tokens", "Treasure Tokens"}},
	{"Food", []string{"Artifact Tokens", "Food Tokens"}},
	{"Gold", []string{"Artifact Tokens", "Gold Tokens"}},
	{"Clue", []string{"Artifact Tokens", "Clue Tokens"}},
	{"Blood", []string{"Artifact Tokens", "Blood Tokens"}},
	{"Junk", []string{"Artifact Tokens", "Junk Tokens"}},
	{"Map", []string{"Artifact Tokens", "Map Tokens"}},
	{"Powerstone", []string{"Artifact Tokens", "Powerstone Tokens"}},
	{"Incubator", []string{"Artifact Tokens", "Incubator Tokens"}},
}

func applyArtifactFamily(table *corpus.Table) {
	ApplyTags(table, TextMask(Rx(`create[s]? (a|an|\d+|x).{0,20}artifact tokens?`)), "Artifact Tokens")

	for _, t := range typedArtifactTokens {
		ApplyTags(table, TextMask(Rx(t.Name+` token`)), t.Tags...)
	}

	ApplyTags(table, TextMask(Rx(`fabricate`)), "Artifact Tokens", "Fabricate")

	ApplyTags(table,
		TextMask(Rx(`whenever (a|an)(nother)? artifact (enters|you control)`)),
		"Artifacts Matter", "Artifact Triggers")

	ApplyTags(table, Or(KeywordMask("Equip"), TypeMask(Lit("Equipment"))), "Equipment")
	ApplyTags(table, TypeMask(Lit("Vehicle")), "Vehicles")
}
