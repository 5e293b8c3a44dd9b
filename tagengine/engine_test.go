package tagengine

import (
	"strings"
	"testing"

	"github.com/commanderforge/commanderforge/corpus"
)

func strPtr(s string) *string { return &s }

func sampleTable() *corpus.Table {
	return &corpus.Table{Cards: []*corpus.Card{
		{
			Name:          "Lightning Bolt",
			FaceName:      "Lightning Bolt",
			ColorIdentity: []string{"R"},
			ManaCost:      strPtr("{R}"),
			ManaValue:     1,
			TypeLine:      "Instant",
			OracleText:    strPtr("Lightning Bolt deals 3 damage to any target."),
		},
		{
			Name:          "Atraxa, Praetors' Voice",
			FaceName:      "Atraxa, Praetors' Voice",
			ColorIdentity: []string{"W", "U", "B", "G"},
			ManaCost:      strPtr("{G}{W}{U}{B}"),
			ManaValue:     4,
			TypeLine:      "Legendary Creature — Phyrexian Angel Horror",
			OracleText:    strPtr("Flying, vigilance, deathtouch, lifelink. At the beginning of your end step, proliferate."),
			Power:         strPtr("4"),
			Toughness:     strPtr("4"),
			Keywords:      []string{"Flying", "Vigilance", "Deathtouch", "Lifelink"},
		},
		{
			Name:          "Rhystic Study",
			FaceName:      "Rhystic Study",
			ColorIdentity: []string{"U"},
			ManaCost:      strPtr("{2}{U}"),
			ManaValue:     3,
			TypeLine:      "Enchantment",
			OracleText:    strPtr("Whenever an opponent casts a spell, unless that player pays {1}, you draw a card."),
		},
		{
			Name:          "Goblin Rabblemaster",
			FaceName:      "Goblin Rabblemaster",
			ColorIdentity: []string{"R"},
			ManaCost:      strPtr("{2}{R}"),
			ManaValue:     3,
			TypeLine:      "Creature — Goblin Warrior",
			OracleText:    strPtr("At the beginning of combat on your turn, create a 1/1 red Goblin creature token."),
			Power:         strPtr("2"),
			Toughness:     strPtr("2"),
		},
		{
			Name:          "Prodigal Pyromancer",
			FaceName:      "Prodigal Pyromancer",
			ColorIdentity: []string{"R"},
			ManaCost:      strPtr("{2}{R}"),
			ManaValue:     3,
			TypeLine:      "Creature — Human Wizard",
			OracleText:    strPtr("{T}: This creature deals 1 damage to any target."),
			Power:         strPtr("1"),
			Toughness:     strPtr("1"),
		},
	}}
}

func cardByName(table *corpus.Table, name string) *corpus.Card {
	for _, c := range table.Cards {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// TestRunIdempotent checks that running the engine twice on the same
// unenriched input produces identical output (pure function of the
// unenriched slice).
func TestRunIdempotent(t *testing.T) {
	a := sampleTable()
	b := sampleTable()
	Run(a)
	Run(b)

	for i := range a.Cards {
		ca, cb := a.Cards[i], b.Cards[i]
		if strings.Join(ca.ThemeTags, ",") != strings.Join(cb.ThemeTags, ",") {
			t.Errorf("%s: tags diverged: %v vs %v", ca.Name, ca.ThemeTags, cb.ThemeTags)
		}
		if strings.Join(ca.CreatureTypes, ",") != strings.Join(cb.CreatureTypes, ",") {
			t.Errorf("%s: creature types diverged: %v vs %v", ca.Name, ca.CreatureTypes, cb.CreatureTypes)
		}
	}
}

// TestRunDeterministicAcrossPartition checks that tagging a card produces
// the same tags whether it's processed alone or alongside other cards in
// its slice — rules are per-row, not aggregate.
func TestRunDeterministicAcrossPartition(t *testing.T) {
	full := sampleTable()
	Run(full)
	want := cardByName(full, "Rhystic Study").ThemeTags

	solo := &corpus.Table{Cards: []*corpus.Card{cardByName(sampleTable(), "Rhystic Study")}}
	Run(solo)
	got := solo.Cards[0].ThemeTags

	if strings.Join(want, ",") != strings.Join(got, ",") {
		t.Errorf("tags differ when run in isolation: want %v, got %v", want, got)
	}
}

// TestKindredMirroring checks that every creature type on a card gets a
// mirrored "<Type> Kindred" tag.
func TestKindredMirroring(t *testing.T) {
	table := sampleTable()
	Run(table)
	atraxa := cardByName(table, "Atraxa, Praetors' Voice")

	for _, want := range []string{"Phyrexian Kindred", "Angel Kindred", "Horror Kindred"} {
		if !atraxa.HasTag(want) {
			t.Errorf("Atraxa missing kindred tag %q, has %v", want, atraxa.ThemeTags)
		}
	}
}

// TestOutlawRollup checks the outlaw rollup fires for one of the five
// outlaw creature types.
func TestOutlawRollup(t *testing.T) {
	table := &corpus.Table{Cards: []*corpus.Card{{
		Name:       "Test Rogue",
		TypeLine:   "Creature — Human Rogue",
		OracleText: strPtr(""),
	}}}
	Run(table)
	c := table.Cards[0]
	if !c.HasTag("Outlaw") {
		t.Errorf("expected Outlaw tag, got %v", c.ThemeTags)
	}
}

// TestDrawCategoriesAreExclusive checks that a card carrying Conditional
// Draw never also carries Unconditional Draw — the exclusion-by-prior-tag
// contract that gives the draw family its fixed sub-order.
func TestDrawCategoriesAreExclusive(t *testing.T) {
	table := sampleTable()
	Run(table)
	study := cardByName(table, "Rhystic Study")

	if !study.HasTag("Conditional Draw") {
		t.Errorf("expected Conditional Draw, got %v", study.ThemeTags)
	}
	if study.HasTag("Unconditional Draw") {
		t.Errorf("Unconditional Draw should be excluded by the prior Conditional Draw tag, got %v", study.ThemeTags)
	}
}

// TestRhysticStudyScenario exercises the documented end-to-end scenario:
// Rhystic Study should carry Card Draw, Conditional Draw, Stax and
// Control, but never Unconditional Draw.
func TestRhysticStudyScenario(t *testing.T) {
	table := sampleTable()
	Run(table)
	study := cardByName(table, "Rhystic Study")

	for _, want := range []string{"Card Draw", "Conditional Draw", "Stax", "Control"} {
		if !study.HasTag(want) {
			t.Errorf("Rhystic Study missing %q, has %v", want, study.ThemeTags)
		}
	}
	if study.HasTag("Unconditional Draw") {
		t.Errorf("Rhystic Study should not carry Unconditional Draw, has %v", study.ThemeTags)
	}
}

// TestTokensFamilyCreatureTokens checks generic creature-token creation is
// tagged.
func TestTokensFamilyCreatureTokens(t *testing.T) {
	table := sampleTable()
	Run(table)
	rabblemaster := cardByName(table, "Goblin Rabblemaster")
	if !rabblemaster.HasTag("Token Creation") {
		t.Errorf("expected Rabblemaster to carry Token Creation, got %v", rabblemaster.ThemeTags)
	}
	if !rabblemaster.HasTag("Goblin Kindred") {
		t.Errorf("expected Rabblemaster to carry Goblin Kindred, got %v", rabblemaster.ThemeTags)
	}
}

// TestRunWithRuleSetAppliesSupplementalTags checks the embedded default
// rule set layers extra tags on top of the fixed phases without disturbing
// sort order.
func TestRunWithRuleSetAppliesSupplementalTags(t *testing.T) {
	rs, err := DefaultRuleSet()
	if err != nil {
		t.Fatalf("DefaultRuleSet: %v", err)
	}
	table := sampleTable()
	RunWithRuleSet(table, rs)

	pyromancer := cardByName(table, "Prodigal Pyromancer")
	if !pyromancer.HasTag("Pingers") {
		t.Errorf("expected Prodigal Pyromancer to carry Pingers from the embedded rule set, got %v", pyromancer.ThemeTags)
	}
	for i := 1; i < len(pyromancer.ThemeTags); i++ {
		if pyromancer.ThemeTags[i-1] > pyromancer.ThemeTags[i] {
			t.Errorf("tags not sorted after supplemental rules: %v", pyromancer.ThemeTags)
		}
	}
}
