package compose

import (
	"testing"

	"github.com/commanderforge/commanderforge/commander"
	"github.com/commanderforge/commanderforge/corpus"
	"github.com/commanderforge/commanderforge/priceapi"
)

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }

func card(name, typeLine string, tags ...string) *corpus.Card {
	return &corpus.Card{
		Name:      name,
		TypeLine:  typeLine,
		ManaValue: 2,
		ManaCost:  strp("{1}{R}"),
		ThemeTags: tags,
	}
}

func TestDisplayNameSuffixesOnlyAboveOne(t *testing.T) {
	single := Entry{Card: &corpus.Card{Name: "Rat Colony"}, Count: 1}
	if got := single.DisplayName(); got != "Rat Colony" {
		t.Errorf("count 1 got suffix: %q", got)
	}
	multi := Entry{Card: &corpus.Card{Name: "Rat Colony"}, Count: 5}
	if got := multi.DisplayName(); got != "Rat Colony x 5" {
		t.Errorf("unexpected display name: %q", got)
	}
}

func TestCollapseDuplicatesSumsCounts(t *testing.T) {
	rats := &corpus.Card{Name: "Rat Colony"}
	entries := []Entry{
		{Card: rats, Count: 1},
		{Card: rats, Count: 1},
		{Card: &corpus.Card{Name: "Sol Ring"}, Count: 1},
	}
	out := collapseDuplicates(entries)
	if len(out) != 2 {
		t.Fatalf("expected 2 collapsed entries, got %d", len(out))
	}
	if out[0].Card.Name != "Rat Colony" || out[0].Count != 2 {
		t.Errorf("unexpected collapsed entry: %+v", out[0])
	}
}

func TestFinalizeMovesCommanderToFront(t *testing.T) {
	cmd := card("Krenko, Mob Boss", "Legendary Creature — Goblin")
	bolt := card("Lightning Bolt", "Instant")
	forest := card("Mountain", "Basic Land — Mountain")

	s := &builderState{
		commander: cmd,
		themes:    commander.ResolvedThemes{},
		library:   []Entry{{Card: bolt, Count: 1}, {Card: forest, Count: 1}, {Card: cmd, Count: 1}},
		present:   map[string]int{},
	}
	finalize(s)

	if s.library[0].Card.Name != "Krenko, Mob Boss" || !s.library[0].IsCommander {
		t.Fatalf("expected commander at index 0, got %+v", s.library[0])
	}
	// Instant sorts before Land in typeOrder.
	if s.library[1].Card.Name != "Lightning Bolt" {
		t.Errorf("expected Lightning Bolt before Mountain, got %+v", s.library[1])
	}
}

func TestComputeStatsAverageAndPips(t *testing.T) {
	bolt := &corpus.Card{Name: "Lightning Bolt", TypeLine: "Instant", ManaValue: 1, ManaCost: strp("{R}")}
	giant := &corpus.Card{Name: "Giant Growth", TypeLine: "Instant", ManaValue: 1, ManaCost: strp("{G}")}
	forest := &corpus.Card{Name: "Forest", TypeLine: "Basic Land — Forest", ManaValue: 0}

	stats := ComputeStats([]Entry{
		{Card: bolt, Count: 1},
		{Card: giant, Count: 1},
		{Card: forest, Count: 10},
	})

	if stats.AverageCMC != 1 {
		t.Errorf("expected average CMC 1 (lands excluded), got %v", stats.AverageCMC)
	}
	if stats.PipsByColor["R"] != 1 || stats.PipsByColor["G"] != 1 {
		t.Errorf("unexpected pip counts: %+v", stats.PipsByColor)
	}
}

func TestCeilHelpers(t *testing.T) {
	if ceilDiv(10, 3) != 4 {
		t.Errorf("ceilDiv(10,3) = %d, want 4", ceilDiv(10, 3))
	}
	if ceilDiv(9, 3) != 3 {
		t.Errorf("ceilDiv(9,3) = %d, want 3", ceilDiv(9, 3))
	}
	if ceilFloat(2.1) != 3 {
		t.Errorf("ceilFloat(2.1) = %d, want 3", ceilFloat(2.1))
	}
}

func TestPriorityScoreRewardsMultiMatch(t *testing.T) {
	single := card("A", "Creature", "Goblin Kindred")
	double := card("B", "Creature", "Goblin Kindred", "Token Creation")
	themes := []string{"Goblin Kindred", "Token Creation"}

	if priorityScore(double, themes) <= priorityScore(single, themes) {
		t.Errorf("expected double-match card to score higher: %v vs %v", priorityScore(double, themes), priorityScore(single, themes))
	}
}

func TestAddByTagFillsShortfallFromRankedPool(t *testing.T) {
	pool := &corpus.Table{Cards: []*corpus.Card{
		card("Signet", "Artifact", "Mana Rock"),
		card("Talisman", "Artifact", "Mana Rock"),
		card("Sol Ring", "Artifact", "Mana Rock"),
	}}
	pool.Cards[0].EdhrecRank = intp(100)
	pool.Cards[1].EdhrecRank = intp(50)
	pool.Cards[2].EdhrecRank = intp(1)

	s := &builderState{
		themes:  commander.ResolvedThemes{},
		ideals:  Ideals{Creatures: 25},
		present: map[string]int{},
	}
	addByTag(s, "Mana Rock", 2, pool)

	if len(s.library) == 0 {
		t.Fatal("expected addByTag to add cards")
	}
	if s.library[0].Card.Name != "Sol Ring" {
		t.Errorf("expected best-ranked card first, got %q", s.library[0].Card.Name)
	}
}

func TestAddByTagSkipsWhenTargetAlreadyMet(t *testing.T) {
	rock := card("Signet", "Artifact", "Mana Rock")
	s := &builderState{
		themes:  commander.ResolvedThemes{},
		ideals:  Ideals{},
		library: []Entry{{Card: rock, Count: 1}},
		present: map[string]int{"Signet": 1},
	}
	pool := &corpus.Table{Cards: []*corpus.Card{card("Talisman", "Artifact", "Mana Rock")}}

	addByTag(s, "Mana Rock", 1, pool)

	if len(s.library) != 1 {
		t.Errorf("expected no additional cards once target is met, library has %d entries", len(s.library))
	}
}

func TestProtectedLandSetCoversBasicsAndKindredStaples(t *testing.T) {
	protected := protectedLandSet()
	for _, name := range []string{"Plains", "Island", "Swamp", "Mountain", "Forest", "Snow-Covered Forest", "Cavern of Souls"} {
		if !protected[name] {
			t.Errorf("expected %q to be protected", name)
		}
	}
}

func TestPruneLandsToTargetTrimsHighestBasicFirst(t *testing.T) {
	mountain := &corpus.Card{Name: "Mountain", TypeLine: "Basic Land — Mountain"}
	forest := &corpus.Card{Name: "Forest", TypeLine: "Basic Land — Forest"}

	s := &builderState{
		commander: card("Test Commander", "Legendary Creature"),
		themes:    commander.ResolvedThemes{},
		ideals:    Ideals{Lands: 10, BasicLands: 8},
		library: []Entry{
			{Card: mountain, Count: 7},
			{Card: forest, Count: 5},
		},
		present: map[string]int{"Mountain": 7, "Forest": 5},
	}

	pruneLandsToTarget(s, []string{"R", "G"})

	if countLands(s) > 10 {
		t.Errorf("expected lands pruned to target, got %d", countLands(s))
	}
	var gotMountain int
	for _, e := range s.library {
		if e.Card.Name == "Mountain" {
			gotMountain = e.Count
		}
	}
	if gotMountain >= 6 {
		t.Errorf("expected Mountain (higher count) to be pruned first, still at %d", gotMountain)
	}
}

func TestAddStapleLandsRejectsOverPriceCard(t *testing.T) {
	tower := &corpus.Card{Name: "Reliquary Tower", TypeLine: "Land"}
	slice := &corpus.Table{Cards: []*corpus.Card{tower}}

	maxCard := priceapi.Money(100)
	gate := priceapi.NewGate(&priceapi.FakeOracle{Prices: map[string]priceapi.Money{"Reliquary Tower": priceapi.Money(5000)}}, &maxCard, nil)

	s := &builderState{
		commander: card("Test Commander", "Legendary Creature"),
		themes:    commander.ResolvedThemes{},
		ideals:    Ideals{},
		gate:      gate,
		slice:     slice,
		present:   map[string]int{},
	}

	addStapleLands(s, []string{"R"})

	if s.contains("Reliquary Tower") {
		t.Error("expected over-price staple land to be rejected by the gate")
	}
	if len(s.warns) == 0 {
		t.Error("expected a warning recorded for the rejected card")
	}
}

func TestAddDualLandsMatchesTypeLineNotOracleText(t *testing.T) {
	// Tundra: true ABUR dual, type line carries both basic types but the
	// oracle text says nothing about them.
	tundra := &corpus.Card{Name: "Tundra", TypeLine: "Land — Plains Island"}
	// A land whose reminder text happens to mention both colors but isn't
	// a guild-pair dual by type.
	decoy := &corpus.Card{Name: "Decoy Land", TypeLine: "Land", OracleText: strp("Add W or U. Plains and Island are both great.")}

	s := &builderState{
		themes:  commander.ResolvedThemes{},
		ideals:  Ideals{},
		slice:   &corpus.Table{Cards: []*corpus.Card{tundra, decoy}},
		present: map[string]int{},
	}

	addDualLands(s, []string{"W", "U"})

	if !s.contains("Tundra") {
		t.Error("expected Tundra to be added by type-line match")
	}
	if s.contains("Decoy Land") {
		t.Error("expected Decoy Land to be excluded despite matching oracle text")
	}
}

func TestHasCardTagAndMatchCount(t *testing.T) {
	c := card("X", "Creature", "Ramp", "Goblin Kindred")
	if !hasCardTag(c, "Ramp") {
		t.Error("expected hasCardTag true for Ramp")
	}
	if hasCardTag(c, "Removal") {
		t.Error("expected hasCardTag false for Removal")
	}
	if n := matchCount(c, []string{"Ramp", "Goblin Kindred", "Removal"}); n != 2 {
		t.Errorf("matchCount = %d, want 2", n)
	}
}
