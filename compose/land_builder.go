package compose

import (
	"context"
	"math"
	"strings"

	"github.com/commanderforge/commanderforge/corpus"
)

// colorToBasic maps a single WUBRG letter to its basic land name.
var colorToBasic = map[string]string{
	"W": "Plains", "U": "Island", "B": "Swamp", "R": "Mountain", "G": "Forest",
}

// stapleLandCondition is one row of the fixed utility-land table: a land
// name plus the predicate (commander themes, color identity, commander
// power) that gates its inclusion.
type stapleLandCondition struct {
	Name string
	Fits func(themes []string, colors []string, power int) bool
}

var stapleLandConditions = []stapleLandCondition{
	{Name: "Reliquary Tower", Fits: func(themes, colors []string, power int) bool { return true }},
	{Name: "Ash Barrens", Fits: func(themes, colors []string, power int) bool { return !hasTheme(themes, "Landfall") }},
	{Name: "Command Tower", Fits: func(themes, colors []string, power int) bool { return len(colors) > 1 }},
	{Name: "Exotic Orchard", Fits: func(themes, colors []string, power int) bool { return len(colors) > 1 }},
	{Name: "War Room", Fits: func(themes, colors []string, power int) bool { return len(colors) <= 2 }},
	{Name: "Rogue's Passage", Fits: func(themes, colors []string, power int) bool { return power >= 5 }},
}

// kindredStapleLands are added whenever any resolved theme ends in
// "Kindred", regardless of color identity.
var kindredStapleLands = []string{"Path of Ancestry", "Three Tree City", "Cavern of Souls"}

func hasTheme(themes []string, name string) bool {
	for _, t := range themes {
		if t == name {
			return true
		}
	}
	return false
}

func hasKindredTheme(themes []string) bool {
	for _, t := range themes {
		if strings.HasSuffix(t, "Kindred") {
			return true
		}
	}
	return false
}

func commanderPower(c *corpus.Card) int {
	if c.Power == nil {
		return 0
	}
	n, ok := parsePositiveInt(*c.Power)
	if !ok {
		return 0
	}
	return n
}

func parsePositiveInt(s string) (int, bool) {
	n := 0
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// guildPairs maps every two-color combination to the pair of basic land
// subtypes a dual land of that guild carries on its type line
// ("Land — Plains Island").
var guildPairs = map[string][2]string{
	"WU": {"Plains", "Island"}, "UB": {"Island", "Swamp"}, "BR": {"Swamp", "Mountain"},
	"RG": {"Mountain", "Forest"}, "GW": {"Forest", "Plains"}, "WB": {"Plains", "Swamp"},
	"UR": {"Island", "Mountain"}, "BG": {"Swamp", "Forest"}, "RW": {"Mountain", "Plains"},
	"GU": {"Forest", "Island"},
}

// buildLands runs the land-construction sequence: staple and kindred
// utility lands, fetch lands, guild duals and shard/wedge triples (each
// confirmed with the user first, default yes), a handful of misc utility
// lands, basics distributed across the commander's colors, then pruning
// back to the lands ideal.
func buildLands(ctx context.Context, s *builderState) {
	colors := s.commander.ColorIdentity
	if len(colors) == 0 {
		colors = []string{"C"}
	}

	addStapleLands(s, colors)
	addFetchLands(ctx, s, colors)
	wantDuals, wantTriples := len(colors) == 2, len(colors) == 3
	if s.ui != nil && (wantDuals || wantTriples) {
		prompt := "Add dual lands?"
		if wantTriples {
			prompt = "Add triple lands?"
		}
		if ok, err := s.ui.PromptConfirm(ctx, prompt, true); err == nil {
			wantDuals, wantTriples = wantDuals && ok, wantTriples && ok
		}
	}
	if wantDuals {
		addDualLands(s, colors)
	}
	if wantTriples {
		addTripleLands(s, colors)
	}
	addMiscUtilityLands(s, colors)
	addBasicLands(s, colors)

	pruneLandsToTarget(s, colors)
}

func addStapleLands(s *builderState, colors []string) {
	themes := s.themes.Names()
	power := commanderPower(s.commander)
	byName := s.slice.ByName()

	for _, cond := range stapleLandConditions {
		if !cond.Fits(themes, colors, power) {
			continue
		}
		card, ok := byName[cond.Name]
		if !ok || s.contains(card.Name) {
			continue
		}
		if !gateApproves(s, card) {
			continue
		}
		s.add(card, 1)
	}

	if hasKindredTheme(themes) {
		for _, name := range kindredStapleLands {
			card, ok := byName[name]
			if !ok || s.contains(card.Name) {
				continue
			}
			if !gateApproves(s, card) {
				continue
			}
			s.add(card, 1)
		}
	}
}

func addFetchLands(ctx context.Context, s *builderState, colors []string) {
	fetches := s.slice.Filter(func(c *corpus.Card) bool {
		return c.HasType("Land") && !c.HasType("Basic") && strings.Contains(lowerText(c), "search your library for a") && strings.Contains(lowerText(c), "land card")
	})
	if fetches.Len() == 0 {
		return
	}
	sortByRank(fetches.Cards)

	k := 3
	if s.ui != nil {
		chosen, err := s.ui.PromptNumber(ctx, "How many fetch lands? (0-9)", k)
		if err == nil {
			if chosen < 0 {
				chosen = 0
			}
			if chosen > 9 {
				chosen = 9
			}
			k = chosen
		}
	}

	added := 0
	for _, card := range fetches.Cards {
		if added >= k {
			break
		}
		if s.contains(card.Name) {
			continue
		}
		if !gateApproves(s, card) {
			continue
		}
		s.add(card, 1)
		added++
	}
}

func addDualLands(s *builderState, colors []string) {
	if len(colors) != 2 {
		return
	}
	key := colors[0] + colors[1]
	pair, ok := guildPairs[key]
	if !ok {
		key = colors[1] + colors[0]
		pair, ok = guildPairs[key]
	}
	if !ok {
		return
	}
	want := []string{strings.ToLower(pair[0]), strings.ToLower(pair[1])}

	duals := s.slice.Filter(func(c *corpus.Card) bool {
		if !c.HasType("Land") || c.HasType("Basic") {
			return false
		}
		typeLine := strings.ToLower(c.TypeLine)
		return strings.Contains(typeLine, want[0]) && strings.Contains(typeLine, want[1])
	})
	sortByRank(duals.Cards)
	for _, card := range duals.Cards {
		if s.contains(card.Name) {
			continue
		}
		if !gateApproves(s, card) {
			continue
		}
		s.add(card, 1)
	}
}

func addTripleLands(s *builderState, colors []string) {
	if len(colors) != 3 {
		return
	}
	want := make([]string, 0, 3)
	for _, col := range colors {
		if basic, ok := colorToBasic[col]; ok {
			want = append(want, strings.ToLower(basic))
		}
	}
	if len(want) != 3 {
		return
	}

	triples := s.slice.Filter(func(c *corpus.Card) bool {
		if !c.HasType("Land") || c.HasType("Basic") {
			return false
		}
		typeLine := strings.ToLower(c.TypeLine)
		for _, w := range want {
			if !strings.Contains(typeLine, w) {
				return false
			}
		}
		return true
	})
	sortByRank(triples.Cards)
	for _, card := range triples.Cards {
		if s.contains(card.Name) {
			continue
		}
		if !gateApproves(s, card) {
			continue
		}
		s.add(card, 1)
	}
}

// miscUtilityTarget is the [5,10] count of unthemed utility lands added
// from the top of the EDHREC rank order, deterministic rather than
// randomized: the top N by rank stands in for "top 100 most played".
const miscUtilityTarget = 7

func addMiscUtilityLands(s *builderState, colors []string) {
	utility := s.slice.Filter(func(c *corpus.Card) bool {
		return c.HasType("Land") && !c.HasType("Basic")
	})
	sortByRank(utility.Cards)

	added := 0
	for _, card := range utility.Cards {
		if added >= miscUtilityTarget {
			break
		}
		if s.contains(card.Name) {
			continue
		}
		if !gateApproves(s, card) {
			continue
		}
		s.add(card, 1)
		added++
	}
}

func addBasicLands(s *builderState, colors []string) {
	basicCount := s.ideals.BasicLands
	if basicCount <= 0 {
		return
	}
	isSnow := hasTheme(s.commander.ThemeTags, "Snow")

	n := len(colors)
	if n == 0 {
		return
	}
	each := basicCount / n
	remainder := basicCount % n

	byName := s.slice.ByName()
	for i, col := range colors {
		name, ok := colorToBasic[col]
		if !ok {
			continue
		}
		if isSnow {
			name = "Snow-Covered " + name
		}
		count := each
		if i < remainder {
			count++
		}
		card, ok := byName[name]
		if !ok {
			continue
		}
		if !gateApproves(s, card) {
			continue
		}
		s.add(card, count)
	}
}

// pruneLandsAttemptMultiplier bounds the pruning loop's attempt budget
// relative to the gap between the lands ideal and the basic-lands floor.
const pruneLandsAttemptMultiplier = 1.5

// pruneLandsToTarget removes lands down to ideals.Lands when the builder
// overshot, preferring to trim basics from whichever color holds the
// most copies, then falling back to non-basic, non-protected lands.
func pruneLandsToTarget(s *builderState, colors []string) {
	target := s.ideals.Lands
	protected := protectedLandSet()

	maxAttempts := int(math.Ceil(pruneLandsAttemptMultiplier * float64(maxInt(1, s.ideals.Lands-s.ideals.BasicLands))))

	attempts := 0
	for attempts < maxAttempts && countLands(s) > target {
		if !pruneOneBasic(s) {
			if !pruneOneNonBasic(s, protected) {
				break
			}
		}
		attempts++
	}

	if countLands(s) > target {
		s.addWarning(ErrLandBalancing)
	}
}

func protectedLandSet() map[string]bool {
	protected := map[string]bool{}
	for _, name := range colorToBasic {
		protected[name] = true
		protected["Snow-Covered "+name] = true
	}
	for _, name := range kindredStapleLands {
		protected[name] = true
	}
	return protected
}

func countLands(s *builderState) int {
	total := 0
	for _, e := range s.library {
		if e.Card.HasType("Land") {
			total += e.Count
		}
	}
	return total
}

// pruneOneBasic removes one copy from whichever basic-land entry
// currently holds the highest count, returning false if no basic-land
// entry holds more than one copy (the last copy of each is kept).
func pruneOneBasic(s *builderState) bool {
	bestIdx := -1
	bestCount := 0
	for i, e := range s.library {
		if !corpus.IsBasicLand(e.Card.Name) {
			continue
		}
		if e.Count > bestCount {
			bestCount = e.Count
			bestIdx = i
		}
	}
	if bestIdx < 0 || bestCount <= 1 {
		return false
	}
	s.library[bestIdx].Count--
	s.present[s.library[bestIdx].Card.Name]--
	return true
}

// pruneOneNonBasic removes the least popular (highest EDHREC rank number,
// unranked counting as least popular) non-basic, non-protected land
// entry, returning false if none qualify.
func pruneOneNonBasic(s *builderState, protected map[string]bool) bool {
	worstIdx := -1
	var worstRank int = -1
	for i, e := range s.library {
		if !e.Card.HasType("Land") || corpus.IsBasicLand(e.Card.Name) || protected[e.Card.Name] || e.IsCommander {
			continue
		}
		rank := math.MaxInt32
		if e.Card.EdhrecRank != nil {
			rank = *e.Card.EdhrecRank
		}
		if rank > worstRank {
			worstRank = rank
			worstIdx = i
		}
	}
	if worstIdx < 0 {
		return false
	}
	removed := s.library[worstIdx]
	s.present[removed.Card.Name] -= removed.Count
	s.library = append(s.library[:worstIdx], s.library[worstIdx+1:]...)
	return true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func lowerText(c *corpus.Card) string {
	return strings.ToLower(c.Text())
}
