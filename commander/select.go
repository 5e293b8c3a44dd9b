package commander

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/commanderforge/commanderforge/corpus"
)

// fuzzyMatchThreshold is the score at or above which a fuzzy match
// short-circuits straight to selection, skipping the candidate menu.
const fuzzyMatchThreshold = 90

// maxFuzzyChoices bounds how many candidates are offered when no match
// clears fuzzyMatchThreshold.
const maxFuzzyChoices = 5

// UserInterface is the subset of the prompt surface SelectCommander needs.
// commanderforge.UserInterface satisfies it.
type UserInterface interface {
	PromptText(ctx context.Context, message string) (string, error)
	PromptChoice(ctx context.Context, message string, choices []string) (string, error)
	PromptConfirm(ctx context.Context, message string, defaultValue bool) (bool, error)
	Display(message string)
}

type fuzzyCandidate struct {
	card  *corpus.Card
	score int
}

// SelectCommander prompts for a commander name, resolves it against pool
// via exact match, then fuzzy match, then an interactive candidate menu,
// and requires explicit confirmation of the resolved card before
// returning it. A rejected confirmation loops back to the name prompt.
func SelectCommander(ctx context.Context, pool *corpus.Table, ui UserInterface) (*corpus.Card, error) {
	byName := pool.ByName()

	for {
		name, err := ui.PromptText(ctx, "Enter commander name")
		if err != nil {
			return nil, fmt.Errorf("commander: prompt name: %w", err)
		}

		card := exactMatch(byName, name)
		if card == nil {
			card, err = fuzzyResolve(ctx, pool, name, ui)
			if err != nil {
				return nil, err
			}
		}
		if card == nil {
			continue
		}

		ui.Display(describeCandidate(card))
		confirmed, err := ui.PromptConfirm(ctx, "Use this commander?", true)
		if err != nil {
			return nil, fmt.Errorf("commander: prompt confirm: %w", err)
		}
		if confirmed {
			return card, nil
		}
	}
}

func exactMatch(byName map[string]*corpus.Card, name string) *corpus.Card {
	lower := strings.ToLower(strings.TrimSpace(name))
	for n, c := range byName {
		if strings.ToLower(n) == lower {
			return c
		}
	}
	return nil
}

// fuzzyResolve returns a card directly if it scores at or above
// fuzzyMatchThreshold, otherwise presents up to maxFuzzyChoices candidates
// plus a "None of these" escape. Returns (nil, nil) if the user cancels.
func fuzzyResolve(ctx context.Context, pool *corpus.Table, name string, ui UserInterface) (*corpus.Card, error) {
	candidates := make([]fuzzyCandidate, 0, pool.Len())
	for _, c := range pool.Cards {
		candidates = append(candidates, fuzzyCandidate{card: c, score: fuzzyRatio(name, c.Name)})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

	if len(candidates) == 0 {
		return nil, nil
	}
	if candidates[0].score >= fuzzyMatchThreshold {
		return candidates[0].card, nil
	}

	n := maxFuzzyChoices
	if n > len(candidates) {
		n = len(candidates)
	}
	const none = "None of these"
	choices := make([]string, 0, n+1)
	byChoice := make(map[string]*corpus.Card, n)
	for _, fc := range candidates[:n] {
		label := fmt.Sprintf("%s (%d%%)", fc.card.Name, fc.score)
		choices = append(choices, label)
		byChoice[label] = fc.card
	}
	choices = append(choices, none)

	picked, err := ui.PromptChoice(ctx, "No exact match — pick a commander", choices)
	if err != nil {
		return nil, fmt.Errorf("commander: prompt choice: %w", err)
	}
	if picked == none {
		return nil, nil
	}
	return byChoice[picked], nil
}

func describeCandidate(c *corpus.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", c.Name, c.TypeLine)
	if c.Cost() != "" {
		fmt.Fprintf(&b, "Mana cost: %s (MV %d)\n", c.Cost(), c.ManaValue)
	}
	if c.Power != nil && c.Toughness != nil {
		fmt.Fprintf(&b, "%s/%s\n", *c.Power, *c.Toughness)
	}
	if c.Text() != "" {
		fmt.Fprintf(&b, "%s\n", c.Text())
	}
	return b.String()
}
