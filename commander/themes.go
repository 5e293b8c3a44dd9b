package commander

import (
	"context"
	"fmt"
	"strings"

	"github.com/commanderforge/commanderforge/corpus"
)

// hiddenThemeTrigger is one row of the fixed (kindred theme, color,
// suggested cards) table that gates the hidden-theme prompt.
type hiddenThemeTrigger struct {
	Theme     string
	Color     string
	Suggested []string
}

var hiddenThemeTriggers = []hiddenThemeTrigger{
	{Theme: "Rat Kindred", Color: "B", Suggested: []string{"Rat Colony", "Relentless Rats"}},
	{Theme: "Spellslinger", Color: "R", Suggested: []string{"Dragon's Approach"}},
	{Theme: "Mill", Color: "B", Suggested: []string{"Persistent Petitioners"}},
	{Theme: "Outlaw", Color: "B", Suggested: []string{"Shadowborn Apostle"}},
	{Theme: "Eldrazi Kindred", Color: "U", Suggested: []string{"Nazgul"}},
}

// kindredBoost gives kindred themes a multiplier over their base weight
// when selected, reflecting how strongly a tribal theme concentrates a
// deck's card pool compared to a mechanical one.
func kindredBoost(theme string) float64 {
	if strings.HasSuffix(theme, "Kindred") {
		return 1.3
	}
	return 1.0
}

// ThemeWeights holds the four thematic axes a deck is built around. Every
// weight is in [0,1]; after Normalize the weights sum to ~1.0.
type ThemeWeights struct {
	Primary   float64
	Secondary float64
	Tertiary  float64
	Hidden    float64
}

func (w ThemeWeights) sum() float64 {
	return w.Primary + w.Secondary + w.Tertiary + w.Hidden
}

// Normalize scales every weight so they sum to 1.0. A zero-sum weight set
// is left unchanged rather than dividing by zero.
func (w ThemeWeights) Normalize() ThemeWeights {
	total := w.sum()
	if total == 0 {
		return w
	}
	return ThemeWeights{
		Primary:   w.Primary / total,
		Secondary: w.Secondary / total,
		Tertiary:  w.Tertiary / total,
		Hidden:    w.Hidden / total,
	}
}

// ResolvedThemes is the output of ResolveThemes: the chosen theme names
// plus their final normalized weights.
type ResolvedThemes struct {
	Primary   string
	Secondary string
	Tertiary  string
	Hidden    string
	Weights   ThemeWeights
}

// Names returns the non-empty theme names, in [primary, secondary,
// tertiary, hidden] order.
func (r ResolvedThemes) Names() []string {
	var names []string
	for _, n := range []string{r.Primary, r.Secondary, r.Tertiary, r.Hidden} {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// ResolveThemes walks the commander's candidate tags through the
// primary/secondary/tertiary/hidden prompt flow and returns the resolved,
// normalized theme weights alongside the chosen theme names.
func ResolveThemes(ctx context.Context, c *corpus.Card, ui UserInterface) (ResolvedThemes, error) {
	candidates := c.ThemeTags
	if len(candidates) == 0 {
		return ResolvedThemes{}, fmt.Errorf("commander: %q has no candidate themes", c.Name)
	}

	primary, err := ui.PromptChoice(ctx, "Choose a primary theme", candidates)
	if err != nil {
		return ResolvedThemes{}, fmt.Errorf("commander: prompt primary theme: %w", err)
	}

	result := ResolvedThemes{Primary: primary}
	primaryWeight, secondaryWeight, tertiaryWeight := 1.0, 0.0, 0.0

	wantSecondary, err := ui.PromptConfirm(ctx, "Add a secondary theme?", false)
	if err != nil {
		return ResolvedThemes{}, fmt.Errorf("commander: prompt secondary confirm: %w", err)
	}
	if wantSecondary {
		secondary, err := ui.PromptChoice(ctx, "Choose a secondary theme", remove(candidates, primary))
		if err != nil {
			return ResolvedThemes{}, fmt.Errorf("commander: prompt secondary theme: %w", err)
		}
		result.Secondary = secondary
		secondaryWeight = 0.6

		wantTertiary, err := ui.PromptConfirm(ctx, "Add a tertiary theme?", false)
		if err != nil {
			return ResolvedThemes{}, fmt.Errorf("commander: prompt tertiary confirm: %w", err)
		}
		if wantTertiary {
			tertiary, err := ui.PromptChoice(ctx, "Choose a tertiary theme", remove(candidates, primary, secondary))
			if err != nil {
				return ResolvedThemes{}, fmt.Errorf("commander: prompt tertiary theme: %w", err)
			}
			result.Tertiary = tertiary
			tertiaryWeight = 0.3
		}
	}

	hiddenWeight := 0.0
	if trigger := matchingHiddenTrigger(result, c.ColorIdentity); trigger != nil {
		prompt := fmt.Sprintf("Build around %s? Consider %s", trigger.Theme, strings.Join(trigger.Suggested, ", "))
		accept, err := ui.PromptConfirm(ctx, prompt, false)
		if err != nil {
			return ResolvedThemes{}, fmt.Errorf("commander: prompt hidden theme: %w", err)
		}
		if accept {
			result.Hidden = trigger.Theme
			hiddenWeight = 1 - primaryWeight/3 - secondaryWeight/2 - tertiaryWeight
			if hiddenWeight < 0 {
				hiddenWeight = 0
			}
			if hiddenWeight > 1 {
				hiddenWeight = 1
			}
		}
	}

	result.Weights = ThemeWeights{
		Primary:   primaryWeight * kindredBoost(result.Primary),
		Secondary: secondaryWeight * kindredBoost(result.Secondary),
		Tertiary:  tertiaryWeight * kindredBoost(result.Tertiary),
		Hidden:    hiddenWeight * kindredBoost(result.Hidden),
	}.Normalize()

	return result, nil
}

func matchingHiddenTrigger(r ResolvedThemes, colorIdentity []string) *hiddenThemeTrigger {
	hasColor := func(col string) bool {
		for _, c := range colorIdentity {
			if c == col {
				return true
			}
		}
		return false
	}
	themeSelected := func(theme string) bool {
		return r.Primary == theme || r.Secondary == theme || r.Tertiary == theme
	}
	for i := range hiddenThemeTriggers {
		trigger := hiddenThemeTriggers[i]
		if themeSelected(trigger.Theme) && hasColor(trigger.Color) {
			return &trigger
		}
	}
	return nil
}

func remove(items []string, exclude ...string) []string {
	excluded := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		excluded[e] = true
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !excluded[item] {
			out = append(out, item)
		}
	}
	return out
}
