package commanderforge

import (
	"context"
	"fmt"

	"github.com/commanderforge/commanderforge/commander"
	"github.com/commanderforge/commanderforge/compose"
	"github.com/commanderforge/commanderforge/corpus"
	"github.com/commanderforge/commanderforge/priceapi"
	"github.com/commanderforge/commanderforge/tagengine"
)

// BuildResult is the outcome of a full Build run: the resolved
// commander profile, the finalized library, and any non-fatal warnings
// the builders raised.
type BuildResult struct {
	Profile  CommanderProfile
	Library  []compose.Entry
	Warnings []error
}

// Build runs the full pipeline end to end: load the corpus, tag every
// card, select and validate a commander, resolve its themes, and compose
// a 100-card library around it. corpusPath is the card table CSV;
// rulesPath, if non-empty, loads a supplemental tagengine.RuleSet on top
// of the built-in rules; gate may be priceapi.Unlimited.
func Build(ctx context.Context, corpusPath, rulesPath string, ideals Ideals, gate *priceapi.Gate, ui UserInterface) (BuildResult, error) {
	table, err := corpus.LoadFullCorpus(corpusPath)
	if err != nil {
		return BuildResult{}, fmt.Errorf("commanderforge: load corpus: %w", err)
	}

	if rulesPath != "" {
		rs, err := tagengine.LoadRuleSet(rulesPath)
		if err != nil {
			return BuildResult{}, fmt.Errorf("commanderforge: load rule set: %w", err)
		}
		tagengine.RunWithRuleSet(table, rs)
	} else {
		tagengine.Run(table)
	}

	pool := corpus.LoadCommanderPool(table)
	cmd, err := commander.SelectCommander(ctx, pool, ui)
	if err != nil {
		return BuildResult{}, fmt.Errorf("commanderforge: select commander: %w", err)
	}
	if err := commander.ValidateCommander(cmd); err != nil {
		return BuildResult{}, fmt.Errorf("%w: %v", ErrCommanderInvalid, err)
	}

	themes, err := commander.ResolveThemes(ctx, cmd, ui)
	if err != nil {
		return BuildResult{}, fmt.Errorf("commanderforge: resolve themes: %w", err)
	}

	slice := table.Filter(func(c *corpus.Card) bool {
		return corpus.IsSubsetIdentity(c.ColorIdentity, cmd.ColorIdentity) && !corpus.IsBanned(c.Name)
	})

	result, err := compose.Run(ctx, cmd, themes, slice, ideals, gate, ui)
	if err != nil {
		return BuildResult{}, fmt.Errorf("commanderforge: compose: %w", err)
	}

	return BuildResult{
		Profile:  CommanderProfile{Card: cmd, Themes: themes},
		Library:  result.Library,
		Warnings: result.Warnings,
	}, nil
}
