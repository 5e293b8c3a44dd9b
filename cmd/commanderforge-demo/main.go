// Command commanderforge-demo is a terminal front end over the
// commanderforge library: it loads a card corpus, walks the interactive
// commander/theme prompts, composes a 100-card library, and writes it
// out as CSV.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/commanderforge/commanderforge"
	"github.com/commanderforge/commanderforge/compose"
	"github.com/commanderforge/commanderforge/internal/cache"
	"github.com/commanderforge/commanderforge/internal/priceclient"
	"github.com/commanderforge/commanderforge/priceapi"
)

func main() {
	cmd := &cli.Command{
		Name:  "commanderforge-demo",
		Usage: "Build a Commander-format deck from a card corpus",
		Commands: []*cli.Command{
			buildCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "commanderforge-demo:", err)
		os.Exit(1)
	}
}

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Compose a deck around an interactively chosen commander",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "corpus",
				Aliases:  []string{"c"},
				Usage:    "Path to the card table CSV",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "rules",
				Usage: "Path to a supplemental tag-engine rule set YAML file",
			},
			&cli.StringFlag{
				Name:  "out",
				Value: "deck.csv",
				Usage: "Output CSV path for the finalized library",
			},
			&cli.StringFlag{
				Name:  "price-cache",
				Usage: "Path to a SQLite price cache; omit to skip price lookups",
			},
			&cli.Float64Flag{
				Name:  "max-card-price",
				Usage: "Per-card price ceiling in dollars; omit for no ceiling",
			},
			&cli.Float64Flag{
				Name:  "max-deck-price",
				Usage: "Per-deck price ceiling in dollars; omit for no ceiling",
			},
		},
		Action: runBuild,
	}
}

func runBuild(ctx context.Context, c *cli.Command) error {
	runID := uuid.New().String()

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("loading and tagging corpus"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
	)
	defer bar.Finish()

	gate, cleanup, err := buildGate(c)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	ideals := commanderforge.DefaultIdeals()
	ui := newStdinUI()

	start := time.Now()
	result, err := commanderforge.Build(ctx, c.String("corpus"), c.String("rules"), ideals, gate, ui)
	if err != nil {
		return err
	}

	if err := exportLibrary(c.String("out"), result); err != nil {
		return err
	}

	ui.Display(fmt.Sprintf("run %s: built %d-card library around %s in %s", runID, countEntries(result), result.Profile.Card.Name, time.Since(start).Round(time.Millisecond)))
	for _, w := range result.Warnings {
		ui.Display("warning: " + w.Error())
	}
	return nil
}

func buildGate(c *cli.Command) (*priceapi.Gate, func(), error) {
	var maxCard, maxDeck *priceapi.Money
	if c.IsSet("max-card-price") {
		m := priceapi.Money(c.Float64("max-card-price") * 100)
		maxCard = &m
	}
	if c.IsSet("max-deck-price") {
		m := priceapi.Money(c.Float64("max-deck-price") * 100)
		maxDeck = &m
	}

	cachePath := c.String("price-cache")
	if cachePath == "" {
		return priceapi.Unlimited, nil, nil
	}

	store, err := cache.Open(cachePath)
	if err != nil {
		return nil, nil, fmt.Errorf("commanderforge-demo: open price cache: %w", err)
	}
	oracle := &cache.CachingOracle{Store: store, Delegate: priceclient.New(priceclient.Options{})}
	gate := priceapi.NewGate(oracle, maxCard, maxDeck)
	return gate, func() { store.Close() }, nil
}

func countEntries(result commanderforge.BuildResult) int {
	total := 0
	for _, e := range result.Library {
		total += e.Count
	}
	return total
}

func exportLibrary(path string, result commanderforge.BuildResult) error {
	if err := compose.ExportCSV(path, result.Library); err != nil {
		return err
	}
	stats := compose.ComputeStats(result.Library)
	fmt.Printf("average CMC: %.2f, pips: %s\n", stats.AverageCMC, humanize.Comma(int64(totalPips(stats))))
	return nil
}

func totalPips(stats compose.Stats) int {
	total := 0
	for _, n := range stats.PipsByColor {
		total += n
	}
	return total
}
