// Package compose assembles a 100-card Commander-format library around a
// validated commander and its resolved theme weights. It runs a fixed
// sequence of builders — land, creature, non-creature, fill — each bounded
// by target counts derived from Ideals and ThemeWeights, consulting a
// priceapi.Gate between candidate selection and insertion.
package compose

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/commanderforge/commanderforge/commander"
	"github.com/commanderforge/commanderforge/corpus"
	"github.com/commanderforge/commanderforge/priceapi"
)

// Ideals holds the target counts and price ceilings a deck is built to.
type Ideals struct {
	Ramp          int
	Lands         int
	BasicLands    int
	Creatures     int
	Removal       int
	Wipes         int
	CardAdvantage int
	Protection    int
	FreeSlots     int
	MaxCardPrice  *priceapi.Money
	MaxDeckPrice  *priceapi.Money
}

// DefaultIdeals returns the stock target counts used when the user
// supplies no overrides, grounded on the reference builder's defaults.
func DefaultIdeals() Ideals {
	return Ideals{
		Ramp:          8,
		Lands:         35,
		BasicLands:    20,
		Creatures:     25,
		Removal:       10,
		Wipes:         2,
		CardAdvantage: 10,
		Protection:    8,
		FreeSlots:     3,
	}
}

// Entry is one row of the composed library. Count tracks cards legally
// held in multiple copies (basic lands, the hard-coded multi-copy list);
// every other entry has Count == 1.
type Entry struct {
	Card        *corpus.Card
	Count       int
	IsCommander bool
}

// DisplayName renders the entry's name, suffixed with " x N" for counts
// above 1. A count of exactly 1 never gets a suffix, even for a card that
// is normally multi-copy-eligible.
func (e Entry) DisplayName() string {
	if e.Count <= 1 {
		return e.Card.Name
	}
	return e.Card.Name + " x " + strconv.Itoa(e.Count)
}

// UserInterface is the subset of the prompt surface the builders need
// (fetch-land count, dual/triple-land confirmation).
type UserInterface interface {
	PromptNumber(ctx context.Context, message string, defaultValue int) (int, error)
	PromptConfirm(ctx context.Context, message string, defaultValue bool) (bool, error)
	Display(message string)
}

// Result is the output of Run: the finalized library plus any non-fatal
// warnings raised along the way.
type Result struct {
	Library  []Entry
	Warnings []error
}

// builderState is threaded through every builder stage: the growing
// library, the pool it draws from, and the shared price gate.
type builderState struct {
	commander *corpus.Card
	themes    commander.ResolvedThemes
	ideals    Ideals
	gate      *priceapi.Gate
	ui        UserInterface

	slice   *corpus.Table
	library []Entry
	present map[string]int // name -> count already in library
	warns   []error
}

func (s *builderState) addWarning(err error) {
	s.warns = append(s.warns, err)
}

func (s *builderState) contains(name string) bool {
	return s.present[name] > 0
}

func (s *builderState) add(c *corpus.Card, count int) {
	if count <= 0 {
		return
	}
	s.library = append(s.library, Entry{Card: c, Count: count})
	s.present[c.Name] += count
}

// Run builds a 100-card library for cmd around the given commander and
// resolved themes, drawing only from slice (the color-identity partition
// matching the commander's identity).
func Run(ctx context.Context, cmd *corpus.Card, themes commander.ResolvedThemes, slice *corpus.Table, ideals Ideals, gate *priceapi.Gate, ui UserInterface) (Result, error) {
	state := &builderState{
		commander: cmd,
		themes:    themes,
		ideals:    ideals,
		gate:      gate,
		ui:        ui,
		slice:     slice,
		present:   make(map[string]int),
	}

	state.add(cmd, 1)

	buildLands(ctx, state)
	buildCreatures(ctx, state)
	buildNonCreatures(ctx, state)
	fillToTarget(ctx, state)
	finalize(state)

	if total := state.totalCount(); total < 100 {
		err := fmt.Errorf("commander forge compose: %w: library has %d of 100 cards", ErrCompositionIncomplete, total)
		state.addWarning(err)
	}

	return Result{Library: state.library, Warnings: state.warns}, nil
}

// totalCount returns the deck's current card count, counting multi-copy
// entries by their Count rather than as one row.
func (s *builderState) totalCount() int {
	total := 0
	for _, e := range s.library {
		total += e.Count
	}
	return total
}

// sortByRank sorts cards by ascending EDHREC rank, nil ranks last.
func sortByRank(cards []*corpus.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		ri, rj := cards[i].EdhrecRank, cards[j].EdhrecRank
		if ri == nil && rj == nil {
			return false
		}
		if ri == nil {
			return false
		}
		if rj == nil {
			return true
		}
		return *ri < *rj
	})
}
