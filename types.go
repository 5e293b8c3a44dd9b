// Package commanderforge composes 100-card Commander-format decks around a
// chosen legendary commander. It loads a card corpus, enriches it with the
// tagengine package's mechanical theme tags, resolves a commander and its
// weighted themes, then runs the compose package's builders to select the
// final library.
package commanderforge

import (
	"github.com/commanderforge/commanderforge/commander"
	"github.com/commanderforge/commanderforge/compose"
	"github.com/commanderforge/commanderforge/corpus"
)

// CommanderProfile is the resolved, validated commander a deck is built
// around, plus the themes chosen for it.
type CommanderProfile struct {
	Card   *corpus.Card
	Themes commander.ResolvedThemes
}

// Ideals holds the target counts and price ceilings a deck is built to.
// Pointers on the two price fields distinguish "unset" from "$0".
type Ideals = compose.Ideals

// DefaultIdeals returns the stock target counts used when the user
// supplies no overrides.
func DefaultIdeals() Ideals {
	return compose.DefaultIdeals()
}

// DeckEntry is one row of the composed library. Count tracks cards legally
// held in multiple copies (basic lands, the hard-coded multi-copy list);
// every other entry has Count == 1.
type DeckEntry = compose.Entry
