package commanderforge

import (
	"errors"

	"github.com/commanderforge/commanderforge/compose"
	"github.com/commanderforge/commanderforge/priceapi"
)

// Sentinel errors for the commander/theme/composition flow. Corpus-level
// errors (missing file, schema mismatch) live in package corpus. The
// composition and price sentinels are the compose and priceapi values
// themselves, so errors.Is matches the entries of BuildResult.Warnings.
var (
	// ErrCommanderInvalid means a selected card fails validate_commander:
	// wrong type line, bad stats, or an inexpressible color identity.
	ErrCommanderInvalid = errors.New("commanderforge: commander failed validation")

	// ErrNoEligibleCards means a builder found zero candidates for a
	// required theme or role. Non-fatal: the builder logs and continues
	// with a partial contribution.
	ErrNoEligibleCards = compose.ErrNoEligibleCards

	// ErrPriceLimit means a card's price exceeded its ceiling (with the
	// 1.1x tolerance already applied). Non-fatal at card scope.
	ErrPriceLimit = priceapi.ErrPriceLimit

	// ErrLandBalancing means the land-pruning loop could not reach its
	// target within its attempt budget. Logged as a warning; composition
	// continues with a deck that may run 1-2 lands shy or over.
	ErrLandBalancing = compose.ErrLandBalancing

	// ErrCompositionIncomplete means the fill-to-100 loop exited with
	// fewer than 100 entries. The deck file is still written.
	ErrCompositionIncomplete = compose.ErrCompositionIncomplete

	// ErrInputValidation means a UserInterface prompt received invalid
	// input after exhausting its retry budget.
	ErrInputValidation = errors.New("commanderforge: input validation failed")
)

// Warning is a non-fatal condition surfaced alongside a successful
// Result: a role a builder couldn't fully fill, a pruning loop that gave
// up early, or similar. Composition continues regardless.
type Warning struct {
	Err     error
	Context string
}

func (w Warning) Error() string {
	if w.Context == "" {
		return w.Err.Error()
	}
	return w.Context + ": " + w.Err.Error()
}

func (w Warning) Unwrap() error { return w.Err }
