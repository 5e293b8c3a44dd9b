package compose

import "errors"

// Sentinel errors scoped to the compose package. The root package wraps
// or compares against these where it surfaces composition warnings.
var (
	// ErrNoEligibleCards means a builder found zero candidates for a
	// required theme or role; the builder logs and moves on.
	ErrNoEligibleCards = errors.New("compose: no eligible cards for role")

	// ErrLandBalancing means the land-pruning loop could not reach its
	// target within its attempt budget.
	ErrLandBalancing = errors.New("compose: land balancing incomplete")

	// ErrCompositionIncomplete means Run finished with fewer than 100
	// cards in the library, multi-copy entries counted by their Count.
	ErrCompositionIncomplete = errors.New("compose: composition incomplete")
)
