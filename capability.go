package commanderforge

import "context"

// UserInterface is the abstract prompt/display surface the commander,
// theme, and land-builder flows drive. Implementations range from a stdin
// CLI (cmd/commanderforge-demo) to a scripted fake for tests.
type UserInterface interface {
	PromptText(ctx context.Context, message string) (string, error)
	PromptNumber(ctx context.Context, message string, defaultValue int) (int, error)
	PromptChoice(ctx context.Context, message string, choices []string) (string, error)
	PromptConfirm(ctx context.Context, message string, defaultValue bool) (bool, error)
	Display(message string)
}
