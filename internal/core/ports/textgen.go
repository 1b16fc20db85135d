package ports

import "context"

// TextGenerator is the generative text service contract: one free-text
// prompt in, one free-text completion out. The completion is expected to
// contain a JSON object, optionally inside a fenced code block. A nil
// TextGenerator means AI features are disabled and callers must use their
// deterministic fallbacks.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
