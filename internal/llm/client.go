package llm

import (
	"context"
)

// Client is the capability the explanation engine needs from a language model
// provider. A nil Client means no provider is configured and the deterministic
// fallback handles every change.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
