package description

import (
	"context"

	"meetspace/internal/pkg/languagetool"
)

// Generator is the text-completion capability. Implementations must be treated
// as non-deterministic and occasionally low-quality; the pipeline validates
// every draft.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GrammarChecker reports grammar issues in a piece of text.
type GrammarChecker interface {
	Check(ctx context.Context, text string) ([]languagetool.Match, error)
}
