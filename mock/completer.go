package mock

import (
	"context"

	"github.com/warmlinehq/warmline"
)

var _ warmline.Completer = (*Completer)(nil)

// Completer is a mock implementation of warmline.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, prompt string) (*warmline.Completion, error)
}

func (c *Completer) Complete(ctx context.Context, prompt string) (*warmline.Completion, error) {
	return c.CompleteFn(ctx, prompt)
}
