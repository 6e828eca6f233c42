package mock

import (
	"context"

	"github.com/fwojciec/smartscrape"
)

var _ smartscrape.Completer = (*Completer)(nil)

// Completer is a mock implementation of smartscrape.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, req smartscrape.CompletionRequest) (string, error)
}

func (c *Completer) Complete(ctx context.Context, req smartscrape.CompletionRequest) (string, error) {
	return c.CompleteFn(ctx, req)
}
