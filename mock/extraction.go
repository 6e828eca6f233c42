package mock

import (
	"context"

	"github.com/fwojciec/smartscrape"
)

var _ smartscrape.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of smartscrape.ExtractionService.
type ExtractionService struct {
	RunExtractionFn func(ctx context.Context, prompt, source string, cfg smartscrape.Config) (any, error)
}

func (s *ExtractionService) RunExtraction(ctx context.Context, prompt, source string, cfg smartscrape.Config) (any, error) {
	return s.RunExtractionFn(ctx, prompt, source, cfg)
}
