package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/smartscrape"
)

// Ensure LoggingExtractionService implements smartscrape.ExtractionService.
var _ smartscrape.ExtractionService = (*LoggingExtractionService)(nil)

// LoggingExtractionService wraps an ExtractionService with logging.
type LoggingExtractionService struct {
	next   smartscrape.ExtractionService
	logger *slog.Logger
}

// NewLoggingExtractionService creates a new LoggingExtractionService.
func NewLoggingExtractionService(next smartscrape.ExtractionService, logger *slog.Logger) *LoggingExtractionService {
	return &LoggingExtractionService{next: next, logger: logger}
}

// RunExtraction delegates to the wrapped service and logs the outcome.
// cfg is logged through its LogValue, which redacts the credential.
func (s *LoggingExtractionService) RunExtraction(ctx context.Context, prompt, source string, cfg smartscrape.Config) (result any, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "extraction",
			"url", source,
			"prompt_bytes", len(prompt),
			"config", cfg,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RunExtraction(ctx, prompt, source, cfg)
}
