// Package form implements the submission protocol behind the extraction
// form: input validation, configuration assembly, the busy indicator and
// conversion of the extraction outcome into something a page can render.
package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/smartscrape"
)

// User-facing messages.
const (
	ProgressMessage = "Scraping in progress... This may take a moment."
	SuccessMessage  = "Scraping complete!"
	FailurePrefix   = "An error occurred during scraping: "
	FailureHint     = "Please check your API key, prompt, and URL. Also ensure the website is accessible."
	BusyMessage     = "An extraction is already in progress."
)

// State is where a submission ended up.
type State string

// Submission states. Idle is only ever reported before the first submission.
const (
	StateIdle      State = "idle"
	StateRejected  State = "rejected"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Outcome is the tagged result of one submission.
type Outcome struct {
	State State `json:"state"`

	// Code is the application error code for rejected and failed outcomes.
	Code string `json:"code,omitempty"`

	// Field names the missing input when validation rejected the submission.
	Field smartscrape.Field `json:"field,omitempty"`

	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`

	// Result is the extraction value, exactly as the service returned it.
	Result any `json:"result,omitempty"`

	Duration time.Duration `json:"-"`
}

// Indicator is the busy state shown while an extraction runs.
type Indicator interface {
	Start()
	Stop()
}

// Controller runs the submission protocol against an ExtractionService.
// It holds no per-session state and is safe for concurrent use.
type Controller struct {
	service smartscrape.ExtractionService
	logger  *slog.Logger
}

// NewController creates a new Controller. A nil logger discards output.
func NewController(service smartscrape.ExtractionService, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{service: service, logger: logger}
}

// Submit validates in and, if it is complete, invokes the extraction service
// exactly once. ind, if not nil, is held for the duration of the call.
// Submit never returns an error and never panics on a failing service:
// every failure is folded into the returned Outcome.
func (c *Controller) Submit(ctx context.Context, in smartscrape.Inputs, ind Indicator) *Outcome {
	if err := in.Validate(); err != nil {
		c.logger.Debug("submission rejected", "field", in.MissingField(), "err", err)
		return &Outcome{
			State:   StateRejected,
			Code:    smartscrape.ErrorCode(err),
			Field:   in.MissingField(),
			Message: smartscrape.ErrorMessage(err),
		}
	}

	cfg := in.Config()

	begin := time.Now()
	result, err := c.run(ctx, in.Prompt, in.SourceURL, cfg, ind)
	elapsed := time.Since(begin)

	if err != nil {
		c.logger.Info("extraction failed",
			"source", in.SourceURL,
			"config", cfg,
			"duration", elapsed,
			"err", err,
		)
		code := smartscrape.ErrorCode(err)
		if errors.Is(err, context.Canceled) {
			code = smartscrape.ECANCELED
		}
		return &Outcome{
			State:    StateFailed,
			Code:     code,
			Message:  FailurePrefix + describe(err),
			Hint:     FailureHint,
			Duration: elapsed,
		}
	}

	c.logger.Info("extraction succeeded",
		"source", in.SourceURL,
		"config", cfg,
		"duration", elapsed,
	)
	return &Outcome{
		State:    StateSucceeded,
		Message:  SuccessMessage,
		Result:   result,
		Duration: elapsed,
	}
}

// describe returns the user-facing description of a failure. An application
// error wrapped with context keeps the context and shows its message in
// place of its formatted code.
func describe(err error) string {
	var e *smartscrape.Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if err == error(e) {
		return e.Message
	}
	return strings.Replace(err.Error(), e.Error(), e.Message, 1)
}

// run invokes the service with the indicator held.
// A panic inside the service is reported as an ordinary failure.
func (c *Controller) run(ctx context.Context, prompt, source string, cfg smartscrape.Config, ind Indicator) (result any, err error) {
	if ind != nil {
		ind.Start()
		defer ind.Stop()
	}
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("extraction panicked: %v", r)
		}
	}()
	return c.service.RunExtraction(ctx, prompt, source, cfg)
}
