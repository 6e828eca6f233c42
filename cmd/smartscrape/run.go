package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/smartscrape"
	"github.com/fwojciec/smartscrape/form"
)

// Run executes the run command.
// The outcome message goes to stderr and the result JSON to stdout.
func (c *RunCmd) Run(deps *Dependencies) error {
	in := smartscrape.Inputs{
		APIKey:    c.APIKey,
		Model:     smartscrape.Model(c.Model),
		Verbose:   c.Verbose,
		Headless:  c.Headless,
		Prompt:    c.Prompt,
		SourceURL: c.URL,
	}

	controller := form.NewController(deps.Service, deps.Logger)
	out := controller.Submit(deps.Ctx, in, &progress{w: deps.Stderr})

	switch out.State {
	case form.StateSucceeded:
		formatted, err := smartscrape.FormatResult(out.Result)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stderr, out.Message)
		fmt.Fprintln(deps.Stdout, formatted)
		return nil
	case form.StateRejected:
		fmt.Fprintf(deps.Stderr, "error: %s\n", out.Message)
	default:
		fmt.Fprintln(deps.Stderr, out.Message)
		fmt.Fprintln(deps.Stderr, out.Hint)
	}
	return &reportedError{err: smartscrape.Errorf(out.Code, "%s", out.Message)}
}

// reportedError wraps an error whose message the command already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// progress reports the busy indicator on a terminal.
type progress struct {
	w io.Writer
}

func (p *progress) Start() { fmt.Fprintln(p.w, form.ProgressMessage) }
func (p *progress) Stop()  {}
