package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/smartscrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Service smartscrape.ExtractionService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug     bool `help:"Log at debug level" env:"SMARTSCRAPE_DEBUG"`
	NoBrowser bool `help:"Fetch pages over plain HTTP instead of a browser" env:"SMARTSCRAPE_NO_BROWSER"`

	Serve  ServeCmd  `cmd:"" help:"Serve the extraction form over HTTP"`
	Run    RunCmd    `cmd:"" help:"Run one extraction and print the result as JSON"`
	Models ModelsCmd `cmd:"" help:"List supported models"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr       string        `default:":8501" help:"Listen address" env:"SMARTSCRAPE_ADDR"`
	SessionTTL time.Duration `name:"session-ttl" default:"30m" help:"Evict sessions idle for longer than this" env:"SMARTSCRAPE_SESSION_TTL"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Prompt   string `arg:"" help:"What to extract"`
	URL      string `arg:"" name:"url" help:"Source URL"`
	APIKey   string `name:"api-key" help:"Provider API key" env:"SMARTSCRAPE_API_KEY"`
	Model    string `default:"openai/gpt-4o-mini" help:"Model identifier (see 'smartscrape models')" env:"SMARTSCRAPE_MODEL"`
	Verbose  bool   `default:"true" negatable:"" help:"Log pipeline steps" env:"SMARTSCRAPE_VERBOSE"`
	Headless bool   `help:"Run the browser without a window" env:"SMARTSCRAPE_HEADLESS"`
}

// ModelsCmd is the "models" subcommand.
type ModelsCmd struct{}
