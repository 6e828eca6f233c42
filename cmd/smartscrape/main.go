package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/smartscrape"
	"github.com/fwojciec/smartscrape/gemini"
	"github.com/fwojciec/smartscrape/goquery"
	"github.com/fwojciec/smartscrape/htmltomarkdown"
	sshttp "github.com/fwojciec/smartscrape/http"
	"github.com/fwojciec/smartscrape/openai"
	"github.com/fwojciec/smartscrape/openrouter"
	"github.com/fwojciec/smartscrape/readability"
	"github.com/fwojciec/smartscrape/rod"
	"github.com/fwojciec/smartscrape/scrape"
	ssslog "github.com/fwojciec/smartscrape/slog"
	"github.com/fwojciec/smartscrape/tiktoken"
	"github.com/fwojciec/smartscrape/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		PrintError(os.Stderr, err)
		stop()
		_ = m.Close()
		os.Exit(1)
	}
}

// PrintError writes err to w unless the command has already reported it.
func PrintError(w io.Writer, err error) {
	var reported *reportedError
	if errors.As(err, &reported) {
		return
	}
	fmt.Fprintln(w, err)
}

// Main represents the program.
type Main struct {
	// Browsers is launched lazily by the first browser fetch.
	Browsers *rod.BrowserManager

	// Service overrides the extraction pipeline for end-to-end testing.
	Service smartscrape.ExtractionService
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Browsers != nil {
		return m.Browsers.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("smartscrape"),
		kong.Description("Extract structured information from web pages with a language model."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'smartscrape --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Debug)

	switch strings.Fields(kongCtx.Command())[0] {
	case "serve", "run":
		if m.Service == nil {
			m.Service = m.newPipeline(cli.NoBrowser, deps.Logger)
		}
		deps.Service = ssslog.NewLoggingExtractionService(m.Service, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newTokenCounters builds a counter for every model whose provider has a
// tokenizer. OpenRouter models fall back to the estimate.
func newTokenCounters() map[smartscrape.Model]smartscrape.TokenCounter {
	counters := make(map[smartscrape.Model]smartscrape.TokenCounter)
	for _, m := range smartscrape.Models() {
		switch m.Provider() {
		case smartscrape.ProviderOpenAI:
			counters[m] = tiktoken.NewTokenCounter(m.Name())
		case smartscrape.ProviderGemini:
			counters[m] = gemini.NewTokenCounter(m.Name())
		}
	}
	return counters
}

// newPipeline wires the production extraction pipeline.
func (m *Main) newPipeline(noBrowser bool, logger *slog.Logger) *scrape.Pipeline {
	p := &scrape.Pipeline{
		HTTP:      ssslog.NewLoggingFetcher(sshttp.NewFetcher(), logger),
		Limiter:   scrape.NewDomainLimiter(scrape.DefaultRequestsPerSecond),
		Cleaner:   goquery.NewCleaner(),
		Extractor: trafilatura.NewExtractor(),
		Fallback:  readability.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
		Completers: map[string]smartscrape.Completer{
			smartscrape.ProviderOpenAI:     ssslog.NewLoggingCompleter(openai.NewCompleter(), smartscrape.ProviderOpenAI, logger),
			smartscrape.ProviderGemini:     ssslog.NewLoggingCompleter(gemini.NewCompleter(), smartscrape.ProviderGemini, logger),
			smartscrape.ProviderOpenRouter: ssslog.NewLoggingCompleter(openrouter.NewCompleter(), smartscrape.ProviderOpenRouter, logger),
		},
		Counters:  newTokenCounters(),
		MaxTokens: scrape.DefaultMaxTokens,
		Logger:    logger,
	}
	if !noBrowser {
		m.Browsers = rod.NewBrowserManager()
		p.Browsers = ssslog.NewLoggingFetcherProvider(m.Browsers, logger)
	}
	return p
}

// newLogger returns a text logger on w at info level, or debug level when
// debug is set.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
