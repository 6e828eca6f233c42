// Package scrape implements the extraction capability: it fetches one page,
// reduces it to readable markdown and asks a language model to pull the
// requested information out of it as JSON.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/smartscrape"
)

// DefaultMaxTokens is the content budget sent to the model.
const DefaultMaxTokens = 12000

var _ smartscrape.ExtractionService = (*Pipeline)(nil)

// Pipeline implements smartscrape.ExtractionService.
type Pipeline struct {
	// Browsers renders pages in a real browser. When nil, HTTP is used.
	Browsers smartscrape.FetcherProvider
	HTTP     smartscrape.Fetcher

	Limiter   smartscrape.DomainLimiter
	Cleaner   smartscrape.Cleaner
	Extractor smartscrape.Extractor
	Fallback  smartscrape.Extractor
	Converter smartscrape.Converter

	// Completers are keyed by model provider.
	Completers map[string]smartscrape.Completer

	// Counters are keyed by model, since models of one provider may use
	// different encodings. A model without a counter uses EstimateTokens.
	Counters map[smartscrape.Model]smartscrape.TokenCounter

	MaxTokens   int
	RetryDelays []time.Duration

	// Logger receives step logs for submissions with the verbose flag set.
	Logger *slog.Logger
}

// RunExtraction fetches source and asks the configured model to extract
// what prompt describes. The decoded JSON reply is returned verbatim.
func (p *Pipeline) RunExtraction(ctx context.Context, prompt, source string, cfg smartscrape.Config) (any, error) {
	if !cfg.Model.Valid() {
		return nil, smartscrape.Errorf(smartscrape.EINVALID, "unsupported model %q", cfg.Model)
	}
	completer, ok := p.Completers[cfg.Model.Provider()]
	if !ok {
		return nil, smartscrape.Errorf(smartscrape.EINVALID, "no completer for provider %q", cfg.Model.Provider())
	}

	log := p.logger(cfg.Verbose).With("url", source, "model", string(cfg.Model))
	start := time.Now()

	page, err := p.Page(ctx, source, cfg.Headless, log)
	if err != nil {
		return nil, err
	}

	content, truncated := FitTokens(page.Content, p.maxTokens(), p.counter(ctx, cfg.Model, log))
	if truncated {
		log.Info("content truncated", "max_tokens", p.maxTokens(), "bytes", FormatBytes(len(content)))
	}
	page.Content = content

	reply, err := completer.Complete(ctx, smartscrape.CompletionRequest{
		APIKey: cfg.APIKey,
		Model:  cfg.Model.Name(),
		System: SystemPrompt,
		User:   BuildUserPrompt(prompt, page),
		JSON:   true,
	})
	if err != nil {
		return nil, err
	}
	log.Info("model replied", "bytes", FormatBytes(len(reply)))

	result, err := ParseReply(reply)
	if err != nil {
		return nil, err
	}

	log.Info("extraction complete", "duration", time.Since(start))
	return result, nil
}

// Page fetches source and reduces it to its main content as markdown.
func (p *Pipeline) Page(ctx context.Context, source string, headless bool, log *slog.Logger) (*smartscrape.Page, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	u, err := url.Parse(source)
	if err != nil {
		return nil, smartscrape.Errorf(smartscrape.EINVALID, "invalid source URL %q: %v", source, err)
	}
	if u.Hostname() == "" {
		return nil, smartscrape.Errorf(smartscrape.EINVALID, "source URL %q has no host", source)
	}

	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx, u.Hostname()); err != nil {
			return nil, err
		}
	}

	fetcher, release, err := p.fetcher(headless)
	if err != nil {
		return nil, err
	}
	defer release()

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchStart := time.Now()
	html, err := FetchWithRetry(ctx, source, fetcher.Fetch, log, delays)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", source, err)
	}
	log.Info("fetched page", "bytes", FormatBytes(len(html)), "headless", headless, "duration", time.Since(fetchStart))

	if p.Cleaner != nil {
		html, err = p.Cleaner.Clean(html, source)
		if err != nil {
			return nil, fmt.Errorf("clean html: %w", err)
		}
	}

	extracted := p.extract(html, log)

	markdown, err := p.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, fmt.Errorf("convert to markdown: %w", err)
	}
	if strings.TrimSpace(markdown) == "" {
		return nil, smartscrape.Errorf(smartscrape.ENOTFOUND, "no readable content at %s", source)
	}
	log.Info("converted page", "title", extracted.Title, "bytes", FormatBytes(len(markdown)), "hash", ComputeHash(markdown))

	return &smartscrape.Page{
		URL:     source,
		Title:   extracted.Title,
		Content: markdown,
	}, nil
}

// extract tries each configured extractor in turn and falls back to the
// whole document when none finds main content.
func (p *Pipeline) extract(html string, log *slog.Logger) *smartscrape.ExtractResult {
	for _, ex := range []smartscrape.Extractor{p.Extractor, p.Fallback} {
		if ex == nil {
			continue
		}
		result, err := ex.Extract(html)
		if err == nil && result != nil && strings.TrimSpace(result.ContentHTML) != "" {
			return result
		}
		log.Debug("extractor found no content", "error", err)
	}
	log.Info("using whole document")
	return &smartscrape.ExtractResult{ContentHTML: html}
}

// fetcher returns the fetcher for the display mode and a func releasing it.
func (p *Pipeline) fetcher(headless bool) (smartscrape.Fetcher, func(), error) {
	if p.Browsers != nil {
		f, err := p.Browsers.Fetcher(headless)
		if err != nil {
			return nil, nil, fmt.Errorf("browser: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}
	if p.HTTP != nil {
		return p.HTTP, func() {}, nil
	}
	return nil, nil, smartscrape.Errorf(smartscrape.EINTERNAL, "no fetcher configured")
}

// counter returns a CountFunc for the model. Counter errors
// degrade to the byte estimate.
func (p *Pipeline) counter(ctx context.Context, model smartscrape.Model, log *slog.Logger) CountFunc {
	tc, ok := p.Counters[model]
	if !ok || tc == nil {
		return EstimateTokens
	}
	return func(text string) int {
		n, err := tc.CountTokens(ctx, text)
		if err != nil {
			log.Debug("token count failed, estimating", "error", err)
			return EstimateTokens(text)
		}
		return n
	}
}

func (p *Pipeline) maxTokens() int {
	if p.MaxTokens == 0 {
		return DefaultMaxTokens
	}
	return p.MaxTokens
}

// logger returns the step logger for a submission.
func (p *Pipeline) logger(verbose bool) *slog.Logger {
	if !verbose || p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}
