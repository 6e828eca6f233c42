package rod

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/smartscrape"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the default number of pages before browser recycling.
const DefaultMaxPages = 75

// DefaultFetchTimeout bounds a single page load.
const DefaultFetchTimeout = 30 * time.Second

// ErrClosed is returned when fetching through a closed BrowserManager.
var ErrClosed = errors.New("browser manager closed")

// Ensure BrowserManager implements smartscrape.FetcherProvider at compile time.
var _ smartscrape.FetcherProvider = (*BrowserManager)(nil)

// BrowserManager owns at most one browser per display mode (headless or
// with a visible window). Browsers are launched on first use and recycled
// after maxPages pages to bound Chrome's memory growth.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	maxPages     int64
	fetchTimeout time.Duration
	closed       atomic.Bool

	// launch starts a browser for a mode. Replaced in tests.
	launch func(headless bool) (*managedBrowser, error)

	mu       sync.Mutex
	browsers map[bool]*managedBrowser

	// retired tracks browsers replaced by recycling that still wait for
	// their in-flight pages.
	retired sync.WaitGroup
}

// managedBrowser is a launched browser together with its launcher process.
type managedBrowser struct {
	browser   *rod.Browser
	closeFn   func() error
	pageCount atomic.Int64

	// inflight counts fetches holding the browser. A retired browser is
	// closed once it drops to zero.
	inflight sync.WaitGroup
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the maximum number of pages before the browser is recycled.
// Defaults to 75 if not specified.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// WithFetchTimeout sets the per-page load timeout for fetchers handed out
// by the manager. Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) ManagerOption {
	return func(bm *BrowserManager) {
		bm.fetchTimeout = d
	}
}

// NewBrowserManager creates a new BrowserManager. No browser is launched
// until the first fetch. Close must be called when the manager is no
// longer needed.
func NewBrowserManager(opts ...ManagerOption) *BrowserManager {
	bm := &BrowserManager{
		maxPages:     DefaultMaxPages,
		fetchTimeout: DefaultFetchTimeout,
		browsers:     make(map[bool]*managedBrowser),
		launch:       launchBrowser,
	}
	for _, opt := range opts {
		opt(bm)
	}
	return bm
}

// Fetcher returns a Fetcher that loads pages in the browser for the given mode.
func (bm *BrowserManager) Fetcher(headless bool) (smartscrape.Fetcher, error) {
	if bm.closed.Load() {
		return nil, ErrClosed
	}
	return &Fetcher{manager: bm, headless: headless, timeout: bm.fetchTimeout}, nil
}

// acquire returns the browser for the mode, launching it if needed and
// recycling it once its page budget is spent. The browser stays open until
// the returned release func is called.
func (bm *BrowserManager) acquire(headless bool) (*managedBrowser, func(), error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed.Load() {
		return nil, nil, ErrClosed
	}

	mb, ok := bm.browsers[headless]
	switch {
	case !ok:
		fresh, err := bm.launch(headless)
		if err != nil {
			return nil, nil, err
		}
		mb = fresh
		bm.browsers[headless] = mb
	case mb.pageCount.Load() >= bm.maxPages:
		mb = bm.recycle(mb, headless)
		bm.browsers[headless] = mb
	}

	mb.inflight.Add(1)
	return mb, mb.inflight.Done, nil
}

// recycle starts a fresh browser and retires the old one, which closes after
// its in-flight fetches finish. If launching fails, the old browser is kept
// and its page count reset so the next attempt happens after another full
// budget. Must be called with bm.mu held.
func (bm *BrowserManager) recycle(old *managedBrowser, headless bool) *managedBrowser {
	fresh, err := bm.launch(headless)
	if err != nil {
		old.pageCount.Store(0)
		return old
	}
	bm.retired.Add(1)
	go func() {
		defer bm.retired.Done()
		old.inflight.Wait()
		_ = old.close()
	}()
	return fresh
}

// Close releases all browsers. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	var errs []error
	for mode, mb := range bm.browsers {
		if err := mb.close(); err != nil {
			errs = append(errs, err)
		}
		delete(bm.browsers, mode)
	}
	bm.mu.Unlock()

	bm.retired.Wait()
	return errors.Join(errs...)
}

// launchBrowser starts a new browser instance with stability flags.
func launchBrowser(headless bool) (*managedBrowser, error) {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(headless)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &managedBrowser{
		browser: browser,
		closeFn: func() error {
			err := browser.Close()
			lnchr.Kill()
			return err
		},
	}, nil
}

// close shuts down the browser and its launcher.
func (mb *managedBrowser) close() error {
	if mb.closeFn == nil {
		return nil
	}
	return mb.closeFn()
}
