// Package rod provides a textract.Fetcher backed by a headless Chrome
// browser, for pages whose content is rendered by JavaScript.
package rod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/textract"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout is the default time allowed for one page to load.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxPages is the default number of pages before the browser is recycled.
const DefaultMaxPages = 75

// Ensure Fetcher implements textract.Fetcher at compile time.
var _ textract.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Chrome keeps growing its memory footprint under load, so the browser is
// replaced after every maxPages pages.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	timeout  time.Duration
	maxPages int

	mu      sync.Mutex
	current *instance
	pages   int
	closed  bool
}

// instance is one launched browser. A retired instance is shut down once
// its last open page is released.
type instance struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	active   int
	retired  bool
}

func (in *instance) shutdown() error {
	err := in.browser.Close()
	in.launcher.Kill()
	return err
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the time allowed for one page to load.
// Defaults to DefaultFetchTimeout if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxPages sets the number of pages after which the browser is recycled.
// Defaults to DefaultMaxPages if not specified.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.launch(); err != nil {
		return nil, err
	}
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	in, err := f.acquire()
	if err != nil {
		return "", err
	}
	defer f.release(in)

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := in.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}

// Close releases browser resources. Close is safe to call multiple times.
// Pages still loading keep their browser until they finish.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	in := f.current
	f.current = nil
	in.retired = true
	if in.active == 0 {
		return in.shutdown()
	}
	return nil
}

// acquire returns the browser instance for the next page, recycling it first
// when the page budget is spent. If a replacement cannot be launched the old
// browser stays in service.
func (f *Fetcher) acquire() (*instance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, textract.Errorf(textract.EINTERNAL, "fetcher closed")
	}

	if f.maxPages > 0 && f.pages >= f.maxPages {
		old := f.current
		if err := f.launch(); err == nil {
			old.retired = true
			if old.active == 0 {
				_ = old.shutdown()
			}
			f.pages = 0
		}
	}

	f.pages++
	f.current.active++
	return f.current, nil
}

// release marks one page of in as finished.
func (f *Fetcher) release(in *instance) {
	f.mu.Lock()
	defer f.mu.Unlock()

	in.active--
	if in.retired && in.active == 0 {
		_ = in.shutdown()
	}
}

// launch starts a new browser instance and makes it current, leaving the
// current one in place on failure. Must be called with mu held or before the
// Fetcher is shared.
func (f *Fetcher) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	f.current = &instance{browser: browser, launcher: l}
	return nil
}
