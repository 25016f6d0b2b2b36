// Package rod provides a browser-based implementation of schemagen.Fetcher
// for pages that require JavaScript rendering.
package rod

import (
	"context"
	"errors"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

// DefaultMaxPages is the number of pages fetched before the browser is
// recycled. Chrome accumulates memory over time and the baseline never
// returns to initial levels even with proper page cleanup, so a long-lived
// server process restarts the browser periodically.
const DefaultMaxPages = 75

// Ensure Fetcher implements schemagen.Fetcher at compile time.
var _ schemagen.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	mu        sync.Mutex
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int
	maxPages  int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithMaxPages sets the number of pages fetched before the browser is
// recycled. Defaults to DefaultMaxPages.
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
	f := &Fetcher{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(f)
	}
	if err := f.launchBrowser(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Fetcher) launchBrowser() error {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return schemagen.Errorf(schemagen.EUNAVAILABLE, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return schemagen.Errorf(schemagen.EUNAVAILABLE, "connecting to browser: %v", err)
	}

	f.browser = browser
	f.launcher = l
	return nil
}

// acquireBrowser returns the current browser, recycling it when the page
// budget is spent. If relaunching fails the old browser is kept.
func (f *Fetcher) acquireBrowser() *rod.Browser {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pageCount >= f.maxPages {
		oldBrowser, oldLauncher := f.browser, f.launcher
		f.browser, f.launcher = nil, nil
		if err := f.launchBrowser(); err != nil {
			f.browser, f.launcher = oldBrowser, oldLauncher
		} else {
			if oldBrowser != nil {
				_ = oldBrowser.Close()
			}
			if oldLauncher != nil {
				oldLauncher.Kill()
			}
			f.pageCount = 0
		}
	}

	f.pageCount++
	return f.browser
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser := f.acquireBrowser()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", schemagen.Errorf(schemagen.EUNAVAILABLE, "opening page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", fetchError(url, err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", fetchError(url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fetchError(url, err)
	}

	return html, nil
}

func fetchError(url string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return schemagen.Errorf(schemagen.ETIMEOUT, "timed out rendering %s", url)
	}
	return schemagen.Errorf(schemagen.EUNAVAILABLE, "failed to render %s: %v", url, err)
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}
