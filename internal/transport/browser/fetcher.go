package browser

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"

	"github.com/oshokin/lyrics-grabber/internal/logger"
)

//go:generate $MOCKGEN -source=fetcher.go -destination=mocks/fetcher_mock.go

// PageFetcher returns the rendered HTML of a page.
type PageFetcher interface {
	// FetchHTML navigates to pageURL and returns the document HTML once loaded.
	FetchHTML(ctx context.Context, pageURL string) (string, error)
	// Close shuts the browser down and removes its temporary profile.
	Close(ctx context.Context)
}

// FetcherImpl lazily launches one headless browser and reuses it for every page.
type FetcherImpl struct {
	mu sync.Mutex
	// pageTimeout bounds navigation plus load of a single page.
	pageTimeout time.Duration
	browser     *rod.Browser
	launcher    *launcher.Launcher
	tempDir     string
	closed      bool
}

const (
	// profileDirPattern names the throwaway Chromium profile directory.
	profileDirPattern = "lyrics-grabber-browser-*"

	// defaultPageTimeout applies when NewFetcher gets a non-positive timeout.
	defaultPageTimeout = 30 * time.Second

	// browserCleanupDelay lets Chromium release file locks before the profile is removed.
	browserCleanupDelay = 300 * time.Millisecond
)

// NewFetcher creates and returns a new instance of PageFetcher.
// No browser is started until the first FetchHTML call.
func NewFetcher(pageTimeout time.Duration) PageFetcher {
	if pageTimeout <= 0 {
		pageTimeout = defaultPageTimeout
	}

	return &FetcherImpl{pageTimeout: pageTimeout}
}

// FetchHTML opens a stealth page, waits for the load event and returns its HTML.
func (f *FetcherImpl) FetchHTML(ctx context.Context, pageURL string) (string, error) {
	if pageURL == "" {
		return "", ErrEmptyURL
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return "", ErrFetcherClosed
	}

	if err := f.ensureBrowser(ctx); err != nil {
		return "", err
	}

	// Stealth pages patch navigator fields that bot filters check.
	page, err := stealth.Page(f.browser)
	if err != nil {
		return "", fmt.Errorf("failed to open stealth page: %w", err)
	}

	defer func() {
		if closeErr := page.Close(); closeErr != nil {
			logger.Debugf(ctx, "Page close error: %v", closeErr)
		}
	}()

	page = page.Context(ctx).Timeout(f.pageTimeout)

	logger.Debugf(ctx, "Rendering %s", pageURL)

	if err = page.Navigate(pageURL); err != nil {
		return "", fmt.Errorf("failed to navigate to %s: %w", pageURL, err)
	}

	if err = page.WaitLoad(); err != nil {
		return "", fmt.Errorf("failed to wait for %s to load: %w", pageURL, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to read HTML of %s: %w", pageURL, err)
	}

	return html, nil
}

// Close shuts the browser down. It is safe to call more than once.
func (f *FetcherImpl) Close(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}

	f.closed = true

	if f.browser != nil {
		if err := f.browser.Close(); err != nil {
			logger.Debugf(ctx, "Browser close error (expected): %v", err)
		}
	}

	if f.launcher != nil {
		f.launcher.Kill()
	}

	if f.tempDir != "" {
		time.Sleep(browserCleanupDelay)

		if err := os.RemoveAll(f.tempDir); err != nil {
			logger.Debugf(ctx, "Could not clean up temp directory %s: %v", f.tempDir, err)
		}
	}
}

func (f *FetcherImpl) ensureBrowser(ctx context.Context) error {
	if f.browser != nil {
		return nil
	}

	tempDir, err := os.MkdirTemp("", profileDirPattern)
	if err != nil {
		return fmt.Errorf("failed to create temporary user data directory: %w", err)
	}

	f.tempDir = tempDir

	l := launcher.New().
		Headless(true).
		UserDataDir(tempDir)

	// Prefer an installed Chrome; rod downloads Chromium otherwise.
	if chromePath, exists := launcher.LookPath(); exists {
		logger.Debugf(ctx, "Using system Chrome installation at: %s", chromePath)
		l = l.Bin(chromePath)
	} else {
		logger.Info(ctx, "System Chrome not found, downloading Chromium")
	}

	controlURL, err := l.Context(ctx).Launch()
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	f.launcher = l

	browserInstance := rod.New().ControlURL(controlURL)
	if logger.IsDebugLevel() {
		browserInstance = browserInstance.Trace(true)
	}

	if err = browserInstance.Connect(); err != nil {
		return fmt.Errorf("failed to connect to browser: %w", err)
	}

	f.browser = browserInstance

	logger.Debug(ctx, "Headless browser ready")

	return nil
}
