package browser

import (
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"go.uber.org/zap"
)

// Session owns a single headless browser instance. It is not safe for
// concurrent use; one navigation runs at a time.
type Session struct {
	browser   *rod.Browser
	stabilize time.Duration
	log       *zap.SugaredLogger
}

// chromePaths are probed before falling back to a downloaded Chromium.
var chromePaths = []string{
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
	"/usr/bin/chromium",
	"/usr/bin/chromium-browser",
	"/snap/bin/chromium",
}

// Open launches a headless browser and connects to it. stabilize bounds how
// long Navigate waits for dynamic pages to settle after load.
func Open(stabilize time.Duration, log *zap.SugaredLogger) (*Session, error) {
	ln := launcher.New().
		Headless(true).
		NoSandbox(true).
		Leakless(false).
		Set("disable-blink-features", "AutomationControlled").
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("no-first-run").
		Set("no-default-browser-check").
		Set("disable-extensions").
		Set("disable-background-networking").
		Set("mute-audio")

	for _, path := range chromePaths {
		if _, err := os.Stat(path); err == nil {
			ln = ln.Bin(path)
			break
		}
	}

	controlURL, err := ln.Launch()
	if err != nil {
		return nil, &SessionError{Err: err}
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return nil, &SessionError{Err: err}
	}

	log.Debugw("browser session opened", "stabilize", stabilize)

	return &Session{browser: b, stabilize: stabilize, log: log}, nil
}

// Navigate loads url in a fresh tab and returns the rendered HTML.
func (s *Session) Navigate(url string) (string, error) {
	page, err := s.newPage()
	if err != nil {
		return "", &NavigationError{URL: url, Err: err}
	}
	defer page.Close()

	if err := page.Navigate(url); err != nil {
		return "", &NavigationError{URL: url, Err: err}
	}
	if err := page.WaitLoad(); err != nil {
		return "", &NavigationError{URL: url, Err: err}
	}

	// Listing pages keep mutating after the load event while scripts render
	// the article cards. Bounded wait; reading early beats failing.
	if err := page.Timeout(s.stabilize).WaitStable(500 * time.Millisecond); err != nil {
		s.log.Debugw("page did not stabilize, reading anyway", "url", url, "error", err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", &NavigationError{URL: url, Err: err}
	}
	return html, nil
}

// newPage wraps MustPage so a crashed browser surfaces as an error instead of
// a panic.
func (s *Session) newPage() (page *rod.Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("create page: %v", r)
		}
	}()
	page = s.browser.MustPage()
	return page, nil
}

// Quit releases the browser process. Calling it again, or on a session that
// never opened, is a no-op.
func (s *Session) Quit() error {
	if s == nil || s.browser == nil {
		return nil
	}
	b := s.browser
	s.browser = nil
	return b.Close()
}
