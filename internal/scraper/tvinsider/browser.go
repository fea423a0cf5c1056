package tvinsider

import (
	"errors"
	"syscall"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"go.uber.org/zap"

	"CalendarScraper/internal/scraper"
)

// session owns one automated browser instance and the single page the
// pipeline drives. It is acquired at the start of a scrape and released via
// Close on every exit path, never leaked across requests.
type session struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
}

// newSession launches the browser configured for unattended operation and
// opens a stealth page carrying the fixed user agent.
func newSession(headless bool, browserPath string) (*session, error) {
	l := launcher.New().
		Headless(headless).
		Set("ignore-certificate-errors").
		Set("disable-gpu").
		Set("no-sandbox").
		Set("disable-dev-shm-usage")
	if browserPath != "" {
		l = l.Bin(browserPath)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, classifyLaunchErr(err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, &scraper.BrowserLaunchError{Err: err}
	}

	page, err := stealth.Page(browser)
	if err != nil {
		_ = browser.Close()
		l.Cleanup()
		return nil, &scraper.BrowserLaunchError{Err: err}
	}

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: userAgent}); err != nil {
		_ = browser.Close()
		l.Cleanup()
		return nil, &scraper.BrowserLaunchError{Err: err}
	}

	return &session{launcher: l, browser: browser, page: page}, nil
}

// Close tears the session down. Safe to defer immediately after acquisition.
func (s *session) Close() {
	if err := s.browser.Close(); err != nil {
		zap.L().Warn("browser close failed", zap.Error(err))
	}
	s.launcher.Cleanup()
}

// classifyLaunchErr types the launch failure at its source. An executable
// built for the wrong architecture surfaces as ENOEXEC and gets the
// remediation-hint variant; anything else is a generic launch failure.
func classifyLaunchErr(err error) error {
	if errors.Is(err, syscall.ENOEXEC) {
		return &scraper.BrowserLaunchError{ArchMismatch: true, Err: err}
	}
	return &scraper.BrowserLaunchError{Err: err}
}
