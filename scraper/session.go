package scraper

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/aakritidhardubey/ecourts-scraper/config"
	"github.com/aakritidhardubey/ecourts-scraper/models"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// Session owns one visible browser and the single page the operator works
// in. It is owned exclusively by the run that created it and is never
// accessed concurrently; every flow must end in Close so a timed-out wait
// cannot leak a Chrome process.
type Session struct {
	browser *rod.Browser
	page    *rod.Page
	baseURL string
	wait    config.WaitConfig
	fetcher *httpFetcher
}

// NewSession launches the browser and opens the working page. The browser
// is headful by default: the operator has to see the portal to solve the
// CAPTCHA and fill the forms.
func NewSession(cfg *config.Config) (*Session, error) {
	l := launcher.New().
		Headless(cfg.Browser.Headless).
		NoSandbox(cfg.Browser.NoSandbox)

	if cfg.Browser.BrowserBin != "" {
		l = l.Bin(cfg.Browser.BrowserBin)
	}
	if cfg.Browser.Proxy != "" {
		l = l.Proxy(cfg.Browser.Proxy)
	}

	// The portal fingerprints automation; keep the obvious tells off even
	// though a human drives the session.
	l.Set(flags.Flag("disable-blink-features"), "AutomationControlled")
	l.Delete(flags.Flag("enable-automation"))
	l.Set(flags.Flag("disable-popup-blocking"))
	l.Set(flags.Flag("disable-component-update"))
	l.Set(flags.Flag("disable-default-apps"))
	l.Set(flags.Flag("no-first-run"))

	controlURL, err := l.Launch()
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeBrowserCrash,
			"failed to launch browser", err)
	}
	slog.Info("browser launched", "controlURL", controlURL)

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, models.NewScrapeError(models.ErrCodeBrowserCrash,
			"failed to connect to browser", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		browser.MustClose()
		return nil, models.NewScrapeError(models.ErrCodeBrowserCrash,
			"failed to open page", err)
	}

	if cfg.Browser.Stealth {
		if _, evalErr := page.EvalOnNewDocument(stealth.JS); evalErr != nil {
			slog.Warn("stealth injection failed, proceeding without stealth",
				"error", evalErr)
		}
	}

	return &Session{
		browser: browser,
		page:    page,
		baseURL: cfg.BaseURL,
		wait:    cfg.Wait,
		fetcher: newHTTPFetcher(cfg.Browser.Proxy),
	}, nil
}

// Close kills the browser process. Safe to call on every exit path.
func (s *Session) Close() {
	slog.Info("closing browser")
	s.browser.MustClose()
}

// Navigate loads path relative to the portal base URL and waits for the
// initial document.
func (s *Session) Navigate(ctx context.Context, path string) error {
	target := s.baseURL + path
	p := s.page.Context(ctx)
	if err := p.Navigate(target); err != nil {
		return categorizeError(err, "navigation to "+target+" failed")
	}
	if err := p.WaitLoad(); err != nil {
		return categorizeError(err, "page load for "+target+" did not finish")
	}
	return nil
}

// CurrentPageMarkup returns the raw markup of the working page's top-level
// document.
func (s *Session) CurrentPageMarkup() (string, error) {
	html, err := s.page.HTML()
	if err != nil {
		return "", categorizeError(err, "failed to extract page HTML")
	}
	return html, nil
}

// WaitForElement blocks until an element matching selector exists, bounded
// by timeout. A deadline maps to RETRIEVAL_TIMEOUT so callers can tell
// "operator ran out of time" apart from "element genuinely absent".
func (s *Session) WaitForElement(ctx context.Context, selector string, timeout time.Duration) (*rod.Element, error) {
	p := s.page.Context(ctx).Timeout(timeout)
	el, err := p.Element(selector)
	if err != nil {
		return nil, categorizeError(err, "waiting for "+selector)
	}
	return el, nil
}

// WaitForFrame blocks until the page contains an iframe, resolves into it,
// and returns the frame's document handle. The cause-list results render
// inside one level of frame indirection.
func (s *Session) WaitForFrame(ctx context.Context, timeout time.Duration) (*rod.Page, error) {
	p := s.page.Context(ctx).Timeout(timeout)
	el, err := p.Element("iframe")
	if err != nil {
		return nil, categorizeError(err, "waiting for results iframe")
	}
	frame, err := el.Frame()
	if err != nil {
		return nil, categorizeError(err, "resolving into results iframe")
	}
	return frame, nil
}

// Cookies returns the session's cookies so the PDF download can reuse the
// CAPTCHA-authenticated state outside the browser.
func (s *Session) Cookies() ([]*proto.NetworkCookie, error) {
	cookies, err := s.page.Cookies(nil)
	if err != nil {
		return nil, categorizeError(err, "failed to read session cookies")
	}
	return cookies, nil
}

// CurrentURL returns the working page's current address (used as Referer
// on the PDF download). Best effort: empty on error.
func (s *Session) CurrentURL() string {
	info, err := s.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

// portalOrigin derives scheme://host from the configured base URL, for
// resolving the relative PDF paths embedded in onclick handlers.
func (s *Session) portalOrigin() string {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// categorizeError wraps raw errors into typed ScrapeErrors. Deadline and
// cancellation map to RETRIEVAL_TIMEOUT; the interactive steps are the
// only place this program spends real time.
func categorizeError(err error, msg string) *models.ScrapeError {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return models.NewScrapeError(models.ErrCodeRetrievalTimeout, msg, err)
	case errors.Is(err, context.Canceled):
		return models.NewScrapeError(models.ErrCodeRetrievalTimeout, msg+" (canceled)", err)
	default:
		return models.NewScrapeError(models.ErrCodeNavigation, msg, err)
	}
}
