package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the eCourts services portal root.
const DefaultBaseURL = "https://services.ecourts.gov.in/ecourtindia_v6/"

// Config holds all application configuration.
type Config struct {
	BaseURL string
	Browser BrowserConfig
	Wait    WaitConfig
	Locator LocatorConfig
	Output  OutputConfig
	Log     LogConfig
}

// BrowserConfig controls the Rod browser instance.
type BrowserConfig struct {
	// Headless is false by default: the operator must see the page to
	// solve the CAPTCHA and drive the forms.
	Headless bool

	// NoSandbox disables Chrome's sandbox (needed in Docker).
	NoSandbox bool

	// BrowserBin overrides the Chromium binary path.
	BrowserBin string

	// Proxy is an optional proxy URL for the browser and PDF download.
	Proxy string

	// Stealth injects anti-bot-detection evasions before navigation.
	// Off by default; the portal expects a human at the keyboard anyway.
	Stealth bool
}

// WaitConfig bounds the human-in-the-loop and page-load waits.
type WaitConfig struct {
	// Interactive is the deadline for the operator to finish the form
	// and CAPTCHA before results appear.
	Interactive time.Duration // default: 5m

	// Results is the deadline for the result table to render once the
	// interactive step is done (e.g. rows inside the cause-list iframe).
	Results time.Duration // default: 60s

	// Element is the deadline for ordinary element lookups.
	Element time.Duration // default: 30s

	// OrderSection is the deadline when probing for the optional
	// "Final Orders / Judgements" section.
	OrderSection time.Duration // default: 10s

	// PDFDownload is the deadline for fetching a final-order PDF.
	PDFDownload time.Duration // default: 30s
}

// LocatorConfig controls result-table selection.
type LocatorConfig struct {
	// StatusTableClasses are CSS class markers that identify the case
	// status table directly, bypassing the biggest-table heuristic.
	StatusTableClasses []string // default: ["case_status_table"]
}

// OutputConfig controls where scraped artifacts are written.
type OutputConfig struct {
	CauseListDir string // default: "cause_lists"
	OrdersDir    string // default: "case_orders"
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "text"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		BaseURL: envOr("ECOURTS_BASE_URL", DefaultBaseURL),
		Browser: BrowserConfig{
			Headless:   envBoolOr("ECOURTS_HEADLESS", false),
			NoSandbox:  envBoolOr("ECOURTS_NO_SANDBOX", false),
			BrowserBin: os.Getenv("ECOURTS_BROWSER_BIN"),
			Proxy:      os.Getenv("ECOURTS_PROXY"),
			Stealth:    envBoolOr("ECOURTS_STEALTH", false),
		},
		Wait: WaitConfig{
			Interactive:  envDurationOr("ECOURTS_INTERACTIVE_TIMEOUT", 5*time.Minute),
			Results:      envDurationOr("ECOURTS_RESULTS_TIMEOUT", 60*time.Second),
			Element:      envDurationOr("ECOURTS_ELEMENT_TIMEOUT", 30*time.Second),
			OrderSection: envDurationOr("ECOURTS_ORDER_TIMEOUT", 10*time.Second),
			PDFDownload:  envDurationOr("ECOURTS_PDF_TIMEOUT", 30*time.Second),
		},
		Locator: LocatorConfig{
			StatusTableClasses: envSliceOr("ECOURTS_STATUS_TABLE_CLASSES", []string{
				"case_status_table",
			}),
		},
		Output: OutputConfig{
			CauseListDir: envOr("ECOURTS_CAUSELIST_DIR", "cause_lists"),
			OrdersDir:    envOr("ECOURTS_ORDERS_DIR", "case_orders"),
		},
		Log: LogConfig{
			Level:  envOr("ECOURTS_LOG_LEVEL", "info"),
			Format: envOr("ECOURTS_LOG_FORMAT", "text"),
		},
	}
}

// CourtConfig identifies the court whose cause list is being fetched.
// It mirrors the portal's own form fields.
type CourtConfig struct {
	StateCode string `json:"state_code"`
	DistCode  string `json:"dist_code"`
	CourtCode string `json:"court_code"`
}

// LoadCourtConfig reads the court identifiers from a JSON file
// (historically config.json next to the binary).
func LoadCourtConfig(path string) (*CourtConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read court config %s: %w", path, err)
	}
	var cc CourtConfig
	if err := json.Unmarshal(data, &cc); err != nil {
		return nil, fmt.Errorf("parse court config %s: %w", path, err)
	}
	return &cc, nil
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
