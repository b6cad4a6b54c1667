package models

import "fmt"

// Error codes used in console reporting and internal error handling.
const (
	// ErrCodeRetrievalTimeout means the operator did not complete the
	// interactive step (CAPTCHA, form navigation) before the bounded
	// wait expired.
	ErrCodeRetrievalTimeout = "RETRIEVAL_TIMEOUT"

	// ErrCodeNoTableFound means the locator found zero candidate tables
	// in the retrieved page.
	ErrCodeNoTableFound = "NO_TABLE_FOUND"

	// ErrCodeMalformedDate means a date string failed every parse attempt.
	ErrCodeMalformedDate = "MALFORMED_DATE"

	// ErrCodePersistence means an output write failed.
	ErrCodePersistence = "PERSISTENCE_FAILURE"

	ErrCodeBrowserCrash = "BROWSER_CRASH"
	ErrCodeNavigation   = "NAVIGATION_FAILED"
	ErrCodeInvalidInput = "INVALID_INPUT"
)

// ScrapeError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type ScrapeError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *ScrapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// NewScrapeError creates a new ScrapeError.
func NewScrapeError(code, message string, err error) *ScrapeError {
	return &ScrapeError{Code: code, Message: message, Err: err}
}
