package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-rod/rod/lib/proto"
)

// SearchCaseStatus runs the interactive CNR lookup: open the portal, fill
// the CNR field, let the operator solve the CAPTCHA and submit, then wait
// for the case-status table and return the page markup.
//
// statusTableClass is the CSS class marker that identifies the loaded
// status table (first entry of the locator config).
func (s *Session) SearchCaseStatus(ctx context.Context, cnr, statusTableClass string) (string, error) {
	if err := s.Navigate(ctx, ""); err != nil {
		return "", err
	}

	slog.Info("navigating to CNR search", "cnr", cnr)
	field, err := s.WaitForElement(ctx, "#cino", s.wait.Element)
	if err != nil {
		return "", err
	}
	if clickErr := field.Click(proto.InputMouseButtonLeft, 1); clickErr != nil {
		return "", categorizeError(clickErr, "failed to focus the CNR field")
	}
	if inputErr := field.Input(cnr); inputErr != nil {
		return "", categorizeError(inputErr, "failed to enter the CNR number")
	}

	printStatusInstructions()

	selector := fmt.Sprintf("#history_cnr table.%s", statusTableClass)
	if _, waitErr := s.WaitForElement(ctx, selector, s.wait.Interactive); waitErr != nil {
		return "", waitErr
	}
	slog.Info("case details loaded")

	return s.CurrentPageMarkup()
}

func printStatusInstructions() {
	banner := strings.Repeat("!", 60)
	fmt.Println("\n" + banner)
	fmt.Println("ACTION REQUIRED: Please solve the CAPTCHA and click 'Search'.")
	fmt.Println("The scraper will wait for the results to load.")
	fmt.Println(banner + "\n")
}
