package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aakritidhardubey/ecourts-scraper/config"
	"github.com/aakritidhardubey/ecourts-scraper/extract"
	"github.com/aakritidhardubey/ecourts-scraper/models"
)

const causeListPath = "?p=cause_list/index"

// DownloadCauseList runs the interactive cause-list flow: open the portal,
// let the operator fill the court form and solve the CAPTCHA, wait for the
// results to render inside the iframe, then scrape them into Records.
//
// queryDate is the DD-MM-YYYY date the operator is asked to select; it is
// echoed into the result, not submitted programmatically.
func (s *Session) DownloadCauseList(ctx context.Context, court *config.CourtConfig, queryDate string, loc config.LocatorConfig) (*models.CauseListResult, error) {
	if err := s.Navigate(ctx, causeListPath); err != nil {
		return nil, err
	}

	printCauseListInstructions(court, queryDate)

	// The results live inside an iframe that only appears once the
	// operator has submitted the form. Waiting for the frame IS the
	// human-in-the-loop wait.
	markup, err := s.resultsMarkup(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := extract.ParseDocument(markup)
	if err != nil {
		return nil, err
	}
	table, err := extract.LocateTable(doc, loc.StatusTableClasses)
	if err != nil {
		return nil, err
	}
	records := extract.ExtractRecords(table)
	slog.Info("cause list scraped", "date", queryDate, "cases", len(records))

	return &models.CauseListResult{
		QueryDate: queryDate,
		Records:   records,
	}, nil
}

// resultsMarkup waits for the results iframe and returns its markup. On a
// frame-wait timeout it falls back to the top-level document explicitly:
// some court views render the table without the frame indirection.
func (s *Session) resultsMarkup(ctx context.Context) (string, error) {
	frame, err := s.WaitForFrame(ctx, s.wait.Interactive)
	if err != nil {
		slog.Warn("results iframe did not appear, searching top-level document",
			"error", err)
		return s.CurrentPageMarkup()
	}
	slog.Info("switched focus into the results iframe")

	// Any table row is a reliable sign the results have rendered.
	if _, rowErr := frame.Timeout(s.wait.Results).Element("table tr"); rowErr != nil {
		return "", categorizeError(rowErr, "waiting for rows in the results iframe")
	}

	html, htmlErr := frame.HTML()
	if htmlErr != nil {
		return "", categorizeError(htmlErr, "failed to extract iframe HTML")
	}
	return html, nil
}

func printCauseListInstructions(court *config.CourtConfig, queryDate string) {
	banner := strings.Repeat("!", 60)
	fmt.Println("\n" + banner)
	fmt.Println("ACTION REQUIRED: The browser has opened.")
	fmt.Println("1. Select your State, District, Court Complex, and Establishment.")
	if court != nil {
		fmt.Printf("   (configured codes: state=%s district=%s court=%s)\n",
			court.StateCode, court.DistCode, court.CourtCode)
	}
	fmt.Printf("2. Select %s from the calendar.\n", queryDate)
	fmt.Println("3. Solve the CAPTCHA.")
	fmt.Println("4. Click the 'Civil' or 'Criminal' button to view the list.")
	fmt.Println("The scraper now waits for the results to load inside the iframe.")
	fmt.Println(banner + "\n")
}
