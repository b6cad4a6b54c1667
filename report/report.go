package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aakritidhardubey/ecourts-scraper/extract"
	"github.com/aakritidhardubey/ecourts-scraper/models"
)

// SaveCauseList writes the result's Records as an indented JSON array.
// The file name is keyed by the query date plus a time-of-day suffix so
// repeated runs on the same date never clobber each other. Returns the
// path written.
func SaveCauseList(dir string, result *models.CauseListResult, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", models.NewScrapeError(models.ErrCodePersistence,
			"failed to create output directory "+dir, err)
	}

	name := fmt.Sprintf("causelist_%s_%s.json",
		strings.ReplaceAll(result.QueryDate, "-", "_"),
		now.Format("150405"),
	)
	savePath := filepath.Join(dir, name)

	data, err := json.MarshalIndent(result.Records, "", "  ")
	if err != nil {
		return "", models.NewScrapeError(models.ErrCodePersistence,
			"failed to encode cause list", err)
	}
	if err := os.WriteFile(savePath, data, 0o644); err != nil {
		return "", models.NewScrapeError(models.ErrCodePersistence,
			"failed to write "+savePath, err)
	}
	return savePath, nil
}

// SaveOrderPDF writes a downloaded final-order PDF under dir.
func SaveOrderPDF(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", models.NewScrapeError(models.ErrCodePersistence,
			"failed to create output directory "+dir, err)
	}
	savePath := filepath.Join(dir, filepath.Base(name))
	if err := os.WriteFile(savePath, data, 0o644); err != nil {
		return "", models.NewScrapeError(models.ErrCodePersistence,
			"failed to write "+savePath, err)
	}
	return savePath, nil
}

// PrintCaseStatus renders the scraped case details and the listing
// determination to the console. ListedToday and ListedTomorrow collapse
// into one "case is listed" banner.
func PrintCaseStatus(fields *models.CaseStatusFields, listing models.Listing) {
	fmt.Println("\n--- Case Details ---")

	switch fields.Status {
	case models.StatusPending:
		fmt.Println("Status: Pending")
		fmt.Printf("Case Stage: %s\n", fields.Field(extract.FieldCaseStage, "N/A"))
		fmt.Printf("Court / Judge: %s\n", fields.Field(extract.FieldCourtAndJudge, "N/A"))
	case models.StatusDisposed:
		fmt.Printf("Status: %s\n", fields.Field(extract.FieldCaseStatus, string(models.StatusDisposed)))
		fmt.Printf("Decision Date: %s\n", fields.Field(extract.FieldDecisionDate, "N/A"))
	default:
		fmt.Println("Status: Unknown (layout may have changed)")
	}
	fmt.Println("---------------------")

	switch {
	case listing.Determination.Listed():
		fmt.Println("\nCASE IS LISTED!")
		fmt.Printf("Listing Date: %s\n", listing.RawDate)
		fmt.Printf("Purpose: %s\n", listing.Purpose)
	case listing.Determination == models.NotListedFuture:
		fmt.Println("\nThe case is not listed for a hearing today or tomorrow.")
		fmt.Printf("Next scheduled hearing: %s\n", listing.RawDate)
	case listing.Determination == models.NotListedPast:
		fmt.Println("\nThe case is not listed for a hearing today or tomorrow (past date).")
	case listing.RawDate != "":
		fmt.Printf("\nCould not interpret the hearing date: %s\n", listing.RawDate)
	default:
		fmt.Println("\nNo 'Next Hearing Date' found (likely disposed).")
	}
}

// PrintCauseListSummary reports where the cause list landed.
func PrintCauseListSummary(result *models.CauseListResult, savedPath string) {
	fmt.Printf("\nScraped %d cases from the cause list for %s.\n",
		len(result.Records), result.QueryDate)
	fmt.Printf("Saved to: %s\n", savedPath)
}
