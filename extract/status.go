package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/aakritidhardubey/ecourts-scraper/models"
	"github.com/araddon/dateparse"
)

// Field labels the portal uses in its case-status table.
const (
	FieldNextHearingDate = "Next Hearing Date"
	FieldDecisionDate    = "Decision Date"
	FieldCaseStage       = "Case Stage"
	FieldCaseStatus      = "Case Status"
	FieldCourtAndJudge   = "Court Number and Judge"
)

// hearingDateLayout matches the portal's free-text hearing dates once the
// ordinal suffixes are stripped, e.g. "15 November 2025".
const hearingDateLayout = "2 January 2006"

// ordinalSuffix matches an ordinal day token like 15th or 2nd. Suffixes
// are only stripped off numeric tokens so month names stay intact
// ("August" keeps its "st").
var ordinalSuffix = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)\b`)

// InterpretStatus builds CaseStatusFields from a two-column label/value
// table. Rows with fewer than two data cells are skipped; a label seen
// twice keeps its later value.
func InterpretStatus(table *goquery.Selection) *models.CaseStatusFields {
	fields := make(map[string]string)
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 2 {
			return
		}
		label := strings.TrimSpace(cells.Eq(0).Text())
		value := strings.TrimSpace(cells.Eq(1).Text())
		fields[label] = value
	})

	return &models.CaseStatusFields{
		Fields: fields,
		Status: classify(fields),
	}
}

// classify keys off field presence: a pending case carries a next hearing
// date, a disposed one a decision date. Anything else means the portal's
// layout drifted.
func classify(fields map[string]string) models.StatusKind {
	if _, ok := fields[FieldNextHearingDate]; ok {
		return models.StatusPending
	}
	if _, ok := fields[FieldDecisionDate]; ok {
		return models.StatusDisposed
	}
	return models.StatusUnknown
}

// ParseHearingDate parses a free-text hearing date such as
// "15th November 2025". Ordinal suffixes are stripped from day tokens
// first; the exact day-month-year layout is tried, then dateparse as a
// second chance against layout drift.
func ParseHearingDate(raw string) (time.Time, error) {
	cleaned := strings.TrimSpace(ordinalSuffix.ReplaceAllString(raw, "$1"))

	if d, err := time.Parse(hearingDateLayout, cleaned); err == nil {
		return d, nil
	}
	if d, err := dateparse.ParseAny(cleaned); err == nil {
		return d, nil
	}
	return time.Time{}, models.NewScrapeError(models.ErrCodeMalformedDate,
		"unparseable hearing date "+strconv.Quote(raw), nil)
}

// DetermineListing interprets the "Next Hearing Date" field against the
// reference date. A missing or empty field yields Unknown (commonly a
// disposed case). A malformed date also yields Unknown, with the parse
// error returned for reporting — the caller logs it and continues.
func DetermineListing(fields *models.CaseStatusFields, today time.Time) (models.Listing, error) {
	listing := models.Listing{
		Determination: models.ListingUnknown,
		Purpose:       fields.Field(FieldCaseStage, "N/A"),
	}

	raw, ok := fields.Fields[FieldNextHearingDate]
	if !ok || raw == "" {
		return listing, nil
	}
	listing.RawDate = raw

	hearing, err := ParseHearingDate(raw)
	if err != nil {
		return listing, err
	}

	listing.HearingDate = hearing
	d := dateOnly(hearing)
	ref := dateOnly(today)
	tomorrow := ref.AddDate(0, 0, 1)

	switch {
	case d.Equal(ref):
		listing.Determination = models.ListedToday
	case d.Equal(tomorrow):
		listing.Determination = models.ListedTomorrow
	case d.After(tomorrow):
		listing.Determination = models.NotListedFuture
	default:
		listing.Determination = models.NotListedPast
	}
	return listing, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
