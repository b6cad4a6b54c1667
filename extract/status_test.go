package extract

import (
	"errors"
	"testing"
	"time"

	"github.com/aakritidhardubey/ecourts-scraper/models"
)

const pendingStatusMarkup = `<table class="case_status_table">
	<tr><td>Case Type</td><td>Civil Suit</td></tr>
	<tr><td>Case Stage</td><td>Evidence</td></tr>
	<tr><td>Case Stage</td><td>Arguments</td></tr>
	<tr><td>Court Number and Judge</td><td>3 - Shri X</td></tr>
	<tr><td>Next Hearing Date</td><td>15th November 2025</td></tr>
	<tr><td>only one cell</td></tr>
</table>`

func statusFields(t *testing.T, markup string) *models.CaseStatusFields {
	t.Helper()
	return InterpretStatus(firstTable(t, markup))
}

func TestInterpretStatus_Pending(t *testing.T) {
	fields := statusFields(t, pendingStatusMarkup)

	if fields.Status != models.StatusPending {
		t.Errorf("status = %s, want %s", fields.Status, models.StatusPending)
	}
	// Later duplicate labels overwrite earlier ones.
	if got := fields.Fields[FieldCaseStage]; got != "Arguments" {
		t.Errorf("Case Stage = %q, want %q", got, "Arguments")
	}
	// Rows with fewer than two cells are skipped, not errors.
	if _, ok := fields.Fields["only one cell"]; ok {
		t.Error("single-cell row should have been skipped")
	}
}

func TestInterpretStatus_Disposed(t *testing.T) {
	const markup = `<table class="case_status_table">
		<tr><td>Case Status</td><td>Disposed</td></tr>
		<tr><td>Decision Date</td><td>01 January 2020</td></tr>
	</table>`

	fields := statusFields(t, markup)
	if fields.Status != models.StatusDisposed {
		t.Errorf("status = %s, want %s", fields.Status, models.StatusDisposed)
	}

	listing, err := DetermineListing(fields, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("DetermineListing: %v", err)
	}
	if listing.Determination != models.ListingUnknown {
		t.Errorf("determination = %s, want %s", listing.Determination, models.ListingUnknown)
	}
}

func TestInterpretStatus_UnknownLayout(t *testing.T) {
	const markup = `<table><tr><td>Some Label</td><td>Some Value</td></tr></table>`
	if got := statusFields(t, markup).Status; got != models.StatusUnknown {
		t.Errorf("status = %s, want %s", got, models.StatusUnknown)
	}
}

func TestParseHearingDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "15th November 2025", want: time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)},
		{in: "1st March 2025", want: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{in: "22nd June 2025", want: time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC)},
		{in: "3rd August 2025", want: time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC)},
		{in: "10 March 2025", want: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{in: "32nd Rainuary 2025", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseHearingDate(tt.in)
		if tt.wantErr {
			var se *models.ScrapeError
			if !errors.As(err, &se) || se.Code != models.ErrCodeMalformedDate {
				t.Errorf("ParseHearingDate(%q) error = %v, want code %s",
					tt.in, err, models.ErrCodeMalformedDate)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHearingDate(%q): %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseHearingDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDetermineListing(t *testing.T) {
	today := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		hearing string
		want    models.ListingDetermination
	}{
		{"today", "10 March 2025", models.ListedToday},
		{"tomorrow", "11 March 2025", models.ListedTomorrow},
		{"future", "01 January 2026", models.NotListedFuture},
		{"past", "01 January 2020", models.NotListedPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := &models.CaseStatusFields{
				Status: models.StatusPending,
				Fields: map[string]string{
					FieldNextHearingDate: tt.hearing,
					FieldCaseStage:       "Evidence",
				},
			}
			listing, err := DetermineListing(fields, today)
			if err != nil {
				t.Fatalf("DetermineListing: %v", err)
			}
			if listing.Determination != tt.want {
				t.Errorf("determination = %s, want %s", listing.Determination, tt.want)
			}
			if listing.RawDate != tt.hearing {
				t.Errorf("raw date = %q, want %q", listing.RawDate, tt.hearing)
			}
			if listing.Purpose != "Evidence" {
				t.Errorf("purpose = %q, want %q", listing.Purpose, "Evidence")
			}
		})
	}
}

func TestDetermineListing_MalformedDateRecovered(t *testing.T) {
	fields := &models.CaseStatusFields{
		Status: models.StatusPending,
		Fields: map[string]string{FieldNextHearingDate: "32nd Rainuary 2025"},
	}

	listing, err := DetermineListing(fields, time.Now())
	var se *models.ScrapeError
	if !errors.As(err, &se) || se.Code != models.ErrCodeMalformedDate {
		t.Errorf("error = %v, want code %s", err, models.ErrCodeMalformedDate)
	}
	// The determination degrades to Unknown; the raw date survives for
	// reporting, and nothing panics.
	if listing.Determination != models.ListingUnknown {
		t.Errorf("determination = %s, want %s", listing.Determination, models.ListingUnknown)
	}
	if listing.RawDate != "32nd Rainuary 2025" {
		t.Errorf("raw date = %q", listing.RawDate)
	}
}

func TestDetermineListing_BothListedValuesCollapse(t *testing.T) {
	if !models.ListedToday.Listed() || !models.ListedTomorrow.Listed() {
		t.Error("ListedToday and ListedTomorrow must both report as listed")
	}
	if models.NotListedFuture.Listed() || models.NotListedPast.Listed() || models.ListingUnknown.Listed() {
		t.Error("non-listed determinations must not report as listed")
	}
}
