package models

import (
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is one structured row extracted from a results table: a mapping
// from column label to cell text. Keys keep the source table's column
// order, both in iteration and in JSON output, which is why this wraps an
// ordered map instead of a plain map (encoding/json sorts map keys).
type Record struct {
	*orderedmap.OrderedMap[string, string]
}

// NewRecord creates an empty Record.
func NewRecord() Record {
	return Record{orderedmap.New[string, string]()}
}

// Keys returns the record's keys in insertion (column) order.
func (r Record) Keys() []string {
	keys := make([]string, 0, r.Len())
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// CauseListResult is the ordered set of Records scraped from one cause-list
// page, plus the query date (DD-MM-YYYY) used to produce them. Created once
// per run and written out immediately; never mutated afterward.
type CauseListResult struct {
	QueryDate string   `json:"query_date"`
	Records   []Record `json:"records"`
}

// StatusKind classifies a case-status table.
type StatusKind string

const (
	StatusPending  StatusKind = "Pending"
	StatusDisposed StatusKind = "Disposed"
	StatusUnknown  StatusKind = "Unknown"
)

// ListingDetermination says whether a case is listed for hearing relative
// to the reference date. Derived, never stored.
type ListingDetermination string

const (
	ListedToday     ListingDetermination = "ListedToday"
	ListedTomorrow  ListingDetermination = "ListedTomorrow"
	NotListedFuture ListingDetermination = "NotListedFuture"
	NotListedPast   ListingDetermination = "NotListedPast"
	ListingUnknown  ListingDetermination = "Unknown"
)

// Listed reports whether the determination means the case is on a board
// today or tomorrow. The two values collapse to one outcome in reporting.
func (d ListingDetermination) Listed() bool {
	return d == ListedToday || d == ListedTomorrow
}

// CaseStatusFields is the label/value mapping scraped from a two-column
// case-status table, plus the classification derived from it.
type CaseStatusFields struct {
	Fields map[string]string
	Status StatusKind
}

// Field returns the value for label, or fallback when absent.
func (c *CaseStatusFields) Field(label, fallback string) string {
	if v, ok := c.Fields[label]; ok && v != "" {
		return v
	}
	return fallback
}

// Listing is the outcome of interpreting the "Next Hearing Date" field.
type Listing struct {
	Determination ListingDetermination

	// RawDate is the unmodified "Next Hearing Date" cell text, empty when
	// the field is absent (commonly a disposed case).
	RawDate string

	// HearingDate is the parsed date; zero when Determination is Unknown.
	HearingDate time.Time

	// Purpose is the "Case Stage" field reported as the purpose of listing.
	Purpose string
}
