package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aakritidhardubey/ecourts-scraper/models"
	"github.com/andybalholm/cascadia"
)

// ParseDocument parses raw page markup into a queryable document. Frame
// indirection is the retriever's problem: callers that scrape a page with
// a results iframe pass the frame's own markup here.
func ParseDocument(rawHTML string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeInvalidInput,
			"failed to parse page markup", err)
	}
	return doc, nil
}

// LocateTable returns the single table judged most likely to contain the
// result set, or a NO_TABLE_FOUND error when the document has none.
//
// Selection order:
//  1. A table carrying one of the known class markers wins outright.
//  2. Otherwise the table with the most rows wins; ties go to the table
//     encountered first in document order. The portal's layout is not
//     stable across views, so this is a documented approximation, not an
//     invariant — prefer adding a marker class when the view exposes one.
func LocateTable(doc *goquery.Document, markerClasses []string) (*goquery.Selection, error) {
	for _, class := range markerClasses {
		sel, err := cascadia.Compile("table." + class)
		if err != nil {
			// A bad marker from config must not mask the heuristic path.
			continue
		}
		if marked := doc.FindMatcher(sel); marked.Length() > 0 {
			return marked.First(), nil
		}
	}

	tables := doc.Find("table")
	if tables.Length() == 0 {
		return nil, models.NewScrapeError(models.ErrCodeNoTableFound,
			"no candidate tables in document", nil)
	}
	if tables.Length() == 1 {
		return tables.First(), nil
	}

	// Biggest table wins.
	var best *goquery.Selection
	bestRows := -1
	tables.Each(func(_ int, t *goquery.Selection) {
		rows := t.Find("tr").Length()
		if rows > bestRows {
			best = t
			bestRows = rows
		}
	})
	return best, nil
}
