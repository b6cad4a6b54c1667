package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aakritidhardubey/ecourts-scraper/models"
)

// ExtractRecords converts a located table into an ordered sequence of
// Records, one per data row, in source order.
//
// Header inference is a chain of fallbacks, tried top to bottom:
//
//  1. th cells, trimmed.
//  2. No th cells: the first row's data cells become the headers and that
//     row is excluded from the data rows.
//  3. The first row cannot serve either (no row would remain as data):
//     synthetic positional labels Column_1..Column_N sized to the widest
//     row, and every row is data.
//
// Rows with zero data cells are separators, not data. Cells are zipped
// with headers positionally: extra cells are dropped, and a short row
// simply yields a Record missing the trailing keys. Cell values are
// whitespace-trimmed and otherwise left as text.
func ExtractRecords(table *goquery.Selection) []models.Record {
	headers := table.Find("th").Map(func(_ int, th *goquery.Selection) string {
		return strings.TrimSpace(th.Text())
	})

	// Collect the cell text of every row that has at least one data cell.
	var dataRows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td").Map(func(_ int, td *goquery.Selection) string {
			return strings.TrimSpace(td.Text())
		})
		if len(cells) > 0 {
			dataRows = append(dataRows, cells)
		}
	})

	if len(headers) == 0 {
		if len(dataRows) > 1 {
			// First row serves as headers. This can produce a single
			// degenerate Record keyed by the first row's values when the
			// table is headerless data; kept as-is, see the extractor
			// tests pinning this shape.
			headers = dataRows[0]
			dataRows = dataRows[1:]
		} else {
			headers = syntheticHeaders(dataRows)
		}
	}

	records := make([]models.Record, 0, len(dataRows))
	for _, cells := range dataRows {
		rec := models.NewRecord()
		for i, cell := range cells {
			if i >= len(headers) {
				break
			}
			rec.Set(headers[i], cell)
		}
		records = append(records, rec)
	}
	return records
}

// syntheticHeaders builds positional labels Column_1..Column_N sized to
// the widest row.
func syntheticHeaders(rows [][]string) []string {
	width := 0
	for _, cells := range rows {
		if len(cells) > width {
			width = len(cells)
		}
	}
	headers := make([]string, width)
	for i := range headers {
		headers[i] = fmt.Sprintf("Column_%d", i+1)
	}
	return headers
}
