package scraper

import (
	"context"
	"log/slog"
	"path"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aakritidhardubey/ecourts-scraper/extract"
	"github.com/aakritidhardubey/ecourts-scraper/models"
)

// The order links carry the PDF path inside an onclick handler, e.g.
// onclick="displayPdf('reports/display_pdf.php?filename=xyz.pdf&caseno=1')".
var reOrderFilename = regexp.MustCompile(`filename=([^&']+)`)

const orderSectionHeading = "final orders / judgements"

// DownloadFinalOrder probes the loaded case-status page for a
// "Final Orders / Judgements" section and fetches the first order PDF
// using the browser session's cookies (the portal serves order PDFs only
// to the CAPTCHA-authenticated session). Returns the suggested file name
// and the PDF bytes; the caller persists them.
func (s *Session) DownloadFinalOrder(ctx context.Context) (string, []byte, error) {
	// The section is optional; bound the probe tightly so a disposed case
	// without orders fails fast.
	if _, err := s.WaitForElement(ctx, "table.order_table", s.wait.OrderSection); err != nil {
		return "", nil, models.NewScrapeError(models.ErrCodeNoTableFound,
			"no 'Final Orders / Judgements' section on this page", err)
	}

	markup, err := s.CurrentPageMarkup()
	if err != nil {
		return "", nil, err
	}
	doc, err := extract.ParseDocument(markup)
	if err != nil {
		return "", nil, err
	}

	link := orderLink(doc)
	if link == nil {
		return "", nil, models.NewScrapeError(models.ErrCodeNoTableFound,
			"order table present but carries no links", nil)
	}

	onclick, _ := link.Attr("onclick")
	m := reOrderFilename.FindStringSubmatch(onclick)
	if m == nil {
		return "", nil, models.NewScrapeError(models.ErrCodeInvalidInput,
			"could not extract a PDF path from the order link", nil)
	}
	pdfPath := m[1]
	pdfURL := s.portalOrigin() + pdfPath
	slog.Info("final order PDF link found", "url", pdfURL)

	cookies, err := s.Cookies()
	if err != nil {
		return "", nil, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.wait.PDFDownload)
	defer cancel()

	data, err := s.fetcher.fetch(fetchCtx, pdfURL, s.CurrentURL(), cookies)
	if err != nil {
		return "", nil, categorizeError(err, "final order PDF download failed")
	}
	return path.Base(pdfPath), data, nil
}

// orderLink finds the first link inside the order table that follows the
// "Final Orders / Judgements" heading. When no heading anchors the lookup
// (layouts vary), any order_table link on the page serves.
func orderLink(doc *goquery.Document) *goquery.Selection {
	var link *goquery.Selection
	doc.Find("*").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(sel.Text()), orderSectionHeading) {
			return true
		}
		if a := sel.NextAllFiltered("table.order_table").Find("a").First(); a.Length() > 0 {
			link = a
			return false
		}
		return true
	})
	if link != nil {
		return link
	}
	if a := doc.Find("table.order_table a").First(); a.Length() > 0 {
		return a
	}
	return nil
}
