package scraper

import (
	"testing"

	"github.com/aakritidhardubey/ecourts-scraper/extract"
)

func TestOrderLink_AnchoredByHeading(t *testing.T) {
	const markup = `
		<h3>Other Orders</h3>
		<table class="order_table"><tr><td><a onclick="displayPdf('x?filename=decoy.pdf&c=1')">view</a></td></tr></table>
		<h3>Final Orders / Judgements</h3>
		<table class="order_table"><tr><td>
			<a onclick="displayPdf('reports/display_pdf.php?filename=/orders/2024/final_123.pdf&caseno=9')">view</a>
		</td></tr></table>`

	doc, err := extract.ParseDocument(markup)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	link := orderLink(doc)
	if link == nil {
		t.Fatal("order link not found")
	}

	onclick, _ := link.Attr("onclick")
	m := reOrderFilename.FindStringSubmatch(onclick)
	if m == nil {
		t.Fatalf("no filename in onclick %q", onclick)
	}
	if m[1] != "/orders/2024/final_123.pdf" {
		t.Errorf("filename = %q, want %q", m[1], "/orders/2024/final_123.pdf")
	}
}

func TestOrderLink_FallbackWithoutHeading(t *testing.T) {
	const markup = `<table class="order_table"><tr><td>
		<a onclick="displayPdf('x?filename=/orders/solo.pdf')">view</a>
	</td></tr></table>`

	doc, err := extract.ParseDocument(markup)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	link := orderLink(doc)
	if link == nil {
		t.Fatal("order link not found")
	}
	onclick, _ := link.Attr("onclick")
	if m := reOrderFilename.FindStringSubmatch(onclick); m == nil || m[1] != "/orders/solo.pdf" {
		t.Errorf("filename match = %v", m)
	}
}

func TestOrderLink_None(t *testing.T) {
	doc, err := extract.ParseDocument(`<p>Final Orders / Judgements</p><p>none on record</p>`)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if link := orderLink(doc); link != nil {
		t.Error("expected no link on a page without an order table")
	}
}
