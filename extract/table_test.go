package extract

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/aakritidhardubey/ecourts-scraper/models"
)

// firstTable parses markup and returns its first table.
func firstTable(t *testing.T, markup string) *goquery.Selection {
	t.Helper()
	doc, err := ParseDocument(markup)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		t.Fatal("fixture has no table")
	}
	return table
}

func recordMap(r models.Record) map[string]string {
	m := make(map[string]string, r.Len())
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		m[pair.Key] = pair.Value
	}
	return m
}

func TestExtractRecords_HeadersFromTH(t *testing.T) {
	const markup = `<table>
		<tr><th> Sr.No </th><th>Case No</th><th>Petitioner</th></tr>
		<tr><td>1</td><td> 123/2024 </td><td>A vs B</td></tr>
		<tr><td>2</td><td>456/2024</td><td>C vs D</td></tr>
	</table>`

	records := ExtractRecords(firstTable(t, markup))
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	want := map[string]string{"Sr.No": "1", "Case No": "123/2024", "Petitioner": "A vs B"}
	if got := recordMap(records[0]); !reflect.DeepEqual(got, want) {
		t.Errorf("first record = %v, want %v", got, want)
	}

	wantKeys := []string{"Sr.No", "Case No", "Petitioner"}
	if got := records[0].Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("key order = %v, want %v", got, wantKeys)
	}
}

func TestExtractRecords_NoHeaderCells(t *testing.T) {
	// With no th cells the first data row becomes the headers. For a
	// two-row headerless table this yields exactly one Record keyed by
	// the first row's values. That shape is deliberate: it pins the
	// long-standing behavior so any fix is a visible change here.
	const markup = `<table>
		<tr><td>1</td><td>123/2024</td></tr>
		<tr><td>2</td><td>456/2024</td></tr>
	</table>`

	records := ExtractRecords(firstTable(t, markup))
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	want := map[string]string{"1": "2", "123/2024": "456/2024"}
	if got := recordMap(records[0]); !reflect.DeepEqual(got, want) {
		t.Errorf("record = %v, want %v", got, want)
	}
}

func TestExtractRecords_SyntheticHeaders(t *testing.T) {
	// One row, no header cells: the row cannot serve as headers, so
	// positional labels are synthesized and the row stays data.
	const markup = `<table>
		<tr><td>lone</td><td>row</td><td>here</td></tr>
	</table>`

	records := ExtractRecords(firstTable(t, markup))
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	want := map[string]string{"Column_1": "lone", "Column_2": "row", "Column_3": "here"}
	if got := recordMap(records[0]); !reflect.DeepEqual(got, want) {
		t.Errorf("record = %v, want %v", got, want)
	}
}

func TestExtractRecords_RowShapeTolerance(t *testing.T) {
	const markup = `<table>
		<tr><th>A</th><th>B</th></tr>
		<tr><td>1</td></tr>
		<tr></tr>
		<tr><td>2</td><td>3</td><td>dropped</td></tr>
	</table>`

	records := ExtractRecords(firstTable(t, markup))
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// Short row: trailing header simply absent.
	if got := recordMap(records[0]); !reflect.DeepEqual(got, map[string]string{"A": "1"}) {
		t.Errorf("short row record = %v", got)
	}
	// Long row: cells beyond the header count are dropped.
	if got := recordMap(records[1]); !reflect.DeepEqual(got, map[string]string{"A": "2", "B": "3"}) {
		t.Errorf("long row record = %v", got)
	}
}

func TestExtractRecords_KeyOrderInJSON(t *testing.T) {
	const markup = `<table>
		<tr><th>Zulu</th><th>Alpha</th><th>Mike</th></tr>
		<tr><td>1</td><td>2</td><td>3</td></tr>
	</table>`

	records := ExtractRecords(firstTable(t, markup))
	data, err := json.Marshal(records[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"Zulu":"1","Alpha":"2","Mike":"3"}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func TestExtractRecords_Idempotent(t *testing.T) {
	const markup = `<table>
		<tr><th>Case No</th><th>Party</th></tr>
		<tr><td>12/2024</td><td>X vs Y</td></tr>
		<tr><td>13/2024</td><td>P vs Q</td></tr>
	</table>`

	table := firstTable(t, markup)
	first, err := json.Marshal(ExtractRecords(table))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(ExtractRecords(table))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("re-extraction differs:\n%s\n%s", first, second)
	}
}
