package sink

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/bookshelf/pkg/render/layout"
	"github.com/matzehuels/bookshelf/pkg/render/styles"
	"github.com/matzehuels/bookshelf/pkg/shelf"
)

type fixedPicker int

func (p fixedPicker) IntN(int) int { return int(p) }

func records(t *testing.T, books []shelf.Book, perRow, seed int) []shelf.Record {
	t.Helper()
	recs, err := shelf.Build(books, shelf.Options{BooksPerRow: perRow, Seed: seed, Picker: fixedPicker(5)})
	if err != nil {
		t.Fatal(err)
	}
	return recs
}

var sample = []shelf.Book{
	{Title: "Dune", Author: "Frank Herbert"},
	{Title: "Solaris", Author: "Stanisław Lem", CoverColor: "#204060"},
	{Title: "Gödel, Escher & Bach", Author: "Douglas <Hofstadter>"},
	{Title: "Untitled"},
}

func TestRenderHTML(t *testing.T) {
	// perRow 3, seed 0: row 0 tilts position 1; row 1 targets position 1, past its only book.
	out, err := RenderHTML(records(t, sample, 3, 0))
	if err != nil {
		t.Fatalf("RenderHTML error: %v", err)
	}
	html := string(out)

	if n := strings.Count(html, `<div class="shelf">`); n != 2 {
		t.Errorf("got %d shelves, want 2", n)
	}
	if n := strings.Count(html, "book-tilted"); n != 1 {
		t.Errorf("got %d tilted books, want 1", n)
	}
	for _, want := range []string{
		`<div class="book book-red book-tilted" title="Solaris by Stanisław Lem">`,
		`<div class="book book-red" title="Dune by Frank Herbert">`,
		`<span class="book-title">Gödel, Escher &amp; Bach</span>`,
		`<span class="book-author">Douglas &lt;Hofstadter&gt;</span>`,
		`<div class="book book-red" title="Untitled">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in:\n%s", want, html)
		}
	}
	if strings.Contains(html, "--cover-color") {
		t.Error("cover colours should be opt-in")
	}
}

func TestRenderHTMLCoverColors(t *testing.T) {
	books := []shelf.Book{
		{Title: "A", CoverColor: "#204060"},
		{Title: "B", CoverColor: "red; background: url(x)"},
	}
	out, err := RenderHTML(records(t, books, 15, 0), WithCoverColors())
	if err != nil {
		t.Fatal(err)
	}
	html := string(out)
	if !strings.Contains(html, `style="--cover-color: #204060"`) {
		t.Errorf("missing cover colour:\n%s", html)
	}
	if strings.Count(html, "style=") != 1 {
		t.Errorf("invalid cover colour must not be emitted:\n%s", html)
	}
}

func TestRenderHTMLEmpty(t *testing.T) {
	out, err := RenderHTML(nil)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), `class="shelf"`) {
		t.Errorf("empty plan should have no shelves:\n%s", out)
	}
}

func TestBookClass(t *testing.T) {
	rec := shelf.Record{Color: shelf.ColorUmber}
	if got := BookClass(rec); got != "book book-umber" {
		t.Errorf("BookClass = %q", got)
	}
	rec.Tilted = true
	if got := BookClass(rec); got != "book book-umber book-tilted" {
		t.Errorf("BookClass(tilted) = %q", got)
	}
}

func TestRenderSVG(t *testing.T) {
	recs := records(t, sample, 3, 0)
	l := layout.Build(recs, layout.DefaultDims())
	svg := string(RenderSVG(l, WithStyle(styles.Cover{})))

	if !strings.HasPrefix(svg, "<svg ") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatalf("not an svg document:\n%s", svg)
	}
	if n := strings.Count(svg, `class="board"`); n != 2 {
		t.Errorf("got %d boards, want 2", n)
	}
	if n := strings.Count(svg, `class="spine-label"`); n != len(sample) {
		t.Errorf("got %d labels, want %d", n, len(sample))
	}
	if !strings.Contains(svg, `fill="#204060"`) {
		t.Error("cover style should use the cover colour")
	}
	if !strings.Contains(svg, `id="book-1" class="spine book-red book-tilted" transform="rotate(`) {
		t.Errorf("tilted spine not rotated:\n%s", svg)
	}

	bare := string(RenderSVG(l, WithoutLabels(), WithBackground("#fff")))
	if strings.Contains(bare, `class="spine-label"`) {
		t.Error("WithoutLabels should drop labels")
	}
	if !strings.Contains(bare, `fill="#fff"`) {
		t.Error("missing background")
	}
}

func TestRenderJSON(t *testing.T) {
	recs := records(t, sample, 3, 0)
	data, err := RenderJSON(recs, Meta{BuildID: "b1", BooksPerRow: 3, Seed: 0, Style: "palette"})
	if err != nil {
		t.Fatalf("RenderJSON error: %v", err)
	}

	var out struct {
		BuildID     string         `json:"build_id"`
		BooksPerRow int            `json:"books_per_row"`
		Books       int            `json:"books"`
		Rows        int            `json:"rows"`
		Plan        []shelf.Record `json:"plan"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal error: %v", err)
	}
	if out.BuildID != "b1" || out.BooksPerRow != 3 || out.Books != 4 || out.Rows != 2 {
		t.Errorf("unexpected header: %+v", out)
	}
	if len(out.Plan) != 4 || !out.Plan[1].Tilted || out.Plan[1].Color != shelf.ColorRed {
		t.Errorf("unexpected plan: %+v", out.Plan)
	}
	if !strings.Contains(string(data), `"color": "book-red"`) {
		t.Error("colours should be encoded as CSS classes")
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	data, err := RenderJSON(nil, Meta{BooksPerRow: 15})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"plan": []`) {
		t.Errorf("empty plan should encode as []:\n%s", data)
	}
}
