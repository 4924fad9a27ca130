package sink

import (
	"bytes"
	"html/template"
	"strings"

	bserr "github.com/matzehuels/bookshelf/pkg/errors"
	"github.com/matzehuels/bookshelf/pkg/shelf"
)

const shelfTemplate = `<div class="bookshelf">
{{- range .Rows}}
  <div class="shelf">
  {{- range .}}
    <div class="{{.Class}}" title="{{.Title}}{{if .Author}} by {{.Author}}{{end}}"{{with .Style}} style="{{.}}"{{end}}>
      <span class="book-title">{{.Title}}</span>
      {{- if .Author}}
      <span class="book-author">{{.Author}}</span>
      {{- end}}
    </div>
  {{- end}}
  </div>
{{- end}}
</div>
`

var shelfTmpl = template.Must(template.New("shelf").Parse(shelfTemplate))

// HTMLOption configures HTML rendering via [RenderHTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	coverColors bool
}

// WithCoverColors sets each book's extracted cover colour as the
// --cover-color custom property so the stylesheet can use it.
func WithCoverColors() HTMLOption { return func(r *htmlRenderer) { r.coverColors = true } }

type htmlBook struct {
	Class  string
	Title  string
	Author string
	Style  template.CSS
}

// RenderHTML emits the bookshelf include markup for a plan: one shelf
// element per row and one book element per record, classed "book", its
// colour class and, when tilted, "book-tilted". Text is HTML-escaped.
func RenderHTML(records []shelf.Record, opts ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var rows [][]htmlBook
	for _, row := range shelf.Rows(records) {
		books := make([]htmlBook, 0, len(row))
		for _, rec := range row {
			books = append(books, r.book(rec))
		}
		rows = append(rows, books)
	}

	var buf bytes.Buffer
	if err := shelfTmpl.Execute(&buf, struct{ Rows [][]htmlBook }{rows}); err != nil {
		return nil, bserr.Wrap(bserr.ErrCodeInternal, err, "render html")
	}
	return buf.Bytes(), nil
}

// BookClass returns the class attribute for a record.
func BookClass(rec shelf.Record) string {
	classes := []string{"book", rec.Color.Class()}
	if rec.Tilted {
		classes = append(classes, "book-tilted")
	}
	return strings.Join(classes, " ")
}

func (r htmlRenderer) book(rec shelf.Record) htmlBook {
	b := htmlBook{
		Class:  BookClass(rec),
		Title:  rec.Book.Title,
		Author: rec.Book.Author,
	}
	if r.coverColors && rec.Book.CoverColor != "" && bserr.ValidateHexColor(rec.Book.CoverColor) == nil {
		// Validated as #rrggbb above.
		b.Style = template.CSS("--cover-color: " + rec.Book.CoverColor)
	}
	return b
}
