package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	bserr "github.com/matzehuels/bookshelf/pkg/errors"
	"github.com/matzehuels/bookshelf/pkg/shelf"
)

func TestReadBooksJSON(t *testing.T) {
	input := `[
  {"title": "Dune", "author": "Frank Herbert"},
  {"title": "Solaris", "author": "Stanisław Lem", "image_url": "https://covers.example.org/s.jpg", "cover_color": "#30507c", "rating": 5}
]`
	books, err := ReadBooks(strings.NewReader(input), FormatJSON)
	if err != nil {
		t.Fatalf("ReadBooks() error = %v", err)
	}
	want := []shelf.Book{
		{Title: "Dune", Author: "Frank Herbert"},
		{Title: "Solaris", Author: "Stanisław Lem", ImageURL: "https://covers.example.org/s.jpg", CoverColor: "#30507c"},
	}
	if diff := cmp.Diff(want, books); diff != "" {
		t.Errorf("ReadBooks() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadBooksYAML(t *testing.T) {
	input := `
- title: Dune
  author: Frank Herbert
- title: Piranesi
  author: Susanna Clarke
  cover_color: "#a05030"
`
	books, err := ReadBooks(strings.NewReader(input), FormatYAML)
	if err != nil {
		t.Fatalf("ReadBooks() error = %v", err)
	}
	want := []shelf.Book{
		{Title: "Dune", Author: "Frank Herbert"},
		{Title: "Piranesi", Author: "Susanna Clarke", CoverColor: "#a05030"},
	}
	if diff := cmp.Diff(want, books); diff != "" {
		t.Errorf("ReadBooks() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadBooksEmpty(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{"json empty array", "[]", FormatJSON},
		{"yaml empty array", "[]", FormatYAML},
		{"json empty file", "  \n", FormatJSON},
		{"yaml empty document", "", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books, err := ReadBooks(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("ReadBooks() error = %v", err)
			}
			if books == nil || len(books) != 0 {
				t.Errorf("ReadBooks() = %#v, want empty slice", books)
			}
		})
	}
}

func TestReadBooksErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		code   bserr.Code
	}{
		{"json object", `{"title": "Dune"}`, FormatJSON, bserr.ErrCodeInvalidConfig},
		{"json string", `"books"`, FormatJSON, bserr.ErrCodeInvalidConfig},
		{"yaml mapping", "title: Dune\n", FormatYAML, bserr.ErrCodeInvalidConfig},
		{"json malformed", `[{"title": }]`, FormatJSON, bserr.ErrCodeInvalidInput},
		{"missing title", `[{"author": "Nobody"}]`, FormatJSON, bserr.ErrCodeInvalidInput},
		{"bad color", `[{"title": "X", "cover_color": "red"}]`, FormatJSON, bserr.ErrCodeInvalidColor},
		{"unknown format", `[]`, Format("toml"), bserr.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadBooks(strings.NewReader(tt.input), tt.format)
			if err == nil {
				t.Fatal("ReadBooks() error = nil")
			}
			if !bserr.Is(err, tt.code) {
				t.Errorf("ReadBooks() code = %q, want %q (err: %v)", bserr.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestReadBooksKeepsUnusableImageURLs(t *testing.T) {
	input := `[
  {"title": "Dune", "image_url": "https://covers.example.com/a.jpg"},
  {"title": "Solaris", "image_url": "//covers.example.com/b.jpg"},
  {"title": "Hyperion", "image_url": "ftp://covers.example.com/c.jpg"}
]`
	books, err := ReadBooks(strings.NewReader(input), FormatJSON)
	if err != nil {
		t.Fatalf("ReadBooks() error = %v", err)
	}
	if len(books) != 3 {
		t.Fatalf("got %d books, want 3", len(books))
	}
	if books[1].ImageURL != "//covers.example.com/b.jpg" {
		t.Errorf("ImageURL = %q, want it passed through", books[1].ImageURL)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"_data/books.json", FormatJSON, false},
		{"_data/books.yml", FormatYAML, false},
		{"books.YAML", FormatYAML, false},
		{"books.csv", "", true},
		{"books", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatForPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatForPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatForPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestImportBooksMissingFile(t *testing.T) {
	_, err := ImportBooks(filepath.Join(t.TempDir(), "books.json"))
	if !bserr.Is(err, bserr.ErrCodeFileNotFound) {
		t.Errorf("ImportBooks() code = %q, want %q", bserr.GetCode(err), bserr.ErrCodeFileNotFound)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	books := []shelf.Book{
		{Title: "Dune", Author: "Frank Herbert"},
		{Title: "Gödel, Escher, Bach", Author: "Douglas Hofstadter", ImageURL: "https://covers.example.org/geb.jpg?s=L&x=1", CoverColor: "#30507c"},
	}

	if err := ExportBooks(path, books); err != nil {
		t.Fatalf("ExportBooks() error = %v", err)
	}
	got, err := ImportBooks(path)
	if err != nil {
		t.Fatalf("ImportBooks() error = %v", err)
	}
	if diff := cmp.Diff(books, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasSuffix(data, []byte("]\n")) {
		t.Error("exported file should end with a newline")
	}
	if bytes.Contains(data, []byte(`\u0026`)) {
		t.Error("exported file should not HTML-escape URLs")
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("export left %d files behind, want 1", len(entries))
	}
}

func TestWriteBooksNil(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBooks(&buf, nil); err != nil {
		t.Fatalf("WriteBooks() error = %v", err)
	}
	if got := buf.String(); got != "[]\n" {
		t.Errorf("WriteBooks(nil) = %q, want %q", got, "[]\n")
	}
}
