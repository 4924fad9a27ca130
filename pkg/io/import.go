package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	bserr "github.com/matzehuels/bookshelf/pkg/errors"
	"github.com/matzehuels/bookshelf/pkg/shelf"
)

// Format identifies a book data encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the data format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	}
	return "", bserr.New(bserr.ErrCodeInvalidFormat, "unsupported book data file %q (want .json, .yml or .yaml)", filepath.Base(path))
}

// ReadBooks decodes a book list from r.
//
// The returned books are in file order and independent of r. ReadBooks does
// not close r.
func ReadBooks(r io.Reader, format Format) ([]shelf.Book, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var books []shelf.Book
	switch format {
	case FormatJSON:
		books, err = decodeJSON(data)
	case FormatYAML:
		books, err = decodeYAML(data)
	default:
		return nil, bserr.New(bserr.ErrCodeInvalidFormat, "unsupported book data format %q", format)
	}
	if err != nil {
		return nil, err
	}

	for i := range books {
		if err := validateBook(books[i]); err != nil {
			return nil, fmt.Errorf("book %d: %w", i, err)
		}
	}
	return books, nil
}

// ImportBooks reads the book data file at path, choosing the format from its
// extension.
func ImportBooks(path string) ([]shelf.Book, error) {
	if err := bserr.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, bserr.Wrap(bserr.ErrCodeFileNotFound, err, "book data file %s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	books, err := ReadBooks(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return books, nil
}

func decodeJSON(data []byte) ([]shelf.Book, error) {
	trimmed := bytes.TrimSpace(data)
	// An empty file is an empty shelf, as in YAML.
	if len(trimmed) == 0 {
		return []shelf.Book{}, nil
	}
	if trimmed[0] != '[' {
		return nil, bserr.New(bserr.ErrCodeInvalidConfig, "books must be a list")
	}

	books := []shelf.Book{}
	if err := json.Unmarshal(trimmed, &books); err != nil {
		return nil, bserr.Wrap(bserr.ErrCodeInvalidInput, err, "decode books")
	}
	return books, nil
}

func decodeYAML(data []byte) ([]shelf.Book, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, bserr.Wrap(bserr.ErrCodeInvalidInput, err, "decode books")
	}
	// An empty document is an empty shelf.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return []shelf.Book{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, bserr.New(bserr.ErrCodeInvalidConfig, "books must be a list")
	}

	books := []shelf.Book{}
	if err := root.Decode(&books); err != nil {
		return nil, bserr.Wrap(bserr.ErrCodeInvalidInput, err, "decode books")
	}
	return books, nil
}

func validateBook(b shelf.Book) error {
	if err := bserr.ValidateTitle("title", b.Title); err != nil {
		return err
	}
	if b.Author != "" {
		if err := bserr.ValidateTitle("author", b.Author); err != nil {
			return err
		}
	}
	if b.CoverColor != "" {
		if err := bserr.ValidateHexColor(b.CoverColor); err != nil {
			return err
		}
	}
	return nil
}
