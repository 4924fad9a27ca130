package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/bookshelf/pkg/shelf"
)

// WriteBooks encodes books as an indented JSON array followed by a newline.
// A nil slice is written as [].
func WriteBooks(w io.Writer, books []shelf.Book) error {
	if books == nil {
		books = []shelf.Book{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(books); err != nil {
		return fmt.Errorf("encode books: %w", err)
	}
	return nil
}

// ExportBooks writes books to path as JSON.
//
// The file is written to a temporary sibling and renamed into place, so a
// failed write never leaves a truncated data file behind.
func ExportBooks(path string, books []shelf.Book) error {
	var buf bytes.Buffer
	if err := WriteBooks(&buf, books); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
