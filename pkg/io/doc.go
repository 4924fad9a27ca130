// Package io reads and writes the site's book data file.
//
// # Overview
//
// The bookshelf is driven by a static, ordered list of books kept next to
// the site sources, usually at _data/books.json or _data/books.yml. Order in
// the file is shelf order.
//
// # JSON Format
//
// The file is a top-level array of objects:
//
//	[
//	  {"title": "Dune", "author": "Frank Herbert"},
//	  {
//	    "title": "Solaris",
//	    "author": "Stanisław Lem",
//	    "image_url": "https://covers.example.org/solaris.jpg",
//	    "cover_color": "#30507c"
//	  }
//	]
//
// The YAML form carries the same keys as a sequence of mappings.
//
// # Fields
//
// Required:
//   - title: Display title
//
// Optional:
//   - author: Display author
//   - image_url: Cover image, used by the cover colour extractor
//   - cover_color: "#rrggbb" spine colour written by the extractor
//
// Unknown keys are ignored.
//
// # Errors
//
//   - A document whose top-level value is not a list: INVALID_CONFIG
//   - A book with a missing title or a malformed field: INVALID_INPUT
//   - An unknown file extension: INVALID_FORMAT
//   - A missing file: FILE_NOT_FOUND
//
// [WriteBooks] always writes JSON with two-space indentation and a trailing
// newline, so a file round-trips through [ImportBooks] and [ExportBooks]
// without spurious diffs.
package io
