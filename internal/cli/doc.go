// Package cli implements the bookshelf command-line interface.
//
// The CLI is built with cobra. Every command reads bookshelf.toml (or the
// file given by --config), then BOOKSHELF_* environment variables, and lets
// its own flags override both.
//
// # Commands
//
//   - render: write the shelf as HTML, SVG, JSON, PNG or PDF
//   - plan: print the render plan as a table
//   - colors: sample cover images and store each book's spine colour
//   - preview: interactive terminal preview with seed and colour re-rolls
//   - cache: clear or locate the artifact and cover cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// carried on the command context; see loggerFromContext.
package cli
