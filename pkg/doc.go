// Package pkg provides the libraries behind the bookshelf CLI.
//
// # Overview
//
// Bookshelf turns an ordered reading list into shelves of book spines. Each
// shelf holds a fixed number of books, exactly one book per full shelf leans
// at an angle, and every spine gets one of eight colour classes.
//
// # Architecture
//
//	_data/books.json (or .yml)
//	         ↓
//	    [io] read book records
//	         ↓
//	    [shelf] plan rows, tilt and colour classes
//	         ↓
//	    [render/layout] spine and board geometry
//	         ↓
//	    [render/sink] HTML include, SVG, JSON, PNG, PDF
//
// [pipeline] runs these stages with caching ([cache]) and observability
// hooks ([observability]). [covers] samples cover images to store a spine
// colour per book. [config] layers bookshelf.toml, .env and BOOKSHELF_*
// variables.
//
// # Quick Start
//
//	records, err := shelf.Build(books, shelf.Options{
//	    BooksPerRow: shelf.DefaultBooksPerRow,
//	    Seed:        shelf.RandomSeed(shelf.DefaultSeedRange),
//	    Picker:      shelf.RandomPicker(),
//	})
//	if err != nil {
//	    return err
//	}
//	html, err := sink.RenderHTML(records)
//
// [io]: https://pkg.go.dev/github.com/matzehuels/bookshelf/pkg/io
// [shelf]: https://pkg.go.dev/github.com/matzehuels/bookshelf/pkg/shelf
// [render/layout]: https://pkg.go.dev/github.com/matzehuels/bookshelf/pkg/render/layout
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/bookshelf/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/bookshelf/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/bookshelf/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/bookshelf/pkg/observability
// [covers]: https://pkg.go.dev/github.com/matzehuels/bookshelf/pkg/covers
// [config]: https://pkg.go.dev/github.com/matzehuels/bookshelf/pkg/config
package pkg
