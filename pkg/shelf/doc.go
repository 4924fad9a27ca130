// Package shelf computes the render plan for the bookshelf.
//
// # Overview
//
// A bookshelf is an ordered list of [Book] records laid out on shelves of
// [Options.BooksPerRow] books each. For every book the plan records which
// shelf it sits on, where on that shelf, whether it is the shelf's tilted
// book, and which of the eight [Color] classes its spine is painted with.
//
// # Tilting
//
// Each full shelf has exactly one tilted book. The tilt target is computed
// once, when a shelf starts at global index i:
//
//	tilt = (i + 1 + seed) mod booksPerRow
//
// The seed is drawn once per render pass by the caller and reused for every
// shelf, so the tilt moves from shelf to shelf through the (i + 1) term and
// the whole arrangement shifts when a new seed is drawn. A short final shelf
// whose tilt target lies past its last book has no tilted book.
//
// # Colours
//
// Spine colours are drawn independently for every book from the [Picker]
// supplied by the caller. Colours never influence tilting, and nothing
// about a colour draw is cached: handing Plan a freshly seeded picker
// re-rolls every spine.
//
// # Usage
//
//	rng := rand.New(rand.NewPCG(colorSeed, colorSeed^0xdeadbeef))
//	seq, err := shelf.Plan(books, shelf.Options{BooksPerRow: 15, Seed: 42, Picker: rng})
//	if err != nil {
//	    return err // INVALID_CONFIG
//	}
//	for rec := range seq {
//	    fmt.Println(rec.Row, rec.Position, rec.Tilted, rec.Color.Class())
//	}
//
// Plan performs no I/O; rendering a plan into markup is the job of the
// render packages.
package shelf
