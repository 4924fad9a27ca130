package sink_test

import (
	"fmt"

	"github.com/matzehuels/bookshelf/pkg/render/sink"
	"github.com/matzehuels/bookshelf/pkg/shelf"
)

func ExampleRenderHTML() {
	books := []shelf.Book{
		{Title: "Dune", Author: "Frank Herbert"},
		{Title: "Solaris", Author: "Stanisław Lem"},
	}
	recs, _ := shelf.Build(books, shelf.Options{
		BooksPerRow: 2,
		Seed:        0,
		Picker:      shelf.NewPicker(7),
	})

	for _, r := range recs {
		fmt.Println(r.Book.Title, r.Tilted)
	}
	out, _ := sink.RenderHTML(recs)
	fmt.Println(len(out) > 0)
	// Output:
	// Dune false
	// Solaris true
	// true
}
