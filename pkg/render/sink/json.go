package sink

import (
	"encoding/json"

	"github.com/matzehuels/bookshelf/pkg/shelf"
)

// Meta describes how a plan was produced.
type Meta struct {
	BuildID     string `json:"build_id,omitempty"`
	Generator   string `json:"generator,omitempty"`
	BooksPerRow int    `json:"books_per_row"`
	Seed        int    `json:"seed"`
	ColorSeed   uint64 `json:"color_seed,omitempty"`
	Style       string `json:"style,omitempty"`
}

type jsonOutput struct {
	Meta
	Books int            `json:"books"`
	Rows  int            `json:"rows"`
	Plan  []shelf.Record `json:"plan"`
}

// RenderJSON exports the render plan as a pretty-printed JSON document.
//
// The document carries the seed and row width, so the tilt placement can be
// reproduced exactly. Colour classes are reproducible only when ColorSeed is
// set.
func RenderJSON(records []shelf.Record, meta Meta) ([]byte, error) {
	if records == nil {
		records = []shelf.Record{}
	}
	out := jsonOutput{
		Meta:  meta,
		Books: len(records),
		Rows:  len(shelf.Rows(records)),
		Plan:  records,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
