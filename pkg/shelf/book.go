package shelf

// Book is one entry of the site's book data file.
//
// Only Title and Author take part in layout. ImageURL and CoverColor are
// carried through so presentation layers and the cover colour extractor can
// use them.
type Book struct {
	Title      string `json:"title" yaml:"title"`
	Author     string `json:"author" yaml:"author"`
	ImageURL   string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	CoverColor string `json:"cover_color,omitempty" yaml:"cover_color,omitempty"`
}

// Record is the layout decision for a single book.
type Record struct {
	Book     Book  `json:"book"`
	Index    int   `json:"index"`    // position in the input list
	Row      int   `json:"row"`      // Index / BooksPerRow
	Position int   `json:"position"` // Index mod BooksPerRow
	Tilted   bool  `json:"tilted"`
	Color    Color `json:"color"`
}
