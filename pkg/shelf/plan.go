package shelf

import (
	"iter"
	"math/rand/v2"
	"slices"

	bserr "github.com/matzehuels/bookshelf/pkg/errors"
)

const (
	// DefaultBooksPerRow is the shelf width used by the site.
	DefaultBooksPerRow = 15

	// DefaultSeedRange bounds seeds drawn by [RandomSeed] when the caller
	// does not supply one: seeds fall in [0, DefaultSeedRange).
	DefaultSeedRange = 100
)

// Picker is the colour source. *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

// Options configures a render plan.
type Options struct {
	// BooksPerRow is the number of books per shelf. Must be positive.
	BooksPerRow int

	// Seed is the per-render-pass random integer mixed into every shelf's
	// tilt target. Must be non-negative.
	Seed int

	// Picker draws one colour per book. Required.
	Picker Picker
}

// Validate reports an INVALID_CONFIG error for options Plan cannot use.
func (o Options) Validate() error {
	if o.BooksPerRow <= 0 {
		return bserr.New(bserr.ErrCodeInvalidConfig, "books per row must be positive, got %d", o.BooksPerRow)
	}
	if o.Seed < 0 {
		return bserr.New(bserr.ErrCodeInvalidConfig, "seed must be non-negative, got %d", o.Seed)
	}
	if o.Picker == nil {
		return bserr.New(bserr.ErrCodeInvalidConfig, "color picker is required")
	}
	return nil
}

// NewPicker returns a deterministic colour source for seed.
func NewPicker(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// RandomPicker returns a colour source seeded from the runtime's entropy.
func RandomPicker() *rand.Rand {
	return NewPicker(rand.Uint64())
}

// RandomSeed draws a tilt seed in [0, n). n <= 0 selects DefaultSeedRange.
func RandomSeed(n int) int {
	if n <= 0 {
		n = DefaultSeedRange
	}
	return rand.IntN(n)
}

// TiltTarget returns the tilted position for the shelf starting at global
// index rowStart. perRow must be positive and seed non-negative.
func TiltTarget(rowStart, seed, perRow int) int {
	// (rowStart + 1 + seed) mod perRow, reduced term by term so large seeds
	// cannot overflow.
	return ((rowStart+1)%perRow + seed%perRow) % perRow
}

// Plan validates opts and returns the lazy render plan for books.
//
// The options are checked before any record is produced; an invalid
// configuration yields a nil sequence and an INVALID_CONFIG error. An empty
// book list yields an empty sequence.
//
// Tilt flags depend only on the book count, BooksPerRow and Seed. Colours
// are drawn from opts.Picker while the sequence is consumed, so ranging over
// the sequence twice draws fresh colours.
func Plan(books []Book, opts Options) (iter.Seq[Record], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	perRow := opts.BooksPerRow

	return func(yield func(Record) bool) {
		tilt := 0
		for i, b := range books {
			pos := i % perRow
			if pos == 0 {
				tilt = TiltTarget(i, opts.Seed, perRow)
			}
			rec := Record{
				Book:     b,
				Index:    i,
				Row:      i / perRow,
				Position: pos,
				Tilted:   pos == tilt,
				Color:    Colors[opts.Picker.IntN(NumColors)],
			}
			if !yield(rec) {
				return
			}
		}
	}, nil
}

// Build is the eager form of [Plan].
func Build(books []Book, opts Options) ([]Record, error) {
	seq, err := Plan(books, opts)
	if err != nil {
		return nil, err
	}
	return Collect(seq), nil
}

// Collect drains seq into a slice. An empty sequence yields an empty,
// non-nil slice.
func Collect(seq iter.Seq[Record]) []Record {
	out := slices.Collect(seq)
	if out == nil {
		out = []Record{}
	}
	return out
}

// Rows groups records by shelf. Records must be in plan order.
func Rows(records []Record) [][]Record {
	var rows [][]Record
	for _, r := range records {
		if len(rows) == 0 || rows[len(rows)-1][0].Row != r.Row {
			rows = append(rows, nil)
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], r)
	}
	return rows
}

// RowCount returns the number of shelves n books occupy.
func RowCount(n, perRow int) int {
	if n <= 0 || perRow <= 0 {
		return 0
	}
	return (n + perRow - 1) / perRow
}
