package pipeline

import (
	"context"
	"time"

	pkgio "github.com/matzehuels/bookshelf/pkg/io"
	"github.com/matzehuels/bookshelf/pkg/observability"
	"github.com/matzehuels/bookshelf/pkg/shelf"
)

// LoadBooks returns opts.Books, or reads opts.BooksPath when Books is nil.
func LoadBooks(opts Options) ([]shelf.Book, error) {
	if opts.Books != nil {
		return opts.Books, nil
	}
	return pkgio.ImportBooks(opts.BooksPath)
}

// ResolveSeed returns the fixed seed or draws a fresh one.
func ResolveSeed(opts Options) int {
	if opts.Seed != nil {
		return *opts.Seed
	}
	return shelf.RandomSeed(opts.SeedRange)
}

// Picker returns the colour source for a pass.
func Picker(opts Options) shelf.Picker {
	if opts.ColorSeed != nil {
		return shelf.NewPicker(*opts.ColorSeed)
	}
	return shelf.RandomPicker()
}

// Plan runs the layout engine and reports to the pipeline hooks.
func Plan(ctx context.Context, books []shelf.Book, opts Options, seed int) ([]shelf.Record, error) {
	hooks := observability.Pipeline()
	hooks.OnPlanStart(ctx, len(books), opts.BooksPerRow)
	start := time.Now()

	records, err := shelf.Build(books, shelf.Options{
		BooksPerRow: opts.BooksPerRow,
		Seed:        seed,
		Picker:      Picker(opts),
	})
	hooks.OnPlanComplete(ctx, PlanStats(records), time.Since(start), err)
	return records, err
}

// PlanStats summarises a plan.
func PlanStats(records []shelf.Record) observability.PlanStats {
	s := observability.PlanStats{Books: len(records)}
	for _, r := range records {
		if r.Tilted {
			s.Tilted++
		}
		s.Rows = max(s.Rows, r.Row+1)
	}
	return s
}
