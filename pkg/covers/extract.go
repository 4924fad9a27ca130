package covers

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/bookshelf/pkg/shelf"
)

// DefaultConcurrency is the number of covers fetched in parallel.
const DefaultConcurrency = 4

var discard = log.New(io.Discard)

// Outcome is what happened to one book during extraction.
type Outcome int

const (
	OutcomeSkipped Outcome = iota // no image URL
	OutcomeUpdated
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeUpdated:
		return "updated"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// Entry is the per-book line of a [Report].
type Entry struct {
	Index   int
	Title   string
	Outcome Outcome
	Color   string // set when Outcome is OutcomeUpdated
	Err     error  // set when Outcome is OutcomeFailed
}

// Report summarises an extraction run. Entries follow input order.
type Report struct {
	Entries []Entry
}

// Count returns how many entries have outcome o.
func (r Report) Count(o Outcome) int {
	n := 0
	for _, e := range r.Entries {
		if e.Outcome == o {
			n++
		}
	}
	return n
}

// Updated returns the number of books that received a colour.
func (r Report) Updated() int { return r.Count(OutcomeUpdated) }

// Failed returns the entries that could not be processed.
func (r Report) Failed() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Outcome == OutcomeFailed {
			out = append(out, e)
		}
	}
	return out
}

// Extractor fills in cover colours for a list of books.
type Extractor struct {
	Client      *Client
	Concurrency int
	Logger      *log.Logger

	// OnProgress, when set, is called once per finished book.
	// Calls are serialised.
	OnProgress func(done, total int, e Entry)
}

// Extract returns a copy of books with CoverColor set from each cover image,
// together with a per-book report. Books without an image URL and books whose
// cover fails are returned unchanged.
//
// If ctx is cancelled, outstanding books are marked failed with ctx.Err().
func (x *Extractor) Extract(ctx context.Context, books []shelf.Book) ([]shelf.Book, Report) {
	out := make([]shelf.Book, len(books))
	copy(out, books)
	report := Report{Entries: make([]Entry, len(books))}

	limit := x.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	logger := x.Logger
	if logger == nil {
		logger = discard
	}

	var (
		mu   sync.Mutex
		done int
	)
	finish := func(e Entry) {
		mu.Lock()
		defer mu.Unlock()
		report.Entries[e.Index] = e
		done++
		if x.OnProgress != nil {
			x.OnProgress(done, len(books), e)
		}
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i, b := range books {
		if b.ImageURL == "" {
			logger.Debug("no image url, skipped", "title", b.Title)
			finish(Entry{Index: i, Title: b.Title, Outcome: OutcomeSkipped})
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				finish(Entry{Index: i, Title: b.Title, Outcome: OutcomeFailed, Err: err})
				return nil
			}
			img, err := x.Client.Image(ctx, b.ImageURL)
			if err != nil {
				logger.Warn("cover failed", "title", b.Title, "err", err)
				finish(Entry{Index: i, Title: b.Title, Outcome: OutcomeFailed, Err: err})
				return nil
			}
			hex := Hex(Dominant(img))
			out[i].CoverColor = hex
			logger.Debug("cover colour", "title", b.Title, "color", hex)
			finish(Entry{Index: i, Title: b.Title, Outcome: OutcomeUpdated, Color: hex})
			return nil
		})
	}
	_ = g.Wait()
	return out, report
}
