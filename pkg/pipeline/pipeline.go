// Package pipeline runs a complete bookshelf render pass.
//
// This package implements the load → plan → layout → render sequence used by
// the CLI commands. Keeping it in one place means render, plan and preview
// draw seeds and report progress the same way.
//
// # Architecture
//
// A render pass has four stages:
//
//  1. Load: read the book data file (JSON or YAML)
//  2. Plan: assign rows, tilt and colour classes with [shelf.Plan]
//  3. Layout: compute spine geometry for the drawing formats
//  4. Render: produce every requested format (HTML, SVG, JSON, PNG, PDF)
//
// Any INVALID_CONFIG error aborts the pass before a single artifact is
// produced.
//
// # Seeds
//
// The tilt seed is drawn once per pass from [0, SeedRange) unless fixed. The
// colour classes come from a separate source: with no ColorSeed they are
// re-rolled every pass and the result is never cached. Fixing ColorSeed makes
// the pass fully reproducible and lets rendered artifacts be cached.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    BooksPath: "_data/books.json",
//	    Formats:   []string{"html"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html := result.Artifacts["html"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bookshelf/pkg/cache"
	bserr "github.com/matzehuels/bookshelf/pkg/errors"
	"github.com/matzehuels/bookshelf/pkg/render/layout"
	"github.com/matzehuels/bookshelf/pkg/render/styles"
	"github.com/matzehuels/bookshelf/pkg/shelf"
)

// Format constants for output formats.
const (
	FormatHTML = "html"
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// ValidFormats lists the supported output formats in render order.
var ValidFormats = []string{FormatHTML, FormatSVG, FormatJSON, FormatPNG, FormatPDF}

// DefaultStyle is the default visual style.
var DefaultStyle = styles.Default().Name()

// TTLArtifact is how long reproducible artifacts stay cached.
const TTLArtifact = 7 * 24 * time.Hour

// Options contains all configuration for a render pass.
type Options struct {
	// BooksPath is read when Books is nil.
	BooksPath string
	Books     []shelf.Book

	// BooksPerRow of zero uses shelf.DefaultBooksPerRow.
	BooksPerRow int
	// Seed fixes the tilt seed; nil draws one from [0, SeedRange).
	Seed      *int
	SeedRange int
	// ColorSeed fixes the colour draws; nil re-rolls them.
	ColorSeed *uint64

	Formats     []string
	Style       string
	Dims        layout.Dims
	CoverColors bool // expose cover colours to the HTML stylesheet
	Refresh     bool // ignore cached artifacts

	Logger *log.Logger

	validated bool
}

// Result contains the outputs of a render pass.
type Result struct {
	// BuildID identifies this pass in logs and in the JSON artifact.
	BuildID   string
	Seed      int
	ColorSeed *uint64
	Books     []shelf.Book
	Records   []shelf.Record
	Layout    layout.Layout
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pass statistics.
type Stats struct {
	Books      int
	Rows       int
	Tilted     int
	LoadTime   time.Duration
	PlanTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache use for a pass.
type CacheInfo struct {
	Cacheable bool // ColorSeed was fixed
	RenderHit bool // all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return bserr.New(bserr.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(ValidFormats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the options and applies defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Books == nil && o.BooksPath == "" {
		return bserr.New(bserr.ErrCodeInvalidInput, "books or books path is required")
	}
	if o.BooksPerRow == 0 {
		o.BooksPerRow = shelf.DefaultBooksPerRow
	}
	if o.BooksPerRow < 0 {
		return bserr.New(bserr.ErrCodeInvalidConfig, "books per row must be positive, got %d", o.BooksPerRow)
	}
	if o.Seed != nil && *o.Seed < 0 {
		return bserr.New(bserr.ErrCodeInvalidConfig, "seed must be non-negative, got %d", *o.Seed)
	}
	if o.SeedRange <= 0 {
		o.SeedRange = shelf.DefaultSeedRange
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatHTML}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if _, err := styles.Lookup(o.Style); err != nil {
		return err
	}
	o.Dims = o.Dims.Normalize()
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Cacheable reports whether a pass with these options is reproducible.
func (o *Options) Cacheable() bool {
	return o.ColorSeed != nil
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string, seed int) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:      format,
		Style:       o.Style,
		BooksPerRow: o.BooksPerRow,
		Seed:        seed,
		Width:       o.Dims.MinWidth,
	}
	if o.ColorSeed != nil {
		opts.ColorSeed = *o.ColorSeed
	}
	return opts
}
