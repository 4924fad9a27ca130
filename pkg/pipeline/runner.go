package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/bookshelf/pkg/buildinfo"
	"github.com/matzehuels/bookshelf/pkg/cache"
	"github.com/matzehuels/bookshelf/pkg/render/layout"
	"github.com/matzehuels/bookshelf/pkg/render/sink"
	"github.com/matzehuels/bookshelf/pkg/shelf"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store pass results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is how long rendered artifacts stay cached.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  cache.Instrument(c, "artifact"),
		Keyer:  keyer,
		Logger: logger,
		TTL:    TTLArtifact,
	}
}

// Execute runs the complete load → plan → layout → render pass.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	result, err := Prepare(ctx, &opts)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger.With("build", result.BuildID[:8])

	renderStart := time.Now()
	meta := sink.Meta{
		BuildID:     result.BuildID,
		Generator:   buildinfo.Generator(),
		BooksPerRow: opts.BooksPerRow,
		Seed:        result.Seed,
		Style:       opts.Style,
	}
	if opts.ColorSeed != nil {
		meta.ColorSeed = *opts.ColorSeed
	}
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, result.Books, result.Records, result.Layout, opts, result.Seed, meta)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo = CacheInfo{Cacheable: opts.Cacheable(), RenderHit: hit}

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Prepare runs the load, plan and layout stages without rendering. It
// applies defaults to opts in place.
func Prepare(ctx context.Context, opts *Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		BuildID:   uuid.NewString(),
		ColorSeed: opts.ColorSeed,
		Artifacts: make(map[string][]byte),
	}
	logger := opts.Logger.With("build", result.BuildID[:8])

	// Stage 1: Load
	loadStart := time.Now()
	books, err := LoadBooks(*opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Books = books
	result.Stats.LoadTime = time.Since(loadStart)
	logger.Debug("loaded books", "count", len(books), "duration", result.Stats.LoadTime)

	// Stage 2: Plan
	planStart := time.Now()
	result.Seed = ResolveSeed(*opts)
	records, err := Plan(ctx, books, *opts, result.Seed)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	result.Records = records
	result.Stats.PlanTime = time.Since(planStart)
	stats := PlanStats(records)
	result.Stats.Books, result.Stats.Rows, result.Stats.Tilted = stats.Books, stats.Rows, stats.Tilted

	logger.Info("planned shelf",
		"books", stats.Books,
		"rows", stats.Rows,
		"tilted", stats.Tilted,
		"seed", result.Seed,
		"duration", result.Stats.PlanTime)

	// Stage 3: Layout
	result.Layout = layout.Build(records, opts.Dims)
	return result, nil
}

// RenderWithCacheInfo renders all formats, serving them from the cache when
// the pass is reproducible. It reports whether every artifact was a hit.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, books []shelf.Book, records []shelf.Record, l layout.Layout, opts Options, seed int, meta sink.Meta) (map[string][]byte, bool, error) {
	if !opts.Cacheable() {
		artifacts, err := Render(ctx, records, l, opts, meta)
		return artifacts, false, err
	}

	contentHash, err := contentHash(books, opts)
	if err != nil {
		return nil, false, err
	}

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(contentHash, opts.ArtifactKeyOpts(format, seed))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := Render(ctx, records, l, opts, meta)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(contentHash, opts.ArtifactKeyOpts(format, seed))
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			r.Logger.Warn("artifact cache write failed", "format", format, "err", err)
		}
	}
	return rendered, false, nil
}

// contentHash covers everything besides the key options that shapes an
// artifact: the books and the layout measurements.
func contentHash(books []shelf.Book, opts Options) (string, error) {
	data, err := json.Marshal(struct {
		Books       []shelf.Book
		Dims        layout.Dims
		CoverColors bool
	}{books, opts.Dims, opts.CoverColors})
	if err != nil {
		return "", fmt.Errorf("hash content: %w", err)
	}
	return cache.Hash(data), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
