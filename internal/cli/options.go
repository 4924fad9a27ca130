package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bookshelf/pkg/config"
	bserr "github.com/matzehuels/bookshelf/pkg/errors"
	"github.com/matzehuels/bookshelf/pkg/pipeline"
	"github.com/matzehuels/bookshelf/pkg/render/styles"
)

// shelfFlags are the layout flags shared by render, plan and preview.
// Flags left unset fall back to the config file.
type shelfFlags struct {
	perRow    int
	seed      int
	colorSeed uint64
	style     string
}

func (f *shelfFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.perRow, "per-row", "n", 0, "books per shelf (default from config, 15)")
	cmd.Flags().IntVar(&f.seed, "seed", 0, "fix the tilt seed (default: random in [0, seed_range))")
	cmd.Flags().Uint64Var(&f.colorSeed, "color-seed", 0, "fix the colour draws; required for cached output")
	cmd.Flags().StringVar(&f.style, "style", "", "visual style: "+strings.Join(styles.Names(), ", ")+" (default from config, "+pipeline.DefaultStyle+")")
}

// options builds pipeline options from the config, overridden by any flags
// the user set explicitly. An explicit --per-row must be positive.
func (f *shelfFlags) options(cmd *cobra.Command, cfg *config.Config, args []string) (pipeline.Options, error) {
	opts := pipeline.Options{
		BooksPath:   cfg.Data.Books,
		BooksPerRow: cfg.Shelf.BooksPerRow,
		Seed:        cfg.Shelf.Seed,
		SeedRange:   cfg.Shelf.SeedRange,
		ColorSeed:   cfg.Shelf.ColorSeed,
		Formats:     cfg.Render.Formats,
		Style:       cfg.Render.Style,
		Dims:        cfg.Dims(),
	}
	if len(args) > 0 {
		opts.BooksPath = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("per-row") {
		if f.perRow <= 0 {
			return opts, bserr.New(bserr.ErrCodeInvalidConfig, "--per-row must be positive, got %d", f.perRow)
		}
		opts.BooksPerRow = f.perRow
	}
	if flags.Changed("seed") {
		seed := f.seed
		opts.Seed = &seed
	}
	if flags.Changed("color-seed") {
		colorSeed := f.colorSeed
		opts.ColorSeed = &colorSeed
	}
	if flags.Changed("style") {
		opts.Style = f.style
	}
	return opts, nil
}
