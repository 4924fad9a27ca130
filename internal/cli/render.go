package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	bserr "github.com/matzehuels/bookshelf/pkg/errors"
	"github.com/matzehuels/bookshelf/pkg/pipeline"
)

const (
	// defaultOutputBase is used when neither --output nor render.output is set.
	defaultOutputBase = "bookshelf"

	// stdoutPath writes a single artifact to standard output.
	stdoutPath = "-"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	shelfFlags
	output      string // output file (single format) or base path (multiple)
	formats     string // comma-separated formats
	noCache     bool   // disable the artifact cache
	refresh     bool   // re-render even when cached
	coverColors bool   // expose cover colours to the HTML stylesheet
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [books-file]",
		Short: "Render the bookshelf to HTML, SVG, JSON, PNG or PDF",
		Long: `Render the book data file as shelves of spines.

Every run draws a fresh tilt seed and fresh colours unless --seed and
--color-seed fix them. Only fully seeded runs are cached.`,
		Example: `  bookshelf render _data/books.json -o _includes/bookshelf.html
  bookshelf render -f svg,png --seed 7 --color-seed 42 -o shelf`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): html (default), svg, json, png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts")
	cmd.Flags().BoolVar(&opts.coverColors, "cover-colors", false, "add each book's cover colour as an inline CSS variable")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	popts, err := opts.options(cmd, cfg, args)
	if err != nil {
		return err
	}
	if formats := parseFormats(opts.formats); formats != nil {
		popts.Formats = formats
	}
	popts.Refresh = opts.refresh
	popts.CoverColors = opts.coverColors

	output := cfg.Render.Output
	if cmd.Flags().Changed("output") {
		output = opts.output
	}

	runner, err := c.newRunner(ctx, cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	logger.Debug("rendering", "books", popts.BooksPath, "formats", popts.Formats)
	prog := newProgress(logger)
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}
	prog.done("rendered shelf", "books", result.Stats.Books, "shelves", result.Stats.Rows)

	formats := artifactFormats(result.Artifacts)
	if output == stdoutPath {
		if len(formats) != 1 {
			return bserr.New(bserr.ErrCodeInvalidInput, "--output - needs exactly one format, got %d", len(formats))
		}
		_, err := os.Stdout.Write(result.Artifacts[formats[0]])
		return err
	}

	paths := outputPaths(formats, output)
	for _, format := range formats {
		if err := writeFile(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
	}

	printSuccess("Rendered bookshelf")
	printStats(result.Stats.Books, result.Stats.Rows, result.Seed, result.CacheInfo.RenderHit)
	for _, format := range formats {
		printFile(paths[format])
	}
	if !result.CacheInfo.Cacheable {
		printDetail("Colours were re-rolled; pass --color-seed to reproduce this shelf")
	}
	return nil
}

// artifactFormats returns the rendered formats in canonical order.
func artifactFormats(artifacts map[string][]byte) []string {
	var out []string
	for _, f := range pipeline.ValidFormats {
		if _, ok := artifacts[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// outputPaths maps each format to its file. A single format writes to output
// as given (adding the extension if it has none); multiple formats share a
// base path with a known format extension stripped.
func outputPaths(formats []string, output string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath strips a known format extension from output.
func basePath(output string) string {
	if output == "" {
		return defaultOutputBase
	}
	ext := filepath.Ext(output)
	if slices.Contains(pipeline.ValidFormats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
