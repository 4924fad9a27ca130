package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bookshelf/pkg/covers"
	pkgio "github.com/matzehuels/bookshelf/pkg/io"
)

// colorsOpts holds the command-line flags for the colors command.
type colorsOpts struct {
	dryRun      bool
	noCache     bool
	concurrency int
}

// colorsCommand creates the colors command, which samples every cover image
// and writes the chosen spine colour back into the book data file.
func (c *CLI) colorsCommand() *cobra.Command {
	var opts colorsOpts

	cmd := &cobra.Command{
		Use:   "colors [books-file]",
		Short: "Extract spine colours from cover images",
		Long: `Download each book's cover image, pick its most spine-like dominant
colour and store it as cover_color in the book data file.

Books without an image_url are left alone. A cover that cannot be fetched or
decoded is reported and skipped; the rest of the file is still updated.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runColors(cmd, args, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the colours without writing the file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "always download covers")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "parallel downloads (default from config, 4)")

	return cmd
}

func (c *CLI) runColors(cmd *cobra.Command, args []string, opts *colorsOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	path := cfg.Data.Books
	if len(args) > 0 {
		path = args[0]
	}

	books, err := pkgio.ImportBooks(path)
	if err != nil {
		return err
	}

	store, keyer, err := newCache(ctx, cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	client := covers.NewClient(store, cfg.Covers.Timeout)
	client.Keyer = keyer
	client.Logger = logger

	concurrency := cfg.Covers.Concurrency
	if cmd.Flags().Changed("concurrency") {
		concurrency = opts.concurrency
	}

	spinner := newSpinner(ctx, "Sampling covers")
	spinner.Progress(0, len(books))
	extractor := &covers.Extractor{
		Client:      client,
		Concurrency: concurrency,
		Logger:      logger,
		OnProgress: func(done, total int, e covers.Entry) {
			spinner.Progress(done, total)
		},
	}

	prog := newProgress(logger)
	spinner.Start()
	updated, report := extractor.Extract(ctx, books)
	spinner.Stop()
	if err := ctx.Err(); err != nil {
		return err
	}
	prog.done("sampled covers", "updated", report.Updated(), "failed", len(report.Failed()), "skipped", report.Count(covers.OutcomeSkipped))

	for _, e := range report.Failed() {
		printWarning("%s: %v", e.Title, e.Err)
	}

	if opts.dryRun {
		fmt.Fprintln(stdout, colorsTable(report).Render())
		printInfo("Dry run: %s not modified", path)
		return nil
	}

	if report.Updated() == 0 {
		printInfo("No cover colours found")
		return nil
	}
	if err := pkgio.ExportBooks(path, updated); err != nil {
		return err
	}
	printSuccess("Updated %d of %d books", report.Updated(), len(books))
	printFile(path)
	return nil
}

// colorsTable lists the books that received a colour.
func colorsTable(report covers.Report) *table.Table {
	var rows [][]string
	for _, e := range report.Entries {
		if e.Outcome != covers.OutcomeUpdated {
			continue
		}
		rows = append(rows, []string{e.Title, hexSwatch(e.Color)})
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	return newTable([]string{"Title", "Cover colour"}, rows, func(int, int) lipgloss.Style { return cell })
}
