package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bookshelf/pkg/pipeline"
	"github.com/matzehuels/bookshelf/pkg/shelf"
)

// planCommand creates the plan command, which prints the render plan
// without writing any files.
func (c *CLI) planCommand() *cobra.Command {
	var flags shelfFlags

	cmd := &cobra.Command{
		Use:   "plan [books-file]",
		Short: "Print the render plan as a table",
		Long: `Print the render plan: each book's shelf, position, colour class and
whether it is the shelf's tilted book.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts, err := flags.options(cmd, cfg, args)
			if err != nil {
				return err
			}
			opts.Logger = loggerFromContext(cmd.Context())

			result, err := pipeline.Prepare(cmd.Context(), &opts)
			if err != nil {
				return err
			}

			printKeyValue("Books", opts.BooksPath)
			printKeyValue("Per shelf", strconv.Itoa(opts.BooksPerRow))
			printKeyValue("Seed", strconv.Itoa(result.Seed))
			fmt.Fprintln(stdout)
			fmt.Fprintln(stdout, planTable(result.Records).Render())
			printStats(result.Stats.Books, result.Stats.Rows, result.Seed, false)
			if opts.Seed == nil {
				printNextStep("Render this layout", fmt.Sprintf("%s render --seed %d", appName, result.Seed))
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// planTable lays out one table row per book.
func planTable(records []shelf.Record) *table.Table {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		tilt := ""
		if r.Tilted {
			tilt = iconTilted
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Row + 1),
			strconv.Itoa(r.Position + 1),
			r.Book.Title,
			r.Book.Author,
			swatch(r.Color) + " " + r.Color.Class(),
			tilt,
		})
	}

	headers := []string{"Shelf", "Pos", "Title", "Author", "Colour", "Tilt"}
	return newTable(headers, rows, func(row, col int) lipgloss.Style {
		base := lipgloss.NewStyle().Padding(0, 1)
		if row < len(records) && records[row].Tilted {
			base = base.Foreground(colorCyan).Bold(true)
		}
		if col <= 1 {
			return base.Foreground(colorGray)
		}
		return base
	})
}
