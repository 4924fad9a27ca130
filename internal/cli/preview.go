package cli

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bookshelf/pkg/config"
	"github.com/matzehuels/bookshelf/pkg/pipeline"
	"github.com/matzehuels/bookshelf/pkg/render/styles"
	"github.com/matzehuels/bookshelf/pkg/shelf"
)

var (
	previewTiltStyle = lipgloss.NewStyle().Foreground(colorCyan).Italic(true)
	previewHelpStyle = lipgloss.NewStyle().Foreground(colorDim)
	previewErrStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var flags shelfFlags

	cmd := &cobra.Command{
		Use:   "preview [books-file]",
		Short: "Preview the shelf in the terminal",
		Long: `Show the shelf in the terminal. Press r to draw a new tilt seed, c to
re-roll the colours and +/- to change the books per shelf. On exit the
command that renders the shown layout is printed.`,
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
			if opts.ColorSeed == nil {
				colorSeed := rand.Uint64()
				opts.ColorSeed = &colorSeed
			}

			result, err := pipeline.Prepare(cmd.Context(), &opts)
			if err != nil {
				return err
			}

			m := newPreviewModel(result.Books, opts.BooksPerRow, result.Seed, *opts.ColorSeed, opts.SeedRange)
			m.booksPath, m.style = renderOverrides(opts, cfg)
			final, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if pm, ok := final.(previewModel); ok {
				printNextStep("Render this shelf", pm.renderCommand())
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// previewModel is the bubbletea model for the shelf preview. Every change
// of seed, colour seed or row width replans the whole shelf.
type previewModel struct {
	books     []shelf.Book
	perRow    int
	seed      int
	colorSeed uint64
	seedRange int

	// booksPath and style are set only when they differ from the config,
	// so the printed render command picks up the same data and look.
	booksPath string
	style     string

	records []shelf.Record
	err     error

	// rollSeed and rollColorSeed draw new seeds; tests replace them.
	rollSeed      func(n int) int
	rollColorSeed func() uint64
}

func newPreviewModel(books []shelf.Book, perRow, seed int, colorSeed uint64, seedRange int) previewModel {
	m := previewModel{
		books:         books,
		perRow:        perRow,
		seed:          seed,
		colorSeed:     colorSeed,
		seedRange:     seedRange,
		rollSeed:      shelf.RandomSeed,
		rollColorSeed: rand.Uint64,
	}
	return m.replan()
}

func (m previewModel) replan() previewModel {
	m.records, m.err = shelf.Build(m.books, shelf.Options{
		BooksPerRow: m.perRow,
		Seed:        m.seed,
		Picker:      shelf.NewPicker(m.colorSeed),
	})
	return m
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "r":
		m.seed = m.rollSeed(m.seedRange)
	case "c":
		m.colorSeed = m.rollColorSeed()
	case "+", "=":
		m.perRow++
	case "-":
		if m.perRow > 1 {
			m.perRow--
		}
	default:
		return m, nil
	}
	return m.replan(), nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Bookshelf"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(previewErrStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	for _, row := range shelf.Rows(m.records) {
		var tilted string
		for _, r := range row {
			b.WriteString(spineCell(r))
			if r.Tilted {
				tilted = r.Book.Title
			}
		}
		if tilted != "" {
			b.WriteString("  " + previewTiltStyle.Render(iconTilted+" "+tilted))
		}
		b.WriteString("\n")
		b.WriteString(styleBoard.Render(strings.Repeat("▀", len(row)+1)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statsLine(len(m.records), len(shelf.Rows(m.records)), m.seed, false))
	b.WriteString(styleDim.Render(fmt.Sprintf(" · colours %d · %d per shelf", m.colorSeed, m.perRow)))
	b.WriteString("\n")
	b.WriteString(previewHelpStyle.Render("r re-roll tilt  c re-roll colours  +/- per shelf  q quit"))
	b.WriteString("\n")
	return b.String()
}

// spineCell draws one book as a single coloured cell holding its initial.
// The tilted book leans.
func spineCell(r shelf.Record) string {
	glyph := "│"
	if initial := []rune(strings.TrimSpace(r.Book.Title)); len(initial) > 0 {
		glyph = strings.ToUpper(string(initial[0]))
	}
	if r.Tilted {
		glyph = "╱"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(r.Color.Hex())).
		Foreground(lipgloss.Color(styles.ClassInk(r.Color))).
		Render(glyph)
}

// renderOverrides returns the books path and style of opts that a bare
// render would not pick up from cfg, or "" for each that it would.
func renderOverrides(opts pipeline.Options, cfg *config.Config) (booksPath, style string) {
	if opts.BooksPath != cfg.Data.Books {
		booksPath = opts.BooksPath
	}
	if opts.Style != "" && opts.Style != cfg.Render.Style {
		style = opts.Style
	}
	return booksPath, style
}

// renderCommand reproduces the previewed layout.
func (m previewModel) renderCommand() string {
	parts := []string{appName, "render"}
	if m.booksPath != "" {
		parts = append(parts, shellQuote(m.booksPath))
	}
	parts = append(parts,
		"--per-row", strconv.Itoa(m.perRow),
		"--seed", strconv.Itoa(m.seed),
		"--color-seed", strconv.FormatUint(m.colorSeed, 10),
	)
	if m.style != "" {
		parts = append(parts, "--style", shellQuote(m.style))
	}
	return strings.Join(parts, " ")
}

// shellQuote single-quotes s when it holds anything a shell would split or
// expand.
func shellQuote(s string) string {
	if s != "" && !strings.ContainsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("-_./:=+@%,", r))
	}) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
