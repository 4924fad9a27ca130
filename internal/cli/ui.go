package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/bookshelf/pkg/shelf"
)

// stdout receives all command output that is not logging.
var stdout io.Writer = os.Stdout

// Terminal palette (ANSI 256).
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
	colorWood   = lipgloss.Color("94")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleBoard   = lipgloss.NewStyle().Foreground(colorWood)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconTilted  = "⟋"
	iconNone    = "—"
	separator   = " · "
)

// status prints msg behind a coloured icon.
func status(icon string, c lipgloss.Color, msg string) {
	fmt.Fprintln(stdout, lipgloss.NewStyle().Foreground(c).Render(icon)+" "+msg)
}

func printSuccess(format string, args ...any) {
	status(iconSuccess, colorGreen, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	status(iconWarning, colorYellow, styleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	status(iconInfo, colorGray, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line under a status line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+styleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a path the command wrote.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, styleKey.Render(key)+" "+styleValue.Render(value))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, styleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// statsLine summarises a shelf as "N books · R shelves · seed S · fresh".
// The last part reads "cached" when the artifacts came from the cache.
func statsLine(books, rows, seed int, cached bool) string {
	parts := []string{
		styleDim.Render(fmt.Sprintf("%d books", books)),
		styleDim.Render(fmt.Sprintf("%d shelves", rows)),
		styleDim.Render(fmt.Sprintf("seed %d", seed)),
	}
	if cached {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorGreen).Render("cached"))
	} else {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorGray).Render("fresh"))
	}
	return "  " + strings.Join(parts, styleDim.Render(separator))
}

func printStats(books, rows, seed int, cached bool) {
	fmt.Fprintln(stdout, statsLine(books, rows, seed, cached))
}

// swatch is a two-cell block in a spine's display colour.
func swatch(c shelf.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")
}

// hexSwatch is a block plus the hex code, or a dash for "".
func hexSwatch(hex string) string {
	if hex == "" {
		return styleDim.Render(iconNone)
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ") + " " + styleDim.Render(hex)
}

// newTable builds a rounded table. cell styles body cells; the header row
// always uses styleHeader.
func newTable(headers []string, rows [][]string, cell func(row, col int) lipgloss.Style) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return cell(row, col)
		})
}
