package cli

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/bookshelf/pkg/config"
	"github.com/matzehuels/bookshelf/pkg/pipeline"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tiltedTitles(m previewModel) []string {
	var out []string
	for _, r := range m.records {
		if r.Tilted {
			out = append(out, r.Book.Title)
		}
	}
	return out
}

func TestPreviewModelRerollSeed(t *testing.T) {
	m := newPreviewModel(testBooks, 2, 0, 1, 100)
	m.rollSeed = func(int) int { return 1 }

	if got := tiltedTitles(m); strings.Join(got, ",") != "Solaris,Neuromancer" {
		t.Fatalf("seed 0 tilted %v", got)
	}

	next, _ := m.Update(keyMsg("r"))
	m = next.(previewModel)
	if m.seed != 1 {
		t.Errorf("seed = %d, want 1", m.seed)
	}
	// seed 1: (0+1+1)%2 = 0, (2+1+1)%2 = 0, (4+1+1)%2 = 0
	if got := tiltedTitles(m); strings.Join(got, ",") != "Dune,Hyperion,Foundation" {
		t.Errorf("seed 1 tilted %v", got)
	}
}

func TestPreviewModelRerollColours(t *testing.T) {
	m := newPreviewModel(testBooks, 2, 0, 1, 100)
	m.rollColorSeed = func() uint64 { return 99 }
	before := tiltedTitles(m)

	next, _ := m.Update(keyMsg("c"))
	m = next.(previewModel)
	if m.colorSeed != 99 {
		t.Errorf("colorSeed = %d, want 99", m.colorSeed)
	}
	if strings.Join(tiltedTitles(m), ",") != strings.Join(before, ",") {
		t.Error("re-rolling colours must not move the tilted books")
	}
}

func TestPreviewModelPerRow(t *testing.T) {
	m := newPreviewModel(testBooks, 1, 0, 1, 100)

	next, _ := m.Update(keyMsg("-"))
	if got := next.(previewModel).perRow; got != 1 {
		t.Errorf("perRow = %d, must not drop below 1", got)
	}

	next, _ = m.Update(keyMsg("+"))
	m = next.(previewModel)
	if m.perRow != 2 {
		t.Errorf("perRow = %d, want 2", m.perRow)
	}
	if m.records[2].Row != 1 {
		t.Errorf("record 2 row = %d, want 1", m.records[2].Row)
	}
}

func TestPreviewModelQuit(t *testing.T) {
	m := newPreviewModel(testBooks, 2, 0, 1, 100)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestPreviewModelView(t *testing.T) {
	m := newPreviewModel(testBooks, 2, 0, 1, 100)
	view := m.View()

	for _, want := range []string{"Solaris", "Neuromancer", "5 books", "3 shelves", "seed 0", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if got := m.renderCommand(); got != "bookshelf render --per-row 2 --seed 0 --color-seed 1" {
		t.Errorf("renderCommand() = %q", got)
	}
}

func TestPreviewRenderCommandKeepsSource(t *testing.T) {
	cfg := config.DefaultConfig()
	tests := []struct {
		name      string
		booksPath string
		style     string
		want      string
	}{
		{
			name:      "config defaults",
			booksPath: cfg.Data.Books,
			style:     cfg.Render.Style,
			want:      "bookshelf render --per-row 2 --seed 0 --color-seed 1",
		},
		{
			name:      "books file argument",
			booksPath: "books.yml",
			style:     cfg.Render.Style,
			want:      "bookshelf render books.yml --per-row 2 --seed 0 --color-seed 1",
		},
		{
			name:      "cover style",
			booksPath: "books.yml",
			style:     "cover",
			want:      "bookshelf render books.yml --per-row 2 --seed 0 --color-seed 1 --style cover",
		},
		{
			name:      "path with spaces",
			booksPath: filepath.Join("my books", "list.json"),
			want:      "bookshelf render '" + filepath.Join("my books", "list.json") + "' --per-row 2 --seed 0 --color-seed 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newPreviewModel(testBooks, 2, 0, 1, 100)
			m.booksPath, m.style = renderOverrides(pipeline.Options{BooksPath: tt.booksPath, Style: tt.style}, cfg)
			if got := m.renderCommand(); got != tt.want {
				t.Errorf("renderCommand() = %q, want %q", got, tt.want)
			}
		})
	}
}
