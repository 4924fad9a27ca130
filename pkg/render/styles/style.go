package styles

import (
	"bytes"
	"fmt"
	"slices"

	bserr "github.com/matzehuels/bookshelf/pkg/errors"
	"github.com/matzehuels/bookshelf/pkg/shelf"
)

// Style defines the visual appearance of a rendered shelf.
type Style interface {
	// Name is the configuration name of the style.
	Name() string
	// RenderDefs writes SVG <defs> content (filters, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderShelf writes the SVG for a shelf board.
	RenderShelf(buf *bytes.Buffer, b Board)
	// RenderSpine writes the SVG for a single book spine.
	RenderSpine(buf *bytes.Buffer, s Spine)
	// RenderLabel writes the SVG for a spine's title text.
	RenderLabel(buf *bytes.Buffer, s Spine)
}

// Spine contains all data needed to render a single book.
type Spine struct {
	ID         string      // element id, "book-<index>"
	Title      string      // Display text
	Author     string      // Tooltip text
	Color      shelf.Color // Colour class from the plan
	CoverColor string      // "#rrggbb" from the cover, may be empty
	Tilted     bool
	X, Y, W, H float64 // Upright rectangle, Y is the top edge
	Rotation   float64 // Degrees, about (PX, PY)
	PX, PY     float64
}

// Board contains positioning data for a shelf plank.
type Board struct {
	Row        int
	X, Y, W, H float64
}

// registry holds every style, the default first.
var registry = []Style{Palette{}, Cover{}}

// Default is the style used when none is named.
func Default() Style { return registry[0] }

// Names lists the registered style names.
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name()
	}
	return names
}

// Lookup returns the style registered under name. An empty name selects
// the default.
func Lookup(name string) (Style, error) {
	if name == "" {
		return Default(), nil
	}
	for _, s := range registry {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, bserr.New(bserr.ErrCodeInvalidStyle, "unknown style %q (want one of %v)", name, Names())
}

// IsValid reports whether name is a registered style.
func IsValid(name string) bool { return slices.Contains(Names(), name) }

// transform returns the SVG transform attribute for a rotated spine.
func transform(s Spine) string {
	if s.Rotation == 0 {
		return ""
	}
	return fmt.Sprintf(` transform="rotate(%.1f %.1f %.1f)"`, s.Rotation, s.PX, s.PY)
}
