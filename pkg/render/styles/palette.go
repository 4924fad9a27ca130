package styles

import (
	"bytes"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/bookshelf/pkg/shelf"
)

const (
	boardFill   = "#7a5230"
	boardStroke = "#4e3420"
	inkDark     = "#1f1f1f"
	inkLight    = "#f5f1e8"

	// Lab lightness above which labels switch to dark ink.
	lightThreshold = 0.55
)

// Palette fills each spine with the colour of its colour class.
type Palette struct{}

func (Palette) Name() string { return "palette" }

func (Palette) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <linearGradient id="spine-shade" x1="0" x2="1" y1="0" y2="0">
      <stop offset="0" stop-color="#000" stop-opacity="0.18"/>
      <stop offset="0.3" stop-color="#fff" stop-opacity="0.08"/>
      <stop offset="1" stop-color="#000" stop-opacity="0.22"/>
    </linearGradient>
  </defs>
`)
}

func (Palette) RenderShelf(buf *bytes.Buffer, b Board) {
	renderBoard(buf, b)
}

func (Palette) RenderSpine(buf *bytes.Buffer, s Spine) {
	renderSpine(buf, s, s.Color.Hex())
}

func (Palette) RenderLabel(buf *bytes.Buffer, s Spine) {
	renderLabel(buf, s, ClassInk(s.Color))
}

// ClassInk returns the label colour that reads best on a colour class.
func ClassInk(c shelf.Color) string {
	switch c {
	case shelf.ColorDarkGreen, shelf.ColorGreen, shelf.ColorBlue, shelf.ColorUmber, shelf.ColorSpringer, shelf.ColorRed:
		return inkLight
	case shelf.ColorBrightOrange, shelf.ColorLightBlue:
		return inkDark
	}
	return inkDark
}

// HexInk returns the label colour for an arbitrary "#rrggbb" fill.
func HexInk(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return inkDark
	}
	if l, _, _ := c.Lab(); l > lightThreshold {
		return inkDark
	}
	return inkLight
}

func renderBoard(buf *bytes.Buffer, b Board) {
	fmt.Fprintf(buf, `  <rect class="board" data-row="%d" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		b.Row, b.X, b.Y, b.W, b.H, boardFill, boardStroke)
}

func renderSpine(buf *bytes.Buffer, s Spine, fill string) {
	edge := darken(fill, 0.25)
	class := "spine " + s.Color.Class()
	if s.Tilted {
		class += " book-tilted"
	}
	fmt.Fprintf(buf, `  <g id="%s" class="%s"%s>`+"\n", s.ID, class, transform(s))
	fmt.Fprintf(buf, `    <title>%s</title>`+"\n", EscapeXML(tooltip(s)))
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="2" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		s.X, s.Y, s.W, s.H, fill, edge)
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="2" fill="url(#spine-shade)"/>`+"\n",
		s.X, s.Y, s.W, s.H)
	for _, off := range []float64{0.12, 0.88} {
		y := s.Y + s.H*off
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.5"/>`+"\n",
			s.X+2, y, s.X+s.W-2, y, edge)
	}
	buf.WriteString("  </g>\n")
}

func renderLabel(buf *bytes.Buffer, s Spine, ink string) {
	size := FontSize(s)
	label := TruncateLabel(s.Title, s.H, size)
	cx, cy := s.X+s.W/2, s.Y+s.H/2
	fmt.Fprintf(buf, `  <g%s><text class="spine-label" x="%.1f" y="%.1f" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="central" font-family="Georgia, serif" transform="rotate(-90 %.1f %.1f)">%s</text></g>`+"\n",
		transform(s), cx, cy, size, ink, cx, cy, EscapeXML(label))
}

func tooltip(s Spine) string {
	if s.Author == "" {
		return s.Title
	}
	return s.Title + " by " + s.Author
}

// darken blends hex towards black by t in Lab space.
func darken(hex string, t float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return c.BlendLab(colorful.Color{}, t).Clamped().Hex()
}
