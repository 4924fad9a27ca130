package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/bookshelf/pkg/render/layout"
	"github.com/matzehuels/bookshelf/pkg/render/styles"
)

const spineInteractionCSS = `
    .spine { transition: transform 0.2s ease; }
    .spine:hover rect:first-of-type { stroke-width: 2; }
    .spine-label { pointer-events: none; }`

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      styles.Style
	hideLabels bool
	background string
}

func WithStyle(s styles.Style) SVGOption   { return func(r *svgRenderer) { r.style = s } }
func WithoutLabels() SVGOption             { return func(r *svgRenderer) { r.hideLabels = true } }
func WithBackground(fill string) SVGOption { return func(r *svgRenderer) { r.background = fill } }

// RenderSVG draws l as a standalone SVG document.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.FrameWidth, l.FrameHeight, l.FrameWidth, l.FrameHeight)

	r.style.RenderDefs(&buf)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", styles.EscapeXML(r.background))
	}
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", spineInteractionCSS)

	for _, b := range buildBoards(l) {
		r.style.RenderShelf(&buf, b)
	}
	spines := buildSpines(l)
	for _, s := range spines {
		r.style.RenderSpine(&buf, s)
	}
	if !r.hideLabels {
		for _, s := range spines {
			r.style.RenderLabel(&buf, s)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Palette{}}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style == nil {
		r.style = styles.Palette{}
	}
	return r
}

func buildSpines(l layout.Layout) []styles.Spine {
	spines := make([]styles.Spine, 0, len(l.Spines))
	for _, s := range l.Spines {
		rec := s.Record
		spines = append(spines, styles.Spine{
			ID:         fmt.Sprintf("book-%d", rec.Index),
			Title:      rec.Book.Title,
			Author:     rec.Book.Author,
			Color:      rec.Color,
			CoverColor: rec.Book.CoverColor,
			Tilted:     rec.Tilted,
			X:          s.Left,
			Y:          s.Top,
			W:          s.Width(),
			H:          s.Height(),
			Rotation:   s.Rotation,
			PX:         s.PivotX,
			PY:         s.PivotY,
		})
	}
	return spines
}

func buildBoards(l layout.Layout) []styles.Board {
	boards := make([]styles.Board, 0, len(l.Boards))
	for _, b := range l.Boards {
		boards = append(boards, styles.Board{
			Row: b.Row,
			X:   b.Left,
			Y:   b.Top,
			W:   b.Right - b.Left,
			H:   b.Bottom - b.Top,
		})
	}
	return boards
}
