// Package render turns a shelf plan into visual output.
//
// # Overview
//
// Rendering happens in three steps:
//
//   - [layout]: compute spine and shelf-board geometry from a plan
//   - [styles]: decide how a spine, its label and a board are drawn
//   - [sink]: write the result as SVG, HTML, JSON, PNG or PDF
//
// The HTML sink works directly from the plan and emits the markup the site's
// bookshelf include uses: one shelf element per row, one book element per
// record carrying its colour class and, for the tilted book, book-tilted.
//
// # Format Conversion
//
// [Rasterize] converts SVG to PNG or PDF with the external rsvg-convert
// tool from librsvg.
//
//	svg := sink.RenderSVG(l, sink.WithStyle(styles.Palette{}))
//	png, err := render.Rasterize(ctx, svg, render.RasterPNG, 2)
//
// [layout]: github.com/matzehuels/bookshelf/pkg/render/layout
// [styles]: github.com/matzehuels/bookshelf/pkg/render/styles
// [sink]: github.com/matzehuels/bookshelf/pkg/render/sink
package render
