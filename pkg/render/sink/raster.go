package sink

import (
	"context"

	"github.com/matzehuels/bookshelf/pkg/render"
	"github.com/matzehuels/bookshelf/pkg/render/layout"
)

// DefaultPNGScale renders PNGs at twice the layout size.
const DefaultPNGScale = 2.0

// RenderPNG draws the layout as SVG and rasterizes it with rsvg-convert.
// A scale <= 0 means DefaultPNGScale.
func RenderPNG(ctx context.Context, l layout.Layout, scale float64, opts ...SVGOption) ([]byte, error) {
	if scale <= 0 {
		scale = DefaultPNGScale
	}
	return render.Rasterize(ctx, RenderSVG(l, opts...), render.RasterPNG, scale)
}

// RenderPDF draws the layout as SVG and converts it to a one-page PDF.
func RenderPDF(ctx context.Context, l layout.Layout, opts ...SVGOption) ([]byte, error) {
	return render.Rasterize(ctx, RenderSVG(l, opts...), render.RasterPDF, 0)
}
