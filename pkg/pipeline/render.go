package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/bookshelf/pkg/observability"
	"github.com/matzehuels/bookshelf/pkg/render/layout"
	"github.com/matzehuels/bookshelf/pkg/render/sink"
	"github.com/matzehuels/bookshelf/pkg/render/styles"
	"github.com/matzehuels/bookshelf/pkg/shelf"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, records []shelf.Record, l layout.Layout, opts Options, meta sink.Meta) (map[string][]byte, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := render(ctx, records, l, opts, meta)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func render(ctx context.Context, records []shelf.Record, l layout.Layout, opts Options, meta sink.Meta) (map[string][]byte, error) {
	style, err := styles.Lookup(opts.Style)
	if err != nil {
		return nil, err
	}
	svgOpts := []sink.SVGOption{sink.WithStyle(style)}

	var htmlOpts []sink.HTMLOption
	if opts.CoverColors {
		htmlOpts = append(htmlOpts, sink.WithCoverColors())
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatHTML:
			data, err = sink.RenderHTML(records, htmlOpts...)
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(records, meta)
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, l, sink.DefaultPNGScale, svgOpts...)
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, l, svgOpts...)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
