package render

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	bserr "github.com/matzehuels/bookshelf/pkg/errors"
)

// rsvgBinary is the librsvg command-line converter.
const rsvgBinary = "rsvg-convert"

// Raster formats rsvg-convert can produce from an SVG.
const (
	RasterPNG = "png"
	RasterPDF = "pdf"
)

// Available reports whether rsvg-convert is on PATH.
func Available() bool {
	_, err := exec.LookPath(rsvgBinary)
	return err == nil
}

// Rasterize converts svg to format ("png" or "pdf") with rsvg-convert.
// scale multiplies the output resolution and is ignored for PDF; values
// <= 0 mean 1. The process is killed when ctx ends.
func Rasterize(ctx context.Context, svg []byte, format string, scale float64) ([]byte, error) {
	args := []string{"-f", format}
	switch format {
	case RasterPNG:
		if scale <= 0 {
			scale = 1
		}
		args = append(args, "-z", strconv.FormatFloat(scale, 'f', 2, 64))
	case RasterPDF:
	default:
		return nil, bserr.New(bserr.ErrCodeInvalidFormat, "cannot rasterize to %q", format)
	}
	if !Available() {
		return nil, bserr.New(bserr.ErrCodeUnsupported,
			"%s output needs rsvg-convert (brew install librsvg, or apt install librsvg2-bin)", format)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, rsvgBinary, args...)
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, bserr.Wrap(bserr.ErrCodeInternal, err, "%s: %s", rsvgBinary, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
