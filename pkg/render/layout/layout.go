package layout

import (
	"hash/fnv"
	"math"

	"github.com/matzehuels/bookshelf/pkg/shelf"
)

// Dims holds the measurements a layout is built from.
type Dims struct {
	SpineWidth     float64
	MinSpineHeight float64
	MaxSpineHeight float64
	TiltAngle      float64 // degrees, clockwise
	Gap            float64 // between spines
	BoardHeight    float64
	RowGap         float64 // between a board and the next row's tallest spine
	Margin         float64
	MinWidth       float64 // frame width floor
}

// DefaultDims returns the measurements used when none are configured.
func DefaultDims() Dims {
	return Dims{
		SpineWidth:     28,
		MinSpineHeight: 110,
		MaxSpineHeight: 150,
		TiltAngle:      12,
		Gap:            2,
		BoardHeight:    10,
		RowGap:         24,
		Margin:         20,
	}
}

// Normalize fills zero fields from [DefaultDims] and orders the height bounds.
func (d Dims) Normalize() Dims {
	def := DefaultDims()
	if d.SpineWidth <= 0 {
		d.SpineWidth = def.SpineWidth
	}
	if d.MinSpineHeight <= 0 {
		d.MinSpineHeight = def.MinSpineHeight
	}
	if d.MaxSpineHeight <= 0 {
		d.MaxSpineHeight = def.MaxSpineHeight
	}
	if d.MinSpineHeight > d.MaxSpineHeight {
		d.MinSpineHeight, d.MaxSpineHeight = d.MaxSpineHeight, d.MinSpineHeight
	}
	if d.BoardHeight <= 0 {
		d.BoardHeight = def.BoardHeight
	}
	if d.Margin < 0 {
		d.Margin = 0
	}
	d.TiltAngle = math.Mod(d.TiltAngle, 90)
	return d
}

// Spine is one placed book. Left/Right/Top/Bottom describe the upright
// rectangle; Rotation is applied about (PivotX, PivotY).
type Spine struct {
	Record      shelf.Record
	Left, Right float64
	Top, Bottom float64
	Rotation    float64
	PivotX      float64
	PivotY      float64
}

// Width returns the horizontal span of the spine.
func (s Spine) Width() float64 { return s.Right - s.Left }

// Height returns the vertical span of the spine.
func (s Spine) Height() float64 { return s.Bottom - s.Top }

// CenterX returns the horizontal center point of the spine.
func (s Spine) CenterX() float64 { return (s.Left + s.Right) / 2 }

// CenterY returns the vertical center point of the spine.
func (s Spine) CenterY() float64 { return (s.Top + s.Bottom) / 2 }

// Board is the shelf plank a row of spines stands on.
type Board struct {
	Row         int
	Left, Right float64
	Top, Bottom float64
}

// Layout is the computed geometry of a whole bookshelf.
type Layout struct {
	FrameWidth  float64
	FrameHeight float64
	Dims        Dims
	Spines      []Spine // plan order
	Boards      []Board // one per row
}

// Rows returns the number of shelves.
func (l Layout) Rows() int { return len(l.Boards) }

// SpineHeight returns the deterministic height for a title within
// [d.MinSpineHeight, d.MaxSpineHeight].
func SpineHeight(title string, d Dims) float64 {
	span := d.MaxSpineHeight - d.MinSpineHeight
	if span <= 0 {
		return d.MaxSpineHeight
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(title))
	frac := float64(h.Sum32()%1000) / 999
	return math.Round(d.MinSpineHeight + frac*span)
}

// Build places records on shelves. Records must come from a single plan, in
// plan order.
func Build(records []shelf.Record, d Dims) Layout {
	d = d.Normalize()
	rows := shelf.Rows(records)
	l := Layout{Dims: d, Spines: make([]Spine, 0, len(records))}

	rowPitch := d.MaxSpineHeight + d.BoardHeight + d.RowGap
	lean := math.Sin(d.TiltAngle * math.Pi / 180)
	widest := 0.0

	for r, row := range rows {
		baseline := d.Margin + float64(r)*rowPitch + d.MaxSpineHeight
		x := d.Margin
		for i, rec := range row {
			h := SpineHeight(rec.Book.Title, d)
			s := Spine{
				Record: rec,
				Left:   x,
				Right:  x + d.SpineWidth,
				Top:    baseline - h,
				Bottom: baseline,
			}
			x = s.Right
			if rec.Tilted {
				s.Rotation = d.TiltAngle
				s.PivotX, s.PivotY = s.Right, s.Bottom
				x += h * lean
			}
			if i < len(row)-1 {
				x += d.Gap
			}
			l.Spines = append(l.Spines, s)
		}
		widest = max(widest, x-d.Margin)
		l.Boards = append(l.Boards, Board{
			Row:    r,
			Top:    baseline,
			Bottom: baseline + d.BoardHeight,
		})
	}

	l.FrameWidth = max(widest+2*d.Margin, d.MinWidth)
	for i := range l.Boards {
		l.Boards[i].Left = d.Margin
		l.Boards[i].Right = l.FrameWidth - d.Margin
	}
	if n := len(rows); n > 0 {
		l.FrameHeight = 2*d.Margin + float64(n)*rowPitch - d.RowGap
	} else {
		l.FrameHeight = 2 * d.Margin
	}
	return l
}
