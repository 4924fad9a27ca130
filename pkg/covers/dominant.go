package covers

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

const (
	// SampleSize is the edge length images are scaled to before counting.
	SampleSize = 80

	// TopColors is how many of the most frequent buckets are scored.
	TopColors = 8

	bucketWidth   = 32
	minChannelSum = 80
	maxChannelSum = 660
)

type bucket struct{ r, g, b uint8 }

func quantize(c uint8) uint8 { return c/bucketWidth*bucketWidth + bucketWidth/2 }

func (b bucket) sum() int { return int(b.r) + int(b.g) + int(b.b) }

func (b bucket) color() colorful.Color {
	return colorful.Color{R: float64(b.r) / 255, G: float64(b.g) / 255, B: float64(b.b) / 255}
}

// Score rates how well c works as a spine colour. Higher is better.
func Score(c colorful.Color) float64 {
	_, s, v := c.Hsv()
	bright := 1 - math.Abs(v-0.45)*2
	return s*0.7 + math.Max(bright, 0)*0.3
}

// Dominant returns the most spine-friendly frequent colour of img.
func Dominant(img image.Image) colorful.Color {
	sample := image.NewRGBA(image.Rect(0, 0, SampleSize, SampleSize))
	draw.BiLinear.Scale(sample, sample.Bounds(), img, img.Bounds(), draw.Src, nil)

	counts := make(map[bucket]int)
	var all, kept []bucket
	for y := range SampleSize {
		for x := range SampleSize {
			c := color.RGBAModel.Convert(sample.At(x, y)).(color.RGBA)
			b := bucket{quantize(c.R), quantize(c.G), quantize(c.B)}
			all = append(all, b)
			if s := b.sum(); s > minChannelSum && s < maxChannelSum {
				kept = append(kept, b)
			}
		}
	}
	if len(kept) == 0 {
		kept = all
	}

	var seen []bucket
	for _, b := range kept {
		if counts[b] == 0 {
			seen = append(seen, b)
		}
		counts[b]++
	}
	sort.SliceStable(seen, func(i, j int) bool { return counts[seen[i]] > counts[seen[j]] })
	if len(seen) > TopColors {
		seen = seen[:TopColors]
	}

	best := seen[0]
	bestScore := Score(best.color())
	for _, b := range seen[1:] {
		if s := Score(b.color()); s > bestScore {
			best, bestScore = b, s
		}
	}
	return best.color()
}

// Hex formats c as a lowercase #rrggbb string.
func Hex(c colorful.Color) string {
	return c.Clamped().Hex()
}
