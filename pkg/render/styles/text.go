package styles

import (
	"bytes"
	"encoding/xml"
	"unicode/utf8"
)

const (
	fontWidthRatio = 0.6
	fontCharWidth  = 0.55
	fontSizeMin    = 7.0
	fontSizeMax    = 14.0
	labelPadding   = 0.8
)

// FontSize returns the label size for a spine. Labels run along the spine,
// so the spine width bounds the glyph height.
func FontSize(s Spine) float64 {
	return max(fontSizeMin, min(fontSizeMax, s.W*fontWidthRatio))
}

// TruncateLabel shortens label to fit a spine of the given height.
func TruncateLabel(label string, height, fontSize float64) string {
	maxChars := max(3, int(height*labelPadding/(fontSize*fontCharWidth)))
	if utf8.RuneCountInString(label) <= maxChars {
		return label
	}
	runes := []rune(label)
	return string(runes[:maxChars-2]) + ".."
}

func EscapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
