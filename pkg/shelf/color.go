package shelf

import (
	"encoding/json"
	"fmt"
)

// Color is one of the eight spine colour classes.
type Color int

// The spine palette. The order is fixed: pickers index into [Colors].
const (
	ColorDarkGreen Color = iota
	ColorGreen
	ColorBlue
	ColorUmber
	ColorSpringer
	ColorRed
	ColorBrightOrange
	ColorLightBlue
)

// Colors lists every colour class in palette order.
var Colors = [...]Color{
	ColorDarkGreen,
	ColorGreen,
	ColorBlue,
	ColorUmber,
	ColorSpringer,
	ColorRed,
	ColorBrightOrange,
	ColorLightBlue,
}

// NumColors is the size of the palette.
const NumColors = len(Colors)

// String returns the short colour name, e.g. "darkgreen".
func (c Color) String() string {
	switch c {
	case ColorDarkGreen:
		return "darkgreen"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorUmber:
		return "umber"
	case ColorSpringer:
		return "springer"
	case ColorRed:
		return "red"
	case ColorBrightOrange:
		return "brightorange"
	case ColorLightBlue:
		return "lightblue"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Class returns the CSS class the site stylesheet defines for c.
func (c Color) Class() string {
	return "book-" + c.String()
}

// Hex returns the display colour used when rendering outside the site
// stylesheet (SVG, terminal preview).
func (c Color) Hex() string {
	switch c {
	case ColorDarkGreen:
		return "#2f4f3a"
	case ColorGreen:
		return "#5b8c5a"
	case ColorBlue:
		return "#35577d"
	case ColorUmber:
		return "#6e4b32"
	case ColorSpringer:
		return "#8b6f47"
	case ColorRed:
		return "#9e3b35"
	case ColorBrightOrange:
		return "#d9772b"
	case ColorLightBlue:
		return "#7fa7c9"
	}
	return "#808080"
}

// Valid reports whether c is part of the palette.
func (c Color) Valid() bool {
	return c >= ColorDarkGreen && c <= ColorLightBlue
}

// ParseColor accepts either the short name ("umber") or the CSS class
// ("book-umber").
func ParseColor(s string) (Color, error) {
	for _, c := range Colors {
		if s == c.String() || s == c.Class() {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown color class %q", s)
}

// MarshalJSON encodes c as its CSS class.
func (c Color) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid color %d", int(c))
	}
	return json.Marshal(c.Class())
}

// UnmarshalJSON decodes a CSS class or short colour name.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
