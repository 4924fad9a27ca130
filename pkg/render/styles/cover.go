package styles

import (
	"bytes"

	bserr "github.com/matzehuels/bookshelf/pkg/errors"
)

// Cover fills each spine with the colour extracted from its cover image.
// Books without a usable cover colour are drawn as in [Palette].
type Cover struct{}

func (Cover) Name() string { return "cover" }

func (Cover) RenderDefs(buf *bytes.Buffer) { Palette{}.RenderDefs(buf) }

func (Cover) RenderShelf(buf *bytes.Buffer, b Board) { renderBoard(buf, b) }

func (Cover) RenderSpine(buf *bytes.Buffer, s Spine) {
	renderSpine(buf, s, coverFill(s))
}

func (Cover) RenderLabel(buf *bytes.Buffer, s Spine) {
	if hex, ok := validCover(s.CoverColor); ok {
		renderLabel(buf, s, HexInk(hex))
		return
	}
	renderLabel(buf, s, ClassInk(s.Color))
}

func coverFill(s Spine) string {
	if hex, ok := validCover(s.CoverColor); ok {
		return hex
	}
	return s.Color.Hex()
}

func validCover(hex string) (string, bool) {
	if hex == "" || bserr.ValidateHexColor(hex) != nil {
		return "", false
	}
	return hex, true
}
