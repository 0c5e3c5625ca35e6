package render

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"

	"houndtooth/internal/core"
)

// ErrEmptyImage is returned when asked to encode a grid without cells.
var ErrEmptyImage = errors.New("render: grid has no cells")

// Image draws g with every cell scaled to a scale*scale block.
func Image(g *core.ByteGrid, ink, blank color.Color, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	src := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	fillBinaryRGBA(src.Pix, g.Cells(), ink, blank)
	if scale == 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, g.W*scale, g.H*scale))
	for y := 0; y < dst.Rect.Dy(); y++ {
		for x := 0; x < dst.Rect.Dx(); x++ {
			si := src.PixOffset(x/scale, y/scale)
			di := dst.PixOffset(x, y)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return dst
}

// WritePNG encodes g as a PNG image.
func WritePNG(w io.Writer, g *core.ByteGrid, ink, blank color.Color, scale int) error {
	if g.Size().Empty() {
		return ErrEmptyImage
	}
	return png.Encode(w, Image(g, ink, blank, scale))
}
