package render

import (
	"bytes"
	"io"

	"houndtooth/internal/core"
)

// WriteText writes g row by row, one newline-terminated line per row, using
// ink for set cells and blank for the rest. The frame is assembled in memory
// and written with a single call.
func WriteText(w io.Writer, g *core.ByteGrid, ink, blank byte) error {
	var buf bytes.Buffer
	buf.Grow(g.H * (g.W + 1))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) != 0 {
				buf.WriteByte(ink)
			} else {
				buf.WriteByte(blank)
			}
		}
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}
