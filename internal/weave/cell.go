// Package weave generates the houndtooth weave.
//
// A grid is grown from a single origin Cell. Each cell is derived from its
// upper or left neighbor by a pure advance function; a cell belongs to one
// of two strand orientations (Top) and that orientation decides which axis
// and band interval selects its glyph.
package weave

// Cell is one position in the weave. Cells are values; advancing returns a
// new Cell.
type Cell struct {
	Top   bool // strand orientation, flips when Phase wraps
	Phase int  // index within the current tile cycle
	X, Y  int
}

// Origin returns the cell the grid is grown from.
func Origin() Cell {
	return Cell{}
}

// NextRight advances one step along x. The orientation flips when the new
// phase wraps to zero.
func (p Params) NextRight(c Cell) Cell {
	next := mod(c.Phase+1, p.TileX)
	return Cell{Top: c.Top != (next == 0), Phase: next, X: c.X + 1, Y: c.Y}
}

// NextLeft is the inverse of NextRight: the orientation flips when the
// current phase is zero.
func (p Params) NextLeft(c Cell) Cell {
	next := mod(c.Phase-1, p.TileX)
	return Cell{Top: c.Top != (c.Phase == 0), Phase: next, X: c.X - 1, Y: c.Y}
}

// NextDown advances one step along y. It wraps the phase with TileY but
// flips the same orientation flag, gated on the current phase being zero.
func (p Params) NextDown(c Cell) Cell {
	next := mod(c.Phase-1, p.TileY)
	return Cell{Top: c.Top != (c.Phase == 0), Phase: next, X: c.X, Y: c.Y + 1}
}

// NextUp is the inverse of NextDown.
func (p Params) NextUp(c Cell) Cell {
	next := mod(c.Phase+1, p.TileY)
	return Cell{Top: c.Top != (next == 0), Phase: next, X: c.X, Y: c.Y - 1}
}

// Ink reports whether c is drawn with the ink glyph. The active coordinate
// is X with BandX for top cells and Y with BandY otherwise; bands of ink
// and blank alternate every band cells.
func (p Params) Ink(c Cell) bool {
	coord, band := c.Y, p.BandY
	if c.Top {
		coord, band = c.X, p.BandX
	}
	return mod(coord, 2*band) < band
}

// mod is the floored modulus, so negative coordinates continue the pattern.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
