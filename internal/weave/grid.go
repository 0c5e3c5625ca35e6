package weave

import (
	"strings"

	"houndtooth/internal/core"
)

// Glyphs used by Grid.String.
const (
	InkGlyph   = '#'
	BlankGlyph = ' '
)

// Grid is a generated weave. Cells are stored row-major.
type Grid struct {
	w, h   int
	params Params
	cells  []Cell
	raster *core.ByteGrid
}

// Build grows a w*h grid from the origin. Column 0 is filled downwards from
// the origin; every other column starts one step right of the previous
// column's top cell and is filled downwards the same way.
func Build(w, h int, p Params) (*Grid, error) {
	spec := Spec{Width: w, Height: h, Params: p}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	g := &Grid{w: w, h: h, params: p, cells: make([]Cell, w*h)}
	if w > 0 && h > 0 {
		for x := 0; x < w; x++ {
			top := Origin()
			if x > 0 {
				top = p.NextRight(g.cells[x-1])
			}
			g.cells[x] = top
			for y := 1; y < h; y++ {
				g.cells[y*w+x] = p.NextDown(g.cells[(y-1)*w+x])
			}
		}
	}

	g.raster = core.NewByteGrid(w, h)
	for i, c := range g.cells {
		if p.Ink(c) {
			g.raster.Cells()[i] = 1
		}
	}
	return g, nil
}

// BuildSpec builds the grid described by s.
func BuildSpec(s Spec) (*Grid, error) {
	return Build(s.Width, s.Height, s.Params)
}

// Name identifies the pattern.
func (g *Grid) Name() string { return "houndtooth" }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Params returns the parameters the grid was built with.
func (g *Grid) Params() Params { return g.params }

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) Cell { return g.cells[y*g.w+x] }

// Raster returns the ink mask of the grid: 1 for ink, 0 for blank.
func (g *Grid) Raster() *core.ByteGrid { return g.raster }

// Cells exposes the ink mask in row-major order.
func (g *Grid) Cells() []uint8 { return g.raster.Cells() }

// String renders the grid as text, one newline-terminated line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.h * (g.w + 1))
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.raster.At(x, y) != 0 {
				b.WriteByte(InkGlyph)
			} else {
				b.WriteByte(BlankGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

var _ core.Pattern = (*Grid)(nil)
