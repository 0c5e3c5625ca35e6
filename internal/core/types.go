package core

// Size describes the dimensions of a pattern grid.
type Size struct {
	W int
	H int
}

// Empty reports whether the size holds no cells.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Pattern is a fully generated grid that can be displayed. Cells returns one
// value per cell in row-major order: 1 for ink, 0 for blank.
type Pattern interface {
	Name() string
	Size() Size
	Cells() []uint8
}
