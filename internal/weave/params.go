package weave

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"houndtooth/internal/config"
	"houndtooth/internal/core"
)

// ErrInvalidParameter reports a parameter the generator cannot work with.
var ErrInvalidParameter = errors.New("invalid parameter")

// Parameter keys understood by FromStore.
const (
	KeyWidth     = "xSize"
	KeyHeight    = "ySize"
	KeyTileX     = "xLength"
	KeyTileY     = "yLength"
	KeyIntervalX = "xInterval"
	KeyIntervalY = "yInterval"
)

// MaxCells bounds the number of cells a single grid may hold.
const MaxCells = 1 << 24

// Params holds the tiling and banding parameters of the weave.
type Params struct {
	TileX, TileY int
	BandX, BandY int
}

// Spec is a fully resolved request: grid dimensions plus weave parameters.
type Spec struct {
	Width, Height int
	Params        Params
}

// DefaultSpec returns the standard 50x50 weave.
func DefaultSpec() Spec {
	return Spec{
		Width:  50,
		Height: 50,
		Params: Params{TileX: 2, TileY: 2, BandX: 4, BandY: 4},
	}
}

// Validate checks that every length and interval is positive.
func (p Params) Validate() error {
	for _, f := range []struct {
		key string
		v   int
	}{
		{KeyTileX, p.TileX},
		{KeyTileY, p.TileY},
		{KeyIntervalX, p.BandX},
		{KeyIntervalY, p.BandY},
	} {
		if f.v <= 0 {
			return fmt.Errorf("weave: %s=%d must be positive: %w", f.key, f.v, ErrInvalidParameter)
		}
	}
	return nil
}

// Validate checks the parameters and rejects negative dimensions as well as
// grids larger than MaxCells. Zero dimensions are valid and produce an empty
// grid.
func (s Spec) Validate() error {
	if s.Width < 0 {
		return fmt.Errorf("weave: %s=%d must not be negative: %w", KeyWidth, s.Width, ErrInvalidParameter)
	}
	if s.Height < 0 {
		return fmt.Errorf("weave: %s=%d must not be negative: %w", KeyHeight, s.Height, ErrInvalidParameter)
	}
	if s.Height != 0 && (s.Width > math.MaxInt/s.Height || s.Width*s.Height > MaxCells) {
		return fmt.Errorf("weave: %s=%d x %s=%d exceeds %d cells: %w",
			KeyWidth, s.Width, KeyHeight, s.Height, MaxCells, ErrInvalidParameter)
	}
	return s.Params.Validate()
}

// Parameters describes the values of s.
func (s Spec) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name:    "Grid",
			Summary: "Output dimensions in characters.",
			Params: []core.Parameter{
				intParam(KeyWidth, "Width", s.Width, "grid width"),
				intParam(KeyHeight, "Height", s.Height, "grid height"),
			},
		},
		{
			Name:    "Tiling",
			Summary: "Cycle lengths after which the strand orientation may flip.",
			Params: []core.Parameter{
				intParam(KeyTileX, "Tile length X", s.Params.TileX, "horizontal tile cycle length"),
				intParam(KeyTileY, "Tile length Y", s.Params.TileY, "vertical tile cycle length"),
			},
		},
		{
			Name:    "Banding",
			Summary: "Stripe widths along the active axis.",
			Params: []core.Parameter{
				intParam(KeyIntervalX, "Band interval X", s.Params.BandX, "horizontal band width"),
				intParam(KeyIntervalY, "Band interval Y", s.Params.BandY, "vertical band width"),
			},
		},
	}}
}

// Parameters describes every key with its default value.
func Parameters() core.ParameterSnapshot {
	return DefaultSpec().Parameters()
}

// DefaultEntries returns the defaults as key=value entries, ready to be
// parsed before any user overrides.
func DefaultEntries() []string {
	return Parameters().Entries()
}

// FromStore resolves a Spec from the integer mappings in s. Every key is
// required; load DefaultEntries first to make them optional for users.
func FromStore(s *config.Store) (Spec, error) {
	var spec Spec
	for _, f := range []struct {
		key string
		dst *int
	}{
		{KeyWidth, &spec.Width},
		{KeyHeight, &spec.Height},
		{KeyTileX, &spec.Params.TileX},
		{KeyTileY, &spec.Params.TileY},
		{KeyIntervalX, &spec.Params.BandX},
		{KeyIntervalY, &spec.Params.BandY},
	} {
		v, err := s.Int(f.key)
		if err != nil {
			return Spec{}, fmt.Errorf("weave: required parameter: %w", err)
		}
		*f.dst = v
	}
	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

func intParam(key, label string, value int, desc string) core.Parameter {
	return core.Parameter{
		Key:         key,
		Label:       label,
		Type:        core.ParamTypeInt,
		Value:       strconv.Itoa(value),
		Description: desc,
	}
}
