//go:build !ebiten

package app

import (
	"errors"

	"houndtooth/internal/core"
)

// ErrNoGUI is returned by Run when the binary was built without the ebiten tag.
var ErrNoGUI = errors.New("the pattern viewer requires building with the 'ebiten' tag; re-run with `go run -tags ebiten ./cmd/houndtooth view`")

// Run always fails in the headless build.
func Run(core.Pattern, core.ParameterSnapshot, *Config) error {
	return ErrNoGUI
}
