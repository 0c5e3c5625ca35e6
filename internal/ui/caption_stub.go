//go:build !ebiten

package ui

import "houndtooth/internal/core"

// Caption is a no-op placeholder used when the ebiten build tag is absent.
type Caption struct{}

// NewCaption returns nil in the headless build.
func NewCaption(string, core.ParameterSnapshot) *Caption { return nil }

// Toggle is a no-op in headless builds.
func (c *Caption) Toggle() {}

// Draw is a no-op placeholder.
func (c *Caption) Draw(any) {}
