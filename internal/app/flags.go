package app

import "github.com/spf13/pflag"

// Config represents the command-line parameters of the viewer window.
type Config struct {
	Title string
	Scale int
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Title: "houndtooth", Scale: 8, TPS: 30}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window updates per second")
}

// WindowTitle returns the title shown for a pattern called name.
func (c *Config) WindowTitle(name string) string {
	return c.Title + " - " + name
}
