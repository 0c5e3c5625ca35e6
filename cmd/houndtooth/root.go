package main

import (
	"github.com/spf13/cobra"

	"houndtooth/internal/log"
	"houndtooth/internal/render"
	"houndtooth/internal/weave"
)

type options struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "houndtooth [key=value ...]",
		Short: "Print a houndtooth weave as character art",
		Long: `Print a houndtooth weave as character art.

Keys: xSize, ySize (grid size), xLength, yLength (tile cycle lengths),
xInterval, yInterval (band widths). Run "houndtooth params" to list
defaults.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Configure(log.Config{Level: opts.logLevel, Output: cmd.ErrOrStderr()})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, _, err := buildGrid(opts, args)
			if err != nil {
				return err
			}
			return render.WriteText(cmd.OutOrStdout(), grid.Raster(), weave.InkGlyph, weave.BlankGlyph)
		},
	}

	fs := root.PersistentFlags()
	fs.StringVar(&opts.configPath, "config", "", "file of key=value lines applied before command line tokens")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error, none)")

	root.AddCommand(
		newParamsCmd(opts),
		newPNGCmd(opts),
		newViewCmd(opts),
		newVersionCmd(),
	)
	return root
}

// buildGrid resolves the parameters for args and generates the grid. Nothing
// is written before both steps succeed.
func buildGrid(opts *options, args []string) (*weave.Grid, weave.Spec, error) {
	spec, err := resolveSpec(opts.configPath, args)
	if err != nil {
		return nil, weave.Spec{}, err
	}
	grid, err := weave.BuildSpec(spec)
	if err != nil {
		return nil, weave.Spec{}, err
	}
	logger := log.WithComponent("weave")
	logger.Debug().
		Int("width", spec.Width).
		Int("height", spec.Height).
		Msg("grid built")
	return grid, spec, nil
}
