package main

import (
	"github.com/spf13/cobra"

	"houndtooth/internal/app"
)

func newViewCmd(opts *options) *cobra.Command {
	cfg := app.NewConfig()
	cmd := &cobra.Command{
		Use:   "view [key=value ...]",
		Short: "Show the weave in a window (requires the ebiten build tag)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, spec, err := buildGrid(opts, args)
			if err != nil {
				return err
			}
			return app.Run(grid, spec.Parameters(), cfg)
		},
	}
	cfg.Bind(cmd.Flags())
	return cmd
}
