package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newParamsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "params [key=value ...]",
		Short: "List the weave parameters with their resolved values",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := resolveSpec(opts.configPath, args)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tVALUE\tDESCRIPTION")
			for _, g := range spec.Parameters().Groups {
				for _, p := range g.Params {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Key, p.Value, p.Description)
				}
			}
			return tw.Flush()
		},
	}
}
