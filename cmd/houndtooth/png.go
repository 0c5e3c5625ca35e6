package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/spf13/cobra"

	"houndtooth/internal/log"
	"houndtooth/internal/render"
)

func newPNGCmd(opts *options) *cobra.Command {
	var (
		output string
		scale  int
	)
	cmd := &cobra.Command{
		Use:   "png -o FILE [key=value ...]",
		Short: "Write the weave as a PNG image",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale < 1 {
				return fmt.Errorf("--scale=%d must be positive", scale)
			}
			grid, _, err := buildGrid(opts, args)
			if err != nil {
				return err
			}
			if output == "-" {
				return render.WritePNG(cmd.OutOrStdout(), grid.Raster(), color.Black, color.White, scale)
			}
			return writeFile(output, func(w io.Writer) error {
				return render.WritePNG(w, grid.Raster(), color.Black, color.White, scale)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout")
	cmd.Flags().IntVar(&scale, "scale", 4, "pixels per cell")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// writeFile writes to path, removing the file again when write fails.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Join(err, os.Remove(path))
	}
	logger := log.WithComponent("png")
	logger.Info().Str("path", path).Msg("image written")
	return nil
}
