// Command houndtooth prints a houndtooth weave as character art.
//
// Parameters are given as key=value tokens:
//
//	houndtooth xSize=80 ySize=24 xInterval=3
//
// Defaults are applied first, then the lines of an optional --config file,
// then the command line tokens.
package main

import (
	"os"

	"houndtooth/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger := log.WithComponent("cli")
		logger.Error().Err(err).Msg("houndtooth failed")
		os.Exit(1)
	}
}
