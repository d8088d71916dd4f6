// Command xcsbench drives the xcs engine against the multiplexer benchmark
// and exposes a single-shot classification helper via a Cobra command tree.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/nuggfr/xcsrc/cmd/xcsbench/cmd"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := cmd.NewRootCmd(logger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
