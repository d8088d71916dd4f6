package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the xcsbench command tree: `run` drives the
// multiplexer suite, `classify` feeds a single state through a fresh
// engine for manual inspection.
func NewRootCmd(logger zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "xcsbench",
		Short:         "xcsbench runs and inspects the XCS-RC learning classifier system",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))
	root.AddCommand(newClassifyCmd(logger))

	return root
}
