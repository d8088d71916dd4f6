package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nuggfr/xcsrc/internal/config"
	"github.com/nuggfr/xcsrc/internal/rng"
	"github.com/nuggfr/xcsrc/internal/xcs"
)

func newClassifyCmd(logger zerolog.Logger) *cobra.Command {
	var (
		state   string
		actions []int
		explore bool
		seed    int64
		cfgPath string
	)

	classifyCmd := &cobra.Command{
		Use:   "classify",
		Short: "feed one state through a fresh engine and print the chosen action",
		RunE: func(c *cobra.Command, args []string) error {
			if state == "" {
				line, err := readStdinLine(c.InOrStdin())
				if err != nil {
					return errors.Wrap(err, "reading state from stdin")
				}
				state = line
			}
			if state == "" {
				return errors.New("classify: no state given (pass --state or pipe one line on stdin)")
			}

			as := xcs.NewActionSpace(toActions(actions)...)

			tuning, err := config.Load(cfgPath)
			if err != nil {
				return errors.Wrap(err, "loading tuning config")
			}

			engine, err := xcs.New(as, rng.New(seed), xcs.WithTuning(tuning))
			if err != nil {
				return errors.Wrap(err, "constructing engine")
			}

			mode := xcs.Exploit
			if explore {
				mode = xcs.Explore
			}

			action, err := engine.TakeAction(state, mode)
			if err != nil {
				return errors.Wrap(err, "classifying state")
			}

			fmt.Fprintf(c.OutOrStdout(), "state: %s\naction: %d\n\nmatching classifiers:\n", state, action)
			for _, cl := range engine.Population() {
				fmt.Fprintln(c.OutOrStdout(), cl.String())
			}
			return nil
		},
	}

	classifyCmd.Flags().StringVar(&state, "state", "", "state to classify (binary bitstring or ';'-separated reals); reads stdin if empty")
	classifyCmd.Flags().IntSliceVar(&actions, "actions", []int{0, 1}, "action space, comma-separated")
	classifyCmd.Flags().BoolVar(&explore, "explore", false, "use Explore mode instead of Exploit")
	classifyCmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for the fresh engine")
	classifyCmd.Flags().StringVar(&cfgPath, "config", "", "optional YAML tuning override file")

	return classifyCmd
}

func readStdinLine(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	return "", scanner.Err()
}

func toActions(ints []int) []xcs.Action {
	out := make([]xcs.Action, len(ints))
	for i, v := range ints {
		out[i] = xcs.Action(v)
	}
	return out
}
