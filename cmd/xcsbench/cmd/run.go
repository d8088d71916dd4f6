package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nuggfr/xcsrc/internal/bench"
	"github.com/nuggfr/xcsrc/internal/config"
	"github.com/nuggfr/xcsrc/internal/mux"
)

// defaultTable mirrors the original harness's per-address-bits defaults:
// binary_tcombs/binary_popsizes/binary_maxtrials and their real-mode
// counterparts, indexed by address width. Index 0 is unused (address
// widths start at 1).
type defaultTable struct {
	combiningPeriods []int
	popSizes         []int
	numTrials        []int
}

var binaryDefaults = defaultTable{
	combiningPeriods: []int{0, 40, 100, 200, 500, 1000},
	popSizes:         []int{0, 100, 400, 800, 1000, 2000},
	numTrials:        []int{0, 1000, 10000, 30000, 50000, 100000},
}

var realDefaults = defaultTable{
	combiningPeriods: []int{0, 40, 100},
	popSizes:         []int{0, 500, 1000},
	numTrials:        []int{0, 1000, 40000},
}

func (t defaultTable) lookup(addressBits int) (combiningPeriod, popSize, numTrials int, err error) {
	if addressBits <= 0 || addressBits >= len(t.numTrials) {
		return 0, 0, 0, errors.Errorf("no default trial table entry for address-bits=%d", addressBits)
	}
	return t.combiningPeriods[addressBits], t.popSizes[addressBits], t.numTrials[addressBits], nil
}

func newRunCmd(logger zerolog.Logger) *cobra.Command {
	var (
		addressBits int
		realInput   bool
		sims        int
		numTrials   int
		popSize     int
		combPeriod  int
		seed        int64
		outDir      string
		cfgPath     string
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the multiplexer benchmark suite",
		RunE: func(c *cobra.Command, args []string) error {
			inputMode := mux.Binary
			table := binaryDefaults
			if realInput {
				inputMode = mux.Real
				table = realDefaults
			}

			defComb, defPop, defTrials, err := table.lookup(addressBits)
			if err != nil {
				return err
			}
			if combPeriod == 0 {
				combPeriod = defComb
			}
			if popSize == 0 {
				popSize = defPop
			}
			if numTrials == 0 {
				numTrials = defTrials
			}

			tuning, err := config.Load(cfgPath)
			if err != nil {
				return errors.Wrap(err, "loading tuning config")
			}
			tuning.MaxPopSize = popSize

			logger.Info().
				Int("address_bits", addressBits).
				Bool("real_input", realInput).
				Int("sims", sims).
				Int("num_trials", numTrials).
				Int("pop_size", popSize).
				Int("combining_period", combPeriod).
				Msg("starting multiplexer suite")

			cfg := bench.Config{
				AddressBits:     addressBits,
				InputMode:       inputMode,
				NumTrials:       numTrials,
				CombiningPeriod: combPeriod,
				Tuning:          tuning,
				Seed:            seed,
				Logger:          logger,
			}

			results, avg, err := bench.RunSuite(c.Context(), cfg, sims)
			if err != nil {
				return errors.Wrap(err, "running suite")
			}

			mpLen := addressBits + (1 << uint(addressBits))
			for i, res := range results {
				perfPath := filepath.Join(outDir, fmt.Sprintf("MP%d_Perf_%03d.csv", mpLen, i+1))
				if err := bench.WritePerformanceCSV(perfPath, res.Performance); err != nil {
					return errors.Wrap(err, "writing per-simulation performance CSV")
				}
				popPath := filepath.Join(outDir, fmt.Sprintf("MP%d_Pop_%03d.csv", mpLen, i+1))
				if err := bench.WritePopulationCSV(popPath, res.Population); err != nil {
					return errors.Wrap(err, "writing per-simulation population CSV")
				}
			}

			avgPath := filepath.Join(outDir, fmt.Sprintf("MP%d_Perf_avr.csv", mpLen))
			if err := bench.WritePerformanceCSV(avgPath, avg); err != nil {
				return errors.Wrap(err, "writing averaged performance CSV")
			}

			logger.Info().Int("simulations", len(results)).Str("out_dir", outDir).Msg("suite completed")
			return nil
		},
	}

	runCmd.Flags().IntVar(&addressBits, "address-bits", 3, "multiplexer address width (max 5 binary, 2 real)")
	runCmd.Flags().BoolVar(&realInput, "real", false, "use real-valued input encoding instead of binary")
	runCmd.Flags().IntVar(&sims, "sims", 20, "number of independent simulations to run")
	runCmd.Flags().IntVar(&numTrials, "trials", 0, "trials per simulation (0 = table default for address-bits)")
	runCmd.Flags().IntVar(&popSize, "pop-size", 0, "numerosity cap (0 = table default for address-bits)")
	runCmd.Flags().IntVar(&combPeriod, "comb-period", 0, "combining period in trials (0 = table default for address-bits)")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "base RNG seed; simulation i uses seed+i")
	runCmd.Flags().StringVar(&outDir, "out", "artifacts", "output directory for performance/population CSVs")
	runCmd.Flags().StringVar(&cfgPath, "config", "", "optional YAML tuning override file")

	return runCmd
}
