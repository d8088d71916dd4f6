// Package bench drives an xcs.Engine through repeated trials against a
// mux.Instance, recording a sliding-window performance row every
// combining-period trials and writing CSV output.
package bench

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/nuggfr/xcsrc/internal/mux"
	"github.com/nuggfr/xcsrc/internal/rng"
	"github.com/nuggfr/xcsrc/internal/xcs"
)

// PerformanceRow is one sliding-window sample: the sampling trial, the
// correctness rate over that window's Exploit trials, the current
// macro-classifier count, and the number of classifiers with experience > 0.
type PerformanceRow struct {
	Trial            int
	CorrectnessRate  float64
	PopulationSize   int
	ExperiencedCount int
}

// SimResult is the outcome of one RunSimulation call: the performance
// window series and the final population snapshot.
type SimResult struct {
	Performance []PerformanceRow
	Population  []xcs.Classifier
}

// Config parameterises one simulation run.
type Config struct {
	AddressBits     int
	InputMode       mux.InputMode
	NumTrials       int
	CombiningPeriod int
	Tuning          xcs.Tuning
	Seed            int64
	Logger          zerolog.Logger
}

// RunSimulation drives a fresh xcs.Engine through cfg.NumTrials trials
// against a multiplexer instance sized by cfg.AddressBits/InputMode,
// alternating Explore (even trial number) and Exploit (odd trial number)
// exactly as the original harness does, and sampling a PerformanceRow
// every cfg.CombiningPeriod trials.
func RunSimulation(ctx context.Context, cfg Config) (SimResult, error) {
	if cfg.CombiningPeriod <= 0 {
		return SimResult{}, errors.New("bench: CombiningPeriod must be positive for windowed sampling")
	}

	inst := mux.NewInstance(cfg.AddressBits, cfg.InputMode)
	src := rng.New(cfg.Seed)

	tuning := cfg.Tuning
	tuning.CombiningPeriod = cfg.CombiningPeriod

	engine, err := xcs.New(xcs.NewActionSpace(0, 1), src, xcs.WithTuning(tuning))
	if err != nil {
		return SimResult{}, errors.Wrap(err, "bench: constructing engine")
	}

	var result SimResult
	correct := 0

	for trial := 1; trial <= cfg.NumTrials; trial++ {
		if err := ctx.Err(); err != nil {
			return SimResult{}, errors.Wrap(err, "bench: simulation cancelled")
		}

		mode := xcs.Exploit
		if trial%2 == 0 {
			mode = xcs.Explore
		}

		state, bits := inst.RandomState(src)

		action, err := engine.TakeAction(state, mode)
		if err != nil {
			return SimResult{}, errors.Wrapf(err, "bench: trial %d: TakeAction", trial)
		}

		answer, err := inst.CorrectAction(bits)
		if err != nil {
			return SimResult{}, errors.Wrapf(err, "bench: trial %d: CorrectAction", trial)
		}

		reward := 0.0
		if action == answer {
			reward = xcs.RewardMax
		}

		if err := engine.UpdateWithReward(state, action, reward); err != nil {
			return SimResult{}, errors.Wrapf(err, "bench: trial %d: UpdateWithReward", trial)
		}

		if mode == xcs.Exploit && reward == xcs.RewardMax {
			correct++
		}

		if trial%cfg.CombiningPeriod == 0 {
			pop := engine.Population()
			row := PerformanceRow{
				Trial:            trial,
				CorrectnessRate:  float64(correct) / float64(cfg.CombiningPeriod/2),
				PopulationSize:   len(pop),
				ExperiencedCount: countExperienced(pop),
			}
			result.Performance = append(result.Performance, row)
			cfg.Logger.Info().
				Int("trial", trial).
				Float64("correctness_rate", row.CorrectnessRate).
				Int("pop_size", row.PopulationSize).
				Msg("performance window")
			correct = 0
		}
	}

	result.Population = engine.Population()
	return result, nil
}

// RunSuite repeats RunSimulation nSims times (each with a distinct
// derived seed) and returns every per-simulation result alongside the
// trial-aligned average across all of them.
func RunSuite(ctx context.Context, cfg Config, nSims int) ([]SimResult, []PerformanceRow, error) {
	if nSims <= 0 {
		return nil, nil, errors.New("bench: nSims must be positive")
	}

	results := make([]SimResult, 0, nSims)
	for i := 0; i < nSims; i++ {
		runCfg := cfg
		runCfg.Seed = cfg.Seed + int64(i)

		start := time.Now()
		res, err := RunSimulation(ctx, runCfg)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "bench: simulation %d", i)
		}
		cfg.Logger.Info().Int("sim", i+1).Dur("elapsed", time.Since(start)).Msg("simulation completed")

		results = append(results, res)
	}

	avg, err := AveragePerformance(results)
	if err != nil {
		return results, nil, err
	}

	summary := FinalSummary(results)
	cfg.Logger.Info().
		Float64("final_correctness_mean", summary.CorrectnessRate.Mean).
		Float64("final_correctness_std", summary.CorrectnessRate.Std).
		Float64("final_pop_size_mean", summary.PopulationSize.Mean).
		Msg("suite summary")

	return results, avg, nil
}

// SuiteSummary reports cross-simulation spread at the final performance
// window: is the learner converging to the same correctness rate and
// population size run over run, or is variance across simulations high?
type SuiteSummary struct {
	CorrectnessRate FloatStats
	PopulationSize  IntStats
}

// FinalSummary computes SuiteSummary over the last performance row of
// every simulation in results. Simulations with no rows are skipped.
func FinalSummary(results []SimResult) SuiteSummary {
	rates := make([]float64, 0, len(results))
	sizes := make([]int, 0, len(results))
	for _, res := range results {
		if len(res.Performance) == 0 {
			continue
		}
		last := res.Performance[len(res.Performance)-1]
		rates = append(rates, last.CorrectnessRate)
		sizes = append(sizes, last.PopulationSize)
	}
	return SuiteSummary{
		CorrectnessRate: CalcFloatStats(rates),
		PopulationSize:  CalcIntStats(sizes),
	}
}

// AveragePerformance averages the per-window rows across every simulation
// in results, aligned by row index (every simulation runs the same number
// of trials with the same combining period, so the windows line up).
func AveragePerformance(results []SimResult) ([]PerformanceRow, error) {
	if len(results) == 0 {
		return nil, errors.New("bench: no results to average")
	}
	nRows := len(results[0].Performance)
	if nRows == 0 {
		return nil, errors.New("bench: simulations produced no performance rows")
	}

	avg := make([]PerformanceRow, nRows)
	for rowIdx := 0; rowIdx < nRows; rowIdx++ {
		var rate, popSize, expCount float64
		for _, res := range results {
			row := res.Performance[rowIdx]
			rate += row.CorrectnessRate
			popSize += float64(row.PopulationSize)
			expCount += float64(row.ExperiencedCount)
		}
		n := float64(len(results))
		avg[rowIdx] = PerformanceRow{
			Trial:            results[0].Performance[rowIdx].Trial,
			CorrectnessRate:  rate / n,
			PopulationSize:   int(popSize / n),
			ExperiencedCount: int(expCount / n),
		}
	}
	return avg, nil
}

func countExperienced(pop []xcs.Classifier) int {
	n := 0
	for _, cl := range pop {
		if cl.Experience > 0 {
			n++
		}
	}
	return n
}
