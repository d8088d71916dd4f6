package bench

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuggfr/xcsrc/internal/mux"
	"github.com/nuggfr/xcsrc/internal/xcs"
)

func testConfig() Config {
	return Config{
		AddressBits:     1,
		InputMode:       mux.Binary,
		NumTrials:       20,
		CombiningPeriod: 4,
		Tuning:          xcs.DefaultTuning(),
		Seed:            1,
		Logger:          zerolog.Nop(),
	}
}

func TestRunSimulationProducesWindowedPerformance(t *testing.T) {
	res, err := RunSimulation(context.Background(), testConfig())
	require.NoError(t, err)

	assert.Len(t, res.Performance, 5) // 20 trials / 4-trial window
	assert.NotEmpty(t, res.Population)
	for _, row := range res.Performance {
		assert.GreaterOrEqual(t, row.CorrectnessRate, 0.0)
		assert.LessOrEqual(t, row.CorrectnessRate, 1.0)
	}
}

func TestRunSimulationRejectsNonPositiveCombiningPeriod(t *testing.T) {
	cfg := testConfig()
	cfg.CombiningPeriod = 0
	_, err := RunSimulation(context.Background(), cfg)
	assert.Error(t, err)
}

func TestRunSimulationRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunSimulation(ctx, testConfig())
	assert.Error(t, err)
}

func TestRunSuiteAverages(t *testing.T) {
	results, avg, err := RunSuite(context.Background(), testConfig(), 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Len(t, avg, 5)
	for _, row := range avg {
		assert.GreaterOrEqual(t, row.CorrectnessRate, 0.0)
	}
}

func TestAveragePerformanceRejectsEmptyInput(t *testing.T) {
	_, err := AveragePerformance(nil)
	assert.Error(t, err)
}

func TestFinalSummarySkipsEmptyResults(t *testing.T) {
	results := []SimResult{
		{Performance: []PerformanceRow{{Trial: 4, CorrectnessRate: 1, PopulationSize: 10}}},
		{Performance: nil},
		{Performance: []PerformanceRow{{Trial: 4, CorrectnessRate: 0, PopulationSize: 20}}},
	}
	summary := FinalSummary(results)
	assert.Equal(t, 2, summary.CorrectnessRate.N)
	assert.InDelta(t, 0.5, summary.CorrectnessRate.Mean, 1e-9)
}

func TestWritePerformanceCSVRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "perf.csv")

	rows := []PerformanceRow{{Trial: 4, CorrectnessRate: 0.5, PopulationSize: 10, ExperiencedCount: 3}}
	require.NoError(t, WritePerformanceCSV(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sep=;")
	assert.Contains(t, string(data), "4;0.500000;10;3")
}

func TestWritePopulationCSVOrdersExperiencedFirst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pop.csv")

	unseen := xcs.Classifier{Rule: xcs.Rule{Condition: xcs.Condition{0, 0}, Action: 1}}
	seen := unseen
	seen.Experience = 5

	require.NoError(t, WritePopulationCSV(path, []xcs.Classifier{unseen, seen}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "No;Cond;Act;Pred;Fit;PredErr;Num;Exp")
	assert.Contains(t, string(data), "1;0;1;0.000;0.000;0.000;0;5", "the experienced classifier is written first")
	assert.Contains(t, string(data), "2;0;1;0.000;0.000;0.000;0;0", "the inexperienced classifier is written after it")
}
