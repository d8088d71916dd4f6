package xcs

import (
	"testing"

	"github.com/nuggfr/xcsrc/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmptyActionSpace(t *testing.T) {
	_, err := New(ActionSpace{}, rng.New(1))
	assert.ErrorIs(t, err, ErrEmptyActionSpace)
}

func TestEngineTakeActionThenUpdateGrowsPopulation(t *testing.T) {
	e, err := New(NewActionSpace(0, 1), rng.New(1))
	require.NoError(t, err)

	action, err := e.TakeAction("10", Explore)
	require.NoError(t, err)

	err = e.UpdateWithReward("10", action, 1000)
	require.NoError(t, err)

	assert.Equal(t, 1, e.Trials())
	assert.NotEmpty(t, e.Population(), "covering should have populated the engine after the first trial")
}

func TestEngineRejectsDimensionMismatch(t *testing.T) {
	e, err := New(NewActionSpace(0, 1), rng.New(1))
	require.NoError(t, err)

	_, err = e.TakeAction("10", Explore)
	require.NoError(t, err)

	_, err = e.TakeAction("100", Explore)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEngineRejectsMalformedInput(t *testing.T) {
	e, err := New(NewActionSpace(0, 1), rng.New(1))
	require.NoError(t, err)

	_, err = e.TakeAction("not-a-state;;", Explore)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEngineResetClearsState(t *testing.T) {
	e, err := New(NewActionSpace(0, 1), rng.New(1))
	require.NoError(t, err)

	action, err := e.TakeAction("10", Explore)
	require.NoError(t, err)
	require.NoError(t, e.UpdateWithReward("10", action, 1000))

	e.Reset()

	assert.Equal(t, 0, e.Trials())
	assert.Empty(t, e.Population())

	// A different dimensionality is now accepted again post-reset.
	_, err = e.TakeAction("101", Explore)
	assert.NoError(t, err)
}

func TestEngineCombiningPeriodTriggersSortAndCombine(t *testing.T) {
	e, err := New(NewActionSpace(1), rng.New(1), WithCombiningPeriod(1))
	require.NoError(t, err)

	action, err := e.TakeAction("0", Exploit)
	require.NoError(t, err)
	require.NoError(t, e.UpdateWithReward("0", action, 1000))

	// CombiningPeriod=1 means every trial attempts a combine pass; with a
	// single-classifier population this is a no-op but must not error or
	// leave the population in an inconsistent state.
	assert.Equal(t, 1, e.Trials())
}

func TestEngineSetters(t *testing.T) {
	e, err := New(NewActionSpace(0), rng.New(1))
	require.NoError(t, err)

	e.SetMaxPopSize(500)
	e.SetCombiningPeriod(10)

	assert.Equal(t, 500, e.Tuning().MaxPopSize)
	assert.Equal(t, 10, e.Tuning().CombiningPeriod)
}
