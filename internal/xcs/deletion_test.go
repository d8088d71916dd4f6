package xcs

import (
	"testing"

	"github.com/nuggfr/xcsrc/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteFromPopulationEmptyPopulation(t *testing.T) {
	pop := NewPopulation()
	deleted := DeleteFromPopulation(pop, []float64{0}, DefaultTuning(), rng.New(1))
	assert.False(t, deleted)
}

func TestDeleteFromPopulationDecrementsNumerosity(t *testing.T) {
	pop := NewPopulation()
	cl := newClassifier(Rule{Condition: Condition{9, 9}, Action: 1})
	cl.Numerosity = 2
	pop.Append(cl)

	src := rng.NewFixed([]float64{0}, nil, nil, nil)
	deleted := DeleteFromPopulation(pop, []float64{0}, DefaultTuning(), src)

	require.True(t, deleted)
	assert.Equal(t, 1, cl.Numerosity)
	assert.Equal(t, 1, pop.Len(), "population record survives while numerosity remains positive")
}

func TestDeleteFromPopulationRemovesAtZeroNumerosity(t *testing.T) {
	pop := NewPopulation()
	cl := newClassifier(Rule{Condition: Condition{9, 9}, Action: 1})
	pop.Append(cl)

	src := rng.NewFixed([]float64{0}, nil, nil, nil)
	deleted := DeleteFromPopulation(pop, []float64{0}, DefaultTuning(), src)

	require.True(t, deleted)
	assert.Equal(t, 0, pop.Len())
}

func TestDeleteFromPopulationAvoidsMatchingClassifierWhenPossible(t *testing.T) {
	pop := NewPopulation()
	matching := newClassifier(Rule{Condition: Condition{0, 1}, Action: 1})
	other := newClassifier(Rule{Condition: Condition{9, 9}, Action: 2})
	pop.Append(matching)
	pop.Append(other)

	src := rng.NewFixed([]float64{0}, nil, nil, nil)
	DeleteFromPopulation(pop, []float64{0.5}, DefaultTuning(), src)

	assert.Equal(t, 1, matching.Numerosity, "the classifier matching the current input should be steered away from")
	assert.Equal(t, 0, other.Numerosity)
}

func TestDeleteFromPopulationFallsBackToOriginalSelectionWhenAllMatch(t *testing.T) {
	pop := NewPopulation()
	first := newClassifier(Rule{Condition: Condition{0, 1}, Action: 1})
	second := newClassifier(Rule{Condition: Condition{0, 1}, Action: 2})
	pop.Append(first)
	pop.Append(second)

	// choicePoint 0 selects the first classifier with a positive vote
	// (index 0, "first"). Since every member matches input, the cyclic
	// avoidance scan must wrap all the way around and fall back to that
	// original selection rather than whatever it last visited.
	src := rng.NewFixed([]float64{0}, nil, nil, nil)
	deleted := DeleteFromPopulation(pop, []float64{0.5}, DefaultTuning(), src)

	require.True(t, deleted)
	assert.Equal(t, 0, first.Numerosity, "original roulette selection must be the one decremented")
	assert.Equal(t, 1, second.Numerosity)
}

func TestDeletionVoteBoostsBelowAverageFitness(t *testing.T) {
	tun := DefaultTuning()
	cl := newClassifier(Rule{Condition: Condition{0, 0}, Action: 1})
	cl.Fitness = 1
	cl.Experience = 1000 // old enough that the ThetaDel branch doesn't trigger
	meanFitness := 10.0

	vote := deletionVote(cl, meanFitness, tun)
	assert.Greater(t, vote, cl.ActionSetSize*float64(cl.Numerosity), "below-average fitness must boost the vote")
}
