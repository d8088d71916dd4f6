package xcs

import (
	"testing"

	"github.com/nuggfr/xcsrc/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMatchSetCoversMissingActions(t *testing.T) {
	pop := NewPopulation()
	as := NewActionSpace(0, 1)
	src := rng.NewFixed(nil, []int{0}, nil, rng.New(1))

	matchSet, modified := GenerateMatchSet(pop, as, []float64{1, 0}, DefaultMaxPopSize, DefaultTuning(), src)

	require.Len(t, matchSet, 2, "covering must produce one classifier per missing action")
	assert.False(t, modified, "covering alone (no deletion) must not report modified")
	assert.Equal(t, 2, DistinctActions(matchSet))
}

func TestGenerateMatchSetReusesExistingMatches(t *testing.T) {
	pop := NewPopulation()
	cl := newClassifier(Rule{Condition: Condition{0, 1, 0, 1}, Action: 0})
	pop.Append(cl)
	as := NewActionSpace(0)
	src := rng.New(1)

	matchSet, _ := GenerateMatchSet(pop, as, []float64{1, 0}, DefaultMaxPopSize, DefaultTuning(), src)
	require.Len(t, matchSet, 1)
	assert.Same(t, cl, matchSet[0])
}

func TestGenerateMatchSetDeletesZeroExperienceWhenOverCapacity(t *testing.T) {
	pop := NewPopulation()
	for a := Action(0); a < 3; a++ {
		pop.Append(newClassifier(Rule{Condition: Condition{9, 9}, Action: a}))
	}
	as := NewActionSpace(0, 1, 2, 3)
	src := rng.New(1)

	// maxPopSize 4: the existing 3 zero-experience, non-matching classifiers
	// must be deleted to make room for the 4 covering classifiers.
	matchSet, modified := GenerateMatchSet(pop, as, []float64{1, 1}, 4, DefaultTuning(), src)

	assert.True(t, modified)
	assert.Len(t, matchSet, 4)
	assert.Equal(t, 4, pop.Len())
}

func TestGenerateCoveringClassifierPicksMissingAction(t *testing.T) {
	matchSet := []*Classifier{newClassifier(Rule{Condition: Condition{0, 0}, Action: 0})}
	as := NewActionSpace(0, 1)
	src := rng.New(1)

	cl := GenerateCoveringClassifier(matchSet, as, []float64{0.5}, src)
	assert.Equal(t, Action(1), cl.Rule.Action)
	assert.Equal(t, Condition{0.5, 0.5}, cl.Rule.Condition)
}

func TestRandomActionEmptySpace(t *testing.T) {
	_, ok := RandomAction(ActionSpace{}, rng.New(1))
	assert.False(t, ok)
}
