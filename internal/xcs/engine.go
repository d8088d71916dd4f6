// Package xcs implements the XCS-RC learning classifier system engine:
// matching/covering, reinforcement update, roulette deletion and
// deterministic rule combining over a population of condition-action-
// prediction classifiers.
package xcs

import "github.com/nuggfr/xcsrc/internal/rng"

// Engine is the XCS-RC learner façade, equivalent to the reference
// implementation's XCSLearner. It is not safe for concurrent use: the
// TakeAction/UpdateWithReward pair is a two-phase protocol (the second
// call consumes the action set stashed by the first), so callers must
// serialize access regardless of any internal locking.
type Engine struct {
	pop         *Population
	matchSet    []*Classifier
	actionSet   []*Classifier
	actionSpace ActionSpace
	tuning      Tuning
	src         rng.Source

	trials int
	dim    int // -1 until the first input establishes L
	dirty  bool
}

// New constructs an Engine over actionSpace, using src for every
// stochastic draw. Returns ErrEmptyActionSpace if actionSpace is empty.
func New(actionSpace ActionSpace, src rng.Source, opts ...Option) (*Engine, error) {
	if len(actionSpace) == 0 {
		return nil, ErrEmptyActionSpace
	}
	if src == nil {
		src = rng.New(0)
	}

	e := &Engine{
		pop:         NewPopulation(),
		actionSpace: actionSpace,
		tuning:      DefaultTuning(),
		src:         src,
		dim:         -1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// SetMaxPopSize sets the numerosity cap.
func (e *Engine) SetMaxPopSize(n int) { e.tuning.MaxPopSize = n }

// SetCombiningPeriod sets T_comb in trials; 0 disables combining.
func (e *Engine) SetCombiningPeriod(t int) { e.tuning.CombiningPeriod = t }

// Trials returns the number of TakeAction calls made so far.
func (e *Engine) Trials() int { return e.trials }

// Tuning returns a copy of the engine's live tuning parameters.
func (e *Engine) Tuning() Tuning { return e.tuning }

// TakeAction runs C3/C4 for state: it generates the match set (covering as
// needed), computes the prediction array, selects an action per mode, and
// stashes the resulting action set for the paired UpdateWithReward call.
func (e *Engine) TakeAction(state string, mode ActionMode) (Action, error) {
	input, err := e.parseAndCheckDim(state)
	if err != nil {
		return 0, err
	}

	matchSet, modified := GenerateMatchSet(e.pop, e.actionSpace, input, e.tuning.MaxPopSize, e.tuning, e.src)
	e.matchSet = matchSet
	e.dirty = e.dirty || modified

	pa := GeneratePredictionArray(e.matchSet)
	output := SelectAction(pa, e.actionSpace, mode, e.src)
	e.actionSet = GenerateActionSet(e.matchSet, output)

	e.trials++

	return output, nil
}

// UpdateWithReward drives C5 over the action set stashed by the most
// recent TakeAction call, then — every CombiningPeriod trials, and only if
// the population has been modified since the last combine — sorts the
// population and runs C7. state must be the same state passed to the
// preceding TakeAction call.
func (e *Engine) UpdateWithReward(state string, action Action, reward float64) error {
	input, err := e.parseAndCheckDim(state)
	if err != nil {
		return err
	}

	modified := UpdateActionSet(input, action, reward, e.actionSet, e.pop, e.tuning)
	e.dirty = e.dirty || modified

	if e.tuning.CombiningPeriod > 0 && e.trials%e.tuning.CombiningPeriod == 0 && e.dirty {
		e.pop.Sort()
		Combine(e.pop, e.actionSpace, e.tuning)
		// dirty is unconditionally cleared here, discarding whether
		// combining itself modified the population further. Reproduced as
		// written, flagged for audit rather than silently "fixed".
		e.dirty = false
	}

	return nil
}

// Population returns a read-only snapshot of the current population.
func (e *Engine) Population() []Classifier {
	members := e.pop.Members()
	out := make([]Classifier, len(members))
	for i, cl := range members {
		out[i] = *cl
	}
	return out
}

// Reset clears the population, match set, action set and trial counter,
// returning the engine to its post-New state (tuning and action space are
// preserved).
func (e *Engine) Reset() {
	e.pop = NewPopulation()
	e.matchSet = nil
	e.actionSet = nil
	e.trials = 0
	e.dim = -1
	e.dirty = false
}

func (e *Engine) parseAndCheckDim(state string) ([]float64, error) {
	input, err := transformInput(state)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if e.dim == -1 {
		e.dim = len(input)
	} else if len(input) != e.dim {
		return nil, ErrInvalidInput
	}
	return input, nil
}
