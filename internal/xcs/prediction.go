package xcs

import "github.com/nuggfr/xcsrc/internal/rng"

// PredictionArray maps each action present in a match set to its
// fitness-weighted average prediction.
type PredictionArray map[Action]float64

// ActionMode selects Explore or Exploit behaviour for SelectAction.
type ActionMode int

const (
	Explore ActionMode = iota
	Exploit
)

// GeneratePredictionArray computes, for each action present in matchSet,
// Σ(p·F) / Σ(F) over classifiers sharing that action. Actions absent from
// matchSet are absent from the result.
func GeneratePredictionArray(matchSet []*Classifier) PredictionArray {
	pa := make(PredictionArray)
	fitnessSum := make(map[Action]float64)

	for _, cl := range matchSet {
		a := cl.Rule.Action
		pa[a] += cl.Prediction * cl.Fitness
		fitnessSum[a] += cl.Fitness
	}
	for a, fs := range fitnessSum {
		if fs != 0 {
			pa[a] /= fs
		}
	}
	return pa
}

// SelectAction chooses an action from pa per mode. Explore prefers actions
// absent from pa to accelerate coverage; this bias is intentional and must
// not be relaxed to uniform-over-all. An empty pa is treated as Explore
// regardless of mode.
func SelectAction(pa PredictionArray, as ActionSpace, mode ActionMode, src rng.Source) Action {
	if mode == Explore || len(pa) == 0 {
		remaining := make(ActionSpace, len(as))
		for a := range as {
			if _, present := pa[a]; !present {
				remaining[a] = struct{}{}
			}
		}
		if a, ok := RandomAction(remaining, src); ok {
			return a
		}
		a, _ := RandomAction(as, src)
		return a
	}

	var best Action
	bestVal := 0.0
	first := true
	for a, v := range pa {
		if first || v > bestVal {
			best = a
			bestVal = v
			first = false
		}
	}
	return best
}

// GenerateActionSet returns the subset of matchSet sharing action act.
func GenerateActionSet(matchSet []*Classifier, act Action) []*Classifier {
	actionSet := make([]*Classifier, 0, len(matchSet))
	for _, cl := range matchSet {
		if cl.Rule.Action == act {
			actionSet = append(actionSet, cl)
		}
	}
	return actionSet
}
