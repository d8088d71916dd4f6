package xcs

import "github.com/nuggfr/xcsrc/internal/rng"

// GenerateMatchSet collects every classifier in pop whose condition
// matches input, covering in any action missing from the match set and
// shrinking the population first if covering would overflow maxPopSize.
// Returns the match set and whether the population was structurally
// modified (a deletion occurred).
func GenerateMatchSet(pop *Population, as ActionSpace, input []float64, maxPopSize int, t Tuning, src rng.Source) (matchSet []*Classifier, modified bool) {
	for {
		matchSet = matchSet[:0]
		for _, cl := range pop.Members() {
			if cl.Rule.Condition.Matches(input) {
				matchSet = append(matchSet, cl)
			}
		}

		space := len(as) - DistinctActions(matchSet)
		if space <= 0 {
			return matchSet, modified
		}

		for pop.NumerositySum()+space > maxPopSize {
			deletedAny := false
			for _, cl := range append([]*Classifier(nil), pop.Members()...) {
				if cl.Experience == 0 {
					pop.Remove(cl)
					deletedAny = true
				}
			}
			if !deletedAny {
				deletedAny = DeleteFromPopulation(pop, input, t, src)
			}
			modified = modified || deletedAny
			space = len(as) - DistinctActions(matchSet)
		}

		cover := GenerateCoveringClassifier(matchSet, as, input, src)
		pop.Append(cover)
		// match set is rebuilt from scratch on the next loop iteration
	}
}

// GenerateCoveringClassifier synthesises a new classifier whose condition
// is the singleton point interval covering input, with an action drawn
// uniformly from the actions not yet present in matchSet.
func GenerateCoveringClassifier(matchSet []*Classifier, as ActionSpace, input []float64, src rng.Source) *Classifier {
	cond := pointCondition(input)

	remaining := ActionsDiff(as, PresentActions(matchSet))
	action, ok := RandomAction(remaining, src)
	if !ok {
		action, _ = RandomAction(as, src)
	}

	return newClassifier(Rule{Condition: cond, Action: action})
}

// RandomAction picks a uniformly random action from as. Returns false if as
// is empty (mirrors the reference's optional<Action> nullopt return).
func RandomAction(as ActionSpace, src rng.Source) (Action, bool) {
	if len(as) == 0 {
		return 0, false
	}
	actions := as.Slice()
	idx := src.IntnRange(0, len(actions)-1)
	return actions[idx], true
}
