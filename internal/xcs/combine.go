package xcs

import "math"

// Combine is the deterministic rule-combining pass (no genetic operators):
// the population is assumed already sorted (Engine sorts it immediately
// before calling Combine). For each
// action it repeatedly scans all pairs, unions a pair's conditions when
// their predictions agree within PredTol and neither is disproved by a
// third overlapping-but-disagreeing classifier, subsumes dominated
// classifiers into the merge, and removes outliers whose disproving rate
// exceeds 10^MaxDispRate. Returns true iff any merge or outlier removal
// occurred.
func Combine(pop *Population, as ActionSpace, t Tuning) bool {
	modified := false

	for _, action := range as.Slice() {
		cs := recruitAction(pop, action)

		notCombined := 0
		for notCombined < 2 {
			notCombined++
			merged := false

			for i := 0; i < len(cs); i++ {
				for j := i + 1; j < len(cs); j++ {
					star, ok := tryMerge(pop, cs, i, j, t)
					if !ok {
						continue
					}
					cs = star.newCS
					merged = true
					notCombined = 0
					// continue scanning from the newly inserted cl*,
					// i.e. resume with j=i.
					j = i
				}
			}
			if merged {
				modified = true
			}
		}
	}

	if t.MaxDispRate > 0 {
		for _, cl := range pop.Members() {
			if cl.Disproves {
				cl.Disproving++
				cl.Disproves = false
			}
		}
		if removeOutliers(pop, t) {
			modified = true
		}
	}

	return modified
}

func recruitAction(pop *Population, action Action) []*Classifier {
	var cs []*Classifier
	for _, cl := range pop.Members() {
		if cl.Rule.Action == action {
			cs = append(cs, cl)
		}
	}
	return cs
}

type mergeResult struct {
	newCS []*Classifier
}

// tryMerge attempts to combine cs[i] and cs[j]. On success it mutates pop
// and returns the updated per-action work list with cl* appended and the
// parents/subsumed members removed; ok is false if the pair was not
// eligible (experience/tolerance gate) or was disproved.
func tryMerge(pop *Population, cs []*Classifier, i, j int, t Tuning) (mergeResult, bool) {
	left, right := cs[i], cs[j]

	if left.Experience < t.MinExp || right.Experience < t.MinExp {
		return mergeResult{}, false
	}
	if math.Abs(left.Prediction-right.Prediction) > t.PredTol {
		return mergeResult{}, false
	}

	starCond := unionCondition(left.Rule.Condition, right.Rule.Condition)
	starNumerosity := left.Numerosity + right.Numerosity
	starPred := (left.Prediction*float64(left.Numerosity) + right.Prediction*float64(right.Numerosity)) / float64(starNumerosity)

	disproved := false
	for k, cl := range cs {
		if k == i || k == j || cl.Experience == 0 {
			continue
		}
		if starCond.Overlaps(cl.Rule.Condition) && math.Abs(starPred-cl.Prediction) > t.PredTol {
			disproved = true
			if t.MaxDispRate > 0 {
				cl.Disproves = true
			} else {
				// Outlier detection disabled: abort the scan on first
				// disproof.
				break
			}
		}
	}
	if disproved {
		return mergeResult{}, false
	}

	star := &Classifier{
		Rule:       Rule{Condition: starCond, Action: left.Rule.Action},
		Experience: left.Experience + right.Experience,
		Numerosity: starNumerosity,
	}
	runningPred := starPred * float64(star.Numerosity)

	pop.Remove(left)
	pop.Remove(right)
	next := removeIndices(cs, i, j)

	var subsumed []int
	for idx, cl := range next {
		inRange := math.Abs(starPred-cl.Prediction) <= t.PredTol
		if star.Rule.Condition.Contains(cl.Rule.Condition) && cl.Rule.Action == star.Rule.Action && (inRange || cl.Experience == 0) {
			if cl.Experience > 0 {
				star.Experience += cl.Experience
				star.Numerosity += cl.Numerosity
				runningPred += cl.Prediction * float64(cl.Numerosity)
			}
			subsumed = append(subsumed, idx)
		}
	}
	star.Prediction = runningPred / float64(star.Numerosity)

	for k := len(subsumed) - 1; k >= 0; k-- {
		idx := subsumed[k]
		pop.Remove(next[idx])
		next = append(next[:idx], next[idx+1:]...)
	}

	expLimit := math.Floor(1 / t.Beta)
	if float64(star.Experience) <= expLimit {
		star.PredictionError = math.Abs(star.Prediction-PredictionInit) / float64(star.Experience)
	} else {
		star.PredictionError = (math.Abs(star.Prediction-PredictionInit) / expLimit) * math.Pow(1-t.Beta, float64(star.Experience)-expLimit)
	}
	star.Fitness = (FitnessInit-1)*math.Pow(1-t.Beta, float64(star.Experience)) + 1
	star.Disproving = 0
	star.ActionSetSize = 1

	next = append(next, star)
	pop.Insert(star)

	return mergeResult{newCS: next}, true
}

// unionCondition returns the per-dimension interval union of a and b.
func unionCondition(a, b Condition) Condition {
	out := make(Condition, len(a))
	for k := 0; k < len(a)/2; k++ {
		out[2*k] = math.Min(a[2*k], b[2*k])
		out[2*k+1] = math.Max(a[2*k+1], b[2*k+1])
	}
	return out
}

func removeIndices(cs []*Classifier, i, j int) []*Classifier {
	out := make([]*Classifier, 0, len(cs)-2)
	for k, cl := range cs {
		if k == i || k == j {
			continue
		}
		out = append(out, cl)
	}
	return out
}

// removeOutliers deletes every classifier whose disproving rate exceeds
// 10^MaxDispRate relative to its experience. Returns true iff any
// classifier was removed.
func removeOutliers(pop *Population, t Tuning) bool {
	modified := false
	threshold := math.Pow(10, float64(t.MaxDispRate))
	for _, cl := range append([]*Classifier(nil), pop.Members()...) {
		if cl.Experience > 0 && float64(cl.Disproving)/float64(cl.Experience) > threshold {
			pop.Remove(cl)
			modified = true
		}
	}
	return modified
}
