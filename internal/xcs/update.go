package xcs

import "math"

// UpdateActionSet applies moving-average updates to
// prediction, prediction-error and action-set-size for every classifier in
// actionSet, with mid-stream replacement when prediction error crosses
// PredErrTol, followed by a fitness update over actionSet. Returns true iff
// a classifier crossed experience==MinExp for the first time this call, or
// a replacement occurred.
func UpdateActionSet(input []float64, action Action, reward float64, actionSet []*Classifier, pop *Population, t Tuning) bool {
	modified := false
	totalNumerosity := numerositySum(actionSet)

	for _, cl := range actionSet {
		cl.Experience++
		if cl.Experience == t.MinExp {
			modified = true
		}

		alpha := 1.0 / t.Beta
		var step float64
		if float64(cl.Experience) < alpha {
			step = 1.0 / float64(cl.Experience)
		} else {
			step = t.Beta
		}

		oldPredErr := cl.PredictionError

		cl.Prediction += step * (reward - cl.Prediction)

		if float64(cl.Experience) < alpha {
			cl.ActionSetSize += step * (float64(totalNumerosity) - cl.ActionSetSize)
		} else {
			// Uses α=1 (a direct jump) here, unlike prediction and
			// prediction_error which keep the exponential step.
			// Reproduced deliberately, not a bug.
			cl.ActionSetSize += float64(totalNumerosity) - cl.ActionSetSize
		}

		cl.PredictionError += step * (math.Abs(reward-cl.Prediction) - cl.PredictionError)

		if cl.Experience >= 2*t.MinExp && oldPredErr <= t.PredErrTol && cl.PredictionError > t.PredErrTol {
			pop.Remove(cl)

			replacement := newClassifier(Rule{Condition: pointCondition(input), Action: action})
			replacement.Prediction = reward
			replacement.Experience = 1
			replacement.PredictionError = math.Abs(reward - PredictionInit)
			pop.Append(replacement)

			modified = true
		}
	}

	UpdateFitness(actionSet, t)
	return modified
}

// pointCondition builds the singleton point-interval condition for input,
// used by both covering and mid-stream replacement.
func pointCondition(input []float64) Condition {
	cond := make(Condition, 2*len(input))
	for i, v := range input {
		cond[2*i] = v
		cond[2*i+1] = v
	}
	return cond
}

// UpdateFitness applies the accuracy-based fitness update: each
// classifier's relative accuracy k is 1 below EpsilonZero error, else
// decays per a power law; fitness moves toward k·numerosity / Σ(k·n).
func UpdateFitness(actionSet []*Classifier, t Tuning) {
	k := make([]float64, len(actionSet))
	accuracySum := 0.0

	for i, cl := range actionSet {
		if cl.PredictionError < t.EpsilonZero {
			k[i] = 1
		} else {
			k[i] = t.Alpha * math.Pow(cl.PredictionError/t.EpsilonZero, -t.PowerParameter)
		}
		accuracySum += k[i] * float64(cl.Numerosity)
	}

	invariant(accuracySum > 0 || len(actionSet) == 0, "fitness update requires a positive accuracy sum (k>0, numerosity>=1)")

	for i, cl := range actionSet {
		cl.Fitness += t.Beta * (k[i]*float64(cl.Numerosity)/accuracySum - cl.Fitness)
	}
}
