package xcs

import "github.com/nuggfr/xcsrc/internal/rng"

// DeleteFromPopulation is the roulette-style deletion biased by fitness,
// experience and action-set-size balance,
// steered away from the classifier(s) matching the current input so
// covering pressure on the present state is not immediately undone.
// Returns true iff a classifier was removed (false only for an empty
// population).
func DeleteFromPopulation(pop *Population, input []float64, t Tuning, src rng.Source) bool {
	members := pop.Members()
	popNumerosity := pop.NumerositySum()
	if popNumerosity == 0 {
		return false
	}

	meanFitness := pop.TotalFitness() / float64(popNumerosity)

	voteSum := 0.0
	votes := make([]float64, len(members))
	for i, cl := range members {
		votes[i] = deletionVote(cl, meanFitness, t)
		voteSum += votes[i]
	}

	choicePoint := src.Float64Range(0, voteSum)
	running := 0.0
	n := len(members)
	for i := 0; i < n; i++ {
		cl := members[i]
		running += votes[i]
		if running <= choicePoint {
			continue
		}

		if cl.Rule.Condition.Matches(input) {
			original := cl
			start := i
			for cl.Rule.Condition.Matches(input) {
				i++
				if i == n {
					i = 0
				}
				if i == start {
					// Full cycle: every classifier matches input. Fall
					// back to the original selection.
					cl = original
					break
				}
				cl = members[i]
			}
		}

		cl.Numerosity--
		if cl.Numerosity == 0 {
			pop.Remove(cl)
		}
		return true
	}

	return false
}

// deletionVote computes a classifier's deletion vote: actionset_size *
// numerosity, multiplied by meanFitness / per-microclassifier fitness
// (raising the vote below the mean, lowering it above) whenever that
// per-micro fitness is at least DeltaDeletion*meanFitness or the
// classifier's experience is below ThetaDel; otherwise left unscaled.
func deletionVote(cl *Classifier, meanFitness float64, t Tuning) float64 {
	invariant(cl.Numerosity != 0, "classifier numerosity must never reach zero while still in the population")
	vote := cl.ActionSetSize * float64(cl.Numerosity)
	perMicroFitness := cl.Fitness / float64(cl.Numerosity)
	if perMicroFitness >= t.DeltaDeletion*meanFitness || float64(cl.Experience) < t.ThetaDel {
		vote *= meanFitness / perMicroFitness
	}
	return vote
}
