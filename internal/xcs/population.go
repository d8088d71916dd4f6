package xcs

import "sort"

// Population exclusively owns all classifiers the engine has created. Match
// sets and action sets are non-owning slices of pointers into it.
type Population struct {
	members []*Classifier
}

// NewPopulation returns an empty population.
func NewPopulation() *Population {
	return &Population{}
}

// Members returns the population's backing slice. Callers must not retain
// it past the current step — it is not a defensive copy.
func (p *Population) Members() []*Classifier {
	return p.members
}

// Len returns the number of macro-classifier records (not the numerosity sum).
func (p *Population) Len() int {
	return len(p.members)
}

// NumerositySum returns the sum of numerosities over the population — the
// quantity the population cap actually bounds.
func (p *Population) NumerositySum() int {
	total := 0
	for _, c := range p.members {
		total += c.Numerosity
	}
	return total
}

// TotalFitness returns the sum of fitness over the population.
func (p *Population) TotalFitness() float64 {
	total := 0.0
	for _, c := range p.members {
		total += c.Fitness
	}
	return total
}

// Insert appends cl to the population, or if a structurally-equal rule
// already exists, increments its numerosity instead (mirrors the
// reference's insert_into_population, used by Combine to fold a merged
// classifier into an existing equivalent).
func (p *Population) Insert(cl *Classifier) {
	for _, existing := range p.members {
		if existing.Rule.Equal(cl.Rule) {
			existing.Numerosity++
			return
		}
	}
	p.members = append(p.members, cl)
}

// Append adds cl to the population unconditionally (covering always
// synthesises a genuinely new condition, so no merge check is needed).
func (p *Population) Append(cl *Classifier) {
	p.members = append(p.members, cl)
}

// Remove deletes the first classifier identical to cl (by pointer) from
// the population. Returns true if a classifier was removed.
func (p *Population) Remove(cl *Classifier) bool {
	for i, existing := range p.members {
		if existing == cl {
			p.members = append(p.members[:i], p.members[i+1:]...)
			return true
		}
	}
	return false
}

// Sort orders the population by the classifier total order, used
// before each Combine pass.
func (p *Population) Sort() {
	sort.Slice(p.members, func(i, j int) bool {
		return less(p.members[i], p.members[j])
	})
}

// DistinctActions returns the number of distinct actions represented in cs.
func DistinctActions(cs []*Classifier) int {
	seen := make(map[Action]struct{}, len(cs))
	for _, c := range cs {
		seen[c.Rule.Action] = struct{}{}
	}
	return len(seen)
}

// PresentActions returns the set of actions represented in cs.
func PresentActions(cs []*Classifier) ActionSpace {
	as := make(ActionSpace, len(cs))
	for _, c := range cs {
		as[c.Rule.Action] = struct{}{}
	}
	return as
}

// ActionsDiff returns the set difference lhs - rhs.
func ActionsDiff(lhs, rhs ActionSpace) ActionSpace {
	diff := make(ActionSpace, len(lhs))
	for a := range lhs {
		if _, ok := rhs[a]; !ok {
			diff[a] = struct{}{}
		}
	}
	return diff
}

// numerositySum sums numerosity over an arbitrary classifier slice (used
// for action-set totals during reinforcement update).
func numerositySum(cs []*Classifier) int {
	total := 0
	for _, c := range cs {
		total += c.Numerosity
	}
	return total
}
