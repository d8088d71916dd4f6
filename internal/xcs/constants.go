package xcs

// Tunable parameters of the public contract. Defaults match the reference
// implementation; callers may override a subset via Option or
// internal/config.ToEngineOptions.
const (
	// Gamma is the discount factor used for multi-step problems and
	// prediction updates; unused at single-step but carried for parity.
	Gamma = 0.71
	// PDontCare is the reference's don't-care probability for covering.
	// Covering here always builds the point interval and does not read it.
	PDontCare = 0.1

	PredictionInit      = 500.0
	PredictionErrorInit = 0.0
	FitnessInit         = 10.0

	// ThetaDel is the experience threshold below which a classifier's
	// deletion vote is always scaled by mean fitness / its own fitness.
	ThetaDel = 25.0
	// DeltaDeletion is the fraction of mean population fitness at or above
	// which a classifier's deletion vote is scaled by mean fitness / its
	// own fitness; below it (once experienced) the vote is left unscaled.
	DeltaDeletion = 0.1

	// DefaultMaxPopSize is the default numerosity cap.
	DefaultMaxPopSize = 2000

	// ProbabilityExplore is the harness-facing default explore probability.
	ProbabilityExplore = 0.5

	RewardMax = 1000.0

	Alpha          = 0.1
	Beta           = 0.15
	EpsilonZero    = 0.01
	PowerParameter = 5.0

	// SubsumptionThreshold is carried for parity with the reference
	// constants table; larger values may help some problems (reference
	// comment), it is not read by the combine procedure itself, which
	// instead gates on MinExp/PredTol per spec.
	SubsumptionThreshold = 50

	MinExp      = 1
	MaxDispRate = 2
	PredTol     = 10.0
	PredErrTol  = 260.0
)

// Tuning is the mutable subset of the constants above that an Engine
// instance actually consults at runtime. PredictionInit,
// PredictionErrorInit, FitnessInit and RewardMax are read directly as
// constants; Gamma, PDontCare, ProbabilityExplore and SubsumptionThreshold
// are carried for documentation/parity but not wired into a live
// computation.
type Tuning struct {
	Alpha          float64
	Beta           float64
	EpsilonZero    float64
	PowerParameter float64
	ThetaDel       float64
	DeltaDeletion  float64
	PredTol        float64
	PredErrTol     float64
	MinExp         int
	MaxDispRate    int
	MaxPopSize     int
	CombiningPeriod int
}

// DefaultTuning returns the compiled-in constant defaults as a Tuning value.
func DefaultTuning() Tuning {
	return Tuning{
		Alpha:           Alpha,
		Beta:            Beta,
		EpsilonZero:     EpsilonZero,
		PowerParameter:  PowerParameter,
		ThetaDel:        ThetaDel,
		DeltaDeletion:   DeltaDeletion,
		PredTol:         PredTol,
		PredErrTol:      PredErrTol,
		MinExp:          MinExp,
		MaxDispRate:     MaxDispRate,
		MaxPopSize:      DefaultMaxPopSize,
		CombiningPeriod: 0,
	}
}
