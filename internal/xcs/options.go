package xcs

// Option configures an Engine at construction time, overlaid on top of
// DefaultTuning(). Options take precedence over any config-file tuning
// applied earlier in the call chain.
type Option func(*Engine)

// WithMaxPopSize sets the numerosity cap (default DefaultMaxPopSize).
func WithMaxPopSize(n int) Option {
	return func(e *Engine) { e.tuning.MaxPopSize = n }
}

// WithCombiningPeriod sets T_comb in trials; 0 disables combining.
func WithCombiningPeriod(t int) Option {
	return func(e *Engine) { e.tuning.CombiningPeriod = t }
}

// WithTuning overlays every field of t onto the engine's tuning in one call
// — used by internal/config to apply a loaded YAML override wholesale.
func WithTuning(t Tuning) Option {
	return func(e *Engine) { e.tuning = t }
}
