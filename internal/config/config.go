// Package config loads a YAML tuning override for the xcs engine, layered
// on top of xcs.DefaultTuning(). Unset fields in the file fall back to the
// compiled-in constant defaults, mirroring the outer/inner split of
// reinforcement.TrainingConfig/FromYaml in the reference this was
// grounded on: an outer key just selects the file, an inner struct
// carries the actual values.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/nuggfr/xcsrc/internal/xcs"
)

// Tuning mirrors xcs.Tuning with yaml tags and pointer fields so that a
// field absent from the file can be distinguished from one explicitly set
// to its zero value.
type Tuning struct {
	Alpha          *float64 `yaml:"alpha"`
	Beta           *float64 `yaml:"beta"`
	EpsilonZero    *float64 `yaml:"epsilonZero"`
	PowerParameter *float64 `yaml:"powerParameter"`
	ThetaDel       *float64 `yaml:"thetaDel"`
	DeltaDeletion  *float64 `yaml:"deltaDeletion"`
	PredTol        *float64 `yaml:"predTol"`
	PredErrTol     *float64 `yaml:"predErrTol"`
	MinExp         *int     `yaml:"minExp"`
	MaxDispRate    *int     `yaml:"maxDispRate"`

	MaxPopSize      *int `yaml:"maxPopSize"`
	CombiningPeriod *int `yaml:"combiningPeriod"`
}

// Load reads path as a YAML tuning override and overlays it onto
// xcs.DefaultTuning(). A missing file is not an error: it returns the
// compiled-in defaults unchanged, since a tuning file is always optional.
// Any other read or parse failure is wrapped with file context.
func Load(path string) (xcs.Tuning, error) {
	base := xcs.DefaultTuning()

	if path == "" {
		return base, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return base, nil
	}

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))

	if err := vp.ReadInConfig(); err != nil {
		return xcs.Tuning{}, errors.Wrapf(err, "config: reading %s", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return xcs.Tuning{}, errors.Wrapf(err, "config: reading %s", path)
	}

	var override Tuning
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return xcs.Tuning{}, errors.Wrapf(err, "config: parsing %s", path)
	}

	return override.applyTo(base), nil
}

// applyTo returns base with every non-nil field of t overlaid on top.
func (t Tuning) applyTo(base xcs.Tuning) xcs.Tuning {
	if t.Alpha != nil {
		base.Alpha = *t.Alpha
	}
	if t.Beta != nil {
		base.Beta = *t.Beta
	}
	if t.EpsilonZero != nil {
		base.EpsilonZero = *t.EpsilonZero
	}
	if t.PowerParameter != nil {
		base.PowerParameter = *t.PowerParameter
	}
	if t.ThetaDel != nil {
		base.ThetaDel = *t.ThetaDel
	}
	if t.DeltaDeletion != nil {
		base.DeltaDeletion = *t.DeltaDeletion
	}
	if t.PredTol != nil {
		base.PredTol = *t.PredTol
	}
	if t.PredErrTol != nil {
		base.PredErrTol = *t.PredErrTol
	}
	if t.MinExp != nil {
		base.MinExp = *t.MinExp
	}
	if t.MaxDispRate != nil {
		base.MaxDispRate = *t.MaxDispRate
	}
	if t.MaxPopSize != nil {
		base.MaxPopSize = *t.MaxPopSize
	}
	if t.CombiningPeriod != nil {
		base.CombiningPeriod = *t.CombiningPeriod
	}
	return base
}

// ToEngineOptions converts a resolved xcs.Tuning into the Option slice
// internal/xcs.New expects, so callers never have to thread the resolved
// tuning value through by hand.
func ToEngineOptions(t xcs.Tuning) []xcs.Option {
	return []xcs.Option{xcs.WithTuning(t)}
}
