package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuggfr/xcsrc/internal/xcs"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	tuning, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, xcs.DefaultTuning(), tuning)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	tuning, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, xcs.DefaultTuning(), tuning)
}

func TestLoadOverlaysOnlySpecifiedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	contents := "beta: 0.3\nmaxPopSize: 777\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	tuning, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.3, tuning.Beta)
	assert.Equal(t, 777, tuning.MaxPopSize)
	assert.Equal(t, xcs.DefaultTuning().Alpha, tuning.Alpha, "unset fields keep the compiled-in default")
}

func TestToEngineOptionsAppliesTuningWholesale(t *testing.T) {
	custom := xcs.DefaultTuning()
	custom.MaxPopSize = 42

	opts := ToEngineOptions(custom)
	e, err := xcs.New(xcs.NewActionSpace(0), nil, opts...)
	require.NoError(t, err)
	assert.Equal(t, 42, e.Tuning().MaxPopSize)
}
