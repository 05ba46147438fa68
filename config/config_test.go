package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirelin/fitchproof/config"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z", "u", "v", "w"}, cfg.Variables)
}

func TestLoad_OverridesVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".fitchcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variables: [a, b]\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, cfg.Variables)
}

func TestLoad_RejectsEmptyVariableList(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".fitchcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variables: []\n"), 0o644))

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrNoVariables)
}

func TestAllowedVars(t *testing.T) {
	cfg := config.DefaultConfig()
	set := cfg.AllowedVars()
	assert.True(t, set.Contains("x"))
	assert.False(t, set.Contains("a"))
}
