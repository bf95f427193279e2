package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"strcmpbench/sweep"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strcmpbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()
	require.NoError(t, cfg.Validate())

	sizes, err := cfg.Sizes()
	require.NoError(t, err)
	require.Equal(t, sweep.Default(), sizes)
}

func TestLoad_NoSources(t *testing.T) {
	t.Parallel()
	cfg, err := NewLoader(WithEnvPrefix("STRCMPBENCH_TEST_NONE_")).Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
filter: "^loop_uint"
count: 3
format: json
benchtime: 100x
log:
  level: debug
  json: true
sweep:
  min: 16
  max: 256
`)
	cfg, err := NewLoader(WithConfigFile(path), WithEnvPrefix("STRCMPBENCH_TEST_FILE_")).Load()
	require.NoError(t, err)

	require.Equal(t, "^loop_uint", cfg.Filter)
	require.Equal(t, 3, cfg.Count)
	require.Equal(t, "json", cfg.Format)
	require.Equal(t, "100x", cfg.BenchTime)
	require.Equal(t, "debug", cfg.Log.Level)
	require.True(t, cfg.Log.JSON)

	sizes, err := cfg.Sizes()
	require.NoError(t, err)
	require.Equal(t, []int{16, 32, 64, 128, 256}, sizes)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("STRCMPBENCH_COUNT", "5")
	t.Setenv("STRCMPBENCH_SWEEP_MAX", "2048")
	path := writeConfig(t, "count: 2\nformat: csv\n")

	cfg, err := NewLoader(WithConfigFile(path)).Load()
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Count)
	require.Equal(t, "csv", cfg.Format)
	require.Equal(t, 2048, cfg.Sweep.Max)
	require.Equal(t, sweep.DefaultMin, cfg.Sweep.Min)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := NewLoader(WithConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))).Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	bad := []func(*Config){
		func(c *Config) { c.Count = 0 },
		func(c *Config) { c.Format = "xml" },
		func(c *Config) { c.Sweep.Multiplier = 1 },
		func(c *Config) { c.Sweep.Min = 0 },
		func(c *Config) { c.Sweep.Max = c.Sweep.Min - 1 },
	}
	for i, mutate := range bad {
		cfg := Default()
		mutate(&cfg)
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, "case %d", i)
	}
}
