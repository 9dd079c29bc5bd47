package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// matching the behavior of testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultDialect, cfg.Dialect)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.False(t, cfg.Verbose)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dialect: postgres\nformat: yaml\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Dialect)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoad_ConfigFileDiscovery(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mosql.yaml"), []byte("dialect: mysql\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.Dialect)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mosql.yaml"), []byte("dialect: mysql\n"), 0o644))
	t.Setenv("MOSQL_DIALECT", "snowflake")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "snowflake", cfg.Dialect)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MOSQL_DIALECT", "snowflake")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dialect", "", "")
	flags.String("format", "", "")
	flags.Bool("verbose", false, "")
	require.NoError(t, flags.Set("dialect", "bigquery"))
	require.NoError(t, flags.Set("verbose", "true"))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "bigquery", cfg.Dialect)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, DefaultFormat, cfg.Format)
}
