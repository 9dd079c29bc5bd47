package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paull87/mo-sql-parsing/internal/cli/config"

	// Register dialects for name lookups.
	_ "github.com/paull87/mo-sql-parsing/pkg/dialects/ansi"
	_ "github.com/paull87/mo-sql-parsing/pkg/dialects/postgres"
	_ "github.com/paull87/mo-sql-parsing/pkg/dialects/sqlserver"
)

// stubConfig returns a ConfigGetter serving a fixed configuration.
func stubConfig(cfg *config.Config) ConfigGetter {
	return func(context.Context) *config.Config {
		return cfg
	}
}

func TestParseCommand_JSON(t *testing.T) {
	cmd := NewParseCommand(stubConfig(&config.Config{Dialect: "ansi", Format: "json"}))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"SELECT a FROM t"})

	require.NoError(t, cmd.Execute())

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, map[string]any{
		"select": map[string]any{"value": "a"},
		"from":   "t",
	}, result)
}

func TestParseCommand_YAML(t *testing.T) {
	cmd := NewParseCommand(stubConfig(&config.Config{Dialect: "ansi", Format: "yaml"}))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"SELECT a FROM t"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "select:")
	assert.Contains(t, out.String(), "from: t")
}

func TestParseCommand_Stdin(t *testing.T) {
	cmd := NewParseCommand(stubConfig(&config.Config{Dialect: "ansi", Format: "json"}))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("SELECT 1\n"))
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"select"`)
}

func TestParseCommand_EmptyStdin(t *testing.T) {
	cmd := NewParseCommand(stubConfig(&config.Config{Dialect: "ansi", Format: "json"}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("  \n"))
	cmd.SetArgs(nil)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no SQL given")
}

func TestParseCommand_UnknownDialect(t *testing.T) {
	cmd := NewParseCommand(stubConfig(&config.Config{Dialect: "oracle", Format: "json"}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"SELECT 1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dialect")
}

func TestParseCommand_ParseErrorPropagates(t *testing.T) {
	cmd := NewParseCommand(stubConfig(&config.Config{Dialect: "sqlserver", Format: "json"}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"SELECT a FROM t LIMIT 5"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LIMIT")
	assert.Contains(t, err.Error(), "sqlserver")
}

func TestParseCommand_UnknownFormat(t *testing.T) {
	cmd := NewParseCommand(stubConfig(&config.Config{Dialect: "ansi", Format: "xml"}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"SELECT 1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestParseCommand_Trace(t *testing.T) {
	cmd := NewParseCommand(stubConfig(&config.Config{Dialect: "ansi", Format: "json"}))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--trace", "SELECT 1"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "statement")
	assert.Contains(t, out.String(), `"select"`)
}

func TestTokensCommand(t *testing.T) {
	cmd := NewTokensCommand(stubConfig(&config.Config{Dialect: "postgres"}))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"SELECT a::int"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "SELECT")
	assert.Contains(t, out.String(), "::")
	assert.Contains(t, out.String(), "EOF")
}

func TestDialectsCommand(t *testing.T) {
	cmd := NewDialectsCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "ansi")
	assert.Contains(t, out.String(), "postgres")
	assert.Contains(t, out.String(), "sqlserver")
}

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3", "2026-01-01", "abc123")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "mosql 1.2.3")
	assert.Contains(t, out.String(), "2026-01-01")
	assert.Contains(t, out.String(), "abc123")
}
