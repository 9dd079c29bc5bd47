package mosql_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mosql "github.com/paull87/mo-sql-parsing"
	"github.com/paull87/mo-sql-parsing/pkg/dialect"
	"github.com/paull87/mo-sql-parsing/pkg/parser"
	"github.com/paull87/mo-sql-parsing/pkg/trace"
)

func TestParseDialect_UnknownName(t *testing.T) {
	_, err := mosql.ParseDialect("SELECT 1", "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dialect")
	assert.Contains(t, err.Error(), "oracle")
}

func TestParseWithDialect_NilDialect(t *testing.T) {
	_, err := mosql.ParseWithDialect("SELECT 1", nil)
	require.ErrorIs(t, err, dialect.ErrDialectRequired)
}

// TestParseDialect_NameFolding verifies per-dialect identifier case folding:
// ANSI preserves, Postgres lowercases, Snowflake uppercases. Quoting always
// defeats folding.
func TestParseDialect_NameFolding(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		sql     string
		want    map[string]any
	}{
		{
			name:    "ansi preserves case",
			dialect: "ansi",
			sql:     "SELECT Name FROM Tbl",
			want: map[string]any{
				"select": map[string]any{"value": "Name"},
				"from":   "Tbl",
			},
		},
		{
			name:    "postgres folds to lowercase",
			dialect: "postgres",
			sql:     "SELECT Name FROM Tbl AS T",
			want: map[string]any{
				"select": map[string]any{"value": "name"},
				"from":   map[string]any{"value": "tbl", "name": "t"},
			},
		},
		{
			name:    "postgres quoted stays verbatim",
			dialect: "postgres",
			sql:     `SELECT "Name" FROM tbl`,
			want: map[string]any{
				"select": map[string]any{"value": "Name"},
				"from":   "tbl",
			},
		},
		{
			name:    "snowflake folds to uppercase",
			dialect: "snowflake",
			sql:     "SELECT name FROM tbl",
			want: map[string]any{
				"select": map[string]any{"value": "NAME"},
				"from":   "TBL",
			},
		},
		{
			name:    "sqlserver bracket identifiers",
			dialect: "sqlserver",
			sql:     "SELECT [Full Name] FROM [My Table]",
			want: map[string]any{
				"select": map[string]any{"value": "Full Name"},
				"from":   "My Table",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := mosql.ParseDialect(tt.sql, tt.dialect)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

// TestParseDialect_FeatureGating verifies that constructs the grammar knows
// but the dialect does not allow fail with a dialect feature error naming
// both the construct and the dialect.
func TestParseDialect_FeatureGating(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		sql     string
		feature string
	}{
		{
			name:    "limit in sqlserver",
			dialect: "sqlserver",
			sql:     "SELECT a FROM t LIMIT 10",
			feature: "LIMIT",
		},
		{
			name:    "distinct on in mysql",
			dialect: "mysql",
			sql:     "SELECT DISTINCT ON (a) a FROM t",
			feature: "DISTINCT ON",
		},
		{
			name:    "returning in mysql",
			dialect: "mysql",
			sql:     "DELETE FROM t WHERE id = 1 RETURNING id",
			feature: "RETURNING",
		},
		{
			name:    "locking in sqlserver",
			dialect: "sqlserver",
			sql:     "SELECT a FROM t FOR UPDATE",
			feature: "row locking clause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mosql.ParseDialect(tt.sql, tt.dialect)
			require.Error(t, err)

			var featureErr *parser.UnsupportedDialectFeatureError
			require.ErrorAs(t, err, &featureErr)
			assert.Equal(t, tt.feature, featureErr.Feature)
			assert.Equal(t, tt.dialect, featureErr.Dialect)
		})
	}
}

// Dialects without the feature never register its keyword or symbol, so the
// construct fails as ordinary ungrammatical input rather than as a
// recognized-but-gated feature.
func TestParseDialect_UnknownConstructs(t *testing.T) {
	t.Run("qualify in postgres", func(t *testing.T) {
		_, err := mosql.ParseDialect("SELECT a FROM t QUALIFY ROW_NUMBER() OVER () = 1", "postgres")
		require.Error(t, err)
	})

	t.Run("cast operator in mysql", func(t *testing.T) {
		_, err := mosql.ParseDialect("SELECT a::int FROM t", "mysql")
		require.Error(t, err)

		var lexErr *parser.LexError
		require.ErrorAs(t, err, &lexErr)
	})
}

func TestParseDialect_CastOperator(t *testing.T) {
	result, err := mosql.ParseDialect("SELECT a::int FROM t", "postgres")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"select": map[string]any{"value": map[string]any{"cast": []any{
			"a",
			map[string]any{"int": map[string]any{}},
		}}},
		"from": "t",
	}, result)
}

// TestParse_Errors covers the error taxonomy: syntax errors, lexical errors,
// trailing input, and malformed interval literals.
func TestParse_Errors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := mosql.Parse("")
		require.Error(t, err)

		var synErr *parser.SyntaxError
		require.ErrorAs(t, err, &synErr)
	})

	t.Run("trailing input", func(t *testing.T) {
		_, err := mosql.Parse("SELECT 1 SELECT 2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "after end of statement")
	})

	t.Run("unterminated string", func(t *testing.T) {
		_, err := mosql.Parse("SELECT 'oops")
		require.Error(t, err)

		var lexErr *parser.LexError
		require.ErrorAs(t, err, &lexErr)
		assert.Contains(t, err.Error(), "unterminated")
	})

	t.Run("malformed interval", func(t *testing.T) {
		_, err := mosql.Parse("SELECT INTERVAL 'garbage stuff'")
		require.Error(t, err)

		var intErr *parser.IntervalFormatError
		require.ErrorAs(t, err, &intErr)
		assert.Equal(t, "garbage stuff", intErr.Literal)
	})

	t.Run("missing from item", func(t *testing.T) {
		_, err := mosql.Parse("SELECT a FROM WHERE b = 1")
		require.Error(t, err)
	})

	t.Run("error carries position", func(t *testing.T) {
		_, err := mosql.Parse("SELECT a FROM t WHERE")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 1")
	})
}

// TestParseTraced verifies the tracer observes rule entry and exit without
// changing the parse result.
func TestParseTraced(t *testing.T) {
	sql := "SELECT a FROM t WHERE b = 1"

	plain, err := mosql.Parse(sql)
	require.NoError(t, err)

	var buf strings.Builder
	traced, err := mosql.ParseTraced(sql, mustDialect(t, "ansi"), trace.NewWriter(&buf))
	require.NoError(t, err)

	assert.Equal(t, plain, traced)
	assert.Contains(t, buf.String(), "statement")
	assert.Contains(t, buf.String(), "select")
}

func mustDialect(t *testing.T, name string) *dialect.Dialect {
	t.Helper()
	d, ok := dialect.Get(name)
	require.True(t, ok, "dialect %s not registered", name)
	return d
}

// Sanity check that all bundled dialects registered via their init functions.
func TestRegisteredDialects(t *testing.T) {
	for _, name := range []string{"ansi", "postgres", "mysql", "bigquery", "snowflake", "sqlserver"} {
		_, ok := dialect.Get(name)
		assert.True(t, ok, "dialect %s missing from registry", name)
	}
}
