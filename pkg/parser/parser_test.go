package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/dialects/ansi"
	"github.com/paull87/mo-sql-parsing/pkg/token"
)

func parseStatementForTest(t *testing.T, sql string) core.Statement {
	t.Helper()
	p := New(sql, ansi.ANSI)
	stmt, err := p.Parse()
	require.NoError(t, err)
	return stmt
}

func TestParser_StatementDispatch(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want any
	}{
		{name: "select", sql: "SELECT 1", want: &core.SelectStmt{}},
		{name: "with", sql: "WITH c AS (SELECT 1) SELECT * FROM c", want: &core.WithStmt{}},
		{name: "insert", sql: "INSERT INTO t VALUES (1)", want: &core.InsertStmt{}},
		{name: "update", sql: "UPDATE t SET a = 1", want: &core.UpdateStmt{}},
		{name: "delete", sql: "DELETE FROM t", want: &core.DeleteStmt{}},
		{name: "create table", sql: "CREATE TABLE t (a NUMBER)", want: &core.CreateTableStmt{}},
		{name: "set operation", sql: "SELECT 1 UNION SELECT 2", want: &core.SetOpStmt{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := parseStatementForTest(t, tt.sql)
			assert.IsType(t, tt.want, stmt)
		})
	}
}

// Distinguishing a parenthesized subquery from a parenthesized expression
// needs lookahead past the fixed window once parens nest deeper than two.
func TestParser_ParenDisambiguation(t *testing.T) {
	t.Run("deeply nested subquery", func(t *testing.T) {
		stmt := parseStatementForTest(t, "SELECT ((((SELECT 1))))")
		sel, ok := stmt.(*core.SelectStmt)
		require.True(t, ok)
		require.Len(t, sel.Items, 1)
		assert.IsType(t, &core.Subquery{}, sel.Items[0].Expr)
	})

	t.Run("deeply nested scalar", func(t *testing.T) {
		stmt := parseStatementForTest(t, "SELECT ((((1))))")
		sel, ok := stmt.(*core.SelectStmt)
		require.True(t, ok)
		require.Len(t, sel.Items, 1)
		assert.IsType(t, &core.Literal{}, sel.Items[0].Expr)
	})

	t.Run("parenthesized boolean condition", func(t *testing.T) {
		stmt := parseStatementForTest(t, "SELECT * FROM t WHERE ((a = 1) AND (b = 2))")
		sel, ok := stmt.(*core.SelectStmt)
		require.True(t, ok)
		assert.IsType(t, &core.Binary{}, sel.Where)
	})
}

func TestParser_TrailingSemicolon(t *testing.T) {
	parseStatementForTest(t, "SELECT 1;")
	parseStatementForTest(t, "SELECT 1")

	p := New("SELECT 1;;", ansi.ANSI)
	_, err := p.Parse()
	require.Error(t, err)
}

// Set-operation chains must nest left: A except B except C parses as
// (A except B) except C.
func TestParser_SetOpLeftAssociativity(t *testing.T) {
	stmt := parseStatementForTest(t, "SELECT 1 EXCEPT SELECT 2 EXCEPT SELECT 3")

	outer, ok := stmt.(*core.SetOpStmt)
	require.True(t, ok)
	assert.Equal(t, "except", outer.Op)

	inner, ok := outer.Left.(*core.SetOpStmt)
	require.True(t, ok)
	assert.Equal(t, "except", inner.Op)
	assert.IsType(t, &core.SelectStmt{}, inner.Left)
	assert.IsType(t, &core.SelectStmt{}, inner.Right)
	assert.IsType(t, &core.SelectStmt{}, outer.Right)
}

func TestParser_SetOpAll(t *testing.T) {
	stmt := parseStatementForTest(t, "SELECT 1 UNION ALL SELECT 2")
	op, ok := stmt.(*core.SetOpStmt)
	require.True(t, ok)
	assert.Equal(t, "union", op.Op)
	assert.True(t, op.All)

	stmt = parseStatementForTest(t, "SELECT 1 UNION DISTINCT SELECT 2")
	op, ok = stmt.(*core.SetOpStmt)
	require.True(t, ok)
	assert.False(t, op.All)
}

func TestParser_BareAlias(t *testing.T) {
	stmt := parseStatementForTest(t, "SELECT a x FROM t y")
	sel := stmt.(*core.SelectStmt)

	require.Len(t, sel.Items, 1)
	assert.Equal(t, "x", sel.Items[0].Alias)

	require.Len(t, sel.From, 1)
	table, ok := sel.From[0].Source.(*core.TableName)
	require.True(t, ok)
	assert.Equal(t, "y", table.Alias)
}

// Keywords never become bare aliases; the next clause starts instead.
func TestParser_KeywordStopsAlias(t *testing.T) {
	stmt := parseStatementForTest(t, "SELECT a FROM t WHERE a = 1")
	sel := stmt.(*core.SelectStmt)
	require.Len(t, sel.From, 1)
	table := sel.From[0].Source.(*core.TableName)
	assert.Empty(t, table.Alias)
	assert.NotNil(t, sel.Where)
}

func TestParser_InfixNot(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want any
	}{
		{name: "not in", sql: "SELECT * FROM t WHERE a NOT IN (1)", want: &core.In{}},
		{name: "not between", sql: "SELECT * FROM t WHERE a NOT BETWEEN 1 AND 2", want: &core.Between{}},
		{name: "not like", sql: "SELECT * FROM t WHERE a NOT LIKE 'x'", want: &core.Like{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := parseStatementForTest(t, tt.sql)
			sel := stmt.(*core.SelectStmt)
			require.IsType(t, tt.want, sel.Where)
		})
	}
}

// ruleEvent is one tracer callback recorded during a parse.
type ruleEvent struct {
	rule  string
	enter bool
	ok    bool
}

type recordingTracer struct {
	events []ruleEvent
}

func (r *recordingTracer) Enter(rule string, _ token.Position) {
	r.events = append(r.events, ruleEvent{rule: rule, enter: true})
}

func (r *recordingTracer) Exit(rule string, ok bool) {
	r.events = append(r.events, ruleEvent{rule: rule, ok: ok})
}

func TestParser_TracerObservesRules(t *testing.T) {
	rec := &recordingTracer{}
	p := New("SELECT INTERVAL '1' HOUR", ansi.ANSI)
	p.SetTracer(rec)

	_, err := p.Parse()
	require.NoError(t, err)

	var entered []string
	depth := 0
	for _, ev := range rec.events {
		if ev.enter {
			entered = append(entered, ev.rule)
			depth++
		} else {
			depth--
			assert.True(t, ev.ok, "rule %s should have matched", ev.rule)
		}
	}
	assert.Zero(t, depth, "every Enter needs a matching Exit")
	assert.Contains(t, entered, "statement")
	assert.Contains(t, entered, "select")
	assert.Contains(t, entered, "interval")
}

func TestParser_TracerSeesFailure(t *testing.T) {
	rec := &recordingTracer{}
	p := New("SELECT FROM", ansi.ANSI)
	p.SetTracer(rec)

	_, err := p.Parse()
	require.Error(t, err)

	var failed bool
	for _, ev := range rec.events {
		if !ev.enter && !ev.ok {
			failed = true
		}
	}
	assert.True(t, failed, "failed parse should report a failed rule")
}

func TestParser_NilTracerResetsToNop(t *testing.T) {
	p := New("SELECT 1", ansi.ANSI)
	p.SetTracer(nil)
	_, err := p.Parse()
	require.NoError(t, err)
}
