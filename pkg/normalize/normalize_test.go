package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/token"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{
			name: "scalar passes through",
			in:   42,
			want: 42,
		},
		{
			name: "singleton list collapses",
			in:   []any{"x"},
			want: "x",
		},
		{
			name: "nested singleton collapses recursively",
			in:   []any{[]any{"x"}},
			want: "x",
		},
		{
			name: "longer lists keep their elements",
			in:   []any{"x", "y"},
			want: []any{"x", "y"},
		},
		{
			name: "maps recurse",
			in:   map[string]any{"select": []any{map[string]any{"value": "a"}}},
			want: map[string]any{"select": map[string]any{"value": "a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonical(tt.in))
		})
	}
}

// The normalizer never emits single-element sequences, so re-canonicalizing
// its output must change nothing.
func TestCanonical_IdempotentOnStatements(t *testing.T) {
	stmt := &core.SelectStmt{
		Items: []core.SelectItem{
			{Expr: core.Name("a")},
			{Expr: &core.Binary{Op: token.PLUS, Left: core.Name("b"), Right: core.Name("c")}, Alias: "s"},
		},
		From:  []core.FromItem{{Source: &core.TableName{Name: core.Name("t")}}},
		Where: &core.IsNull{Expr: core.Name("a"), Not: true},
	}

	result := Statement(stmt)
	assert.Equal(t, result, Canonical(result))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, 42, number("42"))
	assert.Equal(t, -5, number("-5"))
	assert.Equal(t, 0.5, number("0.5"))
	assert.Equal(t, 1e10, number("1e10"))
	assert.Equal(t, "x", number("x"))
}

func TestIdentString(t *testing.T) {
	tests := []struct {
		name  string
		ident *core.Ident
		want  string
	}{
		{
			name:  "single part",
			ident: core.Name("a"),
			want:  "a",
		},
		{
			name: "dotted parts join",
			ident: &core.Ident{Parts: []core.IdentPart{
				{Name: "t"}, {Name: "col"},
			}},
			want: "t.col",
		},
		{
			name: "dots inside quoted part double",
			ident: &core.Ident{Parts: []core.IdentPart{
				{Name: "projeto.dataset.tabela", Quoted: true},
			}},
			want: "projeto..dataset..tabela",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identString(tt.ident))
		})
	}
}

func TestNormUnary(t *testing.T) {
	t.Run("minus folds into integer", func(t *testing.T) {
		expr := &core.Unary{Op: token.MINUS, Expr: &core.Literal{Kind: core.LiteralNumber, Value: "5"}}
		assert.Equal(t, -5, normExpr(expr))
	})

	t.Run("minus folds into float", func(t *testing.T) {
		expr := &core.Unary{Op: token.MINUS, Expr: &core.Literal{Kind: core.LiteralNumber, Value: "0.5"}}
		assert.Equal(t, -0.5, normExpr(expr))
	})

	t.Run("minus on identifier becomes neg", func(t *testing.T) {
		expr := &core.Unary{Op: token.MINUS, Expr: core.Name("x")}
		assert.Equal(t, map[string]any{"neg": "x"}, normExpr(expr))
	})

	t.Run("not wraps operand", func(t *testing.T) {
		expr := &core.Unary{Op: token.NOT, Expr: core.Name("x")}
		assert.Equal(t, map[string]any{"not": "x"}, normExpr(expr))
	})
}

func TestNormBinary_ChainFlattening(t *testing.T) {
	// (a + b) + c flattens; (a - b) - c does not.
	add := &core.Binary{
		Op:    token.PLUS,
		Left:  &core.Binary{Op: token.PLUS, Left: core.Name("a"), Right: core.Name("b")},
		Right: core.Name("c"),
	}
	assert.Equal(t, map[string]any{"add": []any{"a", "b", "c"}}, normExpr(add))

	sub := &core.Binary{
		Op:    token.MINUS,
		Left:  &core.Binary{Op: token.MINUS, Left: core.Name("a"), Right: core.Name("b")},
		Right: core.Name("c"),
	}
	assert.Equal(t, map[string]any{
		"sub": []any{map[string]any{"sub": []any{"a", "b"}}, "c"},
	}, normExpr(sub))
}

func TestNormLiteral(t *testing.T) {
	tests := []struct {
		name string
		lit  *core.Literal
		want any
	}{
		{name: "integer", lit: &core.Literal{Kind: core.LiteralNumber, Value: "7"}, want: 7},
		{name: "float", lit: &core.Literal{Kind: core.LiteralNumber, Value: "0.1"}, want: 0.1},
		{name: "string wraps", lit: &core.Literal{Kind: core.LiteralString, Value: "hi"}, want: map[string]any{"literal": "hi"}},
		{name: "true", lit: &core.Literal{Kind: core.LiteralBool, Value: "true"}, want: true},
		{name: "false", lit: &core.Literal{Kind: core.LiteralBool, Value: "false"}, want: false},
		{name: "null", lit: &core.Literal{Kind: core.LiteralNull}, want: map[string]any{"null": map[string]any{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normExpr(tt.lit))
		})
	}
}

func TestStatement_UnknownNodeIsNil(t *testing.T) {
	require.Nil(t, Statement(nil))
}
