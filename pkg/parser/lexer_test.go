package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paull87/mo-sql-parsing/pkg/dialect"
	"github.com/paull87/mo-sql-parsing/pkg/dialects/ansi"
	"github.com/paull87/mo-sql-parsing/pkg/dialects/mysql"
	"github.com/paull87/mo-sql-parsing/pkg/dialects/sqlserver"
	"github.com/paull87/mo-sql-parsing/pkg/token"
)

func TestLexer_TokenStream(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Token
	}{
		{
			name:  "keywords and identifiers",
			input: "SELECT id FROM users",
			want: []token.Token{
				{Type: token.SELECT, Literal: "SELECT"},
				{Type: token.IDENT, Literal: "id"},
				{Type: token.FROM, Literal: "FROM"},
				{Type: token.IDENT, Literal: "users"},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "keywords are case insensitive",
			input: "select Id fRoM t",
			want: []token.Token{
				{Type: token.SELECT, Literal: "select"},
				{Type: token.IDENT, Literal: "Id"},
				{Type: token.FROM, Literal: "fRoM"},
				{Type: token.IDENT, Literal: "t"},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "operators",
			input: "a <= b <> c || d != e",
			want: []token.Token{
				{Type: token.IDENT, Literal: "a"},
				{Type: token.LE, Literal: "<="},
				{Type: token.IDENT, Literal: "b"},
				{Type: token.NE, Literal: "<>"},
				{Type: token.IDENT, Literal: "c"},
				{Type: token.DPIPE, Literal: "||"},
				{Type: token.IDENT, Literal: "d"},
				{Type: token.NE, Literal: "!="},
				{Type: token.IDENT, Literal: "e"},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "numbers",
			input: "1 2.5 1e10 3.14e-2",
			want: []token.Token{
				{Type: token.NUMBER, Literal: "1"},
				{Type: token.NUMBER, Literal: "2.5"},
				{Type: token.NUMBER, Literal: "1e10"},
				{Type: token.NUMBER, Literal: "3.14e-2"},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "string with doubled quote escape",
			input: "'it''s'",
			want: []token.Token{
				{Type: token.STRING, Literal: "it's"},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "line comment skipped",
			input: "SELECT 1 -- trailing comment\n+ 2",
			want: []token.Token{
				{Type: token.SELECT, Literal: "SELECT"},
				{Type: token.NUMBER, Literal: "1"},
				{Type: token.PLUS, Literal: "+"},
				{Type: token.NUMBER, Literal: "2"},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "block comment skipped",
			input: "SELECT /* a\nmultiline comment */ 1",
			want: []token.Token{
				{Type: token.SELECT, Literal: "SELECT"},
				{Type: token.NUMBER, Literal: "1"},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "multi-byte identifiers stay whole",
			input: "SELECT café FROM naïve",
			want: []token.Token{
				{Type: token.SELECT, Literal: "SELECT"},
				{Type: token.IDENT, Literal: "café"},
				{Type: token.FROM, Literal: "FROM"},
				{Type: token.IDENT, Literal: "naïve"},
				{Type: token.EOF, Literal: ""},
			},
		},
		{
			name:  "cast operator symbol",
			input: "a::int",
			want: []token.Token{
				{Type: token.IDENT, Literal: "a"},
				{Type: dialect.DCOLON, Literal: "::"},
				{Type: token.IDENT, Literal: "int"},
				{Type: token.EOF, Literal: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input, ansi.ANSI)
			require.Len(t, tokens, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.Type, tokens[i].Type, "token %d type", i)
				assert.Equal(t, want.Literal, tokens[i].Literal, "token %d literal", i)
			}
		})
	}
}

func TestLexer_QuotedIdentifiers(t *testing.T) {
	t.Run("double quotes", func(t *testing.T) {
		tokens := Tokenize(`"Mixed Case"`, ansi.ANSI)
		require.Len(t, tokens, 2)
		assert.Equal(t, token.IDENT, tokens[0].Type)
		assert.Equal(t, "Mixed Case", tokens[0].Literal)
		assert.True(t, tokens[0].Quoted)
	})

	t.Run("backticks", func(t *testing.T) {
		tokens := Tokenize("`projeto.dataset.tabela`", ansi.ANSI)
		require.Len(t, tokens, 2)
		assert.Equal(t, token.IDENT, tokens[0].Type)
		assert.Equal(t, "projeto.dataset.tabela", tokens[0].Literal)
		assert.True(t, tokens[0].Quoted)
	})

	t.Run("brackets in bracket dialect", func(t *testing.T) {
		tokens := Tokenize("[My Table]", sqlserver.SQLServer)
		require.Len(t, tokens, 2)
		assert.Equal(t, token.IDENT, tokens[0].Type)
		assert.Equal(t, "My Table", tokens[0].Literal)
		assert.True(t, tokens[0].Quoted)
	})

	t.Run("brackets elsewhere are punctuation", func(t *testing.T) {
		tokens := Tokenize("[x]", ansi.ANSI)
		require.Len(t, tokens, 4)
		assert.Equal(t, token.LBRACKET, tokens[0].Type)
		assert.Equal(t, token.IDENT, tokens[1].Type)
		assert.Equal(t, token.RBRACKET, tokens[2].Type)
	})

	t.Run("unquoted identifiers are not marked quoted", func(t *testing.T) {
		tokens := Tokenize("plain", ansi.ANSI)
		require.Len(t, tokens, 2)
		assert.False(t, tokens[0].Quoted)
	})
}

func TestLexer_DynamicKeywords(t *testing.T) {
	t.Run("qualify where supported", func(t *testing.T) {
		tokens := Tokenize("qualify", ansi.ANSI)
		require.Len(t, tokens, 2)
		assert.Equal(t, dialect.QUALIFY, tokens[0].Type)
	})

	t.Run("qualify elsewhere is an identifier", func(t *testing.T) {
		tokens := Tokenize("qualify", mysql.MySQL)
		require.Len(t, tokens, 2)
		assert.Equal(t, token.IDENT, tokens[0].Type)
	})

	t.Run("ilike where supported", func(t *testing.T) {
		tokens := Tokenize("a ILIKE b", ansi.ANSI)
		require.Len(t, tokens, 4)
		assert.Equal(t, dialect.ILIKE, tokens[1].Type)
	})
}

func TestLexer_Positions(t *testing.T) {
	tokens := Tokenize("SELECT\n  a", ansi.ANSI)
	require.Len(t, tokens, 3)

	assert.Equal(t, 1, tokens[0].Pos.Line)
	assert.Equal(t, 1, tokens[0].Pos.Column)
	assert.Equal(t, 0, tokens[0].Pos.Offset)

	assert.Equal(t, 2, tokens[1].Pos.Line)
	assert.Equal(t, 3, tokens[1].Pos.Column)
	assert.Equal(t, 9, tokens[1].Pos.Offset)
}

func TestLexer_Errors(t *testing.T) {
	t.Run("unterminated string", func(t *testing.T) {
		l := NewLexer("'oops", ansi.ANSI)
		tok := l.NextToken()
		assert.Equal(t, token.ILLEGAL, tok.Type)
		require.Error(t, l.Err())
		assert.Contains(t, l.Err().Error(), "unterminated")
	})

	t.Run("invalid character", func(t *testing.T) {
		l := NewLexer("a ? b", mysql.MySQL)
		l.NextToken() // a
		tok := l.NextToken()
		assert.Equal(t, token.ILLEGAL, tok.Type)
		require.Error(t, l.Err())
	})

	t.Run("first error is kept", func(t *testing.T) {
		l := NewLexer("? !", mysql.MySQL)
		l.NextToken()
		l.NextToken()
		require.Error(t, l.Err())
		assert.Contains(t, l.Err().Error(), "?")
	})
}
