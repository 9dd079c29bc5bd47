// Package parser turns SQL text into a parse tree.
//
// The parser is a hand-written recursive-descent parser with
// precedence-climbing expression parsing and three tokens of lookahead.
// Dialect capability flags gate constructs that not every dialect accepts
// (QUALIFY, DISTINCT ON, ILIKE, the :: cast operator, TABLESAMPLE, row
// locking, RETURNING). The parse tree is dialect-neutral; pkg/normalize
// renders it into the canonical mapping form.
package parser

import (
	"fmt"

	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/dialect"
	"github.com/paull87/mo-sql-parsing/pkg/token"
	"github.com/paull87/mo-sql-parsing/pkg/trace"
)

// Position is the parser's view of a source location.
type Position = token.Position

// Parser parses a token stream into statements.
type Parser struct {
	lexer   *Lexer
	dialect *dialect.Dialect

	token token.Token   // current token
	peek  token.Token   // next token
	peek2 token.Token   // token after next
	extra []token.Token // tokens lexed beyond the window during extended lookahead

	tracer trace.Tracer
	errors []error
}

// New creates a Parser over the given SQL text for the given dialect.
func New(input string, d *dialect.Dialect) *Parser {
	p := &Parser{
		lexer:   NewLexer(input, d),
		dialect: d,
		tracer:  trace.Nop{},
	}
	// Prime the lookahead window.
	p.advance()
	p.advance()
	p.advance()
	return p
}

// SetTracer installs a grammar observer. The tracer receives rule events
// but cannot alter the result.
func (p *Parser) SetTracer(t trace.Tracer) {
	if t == nil {
		t = trace.Nop{}
	}
	p.tracer = t
}

// Parse parses a single statement and verifies all input was consumed.
func (p *Parser) Parse() (core.Statement, error) {
	stmt := p.parseStatement()
	if stmt == nil || len(p.errors) > 0 {
		return nil, p.firstError()
	}

	// Optional trailing semicolon, then EOF.
	if p.check(token.SEMICOLON) {
		p.advance()
	}
	if !p.check(token.EOF) {
		p.addError(fmt.Sprintf(ErrTrailingInput, p.describe(p.token)))
		return nil, p.firstError()
	}
	return stmt, nil
}

// advance shifts the lookahead window by one token.
func (p *Parser) advance() {
	p.token = p.peek
	p.peek = p.peek2
	if len(p.extra) > 0 {
		p.peek2 = p.extra[0]
		p.extra = p.extra[1:]
	} else {
		p.peek2 = p.lexer.NextToken()
	}
}

// peekBeyond returns the nth token after the current one, lexing further
// into the buffer as needed. peekBeyond(1) is the peek token.
func (p *Parser) peekBeyond(n int) token.Token {
	switch n {
	case 0:
		return p.token
	case 1:
		return p.peek
	case 2:
		return p.peek2
	}
	for len(p.extra) < n-2 {
		p.extra = append(p.extra, p.lexer.NextToken())
	}
	return p.extra[n-3]
}

// check reports whether the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.token.Type == t
}

// checkPeek reports whether the next token is of the given type.
func (p *Parser) checkPeek(t token.TokenType) bool {
	return p.peek.Type == t
}

// checkPeek2 reports whether the token after next is of the given type.
func (p *Parser) checkPeek2(t token.TokenType) bool {
	return p.peek2.Type == t
}

// match consumes the current token if it is of the given type.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it matches, or records a syntax error.
func (p *Parser) expect(t token.TokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	p.addError(fmt.Sprintf(ErrUnexpectedToken, p.describe(p.token), t.String()))
	return false
}

// addError records a syntax error at the current token.
func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, &SyntaxError{Pos: p.token.Pos, Message: msg})
}

// addErrorAt records a syntax error at an explicit position.
func (p *Parser) addErrorAt(pos Position, msg string) {
	p.errors = append(p.errors, &SyntaxError{Pos: pos, Message: msg})
}

// featureError records that the current construct is not available in the
// active dialect.
func (p *Parser) featureError(pos Position, feature string) {
	p.errors = append(p.errors, &UnsupportedDialectFeatureError{
		Pos:     pos,
		Feature: feature,
		Dialect: p.dialect.Name,
	})
}

// firstError returns the error to surface for a failed parse. Lexical
// errors take priority over the syntax errors they cascade into.
func (p *Parser) firstError() error {
	if err := p.lexer.Err(); err != nil {
		return err
	}
	if len(p.errors) > 0 {
		return p.errors[0]
	}
	return &SyntaxError{Pos: p.token.Pos, Message: "unable to parse statement"}
}

// describe renders a token for an error message.
func (p *Parser) describe(tok token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of input"
	case token.IDENT, token.NUMBER:
		return fmt.Sprintf("%q", tok.Literal)
	case token.STRING:
		return fmt.Sprintf("'%s'", tok.Literal)
	default:
		if tok.Literal != "" {
			return fmt.Sprintf("%q", tok.Literal)
		}
		return tok.Type.String()
	}
}

// isKeywordLiteral reports whether the current token is the given keyword
// spelled as a plain identifier. Words that are not reserved in every
// dialect (FILTER, OVER, interval units, sample methods) arrive as IDENT.
func (p *Parser) isKeywordLiteral(word string) bool {
	return p.token.Type == token.IDENT && !p.token.Quoted && equalFold(p.token.Literal, word)
}

// peekKeywordLiteral is isKeywordLiteral for the next token.
func (p *Parser) peekKeywordLiteral(word string) bool {
	return p.peek.Type == token.IDENT && !p.peek.Quoted && equalFold(p.peek.Literal, word)
}

// equalFold is an ASCII-only case-insensitive comparison.
func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
