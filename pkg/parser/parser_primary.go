package parser

import (
	"strings"

	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/token"
)

// parsePrimary parses literals, identifiers, function calls, special forms,
// and parenthesized expressions.
func (p *Parser) parsePrimary() core.Expr {
	switch {
	case p.check(token.NUMBER):
		lit := &core.Literal{Kind: core.LiteralNumber, Value: p.token.Literal}
		p.advance()
		return lit

	case p.check(token.STRING):
		lit := &core.Literal{Kind: core.LiteralString, Value: p.token.Literal}
		p.advance()
		return lit

	case p.check(token.TRUE):
		p.advance()
		return &core.Literal{Kind: core.LiteralBool, Value: "true"}

	case p.check(token.FALSE):
		p.advance()
		return &core.Literal{Kind: core.LiteralBool, Value: "false"}

	case p.check(token.NULL):
		p.advance()
		return &core.Literal{Kind: core.LiteralNull}

	case p.check(token.CASE):
		return p.parseCase()

	case p.check(token.CAST):
		return p.parseCast()

	case p.check(token.TRIM):
		return p.parseTrim()

	case p.check(token.SUBSTRING):
		return p.parseSubstring()

	case p.check(token.EXTRACT):
		return p.parseExtract()

	case p.check(token.INTERVAL):
		return p.parseInterval()

	case p.check(token.EXISTS):
		p.advance()
		if !p.expect(token.LPAREN) {
			return nil
		}
		query := p.parseQueryExpr()
		if query == nil {
			return nil
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return &core.Exists{Query: query}

	case p.check(token.LPAREN):
		if p.startsQueryAfterParen() {
			p.advance()
			query := p.parseQueryExpr()
			if query == nil {
				return nil
			}
			if !p.expect(token.RPAREN) {
				return nil
			}
			return &core.Subquery{Query: query}
		}
		p.advance()
		expr := p.parseExpr()
		if expr == nil {
			return nil
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return expr

	case p.check(token.STAR):
		p.advance()
		return &core.Star{}

	case p.check(token.IDENT):
		if !p.token.Quoted && p.checkPeek(token.LPAREN) {
			return p.parseFuncCall()
		}
		return p.parseIdent()

	default:
		p.addError("unexpected token " + p.describe(p.token) + " in expression")
		return nil
	}
}

// parseIdent parses a possibly-qualified identifier. A trailing .* produces
// a qualified star.
func (p *Parser) parseIdent() core.Expr {
	part := p.identPart()
	parts := []core.IdentPart{part}

	for p.check(token.DOT) {
		p.advance()
		if p.check(token.STAR) {
			p.advance()
			return &core.Star{Table: joinParts(parts)}
		}
		if !p.check(token.IDENT) {
			p.addError("expected identifier after '.'")
			return nil
		}
		parts = append(parts, p.identPart())
	}

	return &core.Ident{Parts: parts}
}

// identPart consumes the current IDENT token as an identifier component,
// applying dialect case folding to unquoted names.
func (p *Parser) identPart() core.IdentPart {
	part := core.IdentPart{Name: p.token.Literal, Quoted: p.token.Quoted}
	if !part.Quoted {
		part.Name = p.dialect.NormalizeName(part.Name)
	}
	p.advance()
	return part
}

// joinParts joins identifier parts for a qualified star prefix. Dots inside
// quoted parts double so they stay distinct from the part separator.
func joinParts(parts []core.IdentPart) string {
	names := make([]string, len(parts))
	for i, part := range parts {
		name := part.Name
		if part.Quoted {
			name = strings.ReplaceAll(name, ".", "..")
		}
		names[i] = name
	}
	return strings.Join(names, ".")
}

// parseFuncCall parses name(...) with optional DISTINCT, FILTER, and OVER.
func (p *Parser) parseFuncCall() core.Expr {
	call := &core.FuncCall{Name: p.token.Literal}
	p.advance() // name
	p.advance() // (

	if p.check(token.DISTINCT) {
		call.Distinct = true
		p.advance()
	}

	switch {
	case p.check(token.RPAREN):
		// no arguments
	case p.check(token.STAR) && p.checkPeek(token.RPAREN):
		call.Star = true
		p.advance()
	default:
		for {
			arg := p.parseExpr()
			if arg == nil {
				return nil
			}
			call.Args = append(call.Args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	if !p.expect(token.RPAREN) {
		return nil
	}

	if p.check(token.FILTER) {
		p.advance()
		if !p.expect(token.LPAREN) {
			return nil
		}
		if !p.expect(token.WHERE) {
			return nil
		}
		cond := p.parseExpr()
		if cond == nil {
			return nil
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		call.Filter = cond
	}

	if p.check(token.OVER) {
		over := p.parseOverClause()
		if over == nil {
			return nil
		}
		call.Over = over
	}

	return call
}
