package parser

import (
	"strings"

	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/token"
)

// parseCase parses both simple and searched CASE expressions.
func (p *Parser) parseCase() core.Expr {
	p.advance() // CASE

	expr := &core.Case{}
	if !p.check(token.WHEN) {
		operand := p.parseExpr()
		if operand == nil {
			return nil
		}
		expr.Operand = operand
	}

	for p.check(token.WHEN) {
		p.advance()
		cond := p.parseExpr()
		if cond == nil {
			return nil
		}
		if !p.expect(token.THEN) {
			return nil
		}
		result := p.parseExpr()
		if result == nil {
			return nil
		}
		expr.Whens = append(expr.Whens, core.When{Condition: cond, Result: result})
	}
	if len(expr.Whens) == 0 {
		p.addError("CASE expression requires at least one WHEN arm")
		return nil
	}

	if p.check(token.ELSE) {
		p.advance()
		els := p.parseExpr()
		if els == nil {
			return nil
		}
		expr.Else = els
	}

	if !p.expect(token.END) {
		return nil
	}
	return expr
}

// parseCast parses CAST(expr AS type).
func (p *Parser) parseCast() core.Expr {
	p.advance() // CAST
	if !p.expect(token.LPAREN) {
		return nil
	}
	expr := p.parseExpr()
	if expr == nil {
		return nil
	}
	if !p.expect(token.AS) {
		return nil
	}
	typ := p.parseTypeSpec()
	if typ == nil {
		return nil
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	return &core.Cast{Expr: expr, Type: typ}
}

// parseTypeSpec parses a type name with optional parameters, such as
// varchar(255), numeric(12, 0), or interval.
func (p *Parser) parseTypeSpec() *core.TypeSpec {
	part, ok := p.parseTypePart()
	if !ok {
		return nil
	}
	return &core.TypeSpec{Parts: []core.TypePart{part}}
}

// parseTypePart parses one type component: a name and optional argument list.
func (p *Parser) parseTypePart() (core.TypePart, bool) {
	name, ok := p.typeName()
	if !ok {
		p.addError("expected type name, got " + p.describe(p.token))
		return core.TypePart{}, false
	}
	p.advance()

	part := core.TypePart{Name: name}
	if p.check(token.LPAREN) {
		p.advance()
		for {
			arg := p.parseExpr()
			if arg == nil {
				return core.TypePart{}, false
			}
			part.Args = append(part.Args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
		if !p.expect(token.RPAREN) {
			return core.TypePart{}, false
		}
	}
	return part, true
}

// typeName returns the lowercase type name at the current token. Type names
// are plain identifiers plus the keywords that double as type names.
func (p *Parser) typeName() (string, bool) {
	switch {
	case p.check(token.IDENT) && !p.token.Quoted:
		return strings.ToLower(p.token.Literal), true
	case p.check(token.INTERVAL), p.check(token.TIME):
		return strings.ToLower(p.token.Literal), true
	default:
		return "", false
	}
}

// parseTrim parses TRIM([LEADING|TRAILING|BOTH] [chars] FROM string) and
// the plain TRIM(string) call.
func (p *Parser) parseTrim() core.Expr {
	p.advance() // TRIM
	if !p.expect(token.LPAREN) {
		return nil
	}

	trim := &core.Trim{}
	switch {
	case p.check(token.LEADING):
		trim.Mode = "leading"
		p.advance()
	case p.check(token.TRAILING):
		trim.Mode = "trailing"
		p.advance()
	case p.check(token.BOTH):
		trim.Mode = "both"
		p.advance()
	}

	if p.check(token.FROM) {
		// TRIM(LEADING FROM x): mode without trim characters.
		p.advance()
		expr := p.parseExpr()
		if expr == nil {
			return nil
		}
		trim.Expr = expr
	} else {
		first := p.parseExpr()
		if first == nil {
			return nil
		}
		if p.check(token.FROM) {
			p.advance()
			expr := p.parseExpr()
			if expr == nil {
				return nil
			}
			trim.Chars = first
			trim.Expr = expr
		} else {
			trim.Expr = first
		}
	}

	if !p.expect(token.RPAREN) {
		return nil
	}
	return trim
}

// parseSubstring parses SUBSTRING(string FROM start [FOR length]). The
// comma-argument form parses as an ordinary function call.
func (p *Parser) parseSubstring() core.Expr {
	p.advance() // SUBSTRING
	if !p.expect(token.LPAREN) {
		return nil
	}

	expr := p.parseExpr()
	if expr == nil {
		return nil
	}

	if p.check(token.COMMA) {
		call := &core.FuncCall{Name: "substring", Args: []core.Expr{expr}}
		for p.match(token.COMMA) {
			arg := p.parseExpr()
			if arg == nil {
				return nil
			}
			call.Args = append(call.Args, arg)
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return call
	}

	sub := &core.Substring{Expr: expr}
	if p.check(token.FROM) {
		p.advance()
		from := p.parseExpr()
		if from == nil {
			return nil
		}
		sub.From = from
	}
	if p.check(token.FOR) {
		p.advance()
		length := p.parseExpr()
		if length == nil {
			return nil
		}
		sub.For = length
	}

	if !p.expect(token.RPAREN) {
		return nil
	}
	return sub
}

// parseExtract parses EXTRACT(unit FROM expr).
func (p *Parser) parseExtract() core.Expr {
	p.advance() // EXTRACT
	if !p.expect(token.LPAREN) {
		return nil
	}

	if !p.check(token.IDENT) && !token.IsKeyword(p.token.Type) {
		p.addError("expected datetime field in EXTRACT, got " + p.describe(p.token))
		return nil
	}
	unit := strings.ToLower(p.token.Literal)
	p.advance()

	if !p.expect(token.FROM) {
		return nil
	}
	expr := p.parseExpr()
	if expr == nil {
		return nil
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	return &core.Extract{Unit: unit, Expr: expr}
}
