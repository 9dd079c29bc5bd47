package parser

import (
	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/dialect"
	"github.com/paull87/mo-sql-parsing/pkg/token"
)

// parseExpr parses a full scalar expression.
func (p *Parser) parseExpr() core.Expr {
	return p.parseBinaryExpr(dialect.PrecedenceNone)
}

// parseBinaryExpr parses expressions by precedence climbing. Operators at
// the same tier associate left to right.
func (p *Parser) parseBinaryExpr(minPrec int) core.Expr {
	left := p.parseUnaryExpr()
	if left == nil {
		return nil
	}

	for {
		prec := p.dialect.Precedence(p.token.Type)
		if prec == dialect.PrecedenceNone || prec <= minPrec {
			return left
		}

		switch {
		case p.check(token.NOT):
			// Infix NOT only prefixes IN, BETWEEN, LIKE, and ILIKE.
			if !p.checkPeek(token.IN) && !p.checkPeek(token.BETWEEN) &&
				!p.checkPeek(token.LIKE) && !p.checkPeek(dialect.ILIKE) {
				return left
			}
			p.advance()
			left = p.parseComparisonSuffix(left, true)

		case p.check(token.IN), p.check(token.BETWEEN), p.check(token.LIKE), p.check(dialect.ILIKE):
			left = p.parseComparisonSuffix(left, false)

		case p.check(token.IS):
			left = p.parseIsSuffix(left)

		case p.check(dialect.DCOLON):
			p.advance()
			typ := p.parseTypeSpec()
			if typ == nil {
				return nil
			}
			left = &core.Cast{Expr: left, Type: typ}

		case p.check(token.AT):
			if !p.checkPeek(token.TIME) {
				return left
			}
			p.advance() // AT
			p.advance() // TIME
			if !p.expect(token.ZONE) {
				return nil
			}
			zone := p.parseUnaryExpr()
			if zone == nil {
				return nil
			}
			left = &core.AtTimeZone{Expr: left, Zone: zone}

		default:
			op := p.token.Type
			p.advance()
			right := p.parseBinaryExpr(prec)
			if right == nil {
				return nil
			}
			left = &core.Binary{Op: op, Left: left, Right: right}
		}

		if left == nil {
			return nil
		}
	}
}

// parseComparisonSuffix parses the IN / BETWEEN / LIKE / ILIKE tail after
// the subject expression and optional NOT have been consumed.
func (p *Parser) parseComparisonSuffix(left core.Expr, not bool) core.Expr {
	switch {
	case p.check(token.IN):
		p.advance()
		return p.parseInTail(left, not)

	case p.check(token.BETWEEN):
		p.advance()
		// Bounds parse above AND so the range separator is not swallowed.
		low := p.parseBinaryExpr(dialect.PrecedenceComparison)
		if low == nil {
			return nil
		}
		if !p.expect(token.AND) {
			return nil
		}
		high := p.parseBinaryExpr(dialect.PrecedenceComparison)
		if high == nil {
			return nil
		}
		return &core.Between{Expr: left, Not: not, Low: low, High: high}

	case p.check(token.LIKE), p.check(dialect.ILIKE):
		ci := p.check(dialect.ILIKE)
		p.advance()
		pattern := p.parseBinaryExpr(dialect.PrecedenceComparison)
		if pattern == nil {
			return nil
		}
		return &core.Like{Expr: left, Not: not, Pattern: pattern, CaseInsensitive: ci}

	default:
		p.addError("expected IN, BETWEEN, or LIKE after NOT")
		return nil
	}
}

// parseInTail parses the parenthesized value list or subquery of IN.
func (p *Parser) parseInTail(left core.Expr, not bool) core.Expr {
	if !p.expect(token.LPAREN) {
		return nil
	}

	if p.startsQuery() {
		query := p.parseQueryExpr()
		if query == nil {
			return nil
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return &core.In{Expr: left, Not: not, Query: query}
	}

	var values []core.Expr
	for {
		v := p.parseExpr()
		if v == nil {
			return nil
		}
		values = append(values, v)
		if !p.match(token.COMMA) {
			break
		}
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	return &core.In{Expr: left, Not: not, Values: values}
}

// parseIsSuffix parses IS [NOT] NULL.
func (p *Parser) parseIsSuffix(left core.Expr) core.Expr {
	p.advance() // IS
	not := p.match(token.NOT)
	if !p.expect(token.NULL) {
		return nil
	}
	return &core.IsNull{Expr: left, Not: not}
}

// parseUnaryExpr parses prefix operators and delegates to the primary parser.
func (p *Parser) parseUnaryExpr() core.Expr {
	switch {
	case p.check(token.NOT):
		p.advance()
		operand := p.parseBinaryExpr(dialect.PrecedenceNot)
		if operand == nil {
			return nil
		}
		return &core.Unary{Op: token.NOT, Expr: operand}

	case p.check(token.MINUS):
		p.advance()
		operand := p.parseUnaryExpr()
		if operand == nil {
			return nil
		}
		return &core.Unary{Op: token.MINUS, Expr: operand}

	case p.check(token.PLUS):
		p.advance()
		// Unary plus is an identity.
		return p.parseUnaryExpr()

	default:
		return p.parsePrimary()
	}
}

// startsQuery reports whether the current token begins a query expression.
func (p *Parser) startsQuery() bool {
	return p.check(token.SELECT) || p.check(token.WITH) ||
		(p.check(token.LPAREN) && p.startsQueryAfterParen())
}

// startsQueryAfterParen peeks past the current open paren, skipping any
// further opening parens so ((SELECT ...)) is recognized as a query while
// ((a = 1)) stays an expression.
func (p *Parser) startsQueryAfterParen() bool {
	n := 1
	for p.peekBeyond(n).Type == token.LPAREN {
		n++
	}
	t := p.peekBeyond(n).Type
	return t == token.SELECT || t == token.WITH
}
