package parser

import (
	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/dialect"
	"github.com/paull87/mo-sql-parsing/pkg/token"
)

// parseStatement dispatches on the leading token.
func (p *Parser) parseStatement() (stmt core.Statement) {
	p.tracer.Enter("statement", p.token.Pos)
	defer func() { p.tracer.Exit("statement", stmt != nil) }()

	switch {
	case p.check(token.WITH):
		return p.parseWith()
	case p.check(token.SELECT), p.check(token.LPAREN):
		return p.parseQueryExpr()
	case p.check(token.INSERT):
		return p.parseInsert()
	case p.check(token.UPDATE):
		return p.parseUpdate()
	case p.check(token.DELETE):
		return p.parseDelete()
	case p.check(token.CREATE):
		return p.parseCreateTable()
	default:
		p.addError("expected statement, got " + p.describe(p.token))
		return nil
	}
}

// parseWith parses WITH [RECURSIVE] name AS (stmt), ... body.
func (p *Parser) parseWith() core.Statement {
	p.advance() // WITH

	with := &core.WithStmt{}
	if p.check(token.RECURSIVE) {
		with.Recursive = true
		p.advance()
	}

	for {
		if !p.check(token.IDENT) {
			p.addError("expected common table expression name, got " + p.describe(p.token))
			return nil
		}
		name := p.dialect.NormalizeName(p.token.Literal)
		p.advance()
		if !p.expect(token.AS) {
			return nil
		}
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
		with.CTEs = append(with.CTEs, core.CTE{Name: name, Query: query})
		if !p.match(token.COMMA) {
			break
		}
	}

	body := p.parseStatement()
	if body == nil {
		return nil
	}
	with.Body = body
	return with
}

// parseQueryExpr parses a query expression: SELECT operands combined with
// UNION, INTERSECT, and EXCEPT. Chains nest left-associatively, so
// A except B except C builds (A except B) except C.
func (p *Parser) parseQueryExpr() core.Statement {
	left := p.parseQueryOperand()
	if left == nil {
		return nil
	}

	for {
		var op string
		switch {
		case p.check(token.UNION):
			op = "union"
		case p.check(token.INTERSECT):
			op = "intersect"
		case p.check(token.EXCEPT):
			op = "except"
		default:
			return left
		}
		p.advance()

		all := false
		if p.check(token.ALL) {
			all = true
			p.advance()
		} else if p.check(token.DISTINCT) {
			p.advance()
		}

		right := p.parseQueryOperand()
		if right == nil {
			return nil
		}
		left = &core.SetOpStmt{Op: op, All: all, Left: left, Right: right}
	}
}

// parseQueryOperand parses one set-operation operand: a SELECT core or a
// parenthesized query expression.
func (p *Parser) parseQueryOperand() core.Statement {
	if p.check(token.LPAREN) {
		p.advance()
		stmt := p.parseQueryExpr()
		if stmt == nil {
			return nil
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return stmt
	}
	return p.parseSelectCore()
}

// parseSelectCore parses one SELECT pipeline. The clause order is fixed;
// anything out of order fails at the unexpected token.
func (p *Parser) parseSelectCore() (stmt core.Statement) {
	p.tracer.Enter("select", p.token.Pos)
	defer func() { p.tracer.Exit("select", stmt != nil) }()

	if !p.expect(token.SELECT) {
		return nil
	}

	sel := &core.SelectStmt{}

	switch {
	case p.check(token.DISTINCT):
		distinctPos := p.token.Pos
		p.advance()
		sel.Distinct = true
		if p.check(token.ON) {
			if !p.dialect.SupportsDistinctOn {
				p.featureError(distinctPos, "DISTINCT ON")
				return nil
			}
			p.advance()
			if !p.expect(token.LPAREN) {
				return nil
			}
			for {
				expr := p.parseExpr()
				if expr == nil {
					return nil
				}
				sel.DistinctOn = append(sel.DistinctOn, expr)
				if !p.match(token.COMMA) {
					break
				}
			}
			if !p.expect(token.RPAREN) {
				return nil
			}
			sel.Distinct = false
		}
	case p.check(token.ALL):
		p.advance()
	}

	items := p.parseSelectItems()
	if items == nil {
		return nil
	}
	sel.Items = items

	if p.check(token.FROM) {
		p.advance()
		from := p.parseFromClause()
		if from == nil {
			return nil
		}
		sel.From = from
	}

	if p.check(token.WHERE) {
		p.advance()
		where := p.parseExpr()
		if where == nil {
			return nil
		}
		sel.Where = where
	}

	if p.check(token.GROUP) {
		p.advance()
		if !p.expect(token.BY) {
			return nil
		}
		for {
			expr := p.parseExpr()
			if expr == nil {
				return nil
			}
			sel.GroupBy = append(sel.GroupBy, expr)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	if p.check(token.HAVING) {
		p.advance()
		having := p.parseExpr()
		if having == nil {
			return nil
		}
		sel.Having = having
	}

	if p.check(dialect.QUALIFY) {
		if !p.dialect.SupportsQualify {
			p.featureError(p.token.Pos, "QUALIFY")
			return nil
		}
		p.advance()
		qualify := p.parseExpr()
		if qualify == nil {
			return nil
		}
		sel.Qualify = qualify
	}

	if p.check(token.WINDOW) {
		p.advance()
		windows := p.parseWindowDefs()
		if windows == nil {
			return nil
		}
		sel.Windows = windows
	}

	if p.check(token.ORDER) {
		p.advance()
		if !p.expect(token.BY) {
			return nil
		}
		items := p.parseOrderItems()
		if items == nil {
			return nil
		}
		sel.OrderBy = items
	}

	if p.check(token.LIMIT) {
		if !p.dialect.SupportsLimit {
			p.featureError(p.token.Pos, "LIMIT")
			return nil
		}
		p.advance()
		limit := p.parseExpr()
		if limit == nil {
			return nil
		}
		sel.Limit = limit
	}

	if p.check(token.OFFSET) {
		p.advance()
		offset := p.parseExpr()
		if offset == nil {
			return nil
		}
		sel.Offset = offset
	}

	if p.check(token.FOR) {
		locking := p.parseLockingClause()
		if locking == nil {
			return nil
		}
		sel.Locking = locking
	}

	return sel
}

// parseSelectItems parses the projection list.
func (p *Parser) parseSelectItems() []core.SelectItem {
	var items []core.SelectItem
	for {
		expr := p.parseExpr()
		if expr == nil {
			return nil
		}
		item := core.SelectItem{Expr: expr}
		if alias, ok := p.parseAlias(); ok {
			item.Alias = alias
		} else if len(p.errors) > 0 {
			return nil
		}
		items = append(items, item)
		if !p.match(token.COMMA) {
			break
		}
	}
	return items
}

// parseAlias consumes [AS] <name> when present.
func (p *Parser) parseAlias() (string, bool) {
	if p.check(token.AS) {
		p.advance()
		if !p.check(token.IDENT) {
			p.addError("expected alias after AS, got " + p.describe(p.token))
			return "", false
		}
		alias := p.aliasName()
		return alias, true
	}
	if p.check(token.IDENT) && !p.dialect.IsReservedWord(p.token.Literal) {
		return p.aliasName(), true
	}
	return "", false
}

// aliasName consumes the current IDENT as an alias, folding unquoted names.
func (p *Parser) aliasName() string {
	name := p.token.Literal
	if !p.token.Quoted {
		name = p.dialect.NormalizeName(name)
	}
	p.advance()
	return name
}

// parseWindowDefs parses WINDOW name AS (spec), ...
func (p *Parser) parseWindowDefs() []core.WindowDef {
	var defs []core.WindowDef
	for {
		if !p.check(token.IDENT) {
			p.addError("expected window name, got " + p.describe(p.token))
			return nil
		}
		name := p.dialect.NormalizeName(p.token.Literal)
		p.advance()
		if !p.expect(token.AS) {
			return nil
		}
		if !p.expect(token.LPAREN) {
			return nil
		}
		spec := p.parseWindowSpec()
		if spec == nil {
			return nil
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		defs = append(defs, core.WindowDef{Name: name, Spec: spec})
		if !p.match(token.COMMA) {
			break
		}
	}
	return defs
}

// parseLockingClause parses FOR UPDATE|SHARE [OF table] [NOWAIT|SKIP LOCKED].
func (p *Parser) parseLockingClause() *core.LockingClause {
	pos := p.token.Pos
	p.advance() // FOR

	if !p.dialect.SupportsLocking {
		p.featureError(pos, "row locking clause")
		return nil
	}

	clause := &core.LockingClause{}
	switch {
	case p.check(token.UPDATE):
		clause.Mode = "update"
		p.advance()
	case p.check(token.SHARE):
		clause.Mode = "share"
		p.advance()
	default:
		p.addError("expected UPDATE or SHARE after FOR, got " + p.describe(p.token))
		return nil
	}

	if p.check(token.OF) {
		p.advance()
		table := p.parseIdent()
		if table == nil {
			return nil
		}
		ident, ok := table.(*core.Ident)
		if !ok {
			p.addError("expected table name after OF")
			return nil
		}
		clause.Table = ident
	}

	switch {
	case p.check(token.NOWAIT):
		clause.Nowait = true
		p.advance()
	case p.check(token.SKIP):
		p.advance()
		if !p.expect(token.LOCKED) {
			return nil
		}
		clause.SkipLocked = true
	}

	return clause
}
