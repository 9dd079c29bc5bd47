package parser

import (
	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/token"
)

// parseInsert parses INSERT INTO <table> [(cols)] <VALUES|query> [RETURNING].
func (p *Parser) parseInsert() core.Statement {
	p.advance() // INSERT
	if !p.expect(token.INTO) {
		return nil
	}

	table := p.tableIdent()
	if table == nil {
		return nil
	}
	stmt := &core.InsertStmt{Table: table}

	if p.check(token.LPAREN) {
		p.advance()
		cols := p.parseColumnNameList()
		if cols == nil {
			return nil
		}
		stmt.Columns = cols
		if !p.expect(token.RPAREN) {
			return nil
		}
	}

	switch {
	case p.check(token.VALUES):
		p.advance()
		for {
			if !p.expect(token.LPAREN) {
				return nil
			}
			var row []core.Expr
			for {
				v := p.parseExpr()
				if v == nil {
					return nil
				}
				row = append(row, v)
				if !p.match(token.COMMA) {
					break
				}
			}
			if !p.expect(token.RPAREN) {
				return nil
			}
			stmt.Values = append(stmt.Values, row)
			if !p.match(token.COMMA) {
				break
			}
		}

	case p.check(token.SELECT), p.check(token.WITH), p.check(token.LPAREN):
		query := p.parseQueryExpr()
		if query == nil {
			return nil
		}
		stmt.Query = query

	default:
		p.addError("expected VALUES or SELECT, got " + p.describe(p.token))
		return nil
	}

	returning, ok := p.parseReturning()
	if !ok {
		return nil
	}
	stmt.Returning = returning
	return stmt
}

// parseUpdate parses UPDATE <table> SET col = expr, ... [WHERE] [RETURNING].
func (p *Parser) parseUpdate() core.Statement {
	p.advance() // UPDATE

	table := p.tableIdent()
	if table == nil {
		return nil
	}
	stmt := &core.UpdateStmt{Table: table}

	if !p.expect(token.SET) {
		return nil
	}
	for {
		if !p.check(token.IDENT) {
			p.addError("expected column name, got " + p.describe(p.token))
			return nil
		}
		col := p.aliasName()
		if !p.expect(token.EQ) {
			return nil
		}
		value := p.parseExpr()
		if value == nil {
			return nil
		}
		stmt.Set = append(stmt.Set, core.SetItem{Column: col, Value: value})
		if !p.match(token.COMMA) {
			break
		}
	}

	if p.check(token.WHERE) {
		p.advance()
		where := p.parseExpr()
		if where == nil {
			return nil
		}
		stmt.Where = where
	}

	returning, ok := p.parseReturning()
	if !ok {
		return nil
	}
	stmt.Returning = returning
	return stmt
}

// parseDelete parses DELETE FROM <table> [WHERE] [RETURNING].
func (p *Parser) parseDelete() core.Statement {
	p.advance() // DELETE
	if !p.expect(token.FROM) {
		return nil
	}

	table := p.tableIdent()
	if table == nil {
		return nil
	}
	stmt := &core.DeleteStmt{Table: table}

	if p.check(token.WHERE) {
		p.advance()
		where := p.parseExpr()
		if where == nil {
			return nil
		}
		stmt.Where = where
	}

	returning, ok := p.parseReturning()
	if !ok {
		return nil
	}
	stmt.Returning = returning
	return stmt
}

// parseReturning parses an optional RETURNING projection list.
func (p *Parser) parseReturning() ([]core.SelectItem, bool) {
	if !p.check(token.RETURNING) {
		return nil, true
	}
	if !p.dialect.SupportsReturning {
		p.featureError(p.token.Pos, "RETURNING")
		return nil, false
	}
	p.advance()

	items := p.parseSelectItems()
	if items == nil {
		return nil, false
	}
	return items, true
}

// tableIdent parses a possibly-qualified table name.
func (p *Parser) tableIdent() *core.Ident {
	if !p.check(token.IDENT) {
		p.addError("expected table name, got " + p.describe(p.token))
		return nil
	}
	expr := p.parseIdent()
	if expr == nil {
		return nil
	}
	ident, ok := expr.(*core.Ident)
	if !ok {
		p.addError("expected table name")
		return nil
	}
	return ident
}

// parseColumnNameList parses a comma-separated list of column names.
func (p *Parser) parseColumnNameList() []string {
	var cols []string
	for {
		if !p.check(token.IDENT) {
			p.addError("expected column name, got " + p.describe(p.token))
			return nil
		}
		cols = append(cols, p.aliasName())
		if !p.match(token.COMMA) {
			break
		}
	}
	return cols
}
