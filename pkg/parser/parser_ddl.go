package parser

import (
	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/token"
)

// parseCreateTable parses CREATE TABLE <name> (<column-or-constraint>, ...).
func (p *Parser) parseCreateTable() core.Statement {
	p.advance() // CREATE
	if !p.expect(token.TABLE) {
		return nil
	}

	name := p.tableIdent()
	if name == nil {
		return nil
	}
	stmt := &core.CreateTableStmt{Name: name}

	if !p.expect(token.LPAREN) {
		return nil
	}
	for {
		if p.startsTableConstraint() {
			constraint := p.parseTableConstraint()
			if constraint == nil {
				return nil
			}
			stmt.Constraints = append(stmt.Constraints, *constraint)
		} else {
			col := p.parseColumnDef()
			if col == nil {
				return nil
			}
			stmt.Columns = append(stmt.Columns, *col)
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	if !p.expect(token.RPAREN) {
		return nil
	}

	return stmt
}

// startsTableConstraint reports whether the current token begins a
// table-level constraint rather than a column definition.
func (p *Parser) startsTableConstraint() bool {
	switch p.token.Type {
	case token.CONSTRAINT, token.PRIMARY, token.UNIQUE, token.FOREIGN, token.CHECK:
		return true
	default:
		return false
	}
}

// parseColumnDef parses one column definition: name, type, and constraints
// in any order.
func (p *Parser) parseColumnDef() *core.ColumnDef {
	if !p.check(token.IDENT) {
		p.addError("expected column name, got " + p.describe(p.token))
		return nil
	}
	col := &core.ColumnDef{Name: p.aliasName()}

	typ := p.parseTypeSpec()
	if typ == nil {
		return nil
	}
	col.Type = typ

	for {
		switch {
		case p.check(token.NOT):
			p.advance()
			if !p.expect(token.NULL) {
				return nil
			}
			col.NotNull = true

		case p.check(token.NULL):
			p.advance()

		case p.check(token.DEFAULT):
			p.advance()
			value := p.parseExpr()
			if value == nil {
				return nil
			}
			col.Default = value

		case p.check(token.PRIMARY):
			p.advance()
			if !p.expect(token.KEY) {
				return nil
			}
			col.PrimaryKey = true

		case p.check(token.UNIQUE):
			p.advance()
			col.Unique = true

		case p.check(token.GENERATED):
			identity := p.parseIdentitySpec()
			if identity == nil {
				return nil
			}
			col.Identity = identity

		default:
			return col
		}
	}
}

// parseIdentitySpec parses GENERATED ALWAYS|BY DEFAULT AS IDENTITY
// [START WITH n].
func (p *Parser) parseIdentitySpec() *core.IdentitySpec {
	p.advance() // GENERATED

	spec := &core.IdentitySpec{}
	switch {
	case p.check(token.ALWAYS):
		spec.Generated = "always"
		p.advance()
	case p.check(token.BY):
		p.advance()
		if !p.expect(token.DEFAULT) {
			return nil
		}
		spec.Generated = "by_default"
	default:
		p.addError("expected ALWAYS or BY DEFAULT after GENERATED")
		return nil
	}

	if !p.expect(token.AS) {
		return nil
	}
	if !p.expect(token.IDENTITY) {
		return nil
	}

	if p.check(token.START) {
		p.advance()
		if !p.expect(token.WITH) {
			return nil
		}
		start := p.parseExpr()
		if start == nil {
			return nil
		}
		spec.StartWith = start
	}

	return spec
}

// parseTableConstraint parses one table-level constraint, optionally named.
func (p *Parser) parseTableConstraint() *core.TableConstraint {
	constraint := &core.TableConstraint{}

	if p.check(token.CONSTRAINT) {
		p.advance()
		if !p.check(token.IDENT) {
			p.addError("expected constraint name, got " + p.describe(p.token))
			return nil
		}
		constraint.Name = p.aliasName()
	}

	switch {
	case p.check(token.PRIMARY):
		p.advance()
		if !p.expect(token.KEY) {
			return nil
		}
		cols := p.parseParenColumnList()
		if cols == nil {
			return nil
		}
		constraint.PrimaryKey = cols

	case p.check(token.UNIQUE):
		p.advance()
		cols := p.parseParenColumnList()
		if cols == nil {
			return nil
		}
		constraint.Unique = cols

	case p.check(token.FOREIGN):
		p.advance()
		if !p.expect(token.KEY) {
			return nil
		}
		fk := p.parseForeignKey()
		if fk == nil {
			return nil
		}
		constraint.ForeignKey = fk

	case p.check(token.CHECK):
		p.advance()
		if !p.expect(token.LPAREN) {
			return nil
		}
		cond := p.parseExpr()
		if cond == nil {
			return nil
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		constraint.Check = cond

	default:
		p.addError("expected PRIMARY KEY, UNIQUE, FOREIGN KEY, or CHECK, got " + p.describe(p.token))
		return nil
	}

	return constraint
}

// parseForeignKey parses (cols) REFERENCES <table> [(cols)]
// [ON DELETE <action>] [ON UPDATE <action>].
func (p *Parser) parseForeignKey() *core.ForeignKey {
	cols := p.parseParenColumnList()
	if cols == nil {
		return nil
	}
	fk := &core.ForeignKey{Columns: cols}

	if !p.expect(token.REFERENCES) {
		return nil
	}
	table := p.tableIdent()
	if table == nil {
		return nil
	}
	fk.RefTable = table

	if p.check(token.LPAREN) {
		refCols := p.parseParenColumnList()
		if refCols == nil {
			return nil
		}
		fk.RefColumns = refCols
	}

	for p.check(token.ON) {
		p.advance()
		switch {
		case p.check(token.DELETE):
			p.advance()
			action := p.parseReferentialAction()
			if action == "" {
				return nil
			}
			fk.OnDelete = action
		case p.check(token.UPDATE):
			p.advance()
			action := p.parseReferentialAction()
			if action == "" {
				return nil
			}
			fk.OnUpdate = action
		default:
			p.addError("expected DELETE or UPDATE after ON, got " + p.describe(p.token))
			return nil
		}
	}

	return fk
}

// parseReferentialAction parses CASCADE, SET NULL, SET DEFAULT, or an
// action spelled as plain words (RESTRICT, NO ACTION).
func (p *Parser) parseReferentialAction() string {
	switch {
	case p.check(token.CASCADE):
		p.advance()
		return "cascade"
	case p.check(token.SET):
		p.advance()
		switch {
		case p.check(token.NULL):
			p.advance()
			return "set null"
		case p.check(token.DEFAULT):
			p.advance()
			return "set default"
		default:
			p.addError("expected NULL or DEFAULT after SET")
			return ""
		}
	case p.isKeywordLiteral("restrict"):
		p.advance()
		return "restrict"
	case p.isKeywordLiteral("no"):
		p.advance()
		if !p.isKeywordLiteral("action") {
			p.addError("expected ACTION after NO")
			return ""
		}
		p.advance()
		return "no action"
	default:
		p.addError("expected referential action, got " + p.describe(p.token))
		return ""
	}
}

// parseParenColumnList parses a parenthesized column name list.
func (p *Parser) parseParenColumnList() []string {
	if !p.expect(token.LPAREN) {
		return nil
	}
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
	if !p.expect(token.RPAREN) {
		return nil
	}
	return cols
}
