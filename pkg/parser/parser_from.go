package parser

import (
	"strings"

	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/dialect"
	"github.com/paull87/mo-sql-parsing/pkg/token"
)

// parseFromClause parses the FROM list: comma-separated sources with
// explicit joins interleaved.
func (p *Parser) parseFromClause() []core.FromItem {
	var items []core.FromItem

	first := p.parseFromSource()
	if first == nil {
		return nil
	}
	items = append(items, core.FromItem{Source: first})

	for {
		switch {
		case p.check(token.COMMA):
			p.advance()
			source := p.parseFromSource()
			if source == nil {
				return nil
			}
			items = append(items, core.FromItem{Source: source})

		case p.startsJoin():
			item := p.parseJoin()
			if item == nil {
				return nil
			}
			items = append(items, *item)

		default:
			return items
		}
	}
}

// startsJoin reports whether the current token begins an explicit join.
func (p *Parser) startsJoin() bool {
	switch p.token.Type {
	case token.JOIN, token.INNER, token.LEFT, token.RIGHT, token.FULL, token.CROSS, token.NATURAL:
		return true
	default:
		return false
	}
}

// parseJoin parses one explicit join: the keyword sequence, the joined
// source, and the ON or USING condition.
func (p *Parser) parseJoin() *core.FromItem {
	var words []string

	for {
		switch p.token.Type {
		case token.NATURAL, token.INNER, token.LEFT, token.RIGHT, token.FULL, token.CROSS, token.OUTER, token.JOIN:
			words = append(words, strings.ToLower(p.token.Literal))
			if p.check(token.JOIN) {
				p.advance()
				goto source
			}
			p.advance()
		default:
			p.addError("expected JOIN, got " + p.describe(p.token))
			return nil
		}
	}

source:
	// JOIN LATERAL carries lateral in the join words; the source itself
	// stays a plain derived table.
	if p.check(token.LATERAL) {
		words = append(words, "lateral")
		p.advance()
	}

	item := &core.FromItem{Join: strings.Join(words, " ")}

	source := p.parseFromSource()
	if source == nil {
		return nil
	}
	item.Source = source

	switch {
	case p.check(token.ON):
		p.advance()
		cond := p.parseExpr()
		if cond == nil {
			return nil
		}
		item.On = cond

	case p.check(token.USING):
		p.advance()
		if !p.expect(token.LPAREN) {
			return nil
		}
		for {
			col := p.parseExpr()
			if col == nil {
				return nil
			}
			item.Using = append(item.Using, col)
			if !p.match(token.COMMA) {
				break
			}
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
	}

	return item
}

// parseFromSource parses one table source: a table name, a derived table,
// or a LATERAL subquery, each with optional alias and TABLESAMPLE.
func (p *Parser) parseFromSource() core.TableRef {
	if p.check(token.LATERAL) {
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
		sub := &core.SubqueryTable{Query: query, Lateral: true}
		if alias, ok := p.parseAlias(); ok {
			sub.Alias = alias
		} else if len(p.errors) > 0 {
			return nil
		}
		return sub
	}

	if p.check(token.LPAREN) {
		p.advance()
		query := p.parseQueryExpr()
		if query == nil {
			return nil
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		sub := &core.SubqueryTable{Query: query}
		if alias, ok := p.parseAlias(); ok {
			sub.Alias = alias
		} else if len(p.errors) > 0 {
			return nil
		}
		return sub
	}

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
	table := &core.TableName{Name: ident}

	if p.check(dialect.TABLESAMPLE) {
		sample := p.parseTablesample()
		if sample == nil {
			return nil
		}
		table.Sample = sample
	}

	if alias, ok := p.parseAlias(); ok {
		table.Alias = alias
	} else if len(p.errors) > 0 {
		return nil
	}

	// TABLESAMPLE may also follow the alias.
	if table.Sample == nil && p.check(dialect.TABLESAMPLE) {
		sample := p.parseTablesample()
		if sample == nil {
			return nil
		}
		table.Sample = sample
	}

	return table
}

// parseTablesample parses TABLESAMPLE <method> (<arg> [PERCENT|ROWS]).
func (p *Parser) parseTablesample() *core.TableSample {
	pos := p.token.Pos
	p.advance() // TABLESAMPLE

	if !p.dialect.SupportsTablesample {
		p.featureError(pos, "TABLESAMPLE")
		return nil
	}

	if !p.check(token.IDENT) {
		p.addError("expected sampling method, got " + p.describe(p.token))
		return nil
	}
	sample := &core.TableSample{Method: strings.ToLower(p.token.Literal)}
	p.advance()

	if !p.expect(token.LPAREN) {
		return nil
	}
	value := p.parseExpr()
	if value == nil {
		return nil
	}
	sample.Value = value

	switch {
	case p.check(token.PERCENT):
		sample.Percent = true
		p.advance()
	case p.check(token.ROWS):
		sample.Rows = true
		p.advance()
	default:
		sample.Percent = true
	}

	if !p.expect(token.RPAREN) {
		return nil
	}
	return sample
}
