package parser

import (
	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/token"
)

// parseOverClause parses OVER (spec) or OVER window_name.
func (p *Parser) parseOverClause() *core.WindowSpec {
	p.advance() // OVER

	if p.check(token.IDENT) {
		spec := &core.WindowSpec{Name: p.dialect.NormalizeName(p.token.Literal)}
		p.advance()
		return spec
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
	return spec
}

// parseWindowSpec parses the body of a window specification:
// [PARTITION BY ...] [ORDER BY ...] [frame].
func (p *Parser) parseWindowSpec() *core.WindowSpec {
	spec := &core.WindowSpec{}

	if p.check(token.PARTITION) {
		p.advance()
		if !p.expect(token.BY) {
			return nil
		}
		for {
			expr := p.parseExpr()
			if expr == nil {
				return nil
			}
			spec.PartitionBy = append(spec.PartitionBy, expr)
			if !p.match(token.COMMA) {
				break
			}
		}
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
		spec.OrderBy = items
	}

	if p.check(token.ROWS) || p.check(token.RANGE) || p.check(token.GROUPS) {
		frame := p.parseFrameSpec()
		if frame == nil {
			return nil
		}
		spec.Frame = frame
	}

	return spec
}

// parseOrderItems parses a comma-separated ordering list. Shared between
// ORDER BY clauses and window specifications.
func (p *Parser) parseOrderItems() []core.OrderItem {
	var items []core.OrderItem
	for {
		expr := p.parseExpr()
		if expr == nil {
			return nil
		}
		item := core.OrderItem{Expr: expr}

		switch {
		case p.check(token.ASC):
			item.Sort = "asc"
			p.advance()
		case p.check(token.DESC):
			item.Sort = "desc"
			p.advance()
		}

		if p.check(token.NULLS) {
			p.advance()
			switch {
			case p.check(token.FIRST):
				first := true
				item.NullsFirst = &first
				p.advance()
			case p.check(token.LAST):
				first := false
				item.NullsFirst = &first
				p.advance()
			default:
				p.addError("expected FIRST or LAST after NULLS")
				return nil
			}
		}

		items = append(items, item)
		if !p.match(token.COMMA) {
			break
		}
	}
	return items
}

// parseFrameSpec parses ROWS/RANGE/GROUPS frames, with or without BETWEEN.
func (p *Parser) parseFrameSpec() *core.FrameSpec {
	frame := &core.FrameSpec{}
	switch p.token.Type {
	case token.ROWS:
		frame.Type = core.FrameRows
	case token.RANGE:
		frame.Type = core.FrameRange
	case token.GROUPS:
		frame.Type = core.FrameGroups
	}
	p.advance()

	if p.check(token.BETWEEN) {
		p.advance()
		start := p.parseFrameBound()
		if start == nil {
			return nil
		}
		if !p.expect(token.AND) {
			return nil
		}
		end := p.parseFrameBound()
		if end == nil {
			return nil
		}
		frame.Start = start
		frame.End = end
		return frame
	}

	start := p.parseFrameBound()
	if start == nil {
		return nil
	}
	frame.Start = start
	return frame
}

// parseFrameBound parses one frame bound.
func (p *Parser) parseFrameBound() *core.FrameBound {
	switch {
	case p.check(token.UNBOUNDED):
		p.advance()
		switch {
		case p.check(token.PRECEDING):
			p.advance()
			return &core.FrameBound{Type: core.FrameUnboundedPreceding}
		case p.check(token.FOLLOWING):
			p.advance()
			return &core.FrameBound{Type: core.FrameUnboundedFollowing}
		default:
			p.addError("expected PRECEDING or FOLLOWING after UNBOUNDED")
			return nil
		}

	case p.check(token.CURRENT):
		p.advance()
		if !p.expect(token.ROW) {
			return nil
		}
		return &core.FrameBound{Type: core.FrameCurrentRow}

	default:
		offset := p.parseExpr()
		if offset == nil {
			return nil
		}
		switch {
		case p.check(token.PRECEDING):
			p.advance()
			return &core.FrameBound{Type: core.FrameExprPreceding, Offset: offset}
		case p.check(token.FOLLOWING):
			p.advance()
			return &core.FrameBound{Type: core.FrameExprFollowing, Offset: offset}
		default:
			p.addError("expected PRECEDING or FOLLOWING in frame bound")
			return nil
		}
	}
}
