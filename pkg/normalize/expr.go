package normalize

import (
	"strings"

	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/token"
)

// binaryOps maps operator tokens to canonical operation names.
var binaryOps = map[token.TokenType]string{
	token.EQ:        "eq",
	token.NE:        "neq",
	token.LT:        "lt",
	token.GT:        "gt",
	token.LE:        "lte",
	token.GE:        "gte",
	token.PLUS:      "add",
	token.MINUS:     "sub",
	token.STAR:      "mul",
	token.SLASH:     "div",
	token.PERCENTOP: "mod",
	token.DPIPE:     "concat",
	token.AND:       "and",
	token.OR:        "or",
}

// associativeOps are operations whose chains flatten into one n-ary list.
var associativeOps = map[string]bool{
	"add":    true,
	"mul":    true,
	"and":    true,
	"or":     true,
	"concat": true,
}

// normExpr renders an expression node into its canonical value.
func normExpr(e core.Expr) any {
	switch expr := e.(type) {
	case *core.Literal:
		return normLiteral(expr)

	case *core.Ident:
		return identString(expr)

	case *core.Star:
		if expr.Table == "" {
			return "*"
		}
		return expr.Table + ".*"

	case *core.Unary:
		return normUnary(expr)

	case *core.Binary:
		return normBinary(expr)

	case *core.FuncCall:
		return normFuncCall(expr)

	case *core.Case:
		return normCase(expr)

	case *core.Cast:
		return map[string]any{"cast": []any{normExpr(expr.Expr), typeShape(expr.Type)}}

	case *core.Trim:
		return normTrim(expr)

	case *core.Substring:
		return normSubstring(expr)

	case *core.Extract:
		return map[string]any{"extract": []any{expr.Unit, normExpr(expr.Expr)}}

	case *core.IntervalExpr:
		return normInterval(expr)

	case *core.In:
		return normIn(expr)

	case *core.Between:
		key := "between"
		if expr.Not {
			key = "not_between"
		}
		return map[string]any{key: []any{normExpr(expr.Expr), normExpr(expr.Low), normExpr(expr.High)}}

	case *core.Like:
		key := "like"
		if expr.CaseInsensitive {
			key = "ilike"
		}
		if expr.Not {
			key = "not_" + key
		}
		return map[string]any{key: []any{normExpr(expr.Expr), normExpr(expr.Pattern)}}

	case *core.IsNull:
		if expr.Not {
			return map[string]any{"exists": normExpr(expr.Expr)}
		}
		return map[string]any{"missing": normExpr(expr.Expr)}

	case *core.Exists:
		inner := map[string]any{"exists": normStmt(expr.Query)}
		if expr.Not {
			return map[string]any{"not": inner}
		}
		return inner

	case *core.Subquery:
		return normStmt(expr.Query)

	case *core.AtTimeZone:
		return map[string]any{"": []any{normExpr(expr.Expr), normExpr(expr.Zone)}}

	default:
		return nil
	}
}

// normLiteral renders a literal. String contents are preserved verbatim
// inside a literal wrapper; numbers and booleans stay bare.
func normLiteral(lit *core.Literal) any {
	switch lit.Kind {
	case core.LiteralNumber:
		return number(lit.Value)
	case core.LiteralString:
		return map[string]any{"literal": lit.Value}
	case core.LiteralBool:
		return lit.Value == "true"
	default:
		return map[string]any{"null": map[string]any{}}
	}
}

// identString joins identifier parts with dots. Dots inside a quoted part
// are escaped by doubling, so `projeto.dataset.tabela` survives as one part.
func identString(ident *core.Ident) string {
	names := make([]string, len(ident.Parts))
	for i, part := range ident.Parts {
		name := part.Name
		if part.Quoted {
			name = strings.ReplaceAll(name, ".", "..")
		}
		names[i] = name
	}
	return strings.Join(names, ".")
}

func normUnary(expr *core.Unary) any {
	operand := normExpr(expr.Expr)
	if expr.Op == token.NOT {
		return map[string]any{"not": operand}
	}

	// Unary minus folds into numeric literals.
	switch v := operand.(type) {
	case int:
		return -v
	case float64:
		return -v
	default:
		return map[string]any{"neg": operand}
	}
}

// normBinary renders a binary operation, flattening chains of the same
// associative operation into one list.
func normBinary(expr *core.Binary) any {
	op := binaryOps[expr.Op]
	left := normExpr(expr.Left)
	right := normExpr(expr.Right)

	if associativeOps[op] {
		if m, ok := left.(map[string]any); ok && len(m) == 1 {
			if prev, ok := m[op].([]any); ok {
				return map[string]any{op: append(append([]any{}, prev...), right)}
			}
		}
	}
	return map[string]any{op: []any{left, right}}
}

// normFuncCall renders a function call. Zero arguments become an empty
// mapping, one argument stays scalar, more become a list. FILTER and OVER
// wrap the call under a value key.
func normFuncCall(call *core.FuncCall) any {
	name := strings.ToLower(call.Name)

	var args any
	switch {
	case call.Star:
		args = "*"
	case len(call.Args) == 0:
		args = map[string]any{}
	default:
		list := make([]any, len(call.Args))
		for i, a := range call.Args {
			list[i] = normExpr(a)
		}
		args = collapse(list)
	}

	if call.Distinct {
		args = map[string]any{"distinct": args}
	}

	result := map[string]any{name: args}
	if call.Filter == nil && call.Over == nil {
		return result
	}

	wrapped := map[string]any{"value": result}
	if call.Filter != nil {
		wrapped["filter"] = normExpr(call.Filter)
	}
	if call.Over != nil {
		wrapped["over"] = windowShape(call.Over)
	}
	return wrapped
}

func normCase(expr *core.Case) any {
	var items []any
	if expr.Operand != nil {
		items = append(items, normExpr(expr.Operand))
	}
	for _, arm := range expr.Whens {
		items = append(items, map[string]any{
			"when": normExpr(arm.Condition),
			"then": normExpr(arm.Result),
		})
	}
	if expr.Else != nil {
		items = append(items, normExpr(expr.Else))
	}
	return map[string]any{"case": collapse(items)}
}

func normTrim(expr *core.Trim) any {
	result := map[string]any{"trim": normExpr(expr.Expr)}
	if expr.Chars != nil {
		result["characters"] = normExpr(expr.Chars)
	}
	if expr.Mode != "" && expr.Mode != "both" {
		result["direction"] = expr.Mode
	}
	return result
}

func normSubstring(expr *core.Substring) any {
	result := map[string]any{"substring": normExpr(expr.Expr)}
	if expr.From != nil {
		result["from"] = normExpr(expr.From)
	}
	if expr.For != nil {
		result["for"] = normExpr(expr.For)
	}
	return result
}

// normInterval renders decomposed interval terms: one term stays bare,
// several combine with add in the decomposition's unit order.
func normInterval(expr *core.IntervalExpr) any {
	terms := make([]any, len(expr.Terms))
	for i, t := range expr.Terms {
		terms[i] = map[string]any{"interval": []any{normExpr(t.Amount), t.Unit}}
	}
	if len(terms) == 1 {
		return terms[0]
	}
	return map[string]any{"add": terms}
}

// normIn renders [NOT] IN. A value list of nothing but string literals
// merges into a single literal list.
func normIn(expr *core.In) any {
	key := "in"
	if expr.Not {
		key = "nin"
	}

	if expr.Query != nil {
		return map[string]any{key: []any{normExpr(expr.Expr), normStmt(expr.Query)}}
	}

	values := make([]any, len(expr.Values))
	allLiterals := true
	literals := make([]any, len(expr.Values))
	for i, v := range expr.Values {
		values[i] = normExpr(v)
		if m, ok := values[i].(map[string]any); ok && len(m) == 1 {
			if s, ok := m["literal"]; ok {
				literals[i] = s
				continue
			}
		}
		allLiterals = false
	}

	var list any
	if allLiterals {
		list = map[string]any{"literal": collapse(literals)}
	} else {
		list = collapse(values)
	}
	return map[string]any{key: []any{normExpr(expr.Expr), list}}
}

// typeShape renders a type specification: each part's name maps to its
// arguments (empty mapping, scalar, or list); a unit range merges its
// parts into one mapping.
func typeShape(spec *core.TypeSpec) any {
	shape := make(map[string]any, len(spec.Parts))
	for _, part := range spec.Parts {
		switch len(part.Args) {
		case 0:
			shape[part.Name] = map[string]any{}
		case 1:
			shape[part.Name] = normExpr(part.Args[0])
		default:
			args := make([]any, len(part.Args))
			for i, a := range part.Args {
				args[i] = normExpr(a)
			}
			shape[part.Name] = args
		}
	}
	return shape
}

// windowShape renders a window specification.
func windowShape(spec *core.WindowSpec) any {
	if spec.Name != "" {
		return spec.Name
	}

	shape := map[string]any{}
	if len(spec.PartitionBy) > 0 {
		items := make([]any, len(spec.PartitionBy))
		for i, e := range spec.PartitionBy {
			items[i] = normExpr(e)
		}
		shape["partitionby"] = collapse(items)
	}
	if len(spec.OrderBy) > 0 {
		shape["orderby"] = orderShape(spec.OrderBy)
	}
	if spec.Frame != nil {
		shape[string(spec.Frame.Type)] = frameShape(spec.Frame)
	}
	return shape
}

// orderShape renders an ordering list.
func orderShape(items []core.OrderItem) any {
	out := make([]any, len(items))
	for i, item := range items {
		entry := map[string]any{"value": normExpr(item.Expr)}
		if item.Sort != "" {
			entry["sort"] = item.Sort
		}
		if item.NullsFirst != nil {
			if *item.NullsFirst {
				entry["nulls"] = "first"
			} else {
				entry["nulls"] = "last"
			}
		}
		out[i] = entry
	}
	return collapse(out)
}

// frameShape renders frame bounds as min/max offsets relative to the
// current row; unbounded ends are omitted.
func frameShape(frame *core.FrameSpec) any {
	shape := map[string]any{}
	if v, ok := boundValue(frame.Start); ok {
		shape["min"] = v
	}
	end := frame.End
	if end == nil {
		end = &core.FrameBound{Type: core.FrameCurrentRow}
	}
	if v, ok := boundValue(end); ok {
		shape["max"] = v
	}
	return shape
}

func boundValue(bound *core.FrameBound) (any, bool) {
	if bound == nil {
		return nil, false
	}
	switch bound.Type {
	case core.FrameUnboundedPreceding, core.FrameUnboundedFollowing:
		return nil, false
	case core.FrameCurrentRow:
		return 0, true
	case core.FrameExprPreceding:
		if n, ok := normExpr(bound.Offset).(int); ok {
			return -n, true
		}
		return map[string]any{"neg": normExpr(bound.Offset)}, true
	default:
		return normExpr(bound.Offset), true
	}
}
