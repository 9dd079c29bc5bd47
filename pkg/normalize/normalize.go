// Package normalize renders parse trees into the canonical nested-mapping
// form.
//
// The canonical form follows a few uniform rules: single-element sequences
// collapse to the bare element, empty or default fields are omitted, string
// literals are wrapped as {"literal": s} to keep them distinct from
// identifiers, and dialect synonyms are resolved to one spelling. The
// normalizer never mutates the parse tree; it builds a fresh structure of
// maps, slices, and scalars suitable for JSON or YAML encoding.
package normalize

import (
	"strconv"

	"github.com/paull87/mo-sql-parsing/pkg/core"
)

// Statement renders a statement node into its canonical mapping.
func Statement(stmt core.Statement) map[string]any {
	return normStmt(stmt)
}

// Canonical re-normalizes an already-built value: collapses stray
// single-element sequences and recurses into maps. Applying it to a
// canonical result is a no-op, which the tests rely on.
func Canonical(v any) any {
	switch val := v.(type) {
	case []any:
		if len(val) == 1 {
			return Canonical(val[0])
		}
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Canonical(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Canonical(item)
		}
		return out
	default:
		return v
	}
}

// collapse applies the singleton rule to a sequence.
func collapse(items []any) any {
	if len(items) == 1 {
		return items[0]
	}
	return items
}

// number converts numeric literal text to an int or float value.
func number(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
