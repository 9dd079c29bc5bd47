// Package mosql parses SQL text from several dialects into a canonical,
// dialect-neutral nested-mapping representation.
//
// The result is a tree of map[string]any, []any, and scalars keyed by
// clause name, suitable for JSON encoding or programmatic inspection:
//
//	result, err := mosql.Parse(`SELECT name FROM employees WHERE id = 3`)
//	// {"select": {"value": "name"}, "from": "employees",
//	//  "where": {"eq": ["id", 3]}}
//
// Dialect-specific syntax is available through ParseWithDialect and the
// registered dialect definitions under pkg/dialects.
package mosql

import (
	"fmt"
	"strings"

	"github.com/paull87/mo-sql-parsing/pkg/dialect"
	"github.com/paull87/mo-sql-parsing/pkg/dialects/ansi"
	"github.com/paull87/mo-sql-parsing/pkg/normalize"
	"github.com/paull87/mo-sql-parsing/pkg/parser"
	"github.com/paull87/mo-sql-parsing/pkg/trace"

	// Register the bundled dialects for ParseDialect lookups.
	_ "github.com/paull87/mo-sql-parsing/pkg/dialects/bigquery"
	_ "github.com/paull87/mo-sql-parsing/pkg/dialects/mysql"
	_ "github.com/paull87/mo-sql-parsing/pkg/dialects/postgres"
	_ "github.com/paull87/mo-sql-parsing/pkg/dialects/snowflake"
	_ "github.com/paull87/mo-sql-parsing/pkg/dialects/sqlserver"
)

// Parse parses SQL using the permissive ANSI dialect and returns the
// canonical result.
func Parse(sql string) (map[string]any, error) {
	return ParseWithDialect(sql, ansi.ANSI)
}

// ParseWithDialect parses SQL under the given dialect's keyword set,
// quoting rules, and feature gates.
func ParseWithDialect(sql string, d *dialect.Dialect) (map[string]any, error) {
	if d == nil {
		return nil, dialect.ErrDialectRequired
	}
	p := parser.New(sql, d)
	stmt, err := p.Parse()
	if err != nil {
		return nil, err
	}
	return normalize.Statement(stmt), nil
}

// ParseDialect parses SQL under a registered dialect looked up by name
// ("ansi", "postgres", "mysql", "bigquery", "snowflake", "sqlserver").
func ParseDialect(sql, name string) (map[string]any, error) {
	d, ok := dialect.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (registered: %s)", name, strings.Join(dialect.List(), ", "))
	}
	return ParseWithDialect(sql, d)
}

// ParseTraced parses like ParseWithDialect while sending grammar events to
// the given tracer. The tracer observes only; it cannot change the result.
func ParseTraced(sql string, d *dialect.Dialect, t trace.Tracer) (map[string]any, error) {
	if d == nil {
		return nil, dialect.ErrDialectRequired
	}
	p := parser.New(sql, d)
	p.SetTracer(t)
	stmt, err := p.Parse()
	if err != nil {
		return nil, err
	}
	return normalize.Statement(stmt), nil
}
