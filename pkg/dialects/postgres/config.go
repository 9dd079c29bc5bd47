// Package postgres provides the PostgreSQL SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package postgres

import "github.com/paull87/mo-sql-parsing/pkg/core"

// Config is the PostgreSQL dialect configuration.
// This is pure data; the dialect builder reads the feature flags and
// auto-wires lexer symbols and operator precedence.
var Config = &core.DialectConfig{
	Name: "postgres",
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormLowercase, // Postgres folds unquoted to lowercase
	},

	SupportsDistinctOn:   true,
	SupportsIlike:        true,
	SupportsCastOperator: true,
	SupportsLocking:      true,
	SupportsReturning:    true,
	SupportsLimit:        true,
	SupportsTablesample:  true,
	// PostgreSQL does NOT support QUALIFY.
}
