// Package ansi provides the default ANSI SQL dialect definition.
//
// The ANSI dialect is deliberately permissive: it accepts every construct
// the grammar knows so that dialect-neutral tooling can parse SQL of
// unknown origin. Stricter dialects turn capabilities off.
package ansi

import (
	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/dialect"
)

// Config is the ANSI dialect configuration.
var Config = &core.DialectConfig{
	Name: "ansi",
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormCaseSensitive,
	},

	SupportsQualify:      true,
	SupportsDistinctOn:   true,
	SupportsIlike:        true,
	SupportsCastOperator: true,
	SupportsTablesample:  true,
	SupportsLocking:      true,
	SupportsReturning:    true,
	SupportsLimit:        true,
}

// ANSI is the permissive default dialect.
var ANSI = dialect.New(Config).Build()

func init() {
	dialect.Register(ANSI)
}
