// Package mysql provides the MySQL SQL dialect definition.
package mysql

import (
	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/dialect"
)

// Config is the MySQL dialect configuration.
var Config = &core.DialectConfig{
	Name: "mysql",
	Identifiers: core.IdentifierConfig{
		Quote:         "`",
		QuoteEnd:      "`",
		Escape:        "``",
		Normalization: core.NormCaseSensitive,
	},

	SupportsLocking: true, // FOR UPDATE [NOWAIT | SKIP LOCKED] since 8.0
	SupportsLimit:   true,
	// MySQL has no QUALIFY, DISTINCT ON, ILIKE, ::, TABLESAMPLE, or RETURNING.
}

// MySQL is the registered MySQL dialect.
var MySQL = dialect.New(Config).Build()

func init() {
	dialect.Register(MySQL)
}
