// Package sqlserver provides the Microsoft SQL Server (T-SQL) dialect definition.
package sqlserver

import (
	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/dialect"
)

// Config is the SQL Server dialect configuration.
var Config = &core.DialectConfig{
	Name: "sqlserver",
	Identifiers: core.IdentifierConfig{
		Quote:         "[",
		QuoteEnd:      "]",
		Escape:        "]]",
		Normalization: core.NormCaseSensitive,
	},

	SupportsTablesample: true,
	// T-SQL uses TOP/OFFSET-FETCH rather than LIMIT, and OUTPUT rather
	// than RETURNING.
}

// SQLServer is the registered SQL Server dialect.
var SQLServer = dialect.New(Config).Build()

func init() {
	dialect.Register(SQLServer)
}
