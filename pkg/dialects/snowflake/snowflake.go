// Package snowflake provides the Snowflake SQL dialect definition.
package snowflake

import (
	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/dialect"
)

// Config is the Snowflake dialect configuration.
var Config = &core.DialectConfig{
	Name: "snowflake",
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormUppercase, // Snowflake folds unquoted to uppercase
	},

	SupportsQualify:      true,
	SupportsIlike:        true,
	SupportsCastOperator: true,
	SupportsTablesample:  true,
	SupportsLimit:        true,
}

// Snowflake is the registered Snowflake dialect.
var Snowflake = dialect.New(Config).Build()

func init() {
	dialect.Register(Snowflake)
}
