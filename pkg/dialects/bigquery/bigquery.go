// Package bigquery provides the Google BigQuery SQL dialect definition.
package bigquery

import (
	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/dialect"
)

// Config is the BigQuery dialect configuration.
// Backtick-quoted identifiers may span a full project.dataset.table path.
var Config = &core.DialectConfig{
	Name: "bigquery",
	Identifiers: core.IdentifierConfig{
		Quote:         "`",
		QuoteEnd:      "`",
		Escape:        "\\`",
		Normalization: core.NormCaseSensitive,
	},

	SupportsQualify:     true,
	SupportsTablesample: true,
	SupportsLimit:       true,
}

// BigQuery is the registered BigQuery dialect.
var BigQuery = dialect.New(Config).Build()

func init() {
	dialect.Register(BigQuery)
}
