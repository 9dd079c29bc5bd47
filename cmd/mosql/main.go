// Package main provides the mosql command-line SQL parser.
package main

import (
	"os"

	"github.com/paull87/mo-sql-parsing/internal/cli"

	// Register all bundled dialects.
	_ "github.com/paull87/mo-sql-parsing/pkg/dialects/ansi"
	_ "github.com/paull87/mo-sql-parsing/pkg/dialects/bigquery"
	_ "github.com/paull87/mo-sql-parsing/pkg/dialects/mysql"
	_ "github.com/paull87/mo-sql-parsing/pkg/dialects/postgres"
	_ "github.com/paull87/mo-sql-parsing/pkg/dialects/snowflake"
	_ "github.com/paull87/mo-sql-parsing/pkg/dialects/sqlserver"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
