package postgres

import "github.com/paull87/mo-sql-parsing/pkg/dialect"

// Postgres is the registered PostgreSQL dialect.
var Postgres = dialect.New(Config).Build()

func init() {
	dialect.Register(Postgres)
}
