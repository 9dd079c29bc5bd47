package core

// NormalizationStrategy controls how unquoted identifiers are folded.
type NormalizationStrategy int

// Normalization strategies for unquoted identifiers.
const (
	// NormCaseSensitive preserves identifier case as written.
	NormCaseSensitive NormalizationStrategy = iota
	// NormLowercase folds unquoted identifiers to lowercase.
	NormLowercase
	// NormUppercase folds unquoted identifiers to uppercase.
	NormUppercase
)

// IdentifierConfig describes a dialect's identifier quoting rules.
// Double-quoted identifiers are always recognized; Quote names the
// dialect's preferred additional quoting character.
type IdentifierConfig struct {
	Quote         string // "`" for backticks, "[" for brackets, `"` otherwise
	QuoteEnd      string // closing character ("]" for brackets)
	Escape        string // escape sequence for the closing character
	Normalization NormalizationStrategy
}

// DialectConfig is the pure-data description of a SQL dialect.
// The dialect builder reads feature flags and wires parser capabilities.
type DialectConfig struct {
	Name        string
	Identifiers IdentifierConfig

	// Feature flags (auto-wired by the dialect builder)
	SupportsQualify      bool // QUALIFY clause (BigQuery, Snowflake)
	SupportsDistinctOn   bool // DISTINCT ON (...) (PostgreSQL)
	SupportsIlike        bool // ILIKE operator
	SupportsCastOperator bool // postfix :: cast
	SupportsTablesample  bool // TABLESAMPLE method (arg)
	SupportsLocking      bool // FOR UPDATE/SHARE locking clause
	SupportsReturning    bool // RETURNING on DML
	SupportsLimit        bool // LIMIT/OFFSET (off for SQL Server)

	// Additional reserved words beyond the builtin keyword set.
	ReservedWords []string
}
