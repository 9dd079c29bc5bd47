// Package dialect provides SQL dialect configuration for the parser.
//
// A dialect is a descriptor value threaded through parser construction:
// keyword set, identifier quoting style, operator precedence, and a
// capability set gating clause availability. Concrete dialect definitions
// are registered from pkg/dialects/*/ packages.
package dialect

import (
	"strings"

	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/token"
)

// Dynamic tokens shared by dialect definitions. Registered once here so
// every dialect that enables the feature lexes the same token type.
var (
	QUALIFY     = token.Register("QUALIFY")
	ILIKE       = token.Register("ILIKE")
	TABLESAMPLE = token.Register("TABLESAMPLE")
	DCOLON      = token.Register("::")
)

// Precedence constants for operator precedence parsing.
// Tiers are strictly ordered; within a tier operators associate left-to-right.
const (
	PrecedenceNone       = 0
	PrecedenceOr         = 1
	PrecedenceAnd        = 2
	PrecedenceNot        = 3
	PrecedenceComparison = 4 // =, <>, <, >, <=, >=, LIKE, ILIKE, IN, BETWEEN, IS
	PrecedenceAddition   = 5 // +, -, ||
	PrecedenceMultiply   = 6 // *, /, %
	PrecedenceUnary      = 7 // -, +, NOT
	PrecedencePostfix    = 8 // ::, AT TIME ZONE
)

// Dialect represents a SQL dialect configuration.
// Dialect values are immutable after Build and safe for concurrent reads.
type Dialect struct {
	Name        string
	Identifiers core.IdentifierConfig

	// Capability set
	SupportsQualify      bool
	SupportsDistinctOn   bool
	SupportsIlike        bool
	SupportsCastOperator bool
	SupportsTablesample  bool
	SupportsLocking      bool
	SupportsReturning    bool
	SupportsLimit        bool

	symbols       map[string]token.TokenType // custom operators: "::" -> DCOLON
	dynamicKw     map[string]token.TokenType // custom keywords: "qualify" -> QUALIFY
	precedence    map[token.TokenType]int
	reservedWords map[string]struct{}
}

// NormalizeName normalizes an identifier according to dialect rules.
func (d *Dialect) NormalizeName(name string) string {
	switch d.Identifiers.Normalization {
	case core.NormUppercase:
		return strings.ToUpper(name)
	case core.NormLowercase:
		return strings.ToLower(name)
	default:
		return name
	}
}

// GetName returns the dialect name.
func (d *Dialect) GetName() string {
	return d.Name
}

// Symbols returns the custom operator map for lexer symbol matching.
func (d *Dialect) Symbols() map[string]token.TokenType {
	return d.symbols
}

// LookupKeyword returns the token type for a dialect-specific keyword.
// Returns IDENT and false if the word is not a keyword in this dialect.
func (d *Dialect) LookupKeyword(name string) (token.TokenType, bool) {
	if t, ok := d.dynamicKw[strings.ToLower(name)]; ok {
		return t, true
	}
	return token.IDENT, false
}

// Precedence returns the precedence level for an operator token.
// Returns PrecedenceNone if the operator is not recognized.
func (d *Dialect) Precedence(t token.TokenType) int {
	if p, ok := d.precedence[t]; ok {
		return p
	}
	return PrecedenceNone
}

// IsReservedWord returns true if the word cannot be used as a bare alias.
func (d *Dialect) IsReservedWord(word string) bool {
	_, ok := d.reservedWords[d.NormalizeName(word)]
	return ok
}

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
	config  *core.DialectConfig
}

// New creates a dialect builder from a DialectConfig.
// The builder auto-wires lexer symbols, dynamic keywords, and operator
// precedence based on the config's feature flags when Build() is called.
func New(cfg *core.DialectConfig) *Builder {
	return &Builder{
		config: cfg,
		dialect: &Dialect{
			Name:        cfg.Name,
			Identifiers: cfg.Identifiers,

			SupportsQualify:      cfg.SupportsQualify,
			SupportsDistinctOn:   cfg.SupportsDistinctOn,
			SupportsIlike:        cfg.SupportsIlike,
			SupportsCastOperator: cfg.SupportsCastOperator,
			SupportsTablesample:  cfg.SupportsTablesample,
			SupportsLocking:      cfg.SupportsLocking,
			SupportsReturning:    cfg.SupportsReturning,
			SupportsLimit:        cfg.SupportsLimit,

			symbols:       make(map[string]token.TokenType),
			dynamicKw:     make(map[string]token.TokenType),
			precedence:    defaultPrecedence(),
			reservedWords: make(map[string]struct{}),
		},
	}
}

// AddOperator registers a custom operator symbol for the lexer.
func (b *Builder) AddOperator(symbol string, t token.TokenType) *Builder {
	b.dialect.symbols[symbol] = t
	return b
}

// AddKeyword registers a dialect keyword for the lexer.
func (b *Builder) AddKeyword(name string, t token.TokenType) *Builder {
	b.dialect.dynamicKw[strings.ToLower(name)] = t
	return b
}

// AddInfix registers an infix operator with precedence.
func (b *Builder) AddInfix(t token.TokenType, precedence int) *Builder {
	b.dialect.precedence[t] = precedence
	return b
}

// Build returns the constructed dialect, wiring features from the config.
func (b *Builder) Build() *Dialect {
	cfg := b.config
	d := b.dialect

	if cfg.SupportsQualify {
		b.AddKeyword("qualify", QUALIFY)
	}
	if cfg.SupportsIlike {
		b.AddKeyword("ilike", ILIKE)
		d.precedence[ILIKE] = PrecedenceComparison
	}
	if cfg.SupportsCastOperator {
		b.AddOperator("::", DCOLON)
		d.precedence[DCOLON] = PrecedencePostfix
	}
	if cfg.SupportsTablesample {
		b.AddKeyword("tablesample", TABLESAMPLE)
	}
	for _, w := range cfg.ReservedWords {
		d.reservedWords[d.NormalizeName(w)] = struct{}{}
	}

	return d
}

// defaultPrecedence returns the ANSI operator precedence table.
func defaultPrecedence() map[token.TokenType]int {
	return map[token.TokenType]int{
		token.OR:  PrecedenceOr,
		token.AND: PrecedenceAnd,

		token.EQ: PrecedenceComparison,
		token.NE: PrecedenceComparison,
		token.LT: PrecedenceComparison,
		token.GT: PrecedenceComparison,
		token.LE: PrecedenceComparison,
		token.GE: PrecedenceComparison,

		token.IS:      PrecedenceComparison,
		token.IN:      PrecedenceComparison,
		token.BETWEEN: PrecedenceComparison,
		token.LIKE:    PrecedenceComparison,
		token.NOT:     PrecedenceComparison, // infix NOT IN / NOT LIKE / NOT BETWEEN

		token.PLUS:  PrecedenceAddition,
		token.MINUS: PrecedenceAddition,
		token.DPIPE: PrecedenceAddition,

		token.STAR:      PrecedenceMultiply,
		token.SLASH:     PrecedenceMultiply,
		token.PERCENTOP: PrecedenceMultiply,

		token.AT: PrecedencePostfix, // AT TIME ZONE
	}
}
