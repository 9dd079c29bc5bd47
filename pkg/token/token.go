// Package token defines the token types for SQL parsing.
//
// ANSI core tokens are defined as constants (IDs 0-999) for switch performance.
// Dialect-specific tokens are registered dynamically via Register().
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // identifier
	NUMBER // 123, 45.67, 1e10
	STRING // 'hello'

	// Operators (ANSI)
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	PERCENTOP // %
	DPIPE     // ||
	EQ        // =
	NE        // != or <>
	LT        // <
	GT        // >
	LE        // <=
	GE        // >=
	DOT       // .
	COMMA     // ,
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]
	SEMICOLON // ;

	// ANSI Keywords (alphabetical)
	ALL
	ALWAYS
	AND
	AS
	ASC
	AT
	BETWEEN
	BOTH
	BY
	CASCADE
	CASE
	CAST
	CHECK
	CONSTRAINT
	CREATE
	CROSS
	CURRENT
	DEFAULT
	DELETE
	DESC
	DISTINCT
	ELSE
	END
	EXCEPT
	EXISTS
	EXTRACT
	FALSE
	FILTER
	FIRST
	FOLLOWING
	FOR
	FOREIGN
	FROM
	FULL
	GENERATED
	GROUP
	GROUPS
	HAVING
	IDENTITY
	IN
	INNER
	INSERT
	INTERSECT
	INTERVAL
	INTO
	IS
	JOIN
	KEY
	LAST
	LATERAL
	LEADING
	LEFT
	LIKE
	LIMIT
	LOCKED
	NATURAL
	NOT
	NOWAIT
	NULL
	NULLS
	OF
	OFFSET
	ON
	OR
	ORDER
	OUTER
	OVER
	PARTITION
	PERCENT
	PRECEDING
	PRIMARY
	RANGE
	RECURSIVE
	REFERENCES
	RETURNING
	RIGHT
	ROW
	ROWS
	SELECT
	SET
	SHARE
	SKIP
	START
	SUBSTRING
	TABLE
	THEN
	TIME
	TO
	TRAILING
	TRIM
	TRUE
	UNBOUNDED
	UNION
	UNIQUE
	UPDATE
	USING
	VALUES
	WHEN
	WHERE
	WINDOW
	WITH
	ZONE

	// Sentinel - dynamic tokens start after this
	maxBuiltin TokenType = 999
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	// Check dynamic tokens first
	if name, ok := getDynamicName(t); ok {
		return name
	}
	// Then check builtin tokens
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps builtin token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	PLUS:      "+",
	MINUS:     "-",
	STAR:      "*",
	SLASH:     "/",
	PERCENTOP: "%",
	DPIPE:     "||",
	EQ:        "=",
	NE:        "!=",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	DOT:       ".",
	COMMA:     ",",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "[",
	RBRACKET:  "]",
	SEMICOLON: ";",

	ALL:        "ALL",
	ALWAYS:     "ALWAYS",
	AND:        "AND",
	AS:         "AS",
	ASC:        "ASC",
	AT:         "AT",
	BETWEEN:    "BETWEEN",
	BOTH:       "BOTH",
	BY:         "BY",
	CASCADE:    "CASCADE",
	CASE:       "CASE",
	CAST:       "CAST",
	CHECK:      "CHECK",
	CONSTRAINT: "CONSTRAINT",
	CREATE:     "CREATE",
	CROSS:      "CROSS",
	CURRENT:    "CURRENT",
	DEFAULT:    "DEFAULT",
	DELETE:     "DELETE",
	DESC:       "DESC",
	DISTINCT:   "DISTINCT",
	ELSE:       "ELSE",
	END:        "END",
	EXCEPT:     "EXCEPT",
	EXISTS:     "EXISTS",
	EXTRACT:    "EXTRACT",
	FALSE:      "FALSE",
	FILTER:     "FILTER",
	FIRST:      "FIRST",
	FOLLOWING:  "FOLLOWING",
	FOR:        "FOR",
	FOREIGN:    "FOREIGN",
	FROM:       "FROM",
	FULL:       "FULL",
	GENERATED:  "GENERATED",
	GROUP:      "GROUP",
	GROUPS:     "GROUPS",
	HAVING:     "HAVING",
	IDENTITY:   "IDENTITY",
	IN:         "IN",
	INNER:      "INNER",
	INSERT:     "INSERT",
	INTERSECT:  "INTERSECT",
	INTERVAL:   "INTERVAL",
	INTO:       "INTO",
	IS:         "IS",
	JOIN:       "JOIN",
	KEY:        "KEY",
	LAST:       "LAST",
	LATERAL:    "LATERAL",
	LEADING:    "LEADING",
	LEFT:       "LEFT",
	LIKE:       "LIKE",
	LIMIT:      "LIMIT",
	LOCKED:     "LOCKED",
	NATURAL:    "NATURAL",
	NOT:        "NOT",
	NOWAIT:     "NOWAIT",
	NULL:       "NULL",
	NULLS:      "NULLS",
	OF:         "OF",
	OFFSET:     "OFFSET",
	ON:         "ON",
	OR:         "OR",
	ORDER:      "ORDER",
	OUTER:      "OUTER",
	OVER:       "OVER",
	PARTITION:  "PARTITION",
	PERCENT:    "PERCENT",
	PRECEDING:  "PRECEDING",
	PRIMARY:    "PRIMARY",
	RANGE:      "RANGE",
	RECURSIVE:  "RECURSIVE",
	REFERENCES: "REFERENCES",
	RETURNING:  "RETURNING",
	RIGHT:      "RIGHT",
	ROW:        "ROW",
	ROWS:       "ROWS",
	SELECT:     "SELECT",
	SET:        "SET",
	SHARE:      "SHARE",
	SKIP:       "SKIP",
	START:      "START",
	SUBSTRING:  "SUBSTRING",
	TABLE:      "TABLE",
	THEN:       "THEN",
	TIME:       "TIME",
	TO:         "TO",
	TRAILING:   "TRAILING",
	TRIM:       "TRIM",
	TRUE:       "TRUE",
	UNBOUNDED:  "UNBOUNDED",
	UNION:      "UNION",
	UNIQUE:     "UNIQUE",
	UPDATE:     "UPDATE",
	USING:      "USING",
	VALUES:     "VALUES",
	WHEN:       "WHEN",
	WHERE:      "WHERE",
	WINDOW:     "WINDOW",
	WITH:       "WITH",
	ZONE:       "ZONE",
}

// keywords maps lowercase keyword strings to their token types.
var keywords = map[string]TokenType{
	"all":        ALL,
	"always":     ALWAYS,
	"and":        AND,
	"as":         AS,
	"asc":        ASC,
	"at":         AT,
	"between":    BETWEEN,
	"both":       BOTH,
	"by":         BY,
	"cascade":    CASCADE,
	"case":       CASE,
	"cast":       CAST,
	"check":      CHECK,
	"constraint": CONSTRAINT,
	"create":     CREATE,
	"cross":      CROSS,
	"current":    CURRENT,
	"default":    DEFAULT,
	"delete":     DELETE,
	"desc":       DESC,
	"distinct":   DISTINCT,
	"else":       ELSE,
	"end":        END,
	"except":     EXCEPT,
	"exists":     EXISTS,
	"extract":    EXTRACT,
	"false":      FALSE,
	"filter":     FILTER,
	"first":      FIRST,
	"following":  FOLLOWING,
	"for":        FOR,
	"foreign":    FOREIGN,
	"from":       FROM,
	"full":       FULL,
	"generated":  GENERATED,
	"group":      GROUP,
	"groups":     GROUPS,
	"having":     HAVING,
	"identity":   IDENTITY,
	"in":         IN,
	"inner":      INNER,
	"insert":     INSERT,
	"intersect":  INTERSECT,
	"interval":   INTERVAL,
	"into":       INTO,
	"is":         IS,
	"join":       JOIN,
	"key":        KEY,
	"last":       LAST,
	"lateral":    LATERAL,
	"leading":    LEADING,
	"left":       LEFT,
	"like":       LIKE,
	"limit":      LIMIT,
	"locked":     LOCKED,
	"natural":    NATURAL,
	"not":        NOT,
	"nowait":     NOWAIT,
	"null":       NULL,
	"nulls":      NULLS,
	"of":         OF,
	"offset":     OFFSET,
	"on":         ON,
	"or":         OR,
	"order":      ORDER,
	"outer":      OUTER,
	"over":       OVER,
	"partition":  PARTITION,
	"percent":    PERCENT,
	"preceding":  PRECEDING,
	"primary":    PRIMARY,
	"range":      RANGE,
	"recursive":  RECURSIVE,
	"references": REFERENCES,
	"returning":  RETURNING,
	"right":      RIGHT,
	"row":        ROW,
	"rows":       ROWS,
	"select":     SELECT,
	"set":        SET,
	"share":      SHARE,
	"skip":       SKIP,
	"start":      START,
	"substring":  SUBSTRING,
	"table":      TABLE,
	"then":       THEN,
	"time":       TIME,
	"to":         TO,
	"trailing":   TRAILING,
	"trim":       TRIM,
	"true":       TRUE,
	"unbounded":  UNBOUNDED,
	"union":      UNION,
	"unique":     UNIQUE,
	"update":     UPDATE,
	"using":      USING,
	"values":     VALUES,
	"when":       WHEN,
	"where":      WHERE,
	"window":     WINDOW,
	"with":       WITH,
	"zone":       ZONE,
}

// LookupIdent returns the token type for the given identifier.
// If the identifier is a keyword, the keyword token type is returned.
// Otherwise, IDENT is returned.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a builtin keyword.
func IsKeyword(t TokenType) bool {
	return t >= ALL && t <= ZONE
}

// IsOperator returns true if the token type is an operator or punctuation.
func IsOperator(t TokenType) bool {
	return t >= PLUS && t <= SEMICOLON
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
	Quoted  bool // identifier came from a quoted form; its literal is verbatim
}
