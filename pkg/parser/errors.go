package parser

import "fmt"

// SyntaxError represents a grammar error with position information:
// an unexpected token, clauses out of order, or unconsumed trailing input.
type SyntaxError struct {
	Pos     Position
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// LexError represents a lexical error (invalid character, unterminated literal).
type LexError struct {
	Pos     Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// IntervalFormatError reports an interval literal that matches none of the
// known notations, or an unrecognized unit name.
type IntervalFormatError struct {
	Pos     Position
	Literal string
	Message string
}

func (e *IntervalFormatError) Error() string {
	return fmt.Sprintf("invalid interval %q at line %d, column %d: %s", e.Literal, e.Pos.Line, e.Pos.Column, e.Message)
}

// UnsupportedDialectFeatureError reports a construct the grammar recognizes
// but the selected dialect does not allow.
type UnsupportedDialectFeatureError struct {
	Pos     Position
	Feature string
	Dialect string
}

func (e *UnsupportedDialectFeatureError) Error() string {
	return fmt.Sprintf("%s is not supported in %s dialect (line %d, column %d)", e.Feature, e.Dialect, e.Pos.Line, e.Pos.Column)
}

// Common error messages
const (
	ErrUnexpectedToken    = "unexpected token %s, expected %s"
	ErrUnterminatedString = "unterminated string literal"
	ErrTrailingInput      = "unexpected token %s after end of statement"
)
