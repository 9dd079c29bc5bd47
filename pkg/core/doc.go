// Package core defines the dialect-neutral AST node types produced by the
// parser and the pure-data dialect configuration shared by the lexer,
// parser, and normalizer.
//
// The AST is transient: nodes exist only for the duration of one parse call.
// Consumers should use the canonical mapping produced by pkg/normalize.
package core
