package parser

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/paull87/mo-sql-parsing/pkg/dialect"
	"github.com/paull87/mo-sql-parsing/pkg/token"
)

// Lexer tokenizes SQL input.
//
// Tokens are produced lazily during a single left-to-right scan; the parser
// consumes them immediately with bounded lookahead. Keywords are matched
// case-insensitively; identifiers preserve their original case (the dialect
// decides folding later).
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	dialect *dialect.Dialect

	err *LexError // first lexical error encountered
}

// NewLexer creates a new dialect-aware Lexer for the given input.
func NewLexer(input string, d *dialect.Dialect) *Lexer {
	l := &Lexer{
		input:   input,
		line:    1,
		col:     0,
		dialect: d,
	}
	l.readChar()
	return l
}

// Err returns the first lexical error encountered, if any.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	pos := l.currentPos()

	// Dialect-specific symbols first (longest match, e.g. "::")
	if tok, ok := l.matchDialectSymbol(pos); ok {
		return tok
	}

	var tok token.Token
	tok.Pos = pos

	switch l.ch {
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
	case '+':
		tok = l.newToken(token.PLUS, "+")
	case '-':
		tok = l.newToken(token.MINUS, "-")
	case '*':
		tok = l.newToken(token.STAR, "*")
	case '/':
		tok = l.newToken(token.SLASH, "/")
	case '%':
		tok = l.newToken(token.PERCENTOP, "%")
	case '=':
		tok = l.newToken(token.EQ, "=")
	case '<':
		switch l.peekChar() {
		case '=':
			l.readChar()
			tok = token.Token{Type: token.LE, Literal: "<=", Pos: pos}
		case '>':
			l.readChar()
			tok = token.Token{Type: token.NE, Literal: "<>", Pos: pos}
		default:
			tok = l.newToken(token.LT, "<")
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.GE, Literal: ">=", Pos: pos}
		} else {
			tok = l.newToken(token.GT, ">")
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.NE, Literal: "!=", Pos: pos}
		} else {
			tok = l.illegal(pos, string(l.ch))
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok = token.Token{Type: token.DPIPE, Literal: "||", Pos: pos}
		} else {
			tok = l.illegal(pos, string(l.ch))
		}
	case '.':
		tok = l.newToken(token.DOT, ".")
	case ',':
		tok = l.newToken(token.COMMA, ",")
	case ';':
		tok = l.newToken(token.SEMICOLON, ";")
	case '(':
		tok = l.newToken(token.LPAREN, "(")
	case ')':
		tok = l.newToken(token.RPAREN, ")")
	case '[':
		if l.bracketIdents() {
			lit, ok := l.readQuoted(']')
			if !ok {
				return l.unterminated(pos, "unterminated bracket identifier")
			}
			return token.Token{Type: token.IDENT, Literal: lit, Pos: pos, Quoted: true}
		}
		tok = l.newToken(token.LBRACKET, "[")
	case ']':
		tok = l.newToken(token.RBRACKET, "]")
	case '\'':
		lit, ok := l.readQuoted('\'')
		if !ok {
			return l.unterminated(pos, ErrUnterminatedString)
		}
		return token.Token{Type: token.STRING, Literal: lit, Pos: pos}
	case '"':
		lit, ok := l.readQuoted('"')
		if !ok {
			return l.unterminated(pos, "unterminated quoted identifier")
		}
		return token.Token{Type: token.IDENT, Literal: lit, Pos: pos, Quoted: true}
	case '`':
		lit, ok := l.readQuoted('`')
		if !ok {
			return l.unterminated(pos, "unterminated quoted identifier")
		}
		return token.Token{Type: token.IDENT, Literal: lit, Pos: pos, Quoted: true}
	default:
		switch {
		case isLetter(l.ch) || l.ch == '_':
			tok.Literal = l.readIdentifier()
			lowerIdent := strings.ToLower(tok.Literal)
			tok.Type = token.LookupIdent(lowerIdent)
			// Not a builtin keyword: check dialect keywords
			if tok.Type == token.IDENT && l.dialect != nil {
				if dynTok, ok := l.dialect.LookupKeyword(lowerIdent); ok {
					tok.Type = dynTok
				}
			}
			tok.Pos = pos
			return tok
		case isDigit(l.ch):
			tok.Type = token.NUMBER
			tok.Literal = l.readNumber()
			tok.Pos = pos
			return tok
		default:
			tok = l.illegal(pos, string(l.ch))
		}
	}

	l.readChar()
	return tok
}

// bracketIdents reports whether the dialect quotes identifiers with brackets.
func (l *Lexer) bracketIdents() bool {
	return l.dialect != nil && l.dialect.Identifiers.Quote == "["
}

// matchDialectSymbol checks the current position against dialect-specific
// symbols, longest match first ("::" before ":").
func (l *Lexer) matchDialectSymbol(pos token.Position) (token.Token, bool) {
	if l.dialect == nil {
		return token.Token{}, false
	}

	symbols := l.dialect.Symbols()
	if len(symbols) == 0 || l.pos >= len(l.input) {
		return token.Token{}, false
	}

	remaining := l.input[l.pos:]

	var matches []string
	for sym := range symbols {
		if strings.HasPrefix(remaining, sym) {
			matches = append(matches, sym)
		}
	}
	if len(matches) == 0 {
		return token.Token{}, false
	}

	sort.Slice(matches, func(i, j int) bool {
		return len(matches[i]) > len(matches[j])
	})

	symbol := matches[0]
	tokenType := symbols[symbol]

	for range symbol {
		l.readChar()
	}

	return token.Token{Type: tokenType, Literal: symbol, Pos: pos}, true
}

// newToken creates a new token at the current position.
func (l *Lexer) newToken(tokenType token.TokenType, literal string) token.Token {
	return token.Token{Type: tokenType, Literal: literal, Pos: l.currentPos()}
}

// illegal records an invalid-character error and returns an ILLEGAL token.
func (l *Lexer) illegal(pos token.Position, lit string) token.Token {
	if l.err == nil {
		l.err = &LexError{Pos: pos, Message: "invalid character " + lit}
	}
	return token.Token{Type: token.ILLEGAL, Literal: lit, Pos: pos}
}

// unterminated records an unterminated-literal error and returns an ILLEGAL token.
func (l *Lexer) unterminated(pos token.Position, msg string) token.Token {
	if l.err == nil {
		l.err = &LexError{Pos: pos, Message: msg}
	}
	return token.Token{Type: token.ILLEGAL, Pos: pos}
}

// skipWhitespaceAndComments skips whitespace, line comments, and block comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}

		// Line comment (-- ...)
		if l.ch == '-' && l.peekChar() == '-' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}

		// Block comment (/* ... */)
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar() // skip '/'
			l.readChar() // skip '*'
			for l.ch != 0 {
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar()
					l.readChar()
					break
				}
				l.readChar()
			}
			continue
		}

		break
	}
}

// readQuoted reads a literal delimited by the given quote character.
// A doubled quote is an escape: 'it''s' -> it's. Returns false if the
// closing quote is missing.
func (l *Lexer) readQuoted(quote byte) (string, bool) {
	l.readChar() // skip opening quote

	var result strings.Builder
	for {
		if l.ch == 0 {
			return result.String(), false
		}
		if l.ch == quote {
			if l.peekChar() == quote {
				result.WriteByte(quote)
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // skip closing quote
			return result.String(), true
		}
		result.WriteByte(l.ch)
		l.readChar()
	}
}

// readIdentifier reads an unquoted identifier.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads a numeric literal (integer, decimal, or scientific).
func (l *Lexer) readNumber() string {
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[start:l.pos]
}

// isLetter reports whether ch can appear in an unquoted identifier. Bytes
// beyond ASCII are accepted wholesale so multi-byte UTF-8 names lex as a
// single token.
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch >= utf8.RuneSelf
}

// isDigit returns true if ch is a digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all tokens from the input, for debugging and the
// token-dump command.
func Tokenize(input string, d *dialect.Dialect) []token.Token {
	l := NewLexer(input, d)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			break
		}
	}
	return tokens
}
