package parser

import (
	"github.com/plotsmith/gographer/pkg/types"
)

const eof = -1

// Lexer converts an expression string into a sequence of tokens.
// The implementation is based on Rob Pike's "Lexical Scanning in Go"
// technique, producing tokens on demand.
//
// The mini-language is ASCII only: digit/decimal-point runs are numbers,
// lowercase-letter runs are identifiers, and the six operator characters
// are + - * / ^ ( ). A curly-brace suffix {digits} is the parameter of a
// parameterized function (e.g. root{3}). Only the ASCII space character
// counts as whitespace.
type Lexer struct {
	input   string // Input string being scanned
	length  int    // Length of input string
	start   int    // Start position of current token
	current int    // Current position in input
	err     error  // First error encountered
}

// NewLexer creates a new lexer from the provided input string.
// The input is tokenized by successive calls to the Next method.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		length: len(input),
	}
}

// Next returns the next token from the input.
// When the end of the input is reached, Next returns TokenEOF for all
// subsequent calls.
func (l *Lexer) Next() Token {
	l.skipSpaces()

	ch := l.peek()
	if ch == eof {
		return l.eof()
	}

	if tt, ok := symbols[byte(ch)]; ok {
		l.current++
		return l.newToken(tt)
	}

	if ch == '{' {
		return l.scanParam()
	}

	if isDigit(byte(ch)) || ch == '.' {
		return l.scanNumber()
	}

	if isLower(byte(ch)) {
		return l.scanName()
	}

	l.current++
	return l.error(types.ErrUnexpectedToken, "unexpected character "+string(rune(ch)))
}

// Err returns the first error encountered during lexing, if any.
func (l *Lexer) Err() error {
	return l.err
}

// scanNumber reads a digit/decimal-point run. Validation of the run as a
// float (e.g. rejecting "1.2.3") is left to the parser.
func (l *Lexer) scanNumber() Token {
	for {
		ch := l.peek()
		if ch == eof || (!isDigit(byte(ch)) && ch != '.') {
			break
		}
		l.current++
	}
	return l.newToken(TokenNumber)
}

// scanName reads a lowercase-letter run. Identifiers are case sensitive and
// lowercase only; an uppercase letter is not part of any token.
func (l *Lexer) scanName() Token {
	for {
		ch := l.peek()
		if ch == eof || !isLower(byte(ch)) {
			break
		}
		l.current++
	}
	return l.newToken(TokenName)
}

// scanParam reads a {digits} parameter suffix. The braces are stripped from
// the token value. An unclosed or non-numeric suffix is an
// ErrUnclosedParameter error.
func (l *Lexer) scanParam() Token {
	l.current++ // consume '{'
	l.ignore()

	for {
		ch := l.peek()
		if ch == eof || !isDigit(byte(ch)) {
			break
		}
		l.current++
	}

	if l.current == l.start || l.peek() != '}' {
		return l.error(types.ErrUnclosedParameter, "expected {digits} parameter suffix")
	}

	t := l.newToken(TokenParam)
	l.current++ // consume '}'
	l.ignore()
	return t
}

// Helper methods

func (l *Lexer) skipSpaces() {
	for l.current < l.length && l.input[l.current] == ' ' {
		l.current++
	}
	l.start = l.current
}

func (l *Lexer) eof() Token {
	return Token{
		Type:     TokenEOF,
		Position: l.current,
	}
}

func (l *Lexer) error(code types.ErrorCode, message string) Token {
	t := l.newToken(TokenError)
	l.err = &types.Error{
		Code:     code,
		Message:  message,
		Position: t.Position,
		Token:    t.Value,
	}
	return t
}

func (l *Lexer) newToken(tt TokenType) Token {
	t := Token{
		Type:     tt,
		Value:    l.input[l.start:l.current],
		Position: l.start,
	}
	l.start = l.current
	return t
}

func (l *Lexer) ignore() {
	l.start = l.current
}

func (l *Lexer) peek() rune {
	if l.err != nil || l.current >= l.length {
		return eof
	}
	return rune(l.input[l.current])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}
