package parser

// TokenType represents the type of a lexical token.
type TokenType uint8

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	// Literals
	TokenNumber // 123, 3.14
	TokenName   // sin, f, x (lowercase runs)

	// Operators
	TokenPlus  // +
	TokenMinus // -
	TokenMult  // *
	TokenDiv   // /
	TokenPow   // ^

	// Grouping
	TokenParenOpen  // (
	TokenParenClose // )

	// Parameter suffix of a parameterized function, e.g. root{3}
	TokenParam // {3}
)

// String returns a string representation of the token type.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "(eof)"
	case TokenError:
		return "(error)"
	case TokenNumber:
		return "(number)"
	case TokenName:
		return "(name)"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenMult:
		return "*"
	case TokenDiv:
		return "/"
	case TokenPow:
		return "^"
	case TokenParenOpen:
		return "("
	case TokenParenClose:
		return ")"
	case TokenParam:
		return "{n}"
	default:
		return "(unknown)"
	}
}

// Token represents a lexical token in an expression.
type Token struct {
	Type     TokenType // Type of the token
	Value    string    // Literal value of the token
	Position int       // Starting position in the input string
}

// symbols maps single-character operators and punctuation to token types.
var symbols = map[byte]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenMult,
	'/': TokenDiv,
	'^': TokenPow,
	'(': TokenParenOpen,
	')': TokenParenClose,
}
