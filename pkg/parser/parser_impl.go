package parser

import (
	"fmt"
	"strconv"

	"github.com/plotsmith/gographer/pkg/types"
)

// Parser implements a recursive descent parser for the plotting
// mini-language. The grammar, precedence low to high:
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/') factor)*
//	factor     := ('+' | '-') factor | primary ['^' factor]
//	primary    := number | '(' expression ')' | identifier-form
//
// Exponentiation is right associative and binds tighter than unary sign,
// so -x^2 parses as -(x^2). A function name applies to the next full
// factor: sin x^2 parses as sin(x^2).
type Parser struct {
	lexer   *Lexer
	current Token
	depth   int
	opts    CompileOptions
}

// Names with special meaning in identifier position.
const (
	nameVariable = "x"
	namePi       = "pi"
	nameE        = "e"
)

// NewParser creates a new parser for the given input string.
func NewParser(input string, opts ...CompileOption) *Parser {
	options := CompileOptions{
		MaxDepth: 100,
	}
	for _, opt := range opts {
		opt(&options)
	}

	p := &Parser{
		lexer: NewLexer(input),
		opts:  options,
	}

	// Read the first token
	p.advance()

	return p
}

// Parse parses the entire expression and returns the compiled Expression.
func (p *Parser) Parse() (*types.Expression, error) {
	if p.current.Type == TokenError {
		return nil, p.lexer.Err()
	}

	if p.current.Type == TokenEOF {
		return nil, p.error(types.ErrUnexpectedEnd, "empty expression")
	}

	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.current.Type == TokenError {
		return nil, p.lexer.Err()
	}
	if p.current.Type != TokenEOF {
		return nil, p.error(types.ErrTrailingInput, fmt.Sprintf("unexpected trailing input %q", p.current.Value))
	}

	return types.NewExpression(node, p.lexer.input), nil
}

// advance moves to the next token.
func (p *Parser) advance() {
	p.current = p.lexer.Next()
}

// error creates a parser error at the current token.
func (p *Parser) error(code types.ErrorCode, message string) error {
	return &types.Error{
		Code:     code,
		Message:  message,
		Position: p.current.Position,
		Token:    p.current.Value,
	}
}

// enter guards the recursion depth, which equals expression nesting depth.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		return p.error(types.ErrDepthExceeded, "expression nested too deeply")
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// parseExpression parses a sum of terms.
func (p *Parser) parseExpression() (*types.ASTNode, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenPlus || p.current.Type == TokenMinus {
		op := p.current
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		node := types.NewASTNode(types.NodeBinary, op.Position)
		node.Value = op.Value
		node.LHS = left
		node.RHS = right
		left = node
	}

	return left, nil
}

// parseTerm parses a product of factors.
func (p *Parser) parseTerm() (*types.ASTNode, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenMult || p.current.Type == TokenDiv {
		op := p.current
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node := types.NewASTNode(types.NodeBinary, op.Position)
		node.Value = op.Value
		node.LHS = left
		node.RHS = right
		left = node
	}

	return left, nil
}

// parseFactor parses a signed factor or an exponentiation.
//
// The sign branch consumes a full factor, so the exponent of a signed base
// is evaluated before the sign is applied (-x^2 is -(x^2)). Exponentiation
// recurses into factor on the right, making ^ right associative.
func (p *Parser) parseFactor() (*types.ASTNode, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if p.current.Type == TokenPlus || p.current.Type == TokenMinus {
		op := p.current
		p.advance()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node := types.NewASTNode(types.NodeUnary, op.Position)
		node.Value = op.Value
		node.Operand = operand
		return node, nil
	}

	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	if p.current.Type == TokenPow {
		op := p.current
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node := types.NewASTNode(types.NodeBinary, op.Position)
		node.Value = op.Value
		node.LHS = left
		node.RHS = right
		return node, nil
	}

	return left, nil
}

// parsePrimary parses a number, a parenthesized expression, or an
// identifier form.
func (p *Parser) parsePrimary() (*types.ASTNode, error) {
	switch p.current.Type {
	case TokenNumber:
		return p.parseNumber()
	case TokenParenOpen:
		return p.parseGrouping()
	case TokenName:
		return p.parseIdentifier()
	case TokenError:
		return nil, p.lexer.Err()
	case TokenEOF:
		return nil, p.error(types.ErrUnexpectedEnd, "unexpected end of expression")
	default:
		return nil, p.error(types.ErrUnexpectedToken, fmt.Sprintf("unexpected token %q", p.current.Value))
	}
}

// parseNumber parses a numeric literal.
func (p *Parser) parseNumber() (*types.ASTNode, error) {
	val, err := strconv.ParseFloat(p.current.Value, 64)
	if err != nil {
		return nil, p.error(types.ErrMalformedNumber, fmt.Sprintf("invalid number %q", p.current.Value))
	}

	node := types.NewASTNode(types.NodeNumber, p.current.Position)
	node.Value = p.current.Value
	node.NumValue = val
	p.advance()
	return node, nil
}

// parseGrouping parses '(' expression ')'.
func (p *Parser) parseGrouping() (*types.ASTNode, error) {
	p.advance() // consume '('

	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.current.Type != TokenParenClose {
		return nil, p.error(types.ErrUnexpectedToken, "expected closing parenthesis")
	}
	p.advance()
	return node, nil
}

// parseIdentifier parses an identifier form: the variable x, a constant,
// or a function application.
//
// A name followed by something that can begin a primary (a number, a name,
// an opening parenthesis) or by a {N} suffix is a function application over
// the next full factor. Any other bare name is a reference, resolved
// against the environment at evaluation time (parameters, set members).
// Consequently a sign after a bare name is always the binary operator:
// a-1 subtracts, and applying a function to a negated argument needs
// parentheses, as in sin(-x).
func (p *Parser) parseIdentifier() (*types.ASTNode, error) {
	name := p.current
	p.advance()

	switch name.Value {
	case namePi, nameE:
		node := types.NewASTNode(types.NodeConstant, name.Position)
		node.Value = name.Value
		return node, nil
	case nameVariable:
		return types.NewASTNode(types.NodeVariable, name.Position), nil
	}

	node := types.NewASTNode(types.NodeCall, name.Position)
	node.Value = name.Value

	if p.current.Type == TokenParam {
		n, err := strconv.Atoi(p.current.Value)
		if err != nil {
			return nil, p.error(types.ErrUnclosedParameter, fmt.Sprintf("invalid parameter %q", p.current.Value))
		}
		node.Param = n
		node.HasParam = true
		p.advance()
	} else if !p.beginsFactorArgument() {
		node.Type = types.NodeRef
		return node, nil
	}

	arg, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	node.Operand = arg
	return node, nil
}

// beginsFactorArgument reports whether the current token can start the
// argument of a juxtaposed function application.
func (p *Parser) beginsFactorArgument() bool {
	switch p.current.Type {
	case TokenNumber, TokenName, TokenParenOpen:
		return true
	default:
		return false
	}
}
