// Package parser builds a Slate AST from the token stream.
package parser

import (
	"github.com/slatelang/slate/internal/ast"
	"github.com/slatelang/slate/internal/diagnostics"
	"github.com/slatelang/slate/internal/lexer"
	"github.com/slatelang/slate/internal/token"
)

// Operator precedence levels, lowest to highest.
const (
	LOWEST int = iota
	OR         // or
	AND        // and
	NOT        // not
	EQUALS     // == !=
	COMPARE    // < > <= >=
	SUM        // + -
	PRODUCT    // * / %
	PREFIX     // unary - +
)

// MaxRecursionDepth bounds expression nesting to keep pathological input
// from exhausting the Go stack.
const MaxRecursionDepth = 500

var precedences = map[token.TokenType]int{
	token.OR:       OR,
	token.AND:      AND,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       COMPARE,
	token.GT:       COMPARE,
	token.LE:       COMPARE,
	token.GE:       COMPARE,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []*diagnostics.DiagnosticError
	depth  int

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.IDENT:    p.parseIdentifierOrCall,
		token.INT:      p.parseLiteral,
		token.FLOAT:    p.parseLiteral,
		token.STRING:   p.parseLiteral,
		token.TRUE:     p.parseBoolLiteral,
		token.FALSE:    p.parseBoolLiteral,
		token.NONE:     p.parseNoneLiteral,
		token.LPAREN:   p.parseGroupedExpression,
		token.LBRACKET: p.parseListLiteral,
		token.MINUS:    p.parsePrefixExpression,
		token.PLUS:     p.parsePrefixExpression,
		token.NOT:      p.parseNotExpression,
	}
	p.infixParseFns = map[token.TokenType]infixParseFn{
		token.PLUS:     p.parseInfixExpression,
		token.MINUS:    p.parseInfixExpression,
		token.ASTERISK: p.parseInfixExpression,
		token.SLASH:    p.parseInfixExpression,
		token.PERCENT:  p.parseInfixExpression,
		token.EQ:       p.parseInfixExpression,
		token.NOT_EQ:   p.parseInfixExpression,
		token.LT:       p.parseInfixExpression,
		token.GT:       p.parseInfixExpression,
		token.LE:       p.parseInfixExpression,
		token.GE:       p.parseInfixExpression,
		token.AND:      p.parseInfixExpression,
		token.OR:       p.parseInfixExpression,
	}

	// Read two tokens so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the diagnostics collected while parsing.
func (p *Parser) Errors() []*diagnostics.DiagnosticError {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	p.errors = append(p.errors, diagnostics.NewError(
		diagnostics.ErrP001,
		p.peekToken,
		"expected %q, got %q", string(t), p.peekToken.Lexeme,
	))
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	code := diagnostics.ErrP002
	if tok.Type == token.ILLEGAL {
		code = diagnostics.ErrL001
	}
	p.errors = append(p.errors, diagnostics.NewError(
		code,
		tok,
		"unexpected token %q in expression", tok.Lexeme,
	))
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// ParseProgram parses the whole token stream into a Program.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		} else {
			// Recover at the next statement boundary to avoid error cascades.
			p.skipToStatementBoundary()
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) skipToStatementBoundary() {
	for !p.curTokenIs(token.SEMICOLON) &&
		!p.curTokenIs(token.RBRACE) &&
		!p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}
