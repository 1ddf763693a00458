package parser

import (
	"github.com/slatelang/slate/internal/ast"
	"github.com/slatelang/slate/internal/diagnostics"
	"github.com/slatelang/slate/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.errors = append(p.errors, diagnostics.NewError(
			diagnostics.ErrP003,
			p.curToken,
			"expression too complex: recursion depth limit exceeded",
		))
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()

	for leftExp != nil && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}

	return leftExp
}

func (p *Parser) parseIdentifierOrCall() ast.Expression {
	identToken := p.curToken

	if p.peekTokenIs(token.LPAREN) {
		p.nextToken() // '('
		args, ok := p.parseExpressionList(token.RPAREN)
		if !ok {
			return nil
		}
		return &ast.CallExpression{Token: identToken, FuncName: identToken.Lexeme, Args: args}
	}

	return &ast.Identifier{Token: identToken, Name: identToken.Lexeme}
}

func (p *Parser) parseLiteral() ast.Expression {
	return &ast.Literal{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return &ast.Literal{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNoneLiteral() ast.Expression {
	return &ast.Literal{Token: p.curToken, Value: nil}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseListLiteral() ast.Expression {
	lit := &ast.ListLiteral{Token: p.curToken}
	items, ok := p.parseExpressionList(token.RBRACKET)
	if !ok {
		return nil
	}
	lit.Items = items
	return lit
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
	}
	p.nextToken()
	expression.Operand = p.parseExpression(PREFIX)
	if expression.Operand == nil {
		return nil
	}
	return expression
}

// parseNotExpression binds looser than comparisons, so `not a == b`
// reads as `not (a == b)`.
func (p *Parser) parseNotExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: "not",
	}
	p.nextToken()
	expression.Operand = p.parseExpression(NOT)
	if expression.Operand == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
		Left:     left,
	}

	precedence := precedences[p.curToken.Type]
	p.nextToken()
	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}
	return expression
}

// parseExpressionList parses a comma-separated expression list up to the
// closing end token, with curToken on the opening delimiter.
func (p *Parser) parseExpressionList(end token.TokenType) ([]ast.Expression, bool) {
	var list []ast.Expression

	if p.peekTokenIs(end) {
		p.nextToken()
		return list, true
	}

	p.nextToken()
	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil, false
	}
	list = append(list, first)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		next := p.parseExpression(LOWEST)
		if next == nil {
			return nil, false
		}
		list = append(list, next)
	}

	if !p.expectPeek(end) {
		return nil, false
	}
	return list, true
}
