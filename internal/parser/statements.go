package parser

import (
	"github.com/slatelang/slate/internal/ast"
	"github.com/slatelang/slate/internal/token"
)

// parseStatement dispatches on the current token. Block statements (if,
// while, for, def) carry their own braces; simple statements end with ';'.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.DEF:
		return p.parseFunctionStatement()
	case token.RETURN:
		return p.terminated(p.parseReturnStatement())
	case token.PASS:
		return p.terminated(&ast.PassStatement{Token: p.curToken})
	case token.PRINT:
		return p.terminated(p.parsePrintStatement())
	case token.IDENT:
		if p.peekTokenIs(token.ASSIGN) {
			return p.terminated(p.parseAssignStatement())
		}
		return p.terminated(p.parseExpressionStatement())
	default:
		return p.terminated(p.parseExpressionStatement())
	}
}

// terminated consumes the trailing semicolon of a simple statement.
func (p *Parser) terminated(stmt ast.Statement) ast.Statement {
	if stmt == nil {
		return nil
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	return stmt
}

func (p *Parser) parseAssignStatement() ast.Statement {
	stmt := &ast.AssignStatement{Token: p.curToken, Name: p.curToken.Lexeme}

	p.nextToken() // '='
	p.nextToken() // first token of the value expression

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	if p.peekTokenIs(token.SEMICOLON) {
		return stmt // bare return
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parsePrintStatement() ast.Statement {
	stmt := &ast.PrintStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	args, ok := p.parseExpressionList(token.RPAREN)
	if !ok {
		return nil
	}
	stmt.Args = args
	return stmt
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}

	cond, ok := p.parseParenCondition()
	if !ok {
		return nil
	}
	stmt.Condition = cond

	stmt.Consequence = p.parseBlock()
	if stmt.Consequence == nil {
		return nil
	}

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		stmt.Alternative = p.parseBlock()
		if stmt.Alternative == nil {
			return nil
		}
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}

	cond, ok := p.parseParenCondition()
	if !ok {
		return nil
	}
	stmt.Condition = cond

	stmt.Body = p.parseBlock()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseForStatement() ast.Statement {
	stmt := &ast.ForStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.VarName = p.curToken.Lexeme

	if !p.expectPeek(token.IN) {
		return nil
	}
	p.nextToken()
	stmt.Iterable = p.parseExpression(LOWEST)
	if stmt.Iterable == nil {
		return nil
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	stmt.Body = p.parseBlock()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseFunctionStatement() ast.Statement {
	stmt := &ast.FunctionStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = p.curToken.Lexeme

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params, ok := p.parseParamList()
	if !ok {
		return nil
	}
	stmt.Params = params

	stmt.Body = p.parseBlock()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

// parseParamList parses `a, b, c)` with curToken on '('.
func (p *Parser) parseParamList() ([]string, bool) {
	var params []string

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params, true
	}

	if !p.expectPeek(token.IDENT) {
		return nil, false
	}
	params = append(params, p.curToken.Lexeme)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil, false
		}
		params = append(params, p.curToken.Lexeme)
	}

	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}
	return params, true
}

// parseParenCondition parses `(expression)` with curToken on the keyword.
func (p *Parser) parseParenCondition() (ast.Expression, bool) {
	if !p.expectPeek(token.LPAREN) {
		return nil, false
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil, false
	}
	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}
	return cond, true
}

// parseBlock parses `{ statements }` with curToken just before '{'.
func (p *Parser) parseBlock() *ast.Block {
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	block := &ast.Block{Token: p.curToken}

	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			p.skipToStatementBoundary()
			if p.curTokenIs(token.RBRACE) || p.curTokenIs(token.EOF) {
				break
			}
		}
		p.nextToken()
	}

	if !p.curTokenIs(token.RBRACE) {
		p.peekError(token.RBRACE)
		return nil
	}
	return block
}
