// Package ast defines the abstract syntax tree produced by the parser.
package ast

import (
	"github.com/slatelang/slate/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Program is the root node of every AST our parser produces.
type Program struct {
	File       string // Source file path
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// Block is a brace-delimited statement list.
type Block struct {
	Token      token.Token // The '{' token
	Statements []Statement
}

func (b *Block) statementNode()       {}
func (b *Block) TokenLiteral() string { return b.Token.Lexeme }
func (b *Block) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

// ExpressionStatement is an expression evaluated for its side effects;
// the resulting value is discarded.
type ExpressionStatement struct {
	Token      token.Token // First token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token {
	if es == nil {
		return token.Token{}
	}
	return es.Token
}

// AssignStatement represents `name = expression;`.
type AssignStatement struct {
	Token token.Token // The identifier token
	Name  string
	Value Expression
}

func (as *AssignStatement) statementNode()       {}
func (as *AssignStatement) TokenLiteral() string { return as.Token.Lexeme }
func (as *AssignStatement) GetToken() token.Token {
	if as == nil {
		return token.Token{}
	}
	return as.Token
}

// IfStatement represents `if (cond) { .. } else { .. }`.
// Alternative is nil when there is no else block.
type IfStatement struct {
	Token       token.Token // The 'if' token
	Condition   Expression
	Consequence *Block
	Alternative *Block
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Lexeme }
func (is *IfStatement) GetToken() token.Token {
	if is == nil {
		return token.Token{}
	}
	return is.Token
}

// WhileStatement represents `while (cond) { .. }`.
type WhileStatement struct {
	Token     token.Token // The 'while' token
	Condition Expression
	Body      *Block
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Lexeme }
func (ws *WhileStatement) GetToken() token.Token {
	if ws == nil {
		return token.Token{}
	}
	return ws.Token
}

// ForStatement represents `for (var in iterable) { .. }`.
type ForStatement struct {
	Token    token.Token // The 'for' token
	VarName  string
	Iterable Expression
	Body     *Block
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Lexeme }
func (fs *ForStatement) GetToken() token.Token {
	if fs == nil {
		return token.Token{}
	}
	return fs.Token
}

// FunctionStatement represents `def name(params) { .. }`.
type FunctionStatement struct {
	Token  token.Token // The 'def' token
	Name   string
	Params []string
	Body   *Block
}

func (fs *FunctionStatement) statementNode()       {}
func (fs *FunctionStatement) TokenLiteral() string { return fs.Token.Lexeme }
func (fs *FunctionStatement) GetToken() token.Token {
	if fs == nil {
		return token.Token{}
	}
	return fs.Token
}

// ReturnStatement represents `return;` or `return expr;`.
type ReturnStatement struct {
	Token token.Token // The 'return' token
	Value Expression  // nil for a bare return
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token {
	if rs == nil {
		return token.Token{}
	}
	return rs.Token
}

// PassStatement represents `pass;`.
type PassStatement struct {
	Token token.Token // The 'pass' token
}

func (ps *PassStatement) statementNode()       {}
func (ps *PassStatement) TokenLiteral() string { return ps.Token.Lexeme }
func (ps *PassStatement) GetToken() token.Token {
	if ps == nil {
		return token.Token{}
	}
	return ps.Token
}

// PrintStatement represents `print(args);`.
type PrintStatement struct {
	Token token.Token // The 'print' token
	Args  []Expression
}

func (ps *PrintStatement) statementNode()       {}
func (ps *PrintStatement) TokenLiteral() string { return ps.Token.Lexeme }
func (ps *PrintStatement) GetToken() token.Token {
	if ps == nil {
		return token.Token{}
	}
	return ps.Token
}
