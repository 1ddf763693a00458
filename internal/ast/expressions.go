package ast

import (
	"github.com/slatelang/slate/internal/token"
)

// Identifier is a variable reference.
type Identifier struct {
	Token token.Token // The IDENT token
	Name  string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// Literal is an Int, Float, Str, Bool or None literal.
// Value holds int64, float64, string, bool, or nil respectively.
type Literal struct {
	Token token.Token
	Value interface{}
}

func (l *Literal) expressionNode()      {}
func (l *Literal) TokenLiteral() string { return l.Token.Lexeme }
func (l *Literal) GetToken() token.Token {
	if l == nil {
		return token.Token{}
	}
	return l.Token
}

// ListLiteral represents `[a, b, c]`.
type ListLiteral struct {
	Token token.Token // The '[' token
	Items []Expression
}

func (ll *ListLiteral) expressionNode()      {}
func (ll *ListLiteral) TokenLiteral() string { return ll.Token.Lexeme }
func (ll *ListLiteral) GetToken() token.Token {
	if ll == nil {
		return token.Token{}
	}
	return ll.Token
}

// InfixExpression is a binary operation: left op right.
type InfixExpression struct {
	Token    token.Token // The operator token
	Operator string
	Left     Expression
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Lexeme }
func (ie *InfixExpression) GetToken() token.Token {
	if ie == nil {
		return token.Token{}
	}
	return ie.Token
}

// PrefixExpression is a unary operation: op operand.
type PrefixExpression struct {
	Token    token.Token // The operator token
	Operator string
	Operand  Expression
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Lexeme }
func (pe *PrefixExpression) GetToken() token.Token {
	if pe == nil {
		return token.Token{}
	}
	return pe.Token
}

// CallExpression represents `name(args)`. Only plain identifiers are
// callable in Slate, so the callee is stored by name.
type CallExpression struct {
	Token    token.Token // The callee's IDENT token
	FuncName string
	Args     []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token {
	if ce == nil {
		return token.Token{}
	}
	return ce.Token
}
