// Package diagnostics defines coded, source-positioned errors reported
// by the compile-time stages (lexer, parser, semantic analysis).
package diagnostics

import (
	"fmt"

	"github.com/slatelang/slate/internal/token"
)

// Code identifies a diagnostic category. The prefix names the stage:
// L for lexical, P for parse, S for semantic, R for runtime.
type Code string

const (
	ErrL001 Code = "L001" // illegal character
	ErrL002 Code = "L002" // malformed literal (unterminated string, bad number)

	ErrP001 Code = "P001" // unexpected token
	ErrP002 Code = "P002" // no parse rule for token
	ErrP003 Code = "P003" // expression nesting too deep

	ErrS001 Code = "S001" // undefined variable
	ErrS002 Code = "S002" // structurally invalid construct

	ErrR001 Code = "R001" // runtime error
)

// DiagnosticError is a compile-time error bound to a source position.
type DiagnosticError struct {
	Code    Code
	Message string
	Line    int
	Column  int
}

func (e *DiagnosticError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s at line %d, column %d", e.Code, e.Message, e.Line, e.Column)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a diagnostic positioned at tok.
func NewError(code Code, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
	}
}
