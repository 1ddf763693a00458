package semantic

import (
	"github.com/slatelang/slate/internal/ast"
	"github.com/slatelang/slate/internal/diagnostics"
	"github.com/slatelang/slate/internal/ir"
)

var infixOps = map[string]ir.Op{
	"+":   ir.ADD,
	"-":   ir.SUB,
	"*":   ir.MUL,
	"/":   ir.DIV,
	"%":   ir.MOD,
	"==":  ir.EQ,
	"!=":  ir.NEQ,
	"<":   ir.LT,
	">":   ir.GT,
	"<=":  ir.LE,
	">=":  ir.GE,
	"and": ir.AND,
	"or":  ir.OR,
}

var prefixOps = map[string]ir.Op{
	"-":   ir.NEGATE,
	"+":   ir.POS,
	"not": ir.NOT,
}

// genExpression emits code that leaves exactly one value on the stack.
func (a *Analyzer) genExpression(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Literal:
		a.emit(ir.Instruction{Op: ir.LOAD_CONST, Value: e.Value})
	case *ast.Identifier:
		if _, ok := a.scope.Resolve(e.Name); !ok {
			a.errorf(diagnostics.ErrS001, e.GetToken(), "undefined variable %q", e.Name)
		}
		a.emit(ir.Instruction{Op: ir.LOAD, Name: e.Name})
	case *ast.InfixExpression:
		a.genExpression(e.Left)
		a.genExpression(e.Right)
		op, ok := infixOps[e.Operator]
		if !ok {
			a.errorf(diagnostics.ErrS002, e.GetToken(), "unknown operator %q", e.Operator)
			return
		}
		a.emit(ir.Instruction{Op: op})
	case *ast.PrefixExpression:
		a.genExpression(e.Operand)
		op, ok := prefixOps[e.Operator]
		if !ok {
			a.errorf(diagnostics.ErrS002, e.GetToken(), "unknown operator %q", e.Operator)
			return
		}
		a.emit(ir.Instruction{Op: op})
	case *ast.CallExpression:
		if _, ok := a.scope.Resolve(e.FuncName); !ok {
			a.errorf(diagnostics.ErrS001, e.GetToken(), "undefined variable %q", e.FuncName)
		}
		for _, arg := range e.Args {
			a.genExpression(arg)
		}
		a.emit(ir.Instruction{Op: ir.CALL_FUNCTION, Name: e.FuncName, N: len(e.Args)})
	case *ast.ListLiteral:
		for _, item := range e.Items {
			a.genExpression(item)
		}
		a.emit(ir.Instruction{Op: ir.BUILD_LIST, N: len(e.Items)})
	default:
		a.errorf(diagnostics.ErrS002, expr.GetToken(), "unsupported expression %T", expr)
	}
}
