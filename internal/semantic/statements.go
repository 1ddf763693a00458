package semantic

import (
	"github.com/slatelang/slate/internal/ast"
	"github.com/slatelang/slate/internal/diagnostics"
	"github.com/slatelang/slate/internal/ir"
	"github.com/slatelang/slate/internal/symbols"
)

func (a *Analyzer) genStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Block:
		for _, inner := range s.Statements {
			a.genStatement(inner)
		}
	case *ast.ExpressionStatement:
		a.genExpression(s.Expression)
		a.emit(ir.Instruction{Op: ir.POP})
	case *ast.AssignStatement:
		a.genAssign(s)
	case *ast.IfStatement:
		a.genIf(s)
	case *ast.WhileStatement:
		a.genWhile(s)
	case *ast.ForStatement:
		a.genFor(s)
	case *ast.FunctionStatement:
		a.genFunction(s)
	case *ast.ReturnStatement:
		a.genReturn(s)
	case *ast.PassStatement:
		a.emit(ir.Instruction{Op: ir.NOP})
	case *ast.PrintStatement:
		a.genPrint(s)
	default:
		a.errorf(diagnostics.ErrS002, stmt.GetToken(), "unsupported statement %T", stmt)
	}
}

func (a *Analyzer) genAssign(s *ast.AssignStatement) {
	a.genExpression(s.Value)
	a.defineVar(s.Name)
	a.emit(ir.Instruction{Op: ir.STORE, Name: s.Name})
}

// defineVar binds name in the current scope. Inside a function every
// assignment is local to that function; only top-level assignments are
// global.
func (a *Analyzer) defineVar(name string) {
	kind := symbols.KindGlobal
	if !a.scope.IsGlobal() {
		kind = symbols.KindLocal
	}
	a.scope.Define(name, kind)
}

func (a *Analyzer) genIf(s *ast.IfStatement) {
	elseLabel := a.newLabel()
	endLabel := a.newLabel()

	a.genExpression(s.Condition)
	a.emit(ir.Instruction{Op: ir.JUMP_IF_FALSE, Label: elseLabel})

	a.genStatement(s.Consequence)
	a.emit(ir.Instruction{Op: ir.JUMP, Label: endLabel})

	a.emit(ir.Instruction{Op: ir.LABEL, Label: elseLabel})
	if s.Alternative != nil {
		a.genStatement(s.Alternative)
	}

	a.emit(ir.Instruction{Op: ir.LABEL, Label: endLabel})
}

func (a *Analyzer) genWhile(s *ast.WhileStatement) {
	loopLabel := a.newLabel()
	exitLabel := a.newLabel()

	a.emit(ir.Instruction{Op: ir.LABEL, Label: loopLabel})
	a.genExpression(s.Condition)
	a.emit(ir.Instruction{Op: ir.JUMP_IF_FALSE, Label: exitLabel})

	a.genStatement(s.Body)
	a.emit(ir.Instruction{Op: ir.JUMP, Label: loopLabel})

	a.emit(ir.Instruction{Op: ir.LABEL, Label: exitLabel})
}

// genFor lowers `for (x in e)` to an index-counting loop: the iterable
// is evaluated once into a hidden binding, a hidden index runs from 0
// while index < len(iterable), and x is rebound to iterable[index] on
// every iteration.
func (a *Analyzer) genFor(s *ast.ForStatement) {
	loopLabel := a.newLabel()
	exitLabel := a.newLabel()
	iterName, idxName := a.hiddenNames()

	a.genExpression(s.Iterable)
	a.defineVar(iterName)
	a.emit(ir.Instruction{Op: ir.STORE, Name: iterName})

	a.emit(ir.Instruction{Op: ir.LOAD_CONST, Value: int64(0)})
	a.defineVar(idxName)
	a.emit(ir.Instruction{Op: ir.STORE, Name: idxName})

	a.emit(ir.Instruction{Op: ir.LABEL, Label: loopLabel})
	a.emit(ir.Instruction{Op: ir.LOAD, Name: idxName})
	a.emit(ir.Instruction{Op: ir.LOAD, Name: iterName})
	a.emit(ir.Instruction{Op: ir.LEN})
	a.emit(ir.Instruction{Op: ir.LT})
	a.emit(ir.Instruction{Op: ir.JUMP_IF_FALSE, Label: exitLabel})

	a.emit(ir.Instruction{Op: ir.LOAD, Name: iterName})
	a.emit(ir.Instruction{Op: ir.LOAD, Name: idxName})
	a.emit(ir.Instruction{Op: ir.INDEX})
	a.defineVar(s.VarName)
	a.emit(ir.Instruction{Op: ir.STORE, Name: s.VarName})

	a.genStatement(s.Body)

	a.emit(ir.Instruction{Op: ir.LOAD, Name: idxName})
	a.emit(ir.Instruction{Op: ir.LOAD_CONST, Value: int64(1)})
	a.emit(ir.Instruction{Op: ir.ADD})
	a.emit(ir.Instruction{Op: ir.STORE, Name: idxName})
	a.emit(ir.Instruction{Op: ir.JUMP, Label: loopLabel})

	a.emit(ir.Instruction{Op: ir.LABEL, Label: exitLabel})
}

func (a *Analyzer) genFunction(s *ast.FunctionStatement) {
	if !a.scope.IsGlobal() {
		a.errorf(diagnostics.ErrS002, s.GetToken(), "nested function definitions are not supported")
		return
	}

	// Bind the name before the body so recursive calls resolve.
	a.scope.Define(s.Name, symbols.KindFunction)

	fnScope := symbols.NewChildScope(a.globalScope)
	for _, param := range s.Params {
		fnScope.Define(param, symbols.KindParam)
	}

	prevScope, prevCode, prevFunction := a.scope, a.code, a.currentFunction
	a.scope, a.code, a.currentFunction = fnScope, nil, s.Name

	a.genStatement(s.Body)
	// Fall-through returns None.
	a.emit(ir.Instruction{Op: ir.LOAD_CONST, Value: nil})
	a.emit(ir.Instruction{Op: ir.RETURN_VALUE})

	a.unit.Functions = append(a.unit.Functions, &ir.Function{
		Name:   s.Name,
		Params: s.Params,
		Code:   a.code,
	})

	a.scope, a.code, a.currentFunction = prevScope, prevCode, prevFunction
	a.emit(ir.Instruction{Op: ir.DEF_FUNCTION, Name: s.Name})
}

func (a *Analyzer) genReturn(s *ast.ReturnStatement) {
	if a.currentFunction == "" {
		a.errorf(diagnostics.ErrS002, s.GetToken(), "return outside of function")
		return
	}
	if s.Value != nil {
		a.genExpression(s.Value)
	} else {
		a.emit(ir.Instruction{Op: ir.LOAD_CONST, Value: nil})
	}
	a.emit(ir.Instruction{Op: ir.RETURN_VALUE})
}

func (a *Analyzer) genPrint(s *ast.PrintStatement) {
	for _, arg := range s.Args {
		a.genExpression(arg)
		a.emit(ir.Instruction{Op: ir.PRINT})
	}
}
