// Package semantic lowers the AST into IR. It resolves every variable
// reference against the scope tree, rejects undefined names before any
// code runs, and expands control flow into labeled jumps.
package semantic

import (
	"fmt"

	"github.com/slatelang/slate/internal/ast"
	"github.com/slatelang/slate/internal/diagnostics"
	"github.com/slatelang/slate/internal/ir"
	"github.com/slatelang/slate/internal/symbols"
	"github.com/slatelang/slate/internal/token"
)

// Analyzer walks one program and produces one ir.Unit. A fresh Analyzer
// is required per compilation: label and hidden-name counters are scoped
// to a single unit so compilation stays deterministic.
type Analyzer struct {
	unit *ir.Unit

	globalScope *symbols.Scope
	scope       *symbols.Scope

	code []ir.Instruction // current emission target (main or a function body)

	labelCount  int
	hiddenCount int

	currentFunction string // "" at top level

	errors []*diagnostics.DiagnosticError
}

func New() *Analyzer {
	global := symbols.NewScope()
	return &Analyzer{
		unit:        &ir.Unit{},
		globalScope: global,
		scope:       global,
	}
}

// Generate lowers program to IR. On semantic errors it returns every
// diagnostic found; no partial unit is usable in that case.
func (a *Analyzer) Generate(program *ast.Program) (*ir.Unit, []*diagnostics.DiagnosticError) {
	for _, stmt := range program.Statements {
		a.genStatement(stmt)
	}
	a.unit.Main = a.code

	if len(a.errors) > 0 {
		return nil, a.errors
	}
	return a.unit, nil
}

func (a *Analyzer) emit(in ir.Instruction) {
	a.code = append(a.code, in)
}

func (a *Analyzer) newLabel() ir.Label {
	label := ir.Label(fmt.Sprintf("L%d", a.labelCount))
	a.labelCount++
	return label
}

// hiddenNames allocates the pair of compiler-internal names for one for
// loop's iterable snapshot and index counter. The dot prefix cannot
// collide with user identifiers.
func (a *Analyzer) hiddenNames() (iterName, idxName string) {
	n := a.hiddenCount
	a.hiddenCount++
	return fmt.Sprintf(".iter%d", n), fmt.Sprintf(".idx%d", n)
}

func (a *Analyzer) errorf(code diagnostics.Code, tok token.Token, format string, args ...interface{}) {
	a.errors = append(a.errors, diagnostics.NewError(code, tok, format, args...))
}
