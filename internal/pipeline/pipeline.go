// Package pipeline chains the compile stages (lex, parse, semantic
// analysis, code generation) behind a uniform Processor interface and a
// shared context carrying every intermediate artifact.
package pipeline

import (
	"github.com/slatelang/slate/internal/ast"
	"github.com/slatelang/slate/internal/bytecode"
	"github.com/slatelang/slate/internal/diagnostics"
	"github.com/slatelang/slate/internal/ir"
	"github.com/slatelang/slate/internal/token"
)

// PipelineContext carries source text and every artifact the stages
// produce from it.
type PipelineContext struct {
	Source   string
	FilePath string

	Tokens  []token.Token
	AstRoot *ast.Program
	Unit    *ir.Unit
	Program *bytecode.Program

	// Errors are user-facing diagnostics, accumulated across stages.
	Errors []*diagnostics.DiagnosticError

	// Fault is an internal failure (malformed IR, bad pool index). It is
	// a bug in the compiler, not in the user's program.
	Fault error
}

// NewPipelineContext creates a context for source.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{Source: source}
}

// Failed reports whether any stage produced errors or an internal fault.
func (ctx *PipelineContext) Failed() bool {
	return len(ctx.Errors) > 0 || ctx.Fault != nil
}

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Stages run even after earlier errors so
// diagnostics from independent stages all get collected; stages that
// need a prior artifact skip themselves when it is missing.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
