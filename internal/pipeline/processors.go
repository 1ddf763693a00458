package pipeline

import (
	"github.com/slatelang/slate/internal/codegen"
	"github.com/slatelang/slate/internal/lexer"
	"github.com/slatelang/slate/internal/parser"
	"github.com/slatelang/slate/internal/semantic"
	"github.com/slatelang/slate/internal/token"
)

// LexerProcessor tokenizes the source into ctx.Tokens for display. The
// stream keeps illegal tokens; the parser is the stage that turns them
// into diagnostics, so running both never double-reports.
type LexerProcessor struct{}

func (LexerProcessor) Process(ctx *PipelineContext) *PipelineContext {
	l := lexer.New(ctx.Source)
	for {
		tok := l.NextToken()
		ctx.Tokens = append(ctx.Tokens, tok)
		if tok.Type == token.EOF {
			return ctx
		}
	}
}

// ParserProcessor builds the AST. It scans the source itself rather
// than consuming ctx.Tokens, so it runs with or without LexerProcessor.
type ParserProcessor struct{}

func (ParserProcessor) Process(ctx *PipelineContext) *PipelineContext {
	p := parser.New(lexer.New(ctx.Source))
	ctx.AstRoot = p.ParseProgram()
	ctx.AstRoot.File = ctx.FilePath
	ctx.Errors = append(ctx.Errors, p.Errors()...)
	return ctx
}

// SemanticProcessor resolves names and lowers the AST to IR.
type SemanticProcessor struct{}

func (SemanticProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.AstRoot == nil || len(ctx.Errors) > 0 {
		return ctx
	}
	unit, errs := semantic.New().Generate(ctx.AstRoot)
	ctx.Errors = append(ctx.Errors, errs...)
	if len(errs) == 0 {
		ctx.Unit = unit
	}
	return ctx
}

// CodegenProcessor lowers IR to bytecode. A failure here is an internal
// fault, never a user error.
type CodegenProcessor struct{}

func (CodegenProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.Unit == nil || len(ctx.Errors) > 0 {
		return ctx
	}
	program, err := codegen.Generate(ctx.Unit)
	if err != nil {
		ctx.Fault = err
		return ctx
	}
	ctx.Program = program
	return ctx
}
