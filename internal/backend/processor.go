package backend

import (
	"strings"

	"github.com/slatelang/slate/internal/diagnostics"
	"github.com/slatelang/slate/internal/pipeline"
	"github.com/slatelang/slate/internal/token"
)

// ExecutionProcessor implements pipeline.Processor to run a Backend.
type ExecutionProcessor struct {
	Backend Backend
}

// NewExecutionProcessor creates a pipeline stage for the given backend.
func NewExecutionProcessor(b Backend) *ExecutionProcessor {
	return &ExecutionProcessor{Backend: b}
}

func (p *ExecutionProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	// If compilation failed, don't run execution.
	if ctx.Program == nil || ctx.Failed() {
		return ctx
	}

	if err := p.Backend.Run(ctx); err != nil {
		msg := strings.TrimPrefix(err.Error(), "runtime error: ")
		ctx.Errors = append(ctx.Errors, diagnostics.NewError(
			diagnostics.ErrR001,
			token.Token{}, // runtime errors carry no source position
			"%s", msg,
		))
	}

	return ctx
}
