// Package backend provides an interface for execution backends, so the
// driver can run a compiled program without knowing how it executes.
package backend

import (
	"github.com/slatelang/slate/internal/pipeline"
)

// Backend is the interface for execution backends
type Backend interface {
	// Run executes the compiled program from the pipeline context.
	Run(ctx *pipeline.PipelineContext) error

	// Name returns the backend name for display
	Name() string
}
