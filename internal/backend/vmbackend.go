package backend

import (
	"fmt"
	"io"
	"os"

	"github.com/slatelang/slate/internal/pipeline"
	"github.com/slatelang/slate/internal/vm"
)

// VMBackend executes programs on the bytecode VM.
type VMBackend struct {
	out io.Writer
}

// NewVM creates a VM backend printing to stdout.
func NewVM() *VMBackend {
	return &VMBackend{out: os.Stdout}
}

// NewVMWithOutput creates a VM backend printing to out.
func NewVMWithOutput(out io.Writer) *VMBackend {
	return &VMBackend{out: out}
}

func (b *VMBackend) Name() string {
	return "vm"
}

// Run executes the compiled program to completion.
func (b *VMBackend) Run(ctx *pipeline.PipelineContext) error {
	if ctx.Program == nil {
		return fmt.Errorf("no compiled program to execute")
	}
	machine := vm.NewWithOutput(ctx.Program, b.out)
	return machine.Run()
}
