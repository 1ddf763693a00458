// Package vm executes compiled bytecode programs on a stack machine
// with one shared operand stack and a LIFO call stack of frames.
package vm

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/slatelang/slate/internal/bytecode"
)

// RuntimeError is raised when a legal program performs an illegal
// operation at runtime. Execution halts immediately.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return "runtime error: " + e.Message
}

var errStackUnderflow = errors.New("stack underflow")
var errStackOverflow = errors.New("stack overflow")
var errInvalidConstantIndex = errors.New("invalid constant index")
var errInvalidNameIndex = errors.New("invalid name index")

// Initial size for the operand stack
const InitialStackSize = 2048

// Maximum operand stack size to prevent OOM
const MaxStackSize = 1024 * 1024

// Maximum call depth to prevent runaway recursion
const MaxFrameCount = 1024

// Frame represents one ongoing call. The top-level program runs in a
// frame whose fn is nil; that frame reads and writes globals directly.
type Frame struct {
	fn     *bytecode.Function
	ip     int
	locals map[string]Value
}

// VM is the virtual machine that executes a compiled program.
type VM struct {
	program *bytecode.Program

	stack []Value
	sp    int // points to the next free slot

	frames []*Frame

	globals map[string]Value

	out io.Writer
}

// New creates a VM for program, printing to stdout.
func New(program *bytecode.Program) *VM {
	return NewWithOutput(program, os.Stdout)
}

// NewWithOutput creates a VM that writes print output to out.
func NewWithOutput(program *bytecode.Program, out io.Writer) *VM {
	return &VM{
		program: program,
		stack:   make([]Value, InitialStackSize),
		globals: make(map[string]Value),
		out:     out,
	}
}

// Run executes the program's main section to completion. It returns a
// *RuntimeError for user-level failures; any other error is an internal
// fault in the compiled input.
func (vm *VM) Run() error {
	vm.frames = append(vm.frames[:0], &Frame{fn: nil})

	for len(vm.frames) > 0 {
		frame := vm.frames[len(vm.frames)-1]
		code := vm.code(frame)

		if frame.ip >= len(code) {
			// Fell off the end of the section: only main may do this,
			// function sections always end with RETURN.
			vm.frames = vm.frames[:len(vm.frames)-1]
			continue
		}

		in := code[frame.ip]
		frame.ip++

		if err := vm.exec(frame, in); err != nil {
			return err
		}
	}

	return nil
}

func (vm *VM) code(frame *Frame) []bytecode.Instruction {
	if frame.fn == nil {
		return vm.program.Main
	}
	return frame.fn.Code
}

func (vm *VM) push(v Value) error {
	if vm.sp >= len(vm.stack) {
		if len(vm.stack) >= MaxStackSize {
			return errStackOverflow
		}
		vm.stack = append(vm.stack, make([]Value, len(vm.stack))...)
	}
	vm.stack[vm.sp] = v
	vm.sp++
	return nil
}

func (vm *VM) pop() (Value, error) {
	if vm.sp == 0 {
		return Value{}, errStackUnderflow
	}
	vm.sp--
	return vm.stack[vm.sp], nil
}

func (vm *VM) constant(index int) (Value, error) {
	if index < 0 || index >= len(vm.program.Constants) {
		return Value{}, errInvalidConstantIndex
	}
	switch c := vm.program.Constants[index].(type) {
	case nil:
		return NilVal(), nil
	case int64:
		return IntVal(c), nil
	case float64:
		return FloatVal(c), nil
	case bool:
		return BoolVal(c), nil
	case string:
		return StrVal(c), nil
	default:
		return Value{}, fmt.Errorf("unsupported constant type %T", c)
	}
}

func (vm *VM) name(index int) (string, error) {
	if index < 0 || index >= len(vm.program.Names) {
		return "", errInvalidNameIndex
	}
	return vm.program.Names[index], nil
}

// loadVar reads a variable: the current frame's locals first, then the
// globals of the top-level program.
func (vm *VM) loadVar(frame *Frame, name string) (Value, error) {
	if frame.fn != nil {
		if v, ok := frame.locals[name]; ok {
			return v, nil
		}
	}
	if v, ok := vm.globals[name]; ok {
		return v, nil
	}
	return Value{}, vm.runtimeError("undefined variable %q", name)
}

// storeVar writes a variable: always local inside a function, global at
// the top level. A function never mutates a global.
func (vm *VM) storeVar(frame *Frame, name string, v Value) {
	if frame.fn != nil {
		frame.locals[name] = v
		return
	}
	vm.globals[name] = v
}

func (vm *VM) runtimeError(format string, args ...interface{}) error {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}
