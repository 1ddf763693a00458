package vm

import (
	"fmt"

	"github.com/slatelang/slate/internal/bytecode"
)

// exec runs a single instruction against the current frame.
func (vm *VM) exec(frame *Frame, in bytecode.Instruction) error {
	switch in.Op {
	case bytecode.OP_LOAD_CONST:
		v, err := vm.constant(in.A)
		if err != nil {
			return err
		}
		return vm.push(v)

	case bytecode.OP_LOAD:
		name, err := vm.name(in.A)
		if err != nil {
			return err
		}
		v, err := vm.loadVar(frame, name)
		if err != nil {
			return err
		}
		return vm.push(v)

	case bytecode.OP_STORE:
		name, err := vm.name(in.A)
		if err != nil {
			return err
		}
		v, err := vm.pop()
		if err != nil {
			return err
		}
		vm.storeVar(frame, name, v)
		return nil

	case bytecode.OP_POP:
		_, err := vm.pop()
		return err

	case bytecode.OP_NOP:
		return nil

	case bytecode.OP_ADD, bytecode.OP_SUB, bytecode.OP_MUL, bytecode.OP_DIV, bytecode.OP_MOD:
		return vm.binaryOp(in.Op)

	case bytecode.OP_NEGATE, bytecode.OP_POS, bytecode.OP_NOT:
		return vm.unaryOp(in.Op)

	case bytecode.OP_EQ, bytecode.OP_NEQ, bytecode.OP_LT, bytecode.OP_GT, bytecode.OP_LE, bytecode.OP_GE:
		return vm.comparisonOp(in.Op)

	case bytecode.OP_AND, bytecode.OP_OR:
		return vm.logicalOp(in.Op)

	case bytecode.OP_JUMP:
		frame.ip = in.A
		return nil

	case bytecode.OP_JUMP_IF_FALSE:
		v, err := vm.pop()
		if err != nil {
			return err
		}
		if !v.Truthy() {
			frame.ip = in.A
		}
		return nil

	case bytecode.OP_PRINT:
		v, err := vm.pop()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(vm.out, v.Display())
		return err

	case bytecode.OP_BUILD_LIST:
		return vm.buildList(in.A)

	case bytecode.OP_LEN:
		return vm.lengthOp()

	case bytecode.OP_INDEX:
		return vm.indexOp()

	case bytecode.OP_DEF_FUNCTION:
		name, err := vm.name(in.A)
		if err != nil {
			return err
		}
		fn := vm.program.FunctionByName(name)
		if fn == nil {
			return fmt.Errorf("no compiled body for function %q", name)
		}
		vm.storeVar(frame, name, FuncVal(fn))
		return nil

	case bytecode.OP_CALL_FUNCTION:
		name, err := vm.name(in.A)
		if err != nil {
			return err
		}
		return vm.callFunction(frame, name, in.B)

	case bytecode.OP_RETURN:
		// The return value stays on the shared operand stack for the
		// caller to consume.
		vm.frames = vm.frames[:len(vm.frames)-1]
		return nil

	default:
		return fmt.Errorf("unknown opcode %s", in.Op)
	}
}

// callFunction resolves name through the normal variable rules, checks
// that it is callable with argc arguments, binds parameters from the
// stack and pushes a new frame.
func (vm *VM) callFunction(frame *Frame, name string, argc int) error {
	callee, err := vm.loadVar(frame, name)
	if err != nil {
		return err
	}

	fn, ok := callee.AsFunction()
	if !ok {
		return vm.runtimeError("%q is not callable (type %s)", name, callee.TypeName())
	}
	if fn.Fn.Arity() != argc {
		return vm.runtimeError("%s() takes %d arguments, got %d", name, fn.Fn.Arity(), argc)
	}
	if len(vm.frames) >= MaxFrameCount {
		return vm.runtimeError("call depth limit exceeded")
	}

	locals := make(map[string]Value, argc)
	for i := argc - 1; i >= 0; i-- {
		arg, err := vm.pop()
		if err != nil {
			return err
		}
		locals[fn.Fn.Params[i]] = arg
	}

	vm.frames = append(vm.frames, &Frame{fn: fn.Fn, locals: locals})
	return nil
}
