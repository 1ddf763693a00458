// Package codegen lowers IR to bytecode in two passes. Pass 1 computes
// an immutable layout: absolute offsets for declared labels plus the
// constant pool and name table. Pass 2 consumes that layout read-only
// and emits the final instruction streams.
package codegen

import (
	"fmt"

	"github.com/slatelang/slate/internal/bytecode"
	"github.com/slatelang/slate/internal/ir"
)

// ConsistencyFault reports malformed IR: a label that is referenced but
// never declared, or an operation codegen does not know. It signals a
// defect in the IR generator, never in user code.
type ConsistencyFault struct {
	Detail string
}

func (f *ConsistencyFault) Error() string {
	return "internal consistency fault: " + f.Detail
}

var irToOpcode = map[ir.Op]bytecode.Opcode{
	ir.POP:          bytecode.OP_POP,
	ir.NOP:          bytecode.OP_NOP,
	ir.ADD:          bytecode.OP_ADD,
	ir.SUB:          bytecode.OP_SUB,
	ir.MUL:          bytecode.OP_MUL,
	ir.DIV:          bytecode.OP_DIV,
	ir.MOD:          bytecode.OP_MOD,
	ir.NEGATE:       bytecode.OP_NEGATE,
	ir.POS:          bytecode.OP_POS,
	ir.NOT:          bytecode.OP_NOT,
	ir.EQ:           bytecode.OP_EQ,
	ir.NEQ:          bytecode.OP_NEQ,
	ir.LT:           bytecode.OP_LT,
	ir.GT:           bytecode.OP_GT,
	ir.LE:           bytecode.OP_LE,
	ir.GE:           bytecode.OP_GE,
	ir.AND:          bytecode.OP_AND,
	ir.OR:           bytecode.OP_OR,
	ir.PRINT:        bytecode.OP_PRINT,
	ir.LEN:          bytecode.OP_LEN,
	ir.INDEX:        bytecode.OP_INDEX,
	ir.RETURN_VALUE: bytecode.OP_RETURN,
}

// layout is the immutable result of pass 1.
type layout struct {
	constants     []interface{}
	constantIndex map[interface{}]int
	names         []string
	nameIndex     map[string]int
	// labels maps each code section (by index: 0 = main, i+1 = function i)
	// to its label offsets.
	labels []map[ir.Label]int
}

// Generate lowers unit to a bytecode program. The only error it can
// return is a ConsistencyFault.
func Generate(unit *ir.Unit) (*bytecode.Program, error) {
	lay := computeLayout(unit)

	program := &bytecode.Program{
		Constants: lay.constants,
		Names:     lay.names,
	}

	main, err := emitSection(unit.Main, lay, lay.labels[0])
	if err != nil {
		return nil, err
	}
	program.Main = main

	for i, fn := range unit.Functions {
		code, err := emitSection(fn.Code, lay, lay.labels[i+1])
		if err != nil {
			return nil, err
		}
		program.Functions = append(program.Functions, &bytecode.Function{
			Name:   fn.Name,
			Params: fn.Params,
			Code:   code,
		})
	}

	return program, nil
}

// computeLayout is pass 1: assign every non-label instruction its final
// offset, bind declared labels to those offsets, and build the pools.
// Identical literals and names share one index (append-if-new).
func computeLayout(unit *ir.Unit) *layout {
	lay := &layout{
		constantIndex: make(map[interface{}]int),
		nameIndex:     make(map[string]int),
	}

	sections := make([][]ir.Instruction, 0, len(unit.Functions)+1)
	sections = append(sections, unit.Main)
	for _, fn := range unit.Functions {
		sections = append(sections, fn.Code)
	}

	for _, code := range sections {
		labels := make(map[ir.Label]int)
		offset := 0
		for _, in := range code {
			if in.Op == ir.LABEL {
				labels[in.Label] = offset
				continue
			}
			offset++
			lay.internOperands(in)
		}
		lay.labels = append(lay.labels, labels)
	}

	return lay
}

func (lay *layout) internOperands(in ir.Instruction) {
	switch in.Op {
	case ir.LOAD_CONST:
		lay.internConstant(in.Value)
	case ir.LOAD, ir.STORE, ir.DEF_FUNCTION, ir.CALL_FUNCTION:
		lay.internName(in.Name)
	}
}

func (lay *layout) internConstant(value interface{}) int {
	if idx, ok := lay.constantIndex[value]; ok {
		return idx
	}
	idx := len(lay.constants)
	lay.constants = append(lay.constants, value)
	lay.constantIndex[value] = idx
	return idx
}

func (lay *layout) internName(name string) int {
	if idx, ok := lay.nameIndex[name]; ok {
		return idx
	}
	idx := len(lay.names)
	lay.names = append(lay.names, name)
	lay.nameIndex[name] = idx
	return idx
}

// emitSection is pass 2 for one code section: replace label references
// with the absolute offsets pass 1 recorded, and literal/name references
// with their pool/table indices.
func emitSection(code []ir.Instruction, lay *layout, labels map[ir.Label]int) ([]bytecode.Instruction, error) {
	out := make([]bytecode.Instruction, 0, len(code))

	for _, in := range code {
		switch in.Op {
		case ir.LABEL:
			// Pseudo-op, resolved in pass 1.
		case ir.LOAD_CONST:
			out = append(out, bytecode.Instruction{Op: bytecode.OP_LOAD_CONST, A: lay.constantIndex[in.Value]})
		case ir.LOAD:
			out = append(out, bytecode.Instruction{Op: bytecode.OP_LOAD, A: lay.nameIndex[in.Name]})
		case ir.STORE:
			out = append(out, bytecode.Instruction{Op: bytecode.OP_STORE, A: lay.nameIndex[in.Name]})
		case ir.DEF_FUNCTION:
			out = append(out, bytecode.Instruction{Op: bytecode.OP_DEF_FUNCTION, A: lay.nameIndex[in.Name]})
		case ir.CALL_FUNCTION:
			out = append(out, bytecode.Instruction{Op: bytecode.OP_CALL_FUNCTION, A: lay.nameIndex[in.Name], B: in.N})
		case ir.BUILD_LIST:
			out = append(out, bytecode.Instruction{Op: bytecode.OP_BUILD_LIST, A: in.N})
		case ir.JUMP, ir.JUMP_IF_FALSE:
			target, ok := labels[in.Label]
			if !ok {
				return nil, &ConsistencyFault{Detail: fmt.Sprintf("label %s referenced but never declared", in.Label)}
			}
			op := bytecode.OP_JUMP
			if in.Op == ir.JUMP_IF_FALSE {
				op = bytecode.OP_JUMP_IF_FALSE
			}
			out = append(out, bytecode.Instruction{Op: op, A: target})
		default:
			op, ok := irToOpcode[in.Op]
			if !ok {
				return nil, &ConsistencyFault{Detail: fmt.Sprintf("no encoding for IR operation %s", in.Op)}
			}
			out = append(out, bytecode.Instruction{Op: op})
		}
	}

	return out, nil
}
