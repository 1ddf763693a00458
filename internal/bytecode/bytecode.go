// Package bytecode defines the compiled program artifact executed by the
// virtual machine: a constant pool, a name table and instruction streams
// with all labels resolved to absolute instruction offsets.
package bytecode

import "fmt"

// Opcode is a single VM instruction tag.
type Opcode byte

const (
	OP_LOAD_CONST Opcode = iota // A = constant pool index
	OP_LOAD                     // A = name table index
	OP_STORE                    // A = name table index
	OP_POP
	OP_NOP

	OP_ADD
	OP_SUB
	OP_MUL
	OP_DIV
	OP_MOD

	OP_NEGATE
	OP_POS
	OP_NOT

	OP_EQ
	OP_NEQ
	OP_LT
	OP_GT
	OP_LE
	OP_GE
	OP_AND
	OP_OR

	OP_JUMP          // A = absolute instruction offset
	OP_JUMP_IF_FALSE // A = absolute instruction offset

	OP_PRINT
	OP_BUILD_LIST // A = item count
	OP_LEN
	OP_INDEX

	OP_DEF_FUNCTION  // A = name table index
	OP_CALL_FUNCTION // A = name table index, B = arg count
	OP_RETURN
)

var opcodeNames = map[Opcode]string{
	OP_LOAD_CONST:    "LOAD_CONST",
	OP_LOAD:          "LOAD",
	OP_STORE:         "STORE",
	OP_POP:           "POP",
	OP_NOP:           "NOP",
	OP_ADD:           "ADD",
	OP_SUB:           "SUB",
	OP_MUL:           "MUL",
	OP_DIV:           "DIV",
	OP_MOD:           "MOD",
	OP_NEGATE:        "NEGATE",
	OP_POS:           "POS",
	OP_NOT:           "NOT",
	OP_EQ:            "EQ",
	OP_NEQ:           "NEQ",
	OP_LT:            "LT",
	OP_GT:            "GT",
	OP_LE:            "LE",
	OP_GE:            "GE",
	OP_AND:           "AND",
	OP_OR:            "OR",
	OP_JUMP:          "JUMP",
	OP_JUMP_IF_FALSE: "JUMP_IF_FALSE",
	OP_PRINT:         "PRINT",
	OP_BUILD_LIST:    "BUILD_LIST",
	OP_LEN:           "LEN",
	OP_INDEX:         "INDEX",
	OP_DEF_FUNCTION:  "DEF_FUNCTION",
	OP_CALL_FUNCTION: "CALL_FUNCTION",
	OP_RETURN:        "RETURN",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", byte(op))
}

// Instruction is one fixed-width instruction. A and B hold the operands
// documented per opcode; unused operands are zero.
type Instruction struct {
	Op Opcode
	A  int
	B  int
}

// Function is one compiled function body.
type Function struct {
	Name   string
	Params []string
	Code   []Instruction
}

// Arity returns the declared parameter count.
func (f *Function) Arity() int {
	return len(f.Params)
}

// Program is the compiled artifact. It is immutable once produced:
// constant-pool and name-table indices never change or get reused, and
// jump operands are absolute offsets into their own code section.
type Program struct {
	// Constants holds deduplicated literal values (int64, float64,
	// string, bool, nil), index-addressed from 0.
	Constants []interface{}

	// Names holds deduplicated identifier strings, index-addressed from 0.
	Names []string

	// Main is the top-level instruction stream.
	Main []Instruction

	// Functions are compiled function bodies in definition order.
	Functions []*Function
}

// FunctionByName returns the named compiled function, or nil. Sections
// are searched newest-first so a redefinition shadows earlier bodies.
func (p *Program) FunctionByName(name string) *Function {
	for i := len(p.Functions) - 1; i >= 0; i-- {
		if p.Functions[i].Name == name {
			return p.Functions[i]
		}
	}
	return nil
}
