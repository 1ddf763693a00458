// Package ir defines the intermediate representation emitted by semantic
// analysis and consumed by the code generator. IR instructions still
// reference symbolic labels, literal values and variable names; the code
// generator resolves all three.
package ir

import (
	"fmt"
	"strings"

	"github.com/slatelang/slate/internal/prettyprinter"
)

// Op is an IR operation tag.
type Op int

const (
	LOAD_CONST Op = iota // push literal (Value operand)
	LOAD                 // push variable (Name operand)
	STORE                // pop into variable (Name operand)
	POP                  // discard top of stack
	NOP                  // no effect

	ADD
	SUB
	MUL
	DIV
	MOD

	NEGATE
	POS
	NOT

	EQ
	NEQ
	LT
	GT
	LE
	GE
	AND
	OR

	JUMP          // unconditional branch (Label operand)
	JUMP_IF_FALSE // pop condition, branch when falsy (Label operand)
	LABEL         // pseudo-op: declares Label at this position

	PRINT      // pop one value, emit its text plus newline
	BUILD_LIST // pop N values, push list (N operand)
	LEN        // pop iterable, push its length
	INDEX      // pop index then iterable, push element

	DEF_FUNCTION  // bind function object (Name operand)
	CALL_FUNCTION // call named function with N args (Name, N operands)
	RETURN_VALUE  // pop return value, leave current function
)

var opNames = map[Op]string{
	LOAD_CONST:    "LOAD_CONST",
	LOAD:          "LOAD",
	STORE:         "STORE",
	POP:           "POP",
	NOP:           "NOP",
	ADD:           "ADD",
	SUB:           "SUB",
	MUL:           "MUL",
	DIV:           "DIV",
	MOD:           "MOD",
	NEGATE:        "NEGATE",
	POS:           "POS",
	NOT:           "NOT",
	EQ:            "EQ",
	NEQ:           "NEQ",
	LT:            "LT",
	GT:            "GT",
	LE:            "LE",
	GE:            "GE",
	AND:           "AND",
	OR:            "OR",
	JUMP:          "JUMP",
	JUMP_IF_FALSE: "JUMP_IF_FALSE",
	LABEL:         "LABEL",
	PRINT:         "PRINT",
	BUILD_LIST:    "BUILD_LIST",
	LEN:           "LEN",
	INDEX:         "INDEX",
	DEF_FUNCTION:  "DEF_FUNCTION",
	CALL_FUNCTION: "CALL_FUNCTION",
	RETURN_VALUE:  "RETURN_VALUE",
}

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("OP(%d)", int(op))
}

// Label is a symbolic jump target. Exactly one LABEL instruction declares
// its position before code generation runs.
type Label string

// Instruction is one IR operation with its symbolic operands. Which
// fields are meaningful depends on Op.
type Instruction struct {
	Op    Op
	Value interface{} // LOAD_CONST: literal (int64, float64, string, bool, nil)
	Name  string      // LOAD, STORE, DEF_FUNCTION, CALL_FUNCTION
	Label Label       // JUMP, JUMP_IF_FALSE, LABEL
	N     int         // CALL_FUNCTION arg count, BUILD_LIST item count
}

func (in Instruction) String() string {
	switch in.Op {
	case LOAD_CONST:
		return fmt.Sprintf("%s %s", in.Op, prettyprinter.Repr(in.Value))
	case LOAD, STORE, DEF_FUNCTION:
		return fmt.Sprintf("%s %s", in.Op, in.Name)
	case CALL_FUNCTION:
		return fmt.Sprintf("%s %s %d", in.Op, in.Name, in.N)
	case JUMP, JUMP_IF_FALSE, LABEL:
		return fmt.Sprintf("%s %s", in.Op, in.Label)
	case BUILD_LIST:
		return fmt.Sprintf("%s %d", in.Op, in.N)
	default:
		return in.Op.String()
	}
}

// Function is the IR of one function body, in definition order.
type Function struct {
	Name   string
	Params []string
	Code   []Instruction
}

// Unit is one compilation unit's IR: top-level code plus functions in
// definition order. Order matters everywhere; code generation depends on
// it for deterministic output.
type Unit struct {
	Main      []Instruction
	Functions []*Function
}

// String renders the unit for the --ir diagnostic stage.
func (u *Unit) String() string {
	var sb strings.Builder
	sb.WriteString("=== IR ===\n")
	for _, in := range u.Main {
		sb.WriteString(in.String())
		sb.WriteByte('\n')
	}
	for _, fn := range u.Functions {
		fmt.Fprintf(&sb, "\nFunc %s(%s):\n", fn.Name, strings.Join(fn.Params, ", "))
		for _, in := range fn.Code {
			sb.WriteString("  " + in.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
