package bytecode

import (
	"fmt"
	"strings"

	"github.com/slatelang/slate/internal/prettyprinter"
)

// Disassemble returns a human-readable representation of the program.
func Disassemble(p *Program) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Constants: %d  Names: %d  Functions: %d\n",
		len(p.Constants), len(p.Names), len(p.Functions)))

	disassembleSection(&sb, p, "main", p.Main)
	for _, fn := range p.Functions {
		name := fmt.Sprintf("%s(%s)", fn.Name, strings.Join(fn.Params, ", "))
		disassembleSection(&sb, p, name, fn.Code)
	}

	return sb.String()
}

func disassembleSection(sb *strings.Builder, p *Program, name string, code []Instruction) {
	sb.WriteString(fmt.Sprintf("== %s ==\n", name))
	for offset, in := range code {
		sb.WriteString(fmt.Sprintf("%04d %-16s", offset, in.Op.String()))
		sb.WriteString(operandInfo(p, in))
		sb.WriteByte('\n')
	}
}

func operandInfo(p *Program, in Instruction) string {
	switch in.Op {
	case OP_LOAD_CONST:
		if in.A < len(p.Constants) {
			return fmt.Sprintf("%d (= %s)", in.A, prettyprinter.Repr(p.Constants[in.A]))
		}
		return fmt.Sprintf("%d", in.A)
	case OP_LOAD, OP_STORE, OP_DEF_FUNCTION:
		if in.A < len(p.Names) {
			return fmt.Sprintf("%d (= %s)", in.A, p.Names[in.A])
		}
		return fmt.Sprintf("%d", in.A)
	case OP_CALL_FUNCTION:
		if in.A < len(p.Names) {
			return fmt.Sprintf("%d (= %s), argc=%d", in.A, p.Names[in.A], in.B)
		}
		return fmt.Sprintf("%d, argc=%d", in.A, in.B)
	case OP_JUMP, OP_JUMP_IF_FALSE:
		return fmt.Sprintf("-> %d", in.A)
	case OP_BUILD_LIST:
		return fmt.Sprintf("%d", in.A)
	default:
		return ""
	}
}
