package codegen

import (
	"reflect"
	"testing"

	"github.com/slatelang/slate/internal/bytecode"
	"github.com/slatelang/slate/internal/ir"
	"github.com/slatelang/slate/internal/lexer"
	"github.com/slatelang/slate/internal/parser"
	"github.com/slatelang/slate/internal/semantic"
)

func compile(t *testing.T, input string) *bytecode.Program {
	t.Helper()
	p := parser.New(lexer.New(input))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parser error: %s", p.Errors()[0].Error())
	}
	unit, errs := semantic.New().Generate(program)
	if len(errs) > 0 {
		t.Fatalf("semantic error: %s", errs[0].Error())
	}
	prog, err := Generate(unit)
	if err != nil {
		t.Fatalf("codegen error: %s", err)
	}
	return prog
}

func TestConstantPoolDeduplicates(t *testing.T) {
	prog := compile(t, "x = 10; y = 10; z = 20;")

	want := []interface{}{int64(10), int64(20)}
	if !reflect.DeepEqual(prog.Constants, want) {
		t.Errorf("constant pool = %v, want %v", prog.Constants, want)
	}

	// Both loads of 10 reference the same slot.
	if prog.Main[0].A != prog.Main[2].A {
		t.Errorf("duplicate literal got two slots: %d and %d", prog.Main[0].A, prog.Main[2].A)
	}
}

func TestNameTableDeduplicates(t *testing.T) {
	prog := compile(t, "x = 1; x = x + 1;")

	want := []string{"x"}
	if !reflect.DeepEqual(prog.Names, want) {
		t.Errorf("name table = %v, want %v", prog.Names, want)
	}
}

func TestDistinctValueKindsKeepDistinctSlots(t *testing.T) {
	prog := compile(t, "a = 1; b = 1.0; c = True; d = None;")

	want := []interface{}{int64(1), 1.0, true, nil}
	if !reflect.DeepEqual(prog.Constants, want) {
		t.Errorf("constant pool = %v, want %v", prog.Constants, want)
	}
}

func TestJumpTargetsAreAbsoluteOffsets(t *testing.T) {
	prog := compile(t, "x = 1; if (x) { y = 2; } else { y = 3; }")

	var jif, jmp *bytecode.Instruction
	for i := range prog.Main {
		switch prog.Main[i].Op {
		case bytecode.OP_JUMP_IF_FALSE:
			jif = &prog.Main[i]
		case bytecode.OP_JUMP:
			jmp = &prog.Main[i]
		}
	}
	if jif == nil || jmp == nil {
		t.Fatalf("missing jumps:\n%s", bytecode.Disassemble(prog))
	}

	// The conditional jump lands on the first else instruction, which
	// immediately follows the unconditional jump out of the then branch.
	if prog.Main[jif.A-1].Op != bytecode.OP_JUMP {
		t.Errorf("JUMP_IF_FALSE should target the instruction after JUMP:\n%s", bytecode.Disassemble(prog))
	}
	// The unconditional jump lands one past the last instruction.
	if jmp.A != len(prog.Main) {
		t.Errorf("JUMP target %d, want end of section %d:\n%s", jmp.A, len(prog.Main), bytecode.Disassemble(prog))
	}
}

func TestLabelsOccupyNoSlot(t *testing.T) {
	prog := compile(t, "x = 0; while (x < 3) { x = x + 1; }")

	for _, in := range prog.Main {
		if in.Op.String() == "LABEL" {
			t.Fatal("labels must not survive into bytecode")
		}
	}
}

func TestFunctionsGetOwnSections(t *testing.T) {
	prog := compile(t, "def add(a, b) { return a + b; } r = add(1, 2);")

	if len(prog.Functions) != 1 {
		t.Fatalf("expected 1 function section, got %d", len(prog.Functions))
	}
	fn := prog.Functions[0]
	if fn.Name != "add" || fn.Arity() != 2 {
		t.Errorf("wrong function header: %s/%d", fn.Name, fn.Arity())
	}
	if fn.Code[len(fn.Code)-1].Op != bytecode.OP_RETURN {
		t.Errorf("function section must end with RETURN:\n%s", bytecode.Disassemble(prog))
	}
}

func TestJumpOffsetsAreSectionLocal(t *testing.T) {
	prog := compile(t, `
def f(n) {
	while (n > 0) {
		n = n - 1;
	}
	return n;
}
x = f(3);
`)

	fn := prog.Functions[0]
	for _, in := range fn.Code {
		if in.Op == bytecode.OP_JUMP || in.Op == bytecode.OP_JUMP_IF_FALSE {
			if in.A < 0 || in.A > len(fn.Code) {
				t.Errorf("jump target %d outside its own section (len %d)", in.A, len(fn.Code))
			}
		}
	}
}

func TestDeterministicOutput(t *testing.T) {
	input := "x = 10; def f(a) { return a * 10; } print(f(x), [1, 2], 'hi');"

	first := compile(t, input)
	second := compile(t, input)

	if !reflect.DeepEqual(first, second) {
		t.Error("compiling identical source twice produced different programs")
	}
}

func TestUndeclaredLabelIsConsistencyFault(t *testing.T) {
	unit := &ir.Unit{
		Main: []ir.Instruction{
			{Op: ir.JUMP, Label: "L99"},
		},
	}

	_, err := Generate(unit)
	if err == nil {
		t.Fatal("expected error for jump to undeclared label")
	}
	if _, ok := err.(*ConsistencyFault); !ok {
		t.Errorf("expected *ConsistencyFault, got %T", err)
	}
}
