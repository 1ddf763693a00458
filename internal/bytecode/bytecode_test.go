package bytecode

import (
	"strings"
	"testing"
)

func sampleProgram() *Program {
	return &Program{
		Constants: []interface{}{int64(10), "hi"},
		Names:     []string{"x", "add"},
		Main: []Instruction{
			{Op: OP_LOAD_CONST, A: 0},
			{Op: OP_STORE, A: 0},
			{Op: OP_LOAD, A: 0},
			{Op: OP_JUMP_IF_FALSE, A: 5},
			{Op: OP_CALL_FUNCTION, A: 1, B: 2},
		},
		Functions: []*Function{
			{Name: "add", Params: []string{"a", "b"}, Code: []Instruction{
				{Op: OP_ADD},
				{Op: OP_RETURN},
			}},
		},
	}
}

func TestDisassembleSections(t *testing.T) {
	out := Disassemble(sampleProgram())

	for _, want := range []string{
		"Constants: 2  Names: 2  Functions: 1",
		"== main ==",
		"== add(a, b) ==",
		"0000 LOAD_CONST",
		"(= 10)",
		"(= x)",
		"JUMP_IF_FALSE    -> 5",
		"(= add), argc=2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("disassembly missing %q:\n%s", want, out)
		}
	}
}

func TestOpcodeString(t *testing.T) {
	if OP_LOAD_CONST.String() != "LOAD_CONST" {
		t.Errorf("got %q", OP_LOAD_CONST.String())
	}
	if !strings.HasPrefix(Opcode(200).String(), "UNKNOWN") {
		t.Errorf("got %q", Opcode(200).String())
	}
}

func TestFunctionByName(t *testing.T) {
	p := sampleProgram()
	if fn := p.FunctionByName("add"); fn == nil || fn.Arity() != 2 {
		t.Errorf("lookup failed: %+v", fn)
	}
	if p.FunctionByName("missing") != nil {
		t.Error("expected nil for unknown function")
	}
}

func TestFunctionByNamePrefersLatestSection(t *testing.T) {
	p := &Program{
		Functions: []*Function{
			{Name: "f", Code: []Instruction{{Op: OP_LOAD_CONST, A: 0}, {Op: OP_RETURN}}},
			{Name: "f", Code: []Instruction{{Op: OP_LOAD_CONST, A: 1}, {Op: OP_RETURN}}},
		},
	}
	fn := p.FunctionByName("f")
	if fn == nil || fn.Code[0].A != 1 {
		t.Errorf("redefinition must shadow the earlier body, got %+v", fn)
	}
}
