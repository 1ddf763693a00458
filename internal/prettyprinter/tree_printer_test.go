package prettyprinter

import (
	"testing"

	"github.com/slatelang/slate/internal/lexer"
	"github.com/slatelang/slate/internal/parser"
)

func tree(t *testing.T, input string) string {
	t.Helper()
	p := parser.New(lexer.New(input))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parser error: %s", p.Errors()[0].Error())
	}
	return Tree(program)
}

func TestTreeShape(t *testing.T) {
	got := tree(t, "x = 1 + 2;\nif (x) { print(x); }")

	want := `Program
|-- Assign x
|   ` + "`" + `-- Binary '+'
|       |-- Literal 1
|       ` + "`" + `-- Literal 2
` + "`" + `-- If
    |-- Var x
    ` + "`" + `-- Block
        ` + "`" + `-- Print
            ` + "`" + `-- Var x`

	if got != want {
		t.Errorf("wrong tree:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTreeFunctionAndCall(t *testing.T) {
	got := tree(t, "def add(a, b) { return a + b; }\nprint(add(1, 2));")

	want := `Program
|-- FuncDef add(a, b)
|   ` + "`" + `-- Block
|       ` + "`" + `-- Return
|           ` + "`" + `-- Binary '+'
|               |-- Var a
|               ` + "`" + `-- Var b
` + "`" + `-- Print
    ` + "`" + `-- Call add
        |-- Literal 1
        ` + "`" + `-- Literal 2`

	if got != want {
		t.Errorf("wrong tree:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRepr(t *testing.T) {
	tests := []struct {
		value interface{}
		want  string
	}{
		{nil, "None"},
		{true, "True"},
		{false, "False"},
		{int64(42), "42"},
		{2.5, "2.5"},
		{3.0, "3"},
		{"hi", "'hi'"},
		{"it's", `'it\'s'`},
	}
	for _, tt := range tests {
		if got := Repr(tt.value); got != tt.want {
			t.Errorf("Repr(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
