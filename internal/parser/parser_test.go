package parser

import (
	"testing"

	"github.com/slatelang/slate/internal/ast"
	"github.com/slatelang/slate/internal/lexer"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	p := New(lexer.New(input))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parser error: %s", p.Errors()[0].Error())
	}
	return program
}

func TestAssignStatement(t *testing.T) {
	program := parseProgram(t, "x = 10;")

	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	stmt, ok := program.Statements[0].(*ast.AssignStatement)
	if !ok {
		t.Fatalf("statement is not AssignStatement. got=%T", program.Statements[0])
	}
	if stmt.Name != "x" {
		t.Errorf("wrong name. expected=x, got=%s", stmt.Name)
	}
	lit, ok := stmt.Value.(*ast.Literal)
	if !ok {
		t.Fatalf("value is not Literal. got=%T", stmt.Value)
	}
	if lit.Value.(int64) != 10 {
		t.Errorf("wrong literal value. expected=10, got=%v", lit.Value)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		// Expected top-level operator after parsing.
		topOperator string
	}{
		{"a = 2 + 3 * 4;", "+"},
		{"a = 2 * 3 + 4;", "+"},
		{"a = 1 < 2 == True;", "=="},
		{"a = 1 + 2 < 3 + 4;", "<"},
		{"a = x and y or z;", "or"},
		{"a = not x and y;", "and"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ast.AssignStatement)
		infix, ok := stmt.Value.(*ast.InfixExpression)
		if !ok {
			t.Fatalf("%q: value is not InfixExpression. got=%T", tt.input, stmt.Value)
		}
		if infix.Operator != tt.topOperator {
			t.Errorf("%q: wrong top operator. expected=%q, got=%q", tt.input, tt.topOperator, infix.Operator)
		}
	}
}

func TestGroupedExpression(t *testing.T) {
	program := parseProgram(t, "a = (2 + 3) * 4;")
	stmt := program.Statements[0].(*ast.AssignStatement)
	infix := stmt.Value.(*ast.InfixExpression)
	if infix.Operator != "*" {
		t.Fatalf("expected top operator *, got %q", infix.Operator)
	}
	left, ok := infix.Left.(*ast.InfixExpression)
	if !ok || left.Operator != "+" {
		t.Fatalf("expected grouped + on the left, got %T", infix.Left)
	}
}

func TestNotBindsLooserThanComparison(t *testing.T) {
	program := parseProgram(t, "a = not 1 == 2;")
	stmt := program.Statements[0].(*ast.AssignStatement)
	prefix, ok := stmt.Value.(*ast.PrefixExpression)
	if !ok {
		t.Fatalf("value is not PrefixExpression. got=%T", stmt.Value)
	}
	if _, ok := prefix.Operand.(*ast.InfixExpression); !ok {
		t.Fatalf("not-operand is not comparison. got=%T", prefix.Operand)
	}
}

func TestIfElseStatement(t *testing.T) {
	program := parseProgram(t, "if (1 > 2) { print(1); } else { print(2); }")

	stmt, ok := program.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("statement is not IfStatement. got=%T", program.Statements[0])
	}
	if len(stmt.Consequence.Statements) != 1 {
		t.Errorf("wrong consequence size: %d", len(stmt.Consequence.Statements))
	}
	if stmt.Alternative == nil || len(stmt.Alternative.Statements) != 1 {
		t.Errorf("missing or wrong alternative")
	}
}

func TestWhileStatement(t *testing.T) {
	program := parseProgram(t, "while (i < 3) { i = i + 1; }")

	stmt, ok := program.Statements[0].(*ast.WhileStatement)
	if !ok {
		t.Fatalf("statement is not WhileStatement. got=%T", program.Statements[0])
	}
	if _, ok := stmt.Condition.(*ast.InfixExpression); !ok {
		t.Errorf("condition is not InfixExpression. got=%T", stmt.Condition)
	}
	if len(stmt.Body.Statements) != 1 {
		t.Errorf("wrong body size: %d", len(stmt.Body.Statements))
	}
}

func TestForStatement(t *testing.T) {
	program := parseProgram(t, "for (item in [1, 2]) { print(item); }")

	stmt, ok := program.Statements[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("statement is not ForStatement. got=%T", program.Statements[0])
	}
	if stmt.VarName != "item" {
		t.Errorf("wrong loop variable: %s", stmt.VarName)
	}
	list, ok := stmt.Iterable.(*ast.ListLiteral)
	if !ok {
		t.Fatalf("iterable is not ListLiteral. got=%T", stmt.Iterable)
	}
	if len(list.Items) != 2 {
		t.Errorf("wrong list size: %d", len(list.Items))
	}
}

func TestFunctionStatement(t *testing.T) {
	program := parseProgram(t, "def add(a, b) { return a + b; }")

	stmt, ok := program.Statements[0].(*ast.FunctionStatement)
	if !ok {
		t.Fatalf("statement is not FunctionStatement. got=%T", program.Statements[0])
	}
	if stmt.Name != "add" {
		t.Errorf("wrong name: %s", stmt.Name)
	}
	if len(stmt.Params) != 2 || stmt.Params[0] != "a" || stmt.Params[1] != "b" {
		t.Errorf("wrong params: %v", stmt.Params)
	}
	ret, ok := stmt.Body.Statements[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("body statement is not ReturnStatement. got=%T", stmt.Body.Statements[0])
	}
	if ret.Value == nil {
		t.Errorf("return has no value")
	}
}

func TestBareReturnAndPass(t *testing.T) {
	program := parseProgram(t, "def f() { pass; return; }")

	stmt := program.Statements[0].(*ast.FunctionStatement)
	if _, ok := stmt.Body.Statements[0].(*ast.PassStatement); !ok {
		t.Fatalf("expected PassStatement, got %T", stmt.Body.Statements[0])
	}
	ret, ok := stmt.Body.Statements[1].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("expected ReturnStatement, got %T", stmt.Body.Statements[1])
	}
	if ret.Value != nil {
		t.Errorf("bare return should have nil value")
	}
}

func TestPrintStatement(t *testing.T) {
	program := parseProgram(t, `print(x, "hi", 1 + 2);`)

	stmt, ok := program.Statements[0].(*ast.PrintStatement)
	if !ok {
		t.Fatalf("statement is not PrintStatement. got=%T", program.Statements[0])
	}
	if len(stmt.Args) != 3 {
		t.Fatalf("wrong arg count: %d", len(stmt.Args))
	}
}

func TestCallExpression(t *testing.T) {
	program := parseProgram(t, "x = add(2, 3);")

	stmt := program.Statements[0].(*ast.AssignStatement)
	call, ok := stmt.Value.(*ast.CallExpression)
	if !ok {
		t.Fatalf("value is not CallExpression. got=%T", stmt.Value)
	}
	if call.FuncName != "add" {
		t.Errorf("wrong callee: %s", call.FuncName)
	}
	if len(call.Args) != 2 {
		t.Errorf("wrong arg count: %d", len(call.Args))
	}
}

func TestLiteralKinds(t *testing.T) {
	program := parseProgram(t, `x = [1, 2.5, "s", True, False, None];`)

	stmt := program.Statements[0].(*ast.AssignStatement)
	list := stmt.Value.(*ast.ListLiteral)
	expected := []interface{}{int64(1), 2.5, "s", true, false, nil}
	if len(list.Items) != len(expected) {
		t.Fatalf("wrong item count: %d", len(list.Items))
	}
	for i, want := range expected {
		lit, ok := list.Items[i].(*ast.Literal)
		if !ok {
			t.Fatalf("item %d is not Literal. got=%T", i, list.Items[i])
		}
		if lit.Value != want {
			t.Errorf("item %d: expected %v, got %v", i, want, lit.Value)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing semicolon", "x = 1"},
		{"missing paren", "if x > 1 { pass; }"},
		{"missing brace", "while (1) pass;"},
		{"bad for header", "for (1 in xs) { pass; }"},
		{"dangling operator", "x = 1 +;"},
		{"illegal character", "x = 1 ?;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(lexer.New(tt.input))
			p.ParseProgram()
			if len(p.Errors()) == 0 {
				t.Errorf("expected parse errors for %q, got none", tt.input)
			}
			for _, err := range p.Errors() {
				if err.Line == 0 {
					t.Errorf("diagnostic without position: %s", err.Error())
				}
			}
		})
	}
}
