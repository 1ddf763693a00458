// Package prettyprinter renders an AST as an ASCII tree for the --ast
// diagnostic stage.
package prettyprinter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/slatelang/slate/internal/ast"
)

// Tree returns the ASCII tree representation of the program.
func Tree(program *ast.Program) string {
	var lines []string
	lines = append(lines, "Program")
	children := make([]ast.Node, 0, len(program.Statements))
	for _, stmt := range program.Statements {
		children = append(children, stmt)
	}
	buildChildren(&lines, children, "")
	return strings.Join(lines, "\n")
}

func buildTree(lines *[]string, node ast.Node, prefix string, isLast bool) {
	connector := "|-- "
	childPrefix := prefix + "|   "
	if isLast {
		connector = "`-- "
		childPrefix = prefix + "    "
	}
	*lines = append(*lines, prefix+connector+label(node))
	buildChildren(lines, children(node), childPrefix)
}

func buildChildren(lines *[]string, nodes []ast.Node, prefix string) {
	for i, child := range nodes {
		buildTree(lines, child, prefix, i == len(nodes)-1)
	}
}

func label(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Block:
		return "Block"
	case *ast.ExpressionStatement:
		return "ExprStmt"
	case *ast.AssignStatement:
		return "Assign " + n.Name
	case *ast.IfStatement:
		return "If"
	case *ast.WhileStatement:
		return "While"
	case *ast.ForStatement:
		return "For " + n.VarName
	case *ast.FunctionStatement:
		return fmt.Sprintf("FuncDef %s(%s)", n.Name, strings.Join(n.Params, ", "))
	case *ast.ReturnStatement:
		return "Return"
	case *ast.PassStatement:
		return "Pass"
	case *ast.PrintStatement:
		return "Print"
	case *ast.Identifier:
		return "Var " + n.Name
	case *ast.Literal:
		return "Literal " + Repr(n.Value)
	case *ast.ListLiteral:
		return "ListLiteral"
	case *ast.InfixExpression:
		return fmt.Sprintf("Binary '%s'", n.Operator)
	case *ast.PrefixExpression:
		return fmt.Sprintf("Unary '%s'", n.Operator)
	case *ast.CallExpression:
		return "Call " + n.FuncName
	default:
		return fmt.Sprintf("%T", node)
	}
}

func children(node ast.Node) []ast.Node {
	switch n := node.(type) {
	case *ast.Block:
		return statements(n.Statements)
	case *ast.ExpressionStatement:
		return []ast.Node{n.Expression}
	case *ast.AssignStatement:
		return []ast.Node{n.Value}
	case *ast.IfStatement:
		out := []ast.Node{n.Condition, n.Consequence}
		if n.Alternative != nil {
			out = append(out, n.Alternative)
		}
		return out
	case *ast.WhileStatement:
		return []ast.Node{n.Condition, n.Body}
	case *ast.ForStatement:
		return []ast.Node{n.Iterable, n.Body}
	case *ast.FunctionStatement:
		return []ast.Node{n.Body}
	case *ast.ReturnStatement:
		if n.Value != nil {
			return []ast.Node{n.Value}
		}
		return nil
	case *ast.PrintStatement:
		return expressions(n.Args)
	case *ast.ListLiteral:
		return expressions(n.Items)
	case *ast.InfixExpression:
		return []ast.Node{n.Left, n.Right}
	case *ast.PrefixExpression:
		return []ast.Node{n.Operand}
	case *ast.CallExpression:
		return expressions(n.Args)
	default:
		return nil
	}
}

func statements(stmts []ast.Statement) []ast.Node {
	out := make([]ast.Node, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, s)
	}
	return out
}

func expressions(exprs []ast.Expression) []ast.Node {
	out := make([]ast.Node, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, e)
	}
	return out
}

// Repr formats a literal value the way source code would spell it:
// quoted strings, True/False, None.
func Repr(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "None"
	case bool:
		if v {
			return "True"
		}
		return "False"
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return "'" + strings.ReplaceAll(v, "'", "\\'") + "'"
	default:
		return fmt.Sprintf("%v", v)
	}
}
