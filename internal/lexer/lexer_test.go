package lexer

import (
	"testing"

	"github.com/slatelang/slate/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `x = 10;
y = 2.5;
s = "hi\n";
if (x >= 10) { print(x, y); } else { pass; }
def add(a, b) { return a + b; }
# a comment
items = [1, 2, 3];
while (x != 0 and not False) { x = x - 1; }
for (i in items) { print(i); }
`

	tests := []struct {
		expectedType   token.TokenType
		expectedLexeme string
	}{
		{token.IDENT, "x"}, {token.ASSIGN, "="}, {token.INT, "10"}, {token.SEMICOLON, ";"},
		{token.IDENT, "y"}, {token.ASSIGN, "="}, {token.FLOAT, "2.5"}, {token.SEMICOLON, ";"},
		{token.IDENT, "s"}, {token.ASSIGN, "="}, {token.STRING, "hi\n"}, {token.SEMICOLON, ";"},
		{token.IF, "if"}, {token.LPAREN, "("}, {token.IDENT, "x"}, {token.GE, ">="},
		{token.INT, "10"}, {token.RPAREN, ")"}, {token.LBRACE, "{"},
		{token.PRINT, "print"}, {token.LPAREN, "("}, {token.IDENT, "x"}, {token.COMMA, ","},
		{token.IDENT, "y"}, {token.RPAREN, ")"}, {token.SEMICOLON, ";"}, {token.RBRACE, "}"},
		{token.ELSE, "else"}, {token.LBRACE, "{"}, {token.PASS, "pass"}, {token.SEMICOLON, ";"}, {token.RBRACE, "}"},
		{token.DEF, "def"}, {token.IDENT, "add"}, {token.LPAREN, "("}, {token.IDENT, "a"},
		{token.COMMA, ","}, {token.IDENT, "b"}, {token.RPAREN, ")"}, {token.LBRACE, "{"},
		{token.RETURN, "return"}, {token.IDENT, "a"}, {token.PLUS, "+"}, {token.IDENT, "b"},
		{token.SEMICOLON, ";"}, {token.RBRACE, "}"},
		{token.IDENT, "items"}, {token.ASSIGN, "="}, {token.LBRACKET, "["}, {token.INT, "1"},
		{token.COMMA, ","}, {token.INT, "2"}, {token.COMMA, ","}, {token.INT, "3"},
		{token.RBRACKET, "]"}, {token.SEMICOLON, ";"},
		{token.WHILE, "while"}, {token.LPAREN, "("}, {token.IDENT, "x"}, {token.NOT_EQ, "!="},
		{token.INT, "0"}, {token.AND, "and"}, {token.NOT, "not"}, {token.FALSE, "False"},
		{token.RPAREN, ")"}, {token.LBRACE, "{"},
		{token.IDENT, "x"}, {token.ASSIGN, "="}, {token.IDENT, "x"}, {token.MINUS, "-"},
		{token.INT, "1"}, {token.SEMICOLON, ";"}, {token.RBRACE, "}"},
		{token.FOR, "for"}, {token.LPAREN, "("}, {token.IDENT, "i"}, {token.IN, "in"},
		{token.IDENT, "items"}, {token.RPAREN, ")"}, {token.LBRACE, "{"},
		{token.PRINT, "print"}, {token.LPAREN, "("}, {token.IDENT, "i"}, {token.RPAREN, ")"},
		{token.SEMICOLON, ";"}, {token.RBRACE, "}"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong token type. expected=%q, got=%q (%q)", i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - wrong lexeme. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	l := New("42 3.14 0 10.0")

	tok := l.NextToken()
	if tok.Type != token.INT || tok.Literal.(int64) != 42 {
		t.Fatalf("expected INT 42, got %v %v", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != token.FLOAT || tok.Literal.(float64) != 3.14 {
		t.Fatalf("expected FLOAT 3.14, got %v %v", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != token.INT || tok.Literal.(int64) != 0 {
		t.Fatalf("expected INT 0, got %v %v", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != token.FLOAT || tok.Literal.(float64) != 10.0 {
		t.Fatalf("expected FLOAT 10.0, got %v %v", tok.Type, tok.Literal)
	}
}

func TestStringQuoting(t *testing.T) {
	l := New(`"double" 'single'`)

	tok := l.NextToken()
	if tok.Type != token.STRING || tok.Literal.(string) != "double" {
		t.Fatalf("expected STRING double, got %v %v", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != token.STRING || tok.Literal.(string) != "single" {
		t.Fatalf("expected STRING single, got %v %v", tok.Type, tok.Literal)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"oops`)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for unterminated string, got %v", tok.Type)
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	l := New("x\ny = 1")

	tok := l.NextToken()
	if tok.Line != 1 || tok.Column != 1 {
		t.Fatalf("x: expected 1:1, got %d:%d", tok.Line, tok.Column)
	}
	tok = l.NextToken()
	if tok.Line != 2 || tok.Column != 1 {
		t.Fatalf("y: expected 2:1, got %d:%d", tok.Line, tok.Column)
	}
	tok = l.NextToken()
	if tok.Line != 2 || tok.Column != 3 {
		t.Fatalf("=: expected 2:3, got %d:%d", tok.Line, tok.Column)
	}
}
