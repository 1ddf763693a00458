// Package token defines the lexical tokens of the Slate language.
package token

type TokenType string

// Token is a single lexical unit with its source position.
type Token struct {
	Type    TokenType
	Lexeme  string      // Raw source text
	Literal interface{} // Decoded value for INT/FLOAT/STRING, else the lexeme
	Line    int
	Column  int
}

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	IDENT  TokenType = "IDENT"
	INT    TokenType = "INT"
	FLOAT  TokenType = "FLOAT"
	STRING TokenType = "STRING"

	// Operators
	ASSIGN   TokenType = "="
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"
	PERCENT  TokenType = "%"

	EQ     TokenType = "=="
	NOT_EQ TokenType = "!="
	LT     TokenType = "<"
	GT     TokenType = ">"
	LE     TokenType = "<="
	GE     TokenType = ">="

	// Delimiters
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	COLON     TokenType = ":"

	// Keywords
	IF     TokenType = "IF"
	ELSE   TokenType = "ELSE"
	WHILE  TokenType = "WHILE"
	FOR    TokenType = "FOR"
	IN     TokenType = "IN"
	DEF    TokenType = "DEF"
	RETURN TokenType = "RETURN"
	PASS   TokenType = "PASS"
	TRUE   TokenType = "TRUE"
	FALSE  TokenType = "FALSE"
	NONE   TokenType = "NONE"
	AND    TokenType = "AND"
	OR     TokenType = "OR"
	NOT    TokenType = "NOT"
	PRINT  TokenType = "PRINT"
)

var keywords = map[string]TokenType{
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"for":    FOR,
	"in":     IN,
	"def":    DEF,
	"return": RETURN,
	"pass":   PASS,
	"True":   TRUE,
	"False":  FALSE,
	"None":   NONE,
	"and":    AND,
	"or":     OR,
	"not":    NOT,
	"print":  PRINT,
}

// LookupIdent returns the keyword type for ident, or IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
