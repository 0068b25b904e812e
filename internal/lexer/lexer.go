package lexer

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

const (
	// Literals
	STRING   = "STRING"   // "hello" or 'hello'
	BOOLEAN  = "BOOLEAN"  // True, False
	INTEGER  = "INTEGER"  // 0, 42, …
	VARIABLE = "VARIABLE" // any other word: x, print, …
	OPERATOR = "OPERATOR" // + - * / %

	// Block structure
	NEWLINE = "NEWLINE"
	INDENT  = "INDENT"
	DEDENT  = "DEDENT"

	// Keywords and punctuation
	DEF    = "DEF"    // def
	COMMA  = "COMMA"  // ,
	COLON  = "COLON"  // :
	LPAREN = "LPAREN" // (
	RPAREN = "RPAREN" // )
	EQUALS = "EQUALS" // =
)

// markers maps reserved words to their payload-free token types.
var markers = map[string]string{
	"def": DEF,
	",":   COMMA,
	":":   COLON,
	"(":   LPAREN,
	")":   RPAREN,
	"=":   EQUALS,
}

var operators = []string{"+", "-", "*", "/", "%"}

// Token is a single lexical token. Only literal, variable and operator tokens
// carry a Value; two tokens are equal when both fields are equal.
type Token struct {
	Type  string
	Value string
}

var typeNames = map[string]string{
	STRING: "String", BOOLEAN: "Boolean", INTEGER: "Integer",
	VARIABLE: "Variable", OPERATOR: "Operator",
	NEWLINE: "Newline", INDENT: "Indent", DEDENT: "Dedent",
	DEF: "Def", COMMA: "Comma", COLON: "Colon",
	LPAREN: "OpenParen", RPAREN: "CloseParen", EQUALS: "Equals",
}

func (t Token) String() string {
	name, ok := typeNames[t.Type]
	if !ok {
		name = t.Type
	}
	switch t.Type {
	case STRING, BOOLEAN, INTEGER, VARIABLE, OPERATOR:
		return fmt.Sprintf("%s(%s)", name, t.Value)
	default:
		return name
	}
}

// Convenience constructors.
func String(s string) Token    { return Token{STRING, s} }
func Boolean(s string) Token   { return Token{BOOLEAN, s} }
func Integer(s string) Token   { return Token{INTEGER, s} }
func Variable(s string) Token  { return Token{VARIABLE, s} }
func Operator(op string) Token { return Token{OPERATOR, op} }

var (
	Newline    = Token{Type: NEWLINE}
	Indent     = Token{Type: INDENT}
	Dedent     = Token{Type: DEDENT}
	Def        = Token{Type: DEF}
	Comma      = Token{Type: COMMA}
	Colon      = Token{Type: COLON}
	OpenParen  = Token{Type: LPAREN}
	CloseParen = Token{Type: RPAREN}
	Equals     = Token{Type: EQUALS}
)

// Error kinds, matched with errors.Is.
var (
	ErrLeadingSpace = errors.New("leading space indentation")
	ErrMisplacedTab = errors.New("tab in the middle of a statement")
)

// LexError is a fatal error found while lexing. Line is 1-based and counts
// newline words seen before the offending word.
type LexError struct {
	Kind    error
	Message string
	Word    string
	Line    int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d: %s (got %q)", e.Line, e.Message, e.Word)
}

func (e *LexError) Unwrap() error { return e.Kind }

/**
* Lexes a word stream (as produced by tokenizer.Tokenize) into Tokens. Every
* newline word becomes a Newline token followed by the Indent or Dedent tokens
* needed to move from the current depth to the tab count of the next line.
* @param words The words to classify.
* @return The token stream, or the first LexError found.
 */
func Lex(words []string) ([]Token, error) {
	var tokens []Token
	depth, line, i := 0, 1, 0

	for i < len(words) {
		if words[i] == "\n" {
			tokens = append(tokens, Newline)
			line++
			i++

			target, next, newLine, err := measureIndent(words, i, line)
			if err != nil {
				return nil, err
			}
			i, line = next, newLine

			// Depth always moves one level per token.
			for depth < target {
				tokens = append(tokens, Indent)
				depth++
			}
			for depth > target {
				tokens = append(tokens, Dedent)
				depth--
			}
			continue
		}

		tok, width, err := lexWord(words, i, line)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		i += width
	}

	return tokens, nil
}

// measureIndent counts the tab words that open a line. Blank lines reset the
// count and are absorbed without producing tokens.
func measureIndent(words []string, i int, line int) (int, int, int, error) {
	count := 0
	for i < len(words) {
		switch words[i] {
		case "\n":
			count = 0
			line++
		case "\t", "    ":
			count++
		case " ":
			return 0, i, line, &LexError{
				Kind:    ErrLeadingSpace,
				Message: "lines cannot be indented with spaces",
				Word:    words[i],
				Line:    line,
			}
		default:
			return count, i, line, nil
		}
		i++
	}
	return count, i, line, nil
}

// lexWord classifies the word at words[i] and reports how many words it used.
func lexWord(words []string, i int, line int) (Token, int, error) {
	word := words[i]

	if word == "\t" {
		return Token{}, 0, &LexError{
			Kind:    ErrMisplacedTab,
			Message: "cannot have a tab in the middle of a statement",
			Word:    word,
			Line:    line,
		}
	}

	if (word == "\"" || word == "'") && i+2 < len(words) && words[i+2] == word {
		return String(words[i+1]), 3, nil
	}

	if word == "True" || word == "False" {
		return Boolean(word), 1, nil
	}

	if isInteger(word) {
		return Integer(word), 1, nil
	}

	if typ, ok := markers[word]; ok {
		return Token{Type: typ}, 1, nil
	}

	if slices.Contains(operators, word) {
		return Operator(word), 1, nil
	}

	return Variable(word), 1, nil
}

func isInteger(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if !isDigit(word[i]) {
			return false
		}
	}
	return true
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
