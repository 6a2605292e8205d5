/*
File    : go-pinky/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLexer_SingleTokens verifies that every single-character token is
// recognized with the correct type and lexeme.
func TestLexer_SingleTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"(", LEFT_PAREN},
		{")", RIGHT_PAREN},
		{"{", LEFT_BRACE},
		{"}", RIGHT_BRACE},
		{"[", LEFT_BRACKET},
		{"]", RIGHT_BRACKET},
		{",", COMMA_DELIM},
		{".", DOT_OP},
		{";", SEMICOLON_DELIM},
		{":", COLON_DELIM},
		{"?", QUESTION_OP},
		{"+", PLUS_OP},
		{"-", MINUS_OP},
		{"*", MUL_OP},
		{"/", DIV_OP},
		{"^", EXP_OP},
		{"%", MOD_OP},
		{">", GT_OP},
		{"<", LT_OP},
		{"~", NOT_OP},
	}

	for _, tt := range tests {
		tokens := NewLexer(tt.input).Tokenize()
		assert.Equal(t, 1, len(tokens), "input %q", tt.input)
		assert.Equal(t, tt.expected, tokens[0].Type, "input %q", tt.input)
		assert.Equal(t, tt.input, tokens[0].Literal, "input %q", tt.input)
	}
}

// TestLexer_MultiCharTokens verifies the one-character lookahead operators.
func TestLexer_MultiCharTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{":=", ASSIGN_OP},
		{"==", EQ_OP},
		{"~=", NE_OP},
		{">=", GE_OP},
		{"<=", LE_OP},
		{">>", SHIFT_RIGHT_OP},
		{"<<", SHIFT_LEFT_OP},
	}

	for _, tt := range tests {
		tokens := NewLexer(tt.input).Tokenize()
		assert.Equal(t, 1, len(tokens), "input %q", tt.input)
		assert.Equal(t, tt.expected, tokens[0].Type, "input %q", tt.input)
		assert.Equal(t, tt.input, tokens[0].Literal, "input %q", tt.input)
	}
}

// TestLexer_BareEqualsEmitsNothing verifies that a bare '=' produces no
// token at all: only '==' is defined in the grammar.
func TestLexer_BareEqualsEmitsNothing(t *testing.T) {
	tokens := NewLexer("x = 1").Tokenize()
	assert.Equal(t, 2, len(tokens))
	assert.Equal(t, IDENTIFIER_ID, tokens[0].Type)
	assert.Equal(t, INT_LIT, tokens[1].Type)
}

// TestLexer_Keywords verifies every keyword in the table, including the
// `not` keyword lexing to the same category as '~'.
func TestLexer_Keywords(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"if", IF_KEY},
		{"then", THEN_KEY},
		{"else", ELSE_KEY},
		{"end", END_KEY},
		{"true", TRUE_KEY},
		{"false", FALSE_KEY},
		{"and", AND_KEY},
		{"or", OR_KEY},
		{"not", NOT_OP},
		{"while", WHILE_KEY},
		{"do", DO_KEY},
		{"for", FOR_KEY},
		{"func", FUNC_KEY},
		{"null", NULL_KEY},
		{"print", PRINT_KEY},
		{"println", PRINTLN_KEY},
		{"ret", RET_KEY},
	}

	for _, tt := range tests {
		tokens := NewLexer(tt.input).Tokenize()
		assert.Equal(t, 1, len(tokens), "input %q", tt.input)
		assert.Equal(t, tt.expected, tokens[0].Type, "input %q", tt.input)
	}
}

// TestLexer_Identifiers verifies identifier recognition, including
// underscores and keyword prefixes.
func TestLexer_Identifiers(t *testing.T) {
	tokens := NewLexer("foo _bar baz_42 iffy").Tokenize()
	assert.Equal(t, 4, len(tokens))
	for i, expected := range []string{"foo", "_bar", "baz_42", "iffy"} {
		assert.Equal(t, IDENTIFIER_ID, tokens[i].Type)
		assert.Equal(t, expected, tokens[i].Literal)
	}
}

// TestLexer_Numbers verifies integer and float literal scanning, including
// the requirement that a '.' only continues a float when a digit follows.
func TestLexer_Numbers(t *testing.T) {
	tokens := NewLexer("42 3.14 0 10.").Tokenize()
	assert.Equal(t, 5, len(tokens))
	assert.Equal(t, INT_LIT, tokens[0].Type)
	assert.Equal(t, "42", tokens[0].Literal)
	assert.Equal(t, FLOAT_LIT, tokens[1].Type)
	assert.Equal(t, "3.14", tokens[1].Literal)
	assert.Equal(t, INT_LIT, tokens[2].Type)
	// `10.` is an integer followed by a dot, not a float
	assert.Equal(t, INT_LIT, tokens[3].Type)
	assert.Equal(t, "10", tokens[3].Literal)
	assert.Equal(t, DOT_OP, tokens[4].Type)
}

// TestLexer_Strings verifies that string lexemes keep their surrounding
// quotes and that both quote styles are accepted.
func TestLexer_Strings(t *testing.T) {
	tokens := NewLexer(`"hello" 'world'`).Tokenize()
	assert.Equal(t, 2, len(tokens))
	assert.Equal(t, STRING_LIT, tokens[0].Type)
	assert.Equal(t, `"hello"`, tokens[0].Literal)
	assert.Equal(t, STRING_LIT, tokens[1].Type)
	assert.Equal(t, `'world'`, tokens[1].Literal)
}

// TestLexer_UnterminatedString verifies the fatal diagnostic for a string
// literal that never closes.
func TestLexer_UnterminatedString(t *testing.T) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			t.Fatalf("expected a panic for an unterminated string")
		}
		if !strings.Contains(recovered.(string), "unterminated string") {
			t.Errorf("unexpected panic message: %v", recovered)
		}
	}()
	NewLexer(`println "oops`).Tokenize()
}

// TestLexer_Comments verifies both comment forms are consumed to the end
// of the line without producing tokens.
func TestLexer_Comments(t *testing.T) {
	src := `# a hash comment
x := 1 -- trailing comment
-- full line comment
y := 2`
	tokens := NewLexer(src).Tokenize()
	assert.Equal(t, 6, len(tokens))
	assert.Equal(t, "x", tokens[0].Literal)
	assert.Equal(t, ASSIGN_OP, tokens[1].Type)
	assert.Equal(t, "1", tokens[2].Literal)
	assert.Equal(t, "y", tokens[3].Literal)
	assert.Equal(t, ASSIGN_OP, tokens[4].Type)
	assert.Equal(t, "2", tokens[5].Literal)
}

// TestLexer_LineNumbers verifies the line counter across newlines and
// comments.
func TestLexer_LineNumbers(t *testing.T) {
	src := "x := 1\n# comment\ny := 2\n\nz := 3"
	tokens := NewLexer(src).Tokenize()
	assert.Equal(t, 9, len(tokens))
	assert.Equal(t, 1, tokens[0].Line) // x
	assert.Equal(t, 3, tokens[3].Line) // y
	assert.Equal(t, 5, tokens[6].Line) // z
}

// TestLexer_UnknownCharsSkipped verifies that characters outside the
// language are dropped without a token and without an error.
func TestLexer_UnknownCharsSkipped(t *testing.T) {
	tokens := NewLexer("x @ $ y").Tokenize()
	assert.Equal(t, 2, len(tokens))
	assert.Equal(t, "x", tokens[0].Literal)
	assert.Equal(t, "y", tokens[1].Literal)
}

// TestLexer_LexemeFaithfulness verifies that concatenating the lexemes
// reproduces the significant source characters (whitespace and comments
// ignored).
func TestLexer_LexemeFaithfulness(t *testing.T) {
	src := `x := (1 + 2) * "ab"`
	tokens := NewLexer(src).Tokenize()
	var rebuilt strings.Builder
	for _, tok := range tokens {
		rebuilt.WriteString(tok.Literal)
	}
	assert.Equal(t, strings.ReplaceAll(src, " ", ""), rebuilt.String())
}

// TestLexer_FullStatement verifies a representative statement end to end.
func TestLexer_FullStatement(t *testing.T) {
	src := `for i := 1, 10 then println i end`
	tokens := NewLexer(src).Tokenize()
	expected := []TokenType{
		FOR_KEY, IDENTIFIER_ID, ASSIGN_OP, INT_LIT, COMMA_DELIM, INT_LIT,
		THEN_KEY, PRINTLN_KEY, IDENTIFIER_ID, END_KEY,
	}
	assert.Equal(t, len(expected), len(tokens))
	for i, tt := range expected {
		assert.Equal(t, tt, tokens[i].Type, "token %d", i)
	}
}
