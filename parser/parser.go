/*
File    : go-pinky/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a recursive-descent parser for the Pinky
programming language.

The parser consumes the full token sequence produced by the lexer and
builds an Abstract Syntax Tree (AST). It handles:
- Expressions (literals, identifiers, unary, binary, logical, calls)
- Statements (print/println, assignments, control flow, functions, returns)
- Operator precedence and associativity through a fixed grammar ladder

Grammar (precedence from loosest to tightest):

	stmts       := stmt*                                  (ends at `end`, `else`, or EOF)
	logical_or  := logical_and  ('or'  logical_and)*
	logical_and := equality     ('and' equality)*
	equality    := comparison   (('=='|'~=') comparison)*
	comparison  := expr         (('<'|'<='|'>'|'>=') expr)*
	expr        := term         (('+'|'-') term)*
	term        := modulo       (('*'|'/') modulo)*
	modulo      := exponent     ('%' exponent)*
	exponent    := unary        ('^' exponent)?           (right-assoc)
	unary       := ('not'|'-'|'+') unary | primary
	primary     := INT | FLOAT | STRING | 'true' | 'false' | 'null'
	             | '(' logical_or ')' | IDENT [ '(' args ')' ]

Failure mode: parsing is all-or-nothing. Any token mismatch, missing
closing bracket, or unrecognized statement head panics with a diagnostic
naming its line and, where one is at hand, the offending token (a
missing `)` and the end of input name no token); the process drivers decide
whether to exit (file mode) or recover (REPL).
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-pinky/lexer"
)

// Parser represents the parser state: the complete token sequence and a
// cursor into it. Unlike a streaming design, holding the full slice makes
// the multi-token lookahead for contextual keywords trivial.
type Parser struct {
	Tokens  []lexer.Token // The full token sequence from the lexer
	Current int           // Cursor index of the next token to consume
}

// NewParser creates and initializes a new Parser for the given source.
// The source is tokenized eagerly; lexer diagnostics therefore surface
// from this constructor.
//
// Parameters:
//   - src: The Pinky source code to parse
//
// Returns:
//   - *Parser: A parser positioned at the first token
//
// Example:
//
//	par := NewParser(`println 1 + 2`)
//	root := par.Parse()
func NewParser(src string) *Parser {
	return &Parser{
		Tokens:  lexer.NewLexer(src).Tokenize(),
		Current: 0,
	}
}

// Parse consumes the whole token sequence and returns the program's root
// node. Stray tokens after the top-level statement list (for example an
// unmatched `end`) are a parse error.
//
// Returns:
//   - *RootNode: The root of the AST
func (par *Parser) Parse() *RootNode {
	root := &RootNode{Statements: par.stmts()}
	if par.Current < len(par.Tokens) {
		tok := par.Tokens[par.Current]
		panic(fmt.Sprintf("[Line %d] Parse Error: unexpected token '%s'", tok.Line, tok.Literal))
	}
	return root
}

// advance consumes and returns the current token. Reaching past the end
// of the sequence is a parse error (the grammar never consumes EOF).
func (par *Parser) advance() lexer.Token {
	if par.Current >= len(par.Tokens) {
		panic(fmt.Sprintf("[Line %d] Parse Error: unexpected end of input", par.lastLine()))
	}
	tok := par.Tokens[par.Current]
	par.Current++
	return tok
}

// peek returns the current token without consuming it, or nil at the end
// of the sequence.
func (par *Parser) peek() *lexer.Token {
	if par.Current >= len(par.Tokens) {
		return nil
	}
	return &par.Tokens[par.Current]
}

// lookahead returns the token n positions past the cursor without
// consuming anything, or nil when out of range. lookahead(0) is peek().
func (par *Parser) lookahead(n int) *lexer.Token {
	if par.Current+n >= len(par.Tokens) {
		return nil
	}
	return &par.Tokens[par.Current+n]
}

// isNext reports whether the current token has the expected type.
func (par *Parser) isNext(expected lexer.TokenType) bool {
	tok := par.peek()
	return tok != nil && tok.Type == expected
}

// matchToken consumes the current token only if it has the given type.
// After a successful match, previousToken() returns the operator that was
// consumed.
//
// Returns:
//   - bool: true if the token matched and was consumed
func (par *Parser) matchToken(tokenType lexer.TokenType) bool {
	if par.isNext(tokenType) {
		par.Current++
		return true
	}
	return false
}

// previousToken returns the most recently consumed token.
func (par *Parser) previousToken() lexer.Token {
	return par.Tokens[par.Current-1]
}

// expect consumes and returns the current token, panicking with a
// diagnostic if it does not have the expected type.
//
// Parameters:
//   - expected: The required token type
//
// Returns:
//   - lexer.Token: The consumed token
func (par *Parser) expect(expected lexer.TokenType) lexer.Token {
	tok := par.peek()
	if tok == nil {
		panic(fmt.Sprintf("[Line %d] Parse Error: expected '%s', found end of input", par.lastLine(), expected))
	}
	if tok.Type != expected {
		panic(fmt.Sprintf("[Line %d] Parse Error: expected '%s', found '%s'", tok.Line, expected, tok.Literal))
	}
	return par.advance()
}

// lastLine returns the line of the last token of the input, used for
// end-of-input diagnostics. Defaults to line 1 for an empty program.
func (par *Parser) lastLine() int {
	if len(par.Tokens) == 0 {
		return 1
	}
	return par.Tokens[len(par.Tokens)-1].Line
}
