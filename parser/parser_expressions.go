/*
File    : go-pinky/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/go-pinky/lexer"
	"github.com/akashmaji946/go-pinky/objects"
)

// The expression grammar is a fixed ladder: each level parses its tighter
// neighbor first, then loops on its own operators, producing
// left-associative trees. Exponentiation recurses into itself on the
// right instead, making `^` right-associative. A parenthesized
// expression re-enters the ladder at the top (logicalOr), so the full
// precedence stack applies inside parentheses.

// logicalOr parses `logical_and ('or' logical_and)*`. This is the entry
// point for a complete expression.
func (par *Parser) logicalOr() ExpressionNode {
	expr := par.logicalAnd()
	for par.matchToken(lexer.OR_KEY) {
		op := par.previousToken()
		expr = &LogicalExpressionNode{Operation: op, Left: expr, Right: par.logicalAnd()}
	}
	return expr
}

// logicalAnd parses `equality ('and' equality)*`.
func (par *Parser) logicalAnd() ExpressionNode {
	expr := par.equality()
	for par.matchToken(lexer.AND_KEY) {
		op := par.previousToken()
		expr = &LogicalExpressionNode{Operation: op, Left: expr, Right: par.equality()}
	}
	return expr
}

// equality parses `comparison (('==' | '~=') comparison)*`.
func (par *Parser) equality() ExpressionNode {
	expr := par.comparison()
	for par.matchToken(lexer.EQ_OP) || par.matchToken(lexer.NE_OP) {
		op := par.previousToken()
		expr = &BinaryExpressionNode{Operation: op, Left: expr, Right: par.comparison()}
	}
	return expr
}

// comparison parses `expr (('<' | '<=' | '>' | '>=') expr)*`.
func (par *Parser) comparison() ExpressionNode {
	expr := par.expr()
	for par.matchToken(lexer.GE_OP) || par.matchToken(lexer.LE_OP) ||
		par.matchToken(lexer.GT_OP) || par.matchToken(lexer.LT_OP) {
		op := par.previousToken()
		expr = &BinaryExpressionNode{Operation: op, Left: expr, Right: par.expr()}
	}
	return expr
}

// expr parses `term (('+' | '-') term)*`.
func (par *Parser) expr() ExpressionNode {
	expr := par.term()
	for par.matchToken(lexer.PLUS_OP) || par.matchToken(lexer.MINUS_OP) {
		op := par.previousToken()
		expr = &BinaryExpressionNode{Operation: op, Left: expr, Right: par.term()}
	}
	return expr
}

// term parses `modulo (('*' | '/') modulo)*`.
func (par *Parser) term() ExpressionNode {
	expr := par.modulo()
	for par.matchToken(lexer.MUL_OP) || par.matchToken(lexer.DIV_OP) {
		op := par.previousToken()
		expr = &BinaryExpressionNode{Operation: op, Left: expr, Right: par.modulo()}
	}
	return expr
}

// modulo parses `exponent ('%' exponent)*`.
func (par *Parser) modulo() ExpressionNode {
	expr := par.exponent()
	for par.matchToken(lexer.MOD_OP) {
		op := par.previousToken()
		expr = &BinaryExpressionNode{Operation: op, Left: expr, Right: par.exponent()}
	}
	return expr
}

// exponent parses `unary ('^' exponent)?`. Recursing into exponent on
// the right makes `^` right-associative: 2^3^2 is 2^(3^2).
func (par *Parser) exponent() ExpressionNode {
	expr := par.unary()
	for par.matchToken(lexer.EXP_OP) {
		op := par.previousToken()
		expr = &BinaryExpressionNode{Operation: op, Left: expr, Right: par.exponent()}
	}
	return expr
}

// unary parses `('not' | '-' | '+') unary | primary`. Prefix operators
// nest, so `- -x` and `not not ok` parse naturally (`--x` without the
// space is a line comment to the lexer).
func (par *Parser) unary() ExpressionNode {
	if par.matchToken(lexer.NOT_OP) || par.matchToken(lexer.MINUS_OP) || par.matchToken(lexer.PLUS_OP) {
		op := par.previousToken()
		return &UnaryExpressionNode{Operation: op, Right: par.unary()}
	}
	return par.primary()
}

// primary parses the atoms of the grammar: number, string and boolean
// literals, `null`, parenthesized expressions, identifiers, and function
// calls (an identifier directly followed by an argument list).
//
// Integer literals widen to the language's float-backed number type here;
// string literals are stored without the quotes their lexemes carry.
func (par *Parser) primary() ExpressionNode {
	if par.matchToken(lexer.INT_LIT) {
		tok := par.previousToken()
		value, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			panic(fmt.Sprintf("[Line %d] Parse Error: invalid integer literal '%s'", tok.Line, tok.Literal))
		}
		return &IntegerLiteralExpressionNode{Token: tok, Value: &objects.Number{Value: float64(value)}}
	}
	if par.matchToken(lexer.FLOAT_LIT) {
		tok := par.previousToken()
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			panic(fmt.Sprintf("[Line %d] Parse Error: invalid float literal '%s'", tok.Line, tok.Literal))
		}
		return &FloatLiteralExpressionNode{Token: tok, Value: &objects.Number{Value: value}}
	}
	if par.matchToken(lexer.STRING_LIT) {
		tok := par.previousToken()
		// The lexeme includes the surrounding quotes; slice them off
		unquoted := tok.Literal[1 : len(tok.Literal)-1]
		return &StringLiteralExpressionNode{Token: tok, Value: &objects.String{Value: unquoted}}
	}
	if par.matchToken(lexer.TRUE_KEY) {
		return &BooleanLiteralExpressionNode{Token: par.previousToken(), Value: &objects.Boolean{Value: true}}
	}
	if par.matchToken(lexer.FALSE_KEY) {
		return &BooleanLiteralExpressionNode{Token: par.previousToken(), Value: &objects.Boolean{Value: false}}
	}
	if par.matchToken(lexer.NULL_KEY) {
		return &NullLiteralExpressionNode{Token: par.previousToken()}
	}
	if par.matchToken(lexer.LEFT_PAREN) {
		expr := par.logicalOr()
		if !par.matchToken(lexer.RIGHT_PAREN) {
			panic(fmt.Sprintf("[Line %d] Parse Error: missing closing parenthesis", par.previousToken().Line))
		}
		return &ParenthesizedExpressionNode{Expr: expr}
	}

	tok := par.expect(lexer.IDENTIFIER_ID)
	if par.isNext(lexer.LEFT_PAREN) {
		return par.callExpression(tok)
	}
	return &IdentifierExpressionNode{Token: tok, Name: tok.Literal}
}

// callExpression parses the argument list of a function call whose name
// token was already consumed: `'(' (logical_or (',' logical_or)*)? ')'`.
// Each argument is a full expression.
func (par *Parser) callExpression(name lexer.Token) *CallExpressionNode {
	par.expect(lexer.LEFT_PAREN)
	args := make([]ExpressionNode, 0)
	if !par.isNext(lexer.RIGHT_PAREN) {
		args = append(args, par.logicalOr())
		for par.matchToken(lexer.COMMA_DELIM) {
			args = append(args, par.logicalOr())
		}
	}
	par.expect(lexer.RIGHT_PAREN)
	return &CallExpressionNode{Token: name, Name: name.Literal, Args: args}
}
