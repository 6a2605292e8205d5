/*
File    : go-pinky/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-pinky/lexer"
	"github.com/akashmaji946/go-pinky/objects"
)

// stmts parses a statement list: `stmt*` terminated by `end`, `else`, or
// the end of input. The terminators are not consumed; the enclosing
// construct expects them.
func (par *Parser) stmts() []StatementNode {
	statements := make([]StatementNode, 0)
	for par.Current < len(par.Tokens) && !par.isNext(lexer.END_KEY) && !par.isNext(lexer.ELSE_KEY) {
		statements = append(statements, par.stmt())
	}
	return statements
}

// block parses a statement list and wraps it as a block body.
func (par *Parser) block() *BlockStatementNode {
	return &BlockStatementNode{Statements: par.stmts()}
}

// stmt dispatches on the statement head token:
//
//	print/println  -> output statements
//	if/while/for   -> control flow
//	func           -> function declaration
//	ret            -> return statement
//	local x := e   -> local assignment (`local` is a contextual keyword)
//	anything else  -> expression-led: `x := e` assignment, a bare call,
//	                  or a bare expression
func (par *Parser) stmt() StatementNode {
	tok := par.peek()
	if tok == nil {
		panic(fmt.Sprintf("[Line %d] Parse Error: expected a statement, found end of input", par.lastLine()))
	}
	switch tok.Type {
	case lexer.PRINT_KEY:
		return par.printStmt()
	case lexer.PRINTLN_KEY:
		return par.printlnStmt()
	case lexer.IF_KEY:
		return par.ifStmt()
	case lexer.WHILE_KEY:
		return par.whileStmt()
	case lexer.FOR_KEY:
		return par.forStmt()
	case lexer.FUNC_KEY:
		return par.funcDecl()
	case lexer.RET_KEY:
		return par.retStmt()
	default:
		if par.isLocalAssignment() {
			return par.localAssignment()
		}
		return par.expressionLedStmt()
	}
}

// printStmt parses `print expr`.
func (par *Parser) printStmt() StatementNode {
	tok := par.expect(lexer.PRINT_KEY)
	return &PrintStatementNode{Token: tok, Value: par.logicalOr()}
}

// printlnStmt parses `println expr`.
func (par *Parser) printlnStmt() StatementNode {
	tok := par.expect(lexer.PRINTLN_KEY)
	return &PrintlnStatementNode{Token: tok, Value: par.logicalOr()}
}

// ifStmt parses `if test then stmts [else stmts] end`. A missing else
// branch yields an empty block.
func (par *Parser) ifStmt() StatementNode {
	tok := par.expect(lexer.IF_KEY)
	test := par.logicalOr()
	par.expect(lexer.THEN_KEY)
	thenBlock := par.block()
	elseBlock := &BlockStatementNode{Statements: make([]StatementNode, 0)}
	if par.matchToken(lexer.ELSE_KEY) {
		elseBlock = par.block()
	}
	par.expect(lexer.END_KEY)
	return &IfStatementNode{Token: tok, Test: test, Then: thenBlock, Else: elseBlock}
}

// whileStmt parses `while test then stmts end`. The block opener is
// `then`, not `do`.
func (par *Parser) whileStmt() StatementNode {
	tok := par.expect(lexer.WHILE_KEY)
	test := par.logicalOr()
	par.expect(lexer.THEN_KEY)
	body := par.block()
	par.expect(lexer.END_KEY)
	return &WhileStatementNode{Token: tok, Test: test, Body: body}
}

// forStmt parses `for ident := start, end [, step] then stmts end`.
// When the step is omitted it defaults to a synthesized integer literal 1.
func (par *Parser) forStmt() StatementNode {
	tok := par.expect(lexer.FOR_KEY)
	identTok := par.expect(lexer.IDENTIFIER_ID)
	identifier := &IdentifierExpressionNode{Token: identTok, Name: identTok.Literal}
	par.expect(lexer.ASSIGN_OP)
	start := par.logicalOr()
	par.expect(lexer.COMMA_DELIM)
	end := par.logicalOr()
	var step ExpressionNode
	if par.matchToken(lexer.COMMA_DELIM) {
		step = par.logicalOr()
	} else {
		step = &IntegerLiteralExpressionNode{
			Token: lexer.NewToken(lexer.INT_LIT, "1", tok.Line),
			Value: &objects.Number{Value: 1},
		}
	}
	par.expect(lexer.THEN_KEY)
	body := par.block()
	par.expect(lexer.END_KEY)
	return &ForStatementNode{Token: tok, Identifier: identifier, Start: start, End: end, Step: step, Body: body}
}

// funcDecl parses `func name(params) stmts end`. Parameters are
// comma-separated identifiers stored as ParameterNode entries.
func (par *Parser) funcDecl() StatementNode {
	tok := par.expect(lexer.FUNC_KEY)
	nameTok := par.expect(lexer.IDENTIFIER_ID)
	name := &IdentifierExpressionNode{Token: nameTok, Name: nameTok.Literal}
	par.expect(lexer.LEFT_PAREN)
	params := make([]*ParameterNode, 0)
	if !par.isNext(lexer.RIGHT_PAREN) {
		paramTok := par.expect(lexer.IDENTIFIER_ID)
		params = append(params, &ParameterNode{Token: paramTok, Name: paramTok.Literal})
		for par.matchToken(lexer.COMMA_DELIM) {
			paramTok = par.expect(lexer.IDENTIFIER_ID)
			params = append(params, &ParameterNode{Token: paramTok, Name: paramTok.Literal})
		}
	}
	par.expect(lexer.RIGHT_PAREN)
	body := par.block()
	par.expect(lexer.END_KEY)
	return &FunctionStatementNode{Token: tok, Name: name, Params: params, Body: body}
}

// retStmt parses `ret expr`.
func (par *Parser) retStmt() StatementNode {
	tok := par.expect(lexer.RET_KEY)
	return &ReturnStatementNode{Token: tok, Value: par.logicalOr()}
}

// isLocalAssignment reports whether the statement head is the contextual
// keyword `local`: an identifier spelled "local" followed by an
// identifier and `:=`. Because `local` is not reserved, `local := 1`
// remains a plain assignment to a variable named local.
func (par *Parser) isLocalAssignment() bool {
	head := par.peek()
	if head == nil || head.Type != lexer.IDENTIFIER_ID || head.Literal != "local" {
		return false
	}
	target := par.lookahead(1)
	assign := par.lookahead(2)
	return target != nil && target.Type == lexer.IDENTIFIER_ID &&
		assign != nil && assign.Type == lexer.ASSIGN_OP
}

// localAssignment parses `local ident := expr`, which always binds in the
// innermost scope.
func (par *Parser) localAssignment() StatementNode {
	par.advance() // consume the contextual `local`
	identTok := par.expect(lexer.IDENTIFIER_ID)
	left := &IdentifierExpressionNode{Token: identTok, Name: identTok.Literal}
	par.expect(lexer.ASSIGN_OP)
	return &LocalAssignmentStatementNode{Left: left, Right: par.logicalOr()}
}

// expressionLedStmt parses a statement that begins with an expression:
// `ident := expr` (assignment), a bare function call, or any other bare
// expression. Assignment targets must be identifiers; anything else on
// the left of `:=` is a parse error.
func (par *Parser) expressionLedStmt() StatementNode {
	headLine := par.peek().Line
	left := par.logicalOr()
	if par.matchToken(lexer.ASSIGN_OP) {
		if _, ok := left.(*IdentifierExpressionNode); !ok {
			panic(fmt.Sprintf("[Line %d] Parse Error: assignment target must be an identifier, found '%s'", headLine, left.Literal()))
		}
		return &AssignmentStatementNode{Left: left, Right: par.logicalOr()}
	}
	if call, ok := left.(*CallExpressionNode); ok {
		return &FunctionCallStatementNode{Call: call}
	}
	return &ExpressionStatementNode{Expr: left}
}
