/*
File    : go-pinky/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/go-pinky/lexer"
	"github.com/akashmaji946/go-pinky/objects"
)

func TestParser_Parse_OneNumberExpression(t *testing.T) {

	src := `12`
	par := NewParser(src)
	root := par.Parse()
	// root should not be nil
	assert.NotNil(t, root)

	// must: root has 1 statement
	assert.Equal(t, 1, len(root.Statements))

	stmt, can := root.Statements[0].(*ExpressionStatementNode)
	assert.True(t, can)
	exp, can := stmt.Expr.(*IntegerLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "12", exp.Literal())
	if num, ok := exp.Value.(*objects.Number); ok {
		assert.Equal(t, float64(12), num.Value)
	} else {
		t.Errorf("Expected objects.Number, got %T", exp.Value)
	}
}

func TestParser_Parse_Precedence(t *testing.T) {

	// 2 + 3 * 4 must parse as (+ 2 (* 3 4))
	src := `2 + 3 * 4`
	par := NewParser(src)
	root := par.Parse()
	assert.Equal(t, 1, len(root.Statements))

	stmt := root.Statements[0].(*ExpressionStatementNode)
	add, can := stmt.Expr.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.PLUS_OP, add.Operation.Type)

	_, can = add.Left.(*IntegerLiteralExpressionNode)
	assert.True(t, can)

	mul, can := add.Right.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.MUL_OP, mul.Operation.Type)
	assert.Equal(t, "(+ 2 (* 3 4))", add.Literal())
}

func TestParser_Parse_ExponentRightAssociative(t *testing.T) {

	// 2 ^ 3 ^ 2 must parse as (^ 2 (^ 3 2))
	src := `2 ^ 3 ^ 2`
	par := NewParser(src)
	root := par.Parse()

	stmt := root.Statements[0].(*ExpressionStatementNode)
	outer, can := stmt.Expr.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.EXP_OP, outer.Operation.Type)

	inner, can := outer.Right.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.EXP_OP, inner.Operation.Type)
	assert.Equal(t, "(^ 2 (^ 3 2))", outer.Literal())
}

func TestParser_Parse_ComparisonAndEquality(t *testing.T) {

	src := `1 + 2 < 3 == true`
	par := NewParser(src)
	root := par.Parse()

	stmt := root.Statements[0].(*ExpressionStatementNode)
	eq, can := stmt.Expr.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.EQ_OP, eq.Operation.Type)

	less, can := eq.Left.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.LT_OP, less.Operation.Type)
}

func TestParser_Parse_Grouping(t *testing.T) {

	src := `(1 + 2) * 3`
	par := NewParser(src)
	root := par.Parse()

	stmt := root.Statements[0].(*ExpressionStatementNode)
	mul, can := stmt.Expr.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.MUL_OP, mul.Operation.Type)

	group, can := mul.Left.(*ParenthesizedExpressionNode)
	assert.True(t, can)
	add, can := group.Expr.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.PLUS_OP, add.Operation.Type)
}

func TestParser_Parse_UnaryNesting(t *testing.T) {

	src := `not -x`
	par := NewParser(src)
	root := par.Parse()

	stmt := root.Statements[0].(*ExpressionStatementNode)
	not, can := stmt.Expr.(*UnaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.NOT_OP, not.Operation.Type)

	neg, can := not.Right.(*UnaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.MINUS_OP, neg.Operation.Type)
}

func TestParser_Parse_LogicalOperators(t *testing.T) {

	src := `a and b or c`
	par := NewParser(src)
	root := par.Parse()

	stmt := root.Statements[0].(*ExpressionStatementNode)
	or, can := stmt.Expr.(*LogicalExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.OR_KEY, or.Operation.Type)

	and, can := or.Left.(*LogicalExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.AND_KEY, and.Operation.Type)
}

func TestParser_Parse_StringLiteralStripsQuotes(t *testing.T) {

	src := `"hello"`
	par := NewParser(src)
	root := par.Parse()

	stmt := root.Statements[0].(*ExpressionStatementNode)
	str, can := stmt.Expr.(*StringLiteralExpressionNode)
	assert.True(t, can)
	// The lexeme keeps the quotes, the value does not
	assert.Equal(t, `"hello"`, str.Token.Literal)
	assert.Equal(t, "hello", str.Value.(*objects.String).Value)
}

func TestParser_Parse_PrintStatements(t *testing.T) {

	src := `print "x" println 42`
	par := NewParser(src)
	root := par.Parse()
	assert.Equal(t, 2, len(root.Statements))

	_, can := root.Statements[0].(*PrintStatementNode)
	assert.True(t, can)
	_, can = root.Statements[1].(*PrintlnStatementNode)
	assert.True(t, can)
}

func TestParser_Parse_Assignment(t *testing.T) {

	src := `x := 1 + 2`
	par := NewParser(src)
	root := par.Parse()
	assert.Equal(t, 1, len(root.Statements))

	assign, can := root.Statements[0].(*AssignmentStatementNode)
	assert.True(t, can)
	ident, can := assign.Left.(*IdentifierExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "x", ident.Name)
}

func TestParser_Parse_LocalAssignment(t *testing.T) {

	src := `local x := 5`
	par := NewParser(src)
	root := par.Parse()

	assign, can := root.Statements[0].(*LocalAssignmentStatementNode)
	assert.True(t, can)
	assert.Equal(t, "x", assign.Left.(*IdentifierExpressionNode).Name)
}

func TestParser_Parse_LocalIsContextual(t *testing.T) {

	// `local` not followed by `ident :=` is an ordinary identifier
	src := `local := 5`
	par := NewParser(src)
	root := par.Parse()

	assign, can := root.Statements[0].(*AssignmentStatementNode)
	assert.True(t, can)
	assert.Equal(t, "local", assign.Left.(*IdentifierExpressionNode).Name)
}

func TestParser_Parse_IfStatement(t *testing.T) {

	src := `if x > 0 then println x else println 0 end`
	par := NewParser(src)
	root := par.Parse()

	ifStmt, can := root.Statements[0].(*IfStatementNode)
	assert.True(t, can)
	assert.Equal(t, 1, len(ifStmt.Then.Statements))
	assert.Equal(t, 1, len(ifStmt.Else.Statements))
}

func TestParser_Parse_IfWithoutElse(t *testing.T) {

	src := `if true then println 1 end`
	par := NewParser(src)
	root := par.Parse()

	ifStmt, can := root.Statements[0].(*IfStatementNode)
	assert.True(t, can)
	assert.Equal(t, 1, len(ifStmt.Then.Statements))
	assert.Equal(t, 0, len(ifStmt.Else.Statements))
}

func TestParser_Parse_WhileStatement(t *testing.T) {

	src := `while i < 10 then i := i + 1 end`
	par := NewParser(src)
	root := par.Parse()

	while, can := root.Statements[0].(*WhileStatementNode)
	assert.True(t, can)
	assert.Equal(t, 1, len(while.Body.Statements))
}

func TestParser_Parse_ForStatementDefaultStep(t *testing.T) {

	src := `for i := 1, 10 then println i end`
	par := NewParser(src)
	root := par.Parse()

	forStmt, can := root.Statements[0].(*ForStatementNode)
	assert.True(t, can)
	assert.Equal(t, "i", forStmt.Identifier.Name)

	// default step is the synthesized literal 1
	step, can := forStmt.Step.(*IntegerLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, float64(1), step.Value.(*objects.Number).Value)
}

func TestParser_Parse_ForStatementExplicitStep(t *testing.T) {

	src := `for i := 10, 0, -2 then println i end`
	par := NewParser(src)
	root := par.Parse()

	forStmt, can := root.Statements[0].(*ForStatementNode)
	assert.True(t, can)
	_, can = forStmt.Step.(*UnaryExpressionNode)
	assert.True(t, can)
}

func TestParser_Parse_FunctionDeclaration(t *testing.T) {

	src := `func add(a, b) ret a + b end`
	par := NewParser(src)
	root := par.Parse()

	fn, can := root.Statements[0].(*FunctionStatementNode)
	assert.True(t, can)
	assert.Equal(t, "add", fn.Name.Name)
	assert.Equal(t, 2, len(fn.Params))
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.Equal(t, "b", fn.Params[1].Name)
	assert.Equal(t, 1, len(fn.Body.Statements))

	_, can = fn.Body.Statements[0].(*ReturnStatementNode)
	assert.True(t, can)
}

func TestParser_Parse_FunctionDeclarationNoParams(t *testing.T) {

	src := `func hello() println "hi" end`
	par := NewParser(src)
	root := par.Parse()

	fn, can := root.Statements[0].(*FunctionStatementNode)
	assert.True(t, can)
	assert.Equal(t, 0, len(fn.Params))
}

func TestParser_Parse_CallStatementAndExpression(t *testing.T) {

	src := `f(1, 2) x := g()`
	par := NewParser(src)
	root := par.Parse()
	assert.Equal(t, 2, len(root.Statements))

	call, can := root.Statements[0].(*FunctionCallStatementNode)
	assert.True(t, can)
	assert.Equal(t, "f", call.Call.Name)
	assert.Equal(t, 2, len(call.Call.Args))

	assign, can := root.Statements[1].(*AssignmentStatementNode)
	assert.True(t, can)
	callExpr, can := assign.Right.(*CallExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "g", callExpr.Name)
	assert.Equal(t, 0, len(callExpr.Args))
}

func TestParser_Parse_CallArgumentsAreFullExpressions(t *testing.T) {

	src := `f(a and b, 1 + 2)`
	par := NewParser(src)
	root := par.Parse()

	call := root.Statements[0].(*FunctionCallStatementNode).Call
	assert.Equal(t, 2, len(call.Args))
	_, can := call.Args[0].(*LogicalExpressionNode)
	assert.True(t, can)
	_, can = call.Args[1].(*BinaryExpressionNode)
	assert.True(t, can)
}

// assertParsePanics runs the parser over src and requires a panic whose
// message contains the expected fragment.
func assertParsePanics(t *testing.T, src string, expected string) {
	t.Helper()
	defer func() {
		recovered := recover()
		if recovered == nil {
			t.Fatalf("expected a parse panic for %q", src)
		}
		assert.Contains(t, recovered.(string), expected, "input %q", src)
	}()
	NewParser(src).Parse()
}

func TestParser_Parse_Errors(t *testing.T) {
	assertParsePanics(t, `if true then println 1`, "expected 'end'")
	assertParsePanics(t, `while true println 1 end`, "expected 'then'")
	assertParsePanics(t, `(1 + 2`, "missing closing parenthesis")
	assertParsePanics(t, `end`, "unexpected token 'end'")
	assertParsePanics(t, `1 := 2`, "assignment target must be an identifier")
	assertParsePanics(t, `for 1 := 1, 2 then end`, "expected 'Identifier'")
	assertParsePanics(t, `func f(1) end`, "expected 'Identifier'")
	assertParsePanics(t, `f(1,`, "end of input")
}
