/*
File    : go-pinky/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"
	"strings"

	"github.com/akashmaji946/go-pinky/lexer"
	"github.com/akashmaji946/go-pinky/objects"
	"github.com/akashmaji946/go-pinky/parser"
)

// Eval is the main evaluation dispatch. It takes any AST node and
// recursively computes its runtime value, performing side effects
// (output, scope mutation) along the way. Statements generally produce
// null; expressions produce their computed value; `ret` produces the
// internal return marker that unwinds to the nearest call site.
//
// Parameters:
//   - n: The AST node to evaluate
//
// Returns:
//   - objects.PinkyObject: The result of evaluating the node
func (e *Evaluator) Eval(n parser.Node) objects.PinkyObject {
	switch n := n.(type) {
	case *parser.RootNode:
		result := e.evalStatements(n.Statements)
		return UnwrapReturnValue(result)
	case *parser.BlockStatementNode:
		return e.evalStatements(n.Statements)

	// Literals carry their runtime value from the parser
	case *parser.IntegerLiteralExpressionNode:
		return n.Value
	case *parser.FloatLiteralExpressionNode:
		return n.Value
	case *parser.BooleanLiteralExpressionNode:
		return n.Value
	case *parser.StringLiteralExpressionNode:
		return n.Value
	case *parser.NullLiteralExpressionNode:
		return &objects.Null{}

	// Expressions
	case *parser.IdentifierExpressionNode:
		return e.evalIdentifierExpression(n)
	case *parser.ParenthesizedExpressionNode:
		// Grouping is transparent at evaluation time
		return e.Eval(n.Expr)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(n)
	case *parser.LogicalExpressionNode:
		return e.evalLogicalExpression(n)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(n)

	// Statements
	case *parser.PrintStatementNode:
		return e.evalPrintStatement(n)
	case *parser.PrintlnStatementNode:
		return e.evalPrintlnStatement(n)
	case *parser.AssignmentStatementNode:
		return e.evalAssignmentStatement(n)
	case *parser.LocalAssignmentStatementNode:
		return e.evalLocalAssignmentStatement(n)
	case *parser.IfStatementNode:
		return e.evalIfStatement(n)
	case *parser.WhileStatementNode:
		return e.evalWhileStatement(n)
	case *parser.ForStatementNode:
		return e.evalForStatement(n)
	case *parser.FunctionStatementNode:
		return e.RegisterFunction(n)
	case *parser.ParameterNode:
		// A parameter evaluated standalone has no runtime effect
		return &objects.Null{}
	case *parser.FunctionCallStatementNode:
		return e.Eval(n.Call)
	case *parser.ExpressionStatementNode:
		return e.Eval(n.Expr)
	case *parser.ReturnStatementNode:
		return &objects.ReturnValue{Value: e.Eval(n.Value)}

	default:
		panic("Runtime Error: unknown AST node")
	}
}

// evalIdentifierExpression resolves a variable reference through the
// scope chain. An unbound identifier is fatal.
func (e *Evaluator) evalIdentifierExpression(n *parser.IdentifierExpressionNode) objects.PinkyObject {
	obj, ok := e.Scp.LookUp(n.Name)
	if !ok {
		e.fatalf(n.Token.Line, "identifier not found: (%s)", n.Name)
	}
	return obj
}

// evalUnaryExpression evaluates the operand, then applies the prefix
// operator: `-` and `+` require a number, `not`/`~` requires a boolean.
// Any other combination is fatal.
func (e *Evaluator) evalUnaryExpression(n *parser.UnaryExpressionNode) objects.PinkyObject {
	operand := e.Eval(n.Right)
	switch n.Operation.Type {
	case lexer.MINUS_OP:
		if num, ok := operand.(*objects.Number); ok {
			return &objects.Number{Value: -num.Value}
		}
	case lexer.PLUS_OP:
		if num, ok := operand.(*objects.Number); ok {
			return &objects.Number{Value: num.Value}
		}
	case lexer.NOT_OP:
		if b, ok := operand.(*objects.Boolean); ok {
			return &objects.Boolean{Value: !b.Value}
		}
	}
	e.fatalf(n.Operation.Line, "incompatible operation: %s%s", n.Operation.Literal, operand.GetType())
	return nil
}

// evalLogicalExpression implements short-circuit `and`/`or`.
//
// The left operand is always evaluated. For `or`, a boolean true left
// operand decides the result without touching the right operand; for
// `and`, a boolean false left operand does. In every other case the
// result is the right operand's value, returned raw without coercion.
func (e *Evaluator) evalLogicalExpression(n *parser.LogicalExpressionNode) objects.PinkyObject {
	left := e.Eval(n.Left)
	if n.Operation.Type == lexer.OR_KEY {
		if b, ok := left.(*objects.Boolean); ok && b.Value {
			return &objects.Boolean{Value: true}
		}
	}
	if n.Operation.Type == lexer.AND_KEY {
		if b, ok := left.(*objects.Boolean); ok && !b.Value {
			return &objects.Boolean{Value: false}
		}
	}
	return e.Eval(n.Right)
}

// evalBinaryExpression evaluates both operands left to right, then
// dispatches on the pair of runtime types to apply the language's
// cross-type coercion rules:
//
//	number op number  -> arithmetic (+ - * / % ^) and comparisons
//	number + string   -> string concatenation (number formatted first)
//	number * string   -> string repetition (non-negative whole count)
//	bool   vs bool    -> equality only
//	bool   vs number  -> equality and + - * / with the bool as 0/1
//	string vs string  -> concatenation and equality
//	string vs number  -> concatenation, repetition, mirrored
//
// `%` is true modulo: the result carries the sign of the divisor. Any
// combination outside the matrix is fatal.
func (e *Evaluator) evalBinaryExpression(n *parser.BinaryExpressionNode) objects.PinkyObject {
	left := e.Eval(n.Left)
	right := e.Eval(n.Right)
	op := n.Operation

	switch l := left.(type) {
	case *objects.Number:
		switch r := right.(type) {
		case *objects.Number:
			return e.numberNumberOp(op, l.Value, r.Value)
		case *objects.String:
			return e.numberStringOp(op, l, r)
		case *objects.Boolean:
			return e.numberBoolOp(op, l.Value, r.Value)
		}
	case *objects.Boolean:
		switch r := right.(type) {
		case *objects.Boolean:
			return e.boolBoolOp(op, l.Value, r.Value)
		case *objects.Number:
			return e.boolNumberOp(op, l.Value, r.Value)
		}
	case *objects.String:
		switch r := right.(type) {
		case *objects.String:
			return e.stringStringOp(op, l, r)
		case *objects.Number:
			return e.stringNumberOp(op, l, r)
		}
	}
	e.fatalf(op.Line, "incompatible operation: %s %s %s", left.GetType(), op.Literal, right.GetType())
	return nil
}

// numberNumberOp applies an operator to two numbers: the six arithmetic
// operators yield a number, the six comparisons yield a boolean.
func (e *Evaluator) numberNumberOp(op lexer.Token, l, r float64) objects.PinkyObject {
	switch op.Type {
	case lexer.PLUS_OP:
		return &objects.Number{Value: l + r}
	case lexer.MINUS_OP:
		return &objects.Number{Value: l - r}
	case lexer.MUL_OP:
		return &objects.Number{Value: l * r}
	case lexer.DIV_OP:
		return &objects.Number{Value: l / r}
	case lexer.MOD_OP:
		return &objects.Number{Value: trueModulo(l, r)}
	case lexer.EXP_OP:
		return &objects.Number{Value: math.Pow(l, r)}
	case lexer.EQ_OP:
		return &objects.Boolean{Value: l == r}
	case lexer.NE_OP:
		return &objects.Boolean{Value: l != r}
	case lexer.LT_OP:
		return &objects.Boolean{Value: l < r}
	case lexer.LE_OP:
		return &objects.Boolean{Value: l <= r}
	case lexer.GT_OP:
		return &objects.Boolean{Value: l > r}
	case lexer.GE_OP:
		return &objects.Boolean{Value: l >= r}
	}
	e.fatalf(op.Line, "incompatible operation: number %s number", op.Literal)
	return nil
}

// numberStringOp applies an operator with a number on the left and a
// string on the right: `+` concatenates the formatted number with the
// string, `*` repeats the string when the number is a non-negative whole.
func (e *Evaluator) numberStringOp(op lexer.Token, l *objects.Number, r *objects.String) objects.PinkyObject {
	switch op.Type {
	case lexer.PLUS_OP:
		return &objects.String{Value: l.ToString() + r.Value}
	case lexer.MUL_OP:
		if isWholeNonNegative(l.Value) {
			return &objects.String{Value: strings.Repeat(r.Value, int(math.Ceil(l.Value)))}
		}
	}
	e.fatalf(op.Line, "incompatible operation: number %s string", op.Literal)
	return nil
}

// numberBoolOp applies an operator with a number on the left and a
// boolean on the right; the boolean coerces to 0/1.
func (e *Evaluator) numberBoolOp(op lexer.Token, l float64, r bool) objects.PinkyObject {
	rv := boolToNumber(r)
	switch op.Type {
	case lexer.EQ_OP:
		return &objects.Boolean{Value: l == rv}
	case lexer.NE_OP:
		return &objects.Boolean{Value: l != rv}
	case lexer.PLUS_OP:
		return &objects.Number{Value: l + rv}
	case lexer.MINUS_OP:
		return &objects.Number{Value: l - rv}
	case lexer.MUL_OP:
		return &objects.Number{Value: l * rv}
	case lexer.DIV_OP:
		return &objects.Number{Value: l / rv}
	}
	e.fatalf(op.Line, "incompatible operation: number %s bool", op.Literal)
	return nil
}

// boolBoolOp applies an operator to two booleans; only equality is
// defined.
func (e *Evaluator) boolBoolOp(op lexer.Token, l, r bool) objects.PinkyObject {
	switch op.Type {
	case lexer.EQ_OP:
		return &objects.Boolean{Value: l == r}
	case lexer.NE_OP:
		return &objects.Boolean{Value: l != r}
	}
	e.fatalf(op.Line, "incompatible operation: bool %s bool", op.Literal)
	return nil
}

// boolNumberOp applies an operator with a boolean on the left and a
// number on the right; the boolean coerces to 0/1.
func (e *Evaluator) boolNumberOp(op lexer.Token, l bool, r float64) objects.PinkyObject {
	lv := boolToNumber(l)
	switch op.Type {
	case lexer.EQ_OP:
		return &objects.Boolean{Value: lv == r}
	case lexer.NE_OP:
		return &objects.Boolean{Value: lv != r}
	case lexer.PLUS_OP:
		return &objects.Number{Value: lv + r}
	case lexer.MINUS_OP:
		return &objects.Number{Value: lv - r}
	case lexer.MUL_OP:
		return &objects.Number{Value: lv * r}
	case lexer.DIV_OP:
		return &objects.Number{Value: lv / r}
	}
	e.fatalf(op.Line, "incompatible operation: bool %s number", op.Literal)
	return nil
}

// stringStringOp applies an operator to two strings: concatenation and
// equality.
func (e *Evaluator) stringStringOp(op lexer.Token, l, r *objects.String) objects.PinkyObject {
	switch op.Type {
	case lexer.PLUS_OP:
		return &objects.String{Value: l.Value + r.Value}
	case lexer.EQ_OP:
		return &objects.Boolean{Value: l.Value == r.Value}
	case lexer.NE_OP:
		return &objects.Boolean{Value: l.Value != r.Value}
	}
	e.fatalf(op.Line, "incompatible operation: string %s string", op.Literal)
	return nil
}

// stringNumberOp applies an operator with a string on the left and a
// number on the right: `+` appends the formatted number, `*` repeats the
// string when the number is a non-negative whole.
func (e *Evaluator) stringNumberOp(op lexer.Token, l *objects.String, r *objects.Number) objects.PinkyObject {
	switch op.Type {
	case lexer.PLUS_OP:
		return &objects.String{Value: l.Value + r.ToString()}
	case lexer.MUL_OP:
		if isWholeNonNegative(r.Value) {
			return &objects.String{Value: strings.Repeat(l.Value, int(math.Ceil(r.Value)))}
		}
	}
	e.fatalf(op.Line, "incompatible operation: string %s number", op.Literal)
	return nil
}
