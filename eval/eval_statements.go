/*
File    : go-pinky/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/go-pinky/objects"
	"github.com/akashmaji946/go-pinky/parser"
)

// evalStatements evaluates an ordered statement list and returns its
// result: the value of the last statement, or null for an empty list.
//
// This is where return unwinding happens. Each statement's result is
// inspected, and the first return marker stops the list immediately and
// becomes its result, so `ret` inside arbitrarily nested blocks unwinds
// through every enclosing list until a function call site unwraps it.
// No statement after the returning one executes.
func (e *Evaluator) evalStatements(statements []parser.StatementNode) objects.PinkyObject {
	var result objects.PinkyObject = &objects.Null{}
	for _, stmt := range statements {
		result = e.Eval(stmt)
		if IsReturn(result) {
			return result
		}
	}
	return result
}

// evalPrintStatement writes the value's display form with no trailing
// character and produces null.
func (e *Evaluator) evalPrintStatement(n *parser.PrintStatementNode) objects.PinkyObject {
	value := e.Eval(n.Value)
	fmt.Fprint(e.Writer, value.ToString())
	return &objects.Null{}
}

// evalPrintlnStatement writes the value's display form followed by a
// newline and produces null.
func (e *Evaluator) evalPrintlnStatement(n *parser.PrintlnStatementNode) objects.PinkyObject {
	value := e.Eval(n.Value)
	fmt.Fprint(e.Writer, value.ToString()+"\n")
	return &objects.Null{}
}

// evalAssignmentStatement implements `name := expr`, which walks the
// scope chain: if any frame from the innermost outward already holds the
// name, that frame is rebound in place; otherwise the binding is created
// in the innermost frame. This is what lets a function body rebind a
// global without any declaration syntax.
func (e *Evaluator) evalAssignmentStatement(n *parser.AssignmentStatementNode) objects.PinkyObject {
	ident, ok := n.Left.(*parser.IdentifierExpressionNode)
	if !ok {
		// The parser guarantees this; a violation is an interpreter bug
		panic(fmt.Sprintf("Runtime Error: assignment target is not an identifier: %s", n.Left.Literal()))
	}
	value := e.Eval(n.Right)
	if !e.Scp.Assign(ident.Name, value) {
		e.Scp.Bind(ident.Name, value)
	}
	return &objects.Null{}
}

// evalLocalAssignmentStatement implements `local name := expr`, which
// always binds in the innermost frame, shadowing without mutating any
// enclosing binding.
func (e *Evaluator) evalLocalAssignmentStatement(n *parser.LocalAssignmentStatementNode) objects.PinkyObject {
	ident, ok := n.Left.(*parser.IdentifierExpressionNode)
	if !ok {
		panic(fmt.Sprintf("Runtime Error: assignment target is not an identifier: %s", n.Left.Literal()))
	}
	e.Scp.Bind(ident.Name, e.Eval(n.Right))
	return &objects.Null{}
}
