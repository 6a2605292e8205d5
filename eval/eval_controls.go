/*
File    : go-pinky/eval/eval_controls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-pinky/objects"
	"github.com/akashmaji946/go-pinky/parser"
	"github.com/akashmaji946/go-pinky/scope"
)

// evalIfStatement evaluates the test in the current frame, then runs the
// chosen branch in a fresh child frame. A return marker produced by the
// test or by the branch propagates to the enclosing list.
func (e *Evaluator) evalIfStatement(n *parser.IfStatementNode) objects.PinkyObject {
	test := e.Eval(n.Test)
	if IsReturn(test) {
		return test
	}

	branch := n.Then
	if !e.truthy(test, n.Token.Line) {
		branch = n.Else
	}

	oldScope := e.Scp
	e.Scp = scope.NewScope(oldScope)
	result := e.evalStatements(branch.Statements)
	e.Scp = oldScope
	return result
}

// evalWhileStatement opens one child frame for the whole loop and
// re-evaluates the test in it before every iteration. Because the frame
// is shared across iterations, variables set inside the body persist
// from one iteration to the next. A return marker from the body exits
// the loop and propagates.
func (e *Evaluator) evalWhileStatement(n *parser.WhileStatementNode) objects.PinkyObject {
	oldScope := e.Scp
	e.Scp = scope.NewScope(oldScope)

	var result objects.PinkyObject = &objects.Null{}
	for e.truthy(e.Eval(n.Test), n.Token.Line) {
		bodyResult := e.evalStatements(n.Body.Statements)
		if IsReturn(bodyResult) {
			result = bodyResult
			break
		}
	}

	e.Scp = oldScope
	return result
}

// evalForStatement implements the counted loop:
//
//	for i := start, end [, step] then body end
//
// One child frame holds the loop variable and is shared across
// iterations. Start, end and step are evaluated once, in that order, and
// must be numbers. Before each iteration the loop variable is re-read
// (the body may have reassigned it) and the termination predicate
//
//	(start >= end && cur <= end) || (start <= end && cur >= end)
//
// is applied; when it holds, the loop exits. Otherwise the body runs, a
// return marker propagates, and the variable is rebound to cur + step.
//
// Known edge: when start == end the loop exits before the first
// iteration, and a step with the wrong sign for the direction never
// terminates.
func (e *Evaluator) evalForStatement(n *parser.ForStatementNode) objects.PinkyObject {
	oldScope := e.Scp
	loopScope := scope.NewScope(oldScope)
	e.Scp = loopScope

	start := e.toNumber(e.Eval(n.Start), n.Token.Line)
	loopScope.Bind(n.Identifier.Name, &objects.Number{Value: start})
	end := e.toNumber(e.Eval(n.End), n.Token.Line)
	step := e.toNumber(e.Eval(n.Step), n.Token.Line)

	var result objects.PinkyObject = &objects.Null{}
	for {
		current, _ := loopScope.LookUp(n.Identifier.Name)
		cur := e.toNumber(current, n.Token.Line)
		if (start >= end && cur <= end) || (start <= end && cur >= end) {
			break
		}
		bodyResult := e.evalStatements(n.Body.Statements)
		if IsReturn(bodyResult) {
			result = bodyResult
			break
		}
		loopScope.Bind(n.Identifier.Name, &objects.Number{Value: cur + step})
	}

	e.Scp = oldScope
	return result
}

// truthy maps a runtime value to the boolean used in test position:
// a boolean is itself, a number is true when non-zero, a string is true
// when non-empty. Null in test position is fatal.
func (e *Evaluator) truthy(obj objects.PinkyObject, line int) bool {
	switch v := obj.(type) {
	case *objects.Boolean:
		return v.Value
	case *objects.Number:
		return v.Value != 0.0
	case *objects.String:
		return v.Value != ""
	case *objects.Null:
		e.fatalf(line, "null value used as a condition")
	}
	e.fatalf(line, "value of type %s used as a condition", obj.GetType())
	return false
}

// toNumber extracts the float value of a number object, failing fatally
// for any other type. Used where the language requires numbers (for-loop
// bounds and the loop variable).
func (e *Evaluator) toNumber(obj objects.PinkyObject, line int) float64 {
	num, ok := obj.(*objects.Number)
	if !ok {
		e.fatalf(line, "expected a number, got %s", obj.GetType())
	}
	return num.Value
}
