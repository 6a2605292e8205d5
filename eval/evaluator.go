/*
File    : go-pinky/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator of the Pinky
// interpreter. The evaluator recursively walks the AST produced by the
// parser, maintaining a chain of scope frames for variable and function
// bindings, and writes program output to an injected writer.
//
// All runtime errors are fatal: the evaluator panics with a diagnostic
// carrying the source line where available. The process drivers (file
// runner, REPL, server) decide whether to exit or recover; no error
// values cross this package's API, because the language itself has no
// error type.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/go-pinky/objects"
	"github.com/akashmaji946/go-pinky/parser"
	"github.com/akashmaji946/go-pinky/scope"
)

// Evaluator holds the state for evaluating Pinky AST nodes: the current
// scope frame and the output writer used by print/println.
type Evaluator struct {
	Scp    *scope.Scope // Current frame; starts at the root frame of the run
	Writer io.Writer    // Output destination for print statements (default: os.Stdout)
}

// NewEvaluator creates and initializes a new Evaluator with a fresh root
// scope and stdout as the output writer.
//
// Returns:
//   - *Evaluator: A fully initialized evaluator ready to execute Pinky code
//
// Example usage:
//
//	ev := NewEvaluator()
//	result := ev.Eval(parser.NewParser(src).Parse())
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Scp:    scope.NewScope(nil),
		Writer: os.Stdout,
	}
}

// SetWriter configures the output destination for print statements.
//
// This allows redirecting program output to any io.Writer implementation,
// which is how the tests capture and verify output, and how the REPL
// server routes output to a network connection.
//
// Parameters:
//   - w: An io.Writer that will receive the output of print/println
//
// Example usage:
//
//	var buf bytes.Buffer
//	ev.SetWriter(&buf)  // Capture output for testing
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// RegisterFunction stores a function declaration in the current frame's
// function table and produces null. A redeclaration in the same frame
// replaces the previous entry.
//
// Parameters:
//   - n: The FunctionStatementNode to register
//
// Returns:
//   - objects.PinkyObject: always Null
func (e *Evaluator) RegisterFunction(n *parser.FunctionStatementNode) objects.PinkyObject {
	e.Scp.BindFunction(n.Name.Name, n)
	return &objects.Null{}
}

// evalCallExpression invokes a function by name.
//
// The invocation protocol:
//  1. Resolve the declaration by walking the scope chain's function tables;
//     an unknown function is fatal.
//  2. Check the argument count against the declared parameter list;
//     a mismatch is fatal.
//  3. Create the call frame as a child of the frame at the call site, so
//     free variables in the body resolve through the caller's chain.
//  4. Evaluate each argument in the caller's frame and bind the result
//     under the parameter name in the call frame.
//  5. Evaluate the body in the call frame. A return marker produced by
//     `ret` is unwrapped here and only here, which is what makes `ret` at
//     arbitrary nesting exit the function; a body that falls off the end
//     yields its last statement's value (typically null).
//
// Parameters:
//   - n: The call expression naming the callee and its arguments
//
// Returns:
//   - objects.PinkyObject: The function's result
func (e *Evaluator) evalCallExpression(n *parser.CallExpressionNode) objects.PinkyObject {
	decl, ok := e.Scp.LookUpFunction(n.Name)
	if !ok {
		e.fatalf(n.Token.Line, "function not found: (%s)", n.Name)
	}
	if len(n.Args) != len(decl.Params) {
		e.fatalf(n.Token.Line, "wrong number of arguments to '%s': expected %d, got %d",
			n.Name, len(decl.Params), len(n.Args))
	}

	// The call frame hangs off the caller's frame; arguments are
	// evaluated in the caller's frame before the switch happens.
	callScope := scope.NewScope(e.Scp)
	for i, param := range decl.Params {
		callScope.Bind(param.Name, e.Eval(n.Args[i]))
	}

	oldScope := e.Scp
	e.Scp = callScope
	result := e.evalStatements(decl.Body.Statements)
	e.Scp = oldScope

	return UnwrapReturnValue(result)
}

// fatalf aborts evaluation with a formatted runtime diagnostic tagged
// with the given source line. The panic is recovered (or not) by the
// process drivers.
func (e *Evaluator) fatalf(line int, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	panic(fmt.Sprintf("[Line %d] Runtime Error: %s", line, msg))
}
