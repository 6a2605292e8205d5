/*
File    : go-pinky/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"

	"github.com/akashmaji946/go-pinky/lexer"
	"github.com/akashmaji946/go-pinky/objects"
)

// NodeVisitor: implements the Visitor design pattern for traversing the
// Abstract Syntax Tree (AST). Each Visit method processes a specific node
// type, enabling operations like printing or transformation without
// switching on node types at every call site.
type NodeVisitor interface {
	VisitRootNode(node RootNode) // Entry point for visiting the entire program

	// Literal value visitors - handle primitive data types
	VisitIntegerLiteralExpressionNode(node IntegerLiteralExpressionNode) // Integer literals: 42, 0
	VisitFloatLiteralExpressionNode(node FloatLiteralExpressionNode)     // Float literals: 3.14
	VisitBooleanLiteralExpressionNode(node BooleanLiteralExpressionNode) // Boolean literals: true, false
	VisitStringLiteralExpressionNode(node StringLiteralExpressionNode)   // String literals: "hello", 'world'
	VisitNullLiteralExpressionNode(node NullLiteralExpressionNode)       // The null literal

	// Expression visitors - handle operations and computations
	VisitIdentifierExpressionNode(node IdentifierExpressionNode)       // Variable/function names: x, count
	VisitParenthesizedExpressionNode(node ParenthesizedExpressionNode) // Parenthesized expressions: (expr)
	VisitUnaryExpressionNode(node UnaryExpressionNode)                 // Unary operations: -x, +x, not x
	VisitBinaryExpressionNode(node BinaryExpressionNode)               // Binary operations: + - * / % ^ and comparisons
	VisitLogicalExpressionNode(node LogicalExpressionNode)             // Short-circuit operations: and, or
	VisitCallExpressionNode(node CallExpressionNode)                   // Function calls: f(a, b)

	// Statement visitors
	VisitPrintStatementNode(node PrintStatementNode)                     // print expr
	VisitPrintlnStatementNode(node PrintlnStatementNode)                 // println expr
	VisitAssignmentStatementNode(node AssignmentStatementNode)           // x := expr (walks up to the nearest binding)
	VisitLocalAssignmentStatementNode(node LocalAssignmentStatementNode) // local x := expr (innermost scope)
	VisitIfStatementNode(node IfStatementNode)                           // if test then ... [else ...] end
	VisitWhileStatementNode(node WhileStatementNode)                     // while test then ... end
	VisitForStatementNode(node ForStatementNode)                         // for i := start, end [, step] then ... end
	VisitFunctionStatementNode(node FunctionStatementNode)               // func name(params) ... end
	VisitParameterNode(node ParameterNode)                               // A single declared parameter name
	VisitFunctionCallStatementNode(node FunctionCallStatementNode)       // A bare call in statement position
	VisitExpressionStatementNode(node ExpressionStatementNode)           // A bare expression in statement position
	VisitReturnStatementNode(node ReturnStatementNode)                   // ret expr
	VisitBlockStatementNode(node BlockStatementNode)                     // A statement list forming a block body
}

// Node: base interface for all nodes of the AST
// Literal(): returns the string representation of the node
// Accept(): accepts a visitor
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
}

// StatementNode: base interface for all statement nodes
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes.
// Every expression is also usable in statement position through the
// ExpressionStatementNode wrapper, but the marker methods keep the two
// sums distinct for the parser and the evaluator.
type ExpressionNode interface {
	Node
	Expression()
}

// RootNode: represents the root of the AST (the program node)
// Statements: the top-level statement list of the program
type RootNode struct {
	Statements []StatementNode // every line of code is a statement
}

// RootNode.Literal(): string representation of the whole program
func (root *RootNode) Literal() string {
	var sb strings.Builder
	for _, stmt := range root.Statements {
		sb.WriteString(stmt.Literal())
		sb.WriteString(";")
	}
	return sb.String()
}

// RootNode.Accept(): accepts a visitor (e.g. the AST printer)
func (root *RootNode) Accept(visitor NodeVisitor) {
	visitor.VisitRootNode(*root)
}

// IntegerLiteralExpressionNode: represents an integer number literal.
// Integer values widen to the language's single float-backed number type
// when the node is built, so Value always holds an objects.Number.
// Example: 42, 0
type IntegerLiteralExpressionNode struct {
	Token lexer.Token         // The integer token with its literal text
	Value objects.PinkyObject // The widened number value
}

// IntegerLiteralExpressionNode.Literal(): string representation of the node
func (node *IntegerLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// IntegerLiteralExpressionNode.Accept(): accepts a visitor
func (node *IntegerLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIntegerLiteralExpressionNode(*node)
}

// IntegerLiteralExpressionNode.Expression(): marker method
func (node *IntegerLiteralExpressionNode) Expression() {
}

// FloatLiteralExpressionNode: represents a floating-point number literal
// Example: 3.14, 0.5
type FloatLiteralExpressionNode struct {
	Token lexer.Token         // The float token with its literal text
	Value objects.PinkyObject // The number value
}

// FloatLiteralExpressionNode.Literal(): string representation of the node
func (node *FloatLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// FloatLiteralExpressionNode.Accept(): accepts a visitor
func (node *FloatLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitFloatLiteralExpressionNode(*node)
}

// FloatLiteralExpressionNode.Expression(): marker method
func (node *FloatLiteralExpressionNode) Expression() {
}

// BooleanLiteralExpressionNode: represents a boolean literal
// Example: true, false
type BooleanLiteralExpressionNode struct {
	Token lexer.Token         // The `true` or `false` keyword token
	Value objects.PinkyObject // The boolean value
}

// BooleanLiteralExpressionNode.Literal(): string representation of the node
func (node *BooleanLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// BooleanLiteralExpressionNode.Accept(): accepts a visitor
func (node *BooleanLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBooleanLiteralExpressionNode(*node)
}

// BooleanLiteralExpressionNode.Expression(): marker method
func (node *BooleanLiteralExpressionNode) Expression() {
}

// StringLiteralExpressionNode: represents a string literal. The value is
// stored without the surrounding quotes of the lexeme; escape sequences
// remain raw until display time.
// Example: "hello", 'world'
type StringLiteralExpressionNode struct {
	Token lexer.Token         // The string token; its lexeme keeps the quotes
	Value objects.PinkyObject // The unquoted string value
}

// StringLiteralExpressionNode.Literal(): string representation of the node
func (node *StringLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// StringLiteralExpressionNode.Accept(): accepts a visitor
func (node *StringLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitStringLiteralExpressionNode(*node)
}

// StringLiteralExpressionNode.Expression(): marker method
func (node *StringLiteralExpressionNode) Expression() {
}

// NullLiteralExpressionNode: represents the `null` keyword in expression
// position
type NullLiteralExpressionNode struct {
	Token lexer.Token // The `null` keyword token
}

// NullLiteralExpressionNode.Literal(): string representation of the node
func (node *NullLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// NullLiteralExpressionNode.Accept(): accepts a visitor
func (node *NullLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitNullLiteralExpressionNode(*node)
}

// NullLiteralExpressionNode.Expression(): marker method
func (node *NullLiteralExpressionNode) Expression() {
}

// IdentifierExpressionNode: represents a variable or function reference
// Example: x, counter, my_func
type IdentifierExpressionNode struct {
	Token lexer.Token // The identifier token
	Name  string      // The identifier text
}

// IdentifierExpressionNode.Literal(): string representation of the node
func (node *IdentifierExpressionNode) Literal() string {
	return node.Name
}

// IdentifierExpressionNode.Accept(): accepts a visitor
func (node *IdentifierExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIdentifierExpressionNode(*node)
}

// IdentifierExpressionNode.Expression(): marker method
func (node *IdentifierExpressionNode) Expression() {
}

// ParenthesizedExpressionNode: represents an explicitly parenthesized
// expression. The grouping is preserved in the tree so display and
// debugging stay faithful to the source; evaluation is transparent.
// Example: (1 + 2)
type ParenthesizedExpressionNode struct {
	Expr ExpressionNode // The inner expression
}

// ParenthesizedExpressionNode.Literal(): string representation of the node
func (node *ParenthesizedExpressionNode) Literal() string {
	return "(" + node.Expr.Literal() + ")"
}

// ParenthesizedExpressionNode.Accept(): accepts a visitor
func (node *ParenthesizedExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitParenthesizedExpressionNode(*node)
}

// ParenthesizedExpressionNode.Expression(): marker method
func (node *ParenthesizedExpressionNode) Expression() {
}

// UnaryExpressionNode: represents a prefix operation
// Example: -x, +x, not flag, ~flag
type UnaryExpressionNode struct {
	Operation lexer.Token    // The operator token (-, +, ~ / not)
	Right     ExpressionNode // The operand
}

// UnaryExpressionNode.Literal(): string representation of the node
func (node *UnaryExpressionNode) Literal() string {
	return "(" + node.Operation.Literal + " " + node.Right.Literal() + ")"
}

// UnaryExpressionNode.Accept(): accepts a visitor
func (node *UnaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitUnaryExpressionNode(*node)
}

// UnaryExpressionNode.Expression(): marker method
func (node *UnaryExpressionNode) Expression() {
}

// BinaryExpressionNode: represents an arithmetic, comparison or equality
// operation with both children always populated
// Example: a + b, x <= 10, s ~= "done"
type BinaryExpressionNode struct {
	Operation lexer.Token    // The operator token
	Left      ExpressionNode // Left operand
	Right     ExpressionNode // Right operand
}

// BinaryExpressionNode.Literal(): string representation of the node
func (node *BinaryExpressionNode) Literal() string {
	return "(" + node.Operation.Literal + " " + node.Left.Literal() + " " + node.Right.Literal() + ")"
}

// BinaryExpressionNode.Accept(): accepts a visitor
func (node *BinaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBinaryExpressionNode(*node)
}

// BinaryExpressionNode.Expression(): marker method
func (node *BinaryExpressionNode) Expression() {
}

// LogicalExpressionNode: represents `and` / `or`. Kept distinct from
// BinaryExpressionNode because these operators short-circuit: the right
// operand may never be evaluated.
// Example: a and b, done or retry
type LogicalExpressionNode struct {
	Operation lexer.Token    // The `and` or `or` keyword token
	Left      ExpressionNode // Left operand, always evaluated
	Right     ExpressionNode // Right operand, evaluated only when needed
}

// LogicalExpressionNode.Literal(): string representation of the node
func (node *LogicalExpressionNode) Literal() string {
	return "(" + node.Operation.Literal + " " + node.Left.Literal() + " " + node.Right.Literal() + ")"
}

// LogicalExpressionNode.Accept(): accepts a visitor
func (node *LogicalExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitLogicalExpressionNode(*node)
}

// LogicalExpressionNode.Expression(): marker method
func (node *LogicalExpressionNode) Expression() {
}

// CallExpressionNode: represents a function invocation by name with a
// list of argument expressions
// Example: add(1, 2), fib(n - 1)
type CallExpressionNode struct {
	Token lexer.Token      // The function name token (for line info)
	Name  string           // The callee name
	Args  []ExpressionNode // Argument expressions, evaluated in the caller's frame
}

// CallExpressionNode.Literal(): string representation of the node
func (node *CallExpressionNode) Literal() string {
	args := make([]string, 0, len(node.Args))
	for _, arg := range node.Args {
		args = append(args, arg.Literal())
	}
	return node.Name + "(" + strings.Join(args, ", ") + ")"
}

// CallExpressionNode.Accept(): accepts a visitor
func (node *CallExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitCallExpressionNode(*node)
}

// CallExpressionNode.Expression(): marker method
func (node *CallExpressionNode) Expression() {
}

// PrintStatementNode: writes an expression's display form to stdout with
// no trailing character
// Example: print "total: "
type PrintStatementNode struct {
	Token lexer.Token    // The `print` keyword token
	Value ExpressionNode // The expression to display
}

// PrintStatementNode.Literal(): string representation of the node
func (node *PrintStatementNode) Literal() string {
	return "print " + node.Value.Literal()
}

// PrintStatementNode.Accept(): accepts a visitor
func (node *PrintStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitPrintStatementNode(*node)
}

// PrintStatementNode.Statement(): marker method
func (node *PrintStatementNode) Statement() {
}

// PrintlnStatementNode: like print, with a trailing newline
// Example: println x + 1
type PrintlnStatementNode struct {
	Token lexer.Token    // The `println` keyword token
	Value ExpressionNode // The expression to display
}

// PrintlnStatementNode.Literal(): string representation of the node
func (node *PrintlnStatementNode) Literal() string {
	return "println " + node.Value.Literal()
}

// PrintlnStatementNode.Accept(): accepts a visitor
func (node *PrintlnStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitPrintlnStatementNode(*node)
}

// PrintlnStatementNode.Statement(): marker method
func (node *PrintlnStatementNode) Statement() {
}

// AssignmentStatementNode: `name := expr`. The target must be an
// identifier (the parser enforces this). At runtime the binding walks up
// the scope chain to the nearest frame already holding the name, creating
// it in the innermost frame only when no frame holds it.
type AssignmentStatementNode struct {
	Left  ExpressionNode // The target; always an IdentifierExpressionNode
	Right ExpressionNode // The value expression
}

// AssignmentStatementNode.Literal(): string representation of the node
func (node *AssignmentStatementNode) Literal() string {
	return node.Left.Literal() + " := " + node.Right.Literal()
}

// AssignmentStatementNode.Accept(): accepts a visitor
func (node *AssignmentStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitAssignmentStatementNode(*node)
}

// AssignmentStatementNode.Statement(): marker method
func (node *AssignmentStatementNode) Statement() {
}

// LocalAssignmentStatementNode: `local name := expr`. Always binds in the
// innermost scope, shadowing without mutating any enclosing binding.
type LocalAssignmentStatementNode struct {
	Left  ExpressionNode // The target; always an IdentifierExpressionNode
	Right ExpressionNode // The value expression
}

// LocalAssignmentStatementNode.Literal(): string representation of the node
func (node *LocalAssignmentStatementNode) Literal() string {
	return "local " + node.Left.Literal() + " := " + node.Right.Literal()
}

// LocalAssignmentStatementNode.Accept(): accepts a visitor
func (node *LocalAssignmentStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitLocalAssignmentStatementNode(*node)
}

// LocalAssignmentStatementNode.Statement(): marker method
func (node *LocalAssignmentStatementNode) Statement() {
}

// IfStatementNode: `if test then ... [else ...] end`. The else block is
// an empty block when the source has no else branch.
type IfStatementNode struct {
	Token lexer.Token         // The `if` keyword token
	Test  ExpressionNode      // The condition
	Then  *BlockStatementNode // Statements of the then branch
	Else  *BlockStatementNode // Statements of the else branch (possibly empty)
}

// IfStatementNode.Literal(): string representation of the node
func (node *IfStatementNode) Literal() string {
	res := "if " + node.Test.Literal() + " then " + node.Then.Literal()
	if len(node.Else.Statements) > 0 {
		res += " else " + node.Else.Literal()
	}
	return res + " end"
}

// IfStatementNode.Accept(): accepts a visitor
func (node *IfStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitIfStatementNode(*node)
}

// IfStatementNode.Statement(): marker method
func (node *IfStatementNode) Statement() {
}

// WhileStatementNode: `while test then ... end`. Note that the block
// opener is `then`, not `do`.
type WhileStatementNode struct {
	Token lexer.Token         // The `while` keyword token
	Test  ExpressionNode      // The condition, re-evaluated before every iteration
	Body  *BlockStatementNode // The loop body
}

// WhileStatementNode.Literal(): string representation of the node
func (node *WhileStatementNode) Literal() string {
	return "while " + node.Test.Literal() + " then " + node.Body.Literal() + " end"
}

// WhileStatementNode.Accept(): accepts a visitor
func (node *WhileStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitWhileStatementNode(*node)
}

// WhileStatementNode.Statement(): marker method
func (node *WhileStatementNode) Statement() {
}

// ForStatementNode: `for i := start, end [, step] then ... end`. The step
// defaults to 1 when the source omits it; the loop variable must be an
// identifier.
type ForStatementNode struct {
	Token      lexer.Token               // The `for` keyword token
	Identifier *IdentifierExpressionNode // The loop variable
	Start      ExpressionNode            // Initial value expression
	End        ExpressionNode            // Bound expression
	Step       ExpressionNode            // Increment expression (default 1)
	Body       *BlockStatementNode       // The loop body
}

// ForStatementNode.Literal(): string representation of the node
func (node *ForStatementNode) Literal() string {
	return "for " + node.Identifier.Literal() + " := " + node.Start.Literal() +
		", " + node.End.Literal() + ", " + node.Step.Literal() +
		" then " + node.Body.Literal() + " end"
}

// ForStatementNode.Accept(): accepts a visitor
func (node *ForStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitForStatementNode(*node)
}

// ForStatementNode.Statement(): marker method
func (node *ForStatementNode) Statement() {
}

// FunctionStatementNode: `func name(params) ... end`. The declaration is
// stored in the declaring frame's function table at evaluation time; the
// params list contains only ParameterNode entries.
type FunctionStatementNode struct {
	Token  lexer.Token               // The `func` keyword token
	Name   *IdentifierExpressionNode // The function name
	Params []*ParameterNode          // Declared parameter names
	Body   *BlockStatementNode       // The function body
}

// FunctionStatementNode.Literal(): string representation of the node
func (node *FunctionStatementNode) Literal() string {
	params := make([]string, 0, len(node.Params))
	for _, param := range node.Params {
		params = append(params, param.Literal())
	}
	return "func " + node.Name.Literal() + "(" + strings.Join(params, ", ") + ") " +
		node.Body.Literal() + " end"
}

// FunctionStatementNode.Accept(): accepts a visitor
func (node *FunctionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionStatementNode(*node)
}

// FunctionStatementNode.Statement(): marker method
func (node *FunctionStatementNode) Statement() {
}

// ParameterNode: a single declared parameter name inside a function
// declaration. It is a statement variant for uniformity; evaluating one
// standalone has no runtime effect.
type ParameterNode struct {
	Token lexer.Token // The parameter's identifier token
	Name  string      // The parameter name
}

// ParameterNode.Literal(): string representation of the node
func (node *ParameterNode) Literal() string {
	return node.Name
}

// ParameterNode.Accept(): accepts a visitor
func (node *ParameterNode) Accept(visitor NodeVisitor) {
	visitor.VisitParameterNode(*node)
}

// ParameterNode.Statement(): marker method
func (node *ParameterNode) Statement() {
}

// FunctionCallStatementNode: a bare function call in statement position.
// The call's value (already unwrapped at the call site) becomes the
// statement's result, as for an expression statement.
// Example: setup()
type FunctionCallStatementNode struct {
	Call *CallExpressionNode // The wrapped call expression
}

// FunctionCallStatementNode.Literal(): string representation of the node
func (node *FunctionCallStatementNode) Literal() string {
	return node.Call.Literal()
}

// FunctionCallStatementNode.Accept(): accepts a visitor
func (node *FunctionCallStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionCallStatementNode(*node)
}

// FunctionCallStatementNode.Statement(): marker method
func (node *FunctionCallStatementNode) Statement() {
}

// ExpressionStatementNode: any other bare expression in statement
// position. Its value becomes the statement's result, which is what makes
// a top-level expression's result observable to the drivers (REPL echo,
// final-result print in file mode).
type ExpressionStatementNode struct {
	Expr ExpressionNode // The wrapped expression
}

// ExpressionStatementNode.Literal(): string representation of the node
func (node *ExpressionStatementNode) Literal() string {
	return node.Expr.Literal()
}

// ExpressionStatementNode.Accept(): accepts a visitor
func (node *ExpressionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitExpressionStatementNode(*node)
}

// ExpressionStatementNode.Statement(): marker method
func (node *ExpressionStatementNode) Statement() {
}

// ReturnStatementNode: `ret expr`. Produces the internal return marker
// that unwinds to the nearest enclosing function call site.
type ReturnStatementNode struct {
	Token lexer.Token    // The `ret` keyword token
	Value ExpressionNode // The returned expression
}

// ReturnStatementNode.Literal(): string representation of the node
func (node *ReturnStatementNode) Literal() string {
	return "ret " + node.Value.Literal()
}

// ReturnStatementNode.Accept(): accepts a visitor
func (node *ReturnStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitReturnStatementNode(*node)
}

// ReturnStatementNode.Statement(): marker method
func (node *ReturnStatementNode) Statement() {
}

// BlockStatementNode: an ordered statement list forming the body of a
// control-flow construct or function. Blocks are where return markers
// propagate: evaluation stops at the first statement producing one.
type BlockStatementNode struct {
	Statements []StatementNode // The statements of the block, in order
}

// BlockStatementNode.Literal(): string representation of the node
func (node *BlockStatementNode) Literal() string {
	parts := make([]string, 0, len(node.Statements))
	for _, stmt := range node.Statements {
		parts = append(parts, stmt.Literal())
	}
	return strings.Join(parts, "; ")
}

// BlockStatementNode.Accept(): accepts a visitor
func (node *BlockStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBlockStatementNode(*node)
}

// BlockStatementNode.Statement(): marker method
func (node *BlockStatementNode) Statement() {
}
