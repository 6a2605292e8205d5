/*
File    : go-pinky/main/print_visitor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/go-pinky/parser"
)

const INDENT_SIZE = 4

// PrintingVisitor is a visitor that renders the AST as an indented tree,
// one node per line, child nodes indented one level deeper. It backs the
// CLI's --ast mode and is handy when debugging the parser.
type PrintingVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

// indent writes the current indentation prefix to the buffer
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// line writes one indented line describing a node
func (p *PrintingVisitor) line(format string, a ...interface{}) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf(format, a...))
	p.Buf.WriteString("\n")
}

// nested visits a child node one indentation level deeper
func (p *PrintingVisitor) nested(node parser.Node) {
	p.Indent += INDENT_SIZE
	node.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitRootNode visits the root node and all top-level statements
func (p *PrintingVisitor) VisitRootNode(node parser.RootNode) {
	p.line("Root (%d statements)", len(node.Statements))
	for _, stmt := range node.Statements {
		p.nested(stmt)
	}
}

// VisitIntegerLiteralExpressionNode prints an integer literal
func (p *PrintingVisitor) VisitIntegerLiteralExpressionNode(node parser.IntegerLiteralExpressionNode) {
	p.line("Integer [%s]", node.Token.Literal)
}

// VisitFloatLiteralExpressionNode prints a float literal
func (p *PrintingVisitor) VisitFloatLiteralExpressionNode(node parser.FloatLiteralExpressionNode) {
	p.line("Float [%s]", node.Token.Literal)
}

// VisitBooleanLiteralExpressionNode prints a boolean literal
func (p *PrintingVisitor) VisitBooleanLiteralExpressionNode(node parser.BooleanLiteralExpressionNode) {
	p.line("Boolean [%s]", node.Token.Literal)
}

// VisitStringLiteralExpressionNode prints a string literal (quoted lexeme)
func (p *PrintingVisitor) VisitStringLiteralExpressionNode(node parser.StringLiteralExpressionNode) {
	p.line("String [%s]", node.Token.Literal)
}

// VisitNullLiteralExpressionNode prints the null literal
func (p *PrintingVisitor) VisitNullLiteralExpressionNode(node parser.NullLiteralExpressionNode) {
	p.line("Null")
}

// VisitIdentifierExpressionNode prints a variable reference
func (p *PrintingVisitor) VisitIdentifierExpressionNode(node parser.IdentifierExpressionNode) {
	p.line("Identifier [%s]", node.Name)
}

// VisitParenthesizedExpressionNode prints a grouping and its inner expression
func (p *PrintingVisitor) VisitParenthesizedExpressionNode(node parser.ParenthesizedExpressionNode) {
	p.line("Grouping")
	p.nested(node.Expr)
}

// VisitUnaryExpressionNode prints a prefix operation and its operand
func (p *PrintingVisitor) VisitUnaryExpressionNode(node parser.UnaryExpressionNode) {
	p.line("Unary [%s]", node.Operation.Literal)
	p.nested(node.Right)
}

// VisitBinaryExpressionNode prints a binary operation and both operands
func (p *PrintingVisitor) VisitBinaryExpressionNode(node parser.BinaryExpressionNode) {
	p.line("Binary [%s]", node.Operation.Literal)
	p.nested(node.Left)
	p.nested(node.Right)
}

// VisitLogicalExpressionNode prints a short-circuit operation and both operands
func (p *PrintingVisitor) VisitLogicalExpressionNode(node parser.LogicalExpressionNode) {
	p.line("Logical [%s]", node.Operation.Literal)
	p.nested(node.Left)
	p.nested(node.Right)
}

// VisitCallExpressionNode prints a function call and its arguments
func (p *PrintingVisitor) VisitCallExpressionNode(node parser.CallExpressionNode) {
	p.line("Call [%s] (%d args)", node.Name, len(node.Args))
	for _, arg := range node.Args {
		p.nested(arg)
	}
}

// VisitPrintStatementNode prints a print statement
func (p *PrintingVisitor) VisitPrintStatementNode(node parser.PrintStatementNode) {
	p.line("Print")
	p.nested(node.Value)
}

// VisitPrintlnStatementNode prints a println statement
func (p *PrintingVisitor) VisitPrintlnStatementNode(node parser.PrintlnStatementNode) {
	p.line("Println")
	p.nested(node.Value)
}

// VisitAssignmentStatementNode prints an assignment (target, then value)
func (p *PrintingVisitor) VisitAssignmentStatementNode(node parser.AssignmentStatementNode) {
	p.line("Assignment")
	p.nested(node.Left)
	p.nested(node.Right)
}

// VisitLocalAssignmentStatementNode prints a local assignment
func (p *PrintingVisitor) VisitLocalAssignmentStatementNode(node parser.LocalAssignmentStatementNode) {
	p.line("LocalAssignment")
	p.nested(node.Left)
	p.nested(node.Right)
}

// VisitIfStatementNode prints the test and both branches
func (p *PrintingVisitor) VisitIfStatementNode(node parser.IfStatementNode) {
	p.line("If")
	p.nested(node.Test)
	p.line("Then")
	p.nested(node.Then)
	if len(node.Else.Statements) > 0 {
		p.line("Else")
		p.nested(node.Else)
	}
}

// VisitWhileStatementNode prints the test and the body
func (p *PrintingVisitor) VisitWhileStatementNode(node parser.WhileStatementNode) {
	p.line("While")
	p.nested(node.Test)
	p.nested(node.Body)
}

// VisitForStatementNode prints the loop variable, bounds, step and body
func (p *PrintingVisitor) VisitForStatementNode(node parser.ForStatementNode) {
	p.line("For [%s]", node.Identifier.Name)
	p.nested(node.Start)
	p.nested(node.End)
	p.nested(node.Step)
	p.nested(node.Body)
}

// VisitFunctionStatementNode prints a declaration with its parameters and body
func (p *PrintingVisitor) VisitFunctionStatementNode(node parser.FunctionStatementNode) {
	p.line("Function [%s] (%d params)", node.Name.Name, len(node.Params))
	for _, param := range node.Params {
		p.nested(param)
	}
	p.nested(node.Body)
}

// VisitParameterNode prints a declared parameter name
func (p *PrintingVisitor) VisitParameterNode(node parser.ParameterNode) {
	p.line("Parameter [%s]", node.Name)
}

// VisitFunctionCallStatementNode prints a call in statement position
func (p *PrintingVisitor) VisitFunctionCallStatementNode(node parser.FunctionCallStatementNode) {
	p.line("CallStatement")
	p.nested(node.Call)
}

// VisitExpressionStatementNode prints a bare expression statement
func (p *PrintingVisitor) VisitExpressionStatementNode(node parser.ExpressionStatementNode) {
	p.line("ExpressionStatement")
	p.nested(node.Expr)
}

// VisitReturnStatementNode prints a return statement and its value
func (p *PrintingVisitor) VisitReturnStatementNode(node parser.ReturnStatementNode) {
	p.line("Return")
	p.nested(node.Value)
}

// VisitBlockStatementNode prints a block and its statements
func (p *PrintingVisitor) VisitBlockStatementNode(node parser.BlockStatementNode) {
	p.line("Block (%d statements)", len(node.Statements))
	for _, stmt := range node.Statements {
		p.nested(stmt)
	}
}

// String returns the rendered tree
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}
