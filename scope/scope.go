/*
File    : go-pinky/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"github.com/akashmaji946/go-pinky/objects"
	"github.com/akashmaji946/go-pinky/parser"
)

// Scope defines one activation's name bindings plus a link to its
// enclosing frame.
//
// Scope implements a hierarchical scope chain. Each frame maintains its
// own variable bindings and its own function table, and can reach
// everything bound in enclosing frames through the parent link. This
// structure supports:
// - Variable shadowing: `local` bindings can redefine names from outer frames
// - Assignment walk-up: plain `:=` rebinds the nearest enclosing holder of a name
// - Block scoping: if/while/for bodies and function invocations get their own frame
//
// One root frame is created per program run. Child frames hold a plain
// pointer to their parent and mutate parent maps in place; the
// interpreter is single-threaded, so a child writing through its parent
// reference while the parent is still on the stack needs no locking.
type Scope struct {
	// Variables maps variable names to their current values in this frame
	Variables map[string]objects.PinkyObject

	// Functions maps function names to their declarations. Declarations
	// are stored as parsed; a call re-enters the body with a fresh frame.
	Functions map[string]*parser.FunctionStatementNode

	// Parent points to the enclosing frame, forming the scope chain.
	// nil indicates this is the root (global) frame.
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent.
//
// The parent parameter determines the frame's position in the chain:
// - parent == nil: creates the root (global) frame
// - parent != nil: creates a nested frame that can reach parent bindings
//
// Parameters:
//   - parent: The enclosing frame, or nil for the root frame
//
// Returns:
//   - *Scope: A fully initialized frame ready for bindings
//
// Example usage:
//
//	globalScope := NewScope(nil)           // Root frame for the run
//	blockScope := NewScope(globalScope)    // Frame for a loop body
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.PinkyObject),
		Functions: make(map[string]*parser.FunctionStatementNode),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this frame and all parents.
//
// This implements the core resolution rule: the current frame is checked
// first, then the chain is walked upward until the name is found or the
// root is passed. Inner bindings therefore shadow outer ones, and the
// most recent binding for a name is always the one returned.
//
// Parameters:
//   - varName: The name of the variable to look up
//
// Returns:
//   - objects.PinkyObject: The value bound to the variable (if found)
//   - bool: true if the variable was found in this frame or any parent
func (s *Scope) LookUp(varName string) (objects.PinkyObject, bool) {
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind creates or replaces a binding in the current frame only.
//
// Bind never touches parent frames, which makes it the primitive behind
// `local` assignment, parameter binding, and for-loop variables. It does
// not prevent shadowing a name bound in an enclosing frame.
//
// Parameters:
//   - varName: The name of the variable to bind
//   - obj: The value to bind to the variable
func (s *Scope) Bind(varName string, obj objects.PinkyObject) {
	s.Variables[varName] = obj
}

// Assign rebinds an existing variable in the frame where it currently
// lives.
//
// Unlike Bind, Assign walks the chain: it checks the current frame first,
// and on a miss recurses into the parent. The first frame that holds the
// name is updated in place, which is what lets a statement inside a
// function body rebind a global. When no frame in the chain holds the
// name, nothing is updated and the caller decides where the new binding
// goes (plain `:=` creates it in the innermost frame).
//
// Parameters:
//   - varName: The name of the variable to assign to
//   - obj: The new value to assign
//
// Returns:
//   - bool: true if the variable was found and updated in some frame
//
// Example:
//
//	x := 1
//	func f() x := 2 end
//	f()          -- Assign finds x in the root frame and rebinds it there
//	println x    -- prints 2
func (s *Scope) Assign(varName string, obj objects.PinkyObject) bool {
	if _, ok := s.Variables[varName]; ok {
		s.Variables[varName] = obj
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(varName, obj)
	}
	return false
}

// BindFunction stores a function declaration in the current frame's
// function table. A redeclaration in the same frame replaces the previous
// entry.
//
// Parameters:
//   - name: The function name
//   - decl: The parsed declaration
func (s *Scope) BindFunction(name string, decl *parser.FunctionStatementNode) {
	s.Functions[name] = decl
}

// LookUpFunction searches the function tables of this frame and all
// parents for a declaration, using the same walk order as LookUp.
//
// Parameters:
//   - name: The function name to look up
//
// Returns:
//   - *parser.FunctionStatementNode: The declaration (if found)
//   - bool: true if the function was found in this frame or any parent
func (s *Scope) LookUpFunction(name string) (*parser.FunctionStatementNode, bool) {
	decl, ok := s.Functions[name]
	if !ok && s.Parent != nil {
		decl, ok = s.Parent.LookUpFunction(name)
	}
	return decl, ok
}
