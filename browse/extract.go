// Package browse holds read-only query functions over a workspace: typed
// subtree extractors, an approximate storage-change finder, and a
// source-text peek. None of these mutate the workspace or retain anything
// past the call that produced them.
package browse

import (
	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/workspace"
)

// Extract collects every node of type T under root's subtree, recursing
// through all semantic children but never crossing a SourceUnit boundary
// (a SourceUnit is itself a valid root, so callers that want the whole
// file pass it directly; nested imports are separate source units and are
// never descended into by Children()).
func Extract[T ast.Node](root ast.Node) []T {
	var out []T
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		if n == nil {
			return
		}
		if t, ok := ast.As[T](n); ok {
			out = append(out, t)
		}
		for _, child := range n.Children() {
			walk(child)
		}
	}
	walk(root)
	return out
}

// FunctionCalls extracts every function call in root's subtree.
func FunctionCalls(root ast.Node) []*ast.FunctionCall { return Extract[*ast.FunctionCall](root) }

// BinaryOperations extracts every binary operation in root's subtree.
func BinaryOperations(root ast.Node) []*ast.BinaryOperation {
	return Extract[*ast.BinaryOperation](root)
}

// Literals extracts every literal in root's subtree.
func Literals(root ast.Node) []*ast.Literal { return Extract[*ast.Literal](root) }

// ModifierInvocations extracts every modifier invocation in root's subtree.
func ModifierInvocations(root ast.Node) []*ast.ModifierInvocation {
	return Extract[*ast.ModifierInvocation](root)
}

// Placeholders extracts every `_;` placeholder statement in root's subtree.
func Placeholders(root ast.Node) []*ast.PlaceholderStatement {
	return Extract[*ast.PlaceholderStatement](root)
}

// Assignments extracts every assignment in root's subtree.
func Assignments(root ast.Node) []*ast.Assignment { return Extract[*ast.Assignment](root) }

// TupleExpressions extracts every tuple expression in root's subtree.
func TupleExpressions(root ast.Node) []*ast.TupleExpression {
	return Extract[*ast.TupleExpression](root)
}

// InlineAssemblies extracts every inline-assembly block in root's subtree.
func InlineAssemblies(root ast.Node) []*ast.InlineAssembly {
	return Extract[*ast.InlineAssembly](root)
}

// PragmaDirectives extracts every pragma directive in root's subtree.
func PragmaDirectives(root ast.Node) []*ast.PragmaDirective {
	return Extract[*ast.PragmaDirective](root)
}

// VariableDeclarations extracts every variable declaration in root's
// subtree, whether a state variable, local, or parameter.
func VariableDeclarations(root ast.Node) []*ast.VariableDeclaration {
	return Extract[*ast.VariableDeclaration](root)
}

// MemberAccesses extracts every member access in root's subtree.
func MemberAccesses(root ast.Node) []*ast.MemberAccess { return Extract[*ast.MemberAccess](root) }

// Identifiers extracts every identifier in root's subtree.
func Identifiers(root ast.Node) []*ast.Identifier { return Extract[*ast.Identifier](root) }

// ReferencedDeclarations collects the set of NodeIDs directly referenced by
// an Identifier, IdentifierPath, or MemberAccess anywhere in root's
// subtree, deduplicated but unordered.
func ReferencedDeclarations(root ast.Node) map[ast.NodeID]struct{} {
	out := make(map[ast.NodeID]struct{})
	for _, id := range Identifiers(root) {
		if id.ReferencedDeclaration != nil {
			out[*id.ReferencedDeclaration] = struct{}{}
		}
	}
	for _, path := range Extract[*ast.IdentifierPath](root) {
		if path.ReferencedDeclaration != nil {
			out[*path.ReferencedDeclaration] = struct{}{}
		}
	}
	for _, member := range MemberAccesses(root) {
		if member.ReferencedDeclaration != nil {
			out[*member.ReferencedDeclaration] = struct{}{}
		}
	}
	return out
}

// Peek returns the literal source slice a node's src range covers.
func Peek(w *workspace.Workspace, n ast.Node) (string, bool) {
	return w.SourceCodeOf(n)
}
