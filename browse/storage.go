package browse

import (
	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/workspace"
)

// StateVariableSet is the result of ApproximateStorageChangeFinder: the
// NodeIDs of state-variable declarations a subtree writes.
type StateVariableSet map[ast.NodeID]*ast.VariableDeclaration

// Union composes two finder results. Per spec this is the only combinator
// callers need: composing two over-approximate finders is itself a safe
// over-approximation.
func (s StateVariableSet) Union(other StateVariableSet) StateVariableSet {
	out := make(StateVariableSet, len(s)+len(other))
	for id, decl := range s {
		out[id] = decl
	}
	for id, decl := range other {
		out[id] = decl
	}
	return out
}

// ApproximateStorageChangeFinder returns the set of state-variable
// declarations written within root's subtree. This is deliberately
// over-approximate, not a precise dataflow analysis: it treats any write
// reachable from a state variable through a storage-pointer local as a
// write to that state variable, with no attempt to disambiguate distinct
// storage slots within an aggregate.
func ApproximateStorageChangeFinder(w *workspace.Workspace, root ast.Node) StateVariableSet {
	out := make(StateVariableSet)
	aliases := storageAliases(w, root)

	for _, assign := range Assignments(root) {
		addBase(w, out, aliases, assign.LeftHandSide())
	}
	for _, unary := range Extract[*ast.UnaryOperation](root) {
		if unary.Operator == "delete" {
			addBase(w, out, aliases, unary.SubExpression())
		}
	}
	for _, call := range FunctionCalls(root) {
		member, ok := ast.As[*ast.MemberAccess](call.Expression())
		if !ok {
			continue
		}
		if member.MemberName == "push" || member.MemberName == "pop" {
			addBase(w, out, aliases, member.Expression())
		}
	}
	return out
}

// storageAliases maps a local variable's NodeID to the state-variable
// declarations it was initialized from, when declared as a storage
// pointer/reference. Approximate: only follows one level of aliasing, from
// an initializer whose base identifier (through member and index accesses)
// is a state variable.
func storageAliases(w *workspace.Workspace, root ast.Node) map[ast.NodeID][]*ast.VariableDeclaration {
	aliases := make(map[ast.NodeID][]*ast.VariableDeclaration)
	for _, stmt := range Extract[*ast.VariableDeclarationStatement](root) {
		init := stmt.InitialValue()
		if init == nil {
			continue
		}
		base := baseIdentifierDeclaration(w, init)
		if base == nil || !base.StateVariable {
			continue
		}
		for _, decl := range stmt.Declarations() {
			if decl == nil || decl.StorageLocation != "storage" {
				continue
			}
			aliases[decl.ID()] = append(aliases[decl.ID()], base)
		}
	}
	return aliases
}

// addBase resolves expr down to its base identifier's referenced
// declaration and, if it names a state variable (directly or through a
// storage-pointer local alias), adds it to out.
func addBase(w *workspace.Workspace, out StateVariableSet, aliases map[ast.NodeID][]*ast.VariableDeclaration, expr ast.Node) {
	decl := baseIdentifierDeclaration(w, expr)
	if decl == nil {
		return
	}
	if decl.StateVariable {
		out[decl.ID()] = decl
		return
	}
	for _, aliased := range aliases[decl.ID()] {
		out[aliased.ID()] = aliased
	}
}

// baseIdentifierDeclaration walks down through member accesses and index
// accesses to the root identifier of expr and resolves its referenced
// declaration to a *ast.VariableDeclaration.
func baseIdentifierDeclaration(w *workspace.Workspace, expr ast.Node) *ast.VariableDeclaration {
	for expr != nil {
		switch t := expr.(type) {
		case *ast.Identifier:
			return resolveVariableDeclaration(w, t.ReferencedDeclaration)
		case *ast.MemberAccess:
			expr = t.Expression()
		case *ast.IndexAccess:
			expr = t.Base()
		case *ast.IndexRangeAccess:
			expr = t.Base()
		case *ast.TupleExpression:
			comps := t.Components()
			if len(comps) != 1 {
				return nil
			}
			expr = comps[0]
		default:
			return nil
		}
	}
	return nil
}

func resolveVariableDeclaration(w *workspace.Workspace, id *ast.NodeID) *ast.VariableDeclaration {
	if id == nil {
		return nil
	}
	n, ok := w.Node(*id)
	if !ok {
		return nil
	}
	decl, ok := ast.As[*ast.VariableDeclaration](n)
	if !ok {
		return nil
	}
	return decl
}
