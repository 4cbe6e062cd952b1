package dispatch

import (
	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/workspace"
)

// InternalRouter resolves FunctionCall/ModifierInvocation targets to the
// concrete definition that executes, given an active (most-derived)
// contract, per the internal-call algorithm: library/private/library-owner
// targets are returned unchanged; everything else is looked up by
// selectorish along a C3 chain suffix.
type InternalRouter struct {
	w *workspace.Workspace

	// table[contractID][startID] is a selectorish -> FunctionDefinition
	// NodeID map for the chain suffix of contractID beginning at startID.
	table map[ast.NodeID]map[ast.NodeID]map[string]ast.NodeID

	// modifierTable mirrors table for modifier definitions, keyed only by
	// the contract itself (modifiers are always resolved starting at C).
	modifierTable map[ast.NodeID]map[string]ast.NodeID
}

// NewInternalRouter precomputes the per-contract, per-starting-point
// selectorish tables for every deployable contract in w.
func NewInternalRouter(w *workspace.Workspace) *InternalRouter {
	r := &InternalRouter{
		w:             w,
		table:         make(map[ast.NodeID]map[ast.NodeID]map[string]ast.NodeID),
		modifierTable: make(map[ast.NodeID]map[string]ast.NodeID),
	}
	for _, unit := range w.SourceUnits() {
		for _, decl := range unit.Declarations() {
			c, ok := ast.As[*ast.ContractDefinition](decl)
			if !ok || !c.IsDeployable() {
				continue
			}
			r.buildContract(w, c)
		}
	}
	return r
}

func (r *InternalRouter) buildContract(w *workspace.Workspace, c *ast.ContractDefinition) {
	chain := resolveChain(w, c.LinearizedBaseContracts)
	r.table[c.ID()] = make(map[ast.NodeID]map[string]ast.NodeID)

	for i, start := range chain {
		suffix := chain[i:]
		fnTable := make(map[string]ast.NodeID)
		for j := len(suffix) - 1; j >= 0; j-- {
			for _, fn := range suffix[j].FunctionDefinitions() {
				fnTable[fn.Selectorish()] = fn.ID()
			}
		}
		r.table[c.ID()][start.ID()] = fnTable
	}

	modTable := make(map[string]ast.NodeID)
	for j := len(chain) - 1; j >= 0; j-- {
		for _, mod := range chain[j].ModifierDefinitions() {
			modTable[mod.Selectorish()] = mod.ID()
		}
	}
	r.modifierTable[c.ID()] = modTable
}

func resolveChain(w *workspace.Workspace, ids []ast.NodeID) []*ast.ContractDefinition {
	out := make([]*ast.ContractDefinition, 0, len(ids))
	for _, id := range ids {
		n, ok := w.Node(id)
		if !ok {
			continue
		}
		if c, ok := ast.As[*ast.ContractDefinition](n); ok {
			out = append(out, c)
		}
	}
	return out
}

// ResolveCall resolves the concrete FunctionDefinition a FunctionCall node
// executes when the active contract is activeContract. call must be an
// internal call (IsInternalCall()); the caller is responsible for routing
// external calls through ExternalRouter.Resolve instead.
func (r *InternalRouter) ResolveCall(call *ast.FunctionCall, activeContract *ast.ContractDefinition) (*ast.FunctionDefinition, bool) {
	targetID, ok := call.SuspectedTargetDeclaration()
	if !ok {
		return nil, false
	}
	targetNode, ok := r.w.Node(targetID)
	if !ok {
		return nil, false
	}
	target, ok := ast.As[*ast.FunctionDefinition](targetNode)
	if !ok {
		return nil, false
	}

	enclosingContract, _ := r.w.EnclosingContract(target.ID())

	// Step 1: library-bodied call sites do not resolve through inheritance.
	if callerContract, ok := r.w.EnclosingContract(call.ID()); ok && callerContract.ContractKindValue == ast.ContractKindLibrary {
		return target, true
	}
	// Step 2: private targets are never overridden.
	if target.Visibility == ast.VisibilityPrivate {
		return target, true
	}
	// Step 3: library-owned functions do not participate in inheritance.
	if enclosingContract != nil && enclosingContract.ContractKindValue == ast.ContractKindLibrary {
		return target, true
	}

	start := dispatchStart(r.w, call, activeContract, enclosingContract)
	if start == ast.InvalidNodeID {
		return target, true
	}

	startTable, ok := r.table[activeContract.ID()]
	if !ok {
		return target, true
	}
	fnTable, ok := startTable[start]
	if !ok {
		return target, true
	}
	if resolvedID, ok := fnTable[target.Selectorish()]; ok {
		if resolvedNode, ok := r.w.Node(resolvedID); ok {
			if resolved, ok := ast.As[*ast.FunctionDefinition](resolvedNode); ok {
				return resolved, true
			}
		}
	}
	return target, true
}

// dispatchStart determines the C3-chain starting contract for a call
// expression: `foo()` starts at C, `super.foo()` starts at the parent of
// the syntactically-enclosing contract within C's chain, `Base.foo()`
// starts at Base if Base lies within C's chain.
func dispatchStart(w *workspace.Workspace, call *ast.FunctionCall, active, enclosing *ast.ContractDefinition) ast.NodeID {
	member, isMember := ast.As[*ast.MemberAccess](call.Expression())
	if !isMember {
		return active.ID()
	}
	base, isIdent := ast.As[*ast.Identifier](member.Expression())
	if !isIdent {
		return active.ID()
	}
	if base.Name == "super" {
		callerContract, ok := w.EnclosingContract(call.ID())
		if !ok {
			return active.ID()
		}
		return parentInChain(active.LinearizedBaseContracts, callerContract.ID())
	}
	if base.ReferencedDeclaration == nil {
		return active.ID()
	}
	if inChain(active.LinearizedBaseContracts, *base.ReferencedDeclaration) {
		return *base.ReferencedDeclaration
	}
	return active.ID()
}

func parentInChain(chain []ast.NodeID, of ast.NodeID) ast.NodeID {
	for i, id := range chain {
		if id == of && i+1 < len(chain) {
			return chain[i+1]
		}
	}
	return ast.InvalidNodeID
}

func inChain(chain []ast.NodeID, id ast.NodeID) bool {
	for _, c := range chain {
		if c == id {
			return true
		}
	}
	return false
}

// ResolveModifier resolves a ModifierInvocation to the concrete
// ModifierDefinition that executes for activeContract's C3 chain.
func (r *InternalRouter) ResolveModifier(inv *ast.ModifierInvocation, activeContract *ast.ContractDefinition) (*ast.ModifierDefinition, bool) {
	targetID, ok := inv.ReferencedDeclaration()
	if !ok {
		return nil, false
	}
	targetNode, ok := r.w.Node(targetID)
	if !ok {
		return nil, false
	}
	target, ok := ast.As[*ast.ModifierDefinition](targetNode)
	if !ok {
		return nil, false
	}
	modTable, ok := r.modifierTable[activeContract.ID()]
	if !ok {
		return target, true
	}
	if resolvedID, ok := modTable[target.Selectorish()]; ok {
		if resolvedNode, ok := r.w.Node(resolvedID); ok {
			if resolved, ok := ast.As[*ast.ModifierDefinition](resolvedNode); ok {
				return resolved, true
			}
		}
	}
	return target, true
}
