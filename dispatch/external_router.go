package dispatch

import (
	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/workspace"
)

// ECDestKind tags what an external selector resolves to.
type ECDestKind int

const (
	PublicFn ECDestKind = iota
	ExternalFn
	PublicStateVarGetter
	Receive
	Fallback
)

// ECDest is the resolved destination of an external call selector.
type ECDest struct {
	Kind ECDestKind
	ID   ast.NodeID
}

// Reserved selector table keys for the two special dispatch slots.
const (
	SelectorFallback = "FALLBACK"
	SelectorReceive  = "RECEIVE"
)

// ExternalRouter maps (contract, selector) to an ECDest, one table per
// deployable contract built by walking its C3 chain most-derived to base
// and inserting only when a key is absent.
type ExternalRouter struct {
	tables map[ast.NodeID]map[string]ECDest
}

// NewExternalRouter builds selector tables for every deployable contract
// in w. A contract whose externally-visible surface contains a function or
// public state variable lacking a compiler-computed selector gets an empty
// table: the router never fabricates selectors.
func NewExternalRouter(w *workspace.Workspace) *ExternalRouter {
	r := &ExternalRouter{tables: make(map[ast.NodeID]map[string]ECDest)}
	for _, unit := range w.SourceUnits() {
		for _, decl := range unit.Declarations() {
			c, ok := ast.As[*ast.ContractDefinition](decl)
			if !ok || !c.IsDeployable() {
				continue
			}
			r.tables[c.ID()] = buildExternalTable(w, c)
		}
	}
	return r
}

func buildExternalTable(w *workspace.Workspace, c *ast.ContractDefinition) map[string]ECDest {
	chain := resolveChain(w, c.LinearizedBaseContracts)
	table := make(map[string]ECDest)

	for _, contract := range chain { // most-derived first, per LinearizedBaseContracts order
		for _, fn := range contract.FunctionDefinitions() {
			if fn.Visibility != ast.VisibilityPublic && fn.Visibility != ast.VisibilityExternal {
				continue
			}
			switch fn.Kind() {
			case ast.FunctionKindReceive:
				insertIfAbsent(table, SelectorReceive, ECDest{Kind: Receive, ID: fn.ID()})
				continue
			case ast.FunctionKindFallback:
				insertIfAbsent(table, SelectorFallback, ECDest{Kind: Fallback, ID: fn.ID()})
				continue
			}
			if fn.FunctionSelector == nil {
				return map[string]ECDest{}
			}
			kind := ExternalFn
			if fn.Visibility == ast.VisibilityPublic {
				kind = PublicFn
			}
			insertIfAbsent(table, *fn.FunctionSelector, ECDest{Kind: kind, ID: fn.ID()})
		}
		for _, sv := range contract.StateVariables() {
			if sv.Visibility != ast.VisibilityPublic {
				continue
			}
			if sv.FunctionSelector == nil {
				return map[string]ECDest{}
			}
			insertIfAbsent(table, *sv.FunctionSelector, ECDest{Kind: PublicStateVarGetter, ID: sv.ID()})
		}
	}
	return table
}

func insertIfAbsent(table map[string]ECDest, key string, dest ECDest) {
	if _, exists := table[key]; !exists {
		table[key] = dest
	}
}

// Resolve looks up selector in contract's table, falling back to the
// FALLBACK entry on a miss.
func (r *ExternalRouter) Resolve(contract *ast.ContractDefinition, selector string) (ECDest, bool) {
	table, ok := r.tables[contract.ID()]
	if !ok {
		return ECDest{}, false
	}
	if dest, ok := table[selector]; ok {
		return dest, true
	}
	if dest, ok := table[SelectorFallback]; ok {
		return dest, true
	}
	return ECDest{}, false
}

// Table exposes the raw selector table for a contract, used by the
// missing-inheritance detector to compare implemented selector sets.
func (r *ExternalRouter) Table(contract *ast.ContractDefinition) map[string]ECDest {
	return r.tables[contract.ID()]
}
