// Package callgraph builds per-contract and legacy workspace-global call
// graphs from internal-call and modifier-invocation sites, resolved
// through package dispatch, and exposes a Consumer/Walker protocol for
// detectors to traverse them.
package callgraph

import (
	"sort"

	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/browse"
	"github.com/solwatch/solwatch/dispatch"
	"github.com/solwatch/solwatch/workspace"
)

// RawCallGraph is a directed adjacency map between function/modifier
// NodeIDs. Edge insertion order is preserved so DFS traversal order
// mirrors source order, per the engine's ordering guarantees.
type RawCallGraph struct {
	edges map[ast.NodeID][]ast.NodeID
	seen  map[ast.NodeID]map[ast.NodeID]struct{}
}

func newRawCallGraph() *RawCallGraph {
	return &RawCallGraph{
		edges: make(map[ast.NodeID][]ast.NodeID),
		seen:  make(map[ast.NodeID]map[ast.NodeID]struct{}),
	}
}

func (g *RawCallGraph) addEdge(from, to ast.NodeID) {
	if g.seen[from] == nil {
		g.seen[from] = make(map[ast.NodeID]struct{})
	}
	if _, dup := g.seen[from][to]; dup {
		return
	}
	g.seen[from][to] = struct{}{}
	g.edges[from] = append(g.edges[from], to)
}

// Successors returns from's outgoing edges in insertion order.
func (g *RawCallGraph) Successors(from ast.NodeID) []ast.NodeID { return g.edges[from] }

// Transpose reverses every edge, deriving an outward graph from an inward
// one or vice versa.
func (g *RawCallGraph) Transpose() *RawCallGraph {
	out := newRawCallGraph()
	// Iterate in a stable order so the transposed graph's edge lists are
	// deterministic across runs.
	froms := make([]ast.NodeID, 0, len(g.edges))
	for from := range g.edges {
		froms = append(froms, from)
	}
	sort.Slice(froms, func(i, j int) bool { return froms[i] < froms[j] })
	for _, from := range froms {
		for _, to := range g.edges[from] {
			out.addEdge(to, from)
		}
	}
	return out
}

// Graphs holds the per-contract inward/outward call graphs plus the
// legacy workspace-global pair.
type Graphs struct {
	PerContractInward map[ast.NodeID]*RawCallGraph // contract ID -> inward graph
	PerContractOutward map[ast.NodeID]*RawCallGraph
	GlobalInward       *RawCallGraph
	GlobalOutward      *RawCallGraph
}

// Build constructs per-contract and legacy global call graphs for every
// deployable contract in w, resolving call sites through router.
func Build(w *workspace.Workspace, router *dispatch.InternalRouter) *Graphs {
	g := &Graphs{
		PerContractInward:  make(map[ast.NodeID]*RawCallGraph),
		PerContractOutward: make(map[ast.NodeID]*RawCallGraph),
		GlobalInward:       newRawCallGraph(),
	}

	for _, unit := range w.SourceUnits() {
		for _, decl := range unit.Declarations() {
			c, ok := ast.As[*ast.ContractDefinition](decl)
			if !ok || !c.IsDeployable() {
				continue
			}
			inward := newRawCallGraph()
			buildContractEdges(w, router, c, inward, g.GlobalInward)
			g.PerContractInward[c.ID()] = inward
			g.PerContractOutward[c.ID()] = inward.Transpose()
		}
	}
	g.GlobalOutward = g.GlobalInward.Transpose()
	return g
}

func buildContractEdges(w *workspace.Workspace, router *dispatch.InternalRouter, c *ast.ContractDefinition, inward, global *RawCallGraph) {
	for _, id := range c.LinearizedBaseContracts {
		n, ok := w.Node(id)
		if !ok {
			continue
		}
		base, ok := ast.As[*ast.ContractDefinition](n)
		if !ok {
			continue
		}
		for _, fn := range base.FunctionDefinitions() {
			body := fn.Body()
			if body == nil {
				continue
			}
			for _, call := range browse.FunctionCalls(body) {
				if !call.IsInternalCall() {
					continue // external calls are a call-graph terminator
				}
				if callee, ok := router.ResolveCall(call, c); ok {
					inward.addEdge(fn.ID(), callee.ID())
					global.addEdge(fn.ID(), callee.ID())
				}
			}
			for _, inv := range fn.Modifiers() {
				if mod, ok := router.ResolveModifier(inv, c); ok {
					inward.addEdge(fn.ID(), mod.ID())
					global.addEdge(fn.ID(), mod.ID())
				}
			}
		}
	}
}

// Direction selects which graph(s) a Walker traverses.
type Direction int

const (
	Inward Direction = iota
	Outward
	BothWays
)
