package callgraph

import (
	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/browse"
	"github.com/solwatch/solwatch/internal/errs"
)

// Visitor receives callbacks during a Walker.Accept traversal. Any method
// may return an error to abort the walk; Accept wraps it in
// errs.VisitorFailure.
type Visitor interface {
	VisitEntryPoint(id ast.NodeID) error
	VisitInward(id ast.NodeID) error
	VisitOutward(id ast.NodeID) error
	VisitOutwardSideEffect(id ast.NodeID) error
}

// Walker drives a traversal over a Graphs pair starting from a fixed set
// of entry points and their derived surface points.
type Walker struct {
	graphs              *Graphs
	entryPoints         []ast.NodeID
	inwardSurfacePoints []ast.NodeID
	outwardSurfacePoints []ast.NodeID
	direction           Direction
}

// Consumer builds a Walker configured for one traversal. entryPoints are
// the caller-supplied AST nodes (typically function/modifier
// definitions, but any node containing callable references is allowed);
// surface points are derived from referenced declarations reachable from
// them.
func Consumer(w interface {
	Node(ast.NodeID) (ast.Node, bool)
}, graphs *Graphs, entryPoints []ast.NodeID, direction Direction) *Walker {
	walker := &Walker{graphs: graphs, entryPoints: entryPoints, direction: direction}
	for _, id := range entryPoints {
		n, ok := w.Node(id)
		if !ok {
			continue
		}
		for refID := range browse.ReferencedDeclarations(n) {
			walker.inwardSurfacePoints = append(walker.inwardSurfacePoints, refID)
			walker.outwardSurfacePoints = append(walker.outwardSurfacePoints, refID)
		}
	}
	return walker
}

// Accept issues visit_entry_point for each entry point in caller-supplied
// order, then a DFS from each surface point over the chosen graph(s),
// deduplicating visited IDs. When direction is BothWays, a secondary DFS
// over outward-reached nodes through the inward graph emits side-effect
// visits, blacklisting IDs already seen by the primary passes.
func (w *Walker) Accept(contractID ast.NodeID, visitor Visitor) error {
	for _, id := range w.entryPoints {
		if err := visitor.VisitEntryPoint(id); err != nil {
			return errs.Wrap(errs.VisitorFailure, err.Error())
		}
	}

	visited := make(map[ast.NodeID]struct{})
	outwardVisited := make(map[ast.NodeID]struct{})

	if w.direction == Inward || w.direction == BothWays {
		inward := w.graphs.PerContractInward[contractID]
		for _, start := range w.inwardSurfacePoints {
			if err := dfs(inward, start, visited, visitor.VisitInward); err != nil {
				return err
			}
		}
	}
	if w.direction == Outward || w.direction == BothWays {
		outward := w.graphs.PerContractOutward[contractID]
		for _, start := range w.outwardSurfacePoints {
			if err := dfs(outward, start, outwardVisited, visitor.VisitOutward); err != nil {
				return err
			}
		}
	}
	if w.direction == BothWays {
		blacklist := make(map[ast.NodeID]struct{}, len(visited)+len(outwardVisited))
		for id := range visited {
			blacklist[id] = struct{}{}
		}
		for id := range outwardVisited {
			blacklist[id] = struct{}{}
		}
		inward := w.graphs.PerContractInward[contractID]
		for id := range outwardVisited {
			if err := dfs(inward, id, blacklist, visitor.VisitOutwardSideEffect); err != nil {
				return err
			}
		}
	}
	return nil
}

func dfs(g *RawCallGraph, start ast.NodeID, visited map[ast.NodeID]struct{}, visit func(ast.NodeID) error) error {
	if g == nil {
		return nil
	}
	if _, ok := visited[start]; ok {
		return nil
	}
	visited[start] = struct{}{}
	if err := visit(start); err != nil {
		return errs.Wrap(errs.VisitorFailure, err.Error())
	}
	for _, next := range g.Successors(start) {
		if err := dfs(g, next, visited, visit); err != nil {
			return err
		}
	}
	return nil
}
