// Package cfg builds a flattened control-flow graph from a function or
// modifier body. CFG nodes are typed Void (structural sentinels) or
// Primitive (statement leaves); compound statements are expanded into
// sentinel-bounded regions as they are reached. Nodes live in a single
// per-CFG arena addressed by opaque NodeID, never by AST pointer.
package cfg

import "github.com/solwatch/solwatch/ast"

// NodeID is an opaque index into a Graph's node arena.
type NodeID int

// Kind enumerates every CFG node variant.
type Kind int

const (
	KindStart Kind = iota
	KindEnd

	KindStartBlock
	KindEndBlock
	KindStartUnchecked
	KindEndUnchecked

	KindStartIf
	KindEndIf
	KindStartIfCond
	KindEndIfCond
	KindStartIfTrue
	KindEndIfTrue
	KindStartIfFalse
	KindEndIfFalse

	KindStartWhile
	KindEndWhile
	KindStartWhileCond
	KindEndWhileCond
	KindStartWhileBody
	KindEndWhileBody

	KindStartFor
	KindEndFor
	KindStartForInit
	KindEndForInit
	KindStartForCond
	KindEndForCond
	KindStartForLoopExp
	KindEndForLoopExp
	KindStartForBody
	KindEndForBody

	KindStartDoWhile
	KindEndDoWhile
	KindStartDoWhileCond
	KindEndDoWhileCond
	KindStartDoWhileBody
	KindEndDoWhileBody

	// Primitive leaves.
	KindVariableDeclarationStatement
	KindExpressionStatement
	KindEmitStatement
	KindReturnStatement
	KindRevertStatement
	KindBreakStatement
	KindContinueStatement
	KindPlaceholderStatement
	KindInlineAssembly
)

// node is one arena entry: its kind and, for a primitive leaf, the AST
// node it reflects.
type node struct {
	kind Kind
	ast  ast.Node
}

// Graph is a flat adjacency map over an arena of CFG nodes.
type Graph struct {
	nodes []node
	succ  map[NodeID][]NodeID
	pred  map[NodeID][]NodeID
}

func newGraph() *Graph {
	return &Graph{succ: make(map[NodeID][]NodeID), pred: make(map[NodeID][]NodeID)}
}

func (g *Graph) alloc(kind Kind, reflected ast.Node) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node{kind: kind, ast: reflected})
	return id
}

func (g *Graph) addEdge(from, to NodeID) {
	g.succ[from] = append(g.succ[from], to)
	g.pred[to] = append(g.pred[to], from)
}

// Kind returns a node's variant.
func (g *Graph) Kind(id NodeID) Kind { return g.nodes[id].kind }

// Children returns id's successors in insertion order, mirroring source
// order of statements and expressions.
func (g *Graph) Children(id NodeID) []NodeID { return g.succ[id] }

// Predecessors returns the nodes with an edge into id.
func (g *Graph) Predecessors(id NodeID) []NodeID { return g.pred[id] }

// Reflect returns the AST node a primitive leaf wraps, if any.
func (g *Graph) Reflect(id NodeID) (ast.Node, bool) {
	n := g.nodes[id].ast
	return n, n != nil
}

// region is a constructed sub-graph's entry/exit pair, used while wiring
// predecessors/successors during reduction.
type region struct {
	start, end NodeID
}

// FromFunctionBody builds a CFG for fn's body, returning the graph and its
// overall entry/exit nodes. A function with no body (interface/abstract
// declaration) yields a degenerate two-node Start->End graph.
func FromFunctionBody(fn *ast.FunctionDefinition) (*Graph, NodeID, NodeID) {
	if body := fn.Body(); body != nil {
		return build(body)
	}
	return build(nil)
}

// FromModifierBody is the modifier-definition equivalent of
// FromFunctionBody.
func FromModifierBody(m *ast.ModifierDefinition) (*Graph, NodeID, NodeID) {
	if body := m.Body(); body != nil {
		return build(body)
	}
	return build(nil)
}

func build(body ast.Node) (*Graph, NodeID, NodeID) {
	g := newGraph()
	start := g.alloc(KindStart, nil)
	end := g.alloc(KindEnd, nil)

	if body == nil {
		g.addEdge(start, end)
		return g, start, end
	}

	r := reduceStatement(g, body)
	g.addEdge(start, r.start)
	g.addEdge(r.end, end)
	return g, start, end
}

// reduceStatement dispatches a single statement (block or leaf) into the
// graph and returns its entry/exit pair. Unlike the spec's worklist
// formulation this recurses directly; the visible behavior — order of
// node creation, edge wiring — is identical, and a Go call stack is a
// perfectly good worklist for ASTs of the depth Solidity functions reach.
func reduceStatement(g *Graph, n ast.Node) region {
	switch t := n.(type) {
	case *ast.Block:
		return reduceSequence(g, KindStartBlock, KindEndBlock, t.Statements())
	case *ast.UncheckedBlock:
		return reduceSequence(g, KindStartUnchecked, KindEndUnchecked, t.Statements())
	case *ast.IfStatement:
		return reduceIf(g, t)
	case *ast.WhileStatement:
		return reduceWhile(g, t)
	case *ast.ForStatement:
		return reduceFor(g, t)
	case *ast.DoWhileStatement:
		return reduceDoWhile(g, t)
	default:
		id := leafID(g, n)
		return region{start: id, end: id}
	}
}

func leafID(g *Graph, n ast.Node) NodeID {
	kind := KindExpressionStatement
	switch n.(type) {
	case *ast.VariableDeclarationStatement:
		kind = KindVariableDeclarationStatement
	case *ast.ExpressionStatement:
		kind = KindExpressionStatement
	case *ast.EmitStatement:
		kind = KindEmitStatement
	case *ast.Return:
		kind = KindReturnStatement
	case *ast.RevertStatement:
		kind = KindRevertStatement
	case *ast.Break:
		kind = KindBreakStatement
	case *ast.Continue:
		kind = KindContinueStatement
	case *ast.PlaceholderStatement:
		kind = KindPlaceholderStatement
	case *ast.InlineAssembly:
		kind = KindInlineAssembly
	}
	return g.alloc(kind, n)
}

// reduceSequence threads a list of statements linearly between a
// Start/End sentinel pair, recursively reducing compound statements
// in place so an already-threaded region is never revisited.
func reduceSequence(g *Graph, startKind, endKind Kind, stmts []ast.Node) region {
	start := g.alloc(startKind, nil)
	end := g.alloc(endKind, nil)
	if len(stmts) == 0 {
		g.addEdge(start, end)
		return region{start: start, end: end}
	}
	cursor := start
	for _, stmt := range stmts {
		r := reduceStatement(g, stmt)
		g.addEdge(cursor, r.start)
		cursor = r.end
	}
	g.addEdge(cursor, end)
	return region{start: start, end: end}
}

func reduceIf(g *Graph, s *ast.IfStatement) region {
	start := g.alloc(KindStartIf, nil)
	end := g.alloc(KindEndIf, nil)

	condStart := g.alloc(KindStartIfCond, nil)
	condEnd := g.alloc(KindEndIfCond, nil)
	cond := reduceStatement(g, s.Condition())
	g.addEdge(condStart, cond.start)
	g.addEdge(cond.end, condEnd)
	g.addEdge(start, condStart)

	trueStart := g.alloc(KindStartIfTrue, nil)
	trueEnd := g.alloc(KindEndIfTrue, nil)
	if body := s.TrueBody(); body != nil {
		r := reduceStatement(g, body)
		g.addEdge(trueStart, r.start)
		g.addEdge(r.end, trueEnd)
	} else {
		g.addEdge(trueStart, trueEnd)
	}

	falseStart := g.alloc(KindStartIfFalse, nil)
	falseEnd := g.alloc(KindEndIfFalse, nil)
	if body := s.FalseBody(); body != nil {
		r := reduceStatement(g, body)
		g.addEdge(falseStart, r.start)
		g.addEdge(r.end, falseEnd)
	} else {
		// No else clause: an empty pass-through branch, per the
		// construction algorithm, so both arms are always present.
		g.addEdge(falseStart, falseEnd)
	}

	g.addEdge(condEnd, trueStart)
	g.addEdge(condEnd, falseStart)
	g.addEdge(trueEnd, end)
	g.addEdge(falseEnd, end)

	return region{start: start, end: end}
}

func reduceWhile(g *Graph, s *ast.WhileStatement) region {
	start := g.alloc(KindStartWhile, nil)
	end := g.alloc(KindEndWhile, nil)

	condStart := g.alloc(KindStartWhileCond, nil)
	condEnd := g.alloc(KindEndWhileCond, nil)
	cond := reduceStatement(g, s.Condition())
	g.addEdge(condStart, cond.start)
	g.addEdge(cond.end, condEnd)
	g.addEdge(start, condStart)

	bodyStart := g.alloc(KindStartWhileBody, nil)
	bodyEnd := g.alloc(KindEndWhileBody, nil)
	r := reduceStatement(g, s.Body())
	g.addEdge(bodyStart, r.start)
	g.addEdge(r.end, bodyEnd)

	g.addEdge(condEnd, bodyStart)
	g.addEdge(condEnd, end) // exit
	g.addEdge(bodyEnd, condStart) // back-edge

	return region{start: start, end: end}
}

func reduceFor(g *Graph, s *ast.ForStatement) region {
	start := g.alloc(KindStartFor, nil)
	end := g.alloc(KindEndFor, nil)

	initStart := g.alloc(KindStartForInit, nil)
	initEnd := g.alloc(KindEndForInit, nil)
	if init := s.Init(); init != nil {
		r := reduceStatement(g, init)
		g.addEdge(initStart, r.start)
		g.addEdge(r.end, initEnd)
	} else {
		g.addEdge(initStart, initEnd)
	}
	g.addEdge(start, initStart)

	condStart := g.alloc(KindStartForCond, nil)
	condEnd := g.alloc(KindEndForCond, nil)
	if cond := s.Condition(); cond != nil {
		r := reduceStatement(g, cond)
		g.addEdge(condStart, r.start)
		g.addEdge(r.end, condEnd)
	} else {
		g.addEdge(condStart, condEnd)
	}
	g.addEdge(initEnd, condStart)

	loopStart := g.alloc(KindStartForLoopExp, nil)
	loopEnd := g.alloc(KindEndForLoopExp, nil)
	if loop := s.LoopExpr(); loop != nil {
		r := reduceStatement(g, loop)
		g.addEdge(loopStart, r.start)
		g.addEdge(r.end, loopEnd)
	} else {
		g.addEdge(loopStart, loopEnd)
	}

	bodyStart := g.alloc(KindStartForBody, nil)
	bodyEnd := g.alloc(KindEndForBody, nil)
	r := reduceStatement(g, s.Body())
	g.addEdge(bodyStart, r.start)
	g.addEdge(r.end, bodyEnd)

	g.addEdge(condEnd, bodyStart)
	g.addEdge(condEnd, end) // exit
	g.addEdge(bodyEnd, loopStart)
	g.addEdge(loopEnd, condStart) // back-edge

	return region{start: start, end: end}
}

func reduceDoWhile(g *Graph, s *ast.DoWhileStatement) region {
	start := g.alloc(KindStartDoWhile, nil)
	end := g.alloc(KindEndDoWhile, nil)

	bodyStart := g.alloc(KindStartDoWhileBody, nil)
	bodyEnd := g.alloc(KindEndDoWhileBody, nil)
	r := reduceStatement(g, s.Body())
	g.addEdge(bodyStart, r.start)
	g.addEdge(r.end, bodyEnd)
	g.addEdge(start, bodyStart)

	condStart := g.alloc(KindStartDoWhileCond, nil)
	condEnd := g.alloc(KindEndDoWhileCond, nil)
	cond := reduceStatement(g, s.Condition())
	g.addEdge(condStart, cond.start)
	g.addEdge(cond.end, condEnd)
	g.addEdge(bodyEnd, condStart)

	g.addEdge(condEnd, bodyStart) // back-edge
	g.addEdge(condEnd, end)       // exit

	return region{start: start, end: end}
}
