package detector

import (
	"strings"

	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/browse"
	"github.com/solwatch/solwatch/cfg"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"
)

// isExternalCall reports whether call leaves the current contract's
// execution context: a low-level call primitive, or any function call
// resolved to an external/non-internal target.
func isExternalCall(call *ast.FunctionCall) bool {
	if call.Kind() != "functionCall" {
		return false
	}
	if member, ok := ast.As[*ast.MemberAccess](call.Expression()); ok && member.IsLowLevelCall() {
		return true
	}
	return !call.IsInternalCall()
}

// externalCallsIn returns every external FunctionCall in n's subtree.
func externalCallsIn(n ast.Node) []*ast.FunctionCall {
	var out []*ast.FunctionCall
	for _, call := range browse.FunctionCalls(n) {
		if isExternalCall(call) {
			out = append(out, call)
		}
	}
	return out
}

// walkForward runs f over every CFG node reachable from start (exclusive),
// stopping a branch early when f returns false.
func walkForward(g *cfg.Graph, start cfg.NodeID, f func(cfg.NodeID) bool) {
	visited := map[cfg.NodeID]bool{}
	var walk func(cfg.NodeID)
	walk = func(id cfg.NodeID) {
		if visited[id] {
			return
		}
		visited[id] = true
		if !f(id) {
			return
		}
		for _, next := range g.Children(id) {
			walk(next)
		}
	}
	for _, next := range g.Children(start) {
		walk(next)
	}
}

func eachImplementedExternalFunction(w *workspace.Workspace, visit func(fn *ast.FunctionDefinition)) {
	for _, unit := range w.SourceUnits() {
		for _, decl := range unit.Declarations() {
			c, ok := ast.As[*ast.ContractDefinition](decl)
			if !ok || !c.IsDeployable() {
				continue
			}
			for _, fn := range c.FunctionDefinitions() {
				if !fn.Implemented || fn.Body() == nil {
					continue
				}
				if fn.Visibility != ast.VisibilityPublic && fn.Visibility != ast.VisibilityExternal {
					continue
				}
				visit(fn)
			}
		}
	}
}

// ReentrancyStateChange flags an external call whose CFG successors
// include a state write, a classic checks-effects-interactions violation.
type ReentrancyStateChange struct{ Base }

func (*ReentrancyStateChange) Name() string        { return "reentrancy-state-change" }
func (*ReentrancyStateChange) Severity() report.Severity { return report.SeverityHigh }
func (*ReentrancyStateChange) Title() string       { return "State change after external call" }
func (*ReentrancyStateChange) Description() string {
	return "A state variable is written after an external call completes within the same function, allowing a reentrant callee to observe stale state."
}

func (d *ReentrancyStateChange) Detect(w *workspace.Workspace) (bool, error) {
	eachImplementedExternalFunction(w, func(fn *ast.FunctionDefinition) {
		g, entry, _ := cfg.FromFunctionBody(fn)
		walkForward(g, entry, func(id cfg.NodeID) bool {
			reflected, ok := g.Reflect(id)
			if !ok {
				return true
			}
			calls := externalCallsIn(reflected)
			if len(calls) == 0 {
				return true
			}
			walkForward(g, id, func(succID cfg.NodeID) bool {
				succReflected, ok := g.Reflect(succID)
				if !ok {
					return true
				}
				written := browse.ApproximateStorageChangeFinder(w, succReflected)
				if len(written) == 0 {
					return true
				}
				d.Capture(w, reflected)
				var names []string
				for _, decl := range written {
					names = append(names, decl.Name)
				}
				d.CaptureHint(w, reflected, "writes: "+strings.Join(names, ", "))
				return true
			})
			return true
		})
	})
	return len(d.Instances()) > 0, nil
}
