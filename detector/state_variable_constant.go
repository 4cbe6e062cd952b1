package detector

import (
	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/browse"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"
)

// StateVariableCouldBeConstant flags a state variable that has a literal
// initializer, is not already constant/immutable, is not of internal
// function type, carries no override specifier, and is never written by a
// non-constructor function of the contract.
type StateVariableCouldBeConstant struct{ Base }

func (*StateVariableCouldBeConstant) Name() string            { return "state-variable-could-be-constant" }
func (*StateVariableCouldBeConstant) Severity() report.Severity { return report.SeverityLow }
func (*StateVariableCouldBeConstant) Title() string           { return "State variable could be declared constant" }
func (*StateVariableCouldBeConstant) Description() string {
	return "This state variable has a literal initializer and is never written outside a constructor; it can be declared constant."
}

func (d *StateVariableCouldBeConstant) Detect(w *workspace.Workspace) (bool, error) {
	for _, unit := range w.SourceUnits() {
		for _, decl := range unit.Declarations() {
			c, ok := ast.As[*ast.ContractDefinition](decl)
			if !ok || !c.IsDeployable() {
				continue
			}
			candidates := constantCandidates(c)
			if len(candidates) == 0 {
				continue
			}
			written := writesOutsideConstructors(w, c)
			for id, sv := range candidates {
				if _, isWritten := written[id]; !isWritten {
					d.Capture(w, sv)
				}
			}
		}
	}
	return len(d.Instances()) > 0, nil
}

func constantCandidates(c *ast.ContractDefinition) map[ast.NodeID]*ast.VariableDeclaration {
	out := make(map[ast.NodeID]*ast.VariableDeclaration)
	for _, sv := range c.StateVariables() {
		if sv.Constant || sv.MutabilityValue == ast.MutabilityVarImmutable {
			continue
		}
		if sv.HasOverride() {
			continue
		}
		if sv.TypeDescriptionsValue.IsInternalFunction() {
			continue
		}
		if !sv.HasLiteralInitializer() {
			continue
		}
		out[sv.ID()] = sv
	}
	return out
}

// writesOutsideConstructors returns the NodeIDs of state variables written
// by any non-constructor external/public function reachable via an
// inward call-graph DFS, approximated here by scanning every implemented
// function body directly (the per-contract call graph is built
// separately by package callgraph; this detector only needs the union of
// writes, not the traversal order).
func writesOutsideConstructors(w *workspace.Workspace, c *ast.ContractDefinition) browse.StateVariableSet {
	written := browse.StateVariableSet{}
	for _, fn := range c.FunctionDefinitions() {
		if fn.Kind() == ast.FunctionKindConstructor || fn.Body() == nil {
			continue
		}
		written = written.Union(browse.ApproximateStorageChangeFinder(w, fn.Body()))
	}
	return written
}
