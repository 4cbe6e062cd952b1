package detector

import (
	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/browse"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"
)

// UninitializedStateVariable flags a storage-location state variable of
// elementary address type that is never assigned in any function body of
// the contract, including every constructor, leaving it at its zero value
// unless a subclass or later upgrade sets it. Supplemented detector
// grounded on the original tool's Rust catalogue.
type UninitializedStateVariable struct{ Base }

func (*UninitializedStateVariable) Name() string            { return "uninitialized-state-variable" }
func (*UninitializedStateVariable) Severity() report.Severity { return report.SeverityHigh }
func (*UninitializedStateVariable) Title() string           { return "Uninitialized state variable" }
func (*UninitializedStateVariable) Description() string {
	return "This address-typed state variable has no literal initializer and is never assigned in any constructor or function body."
}

func (d *UninitializedStateVariable) Detect(w *workspace.Workspace) (bool, error) {
	for _, unit := range w.SourceUnits() {
		for _, decl := range unit.Declarations() {
			c, ok := ast.As[*ast.ContractDefinition](decl)
			if !ok || !c.IsDeployable() {
				continue
			}
			candidates := addressCandidates(c)
			if len(candidates) == 0 {
				continue
			}
			written := browse.StateVariableSet{}
			for _, fn := range c.FunctionDefinitions() {
				if fn.Body() == nil {
					continue
				}
				written = written.Union(browse.ApproximateStorageChangeFinder(w, fn.Body()))
			}
			for id, sv := range candidates {
				if _, ok := written[id]; !ok {
					d.Capture(w, sv)
				}
			}
		}
	}
	return len(d.Instances()) > 0, nil
}

func addressCandidates(c *ast.ContractDefinition) map[ast.NodeID]*ast.VariableDeclaration {
	out := make(map[ast.NodeID]*ast.VariableDeclaration)
	for _, sv := range c.StateVariables() {
		if sv.Constant || sv.MutabilityValue == ast.MutabilityVarImmutable {
			continue
		}
		if sv.HasLiteralInitializer() || sv.Value() != nil {
			continue
		}
		elem, ok := ast.As[*ast.ElementaryTypeName](typeNameOf(sv))
		if !ok || !elem.IsAddress() {
			continue
		}
		out[sv.ID()] = sv
	}
	return out
}
