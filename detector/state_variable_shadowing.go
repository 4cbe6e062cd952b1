package detector

import (
	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"
)

// StateVariableShadowing flags a contract declaring a state variable
// whose name collides with one already declared by a base contract in
// its C3 chain, a supplemented detector grounded on the original tool's
// Rust catalogue.
type StateVariableShadowing struct{ Base }

func (*StateVariableShadowing) Name() string            { return "state-variable-shadowing" }
func (*StateVariableShadowing) Severity() report.Severity { return report.SeverityHigh }
func (*StateVariableShadowing) Title() string           { return "State variable shadows a base contract's" }
func (*StateVariableShadowing) Description() string {
	return "This state variable has the same name as one declared by a base contract, shadowing it rather than overriding it."
}

func (d *StateVariableShadowing) Detect(w *workspace.Workspace) (bool, error) {
	for _, unit := range w.SourceUnits() {
		for _, decl := range unit.Declarations() {
			c, ok := ast.As[*ast.ContractDefinition](decl)
			if !ok {
				continue
			}
			chain := c.LinearizedBaseContracts
			if len(chain) < 2 {
				continue
			}
			seen := make(map[string]ast.NodeID)
			// Walk least-derived to most-derived so the first owner of a
			// name is always a base, and any later redeclaration in a
			// more-derived contract is the shadow.
			for i := len(chain) - 1; i >= 0; i-- {
				n, ok := w.Node(chain[i])
				if !ok {
					continue
				}
				base, ok := ast.As[*ast.ContractDefinition](n)
				if !ok {
					continue
				}
				for _, sv := range base.StateVariables() {
					if owner, exists := seen[sv.Name]; exists && owner != sv.ID() {
						d.Capture(w, sv)
						continue
					}
					if _, exists := seen[sv.Name]; !exists {
						seen[sv.Name] = sv.ID()
					}
				}
			}
		}
	}
	return len(d.Instances()) > 0, nil
}
