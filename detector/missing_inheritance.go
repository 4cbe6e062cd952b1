package detector

import (
	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/dispatch"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"
)

// MissingInheritance flags a deployable contract that implements every
// selector an interface or abstract contract declares, without actually
// listing it as a base contract, suggesting a missing `is I` that would
// make the relationship explicit and checkable by the compiler.
type MissingInheritance struct{ Base }

func (*MissingInheritance) Name() string            { return "missing-inheritance" }
func (*MissingInheritance) Severity() report.Severity { return report.SeverityLow }
func (*MissingInheritance) Title() string           { return "Contract could declare an inheritance relationship" }
func (*MissingInheritance) Description() string {
	return "This contract implements every selector of an interface or abstract contract it does not inherit from."
}

func (d *MissingInheritance) Detect(w *workspace.Workspace) (bool, error) {
	router := dispatch.NewExternalRouter(w)

	var deployables, abstractOrInterfaces []*ast.ContractDefinition
	for _, unit := range w.SourceUnits() {
		for _, decl := range unit.Declarations() {
			c, ok := ast.As[*ast.ContractDefinition](decl)
			if !ok {
				continue
			}
			if c.IsDeployable() && !c.Abstract {
				deployables = append(deployables, c)
			}
			if c.ContractKindValue == ast.ContractKindInterface || c.Abstract {
				abstractOrInterfaces = append(abstractOrInterfaces, c)
			}
		}
	}

	for _, c := range deployables {
		if len(c.BaseContracts()) > 0 {
			continue
		}
		cSelectors := selectorSet(router.Table(c))
		for _, iface := range abstractOrInterfaces {
			if iface.ID() == c.ID() || inChain(c.LinearizedBaseContracts, iface.ID()) {
				continue
			}
			ifaceSelectors := selectorSet(router.Table(iface))
			if len(ifaceSelectors) == 0 {
				continue
			}
			if isSubset(ifaceSelectors, cSelectors) {
				d.Capture(w, c)
			}
		}
	}
	return len(d.Instances()) > 0, nil
}

func selectorSet(table map[string]dispatch.ECDest) map[string]struct{} {
	out := make(map[string]struct{}, len(table))
	for selector := range table {
		out[selector] = struct{}{}
	}
	return out
}

func isSubset(a, b map[string]struct{}) bool {
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func inChain(chain []ast.NodeID, id ast.NodeID) bool {
	for _, c := range chain {
		if c == id {
			return true
		}
	}
	return false
}
