package detector

import (
	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/browse"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"
)

// StateVariableCouldBeImmutable flags a state variable with no literal
// initializer that is written in a constructor and by no other function,
// on a pragma gated at >= 0.6.5 (the release that
// introduced the `immutable` keyword).
type StateVariableCouldBeImmutable struct{ Base }

func (*StateVariableCouldBeImmutable) Name() string            { return "state-variable-could-be-immutable" }
func (*StateVariableCouldBeImmutable) Severity() report.Severity { return report.SeverityLow }
func (*StateVariableCouldBeImmutable) Title() string           { return "State variable could be declared immutable" }
func (*StateVariableCouldBeImmutable) Description() string {
	return "This state variable is only ever assigned from a constructor; it can be declared immutable."
}

func (d *StateVariableCouldBeImmutable) Detect(w *workspace.Workspace) (bool, error) {
	for _, unit := range w.SourceUnits() {
		if !pragmaAtLeast(unit, "0.6.5") {
			continue
		}
		for _, decl := range unit.Declarations() {
			c, ok := ast.As[*ast.ContractDefinition](decl)
			if !ok || !c.IsDeployable() {
				continue
			}
			candidates := immutableCandidates(c)
			if len(candidates) == 0 {
				continue
			}
			writtenOutside := writesOutsideConstructors(w, c)
			writtenInCtor := writesInConstructors(w, c)
			for id, sv := range candidates {
				if _, bad := writtenOutside[id]; bad {
					continue
				}
				if _, ok := writtenInCtor[id]; ok {
					d.Capture(w, sv)
				}
			}
		}
	}
	return len(d.Instances()) > 0, nil
}

func immutableCandidates(c *ast.ContractDefinition) map[ast.NodeID]*ast.VariableDeclaration {
	out := make(map[ast.NodeID]*ast.VariableDeclaration)
	for _, sv := range c.StateVariables() {
		if sv.Constant || sv.MutabilityValue == ast.MutabilityVarImmutable {
			continue
		}
		if sv.HasOverride() || sv.HasLiteralInitializer() {
			continue
		}
		if sv.TypeDescriptionsValue.IsInternalFunction() {
			continue
		}
		out[sv.ID()] = sv
	}
	return out
}

func writesInConstructors(w *workspace.Workspace, c *ast.ContractDefinition) browse.StateVariableSet {
	written := browse.StateVariableSet{}
	for _, fn := range c.FunctionDefinitions() {
		if fn.Kind() != ast.FunctionKindConstructor || fn.Body() == nil {
			continue
		}
		written = written.Union(browse.ApproximateStorageChangeFinder(w, fn.Body()))
	}
	return written
}
