package detector

import (
	"regexp"

	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/browse"
	"github.com/solwatch/solwatch/callgraph"
	"github.com/solwatch/solwatch/dispatch"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"
)

// ConstantFunctionContainsAssembly flags a view/pure function, on a
// pragma that allows compiling below Solidity 0.5.0, whose inward call
// graph reaches any inline assembly block. Prior to 0.5.0 the compiler
// did not enforce view/pure purity through STATICCALL, so a mislabeled
// function reachable through assembly could still mutate state.
type ConstantFunctionContainsAssembly struct{ Base }

func (*ConstantFunctionContainsAssembly) Name() string { return "constant-function-contains-assembly" }
func (*ConstantFunctionContainsAssembly) Severity() report.Severity { return report.SeverityLow }
func (*ConstantFunctionContainsAssembly) Title() string {
	return "Constant function contains assembly"
}
func (*ConstantFunctionContainsAssembly) Description() string {
	return "view/pure was not enforced by STATICCALL prior to Solidity 0.5.0; a function reachable through this assembly could still modify state when compiled against an older pragma."
}

var legacyPragma = regexp.MustCompile(`0\.4\.\d+`)

// allowsPreFiveZero reports whether unit's pragma literals could resolve
// to a 0.4.x compiler, a coarse stand-in for full semver-range matching
// that is sufficient for the narrow 0.4.x/0.5.0 boundary this detector
// cares about.
func allowsPreFiveZero(unit *ast.SourceUnit) bool {
	for _, p := range browse.PragmaDirectives(unit) {
		str, ok := p.VersionPragmaString()
		if ok && legacyPragma.MatchString(str) {
			return true
		}
	}
	return false
}

func (d *ConstantFunctionContainsAssembly) Detect(w *workspace.Workspace) (bool, error) {
	router := dispatch.NewInternalRouter(w)
	graphs := callgraph.Build(w, router)

	for _, unit := range w.SourceUnits() {
		if !allowsPreFiveZero(unit) {
			continue
		}
		for _, decl := range unit.Declarations() {
			c, ok := ast.As[*ast.ContractDefinition](decl)
			if !ok || !c.IsDeployable() {
				continue
			}
			for _, fn := range c.FunctionDefinitions() {
				if fn.StateMutabilityValue != ast.MutabilityView && fn.StateMutabilityValue != ast.MutabilityPure {
					continue
				}
				if !fn.Implemented || fn.Body() == nil {
					continue
				}
				if reachesAssembly(w, graphs, c.ID(), fn) {
					d.Capture(w, fn)
				}
			}
		}
	}
	return len(d.Instances()) > 0, nil
}

func reachesAssembly(w *workspace.Workspace, graphs *callgraph.Graphs, contractID ast.NodeID, fn *ast.FunctionDefinition) bool {
	if len(browse.InlineAssemblies(fn.Body())) > 0 {
		return true
	}
	found := false
	visitor := &assemblyVisitor{w: w, found: &found}
	walker := callgraph.Consumer(w, graphs, []ast.NodeID{fn.ID()}, callgraph.Inward)
	_ = walker.Accept(contractID, visitor)
	return found
}

type assemblyVisitor struct {
	w     *workspace.Workspace
	found *bool
}

func (v *assemblyVisitor) VisitEntryPoint(id ast.NodeID) error { return nil }

func (v *assemblyVisitor) VisitInward(id ast.NodeID) error {
	n, ok := v.w.Node(id)
	if !ok {
		return nil
	}
	fn, ok := ast.As[*ast.FunctionDefinition](n)
	if !ok || fn.Body() == nil {
		return nil
	}
	if len(browse.InlineAssemblies(fn.Body())) > 0 {
		*v.found = true
	}
	return nil
}

func (v *assemblyVisitor) VisitOutward(id ast.NodeID) error            { return nil }
func (v *assemblyVisitor) VisitOutwardSideEffect(id ast.NodeID) error { return nil }
