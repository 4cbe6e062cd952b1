package detector

import (
	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/cfg"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"
)

// EmitAfterExternalCall flags an external call whose CFG successors
// include an event emission, which a reentrant callee can reorder ahead
// of the emission the caller expected to happen first.
type EmitAfterExternalCall struct{ Base }

func (*EmitAfterExternalCall) Name() string            { return "emit-after-external-call" }
func (*EmitAfterExternalCall) Severity() report.Severity { return report.SeverityLow }
func (*EmitAfterExternalCall) Title() string           { return "Event emitted after external call" }
func (*EmitAfterExternalCall) Description() string {
	return "An event is emitted after an external call completes, so a reentrant callee can act before observers see the expected event ordering."
}

func (d *EmitAfterExternalCall) Detect(w *workspace.Workspace) (bool, error) {
	eachImplementedExternalFunction(w, func(fn *ast.FunctionDefinition) {
		g, entry, _ := cfg.FromFunctionBody(fn)
		walkForward(g, entry, func(id cfg.NodeID) bool {
			reflected, ok := g.Reflect(id)
			if !ok || len(externalCallsIn(reflected)) == 0 {
				return true
			}
			walkForward(g, id, func(succID cfg.NodeID) bool {
				if g.Kind(succID) != cfg.KindEmitStatement {
					return true
				}
				if _, ok := g.Reflect(succID); !ok {
					return true
				}
				d.Capture(w, reflected)
				d.CaptureHint(w, reflected, "event emitted at a later point in the same function")
				return true
			})
			return true
		})
	})
	return len(d.Instances()) > 0, nil
}
