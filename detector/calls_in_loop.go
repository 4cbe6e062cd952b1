package detector

import (
	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/browse"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"
)

// loopBodies returns the body subtree of every for/while/do-while
// statement in root.
func loopBodies(root ast.Node) []ast.Node {
	var out []ast.Node
	for _, l := range browse.Extract[*ast.ForStatement](root) {
		if b := l.Body(); b != nil {
			out = append(out, b)
		}
	}
	for _, l := range browse.Extract[*ast.WhileStatement](root) {
		if b := l.Body(); b != nil {
			out = append(out, b)
		}
	}
	for _, l := range browse.Extract[*ast.DoWhileStatement](root) {
		if b := l.Body(); b != nil {
			out = append(out, b)
		}
	}
	return out
}

// DelegateCallInLoop flags a `delegatecall` invoked from inside a loop
// body, where a single reverted iteration cannot be distinguished from
// the others and failures are easy to swallow silently. Supplemented
// detector grounded on the original tool's Rust catalogue
// (high_level_calls_in_loop.rs's delegatecall-specific sibling).
type DelegateCallInLoop struct{ Base }

func (*DelegateCallInLoop) Name() string            { return "delegate-call-in-loop" }
func (*DelegateCallInLoop) Severity() report.Severity { return report.SeverityHigh }
func (*DelegateCallInLoop) Title() string           { return "Delegatecall inside a loop" }
func (*DelegateCallInLoop) Description() string {
	return "A delegatecall inside a loop body runs with the caller's storage on every iteration; a single failed call can corrupt state partway through."
}

func (d *DelegateCallInLoop) Detect(w *workspace.Workspace) (bool, error) {
	for _, unit := range w.SourceUnits() {
		for _, body := range loopBodies(unit) {
			for _, call := range browse.FunctionCalls(body) {
				member, ok := ast.As[*ast.MemberAccess](call.Expression())
				if !ok || member.MemberName != "delegatecall" {
					continue
				}
				d.Capture(w, call)
			}
		}
	}
	return len(d.Instances()) > 0, nil
}

// HighLevelCallsInLoop flags any external call made from inside a loop
// body, a gas-griefing and partial-failure hazard grounded on
// aderyn_core/src/detect/high/high_level_calls_in_loop.rs.
type HighLevelCallsInLoop struct{ Base }

func (*HighLevelCallsInLoop) Name() string            { return "high-level-calls-in-loop" }
func (*HighLevelCallsInLoop) Severity() report.Severity { return report.SeverityHigh }
func (*HighLevelCallsInLoop) Title() string           { return "External call inside a loop" }
func (*HighLevelCallsInLoop) Description() string {
	return "An external call made from inside a loop body can run out of gas or revert partway through, leaving earlier iterations' effects committed and later ones lost."
}

func (d *HighLevelCallsInLoop) Detect(w *workspace.Workspace) (bool, error) {
	for _, unit := range w.SourceUnits() {
		for _, body := range loopBodies(unit) {
			for _, call := range externalCallsIn(body) {
				d.Capture(w, call)
			}
		}
	}
	return len(d.Instances()) > 0, nil
}
