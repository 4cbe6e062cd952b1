package detector

import (
	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/browse"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"
)

// StorageArrayLengthNotCached flags a for-loop whose condition
// re-reads `arr.length` on a storage array each iteration instead of
// caching it in a local, a gas-cost supplemented detector grounded on the
// original tool's Rust catalogue.
type StorageArrayLengthNotCached struct{ Base }

func (*StorageArrayLengthNotCached) Name() string            { return "storage-array-length-not-cached" }
func (*StorageArrayLengthNotCached) Severity() report.Severity { return report.SeverityNC }
func (*StorageArrayLengthNotCached) Title() string           { return "Storage array length not cached" }
func (*StorageArrayLengthNotCached) Description() string {
	return "This loop condition reads a storage array's length every iteration; caching it in a local before the loop saves a SLOAD per iteration."
}

func (d *StorageArrayLengthNotCached) Detect(w *workspace.Workspace) (bool, error) {
	for _, unit := range w.SourceUnits() {
		for _, loop := range browse.Extract[*ast.ForStatement](unit) {
			cond := loop.Condition()
			if cond == nil {
				continue
			}
			for _, member := range browse.MemberAccesses(cond) {
				if member.MemberName != "length" {
					continue
				}
				base, ok := ast.As[*ast.Identifier](member.Expression())
				if !ok || base.ReferencedDeclaration == nil {
					continue
				}
				n, ok := w.Node(*base.ReferencedDeclaration)
				if !ok {
					continue
				}
				decl, ok := ast.As[*ast.VariableDeclaration](n)
				if !ok || !decl.StateVariable {
					continue
				}
				d.Capture(w, member)
			}
		}
	}
	return len(d.Instances()) > 0, nil
}
