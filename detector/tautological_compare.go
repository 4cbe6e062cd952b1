package detector

import (
	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/browse"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"
)

// TautologicalCompare flags a binary comparison whose both sides reduce
// to the same constant value, making the result independent of any
// runtime input.
type TautologicalCompare struct{ Base }

func (*TautologicalCompare) Name() string            { return "tautological-compare" }
func (*TautologicalCompare) Severity() report.Severity { return report.SeverityHigh }
func (*TautologicalCompare) Title() string           { return "Tautological comparison" }
func (*TautologicalCompare) Description() string {
	return "Both sides of this comparison reduce to the same constant value, so its result never depends on runtime state."
}

var tautologyOperators = map[string]bool{
	"&&": true, "||": true, "<": true, "<=": true, ">": true, ">=": true,
}

func (d *TautologicalCompare) Detect(w *workspace.Workspace) (bool, error) {
	for _, unit := range w.SourceUnits() {
		for _, binop := range browse.BinaryOperations(unit) {
			if !tautologyOperators[binop.Operator] {
				continue
			}
			leftVal, leftOK := constantValue(w, binop.Left())
			rightVal, rightOK := constantValue(w, binop.Right())
			if leftOK && rightOK && leftVal == rightVal {
				d.Capture(w, binop)
			}
		}
	}
	return len(d.Instances()) > 0, nil
}

// constantValue reduces expr to a literal value string, following a
// reference to a constant state variable with a literal initializer one
// level deep.
func constantValue(w *workspace.Workspace, expr ast.Node) (string, bool) {
	switch t := expr.(type) {
	case *ast.Literal:
		return t.Value, true
	case *ast.Identifier:
		if t.ReferencedDeclaration == nil {
			return "", false
		}
		n, ok := w.Node(*t.ReferencedDeclaration)
		if !ok {
			return "", false
		}
		decl, ok := ast.As[*ast.VariableDeclaration](n)
		if !ok || !decl.Constant {
			return "", false
		}
		lit, ok := ast.As[*ast.Literal](decl.Value())
		if !ok {
			return "", false
		}
		return lit.Value, true
	default:
		return "", false
	}
}
