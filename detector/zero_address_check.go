package detector

import (
	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/browse"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"
)

// ZeroAddressCheck flags an assignment whose right-hand side is an
// address-typed parameter, in a function body where no address-typed
// parameter is compared against address(0) anywhere. This is a
// supplemented detector: the original
// distillation's spec omitted it, but the original tool's Rust detector
// catalogue carries it and it fits naturally alongside the other
// data-hygiene checks here.
type ZeroAddressCheck struct{ Base }

func (*ZeroAddressCheck) Name() string            { return "zero-address-check" }
func (*ZeroAddressCheck) Severity() report.Severity { return report.SeverityNC }
func (*ZeroAddressCheck) Title() string           { return "Missing zero-address validation" }
func (*ZeroAddressCheck) Description() string {
	return "An address-typed parameter is assigned without a zero-address check anywhere in the function body."
}

func (d *ZeroAddressCheck) Detect(w *workspace.Workspace) (bool, error) {
	for _, unit := range w.SourceUnits() {
		for _, decl := range unit.Declarations() {
			c, ok := ast.As[*ast.ContractDefinition](decl)
			if !ok {
				continue
			}
			for _, fn := range c.FunctionDefinitions() {
				body := fn.Body()
				if body == nil {
					continue
				}
				addressParams := addressParameters(fn)
				if len(addressParams) == 0 {
					continue
				}
				if hasZeroAddressCheck(body, addressParams) {
					continue
				}
				for _, assign := range browse.Assignments(body) {
					id, ok := ast.As[*ast.Identifier](assign.RightHandSide())
					if !ok || id.ReferencedDeclaration == nil {
						continue
					}
					if _, isParam := addressParams[*id.ReferencedDeclaration]; isParam {
						d.Capture(w, assign)
					}
				}
			}
		}
	}
	return len(d.Instances()) > 0, nil
}

func addressParameters(fn *ast.FunctionDefinition) map[ast.NodeID]struct{} {
	out := make(map[ast.NodeID]struct{})
	for _, p := range fn.Parameters() {
		if elem, ok := ast.As[*ast.ElementaryTypeName](typeNameOf(p)); ok && elem.IsAddress() {
			out[p.ID()] = struct{}{}
		}
	}
	return out
}

func typeNameOf(v *ast.VariableDeclaration) ast.Node { return v.TypeNameRaw.Node }

// hasZeroAddressCheck reports whether any binary comparison in body
// compares one of params against a literal zero address.
func hasZeroAddressCheck(body ast.Node, params map[ast.NodeID]struct{}) bool {
	for _, binop := range browse.BinaryOperations(body) {
		if binop.Operator != "==" && binop.Operator != "!=" {
			continue
		}
		if referencesParam(binop.Left(), params) && isZeroAddressLiteral(binop.Right()) {
			return true
		}
		if referencesParam(binop.Right(), params) && isZeroAddressLiteral(binop.Left()) {
			return true
		}
	}
	return false
}

func referencesParam(n ast.Node, params map[ast.NodeID]struct{}) bool {
	id, ok := ast.As[*ast.Identifier](n)
	if !ok || id.ReferencedDeclaration == nil {
		return false
	}
	_, ok = params[*id.ReferencedDeclaration]
	return ok
}

func isZeroAddressLiteral(n ast.Node) bool {
	call, ok := ast.As[*ast.FunctionCall](n)
	if !ok {
		return false
	}
	if _, ok := ast.As[*ast.ElementaryTypeNameExpression](call.Expression()); !ok {
		return false
	}
	args := call.Arguments()
	if len(args) != 1 {
		return false
	}
	lit, ok := ast.As[*ast.Literal](args[0])
	return ok && lit.Value == "0"
}
