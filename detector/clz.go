package detector

import (
	"strings"

	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/browse"
	"github.com/solwatch/solwatch/compiler"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"
)

// variableTypeTable maps (enclosing function, name) to the Solidity
// type-string the compiler recorded for it, pooling both local variable
// declarations and function parameters, the scope `clz` detectors need
// to reason about signedness across a Yul identifier reference.
func variableTypeTable(w *workspace.Workspace) map[ast.NodeID]map[string]string {
	out := make(map[ast.NodeID]map[string]string)
	put := func(fnID ast.NodeID, name, typeString string) {
		if out[fnID] == nil {
			out[fnID] = make(map[string]string)
		}
		out[fnID][name] = typeString
	}
	for _, unit := range w.SourceUnits() {
		for _, fn := range browse.Extract[*ast.FunctionDefinition](unit) {
			for _, p := range fn.Parameters().Parameters() {
				put(fn.ID(), p.Name, p.TypeDescriptions().TypeString)
			}
			if fn.Body() == nil {
				continue
			}
			for _, v := range browse.VariableDeclarations(fn.Body()) {
				put(fn.ID(), v.Name, v.TypeDescriptions().TypeString)
			}
		}
	}
	return out
}

// ClzSignedIntegerMisuse flags a `clz` Yul builtin invoked with an
// argument whose Solidity-level type is a signed integer: clz treats its
// operand as raw bits, so a negative two's-complement value always
// starts with a 1 bit and clz silently returns 0.
type ClzSignedIntegerMisuse struct{ Base }

func (*ClzSignedIntegerMisuse) Name() string            { return "clz-signed-integer-misuse" }
func (*ClzSignedIntegerMisuse) Severity() report.Severity { return report.SeverityLow }
func (*ClzSignedIntegerMisuse) Title() string           { return "clz used with a signed integer" }
func (*ClzSignedIntegerMisuse) Description() string {
	return "clz treats its argument as unsigned bits; a signed negative value's leading 1 bit makes clz return 0, which is rarely what the caller expects."
}

func (d *ClzSignedIntegerMisuse) Detect(w *workspace.Workspace) (bool, error) {
	if !w.EvmVersion.AtLeast(compiler.EvmVersionOsaka) {
		return false, nil
	}
	varTypes := variableTypeTable(w)
	for _, unit := range w.SourceUnits() {
		for _, call := range browse.Extract[*ast.YulFunctionCall](unit) {
			if call.Name() != "clz" || len(call.Arguments()) != 1 {
				continue
			}
			_, _, fnID, _, ok := w.YulScope(call)
			if !ok {
				continue
			}
			if exprIsSigned(call.Arguments()[0], varTypes[fnID]) {
				d.CaptureYul(w, unit, call)
			}
		}
	}
	return len(d.Instances()) > 0, nil
}

// exprIsSigned approximates the original tool's sign-propagation walk
// over a Yul expression: identifiers resolve through varTypes, explicit
// uintNN()/intNN() casts are authoritative, add/sub/mul and sar
// propagate an operand's signedness, and sdiv/smod/signextend always
// produce a signed result.
func exprIsSigned(expr ast.Node, varTypes map[string]string) bool {
	switch e := expr.(type) {
	case *ast.YulIdentifier:
		t, ok := varTypes[e.Name]
		return ok && strings.HasPrefix(t, "int") && !strings.HasPrefix(t, "uint")
	case *ast.YulFunctionCall:
		name := e.Name()
		switch {
		case strings.HasPrefix(name, "uint"):
			return false
		case strings.HasPrefix(name, "int"):
			return true
		case name == "sdiv", name == "smod", name == "signextend":
			return true
		case name == "add", name == "sub", name == "mul":
			for _, arg := range e.Arguments() {
				if exprIsSigned(arg, varTypes) {
					return true
				}
			}
		case name == "sar":
			args := e.Arguments()
			if len(args) == 2 && exprIsSigned(args[1], varTypes) {
				return true
			}
		}
	}
	return false
}

// ClzNormalizationPattern flags the `shr(C, shl(clz(x), x))` idiom used to
// left-normalize a value's most significant bit, unsafe whenever x can be
// zero since clz(0) is defined but shl by the full bit width undefined
// in the idiom's intended use.
type ClzNormalizationPattern struct{ Base }

func (*ClzNormalizationPattern) Name() string            { return "clz-normalization-pattern" }
func (*ClzNormalizationPattern) Severity() report.Severity { return report.SeverityHigh }
func (*ClzNormalizationPattern) Title() string           { return "Unsafe clz normalization pattern" }
func (*ClzNormalizationPattern) Description() string {
	return "shr(C, shl(clz(x), x)) normalizes x's leading bit but is unsafe when x is zero; clz(0) does not signal the all-zero case the way this pattern assumes."
}

func (d *ClzNormalizationPattern) Detect(w *workspace.Workspace) (bool, error) {
	if !w.EvmVersion.AtLeast(compiler.EvmVersionOsaka) {
		return false, nil
	}
	clzVars := clzAssignedVariables(w)
	for _, unit := range w.SourceUnits() {
		for _, call := range browse.Extract[*ast.YulFunctionCall](unit) {
			if call.Name() != "shr" || len(call.Arguments()) != 2 {
				continue
			}
			shl, ok := ast.As[*ast.YulFunctionCall](call.Arguments()[1])
			if !ok || shl.Name() != "shl" || len(shl.Arguments()) != 2 {
				continue
			}
			shiftAmount, shiftedValue := shl.Arguments()[0], shl.Arguments()[1]

			if inner, ok := ast.As[*ast.YulFunctionCall](shiftAmount); ok &&
				inner.Name() == "clz" && len(inner.Arguments()) == 1 &&
				yulExprEqual(inner.Arguments()[0], shiftedValue) {
				d.CaptureYul(w, unit, call)
				continue
			}

			if ident, ok := ast.As[*ast.YulIdentifier](shiftAmount); ok {
				_, _, fnID, _, scopeOK := w.YulScope(call)
				if scopeOK && clzVars[fnID][ident.Name] {
					d.CaptureYul(w, unit, call)
				}
			}
		}
	}
	return len(d.Instances()) > 0, nil
}

// clzAssignedVariables collects, per enclosing function, the set of Yul
// local names ever assigned directly from a `clz(...)` call, so the
// indirect `let r := clz(x); shl(r, x)` form is caught alongside the
// inline one.
func clzAssignedVariables(w *workspace.Workspace) map[ast.NodeID]map[string]bool {
	out := make(map[ast.NodeID]map[string]bool)
	mark := func(fnID ast.NodeID, name string) {
		if out[fnID] == nil {
			out[fnID] = make(map[string]bool)
		}
		out[fnID][name] = true
	}
	for _, unit := range w.SourceUnits() {
		for _, decl := range browse.Extract[*ast.YulVariableDeclaration](unit) {
			isClz, ok := ast.As[*ast.YulFunctionCall](decl.Value())
			if !ok || isClz.Name() != "clz" {
				continue
			}
			_, _, fnID, _, scopeOK := w.YulScope(decl)
			if !scopeOK {
				continue
			}
			for _, v := range yulTypedNames(decl) {
				mark(fnID, v)
			}
		}
		for _, assign := range browse.Extract[*ast.YulAssignment](unit) {
			isClz, ok := ast.As[*ast.YulFunctionCall](assign.Value())
			if !ok || isClz.Name() != "clz" {
				continue
			}
			_, _, fnID, _, scopeOK := w.YulScope(assign)
			if !scopeOK {
				continue
			}
			for _, v := range assign.VariableNames() {
				mark(fnID, v.Name)
			}
		}
	}
	return out
}

func yulTypedNames(decl *ast.YulVariableDeclaration) []string {
	var out []string
	for _, n := range decl.Children() {
		if tn, ok := ast.As[*ast.YulTypedName](n); ok {
			out = append(out, tn.Name)
		}
	}
	return out
}

// yulExprEqual is a structural comparison sufficient to recognise the
// same identifier or literal referenced twice within one expression; it
// does not attempt full Yul expression equivalence.
func yulExprEqual(a, b ast.Node) bool {
	switch av := a.(type) {
	case *ast.YulIdentifier:
		bv, ok := ast.As[*ast.YulIdentifier](b)
		return ok && av.Name == bv.Name
	case *ast.YulLiteral:
		bv, ok := ast.As[*ast.YulLiteral](b)
		return ok && av.Value == bv.Value
	default:
		return false
	}
}
