package ast

// YulBase is embedded by every Yul node. Yul statements carry no NodeID in
// the compiler's schema, so ID always reports InvalidNodeID; workspace
// scope attribution for Yul nodes instead keys off a content hash (see
// Hash and the Yul context tables in package workspace).
type YulBase struct {
	NodeKind NodeType `json:"nodeType"`
	Src      string   `json:"src"`
}

func (y *YulBase) ID() NodeID   { return InvalidNodeID }
func (y *YulBase) Type() NodeType {
	if y.NodeKind == "" {
		return "Unknown"
	}
	return y.NodeKind
}
func (y *YulBase) SourceRange() SrcRange {
	r, _ := ParseSrc(y.Src)
	return r
}

func init() {
	RegisterNodeType(KindYulBlock, func() Node { return &YulBlock{} })
	RegisterNodeType(KindYulFunctionCall, func() Node { return &YulFunctionCall{} })
	RegisterNodeType(KindYulIdentifier, func() Node { return &YulIdentifier{} })
	RegisterNodeType(KindYulLiteral, func() Node { return &YulLiteral{} })
	RegisterNodeType(KindYulAssignment, func() Node { return &YulAssignment{} })
	RegisterNodeType(KindYulVariableDeclaration, func() Node { return &YulVariableDeclaration{} })
	RegisterNodeType(KindYulIf, func() Node { return &YulIf{} })
	RegisterNodeType(KindYulFor, func() Node { return &YulForLoop{} })
	RegisterNodeType(KindYulSwitch, func() Node { return &YulSwitch{} })
	RegisterNodeType(KindYulCase, func() Node { return &YulCase{} })
	RegisterNodeType(KindYulFunctionDefinition, func() Node { return &YulFunctionDefinition{} })
	RegisterNodeType(KindYulTypedName, func() Node { return &YulTypedName{} })
	RegisterNodeType(KindYulLeave, func() Node { return &YulLeave{} })
	RegisterNodeType(KindYulBreak, func() Node { return &YulBreak{} })
	RegisterNodeType(KindYulContinue, func() Node { return &YulContinue{} })
	RegisterNodeType(KindYulExpressionStatement, func() Node { return &YulExpressionStatement{} })
}

// YulBlock is `{ ... }` inside assembly.
type YulBlock struct {
	YulBase
	StatementsRaw NodeList `json:"statements,omitempty"`
}

func (y *YulBlock) Children() []Node   { return y.StatementsRaw }
func (y *YulBlock) Statements() []Node { return y.StatementsRaw }

// YulFunctionCall models `clz(x)`, `shr(a, b)`, and similar builtin/Yul
// function invocations.
type YulFunctionCall struct {
	YulBase
	FunctionNameRaw Child    `json:"functionName"`
	ArgumentsRaw    NodeList `json:"arguments,omitempty"`
}

func (y *YulFunctionCall) Children() []Node {
	return appendNodes(childrenOrNil(y.FunctionNameRaw.Node), y.ArgumentsRaw...)
}
func (y *YulFunctionCall) Arguments() []Node { return y.ArgumentsRaw }

// Name returns the callee identifier name, e.g. "clz" or "shl".
func (y *YulFunctionCall) Name() string {
	if id, ok := As[*YulIdentifier](y.FunctionNameRaw.Node); ok {
		return id.Name
	}
	return ""
}

// YulIdentifier is a bare Yul name reference.
type YulIdentifier struct {
	YulBase
	Name string `json:"name"`
}

func (y *YulIdentifier) Children() []Node { return nil }

// YulLiteral is a Yul constant.
type YulLiteral struct {
	YulBase
	Value string `json:"value"`
	Kind  string `json:"kind"`
}

func (y *YulLiteral) Children() []Node { return nil }

// YulAssignment models `a := expr` inside assembly.
type YulAssignment struct {
	YulBase
	VariableNamesRaw NodeList `json:"variableNames"`
	ValueRaw         Child    `json:"value"`
}

func (y *YulAssignment) Children() []Node {
	return appendNodes(append([]Node{}, y.VariableNamesRaw...), y.ValueRaw.Node)
}
func (y *YulAssignment) Value() Node { return y.ValueRaw.Node }

// VariableNames returns the target identifiers of the assignment.
func (y *YulAssignment) VariableNames() []*YulIdentifier {
	out := make([]*YulIdentifier, 0, len(y.VariableNamesRaw))
	for _, n := range y.VariableNamesRaw {
		if id, ok := As[*YulIdentifier](n); ok {
			out = append(out, id)
		}
	}
	return out
}

// YulVariableDeclaration models `let a := expr`.
type YulVariableDeclaration struct {
	YulBase
	VariablesRaw NodeList `json:"variables"`
	ValueRaw     Child    `json:"value"`
}

func (y *YulVariableDeclaration) Children() []Node {
	return appendNodes(append([]Node{}, y.VariablesRaw...), y.ValueRaw.Node)
}
func (y *YulVariableDeclaration) Value() Node { return y.ValueRaw.Node }

// YulIf models `if cond { ... }` inside assembly (no else arm in Yul).
type YulIf struct {
	YulBase
	ConditionRaw Child `json:"condition"`
	BodyRaw      Child `json:"body"`
}

func (y *YulIf) Children() []Node { return childrenOrNil(y.ConditionRaw.Node, y.BodyRaw.Node) }

// YulForLoop models Yul's `for { init } cond { post } { body }`.
type YulForLoop struct {
	YulBase
	PreRaw      Child `json:"pre"`
	ConditionRaw Child `json:"condition"`
	PostRaw     Child `json:"post"`
	BodyRaw     Child `json:"body"`
}

func (y *YulForLoop) Children() []Node {
	return childrenOrNil(y.PreRaw.Node, y.ConditionRaw.Node, y.PostRaw.Node, y.BodyRaw.Node)
}

// YulSwitch models `switch expr { case ... default ... }`.
type YulSwitch struct {
	YulBase
	ExpressionRaw Child    `json:"expression"`
	CasesRaw      NodeList `json:"cases"`
}

func (y *YulSwitch) Children() []Node {
	return appendNodes(childrenOrNil(y.ExpressionRaw.Node), y.CasesRaw...)
}

// YulCase is one arm of a YulSwitch.
type YulCase struct {
	YulBase
	BodyRaw Child `json:"body"`
}

func (y *YulCase) Children() []Node { return childrenOrNil(y.BodyRaw.Node) }

// YulFunctionDefinition models `function f(a, b) -> c { ... }` inside assembly.
type YulFunctionDefinition struct {
	YulBase
	Name           string   `json:"name"`
	ParametersRaw  NodeList `json:"parameters,omitempty"`
	ReturnVarsRaw  NodeList `json:"returnVariables,omitempty"`
	BodyRaw        Child    `json:"body"`
}

func (y *YulFunctionDefinition) Children() []Node {
	out := append([]Node{}, y.ParametersRaw...)
	out = append(out, y.ReturnVarsRaw...)
	return appendNodes(out, y.BodyRaw.Node)
}

// YulTypedName is a Yul parameter/return-variable name.
type YulTypedName struct {
	YulBase
	Name string `json:"name"`
}

func (y *YulTypedName) Children() []Node { return nil }

// YulLeave, YulBreak, YulContinue are Yul's control-transfer leaves.
type YulLeave struct{ YulBase }

func (y *YulLeave) Children() []Node { return nil }

type YulBreak struct{ YulBase }

func (y *YulBreak) Children() []Node { return nil }

type YulContinue struct{ YulBase }

func (y *YulContinue) Children() []Node { return nil }

// YulExpressionStatement wraps a bare Yul call used as a statement.
type YulExpressionStatement struct {
	YulBase
	ExpressionRaw Child `json:"expression"`
}

func (y *YulExpressionStatement) Children() []Node { return childrenOrNil(y.ExpressionRaw.Node) }
func (y *YulExpressionStatement) Expression() Node { return y.ExpressionRaw.Node }
