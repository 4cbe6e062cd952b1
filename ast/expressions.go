package ast

// Assignment models `lhs = rhs` and the compound forms (`+=`, `|=`, ...).
type Assignment struct {
	BaseNode
	Operator              string           `json:"operator"`
	LeftHandSideRaw        Child           `json:"leftHandSide"`
	RightHandSideRaw       Child           `json:"rightHandSide"`
	TypeDescriptionsValue  TypeDescriptions `json:"typeDescriptions"`
}

func (a *Assignment) Children() []Node {
	return childrenOrNil(a.LeftHandSideRaw.Node, a.RightHandSideRaw.Node)
}
func (a *Assignment) LeftHandSide() Node  { return a.LeftHandSideRaw.Node }
func (a *Assignment) RightHandSide() Node { return a.RightHandSideRaw.Node }
func (a *Assignment) TypeDescriptions() TypeDescriptions { return a.TypeDescriptionsValue }

// BinaryOperation models `left op right`.
type BinaryOperation struct {
	BaseNode
	Operator              string           `json:"operator"`
	LeftExpressionRaw      Child           `json:"leftExpression"`
	RightExpressionRaw     Child           `json:"rightExpression"`
	TypeDescriptionsValue  TypeDescriptions `json:"typeDescriptions"`
}

func (b *BinaryOperation) Children() []Node {
	return childrenOrNil(b.LeftExpressionRaw.Node, b.RightExpressionRaw.Node)
}
func (b *BinaryOperation) Left() Node  { return b.LeftExpressionRaw.Node }
func (b *BinaryOperation) Right() Node { return b.RightExpressionRaw.Node }
func (b *BinaryOperation) TypeDescriptions() TypeDescriptions { return b.TypeDescriptionsValue }

// UnaryOperation models `!x`, `-x`, `++x`, `x++`, `delete x`.
type UnaryOperation struct {
	BaseNode
	Operator              string           `json:"operator"`
	Prefix                bool             `json:"prefix"`
	SubExpressionRaw       Child           `json:"subExpression"`
	TypeDescriptionsValue  TypeDescriptions `json:"typeDescriptions"`
}

func (u *UnaryOperation) Children() []Node { return childrenOrNil(u.SubExpressionRaw.Node) }
func (u *UnaryOperation) SubExpression() Node { return u.SubExpressionRaw.Node }
func (u *UnaryOperation) TypeDescriptions() TypeDescriptions { return u.TypeDescriptionsValue }

// Conditional models the ternary `cond ? a : b`.
type Conditional struct {
	BaseNode
	ConditionRaw      Child `json:"condition"`
	TrueExpressionRaw  Child `json:"trueExpression"`
	FalseExpressionRaw Child `json:"falseExpression"`
}

func (c *Conditional) Children() []Node {
	return childrenOrNil(c.ConditionRaw.Node, c.TrueExpressionRaw.Node, c.FalseExpressionRaw.Node)
}

// FunctionCall models a call expression: `target(args)`.
type FunctionCall struct {
	BaseNode
	ExpressionRaw         Child            `json:"expression"`
	ArgumentsRaw          NodeList         `json:"arguments,omitempty"`
	NamesValue            []string         `json:"names,omitempty"`
	KindValue             string           `json:"kind"`
	TypeDescriptionsValue TypeDescriptions `json:"typeDescriptions"`
}

func (f *FunctionCall) Children() []Node {
	return appendNodes(childrenOrNil(f.ExpressionRaw.Node), f.ArgumentsRaw...)
}
func (f *FunctionCall) Expression() Node             { return f.ExpressionRaw.Node }
func (f *FunctionCall) Arguments() []Node            { return f.ArgumentsRaw }
func (f *FunctionCall) Kind() string                 { return f.KindValue }
func (f *FunctionCall) TypeDescriptions() TypeDescriptions { return f.TypeDescriptionsValue }

// IsInternalCall reports whether the call's resolved target type is an
// internal function, per spec's type_identifier prefix rule.
func (f *FunctionCall) IsInternalCall() bool {
	return f.TypeDescriptionsValue.IsInternalFunction()
}

// SuspectedTargetDeclaration returns the referencedDeclaration of the
// call's callee expression (an Identifier or a MemberAccess), when present.
func (f *FunctionCall) SuspectedTargetDeclaration() (NodeID, bool) {
	switch n := f.ExpressionRaw.Node.(type) {
	case *Identifier:
		if n.ReferencedDeclaration != nil {
			return *n.ReferencedDeclaration, true
		}
	case *MemberAccess:
		if n.ReferencedDeclaration != nil {
			return *n.ReferencedDeclaration, true
		}
	}
	return InvalidNodeID, false
}

// SuspectedFunctionSelector returns the hex selector the callee resolves
// to when it is a direct Identifier/MemberAccess reference carrying a
// functionSelector-annotated VariableDeclaration or FunctionDefinition.
// Resolution of the referenced declaration is the caller's responsibility
// (this is a pure AST-local query); see dispatch.Router for the workspace
// lookup.
func (f *FunctionCall) SuspectedFunctionSelector(lookup func(NodeID) Node) (string, bool) {
	id, ok := f.SuspectedTargetDeclaration()
	if !ok || lookup == nil {
		return "", false
	}
	switch n := lookup(id).(type) {
	case *FunctionDefinition:
		if n.FunctionSelector != nil {
			return *n.FunctionSelector, true
		}
	case *VariableDeclaration:
		if n.FunctionSelector != nil {
			return *n.FunctionSelector, true
		}
	}
	return "", false
}

// FunctionCallOptions models `target{value: v, gas: g}(args)`.
type FunctionCallOptions struct {
	BaseNode
	ExpressionRaw Child    `json:"expression"`
	OptionsRaw    NodeList `json:"options,omitempty"`
	NamesValue    []string `json:"names,omitempty"`
}

func (f *FunctionCallOptions) Children() []Node {
	return appendNodes(childrenOrNil(f.ExpressionRaw.Node), f.OptionsRaw...)
}

// NewExpression models `new T(...)`.
type NewExpression struct {
	BaseNode
	TypeNameRaw Child `json:"typeName"`
}

func (n *NewExpression) Children() []Node { return childrenOrNil(n.TypeNameRaw.Node) }

// MemberAccess models `expr.member`.
type MemberAccess struct {
	BaseNode
	ExpressionRaw         Child            `json:"expression"`
	MemberName            string           `json:"memberName"`
	ReferencedDeclaration *NodeID          `json:"referencedDeclaration,omitempty"`
	TypeDescriptionsValue TypeDescriptions `json:"typeDescriptions"`
}

func (m *MemberAccess) Children() []Node { return childrenOrNil(m.ExpressionRaw.Node) }
func (m *MemberAccess) Expression() Node { return m.ExpressionRaw.Node }
func (m *MemberAccess) TypeDescriptions() TypeDescriptions { return m.TypeDescriptionsValue }

// IsLowLevelCall reports whether this member access names one of the
// address-level call primitives used by the reentrancy/loop detectors.
func (m *MemberAccess) IsLowLevelCall() bool {
	switch m.MemberName {
	case "call", "delegatecall", "staticcall", "send", "transfer":
		return true
	default:
		return false
	}
}

// IndexAccess models `base[index]`.
type IndexAccess struct {
	BaseNode
	BaseExpressionRaw  Child `json:"baseExpression"`
	IndexExpressionRaw Child `json:"indexExpression"`
}

func (i *IndexAccess) Children() []Node {
	return childrenOrNil(i.BaseExpressionRaw.Node, i.IndexExpressionRaw.Node)
}
func (i *IndexAccess) Base() Node { return i.BaseExpressionRaw.Node }

// IndexRangeAccess models `base[start:end]` (calldata slicing).
type IndexRangeAccess struct {
	BaseNode
	BaseExpressionRaw  Child `json:"baseExpression"`
	StartExpressionRaw Child `json:"startExpression"`
	EndExpressionRaw   Child `json:"endExpression"`
}

func (i *IndexRangeAccess) Children() []Node {
	return childrenOrNil(i.BaseExpressionRaw.Node, i.StartExpressionRaw.Node, i.EndExpressionRaw.Node)
}
func (i *IndexRangeAccess) Base() Node { return i.BaseExpressionRaw.Node }

// Identifier models a bare name reference.
type Identifier struct {
	BaseNode
	Name                  string           `json:"name"`
	ReferencedDeclaration *NodeID          `json:"referencedDeclaration,omitempty"`
	TypeDescriptionsValue TypeDescriptions `json:"typeDescriptions"`
}

func (i *Identifier) Children() []Node { return nil }
func (i *Identifier) TypeDescriptions() TypeDescriptions { return i.TypeDescriptionsValue }

// IdentifierPath models a (possibly dotted) path used in `is Base.Sub`,
// modifier names, and using-for library names.
type IdentifierPath struct {
	BaseNode
	Name                  string  `json:"name"`
	ReferencedDeclaration *NodeID `json:"referencedDeclaration,omitempty"`
}

func (i *IdentifierPath) Children() []Node { return nil }

// Literal models a constant value: number, string, bool, hex, or unicode.
type Literal struct {
	BaseNode
	KindValue             string           `json:"kind"`
	Value                 string           `json:"value,omitempty"`
	HexValue              string           `json:"hexValue,omitempty"`
	TypeDescriptionsValue TypeDescriptions `json:"typeDescriptions"`
}

func (l *Literal) Children() []Node { return nil }
func (l *Literal) Kind() string     { return l.KindValue }
func (l *Literal) TypeDescriptions() TypeDescriptions { return l.TypeDescriptionsValue }

// TupleExpression models `(a, b)` and inline arrays `[a, b]`.
type TupleExpression struct {
	BaseNode
	ComponentsRaw  NodeList `json:"components"`
	IsInlineArray  bool     `json:"isInlineArray"`
}

func (t *TupleExpression) Children() []Node       { return t.ComponentsRaw }
func (t *TupleExpression) Components() []Node     { return t.ComponentsRaw }

// ElementaryTypeNameExpression models a type used as an expression, e.g.
// `uint256(x)`'s callee.
type ElementaryTypeNameExpression struct {
	BaseNode
	TypeNameRaw Child `json:"typeName"`
}

func (e *ElementaryTypeNameExpression) Children() []Node { return childrenOrNil(e.TypeNameRaw.Node) }
