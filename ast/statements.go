package ast

// Block is `{ ... }`: an ordered list of statements.
type Block struct {
	BaseNode
	StatementsRaw NodeList `json:"statements,omitempty"`
}

func (b *Block) Children() []Node     { return b.StatementsRaw }
func (b *Block) Statements() []Node   { return b.StatementsRaw }

// UncheckedBlock is `unchecked { ... }`.
type UncheckedBlock struct {
	BaseNode
	StatementsRaw NodeList `json:"statements,omitempty"`
}

func (u *UncheckedBlock) Children() []Node   { return u.StatementsRaw }
func (u *UncheckedBlock) Statements() []Node { return u.StatementsRaw }

// IfStatement models `if (cond) trueBody else falseBody`. FalseBody is nil
// when there is no else clause.
type IfStatement struct {
	BaseNode
	ConditionRaw Child `json:"condition"`
	TrueBodyRaw  Child `json:"trueBody"`
	FalseBodyRaw Child `json:"falseBody"`
}

func (i *IfStatement) Children() []Node {
	return childrenOrNil(i.ConditionRaw.Node, i.TrueBodyRaw.Node, i.FalseBodyRaw.Node)
}
func (i *IfStatement) Condition() Node { return i.ConditionRaw.Node }
func (i *IfStatement) TrueBody() Node  { return i.TrueBodyRaw.Node }
func (i *IfStatement) FalseBody() Node { return i.FalseBodyRaw.Node }

// ForStatement models `for (init; cond; loopExpr) body`.
type ForStatement struct {
	BaseNode
	InitializationExpressionRaw Child `json:"initializationExpression"`
	ConditionRaw                Child `json:"condition"`
	LoopExpressionRaw           Child `json:"loopExpression"`
	BodyRaw                     Child `json:"body"`
}

func (f *ForStatement) Children() []Node {
	return childrenOrNil(f.InitializationExpressionRaw.Node, f.ConditionRaw.Node, f.LoopExpressionRaw.Node, f.BodyRaw.Node)
}
func (f *ForStatement) Init() Node      { return f.InitializationExpressionRaw.Node }
func (f *ForStatement) Condition() Node { return f.ConditionRaw.Node }
func (f *ForStatement) LoopExpr() Node  { return f.LoopExpressionRaw.Node }
func (f *ForStatement) Body() Node      { return f.BodyRaw.Node }

// WhileStatement models `while (cond) body`.
type WhileStatement struct {
	BaseNode
	ConditionRaw Child `json:"condition"`
	BodyRaw      Child `json:"body"`
}

func (w *WhileStatement) Children() []Node { return childrenOrNil(w.ConditionRaw.Node, w.BodyRaw.Node) }
func (w *WhileStatement) Condition() Node  { return w.ConditionRaw.Node }
func (w *WhileStatement) Body() Node       { return w.BodyRaw.Node }

// DoWhileStatement models `do body while (cond);`.
type DoWhileStatement struct {
	BaseNode
	ConditionRaw Child `json:"condition"`
	BodyRaw      Child `json:"body"`
}

func (d *DoWhileStatement) Children() []Node { return childrenOrNil(d.ConditionRaw.Node, d.BodyRaw.Node) }
func (d *DoWhileStatement) Condition() Node  { return d.ConditionRaw.Node }
func (d *DoWhileStatement) Body() Node       { return d.BodyRaw.Node }

// Return models `return [expr];`.
type Return struct {
	BaseNode
	ExpressionRaw             Child  `json:"expression"`
	FunctionReturnParameters  NodeID `json:"functionReturnParameters"`
}

func (r *Return) Children() []Node  { return childrenOrNil(r.ExpressionRaw.Node) }
func (r *Return) Expression() Node  { return r.ExpressionRaw.Node }

// RevertStatement models `revert CustomError(args);`.
type RevertStatement struct {
	BaseNode
	ErrorCallRaw Child `json:"errorCall"`
}

func (r *RevertStatement) Children() []Node { return childrenOrNil(r.ErrorCallRaw.Node) }
func (r *RevertStatement) ErrorCall() *FunctionCall {
	v, _ := As[*FunctionCall](r.ErrorCallRaw.Node)
	return v
}

// EmitStatement models `emit Event(args);`.
type EmitStatement struct {
	BaseNode
	EventCallRaw Child `json:"eventCall"`
}

func (e *EmitStatement) Children() []Node { return childrenOrNil(e.EventCallRaw.Node) }
func (e *EmitStatement) EventCall() *FunctionCall {
	v, _ := As[*FunctionCall](e.EventCallRaw.Node)
	return v
}

// PlaceholderStatement is the modifier body's `_;`.
type PlaceholderStatement struct{ BaseNode }

func (p *PlaceholderStatement) Children() []Node { return nil }

// Break and Continue are loop-control leaves.
type Break struct{ BaseNode }

func (b *Break) Children() []Node { return nil }

type Continue struct{ BaseNode }

func (c *Continue) Children() []Node { return nil }

// TryStatement models `try external.call() returns (...) { ... } catch { ... }`.
type TryStatement struct {
	BaseNode
	ExternalCallRaw Child    `json:"externalCall"`
	ClausesRaw      NodeList `json:"clauses"`
}

func (t *TryStatement) Children() []Node {
	return appendNodes(childrenOrNil(t.ExternalCallRaw.Node), t.ClausesRaw...)
}
func (t *TryStatement) ExternalCall() *FunctionCall {
	v, _ := As[*FunctionCall](t.ExternalCallRaw.Node)
	return v
}

// TryCatchClause is one `catch (...) { ... }` arm.
type TryCatchClause struct {
	BaseNode
	ErrorName     string `json:"errorName,omitempty"`
	ParametersRaw Child  `json:"parameters"`
	BlockRaw      Child  `json:"block"`
}

func (t *TryCatchClause) Children() []Node {
	return childrenOrNil(t.ParametersRaw.Node, t.BlockRaw.Node)
}
func (t *TryCatchClause) Block() *Block {
	v, _ := As[*Block](t.BlockRaw.Node)
	return v
}

// VariableDeclarationStatement models `T x = expr;` or the tuple form
// `(T1 x, , T2 y) = expr;` (skipped tuple slots decode to nil and are
// dropped — position tracking across skipped slots is not needed by any
// detector in this module).
type VariableDeclarationStatement struct {
	BaseNode
	DeclarationsRaw NodeList `json:"declarations"`
	InitialValueRaw Child    `json:"initialValue"`
}

func (v *VariableDeclarationStatement) Children() []Node {
	return appendNodes(append([]Node{}, v.DeclarationsRaw...), v.InitialValueRaw.Node)
}
func (v *VariableDeclarationStatement) Declarations() []*VariableDeclaration {
	out := make([]*VariableDeclaration, 0, len(v.DeclarationsRaw))
	for _, n := range v.DeclarationsRaw {
		if d, ok := As[*VariableDeclaration](n); ok {
			out = append(out, d)
		}
	}
	return out
}
func (v *VariableDeclarationStatement) InitialValue() Node { return v.InitialValueRaw.Node }

// ExpressionStatement wraps a bare expression used as a statement, e.g. a
// function call.
type ExpressionStatement struct {
	BaseNode
	ExpressionRaw Child `json:"expression"`
}

func (e *ExpressionStatement) Children() []Node { return childrenOrNil(e.ExpressionRaw.Node) }
func (e *ExpressionStatement) Expression() Node { return e.ExpressionRaw.Node }

// InlineAssembly wraps a Yul block embedded via `assembly { ... }`.
type InlineAssembly struct {
	BaseNode
	ASTRaw Child `json:"AST"`
}

func (i *InlineAssembly) Children() []Node { return childrenOrNil(i.ASTRaw.Node) }
func (i *InlineAssembly) YulBlock() *YulBlock {
	v, _ := As[*YulBlock](i.ASTRaw.Node)
	return v
}
