package ast

import (
	"encoding/json"
	"fmt"
)

// peek extracts the nodeType discriminant from a raw JSON object without
// fully decoding it.
func peek(raw json.RawMessage) (NodeType, error) {
	var head struct {
		NodeType NodeType `json:"nodeType"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return "", err
	}
	return head.NodeType, nil
}

// factory constructs a zero-value Node ready to be unmarshalled.
type factory func() Node

var registry = map[NodeType]factory{
	KindSourceUnit:                     func() Node { return &SourceUnit{} },
	KindPragmaDirective:                func() Node { return &PragmaDirective{} },
	KindImportDirective:                func() Node { return &ImportDirective{} },
	KindContractDefinition:             func() Node { return &ContractDefinition{} },
	KindInheritanceSpecifier:           func() Node { return &InheritanceSpecifier{} },
	KindUsingForDirective:              func() Node { return &UsingForDirective{} },
	KindStructDefinition:               func() Node { return &StructDefinition{} },
	KindEnumDefinition:                 func() Node { return &EnumDefinition{} },
	KindEnumValue:                      func() Node { return &EnumValue{} },
	KindErrorDefinition:                func() Node { return &ErrorDefinition{} },
	KindUserDefinedValueTypeDefinition: func() Node { return &UserDefinedValueTypeDefinition{} },
	KindEventDefinition:                func() Node { return &EventDefinition{} },
	KindVariableDeclaration:            func() Node { return &VariableDeclaration{} },
	KindFunctionDefinition:             func() Node { return &FunctionDefinition{} },
	KindModifierDefinition:             func() Node { return &ModifierDefinition{} },
	KindModifierInvocation:             func() Node { return &ModifierInvocation{} },
	KindParameterList:                  func() Node { return &ParameterList{} },
	KindOverrideSpecifier:              func() Node { return &OverrideSpecifier{} },
	KindStructuredDocumentation:        func() Node { return &StructuredDocumentation{} },

	KindBlock:                        func() Node { return &Block{} },
	KindUncheckedBlock:               func() Node { return &UncheckedBlock{} },
	KindIfStatement:                  func() Node { return &IfStatement{} },
	KindForStatement:                 func() Node { return &ForStatement{} },
	KindWhileStatement:               func() Node { return &WhileStatement{} },
	KindDoWhileStatement:             func() Node { return &DoWhileStatement{} },
	KindReturn:                       func() Node { return &Return{} },
	KindRevertStatement:              func() Node { return &RevertStatement{} },
	KindEmitStatement:                func() Node { return &EmitStatement{} },
	KindPlaceholderStatement:         func() Node { return &PlaceholderStatement{} },
	KindBreak:                        func() Node { return &Break{} },
	KindContinue:                     func() Node { return &Continue{} },
	KindTryStatement:                 func() Node { return &TryStatement{} },
	KindTryCatchClause:               func() Node { return &TryCatchClause{} },
	KindVariableDeclarationStatement: func() Node { return &VariableDeclarationStatement{} },
	KindExpressionStatement:          func() Node { return &ExpressionStatement{} },
	KindInlineAssembly:               func() Node { return &InlineAssembly{} },

	KindAssignment:                  func() Node { return &Assignment{} },
	KindBinaryOperation:             func() Node { return &BinaryOperation{} },
	KindUnaryOperation:              func() Node { return &UnaryOperation{} },
	KindConditional:                 func() Node { return &Conditional{} },
	KindFunctionCall:                func() Node { return &FunctionCall{} },
	KindFunctionCallOptions:         func() Node { return &FunctionCallOptions{} },
	KindNewExpression:               func() Node { return &NewExpression{} },
	KindMemberAccess:                func() Node { return &MemberAccess{} },
	KindIndexAccess:                 func() Node { return &IndexAccess{} },
	KindIndexRangeAccess:            func() Node { return &IndexRangeAccess{} },
	KindIdentifier:                  func() Node { return &Identifier{} },
	KindIdentifierPath:              func() Node { return &IdentifierPath{} },
	KindLiteral:                     func() Node { return &Literal{} },
	KindTupleExpression:             func() Node { return &TupleExpression{} },
	KindElementaryTypeNameExpression: func() Node { return &ElementaryTypeNameExpression{} },

	KindElementaryTypeName:  func() Node { return &ElementaryTypeName{} },
	KindUserDefinedTypeName: func() Node { return &UserDefinedTypeName{} },
	KindArrayTypeName:       func() Node { return &ArrayTypeName{} },
	KindMapping:             func() Node { return &Mapping{} },
	KindFunctionTypeName:    func() Node { return &FunctionTypeName{} },
}

// RegisterNodeType allows a caller (e.g. a test, or an extension) to add or
// override the decoder for a node kind.
func RegisterNodeType(kind NodeType, f factory) {
	registry[kind] = f
}

// Decode turns one raw compiler AST node (a JSON object with a `nodeType`
// discriminant) into its concrete Go representation. Unknown node kinds
// decode to a generic *Opaque node rather than failing the whole tree,
// since the schema evolves faster than any one consumer.
func Decode(raw json.RawMessage) (Node, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	kind, err := peek(raw)
	if err != nil {
		return nil, fmt.Errorf("ast: decode: %w", err)
	}
	make_, ok := registry[kind]
	if !ok {
		opaque := &Opaque{}
		if err := json.Unmarshal(raw, opaque); err != nil {
			return nil, fmt.Errorf("ast: decode opaque %s: %w", kind, err)
		}
		return opaque, nil
	}
	node := make_()
	if err := json.Unmarshal(raw, node); err != nil {
		return nil, fmt.Errorf("ast: decode %s: %w", kind, err)
	}
	return node, nil
}

// NodeList decodes a heterogeneous JSON array of AST nodes, dispatching
// each element through Decode.
type NodeList []Node

func (l *NodeList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	out := make(NodeList, 0, len(raws))
	for _, raw := range raws {
		n, err := Decode(raw)
		if err != nil {
			return err
		}
		if n != nil {
			out = append(out, n)
		}
	}
	*l = out
	return nil
}

// Child wraps a single optional heterogeneous child node field.
type Child struct {
	Node Node
}

func (c *Child) UnmarshalJSON(data []byte) error {
	n, err := Decode(data)
	if err != nil {
		return err
	}
	c.Node = n
	return nil
}

// As type-asserts a decoded Node, returning the zero value and false on
// mismatch (including a nil Node).
func As[T Node](n Node) (T, bool) {
	var zero T
	if n == nil {
		return zero, false
	}
	v, ok := n.(T)
	return v, ok
}

// Opaque represents an AST node kind this module does not model explicitly.
// Its raw JSON fields are kept in Raw, but it reports no children, so
// generic traversal and workspace ingest do not descend into its subtree.
type Opaque struct {
	BaseNode
	Raw map[string]json.RawMessage `json:"-"`
}

func (o *Opaque) UnmarshalJSON(data []byte) error {
	type shadow Opaque
	if err := json.Unmarshal(data, (*shadow)(o)); err != nil {
		return err
	}
	return json.Unmarshal(data, &o.Raw)
}

func (o *Opaque) Children() []Node { return nil }
