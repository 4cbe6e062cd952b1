package ast

// ElementaryTypeName models a builtin type name such as `uint256` or
// `address payable`.
type ElementaryTypeName struct {
	BaseNode
	Name                  string           `json:"name"`
	StateMutabilityValue  StateMutability  `json:"stateMutability,omitempty"`
	TypeDescriptionsValue TypeDescriptions `json:"typeDescriptions"`
}

func (e *ElementaryTypeName) Children() []Node { return nil }

// IsAddress reports whether this is `address` or `address payable`,
// treated as equivalent for parameter-shape comparisons.
func (e *ElementaryTypeName) IsAddress() bool { return e.Name == "address" || e.Name == "address payable" }

// UserDefinedTypeName references a contract/struct/enum/UDVT by path.
type UserDefinedTypeName struct {
	BaseNode
	PathNodeRaw           Child            `json:"pathNode"`
	ReferencedDeclaration *NodeID          `json:"referencedDeclaration,omitempty"`
	TypeDescriptionsValue TypeDescriptions `json:"typeDescriptions"`
}

func (u *UserDefinedTypeName) Children() []Node { return childrenOrNil(u.PathNodeRaw.Node) }

// ArrayTypeName models `T[]` and `T[N]`.
type ArrayTypeName struct {
	BaseNode
	BaseTypeRaw Child `json:"baseType"`
	LengthRaw   Child `json:"length"`
}

func (a *ArrayTypeName) Children() []Node { return childrenOrNil(a.BaseTypeRaw.Node, a.LengthRaw.Node) }

// Mapping models `mapping(K => V)`.
type Mapping struct {
	BaseNode
	KeyTypeRaw   Child `json:"keyType"`
	ValueTypeRaw Child `json:"valueType"`
}

func (m *Mapping) Children() []Node { return childrenOrNil(m.KeyTypeRaw.Node, m.ValueTypeRaw.Node) }

// FunctionTypeName models a `function(T) returns (U)` type.
type FunctionTypeName struct {
	BaseNode
	Visibility            Visibility      `json:"visibility"`
	StateMutabilityValue  StateMutability `json:"stateMutability"`
	ParameterTypesRaw     Child           `json:"parameterTypes"`
	ReturnParameterTypesRaw Child         `json:"returnParameterTypes"`
}

func (f *FunctionTypeName) Children() []Node {
	return childrenOrNil(f.ParameterTypesRaw.Node, f.ReturnParameterTypesRaw.Node)
}
