package ast

// SourceUnit owns a sequence of top-level declarations, an absolute path,
// and the exported-symbol table the compiler computes for import
// resolution. SourceText is populated by the workspace after decode since
// it travels alongside the AST JSON rather than inside it.
type SourceUnit struct {
	BaseNode
	AbsolutePath    string              `json:"absolutePath"`
	License         string              `json:"license,omitempty"`
	ExportedSymbols map[string][]NodeID `json:"exportedSymbols,omitempty"`
	NodesRaw        NodeList            `json:"nodes"`
	SourceText      string              `json:"-"`
}

func (s *SourceUnit) Children() []Node { return s.NodesRaw }

// Declarations returns the top-level nodes owned by this source unit.
func (s *SourceUnit) Declarations() []Node { return s.NodesRaw }

// PragmaDirective records a `pragma ...;` line, most importantly the
// solidity version pragma consumed by version-gated detectors.
type PragmaDirective struct {
	BaseNode
	Literals []string `json:"literals"`
}

func (p *PragmaDirective) Children() []Node { return nil }

// VersionPragmaString reconstructs the textual version constraint, e.g.
// "solidity" "^" "0" "." "8" "." "0" -> "^0.8.0".
func (p *PragmaDirective) VersionPragmaString() (string, bool) {
	if len(p.Literals) < 2 || p.Literals[0] != "solidity" {
		return "", false
	}
	out := ""
	for _, lit := range p.Literals[1:] {
		out += lit
	}
	return out, true
}

// ImportDirective records an `import` statement; SymbolAliases holds the
// named-import list (empty for a bare `import "X";`, which the unused-import
// detector treats as importing X's full ExportedSymbols).
type ImportDirective struct {
	BaseNode
	AbsolutePath    string              `json:"absolutePath"`
	File            string              `json:"file"`
	SourceUnitID    NodeID              `json:"sourceUnit"`
	SymbolAliases   []ImportSymbolAlias `json:"symbolAliases,omitempty"`
	UnitAlias       string              `json:"unitAlias,omitempty"`
}

type ImportSymbolAlias struct {
	Foreign struct {
		ReferencedDeclaration *NodeID `json:"referencedDeclaration,omitempty"`
		Name                  string  `json:"name,omitempty"`
	} `json:"foreign"`
	Local *string `json:"local,omitempty"`
}

func (i *ImportDirective) Children() []Node { return nil }

// ImportedDeclarations returns the NodeIDs named by a named import. An
// empty result means the import is unnamed (imports everything exported).
func (i *ImportDirective) ImportedDeclarations() []NodeID {
	out := make([]NodeID, 0, len(i.SymbolAliases))
	for _, alias := range i.SymbolAliases {
		if alias.Foreign.ReferencedDeclaration != nil {
			out = append(out, *alias.Foreign.ReferencedDeclaration)
		}
	}
	return out
}

// ContractDefinition owns an ordered list of members, its C3 linearisation,
// and the list of directly-named base contracts.
type ContractDefinition struct {
	BaseNode
	Name                    string       `json:"name"`
	NameLocationValue       string       `json:"nameLocation,omitempty"`
	ContractKindValue       ContractKind `json:"contractKind"`
	Abstract                bool         `json:"abstract"`
	FullyImplemented        bool         `json:"fullyImplemented"`
	Scope                   NodeID       `json:"scope"`
	LinearizedBaseContracts []NodeID     `json:"linearizedBaseContracts"`
	BaseContractsRaw        NodeList     `json:"baseContracts"`
	NodesRaw                NodeList     `json:"nodes"`
}

func (c *ContractDefinition) Children() []Node {
	out := make([]Node, 0, len(c.BaseContractsRaw)+len(c.NodesRaw))
	out = append(out, c.BaseContractsRaw...)
	out = append(out, c.NodesRaw...)
	return out
}

func (c *ContractDefinition) NameLocationRange() (SrcRange, bool) {
	if c.NameLocationValue == "" || c.NameLocationValue == "-1:-1:-1" {
		return SrcRange{}, false
	}
	r, err := ParseSrc(c.NameLocationValue)
	return r, err == nil
}

// Members returns the contract's body members in declaration order.
func (c *ContractDefinition) Members() []Node { return c.NodesRaw }

// BaseContracts returns the directly-named inheritance specifiers.
func (c *ContractDefinition) BaseContracts() []*InheritanceSpecifier {
	out := make([]*InheritanceSpecifier, 0, len(c.BaseContractsRaw))
	for _, n := range c.BaseContractsRaw {
		if v, ok := As[*InheritanceSpecifier](n); ok {
			out = append(out, v)
		}
	}
	return out
}

// FunctionDefinitions returns every function (any kind) declared directly
// on this contract.
func (c *ContractDefinition) FunctionDefinitions() []*FunctionDefinition {
	var out []*FunctionDefinition
	for _, n := range c.NodesRaw {
		if v, ok := As[*FunctionDefinition](n); ok {
			out = append(out, v)
		}
	}
	return out
}

// ModifierDefinitions returns every modifier declared directly on this
// contract.
func (c *ContractDefinition) ModifierDefinitions() []*ModifierDefinition {
	var out []*ModifierDefinition
	for _, n := range c.NodesRaw {
		if v, ok := As[*ModifierDefinition](n); ok {
			out = append(out, v)
		}
	}
	return out
}

// StateVariables returns every state-variable declaration directly on this
// contract, in declaration order.
func (c *ContractDefinition) StateVariables() []*VariableDeclaration {
	var out []*VariableDeclaration
	for _, n := range c.NodesRaw {
		if v, ok := As[*VariableDeclaration](n); ok && v.StateVariable {
			out = append(out, v)
		}
	}
	return out
}

// IsDeployable reports whether instances of this contract kind can be
// deployed directly: libraries have no vtable and interfaces cannot be
// instantiated, so only plain contracts qualify.
func (c *ContractDefinition) IsDeployable() bool {
	return c.ContractKindValue == ContractKindContract
}

// InheritanceSpecifier names one base contract in a `contract X is Y, Z` list.
type InheritanceSpecifier struct {
	BaseNode
	BaseNameRaw  Child    `json:"baseName"`
	ArgumentsRaw NodeList `json:"arguments,omitempty"`
}

func (i *InheritanceSpecifier) Children() []Node {
	return appendNodes(childrenOrNil(i.BaseNameRaw.Node), i.ArgumentsRaw...)
}

// BaseName returns the referenced base contract's identifier path.
func (i *InheritanceSpecifier) BaseName() Node { return i.BaseNameRaw.Node }

// UsingForDirective models `using Lib for T;` and `using {a, b} for T global;`.
type UsingForDirective struct {
	BaseNode
	LibraryNameRaw  Child    `json:"libraryName"`
	TypeNameRaw     Child    `json:"typeName"`
	FunctionListRaw NodeList `json:"functionList,omitempty"`
	Global          bool     `json:"global"`
}

func (u *UsingForDirective) Children() []Node {
	out := childrenOrNil(u.LibraryNameRaw.Node, u.TypeNameRaw.Node)
	return appendNodes(out, u.FunctionListRaw...)
}

// StructDefinition owns an ordered list of field declarations.
type StructDefinition struct {
	BaseNode
	Name        string   `json:"name"`
	Scope       NodeID   `json:"scope"`
	MembersRaw  NodeList `json:"members"`
}

func (s *StructDefinition) Children() []Node { return s.MembersRaw }
func (s *StructDefinition) Members() []*VariableDeclaration {
	var out []*VariableDeclaration
	for _, n := range s.MembersRaw {
		if v, ok := As[*VariableDeclaration](n); ok {
			out = append(out, v)
		}
	}
	return out
}

// EnumDefinition owns an ordered list of enum values.
type EnumDefinition struct {
	BaseNode
	Name       string   `json:"name"`
	MembersRaw NodeList `json:"members"`
}

func (e *EnumDefinition) Children() []Node { return e.MembersRaw }

// EnumValue is one member of an EnumDefinition.
type EnumValue struct {
	BaseNode
	Name string `json:"name"`
}

func (e *EnumValue) Children() []Node { return nil }

// ErrorDefinition models a custom `error Foo(uint256 x);` declaration.
type ErrorDefinition struct {
	BaseNode
	Name           string `json:"name"`
	ParametersRaw  Child  `json:"parameters"`
	ErrorSelector  string `json:"errorSelector,omitempty"`
}

func (e *ErrorDefinition) Children() []Node { return childrenOrNil(e.ParametersRaw.Node) }
func (e *ErrorDefinition) Parameters() *ParameterList {
	v, _ := As[*ParameterList](e.ParametersRaw.Node)
	return v
}

// UserDefinedValueTypeDefinition models `type Foo is uint256;`.
type UserDefinedValueTypeDefinition struct {
	BaseNode
	Name             string `json:"name"`
	UnderlyingTypeRaw Child `json:"underlyingType"`
}

func (u *UserDefinedValueTypeDefinition) Children() []Node {
	return childrenOrNil(u.UnderlyingTypeRaw.Node)
}

// EventDefinition models an `event Foo(uint256 indexed x);` declaration.
type EventDefinition struct {
	BaseNode
	Name          string `json:"name"`
	Anonymous     bool   `json:"anonymous"`
	ParametersRaw Child  `json:"parameters"`
}

func (e *EventDefinition) Children() []Node { return childrenOrNil(e.ParametersRaw.Node) }
func (e *EventDefinition) Parameters() *ParameterList {
	v, _ := As[*ParameterList](e.ParametersRaw.Node)
	return v
}

// VariableDeclaration models both state variables and local/parameter
// declarations; StateVariable discriminates between them.
type VariableDeclaration struct {
	BaseNode
	Name              string           `json:"name"`
	NameLocationValue string           `json:"nameLocation,omitempty"`
	TypeNameRaw       Child            `json:"typeName"`
	TypeDescriptionsValue TypeDescriptions `json:"typeDescriptions"`
	Visibility        Visibility       `json:"visibility"`
	StateVariable     bool             `json:"stateVariable"`
	Constant          bool             `json:"constant"`
	MutabilityValue   Mutability       `json:"mutability,omitempty"`
	StorageLocation   string           `json:"storageLocation,omitempty"`
	Scope             NodeID           `json:"scope"`
	ValueRaw          Child            `json:"value"`
	FunctionSelector  *string          `json:"functionSelector,omitempty"`
	OverrideRaw       Child            `json:"overrides"`
	IndexedValue      bool             `json:"indexed,omitempty"`
}

func (v *VariableDeclaration) Children() []Node {
	return appendNodes(childrenOrNil(v.TypeNameRaw.Node, v.OverrideRaw.Node), v.ValueRaw.Node)
}

func (v *VariableDeclaration) NameLocationRange() (SrcRange, bool) {
	if v.NameLocationValue == "" || v.NameLocationValue == "-1:-1:-1" {
		return SrcRange{}, false
	}
	r, err := ParseSrc(v.NameLocationValue)
	return r, err == nil
}

func (v *VariableDeclaration) TypeDescriptions() TypeDescriptions { return v.TypeDescriptionsValue }

// Value returns the declaration's initializer expression, if any.
func (v *VariableDeclaration) Value() Node { return v.ValueRaw.Node }

// HasLiteralInitializer reports whether the initializer is a bare literal,
// the condition used by the could-be-constant/immutable detectors.
func (v *VariableDeclaration) HasLiteralInitializer() bool {
	_, ok := As[*Literal](v.ValueRaw.Node)
	return ok
}

func (v *VariableDeclaration) HasOverride() bool { return v.OverrideRaw.Node != nil }

// FunctionDefinition owns the function signature and, for implemented
// functions, its body.
type FunctionDefinition struct {
	BaseNode
	Name                  string          `json:"name"`
	NameLocationValue     string          `json:"nameLocation,omitempty"`
	KindValue             FunctionKind    `json:"kind"`
	Visibility            Visibility      `json:"visibility"`
	StateMutabilityValue  StateMutability `json:"stateMutability"`
	Virtual               bool            `json:"virtual"`
	Implemented           bool            `json:"implemented"`
	Scope                 NodeID          `json:"scope"`
	FunctionSelector      *string         `json:"functionSelector,omitempty"`
	ParametersRaw         Child           `json:"parameters"`
	ReturnParametersRaw   Child           `json:"returnParameters"`
	ModifiersRaw          NodeList        `json:"modifiers,omitempty"`
	BodyRaw               Child           `json:"body"`
	OverrideRaw           Child           `json:"overrides"`
}

func (f *FunctionDefinition) Children() []Node {
	out := childrenOrNil(f.ParametersRaw.Node, f.ReturnParametersRaw.Node, f.OverrideRaw.Node)
	out = appendNodes(out, f.ModifiersRaw...)
	return appendNodes(out, f.BodyRaw.Node)
}

func (f *FunctionDefinition) NameLocationRange() (SrcRange, bool) {
	if f.NameLocationValue == "" || f.NameLocationValue == "-1:-1:-1" {
		return SrcRange{}, false
	}
	r, err := ParseSrc(f.NameLocationValue)
	return r, err == nil
}

func (f *FunctionDefinition) Kind() FunctionKind { return f.KindValue }

func (f *FunctionDefinition) Parameters() *ParameterList {
	v, _ := As[*ParameterList](f.ParametersRaw.Node)
	return v
}

func (f *FunctionDefinition) ReturnParameters() *ParameterList {
	v, _ := As[*ParameterList](f.ReturnParametersRaw.Node)
	return v
}

func (f *FunctionDefinition) Modifiers() []*ModifierInvocation {
	out := make([]*ModifierInvocation, 0, len(f.ModifiersRaw))
	for _, n := range f.ModifiersRaw {
		if v, ok := As[*ModifierInvocation](n); ok {
			out = append(out, v)
		}
	}
	return out
}

func (f *FunctionDefinition) Body() *Block {
	v, _ := As[*Block](f.BodyRaw.Node)
	return v
}

// Selectorish is the internal-call fingerprint from spec §6: name plus,
// for each parameter, its type string, a separator, and its type
// identifier, concatenated.
func (f *FunctionDefinition) Selectorish() string {
	params := f.Parameters()
	return selectorish(f.Name, params)
}

func selectorish(name string, params *ParameterList) string {
	out := name + ":"
	if params == nil {
		return out
	}
	for _, p := range params.Parameters() {
		td := p.TypeDescriptions()
		out += td.TypeString + "!" + td.TypeIdentifier + "@"
	}
	return out
}

// ModifierDefinition owns a modifier's signature and body.
type ModifierDefinition struct {
	BaseNode
	Name              string `json:"name"`
	NameLocationValue string `json:"nameLocation,omitempty"`
	Virtual           bool   `json:"virtual"`
	ParametersRaw     Child  `json:"parameters"`
	BodyRaw           Child  `json:"body"`
	OverrideRaw       Child  `json:"overrides"`
}

func (m *ModifierDefinition) Children() []Node {
	return appendNodes(childrenOrNil(m.ParametersRaw.Node, m.OverrideRaw.Node), m.BodyRaw.Node)
}

func (m *ModifierDefinition) NameLocationRange() (SrcRange, bool) {
	if m.NameLocationValue == "" || m.NameLocationValue == "-1:-1:-1" {
		return SrcRange{}, false
	}
	r, err := ParseSrc(m.NameLocationValue)
	return r, err == nil
}

func (m *ModifierDefinition) Parameters() *ParameterList {
	v, _ := As[*ParameterList](m.ParametersRaw.Node)
	return v
}

func (m *ModifierDefinition) Body() *Block {
	v, _ := As[*Block](m.BodyRaw.Node)
	return v
}

func (m *ModifierDefinition) Selectorish() string { return selectorish(m.Name, m.Parameters()) }

// ModifierInvocation is one `onlyOwner` style entry in a function header.
type ModifierInvocation struct {
	BaseNode
	ModifierNameRaw Child    `json:"modifierName"`
	ArgumentsRaw    NodeList `json:"arguments,omitempty"`
}

func (m *ModifierInvocation) Children() []Node {
	return appendNodes(childrenOrNil(m.ModifierNameRaw.Node), m.ArgumentsRaw...)
}

func (m *ModifierInvocation) ModifierName() Node { return m.ModifierNameRaw.Node }

// ReferencedDeclaration returns the modifier or base-constructor NodeID
// this invocation names, when resolvable.
func (m *ModifierInvocation) ReferencedDeclaration() (NodeID, bool) {
	switch n := m.ModifierNameRaw.Node.(type) {
	case *IdentifierPath:
		if n.ReferencedDeclaration != nil {
			return *n.ReferencedDeclaration, true
		}
	case *Identifier:
		if n.ReferencedDeclaration != nil {
			return *n.ReferencedDeclaration, true
		}
	}
	return InvalidNodeID, false
}

// ParameterList is an ordered list of VariableDeclaration parameters or
// return values.
type ParameterList struct {
	BaseNode
	ParametersRaw NodeList `json:"parameters"`
}

func (p *ParameterList) Children() []Node { return p.ParametersRaw }
func (p *ParameterList) Parameters() []*VariableDeclaration {
	out := make([]*VariableDeclaration, 0, len(p.ParametersRaw))
	for _, n := range p.ParametersRaw {
		if v, ok := As[*VariableDeclaration](n); ok {
			out = append(out, v)
		}
	}
	return out
}

// OverrideSpecifier names the explicit base(s) an override targets.
type OverrideSpecifier struct {
	BaseNode
	OverridesRaw NodeList `json:"overrides,omitempty"`
}

func (o *OverrideSpecifier) Children() []Node { return o.OverridesRaw }

// StructuredDocumentation is a `/// natspec` comment block attached to a
// declaration.
type StructuredDocumentation struct {
	BaseNode
	Text string `json:"text"`
}

func (s *StructuredDocumentation) Children() []Node { return nil }
