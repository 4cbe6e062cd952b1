package ast

// NodeType constants mirror the compiler's `nodeType` discriminant values.
// The full schema recognises roughly 55 kinds; every kind the compiler can
// emit is named here even where this module does not yet need a concrete
// Go struct for it (see decode.go's registry for what is actually decoded).
const (
	KindSourceUnit                  NodeType = "SourceUnit"
	KindPragmaDirective              NodeType = "PragmaDirective"
	KindImportDirective              NodeType = "ImportDirective"
	KindContractDefinition           NodeType = "ContractDefinition"
	KindInheritanceSpecifier         NodeType = "InheritanceSpecifier"
	KindUsingForDirective            NodeType = "UsingForDirective"
	KindStructDefinition             NodeType = "StructDefinition"
	KindEnumDefinition               NodeType = "EnumDefinition"
	KindEnumValue                    NodeType = "EnumValue"
	KindErrorDefinition              NodeType = "ErrorDefinition"
	KindUserDefinedValueTypeDefinition NodeType = "UserDefinedValueTypeDefinition"
	KindEventDefinition              NodeType = "EventDefinition"
	KindVariableDeclaration          NodeType = "VariableDeclaration"
	KindFunctionDefinition           NodeType = "FunctionDefinition"
	KindModifierDefinition           NodeType = "ModifierDefinition"
	KindModifierInvocation           NodeType = "ModifierInvocation"
	KindParameterList                NodeType = "ParameterList"
	KindOverrideSpecifier            NodeType = "OverrideSpecifier"
	KindStructuredDocumentation      NodeType = "StructuredDocumentation"

	KindBlock                  NodeType = "Block"
	KindUncheckedBlock         NodeType = "UncheckedBlock"
	KindIfStatement            NodeType = "IfStatement"
	KindForStatement           NodeType = "ForStatement"
	KindWhileStatement         NodeType = "WhileStatement"
	KindDoWhileStatement       NodeType = "DoWhileStatement"
	KindReturn                 NodeType = "Return"
	KindRevertStatement        NodeType = "RevertStatement"
	KindEmitStatement          NodeType = "EmitStatement"
	KindPlaceholderStatement   NodeType = "PlaceholderStatement"
	KindBreak                  NodeType = "Break"
	KindContinue               NodeType = "Continue"
	KindTryStatement           NodeType = "TryStatement"
	KindTryCatchClause         NodeType = "TryCatchClause"
	KindVariableDeclarationStatement NodeType = "VariableDeclarationStatement"
	KindExpressionStatement    NodeType = "ExpressionStatement"
	KindInlineAssembly         NodeType = "InlineAssembly"

	KindAssignment                  NodeType = "Assignment"
	KindBinaryOperation              NodeType = "BinaryOperation"
	KindUnaryOperation               NodeType = "UnaryOperation"
	KindConditional                  NodeType = "Conditional"
	KindFunctionCall                 NodeType = "FunctionCall"
	KindFunctionCallOptions          NodeType = "FunctionCallOptions"
	KindNewExpression                NodeType = "NewExpression"
	KindMemberAccess                 NodeType = "MemberAccess"
	KindIndexAccess                  NodeType = "IndexAccess"
	KindIndexRangeAccess             NodeType = "IndexRangeAccess"
	KindIdentifier                   NodeType = "Identifier"
	KindIdentifierPath               NodeType = "IdentifierPath"
	KindLiteral                      NodeType = "Literal"
	KindTupleExpression              NodeType = "TupleExpression"
	KindElementaryTypeNameExpression NodeType = "ElementaryTypeNameExpression"

	KindElementaryTypeName NodeType = "ElementaryTypeName"
	KindUserDefinedTypeName NodeType = "UserDefinedTypeName"
	KindArrayTypeName       NodeType = "ArrayTypeName"
	KindMapping             NodeType = "Mapping"
	KindFunctionTypeName    NodeType = "FunctionTypeName"

	KindYulBlock              NodeType = "YulBlock"
	KindYulFunctionCall       NodeType = "YulFunctionCall"
	KindYulIdentifier         NodeType = "YulIdentifier"
	KindYulLiteral            NodeType = "YulLiteral"
	KindYulAssignment         NodeType = "YulAssignment"
	KindYulVariableDeclaration NodeType = "YulVariableDeclaration"
	KindYulIf                 NodeType = "YulIf"
	KindYulFor                NodeType = "YulForLoop"
	KindYulSwitch             NodeType = "YulSwitch"
	KindYulCase               NodeType = "YulCase"
	KindYulFunctionDefinition NodeType = "YulFunctionDefinition"
	KindYulTypedName          NodeType = "YulTypedName"
	KindYulLeave              NodeType = "YulLeave"
	KindYulBreak              NodeType = "YulBreak"
	KindYulContinue           NodeType = "YulContinue"
	KindYulExpressionStatement NodeType = "YulExpressionStatement"
)
