package dispatch_test

import (
	"testing"

	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/compiler"
	"github.com/solwatch/solwatch/dispatch"
	"github.com/solwatch/solwatch/workspace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// overrideAST declares Base.foo() overridden by Derived.foo(); a call to
// foo() inside Derived's own bar(), whose referenced declaration is
// Base.foo, must resolve to Derived.foo.
const overrideAST = `{
  "id": 1, "nodeType": "SourceUnit", "src": "0:1:0", "absolutePath": "Over.sol",
  "nodes": [
    {
      "id": 10, "nodeType": "ContractDefinition", "src": "0:1:0", "name": "Base",
      "contractKind": "contract", "linearizedBaseContracts": [10],
      "nodes": [
        {
          "id": 11, "nodeType": "FunctionDefinition", "src": "0:1:0", "name": "foo",
          "kind": "function", "visibility": "public", "stateMutability": "nonpayable", "virtual": true, "implemented": true,
          "parameters": {"id": 12, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "returnParameters": {"id": 13, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "body": {"id": 14, "nodeType": "Block", "src": "0:1:0", "statements": []}
        }
      ]
    },
    {
      "id": 20, "nodeType": "ContractDefinition", "src": "0:1:0", "name": "Derived",
      "contractKind": "contract", "linearizedBaseContracts": [20, 10],
      "baseContracts": [{"id": 21, "nodeType": "InheritanceSpecifier", "src": "0:1:0", "baseName": {"id": 22, "nodeType": "IdentifierPath", "src": "0:1:0", "name": "Base", "referencedDeclaration": 10}}],
      "nodes": [
        {
          "id": 23, "nodeType": "FunctionDefinition", "src": "0:1:0", "name": "foo",
          "kind": "function", "visibility": "public", "stateMutability": "nonpayable", "virtual": false, "implemented": true,
          "parameters": {"id": 24, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "returnParameters": {"id": 25, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "body": {"id": 26, "nodeType": "Block", "src": "0:1:0", "statements": []}
        },
        {
          "id": 30, "nodeType": "FunctionDefinition", "src": "0:1:0", "name": "bar",
          "kind": "function", "visibility": "public", "stateMutability": "nonpayable", "virtual": false, "implemented": true,
          "parameters": {"id": 31, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "returnParameters": {"id": 32, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "body": {
            "id": 33, "nodeType": "Block", "src": "0:1:0",
            "statements": [
              {
                "id": 40, "nodeType": "ExpressionStatement", "src": "0:1:0",
                "expression": {
                  "id": 41, "nodeType": "FunctionCall", "src": "0:1:0", "kind": "functionCall",
                  "typeDescriptions": {"typeIdentifier": "t_function_internal_nonpayable$__$returns$__$", "typeString": "function ()"},
                  "expression": {"id": 42, "nodeType": "Identifier", "src": "0:1:0", "name": "foo", "referencedDeclaration": 11, "typeDescriptions": {}},
                  "arguments": []
                }
              }
            ]
          }
        }
      ]
    }
  ]
}`

func TestInternalRouter_ResolvesOverrideThroughChain(t *testing.T) {
	group := compiler.CompilationGroup{
		Sources:  map[string]string{"Over.sol": ""},
		ASTFiles: map[string]compiler.AstSourceFile{"Over.sol": {AstJSON: []byte(overrideAST)}},
	}
	w, err := workspace.Ingest(group, nil)
	require.NoError(t, err)

	router := dispatch.NewInternalRouter(w)

	derivedNode, ok := w.Node(ast.NodeID(20))
	require.True(t, ok)
	derived := derivedNode.(*ast.ContractDefinition)

	callNode, ok := w.Node(ast.NodeID(41))
	require.True(t, ok)
	call := callNode.(*ast.FunctionCall)

	resolved, ok := router.ResolveCall(call, derived)
	require.True(t, ok)
	assert.Equal(t, ast.NodeID(23), resolved.ID())
}
