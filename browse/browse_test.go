package browse_test

import (
	"testing"

	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/browse"
	"github.com/solwatch/solwatch/compiler"
	"github.com/solwatch/solwatch/workspace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vaultAST declares a state array `balances` and a function that pushes to
// it both directly and through a storage-pointer local, exercising every
// branch of ApproximateStorageChangeFinder.
const vaultAST = `{
  "id": 1, "nodeType": "SourceUnit", "src": "0:1:0", "absolutePath": "Vault.sol",
  "nodes": [
    {
      "id": 10, "nodeType": "ContractDefinition", "src": "0:1:0", "name": "Vault",
      "contractKind": "contract", "linearizedBaseContracts": [10],
      "nodes": [
        {
          "id": 5, "nodeType": "VariableDeclaration", "src": "0:1:0", "name": "balances",
          "stateVariable": true, "visibility": "internal", "mutability": "mutable",
          "typeDescriptions": {"typeIdentifier": "t_array_uint256", "typeString": "uint256[]"}
        },
        {
          "id": 30, "nodeType": "FunctionDefinition", "src": "0:1:0", "name": "add",
          "kind": "function", "visibility": "public", "stateMutability": "nonpayable",
          "parameters": {"id": 31, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "returnParameters": {"id": 32, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "body": {
            "id": 33, "nodeType": "Block", "src": "0:1:0",
            "statements": [
              {
                "id": 40, "nodeType": "ExpressionStatement", "src": "0:1:0",
                "expression": {
                  "id": 41, "nodeType": "FunctionCall", "src": "0:1:0", "kind": "functionCall",
                  "expression": {
                    "id": 42, "nodeType": "MemberAccess", "src": "0:1:0", "memberName": "push",
                    "expression": {"id": 43, "nodeType": "Identifier", "src": "0:1:0", "name": "balances", "referencedDeclaration": 5, "typeDescriptions": {}}
                  },
                  "arguments": []
                }
              },
              {
                "id": 50, "nodeType": "VariableDeclarationStatement", "src": "0:1:0",
                "declarations": [
                  {"id": 51, "nodeType": "VariableDeclaration", "src": "0:1:0", "name": "ref", "storageLocation": "storage", "stateVariable": false, "mutability": "mutable", "visibility": "internal", "typeDescriptions": {}}
                ],
                "initialValue": {"id": 52, "nodeType": "Identifier", "src": "0:1:0", "name": "balances", "referencedDeclaration": 5, "typeDescriptions": {}}
              },
              {
                "id": 60, "nodeType": "ExpressionStatement", "src": "0:1:0",
                "expression": {
                  "id": 61, "nodeType": "FunctionCall", "src": "0:1:0", "kind": "functionCall",
                  "expression": {
                    "id": 62, "nodeType": "MemberAccess", "src": "0:1:0", "memberName": "push",
                    "expression": {"id": 63, "nodeType": "Identifier", "src": "0:1:0", "name": "ref", "referencedDeclaration": 51, "typeDescriptions": {}}
                  },
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

func TestApproximateStorageChangeFinder_DirectAndAliasedWrites(t *testing.T) {
	group := compiler.CompilationGroup{
		Sources:  map[string]string{"Vault.sol": ""},
		ASTFiles: map[string]compiler.AstSourceFile{"Vault.sol": {AstJSON: []byte(vaultAST)}},
	}
	w, err := workspace.Ingest(group, nil)
	require.NoError(t, err)

	fn, ok := w.Node(ast.NodeID(30))
	require.True(t, ok)

	written := browse.ApproximateStorageChangeFinder(w, fn)
	require.Len(t, written, 1)
	decl, ok := written[ast.NodeID(5)]
	require.True(t, ok)
	assert.Equal(t, "balances", decl.Name)
}

func TestExtract_FunctionCalls(t *testing.T) {
	group := compiler.CompilationGroup{
		Sources:  map[string]string{"Vault.sol": ""},
		ASTFiles: map[string]compiler.AstSourceFile{"Vault.sol": {AstJSON: []byte(vaultAST)}},
	}
	w, err := workspace.Ingest(group, nil)
	require.NoError(t, err)

	fn, ok := w.Node(ast.NodeID(30))
	require.True(t, ok)

	calls := browse.FunctionCalls(fn)
	assert.Len(t, calls, 2)
}
