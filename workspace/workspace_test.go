package workspace_test

import (
	"testing"

	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/compiler"
	"github.com/solwatch/solwatch/internal/errs"
	"github.com/solwatch/solwatch/workspace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const counterSource = `pragma solidity ^0.8.0;
contract Counter {
    uint256 public count;
    function increment() public {
        count += 1;
    }
}
`

// counterAST is a hand-built AST JSON payload for counterSource, with byte
// offsets matched to the literal string above.
const counterAST = `{
  "id": 1,
  "nodeType": "SourceUnit",
  "src": "0:131:0",
  "absolutePath": "Counter.sol",
  "nodes": [
    {
      "id": 2,
      "nodeType": "PragmaDirective",
      "src": "0:23:0",
      "literals": ["solidity", "^", "0", ".", "8", ".", "0"]
    },
    {
      "id": 10,
      "nodeType": "ContractDefinition",
      "src": "24:106:0",
      "name": "Counter",
      "nameLocation": "33:7:0",
      "contractKind": "contract",
      "abstract": false,
      "fullyImplemented": true,
      "linearizedBaseContracts": [10],
      "nodes": [
        {
          "id": 5,
          "nodeType": "VariableDeclaration",
          "src": "47:20:0",
          "name": "count",
          "nameLocation": "62:5:0",
          "stateVariable": true,
          "constant": false,
          "visibility": "public",
          "mutability": "mutable",
          "typeDescriptions": {"typeIdentifier": "t_uint256", "typeString": "uint256"},
          "typeName": {"id": 4, "nodeType": "ElementaryTypeName", "src": "47:7:0", "name": "uint256", "typeDescriptions": {}}
        },
        {
          "id": 9,
          "nodeType": "FunctionDefinition",
          "src": "73:55:0",
          "name": "increment",
          "nameLocation": "82:9:0",
          "kind": "function",
          "visibility": "public",
          "stateMutability": "nonpayable",
          "virtual": false,
          "implemented": true,
          "parameters": {"id": 6, "nodeType": "ParameterList", "src": "91:2:0", "parameters": []},
          "returnParameters": {"id": 7, "nodeType": "ParameterList", "src": "101:0:0", "parameters": []},
          "body": {
            "id": 8,
            "nodeType": "Block",
            "src": "101:27:0",
            "statements": [
              {
                "id": 20,
                "nodeType": "ExpressionStatement",
                "src": "111:11:0",
                "expression": {
                  "id": 19,
                  "nodeType": "Assignment",
                  "src": "111:10:0",
                  "operator": "+=",
                  "typeDescriptions": {"typeIdentifier": "t_uint256", "typeString": "uint256"},
                  "leftHandSide": {"id": 17, "nodeType": "Identifier", "src": "111:5:0", "name": "count", "referencedDeclaration": 5, "typeDescriptions": {}},
                  "rightHandSide": {"id": 18, "nodeType": "Literal", "src": "120:1:0", "kind": "number", "value": "1", "typeDescriptions": {}}
                }
              }
            ]
          }
        }
      ]
    }
  ]
}`

func mustIngest(t *testing.T) *workspace.Workspace {
	t.Helper()
	group := compiler.CompilationGroup{
		Sources:  map[string]string{"Counter.sol": counterSource},
		ASTFiles: map[string]compiler.AstSourceFile{"Counter.sol": {AstJSON: []byte(counterAST)}},
	}
	w, err := workspace.Ingest(group, nil)
	require.NoError(t, err)
	return w
}

func TestIngest_BuildsParentLinks(t *testing.T) {
	w := mustIngest(t)

	contract, ok := w.Node(10)
	require.True(t, ok)
	_, isContract := contract.(*ast.ContractDefinition)
	assert.True(t, isContract)

	parent, ok := w.GetParent(ast.NodeID(10))
	require.True(t, ok)
	assert.Equal(t, ast.NodeID(1), parent)

	parent, ok = w.GetParent(ast.NodeID(9))
	require.True(t, ok)
	assert.Equal(t, ast.NodeID(10), parent)
}

func TestIngest_EnclosingContext(t *testing.T) {
	w := mustIngest(t)

	fn, ok := w.EnclosingFunction(ast.NodeID(20))
	require.True(t, ok)
	assert.Equal(t, "increment", fn.Name)

	contract, ok := w.EnclosingContract(ast.NodeID(20))
	require.True(t, ok)
	assert.Equal(t, "Counter", contract.Name)

	unit, ok := w.EnclosingSourceUnit(ast.NodeID(20))
	require.True(t, ok)
	assert.Equal(t, "Counter.sol", unit.AbsolutePath)
}

func TestAncestralLine(t *testing.T) {
	w := mustIngest(t)
	line := w.AncestralLine(ast.NodeID(19))
	assert.Equal(t, []ast.NodeID{19, 20, 8, 9, 10, 1}, line)
}

func TestClosestAncestorOfType(t *testing.T) {
	w := mustIngest(t)
	fn, ok := workspace.ClosestAncestorOfType[*ast.FunctionDefinition](w, ast.NodeID(19))
	require.True(t, ok)
	assert.Equal(t, "increment", fn.Name)
}

func TestSortKeyOf_UsesNameLocationForDefinitions(t *testing.T) {
	w := mustIngest(t)
	contract, ok := w.Node(ast.NodeID(10))
	require.True(t, ok)

	key := w.SortKeyOf(contract)
	assert.Equal(t, "Counter.sol", key.AbsolutePath)
	assert.Equal(t, 2, key.Line)
	assert.Equal(t, "33:7", key.ChoppedSrc)
}

func TestSortKeyOf_OrdersByLineThenOffset(t *testing.T) {
	w := mustIngest(t)

	assignment, ok := w.Node(ast.NodeID(19))
	require.True(t, ok)
	literal, ok := w.Node(ast.NodeID(18))
	require.True(t, ok)

	a := w.SortKeyOf(assignment)
	b := w.SortKeyOf(literal)
	assert.True(t, a.Less(b))
}

func TestIngest_MalformedAstOnCompilerError(t *testing.T) {
	group := compiler.CompilationGroup{
		Sources:     map[string]string{"Bad.sol": ""},
		ASTFiles:    map[string]compiler.AstSourceFile{},
		Diagnostics: []compiler.Diagnostic{{Severity: compiler.SeverityError, Message: "parse error"}},
	}
	_, err := workspace.Ingest(group, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.MalformedAst)
}

func TestSourceCodeOf(t *testing.T) {
	w := mustIngest(t)
	fn, ok := w.Node(ast.NodeID(9))
	require.True(t, ok)
	src, ok := w.SourceCodeOf(fn)
	require.True(t, ok)
	assert.Contains(t, src, "increment")
}
