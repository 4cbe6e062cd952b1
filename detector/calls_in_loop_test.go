package detector_test

import (
	"testing"

	"github.com/solwatch/solwatch/compiler"
	"github.com/solwatch/solwatch/detector"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// callInLoopAST declares a function with a for-loop body containing
// `target.call("")`, an external call a single failed iteration of which
// can leave earlier iterations' effects committed.
const callInLoopAST = `{
  "id": 1, "nodeType": "SourceUnit", "src": "0:1:0", "absolutePath": "Loop.sol",
  "nodes": [
    {
      "id": 10, "nodeType": "ContractDefinition", "src": "0:1:0", "name": "C",
      "contractKind": "contract", "linearizedBaseContracts": [10],
      "nodes": [
        {
          "id": 20, "nodeType": "FunctionDefinition", "src": "0:1:0", "name": "f",
          "kind": "function", "visibility": "public", "stateMutability": "nonpayable", "implemented": true,
          "parameters": {"id": 21, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "returnParameters": {"id": 22, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "body": {
            "id": 23, "nodeType": "Block", "src": "0:1:0",
            "statements": [
              {
                "id": 24, "nodeType": "ForStatement", "src": "10:40:0",
                "body": {
                  "id": 25, "nodeType": "Block", "src": "20:30:0",
                  "statements": [
                    {
                      "id": 26, "nodeType": "ExpressionStatement", "src": "22:20:0",
                      "expression": {
                        "id": 27, "nodeType": "FunctionCall", "src": "22:20:0", "kind": "functionCall",
                        "typeDescriptions": {},
                        "expression": {
                          "id": 28, "nodeType": "MemberAccess", "src": "22:15:0", "memberName": "call",
                          "typeDescriptions": {},
                          "expression": {"id": 29, "nodeType": "Identifier", "src": "22:6:0", "name": "target", "typeDescriptions": {}}
                        },
                        "arguments": [
                          {"id": 30, "nodeType": "Literal", "src": "37:2:0", "kind": "string", "value": "", "typeDescriptions": {}}
                        ]
                      }
                    }
                  ]
                }
              }
            ]
          }
        }
      ]
    }
  ]
}`

// delegateCallInLoopAST swaps the loop body call for delegatecall.
const delegateCallInLoopAST = `{
  "id": 1, "nodeType": "SourceUnit", "src": "0:1:0", "absolutePath": "Delegate.sol",
  "nodes": [
    {
      "id": 10, "nodeType": "ContractDefinition", "src": "0:1:0", "name": "C",
      "contractKind": "contract", "linearizedBaseContracts": [10],
      "nodes": [
        {
          "id": 20, "nodeType": "FunctionDefinition", "src": "0:1:0", "name": "f",
          "kind": "function", "visibility": "public", "stateMutability": "nonpayable", "implemented": true,
          "parameters": {"id": 21, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "returnParameters": {"id": 22, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "body": {
            "id": 23, "nodeType": "Block", "src": "0:1:0",
            "statements": [
              {
                "id": 24, "nodeType": "WhileStatement", "src": "10:40:0",
                "body": {
                  "id": 25, "nodeType": "Block", "src": "20:30:0",
                  "statements": [
                    {
                      "id": 26, "nodeType": "ExpressionStatement", "src": "22:20:0",
                      "expression": {
                        "id": 27, "nodeType": "FunctionCall", "src": "22:20:0", "kind": "functionCall",
                        "typeDescriptions": {},
                        "expression": {
                          "id": 28, "nodeType": "MemberAccess", "src": "22:15:0", "memberName": "delegatecall",
                          "typeDescriptions": {},
                          "expression": {"id": 29, "nodeType": "Identifier", "src": "22:6:0", "name": "target", "typeDescriptions": {}}
                        },
                        "arguments": []
                      }
                    }
                  ]
                }
              }
            ]
          }
        }
      ]
    }
  ]
}`

func ingest(t *testing.T, path, astJSON string) *workspace.Workspace {
	t.Helper()
	group := compiler.CompilationGroup{
		Sources:  map[string]string{path: ""},
		ASTFiles: map[string]compiler.AstSourceFile{path: {AstJSON: []byte(astJSON)}},
	}
	w, err := workspace.Ingest(group, nil)
	require.NoError(t, err)
	return w
}

func TestHighLevelCallsInLoop_FlagsCallInsideForLoop(t *testing.T) {
	w := ingest(t, "Loop.sol", callInLoopAST)

	d := &detector.HighLevelCallsInLoop{}
	found, err := d.Detect(w)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, d.Instances(), 1)
	assert.Equal(t, report.SeverityHigh, d.Severity())
}

func TestDelegateCallInLoop_FlagsDelegatecallInsideWhileLoop(t *testing.T) {
	w := ingest(t, "Delegate.sol", delegateCallInLoopAST)

	d := &detector.DelegateCallInLoop{}
	found, err := d.Detect(w)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, d.Instances(), 1)
	assert.Equal(t, report.SeverityHigh, d.Severity())
}

func TestDelegateCallInLoop_IgnoresPlainHighLevelCall(t *testing.T) {
	w := ingest(t, "Loop.sol", callInLoopAST)

	d := &detector.DelegateCallInLoop{}
	found, err := d.Detect(w)
	require.NoError(t, err)
	assert.False(t, found)
}
