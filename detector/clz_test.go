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

// clzSignedAST declares `function f(int256 x) { assembly { let r :=
// clz(x) } }`; x is signed, so clz's unsigned bit-count reading of it is
// the misuse this detector exists to catch.
const clzSignedAST = `{
  "id": 1, "nodeType": "SourceUnit", "src": "0:1:0", "absolutePath": "Clz.sol",
  "nodes": [
    {
      "id": 10, "nodeType": "ContractDefinition", "src": "0:1:0", "name": "C",
      "contractKind": "contract", "linearizedBaseContracts": [10],
      "nodes": [
        {
          "id": 20, "nodeType": "FunctionDefinition", "src": "0:1:0", "name": "f",
          "kind": "function", "visibility": "public", "stateMutability": "nonpayable", "implemented": true,
          "parameters": {"id": 21, "nodeType": "ParameterList", "src": "0:1:0", "parameters": [
            {"id": 22, "nodeType": "VariableDeclaration", "src": "0:1:0", "name": "x", "typeDescriptions": {"typeString": "int256"}}
          ]},
          "returnParameters": {"id": 23, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "body": {
            "id": 24, "nodeType": "Block", "src": "0:1:0",
            "statements": [
              {
                "id": 25, "nodeType": "InlineAssembly", "src": "10:20:0",
                "AST": {
                  "id": 0, "nodeType": "YulBlock", "src": "10:20:0",
                  "statements": [
                    {
                      "id": 0, "nodeType": "YulVariableDeclaration", "src": "12:10:0",
                      "variables": [{"id": 0, "nodeType": "YulTypedName", "src": "12:1:0", "name": "r"}],
                      "value": {
                        "id": 0, "nodeType": "YulFunctionCall", "src": "16:6:0",
                        "functionName": {"id": 0, "nodeType": "YulIdentifier", "src": "16:3:0", "name": "clz"},
                        "arguments": [{"id": 0, "nodeType": "YulIdentifier", "src": "20:1:0", "name": "x"}]
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

// clzNormalizationAST declares a function normalizing x via
// shr(C, shl(clz(x), x)) inline, the unsafe-at-zero idiom.
const clzNormalizationAST = `{
  "id": 1, "nodeType": "SourceUnit", "src": "0:1:0", "absolutePath": "Norm.sol",
  "nodes": [
    {
      "id": 10, "nodeType": "ContractDefinition", "src": "0:1:0", "name": "C",
      "contractKind": "contract", "linearizedBaseContracts": [10],
      "nodes": [
        {
          "id": 20, "nodeType": "FunctionDefinition", "src": "0:1:0", "name": "f",
          "kind": "function", "visibility": "public", "stateMutability": "nonpayable", "implemented": true,
          "parameters": {"id": 21, "nodeType": "ParameterList", "src": "0:1:0", "parameters": [
            {"id": 22, "nodeType": "VariableDeclaration", "src": "0:1:0", "name": "x", "typeDescriptions": {"typeString": "uint256"}}
          ]},
          "returnParameters": {"id": 23, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "body": {
            "id": 24, "nodeType": "Block", "src": "0:1:0",
            "statements": [
              {
                "id": 25, "nodeType": "InlineAssembly", "src": "10:40:0",
                "AST": {
                  "id": 0, "nodeType": "YulBlock", "src": "10:40:0",
                  "statements": [
                    {
                      "id": 0, "nodeType": "YulExpressionStatement", "src": "12:30:0",
                      "expression": {
                        "id": 0, "nodeType": "YulFunctionCall", "src": "12:30:0",
                        "functionName": {"id": 0, "nodeType": "YulIdentifier", "src": "12:3:0", "name": "shr"},
                        "arguments": [
                          {"id": 0, "nodeType": "YulLiteral", "src": "16:1:0", "value": "3", "kind": "number"},
                          {
                            "id": 0, "nodeType": "YulFunctionCall", "src": "19:20:0",
                            "functionName": {"id": 0, "nodeType": "YulIdentifier", "src": "19:3:0", "name": "shl"},
                            "arguments": [
                              {
                                "id": 0, "nodeType": "YulFunctionCall", "src": "23:6:0",
                                "functionName": {"id": 0, "nodeType": "YulIdentifier", "src": "23:3:0", "name": "clz"},
                                "arguments": [{"id": 0, "nodeType": "YulIdentifier", "src": "27:1:0", "name": "x"}]
                              },
                              {"id": 0, "nodeType": "YulIdentifier", "src": "30:1:0", "name": "x"}
                            ]
                          }
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

func ingestWithEvmVersion(t *testing.T, path, astJSON string, ev compiler.EvmVersion) *workspace.Workspace {
	t.Helper()
	group := compiler.CompilationGroup{
		Sources:    map[string]string{path: ""},
		ASTFiles:   map[string]compiler.AstSourceFile{path: {AstJSON: []byte(astJSON)}},
		EvmVersion: ev,
	}
	w, err := workspace.Ingest(group, nil)
	require.NoError(t, err)
	return w
}

func TestClzSignedIntegerMisuse_FlagsClzOnSignedParameter(t *testing.T) {
	w := ingestWithEvmVersion(t, "Clz.sol", clzSignedAST, compiler.EvmVersionOsaka)

	d := &detector.ClzSignedIntegerMisuse{}
	found, err := d.Detect(w)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, d.Instances(), 1)
	assert.Equal(t, report.SeverityLow, d.Severity())
}

func TestClzSignedIntegerMisuse_SkipsBelowOsaka(t *testing.T) {
	w := ingestWithEvmVersion(t, "Clz.sol", clzSignedAST, compiler.EvmVersionCancun)

	d := &detector.ClzSignedIntegerMisuse{}
	found, err := d.Detect(w)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClzNormalizationPattern_FlagsInlineClzShift(t *testing.T) {
	w := ingestWithEvmVersion(t, "Norm.sol", clzNormalizationAST, compiler.EvmVersionOsaka)

	d := &detector.ClzNormalizationPattern{}
	found, err := d.Detect(w)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, d.Instances(), 1)
	assert.Equal(t, report.SeverityHigh, d.Severity())
}
