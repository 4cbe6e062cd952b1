package detector_test

import (
	"testing"

	"github.com/solwatch/solwatch/detector"
	"github.com/solwatch/solwatch/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// immutableCandidateAST declares a state variable written exactly once,
// from the constructor, and never again, on a pragma >= 0.6.5.
const immutableCandidateAST = `{
  "id": 1, "nodeType": "SourceUnit", "src": "0:1:0", "absolutePath": "Imm.sol",
  "nodes": [
    {
      "id": 2, "nodeType": "PragmaDirective", "src": "0:1:0", "literals": ["solidity", "^", "0", ".", "8", ".", "0"]
    },
    {
      "id": 10, "nodeType": "ContractDefinition", "src": "0:1:0", "name": "C",
      "contractKind": "contract", "linearizedBaseContracts": [10],
      "nodes": [
        {
          "id": 5, "nodeType": "VariableDeclaration", "src": "0:1:0", "name": "owner",
          "stateVariable": true, "visibility": "internal", "mutability": "mutable",
          "typeDescriptions": {"typeString": "address"}
        },
        {
          "id": 20, "nodeType": "FunctionDefinition", "src": "0:1:0", "name": "",
          "kind": "constructor", "visibility": "public", "stateMutability": "nonpayable", "implemented": true,
          "parameters": {"id": 21, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "returnParameters": {"id": 22, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "body": {
            "id": 23, "nodeType": "Block", "src": "0:1:0",
            "statements": [
              {
                "id": 24, "nodeType": "ExpressionStatement", "src": "0:1:0",
                "expression": {
                  "id": 25, "nodeType": "Assignment", "src": "0:1:0", "operator": "=",
                  "typeDescriptions": {},
                  "leftHandSide": {"id": 26, "nodeType": "Identifier", "src": "0:1:0", "name": "owner", "referencedDeclaration": 5, "typeDescriptions": {}},
                  "rightHandSide": {"id": 27, "nodeType": "Identifier", "src": "0:1:0", "name": "msg", "typeDescriptions": {}}
                }
              }
            ]
          }
        }
      ]
    }
  ]
}`

func TestStateVariableCouldBeImmutable_FlagsConstructorOnlyWrite(t *testing.T) {
	w := ingest(t, "Imm.sol", immutableCandidateAST)

	d := &detector.StateVariableCouldBeImmutable{}
	found, err := d.Detect(w)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, d.Instances(), 1)
	assert.Equal(t, report.SeverityLow, d.Severity())
}
