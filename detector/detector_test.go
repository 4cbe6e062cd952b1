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

// tautologyAST declares `1 <= 1` inside a function body, a textbook
// tautological comparison.
const tautologyAST = `{
  "id": 1, "nodeType": "SourceUnit", "src": "0:1:0", "absolutePath": "Taut.sol",
  "nodes": [
    {
      "id": 10, "nodeType": "ContractDefinition", "src": "0:1:0", "name": "C",
      "contractKind": "contract", "linearizedBaseContracts": [10],
      "nodes": [
        {
          "id": 20, "nodeType": "FunctionDefinition", "src": "0:1:0", "name": "f",
          "kind": "function", "visibility": "public", "stateMutability": "nonpayable",
          "parameters": {"id": 21, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "returnParameters": {"id": 22, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "body": {
            "id": 23, "nodeType": "Block", "src": "0:1:0",
            "statements": [
              {
                "id": 24, "nodeType": "ExpressionStatement", "src": "10:10:0",
                "expression": {
                  "id": 25, "nodeType": "BinaryOperation", "src": "10:10:0", "operator": "<=",
                  "typeDescriptions": {},
                  "leftExpression": {"id": 26, "nodeType": "Literal", "src": "10:1:0", "kind": "number", "value": "1", "typeDescriptions": {}},
                  "rightExpression": {"id": 27, "nodeType": "Literal", "src": "15:1:0", "kind": "number", "value": "1", "typeDescriptions": {}}
                }
              }
            ]
          }
        }
      ]
    }
  ]
}`

func TestTautologicalCompare_FlagsSameLiteralBothSides(t *testing.T) {
	group := compiler.CompilationGroup{
		Sources:  map[string]string{"Taut.sol": ""},
		ASTFiles: map[string]compiler.AstSourceFile{"Taut.sol": {AstJSON: []byte(tautologyAST)}},
	}
	w, err := workspace.Ingest(group, nil)
	require.NoError(t, err)

	d := &detector.TautologicalCompare{}
	found, err := d.Detect(w)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, d.Instances(), 1)
	assert.Equal(t, report.SeverityHigh, d.Severity())
}

func TestRegistry_BuildsEveryCataloguedDetector(t *testing.T) {
	r := detector.NewRegistry()
	built := r.Build()
	assert.NotEmpty(t, built)

	names := make(map[string]bool)
	for _, det := range built {
		names[det.Name()] = true
	}
	assert.True(t, names["reentrancy-state-change"])
	assert.True(t, names["tautological-compare"])
	assert.True(t, names["unused-import"])
	assert.True(t, names["clz-signed-integer-misuse"])
	assert.True(t, names["clz-normalization-pattern"])
	assert.True(t, names["constant-function-contains-assembly"])
	assert.True(t, names["state-variable-could-be-immutable"])
	assert.True(t, names["state-variable-shadowing"])
	assert.True(t, names["delegate-call-in-loop"])
	assert.True(t, names["high-level-calls-in-loop"])
}

func TestRegistry_GetByName(t *testing.T) {
	r := detector.NewRegistry()
	d, ok := r.Get("emit-after-external-call")
	require.True(t, ok)
	assert.Equal(t, "emit-after-external-call", d.Name())
}
