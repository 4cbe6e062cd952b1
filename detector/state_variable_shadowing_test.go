package detector_test

import (
	"testing"

	"github.com/solwatch/solwatch/detector"
	"github.com/solwatch/solwatch/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shadowingAST declares a base contract with state variable "owner" and a
// derived contract that redeclares a same-named state variable of its
// own, shadowing rather than overriding the base's storage slot.
const shadowingAST = `{
  "id": 1, "nodeType": "SourceUnit", "src": "0:1:0", "absolutePath": "Shadow.sol",
  "nodes": [
    {
      "id": 10, "nodeType": "ContractDefinition", "src": "0:1:0", "name": "Base",
      "contractKind": "contract", "linearizedBaseContracts": [10],
      "nodes": [
        {
          "id": 11, "nodeType": "VariableDeclaration", "src": "0:1:0", "name": "owner",
          "stateVariable": true, "visibility": "internal", "mutability": "mutable",
          "typeDescriptions": {"typeString": "address"}
        }
      ]
    },
    {
      "id": 20, "nodeType": "ContractDefinition", "src": "0:1:0", "name": "Derived",
      "contractKind": "contract", "linearizedBaseContracts": [20, 10],
      "baseContracts": [
        {"id": 21, "nodeType": "InheritanceSpecifier", "src": "0:1:0", "baseName": {"id": 22, "nodeType": "UserDefinedTypeName", "src": "0:1:0", "typeDescriptions": {}}}
      ],
      "nodes": [
        {
          "id": 23, "nodeType": "VariableDeclaration", "src": "0:1:0", "name": "owner",
          "stateVariable": true, "visibility": "internal", "mutability": "mutable",
          "typeDescriptions": {"typeString": "address"}
        }
      ]
    }
  ]
}`

func TestStateVariableShadowing_FlagsRedeclaredBaseStateVariable(t *testing.T) {
	w := ingest(t, "Shadow.sol", shadowingAST)

	d := &detector.StateVariableShadowing{}
	found, err := d.Detect(w)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, d.Instances(), 1)
	assert.Equal(t, report.SeverityHigh, d.Severity())
}
