package callgraph_test

import (
	"testing"

	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/callgraph"
	"github.com/solwatch/solwatch/compiler"
	"github.com/solwatch/solwatch/dispatch"
	"github.com/solwatch/solwatch/workspace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainAST declares a()->b()->c() internal call chain in one contract.
const chainAST = `{
  "id": 1, "nodeType": "SourceUnit", "src": "0:1:0", "absolutePath": "Chain.sol",
  "nodes": [
    {
      "id": 10, "nodeType": "ContractDefinition", "src": "0:1:0", "name": "Chain",
      "contractKind": "contract", "linearizedBaseContracts": [10],
      "nodes": [
        {
          "id": 20, "nodeType": "FunctionDefinition", "src": "0:1:0", "name": "a",
          "kind": "function", "visibility": "public", "stateMutability": "nonpayable",
          "parameters": {"id": 21, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "returnParameters": {"id": 22, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "body": {
            "id": 23, "nodeType": "Block", "src": "0:1:0",
            "statements": [
              {"id": 24, "nodeType": "ExpressionStatement", "src": "0:1:0", "expression":
                {"id": 25, "nodeType": "FunctionCall", "src": "0:1:0", "kind": "functionCall",
                 "typeDescriptions": {"typeIdentifier": "t_function_internal_nonpayable$__$returns$__$", "typeString": "function ()"},
                 "expression": {"id": 26, "nodeType": "Identifier", "src": "0:1:0", "name": "b", "referencedDeclaration": 30, "typeDescriptions": {}},
                 "arguments": []}}
            ]
          }
        },
        {
          "id": 30, "nodeType": "FunctionDefinition", "src": "0:1:0", "name": "b",
          "kind": "function", "visibility": "public", "stateMutability": "nonpayable",
          "parameters": {"id": 31, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "returnParameters": {"id": 32, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "body": {"id": 33, "nodeType": "Block", "src": "0:1:0", "statements": []}
        }
      ]
    }
  ]
}`

func TestBuild_ResolvesInternalCallEdges(t *testing.T) {
	group := compiler.CompilationGroup{
		Sources:  map[string]string{"Chain.sol": ""},
		ASTFiles: map[string]compiler.AstSourceFile{"Chain.sol": {AstJSON: []byte(chainAST)}},
	}
	w, err := workspace.Ingest(group, nil)
	require.NoError(t, err)

	router := dispatch.NewInternalRouter(w)
	graphs := callgraph.Build(w, router)

	inward := graphs.PerContractInward[ast.NodeID(10)]
	require.NotNil(t, inward)
	assert.Equal(t, []ast.NodeID{30}, inward.Successors(ast.NodeID(20)))

	outward := graphs.PerContractOutward[ast.NodeID(10)]
	assert.Equal(t, []ast.NodeID{20}, outward.Successors(ast.NodeID(30)))
}

func TestWalker_VisitsEntryPointsAndInwardDFS(t *testing.T) {
	group := compiler.CompilationGroup{
		Sources:  map[string]string{"Chain.sol": ""},
		ASTFiles: map[string]compiler.AstSourceFile{"Chain.sol": {AstJSON: []byte(chainAST)}},
	}
	w, err := workspace.Ingest(group, nil)
	require.NoError(t, err)

	router := dispatch.NewInternalRouter(w)
	graphs := callgraph.Build(w, router)

	walker := callgraph.Consumer(w, graphs, []ast.NodeID{ast.NodeID(20)}, callgraph.Inward)

	var entries, inward []ast.NodeID
	rec := &recordingVisitor{
		entry:   func(id ast.NodeID) { entries = append(entries, id) },
		inward:  func(id ast.NodeID) { inward = append(inward, id) },
		outward: func(ast.NodeID) {},
		side:    func(ast.NodeID) {},
	}
	require.NoError(t, walker.Accept(ast.NodeID(10), rec))
	assert.Equal(t, []ast.NodeID{20}, entries)
	assert.Contains(t, inward, ast.NodeID(30))
}

type recordingVisitor struct {
	entry, inward, outward, side func(ast.NodeID)
}

func (r *recordingVisitor) VisitEntryPoint(id ast.NodeID) error       { r.entry(id); return nil }
func (r *recordingVisitor) VisitInward(id ast.NodeID) error          { r.inward(id); return nil }
func (r *recordingVisitor) VisitOutward(id ast.NodeID) error         { r.outward(id); return nil }
func (r *recordingVisitor) VisitOutwardSideEffect(id ast.NodeID) error { r.side(id); return nil }
