// Package dispatch resolves Solidity's two call-dispatch problems: which
// concrete function body an internal call actually executes given a
// contract's C3 linearization, and which function a selector reaches on an
// external call.
package dispatch

import "github.com/solwatch/solwatch/ast"

// Selectorish re-exposes the bit-exact internal dispatch key of a function
// definition so callers outside package ast (callgraph, detector) can
// compute it without reaching into unexported AST fields themselves.
func Selectorish(fn *ast.FunctionDefinition) string { return fn.Selectorish() }

// ModifierSelectorish is the modifier-definition equivalent.
func ModifierSelectorish(m *ast.ModifierDefinition) string { return m.Selectorish() }
