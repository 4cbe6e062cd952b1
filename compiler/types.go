// Package compiler defines the data types the external compiler driver
// delivers to the engine. Compiling Solidity is explicitly out of scope
// for this module (see spec.md §1); this package only owns the shapes
// that cross that boundary.
package compiler

import "encoding/json"

// EvmVersion names the EVM hard fork a compilation group targeted.
// Osaka is the fork at which the clz opcode becomes available, gating the
// CLZ-related detectors.
type EvmVersion string

const (
	EvmVersionHomestead   EvmVersion = "homestead"
	EvmVersionByzantium   EvmVersion = "byzantium"
	EvmVersionConstantinople EvmVersion = "constantinople"
	EvmVersionPetersburg  EvmVersion = "petersburg"
	EvmVersionIstanbul    EvmVersion = "istanbul"
	EvmVersionBerlin      EvmVersion = "berlin"
	EvmVersionLondon      EvmVersion = "london"
	EvmVersionParis       EvmVersion = "paris"
	EvmVersionShanghai    EvmVersion = "shanghai"
	EvmVersionCancun      EvmVersion = "cancun"
	EvmVersionPrague      EvmVersion = "prague"
	EvmVersionOsaka       EvmVersion = "osaka"
)

var evmVersionOrder = map[EvmVersion]int{
	EvmVersionHomestead:      0,
	EvmVersionByzantium:      1,
	EvmVersionConstantinople: 2,
	EvmVersionPetersburg:     3,
	EvmVersionIstanbul:       4,
	EvmVersionBerlin:         5,
	EvmVersionLondon:         6,
	EvmVersionParis:          7,
	EvmVersionShanghai:       8,
	EvmVersionCancun:         9,
	EvmVersionPrague:         10,
	EvmVersionOsaka:          11,
}

// AtLeast reports whether this EVM version is the same as or a later fork
// than other. Unknown versions compare as older than everything.
func (v EvmVersion) AtLeast(other EvmVersion) bool {
	a, aok := evmVersionOrder[v]
	b, bok := evmVersionOrder[other]
	if !aok || !bok {
		return false
	}
	return a >= b
}

// DiagnosticSeverity mirrors the compiler's diagnostic severity levels.
type DiagnosticSeverity string

const (
	SeverityInfo    DiagnosticSeverity = "info"
	SeverityWarning DiagnosticSeverity = "warning"
	SeverityError   DiagnosticSeverity = "error"
)

// Diagnostic is one compiler-emitted message.
type Diagnostic struct {
	Severity DiagnosticSeverity `json:"severity"`
	Message  string             `json:"message"`
	Path     string             `json:"path,omitempty"`
}

// HasErrors reports whether any diagnostic in the set has error severity,
// the trigger for workspace.Ingest's MalformedAst failure.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// AstSourceFile is the compiler's per-file AST payload: a raw JSON
// document whose root is a SourceUnit node.
type AstSourceFile struct {
	AstJSON json.RawMessage `json:"ast"`
}

// CompilationGroup bundles everything one compiler invocation produced for
// a set of source files compiled together under one EVM version.
type CompilationGroup struct {
	// Sources maps an absolute path to its original source text, needed
	// for ignore-directive scanning and source-slice peeks.
	Sources map[string]string
	// ASTFiles maps an absolute path to its decoded-on-demand AST payload.
	ASTFiles map[string]AstSourceFile
	// IncludedFiles restricts ingest to this subset of Sources/ASTFiles;
	// a path absent here is skipped even if present in the maps (it may
	// be a dependency pulled in only for type resolution).
	IncludedFiles map[string]struct{}
	EvmVersion    EvmVersion
	Diagnostics   []Diagnostic
}

// IsIncluded reports whether path participates in ingest. An empty
// IncludedFiles set means "include everything present in Sources".
func (g CompilationGroup) IsIncluded(path string) bool {
	if len(g.IncludedFiles) == 0 {
		return true
	}
	_, ok := g.IncludedFiles[path]
	return ok
}
