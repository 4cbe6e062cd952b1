// Package errs defines the typed error taxonomy the engine propagates
// across component boundaries (spec.md §7). Leaf queries return absence
// rather than an error; these sentinels are reserved for failures an
// intermediate layer decides are worth distinguishing from "not found".
package errs

import "github.com/pkg/errors"

// Sentinel errors identified by spec.md §7. Wrap with errors.Wrap/Wrapf for
// call-site context and compare with errors.Is.
var (
	// MalformedAst means the compiler diagnostics contained an
	// error-severity entry, or the AST JSON failed to decode. Fatal for
	// the workspace; aborts ingest.
	MalformedAst = errors.New("malformed ast")

	// UnknownNode means a query referenced a NodeID absent from the
	// workspace. Browse-time callers treat this as absence, not failure;
	// it is exported so call-graph walkers can turn a bad entry point
	// into a hard InvalidEntryPointId error.
	UnknownNode = errors.New("unknown node id")

	// CallGraphUnavailable means a detector requested an inward/outward
	// graph that was never built for the given contract.
	CallGraphUnavailable = errors.New("call graph unavailable")

	// VisitorFailure wraps an error a call-graph visitor callback
	// returned during a walk.
	VisitorFailure = errors.New("visitor callback failed")

	// RouterMiss means a selector was absent from a dispatch table and no
	// fallback applied. Detectors decide whether a miss is suspicious.
	RouterMiss = errors.New("router miss")

	// VersionParseError means a pragma string did not yield a usable
	// SemVer constraint.
	VersionParseError = errors.New("version parse error")
)

// Wrap attaches call-site context to a sentinel while preserving
// errors.Is/errors.As compatibility with it.
func Wrap(sentinel error, context string) error {
	return errors.Wrap(sentinel, context)
}

// InvalidEntryPointID reports a call-graph walk that was seeded with a
// NodeID absent from the workspace; unlike a plain UnknownNode browse
// miss, this is a hard error because the caller supplied the bad input.
type InvalidEntryPointID struct {
	NodeID int64
}

func (e *InvalidEntryPointID) Error() string {
	return errors.Wrapf(UnknownNode, "invalid entry point id %d", e.NodeID).Error()
}

func (e *InvalidEntryPointID) Unwrap() error { return UnknownNode }
