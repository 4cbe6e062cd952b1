// Package detector defines the detector contract and the registry that
// looks detectors up by kebab-case name, plus the capture funnel every
// concrete detector pushes candidate instances through.
package detector

import (
	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"
)

// Detector is the uniform capability every concrete check implements.
// Detectors are stateless across runs: a fresh instance is constructed
// per workspace pass by the registry's factory.
type Detector interface {
	Name() string // kebab-case, e.g. "reentrancy-state-change"
	Severity() report.Severity
	Title() string
	Description() string

	// Detect runs the check over w and returns whether any instance was
	// captured. Implementations call Base.Capture for every candidate
	// node rather than appending to their own state directly.
	Detect(w *workspace.Workspace) (bool, error)

	Instances() map[workspace.SortKey]ast.NodeID
	Hints() map[workspace.SortKey]string
}

// Base provides the capture funnel and accessor plumbing every concrete
// detector embeds, mirroring the analyzer package's shared-state pattern
// in the teacher (AnalysisContext carried by value, mutated through
// methods rather than ad-hoc fields per implementation).
type Base struct {
	instances map[workspace.SortKey]ast.NodeID
	hints     map[workspace.SortKey]string
}

// Capture records a candidate instance keyed by its workspace sort key.
// Detectors call this for every node they flag; deduplication by key is
// automatic since map insertion is idempotent.
func (b *Base) Capture(w *workspace.Workspace, n ast.Node) {
	if b.instances == nil {
		b.instances = make(map[workspace.SortKey]ast.NodeID)
	}
	b.instances[w.SortKeyOf(n)] = n.ID()
}

// CaptureYul records a candidate Yul node, which carries no NodeID of
// its own; unit must be the source unit the scan that found n is
// currently walking.
func (b *Base) CaptureYul(w *workspace.Workspace, unit *ast.SourceUnit, n ast.Node) {
	if b.instances == nil {
		b.instances = make(map[workspace.SortKey]ast.NodeID)
	}
	b.instances[w.SortKeyOfYul(unit, n)] = ast.InvalidNodeID
}

// CaptureHint attaches an optional per-instance message to the most
// recently captured key for n.
func (b *Base) CaptureHint(w *workspace.Workspace, n ast.Node, hint string) {
	if b.hints == nil {
		b.hints = make(map[workspace.SortKey]string)
	}
	b.hints[w.SortKeyOf(n)] = hint
}

// Instances implements Detector.
func (b *Base) Instances() map[workspace.SortKey]ast.NodeID {
	if b.instances == nil {
		return map[workspace.SortKey]ast.NodeID{}
	}
	return b.instances
}

// Hints implements Detector.
func (b *Base) Hints() map[workspace.SortKey]string {
	if b.hints == nil {
		return map[workspace.SortKey]string{}
	}
	return b.hints
}

// Factory constructs a fresh, stateless Detector instance.
type Factory func() Detector

// Registry looks factories up by kebab-case detector name.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry builds a registry pre-populated with every detector in this
// package's catalogue (see catalogue.go).
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	for _, f := range catalogue {
		r.Register(f)
	}
	return r
}

// Register adds or replaces a factory under the name its constructed
// Detector reports.
func (r *Registry) Register(f Factory) {
	name := f().Name()
	r.factories[name] = f
}

// Build instantiates every registered detector.
func (r *Registry) Build() []report.Detector {
	out := make([]report.Detector, 0, len(r.factories))
	for _, f := range r.factories {
		out = append(out, f())
	}
	return out
}

// Get instantiates a single detector by name.
func (r *Registry) Get(name string) (Detector, bool) {
	f, ok := r.factories[name]
	if !ok {
		return nil, false
	}
	return f(), true
}
