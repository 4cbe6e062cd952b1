// Package report assembles the ordered findings a full detector run
// produces, after ignore-directive filtering.
package report

import (
	"sort"

	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/workspace"
)

// Severity mirrors the detector framework's fixed severity scale.
type Severity string

const (
	SeverityNC       Severity = "NC"
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// Finding is one detector instance that survived ignore filtering.
type Finding struct {
	Detector     string
	Severity     Severity
	Title        string
	Description  string
	AbsolutePath string
	Line         int
	ChoppedSrc   string
	NodeID       ast.NodeID
	Hint         string
}

// Report is a full run's ordered output.
type Report struct {
	Findings []Finding
}

// Detector is the subset of detector.Detector that Build consumes,
// declared here to avoid an import cycle between report and detector.
type Detector interface {
	Name() string
	Severity() Severity
	Title() string
	Description() string
	Detect(w *workspace.Workspace) (bool, error)
	Instances() map[workspace.SortKey]ast.NodeID
	Hints() map[workspace.SortKey]string
}

// IgnoreSource is the subset of ignore.Engine that Build consumes.
type IgnoreSource interface {
	Admit(path string, line int, detectorName string) bool
}

// Build runs every detector over w, filters captured instances through
// ignoreEngine, and returns findings ordered by (absolute_path, line,
// chopped_src) — byte-stable across runs when inputs are identical.
func Build(w *workspace.Workspace, detectors []Detector, ignoreEngine IgnoreSource) (*Report, error) {
	var findings []Finding
	for _, d := range detectors {
		found, err := d.Detect(w)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		hints := d.Hints()
		for key, nodeID := range d.Instances() {
			if !ignoreEngine.Admit(key.AbsolutePath, key.Line, d.Name()) {
				continue
			}
			findings = append(findings, Finding{
				Detector:     d.Name(),
				Severity:     d.Severity(),
				Title:        d.Title(),
				Description:  d.Description(),
				AbsolutePath: key.AbsolutePath,
				Line:         key.Line,
				ChoppedSrc:   key.ChoppedSrc,
				NodeID:       nodeID,
				Hint:         hints[key],
			})
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		a := workspace.SortKey{AbsolutePath: findings[i].AbsolutePath, Line: findings[i].Line, ChoppedSrc: findings[i].ChoppedSrc}
		b := workspace.SortKey{AbsolutePath: findings[j].AbsolutePath, Line: findings[j].Line, ChoppedSrc: findings[j].ChoppedSrc}
		return a.Less(b)
	})
	return &Report{Findings: findings}, nil
}
