package detector

import (
	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/browse"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"
)

// UnusedImport flags an import directive none of whose imported symbols
// were ever referenced from the importing source unit, built as a graph
// reachability problem over import edges so a re-export chain still marks
// the original import used.
type UnusedImport struct{ Base }

func (*UnusedImport) Name() string            { return "unused-import" }
func (*UnusedImport) Severity() report.Severity { return report.SeverityLow }
func (*UnusedImport) Title() string           { return "Unused import" }
func (*UnusedImport) Description() string {
	return "This import directive's symbols are never referenced from the importing source unit."
}

// importEdge is one import directive: the symbols it brings in and the
// directive node itself (for capture).
type importEdge struct {
	directive *ast.ImportDirective
	symbols   map[ast.NodeID]struct{}
}

func (d *UnusedImport) Detect(w *workspace.Workspace) (bool, error) {
	edgesByUnit := make(map[ast.NodeID][]importEdge)
	var allEdges []importEdge

	for _, unit := range w.SourceUnits() {
		for _, decl := range unit.Declarations() {
			imp, ok := ast.As[*ast.ImportDirective](decl)
			if !ok {
				continue
			}
			symbols := make(map[ast.NodeID]struct{})
			if len(imp.SymbolAliases) == 0 {
				target, ok := w.Node(imp.SourceUnitID)
				if ok {
					if exporter, ok := ast.As[*ast.SourceUnit](target); ok {
						for _, ids := range exporter.ExportedSymbols {
							for _, id := range ids {
								symbols[id] = struct{}{}
							}
						}
					}
				}
			} else {
				for _, id := range imp.ImportedDeclarations() {
					symbols[id] = struct{}{}
				}
			}
			edge := importEdge{directive: imp, symbols: symbols}
			edgesByUnit[unit.ID()] = append(edgesByUnit[unit.ID()], edge)
			allEdges = append(allEdges, edge)
		}
	}

	usedEdges := make(map[*ast.ImportDirective]bool)
	var markUsed func(unitID, sym ast.NodeID, seen map[ast.NodeID]bool)
	markUsed = func(unitID, sym ast.NodeID, seen map[ast.NodeID]bool) {
		if seen[unitID] {
			return
		}
		seen[unitID] = true
		for _, edge := range edgesByUnit[unitID] {
			if _, ok := edge.symbols[sym]; ok {
				usedEdges[edge.directive] = true
				markUsed(edge.directive.SourceUnitID, sym, seen)
			}
		}
	}
	for _, unit := range w.SourceUnits() {
		used := browse.ReferencedDeclarations(unit)
		// Skip references that live inside the import directives
		// themselves (the foreign-name identifier of the import is not a
		// use of the imported symbol).
		for _, decl := range unit.Declarations() {
			if imp, ok := ast.As[*ast.ImportDirective](decl); ok {
				for _, id := range imp.ImportedDeclarations() {
					delete(used, id)
				}
			}
		}
		for sym := range used {
			markUsed(unit.ID(), sym, map[ast.NodeID]bool{})
		}
	}

	for _, edge := range allEdges {
		if !usedEdges[edge.directive] {
			d.Capture(w, edge.directive)
		}
	}
	return len(d.Instances()) > 0, nil
}
