// Package workspace ingests a compiler.CompilationGroup into the in-memory
// model the rest of the engine queries: a flat node registry, parent links,
// per-kind context tables, and the sort key detectors order findings by.
//
// Nodes are created once at ingest and never mutated afterward. The
// workspace keeps no per-node annotations that are written after ingest.
package workspace

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/compiler"
	"github.com/solwatch/solwatch/internal/errs"
	"github.com/solwatch/solwatch/internal/logx"

	"go.uber.org/zap"
)

// Workspace owns every decoded node plus the indexes built over them.
type Workspace struct {
	EvmVersion compiler.EvmVersion

	nodes      map[ast.NodeID]ast.Node
	parent     map[ast.NodeID]ast.NodeID
	sourceUnit map[ast.NodeID]ast.NodeID // node -> its enclosing SourceUnit
	contract   map[ast.NodeID]ast.NodeID // node -> its enclosing ContractDefinition, if any
	function   map[ast.NodeID]ast.NodeID // node -> its enclosing FunctionDefinition, if any
	modifier   map[ast.NodeID]ast.NodeID // node -> its enclosing ModifierDefinition, if any

	sourceUnits []*ast.SourceUnit
	sourceText  map[string]string // absolute path -> full source

	// yul* context tables attribute scope to Yul nodes, which carry no
	// NodeID of their own; keyed by the node's content hash (ast.Hash) so
	// the tables stay index-shaped like everything else.
	yulScope map[uint64]yulScope
}

type yulScope struct {
	sourceUnit ast.NodeID
	contract   ast.NodeID
	function   ast.NodeID
	modifier   ast.NodeID
}

// Ingest decodes every included AST file in group, links parents, and
// builds the context tables. It fails with errs.MalformedAst if the
// compiler reported an error-severity diagnostic or any AST failed to
// decode.
func Ingest(group compiler.CompilationGroup, log *logx.Logger) (*Workspace, error) {
	if log == nil {
		log = logx.Nop()
	}
	if compiler.HasErrors(group.Diagnostics) {
		return nil, errs.Wrap(errs.MalformedAst, "compiler reported error-severity diagnostics")
	}

	w := &Workspace{
		EvmVersion: group.EvmVersion,
		nodes:      make(map[ast.NodeID]ast.Node),
		parent:     make(map[ast.NodeID]ast.NodeID),
		sourceUnit: make(map[ast.NodeID]ast.NodeID),
		contract:   make(map[ast.NodeID]ast.NodeID),
		function:   make(map[ast.NodeID]ast.NodeID),
		modifier:   make(map[ast.NodeID]ast.NodeID),
		sourceText: make(map[string]string),
		yulScope:   make(map[uint64]yulScope),
	}

	paths := make([]string, 0, len(group.ASTFiles))
	for path := range group.ASTFiles {
		if group.IsIncluded(path) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths) // deterministic ingest order, independent of map iteration

	for _, path := range paths {
		file := group.ASTFiles[path]
		node, err := ast.Decode(json.RawMessage(file.AstJSON))
		if err != nil {
			return nil, errs.Wrap(errs.MalformedAst, "decode "+path+": "+err.Error())
		}
		unit, ok := ast.As[*ast.SourceUnit](node)
		if !ok {
			return nil, errs.Wrap(errs.MalformedAst, path+": root node is not a SourceUnit")
		}
		w.sourceText[path] = group.Sources[path]
		w.sourceUnits = append(w.sourceUnits, unit)
		w.index(unit, unit.ID(), ast.InvalidNodeID, ast.InvalidNodeID, ast.InvalidNodeID, ast.InvalidNodeID)
	}

	log.Info("workspace ingested", zap.Int("source_units", len(w.sourceUnits)), zap.Int("nodes", len(w.nodes)))
	return w, nil
}

// index walks n and its descendants, registering each node and its parent
// link while threading down the enclosing source unit / contract /
// function / modifier context.
func (w *Workspace) index(n ast.Node, sourceUnit, contract, function, modifier ast.NodeID, parent ...ast.NodeID) {
	if n == nil {
		return
	}
	id := n.ID()
	if id != ast.InvalidNodeID {
		w.nodes[id] = n
		w.sourceUnit[id] = sourceUnit
		w.contract[id] = contract
		w.function[id] = function
		w.modifier[id] = modifier
		if len(parent) > 0 && parent[0] != ast.InvalidNodeID {
			w.parent[id] = parent[0]
		}
	}

	switch t := n.(type) {
	case *ast.ContractDefinition:
		contract = t.ID()
	case *ast.FunctionDefinition:
		function = t.ID()
	case *ast.ModifierDefinition:
		modifier = t.ID()
	}

	w.indexYul(n, sourceUnit, contract, function, modifier)

	for _, child := range n.Children() {
		w.index(child, sourceUnit, contract, function, modifier, id)
	}
}

// indexYul attributes scope to the root of an inline-assembly block, since
// Yul nodes below it carry no NodeID and cannot be indexed the normal way.
func (w *Workspace) indexYul(n ast.Node, sourceUnit, contract, function, modifier ast.NodeID) {
	asm, ok := n.(*ast.InlineAssembly)
	if !ok {
		return
	}
	block := asm.YulBlock()
	if block == nil {
		return
	}
	w.attributeYulScope(block, yulScope{sourceUnit, contract, function, modifier})
}

func (w *Workspace) attributeYulScope(n ast.Node, scope yulScope) {
	if n == nil {
		return
	}
	h, err := ast.Hash(n)
	if err == nil {
		w.yulScope[h] = scope
	}
	for _, child := range n.Children() {
		w.attributeYulScope(child, scope)
	}
}

// YulScope reports the source-unit/contract/function/modifier context a
// Yul node was attributed under, if any. Detectors walking an
// InlineAssembly subtree use this to resolve identifier scope.
func (w *Workspace) YulScope(n ast.Node) (sourceUnit, contract, function, modifier ast.NodeID, ok bool) {
	h, err := ast.Hash(n)
	if err != nil {
		return ast.InvalidNodeID, ast.InvalidNodeID, ast.InvalidNodeID, ast.InvalidNodeID, false
	}
	s, found := w.yulScope[h]
	if !found {
		return ast.InvalidNodeID, ast.InvalidNodeID, ast.InvalidNodeID, ast.InvalidNodeID, false
	}
	return s.sourceUnit, s.contract, s.function, s.modifier, true
}

// Node resolves a NodeID to its decoded node. Absence is reported via ok,
// not an error: callers decide whether a miss matters.
func (w *Workspace) Node(id ast.NodeID) (ast.Node, bool) {
	n, ok := w.nodes[id]
	return n, ok
}

// SourceUnits returns every ingested source unit in deterministic
// (path-sorted) order.
func (w *Workspace) SourceUnits() []*ast.SourceUnit { return w.sourceUnits }

// GetParent returns id's parent, or ok=false at a source unit root or for
// an unknown id.
func (w *Workspace) GetParent(id ast.NodeID) (ast.NodeID, bool) {
	p, ok := w.parent[id]
	return p, ok
}

// AncestralLine returns id and every ancestor up to its source unit root,
// nearest first.
func (w *Workspace) AncestralLine(id ast.NodeID) []ast.NodeID {
	var line []ast.NodeID
	cur := id
	for {
		line = append(line, cur)
		parent, ok := w.GetParent(cur)
		if !ok {
			return line
		}
		cur = parent
	}
}

// ClosestAncestorOfType walks up from id (inclusive) and returns the first
// node whose concrete type matches T.
func ClosestAncestorOfType[T ast.Node](w *Workspace, id ast.NodeID) (T, bool) {
	for _, ancestorID := range w.AncestralLine(id) {
		n, ok := w.Node(ancestorID)
		if !ok {
			continue
		}
		if t, ok := ast.As[T](n); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// EnclosingContract returns the ContractDefinition containing id, if any.
func (w *Workspace) EnclosingContract(id ast.NodeID) (*ast.ContractDefinition, bool) {
	cid, ok := w.contract[id]
	if !ok || cid == ast.InvalidNodeID {
		return nil, false
	}
	n, ok := w.Node(cid)
	if !ok {
		return nil, false
	}
	c, ok := ast.As[*ast.ContractDefinition](n)
	return c, ok
}

// EnclosingFunction returns the FunctionDefinition containing id, if any.
func (w *Workspace) EnclosingFunction(id ast.NodeID) (*ast.FunctionDefinition, bool) {
	fid, ok := w.function[id]
	if !ok || fid == ast.InvalidNodeID {
		return nil, false
	}
	n, ok := w.Node(fid)
	if !ok {
		return nil, false
	}
	f, ok := ast.As[*ast.FunctionDefinition](n)
	return f, ok
}

// EnclosingSourceUnit returns the SourceUnit containing id.
func (w *Workspace) EnclosingSourceUnit(id ast.NodeID) (*ast.SourceUnit, bool) {
	sid, ok := w.sourceUnit[id]
	if !ok {
		return nil, false
	}
	n, ok := w.Node(sid)
	if !ok {
		return nil, false
	}
	u, ok := ast.As[*ast.SourceUnit](n)
	return u, ok
}

// SourceCodeOf returns the source-text slice a node's SrcRange covers,
// resolved against its enclosing source unit's absolute path.
func (w *Workspace) SourceCodeOf(n ast.Node) (string, bool) {
	unit, ok := w.EnclosingSourceUnit(n.ID())
	if !ok {
		return "", false
	}
	text, ok := w.sourceText[unit.AbsolutePath]
	if !ok {
		return "", false
	}
	r := n.SourceRange()
	if r.Offset < 0 || r.Offset+r.Length > len(text) {
		return "", false
	}
	return text[r.Offset : r.Offset+r.Length], true
}

// SortKey is the (absolute_path, source_line, chopped_src) triple every
// detector instance and report entry is ordered by.
type SortKey struct {
	AbsolutePath string
	Line         int
	ChoppedSrc   string
}

// Less implements the byte-stable ordering report.Build relies on:
// compare path, then line, then the lexicographic offset inside
// chopped_src.
func (k SortKey) Less(other SortKey) bool {
	if k.AbsolutePath != other.AbsolutePath {
		return k.AbsolutePath < other.AbsolutePath
	}
	if k.Line != other.Line {
		return k.Line < other.Line
	}
	return k.ChoppedSrc < other.ChoppedSrc
}

// SortKeyOf computes a node's sort key. For contract/function/modifier/
// variable definitions carrying a valid name_location, that location is
// used in place of src so findings anchor on the identifier rather than
// the whole declaration.
func (w *Workspace) SortKeyOf(n ast.Node) SortKey {
	unit, _ := w.EnclosingSourceUnit(n.ID())
	return w.sortKeyIn(unit, n)
}

// SortKeyOfYul computes a sort key for a Yul node, which carries no
// NodeID and so cannot resolve its own enclosing source unit the way
// SortKeyOf does; callers already know unit from the scan that found the
// node (see YulScope).
func (w *Workspace) SortKeyOfYul(unit *ast.SourceUnit, n ast.Node) SortKey {
	return w.sortKeyIn(unit, n)
}

func (w *Workspace) sortKeyIn(unit *ast.SourceUnit, n ast.Node) SortKey {
	path := ""
	if unit != nil {
		path = unit.AbsolutePath
	}

	src := n.SourceRange()
	if nl, ok := n.(ast.NameLocation); ok {
		if r, present := nl.NameLocationRange(); present {
			src = r
		}
	}

	line := lineOf(w.sourceTextFor(path), src.Offset)
	return SortKey{AbsolutePath: path, Line: line, ChoppedSrc: src.Chopped()}
}

func (w *Workspace) sourceTextFor(path string) string { return w.sourceText[path] }

// lineOf converts a byte offset into a 1-based line number by counting
// newlines in the preceding text.
func lineOf(text string, offset int) int {
	if offset < 0 || offset > len(text) {
		offset = 0
	}
	return strings.Count(text[:offset], "\n") + 1
}

// String is a convenience used by browsers and detectors to build
// stable identifiers for captured instances without re-deriving SortKey
// string formatting at each call site.
func (k SortKey) String() string {
	return k.AbsolutePath + ":" + strconv.Itoa(k.Line) + ":" + k.ChoppedSrc
}
