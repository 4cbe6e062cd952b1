package detector

import (
	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/cfg"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"
)

// IncorrectModifier flags a modifier that has some control-flow path from
// its start which neither executes the placeholder nor reverts, meaning
// the wrapped function body might silently never run.
type IncorrectModifier struct{ Base }

func (*IncorrectModifier) Name() string            { return "incorrect-modifier" }
func (*IncorrectModifier) Severity() report.Severity { return report.SeverityLow }
func (*IncorrectModifier) Title() string           { return "Modifier has a path without placeholder or revert" }
func (*IncorrectModifier) Description() string {
	return "On some control-flow path through this modifier, execution neither reaches the placeholder statement nor reverts, so the guarded function may be silently skipped."
}

// modifierState is the two-bit fixed-point lattice: whether a placeholder
// or a revert has definitely been seen by the time control reaches a
// given CFG node along the path being evaluated.
type modifierState struct {
	seenPlaceholder bool
	seenRevert      bool
}

func (d *IncorrectModifier) Detect(w *workspace.Workspace) (bool, error) {
	for _, unit := range w.SourceUnits() {
		for _, decl := range unit.Declarations() {
			c, ok := ast.As[*ast.ContractDefinition](decl)
			if !ok {
				continue
			}
			for _, mod := range c.ModifierDefinitions() {
				if mod.Body() == nil {
					continue
				}
				g, entry, exit := cfg.FromModifierBody(mod)
				memo := make(map[cfg.NodeID]bool)
				visiting := make(map[cfg.NodeID]bool)
				if !reaches(g, entry, exit, modifierState{}, memo, visiting) {
					d.Capture(w, mod)
				}
			}
		}
	}
	return len(d.Instances()) > 0, nil
}

// reaches reports whether every path from id to exit passes through the
// placeholder or a revert. Once state has already seen one of those, the
// path is trivially satisfied without descending further, which also
// bounds recursion through loop back-edges: a node is only re-entered
// with seenPlaceholder or seenRevert already true, or with visiting[id]
// already set, in which case the unresolved cycle is treated
// conservatively as a path that fails to prove safety.
func reaches(g *cfg.Graph, id, exit cfg.NodeID, state modifierState, memo map[cfg.NodeID]bool, visiting map[cfg.NodeID]bool) bool {
	if state.seenPlaceholder || state.seenRevert {
		return true
	}
	if ok, done := memo[id]; done {
		return ok
	}
	if visiting[id] {
		return false
	}
	visiting[id] = true
	defer delete(visiting, id)

	if g.Kind(id) == cfg.KindPlaceholderStatement {
		state.seenPlaceholder = true
	}
	if g.Kind(id) == cfg.KindRevertStatement {
		state.seenRevert = true
	}
	if state.seenPlaceholder || state.seenRevert {
		memo[id] = true
		return true
	}

	if id == exit {
		memo[id] = false
		return false
	}

	children := g.Children(id)
	if len(children) == 0 {
		memo[id] = false
		return false
	}

	allOK := true
	for _, child := range children {
		if !reaches(g, child, exit, state, memo, visiting) {
			allOK = false
		}
	}
	memo[id] = allOK
	return allOK
}
