package ignore

import (
	"regexp"
	"strings"
)

// directivePattern matches both the `aderyn-ignore`/`aderyn-fp` directive
// families, an optional `-next-line` suffix (capture group 1), and an
// optional comma-separated detector name list (capture group 2).
var directivePattern = regexp.MustCompile(`aderyn-(?:ignore|fp)(-next-line)?\s*\(\s*([a-zA-Z-\s,]*)\s*\)`)

// Scope is where a directive applies: the line the comment ends on, or
// the line immediately following it.
type Scope int

const (
	ScopeOwnLine Scope = iota
	ScopeNextLine
)

// Directive is one parsed suppression directive.
type Directive struct {
	Scope Scope
	// Names is the detector kebab-case name set the directive targets; a
	// nil/empty Names means "all detectors".
	Names map[string]struct{}
}

// Admits reports whether this directive suppresses detectorName.
func (d Directive) Admits(detectorName string) bool {
	if len(d.Names) == 0 {
		return true
	}
	_, ok := d.Names[detectorName]
	return ok
}

// Engine indexes every directive found in a source unit's comment tokens
// by the line it applies to.
type Engine struct {
	// byLine[path][line] is every directive applying to that line.
	byLine map[string]map[int][]Directive
}

// NewEngine scans sources (absolute path -> source text) and builds the
// per-(path, line) directive index.
func NewEngine(sources map[string]string) *Engine {
	e := &Engine{byLine: make(map[string]map[int][]Directive)}
	for path, src := range sources {
		e.scan(path, src)
	}
	return e
}

func (e *Engine) scan(path, src string) {
	lineOf := func(offset int) int { return strings.Count(src[:offset], "\n") + 1 }

	for _, tok := range Tokenize(src) {
		if tok.Kind != TokenLineComment && tok.Kind != TokenBlockComment {
			continue
		}
		m := directivePattern.FindStringSubmatchIndex(tok.Text)
		if m == nil {
			continue
		}
		nextLine := m[2] != -1
		namesRaw := ""
		if m[4] != -1 {
			namesRaw = tok.Text[m[4]:m[5]]
		}

		scope := ScopeOwnLine
		commentLine := lineOf(tok.End)
		targetLine := commentLine
		if nextLine {
			scope = ScopeNextLine
			targetLine = commentLine + 1
		}

		names := parseNames(namesRaw)
		if e.byLine[path] == nil {
			e.byLine[path] = make(map[int][]Directive)
		}
		e.byLine[path][targetLine] = append(e.byLine[path][targetLine], Directive{Scope: scope, Names: names})
	}
}

func parseNames(raw string) map[string]struct{} {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	names := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			names[part] = struct{}{}
		}
	}
	return names
}

// Admit reports whether a detector instance at (path, line) survives
// ignore filtering: it is dropped if any directive for that location
// admits the detector's kebab-case name.
func (e *Engine) Admit(path string, line int, detectorName string) bool {
	for _, d := range e.byLine[path][line] {
		if d.Admits(detectorName) {
			return false
		}
	}
	return true
}
