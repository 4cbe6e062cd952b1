package detector

import (
	"regexp"

	"golang.org/x/mod/semver"

	"github.com/solwatch/solwatch/ast"
	"github.com/solwatch/solwatch/browse"
)

var versionDigits = regexp.MustCompile(`\d+\.\d+\.\d+`)

// pragmaAtLeast reports whether unit's solidity pragma names a version
// greater than or equal to min ("0.6.5"). A unit with no parseable
// pragma is treated as satisfying every gate, matching the compiler's
// own default of accepting untagged sources.
func pragmaAtLeast(unit *ast.SourceUnit, min string) bool {
	for _, p := range browse.PragmaDirectives(unit) {
		str, ok := p.VersionPragmaString()
		if !ok {
			continue
		}
		v := versionDigits.FindString(str)
		if v == "" {
			continue
		}
		return semver.Compare("v"+v, "v"+min) >= 0
	}
	return true
}
