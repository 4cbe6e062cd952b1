package ignore_test

import (
	"testing"

	"github.com/solwatch/solwatch/ignore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_AllDetectorsDirective(t *testing.T) {
	src := "contract C {\n    // aderyn-ignore-next-line()\n    uint256 public x;\n}\n"
	e := ignore.NewEngine(map[string]string{"C.sol": src})
	assert.False(t, e.Admit("C.sol", 3, "unused-import"))
	assert.True(t, e.Admit("C.sol", 4, "unused-import"))
}

func TestEngine_NamedDetectorsDirective(t *testing.T) {
	src := "contract C {\n    uint256 public x; // aderyn-ignore(unused-import, reentrancy-state-change)\n}\n"
	e := ignore.NewEngine(map[string]string{"C.sol": src})
	assert.False(t, e.Admit("C.sol", 2, "unused-import"))
	assert.True(t, e.Admit("C.sol", 2, "tautological-compare"))
}

func TestEngine_FalsePositiveTwinBehavesIdentically(t *testing.T) {
	src := "uint256 public x; // aderyn-fp(unused-import)\n"
	e := ignore.NewEngine(map[string]string{"C.sol": src})
	assert.False(t, e.Admit("C.sol", 1, "unused-import"))
}

func TestTokenize_IgnoresDirectiveInsideStringLiteral(t *testing.T) {
	src := `string s = "aderyn-ignore()";` + "\n"
	tokens := ignore.Tokenize(src)
	var sawComment bool
	for _, tok := range tokens {
		if tok.Kind == ignore.TokenLineComment || tok.Kind == ignore.TokenBlockComment {
			sawComment = true
		}
	}
	require.False(t, sawComment)
}
