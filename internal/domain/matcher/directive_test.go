package matcher

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

func TestParseIgnoreDirective_All(t *testing.T) {
	r, ok := parseIgnoreDirective("//gooze:ignore")
	require.True(t, ok)
	assert.True(t, r.all)
	assert.Nil(t, r.names)
}

func TestParseIgnoreDirective_Names(t *testing.T) {
	r, ok := parseIgnoreDirective("//gooze:ignore Arithmetic, comparison ")
	require.True(t, ok)
	assert.False(t, r.all)
	assert.Equal(t, m.IgnoreRule{Names: []string{"arithmetic", "comparison"}}, r.export())
}

func TestParseIgnoreDirective_BlockComment(t *testing.T) {
	r, ok := parseIgnoreDirective("/* gooze:ignore numbers */")
	require.True(t, ok)
	assert.Equal(t, m.IgnoreRule{Names: []string{"numbers"}}, r.export())
}

func TestParseIgnoreDirective_NotADirective(t *testing.T) {
	_, ok := parseIgnoreDirective("// regular comment")
	assert.False(t, ok)
}

func TestIgnoreRuleFor_MergesFileAndDoc(t *testing.T) {
	const src = "//gooze:ignore boolean\n" +
		"package p\n\n" +
		"// Run does things.\n" +
		"//gooze:ignore arithmetic\n" +
		"func Run() int { return 1 + 2 }\n\n" +
		"//gooze:ignore\n" +
		"func Skip() {}\n"

	_, file := parseFile(t, src)

	run := file.Decls[0].(*ast.FuncDecl)
	assert.Equal(t, m.IgnoreRule{Names: []string{"arithmetic", "boolean"}}, ignoreRuleFor(file, run))

	skip := file.Decls[1].(*ast.FuncDecl)
	assert.Equal(t, m.IgnoreRule{All: true}, ignoreRuleFor(file, skip))
}

func TestIgnoreRuleFor_NoDirectives(t *testing.T) {
	_, file := parseFile(t, "package p\n\nfunc Run() {}\n")

	assert.True(t, ignoreRuleFor(file, file.Decls[0]).Empty())
}
