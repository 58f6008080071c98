package model

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDecl(t *testing.T) (*token.FileSet, *ast.File) {
	t.Helper()

	const src = "package p\n\nfunc Run(x int) int {\n\treturn x + 1\n}\n\nvar F = func() {}\n"

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", src, parser.ParseComments)
	require.NoError(t, err)

	return fset, file
}

func TestNewSubject(t *testing.T) {
	fset, file := parseDecl(t)
	warnings := NewWarnings()
	ctx := Context{Scope: Scope{Package: "example.com/p"}, Path: "p.go"}

	s := NewSubject(SubjectFunction, ctx, file.Decls[0], fset, IgnoreRule{Names: []string{"arithmetic"}}, warnings)

	assert.Equal(t, "Run", s.Name())
	assert.Equal(t, 3, s.Position.Line)
	assert.Same(t, warnings, s.Warnings)

	src, err := s.Source()
	require.NoError(t, err)
	assert.Contains(t, src, "func Run(x int) int")

	record := NewSubjectRecord(s)
	assert.Equal(t, SubjectRecord{
		Name:    "Run",
		Kind:    SubjectFunction,
		Package: "example.com/p",
		Path:    "p.go",
		Line:    3,
		Column:  1,
		Ignore:  []string{"arithmetic"},
	}, record)
}

func TestSubjectRecord_IgnoreAll(t *testing.T) {
	fset, file := parseDecl(t)

	s := NewSubject(SubjectFunction, Context{}, file.Decls[0], fset, IgnoreRule{All: true}, NewWarnings())
	assert.Equal(t, []string{"all"}, NewSubjectRecord(s).Ignore)
}

func TestNodePath(t *testing.T) {
	_, file := parseDecl(t)

	var empty NodePath
	assert.Nil(t, empty.Last())
	assert.False(t, empty.ContainsClosure())

	decl := file.Decls[0]
	assert.Same(t, decl, NodePath{file, decl}.Last())
	assert.False(t, NodePath{file, decl}.ContainsClosure())

	spec := file.Decls[1].(*ast.GenDecl).Specs[0].(*ast.ValueSpec)
	lit := spec.Values[0]
	assert.True(t, NodePath{file, file.Decls[1], spec, lit}.ContainsClosure())
}
