package model

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
)

// SubjectKind selects the mutation semantics applied downstream.
type SubjectKind string

const (
	// SubjectFunction is a package-level function declaration.
	SubjectFunction SubjectKind = "function"
	// SubjectMethod is a method declaration with a receiver.
	SubjectMethod SubjectKind = "method"
	// SubjectLiteral is a function literal. Literals are never emitted as
	// subjects, the kind exists so a specialization can name them.
	SubjectLiteral SubjectKind = "literal"
)

// IgnoreRule lists the mutation types disabled for a subject through
// gooze:ignore directives.
type IgnoreRule struct {
	All   bool
	Names []string
}

// Empty reports whether the rule disables nothing.
func (r IgnoreRule) Empty() bool {
	return !r.All && len(r.Names) == 0
}

// Subject is the immutable unit of code selected for mutation.
type Subject struct {
	Kind     SubjectKind
	Context  Context
	Node     ast.Node
	Position token.Position
	Ignore   IgnoreRule
	Warnings *Warnings

	fset *token.FileSet
}

// NewSubject builds a Subject for node, positioned within fset.
func NewSubject(kind SubjectKind, ctx Context, node ast.Node, fset *token.FileSet, ignore IgnoreRule, warnings *Warnings) *Subject {
	return &Subject{
		Kind:     kind,
		Context:  ctx,
		Node:     node,
		Position: fset.Position(node.Pos()),
		Ignore:   ignore,
		Warnings: warnings,
		fset:     fset,
	}
}

// Name returns the declared name of the subject's node.
func (s *Subject) Name() string {
	if decl, ok := s.Node.(*ast.FuncDecl); ok {
		return decl.Name.Name
	}

	return ""
}

// Source prints the subject's node back to Go source.
func (s *Subject) Source() (string, error) {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, s.fset, s.Node); err != nil {
		return "", err
	}

	return buf.String(), nil
}
