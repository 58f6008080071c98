// Package model defines the data structures shared by the matcher layers.
package model

import (
	"go/ast"
	"go/token"
)

// Path represents a file system path.
type Path string

// SourceLocation is the file and line where a function's defining code begins.
type SourceLocation struct {
	File string
	Line int
}

// Scope is the lexical context a target belongs to: its package import path
// and, for methods, the receiver's base type name.
type Scope struct {
	Package  string
	Receiver string
}

// Context pairs a Scope with the source file a subject was resolved from.
type Context struct {
	Scope Scope
	Path  Path
}

// SyntaxTree is one parsed Go source file.
type SyntaxTree struct {
	Path    Path
	FileSet *token.FileSet
	File    *ast.File
	// Hash is the content fingerprint the tree was parsed from.
	Hash uint64
}
