package model

import "go/ast"

// NodePath is the chain of syntax nodes from a file root down to a matched
// node, outermost first.
type NodePath []ast.Node

// Last returns the matched node, or nil when the path is empty.
func (p NodePath) Last() ast.Node {
	if len(p) == 0 {
		return nil
	}

	return p[len(p)-1]
}

// ContainsClosure reports whether any node on the path is a function literal.
func (p NodePath) ContainsClosure() bool {
	for _, node := range p {
		if _, ok := node.(*ast.FuncLit); ok {
			return true
		}
	}

	return false
}
