package matcher

import (
	"go/ast"

	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

// FindLastPath walks root depth-first, children in source order, and returns
// the path to the last node satisfying match. A node nested inside another
// match is visited after it, so the deepest of a nested pair wins; among
// siblings the later declaration wins.
func FindLastPath(root ast.Node, match func(ast.Node) bool) m.NodePath {
	if root == nil {
		return nil
	}

	var (
		stack []ast.Node
		last  m.NodePath
	)

	ast.Inspect(root, func(n ast.Node) bool {
		if n == nil {
			stack = stack[:len(stack)-1]
			return true
		}

		stack = append(stack, n)

		if match(n) {
			last = append(m.NodePath(nil), stack...)
		}

		return true
	})

	return last
}
