package matcher

import (
	"fmt"
	"go/ast"

	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

const (
	sourceLocationWarningFormat = "%s does not have a valid source location, unable to emit subject"
	closureWarningFormat        = "%s is dynamically defined in a closure, unable to emit subject"
)

// Evaluator resolves one target to at most one subject. It is single use and
// not safe for concurrent use; every derived value is computed once.
type Evaluator struct {
	scope  m.Scope
	target TargetMethod
	env    *Env
	spec   Specialization
	cache  evaluatorCache
}

type evaluatorCache struct {
	sourcePath *m.Path
	tree       *m.SyntaxTree
	nodePath   m.NodePath
	searched   bool
	skip       *bool
	subject    *m.Subject
	built      bool
}

// NewEvaluator binds an evaluator to one (scope, target, env) triple.
func NewEvaluator(scope m.Scope, target TargetMethod, env *Env, spec Specialization) *Evaluator {
	return &Evaluator{
		scope:  scope,
		target: target,
		env:    env,
		spec:   spec,
	}
}

// Call returns the matched subject, or nothing when the target is skipped or
// no node matches. Read and parse failures of an eligible file are returned.
func (e *Evaluator) Call() ([]*m.Subject, error) {
	skip, err := e.skip()
	if err != nil {
		return nil, err
	}

	if skip {
		return nil, nil
	}

	subject, err := e.subject()
	if err != nil || subject == nil {
		return nil, err
	}

	return []*m.Subject{subject}, nil
}

func (e *Evaluator) skip() (bool, error) {
	if e.cache.skip != nil {
		return *e.cache.skip, nil
	}

	skip := false

	location, ok := e.target.SourceLocation()
	if !ok || e.env.Denied(location.File) {
		e.env.Warn(fmt.Sprintf(sourceLocationWarningFormat, e.target.Name()))
		skip = true
	} else {
		path, err := e.matchedNodePath()
		if err != nil {
			return false, err
		}

		if path.ContainsClosure() {
			e.env.Warn(fmt.Sprintf(closureWarningFormat, e.target.Name()))
			skip = true
		}
	}

	e.cache.skip = &skip

	return skip, nil
}

func (e *Evaluator) sourcePath() m.Path {
	if e.cache.sourcePath == nil {
		location, _ := e.target.SourceLocation()
		path := e.env.Pathname(location.File)
		e.cache.sourcePath = &path
	}

	return *e.cache.sourcePath
}

func (e *Evaluator) sourceLine() int {
	location, _ := e.target.SourceLocation()
	return location.Line
}

func (e *Evaluator) context() m.Context {
	return m.Context{Scope: e.scope, Path: e.sourcePath()}
}

func (e *Evaluator) syntaxTree() (*m.SyntaxTree, error) {
	if e.cache.tree == nil {
		tree, err := e.env.Parser.Parse(e.sourcePath())
		if err != nil {
			return nil, err
		}

		e.cache.tree = tree
	}

	return e.cache.tree, nil
}

func (e *Evaluator) matchedNodePath() (m.NodePath, error) {
	if e.cache.searched {
		return e.cache.nodePath, nil
	}

	tree, err := e.syntaxTree()
	if err != nil {
		return nil, err
	}

	q := Query{Symbol: ParseSymbol(e.target.Name()), Line: e.sourceLine(), fset: tree.FileSet}
	e.cache.nodePath = FindLastPath(tree.File, func(n ast.Node) bool {
		return e.spec.Match(n, q)
	})
	e.cache.searched = true

	return e.cache.nodePath, nil
}

func (e *Evaluator) subject() (*m.Subject, error) {
	if e.cache.built {
		return e.cache.subject, nil
	}

	path, err := e.matchedNodePath()
	if err != nil {
		return nil, err
	}

	if node := path.Last(); node != nil {
		tree := e.cache.tree
		e.cache.subject = m.NewSubject(
			e.spec.Kind,
			e.context(),
			node,
			tree.FileSet,
			ignoreRuleFor(tree.File, node),
			e.env.Warnings,
		)

		e.env.Logger.Debug("matched subject",
			"target", e.target.Name(),
			"kind", string(e.spec.Kind),
			"position", e.cache.subject.Position.String())
	}

	e.cache.built = true

	return e.cache.subject, nil
}
