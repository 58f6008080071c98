// Package matcher resolves loaded Go functions to the syntax nodes that
// define them and wraps those nodes as mutation subjects.
package matcher

import (
	"context"

	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

// Method matches a single target. It holds no state between calls.
type Method struct {
	scope  m.Scope
	target TargetMethod
	spec   Specialization
}

// NewMethod binds a target to its scope and specialization.
func NewMethod(scope m.Scope, target TargetMethod, spec Specialization) *Method {
	return &Method{scope: scope, target: target, spec: spec}
}

// Detect builds a Method whose scope and specialization are derived from the
// target's runtime symbol name.
func Detect(target TargetMethod) *Method {
	sym := ParseSymbol(target.Name())
	return NewMethod(sym.Scope(), target, SpecializationFor(sym))
}

// Target returns the bound target.
func (mm *Method) Target() TargetMethod {
	return mm.target
}

// Call evaluates the target against env. Unmatched targets yield an empty
// result and, where the cause is known, a warning in env.Warnings.
func (mm *Method) Call(env *Env) ([]*m.Subject, error) {
	return NewEvaluator(mm.scope, mm.target, env, mm.spec).Call()
}

// MatchAll calls every method with at most threads evaluations in flight and
// returns the subjects in method order. The first error cancels the rest.
func MatchAll(ctx context.Context, env *Env, methods []*Method, threads int) ([]*m.Subject, error) {
	if threads <= 0 {
		threads = 1
	}

	results := make([][]*m.Subject, len(methods))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, method := range methods {
		i, method := i, method
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			subjects, err := method.Call(env)
			if err != nil {
				return err
			}

			results[i] = subjects

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var subjects []*m.Subject
	for _, found := range results {
		subjects = append(subjects, found...)
	}

	return subjects, nil
}
