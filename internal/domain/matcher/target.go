package matcher

import (
	"fmt"
	"reflect"
	"runtime"

	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

// TargetMethod is a loaded function the caller wants resolved to a subject.
type TargetMethod interface {
	// Name returns the runtime symbol name.
	Name() string
	// SourceLocation returns where the function's code begins, if known.
	SourceLocation() (m.SourceLocation, bool)
}

// RuntimeMethod is a TargetMethod backed by the runtime's function table.
type RuntimeMethod struct {
	fn *runtime.Func
}

// FromFunc wraps a func value. Method expressions such as (*T).M resolve to
// the method itself; bound method values resolve to a compiler-generated
// wrapper without a usable source location.
func FromFunc(fn any) (*RuntimeMethod, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("expected a non-nil func, got %T", fn)
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return nil, fmt.Errorf("no runtime function for %T", fn)
	}

	return &RuntimeMethod{fn: f}, nil
}

// Name returns the runtime symbol name.
func (r *RuntimeMethod) Name() string {
	return r.fn.Name()
}

// SourceLocation returns the file and line of the function entry.
func (r *RuntimeMethod) SourceLocation() (m.SourceLocation, bool) {
	file, line := r.fn.FileLine(r.fn.Entry())
	if file == "" && line == 0 {
		return m.SourceLocation{}, false
	}

	return m.SourceLocation{File: file, Line: line}, true
}

func (r *RuntimeMethod) String() string {
	return r.Name()
}

// StaticMethod is a TargetMethod recorded ahead of time, e.g. in a manifest.
type StaticMethod struct {
	Symbol   string
	Location *m.SourceLocation
}

// NewStaticMethod converts a manifest entry. An entry without a file has no
// source location.
func NewStaticMethod(target m.ManifestTarget) StaticMethod {
	method := StaticMethod{Symbol: target.Symbol}
	if target.File != "" {
		method.Location = &m.SourceLocation{File: target.File, Line: target.Line}
	}

	return method
}

// Name returns the recorded symbol.
func (s StaticMethod) Name() string {
	return s.Symbol
}

// SourceLocation returns the recorded location.
func (s StaticMethod) SourceLocation() (m.SourceLocation, bool) {
	if s.Location == nil {
		return m.SourceLocation{}, false
	}

	return *s.Location, true
}

func (s StaticMethod) String() string {
	return s.Symbol
}
