package matcher

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/mouse-blink/gooze-matcher/internal/adapter"
	"github.com/mouse-blink/gooze-matcher/internal/config"
	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

// Env carries the collaborators shared by every evaluator of a run. Only the
// Warnings sink is mutated, and it is safe for concurrent use.
type Env struct {
	Parser   adapter.GoFileAdapter
	Warnings *m.Warnings
	Pathname func(string) m.Path
	Denylist map[string]struct{}
	Logger   *slog.Logger
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithDenylist replaces the set of file markers treated as unusable locations.
func WithDenylist(entries []string) EnvOption {
	return func(e *Env) {
		e.Denylist = config.Config{Denylist: entries}.DenySet()
	}
}

// WithLogger sets the logger warnings are mirrored to.
func WithLogger(logger *slog.Logger) EnvOption {
	return func(e *Env) {
		if logger != nil {
			e.Logger = logger
		}
	}
}

// WithPathname sets the constructor turning a runtime file name into a Path.
func WithPathname(fn func(string) m.Path) EnvOption {
	return func(e *Env) {
		if fn != nil {
			e.Pathname = fn
		}
	}
}

// NewEnv builds an Env with the default denylist and a discarding logger.
func NewEnv(parser adapter.GoFileAdapter, warnings *m.Warnings, opts ...EnvOption) *Env {
	env := &Env{
		Parser:   parser,
		Warnings: warnings,
		Pathname: func(name string) m.Path { return m.Path(filepath.Clean(name)) },
		Denylist: config.Default().DenySet(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(env)
	}

	return env
}

// Warn appends message to the shared sink.
func (e *Env) Warn(message string) {
	e.Warnings.Append(message)
	e.Logger.Warn(message)
}

// Denied reports whether file is a marker for code without readable source.
func (e *Env) Denied(file string) bool {
	_, ok := e.Denylist[file]
	return ok
}
