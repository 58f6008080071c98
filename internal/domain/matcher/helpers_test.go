package matcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/gooze-matcher/internal/adapter"
	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

const shapesSource = `package shapes

type Square struct{ side int }

func (s *Square) Area() int {
	return s.side * s.side
}

//gooze:ignore arithmetic
func Perimeter(side int) int {
	return 4 * side
}

var Double = func(x int) int {
	return x * 2
}

func init() {
	register("bar", func() int {
		return 1
	})
}
`

func writeSource(t *testing.T, name, src string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	return m.Path(path)
}

func newTestEnv(opts ...EnvOption) *Env {
	parser := adapter.NewLocalGoFileAdapter(adapter.NewLocalSourceFSAdapter())
	return NewEnv(parser, m.NewWarnings(), opts...)
}

func static(symbol string, path m.Path, line int) StaticMethod {
	return StaticMethod{Symbol: symbol, Location: &m.SourceLocation{File: string(path), Line: line}}
}
