package adapter

import (
	"fmt"
	"go/parser"
	"go/token"
	"sync"

	"golang.org/x/sync/singleflight"

	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

// GoFileAdapter encapsulates Go-specific parsing so the matcher can focus on
// tree search while delegating compilation details to an infrastructure
// component.
type GoFileAdapter interface {
	// Parse reads and parses the Go source file at path.
	Parse(path m.Path) (*m.SyntaxTree, error)
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
// Parsed trees are shared between callers and reused while the file content
// fingerprint is unchanged. Safe for concurrent use.
type LocalGoFileAdapter struct {
	fs    SourceFSAdapter
	group singleflight.Group

	mu    sync.Mutex
	trees map[m.Path]*m.SyntaxTree
}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter reading through fs.
func NewLocalGoFileAdapter(fs SourceFSAdapter) *LocalGoFileAdapter {
	return &LocalGoFileAdapter{
		fs:    fs,
		trees: make(map[m.Path]*m.SyntaxTree),
	}
}

// Parse builds the tree for path, or returns the cached one.
func (a *LocalGoFileAdapter) Parse(path m.Path) (*m.SyntaxTree, error) {
	v, err, _ := a.group.Do(string(path), func() (any, error) {
		return a.parse(path)
	})
	if err != nil {
		return nil, err
	}

	return v.(*m.SyntaxTree), nil
}

func (a *LocalGoFileAdapter) parse(path m.Path) (*m.SyntaxTree, error) {
	content, err := a.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	hash, err := Fingerprint(content)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint %s: %w", path, err)
	}

	if tree, ok := a.cached(path, hash); ok {
		return tree, nil
	}

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, string(path), content, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	tree := &m.SyntaxTree{Path: path, FileSet: fset, File: file, Hash: hash}

	a.mu.Lock()
	a.trees[path] = tree
	a.mu.Unlock()

	return tree, nil
}

func (a *LocalGoFileAdapter) cached(path m.Path, hash uint64) (*m.SyntaxTree, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	tree, ok := a.trees[path]
	if !ok || tree.Hash != hash {
		return nil, false
	}

	return tree, true
}
