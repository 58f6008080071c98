// Package adapter contains the infrastructure adapters used by the matcher.
package adapter

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/viant/afs"

	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

// SourceFSAdapter abstracts the file operations the matcher relies on so the
// domain layer never touches `os` directly.
type SourceFSAdapter interface {
	// ReadFile loads a file and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Abs resolves path against base when it is relative.
	Abs(base, path m.Path) (m.Path, error)
}

// LocalSourceFSAdapter is the afs-backed SourceFSAdapter.
type LocalSourceFSAdapter struct {
	fs afs.Service
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{fs: afs.New()}
}

// ReadFile loads file contents.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	location, err := filepath.Abs(string(path))
	if err != nil {
		return nil, err
	}

	return a.fs.DownloadWithURL(context.Background(), location)
}

// WriteFile writes content to path, creating parent directories as needed.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	location, err := filepath.Abs(string(path))
	if err != nil {
		return err
	}

	return a.fs.Upload(context.Background(), location, perm, bytes.NewReader(content))
}

// Abs resolves path against base when it is relative.
func (a *LocalSourceFSAdapter) Abs(base, path m.Path) (m.Path, error) {
	target := string(path)
	if !filepath.IsAbs(target) {
		target = filepath.Join(string(base), target)
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}
