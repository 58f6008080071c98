package adapter

import (
	"errors"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

// ErrNoTargets is returned when a manifest lists no targets.
var ErrNoTargets = errors.New("manifest has no targets")

// ManifestStore loads target manifests and persists subject reports.
type ManifestStore interface {
	LoadManifest(path m.Path) (m.Manifest, error)
	SaveReport(path m.Path, report m.SubjectReport) error
	// Resolve turns a target file name into a Path rooted at dir.
	Resolve(dir m.Path, file string) m.Path
}

// LocalManifestStore is the YAML ManifestStore.
type LocalManifestStore struct {
	fs SourceFSAdapter
}

// NewManifestStore constructs a ManifestStore reading and writing through fs.
func NewManifestStore(fs SourceFSAdapter) *LocalManifestStore {
	return &LocalManifestStore{fs: fs}
}

// LoadManifest reads the manifest at path. Target files are kept as written,
// marker names included; callers resolve them with Resolve once they are known
// to name real files.
func (s *LocalManifestStore) LoadManifest(path m.Path) (m.Manifest, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return m.Manifest{}, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var manifest m.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("failed to decode manifest %s: %w", path, err)
	}

	if len(manifest.Targets) == 0 {
		return m.Manifest{}, fmt.Errorf("%s: %w", path, ErrNoTargets)
	}

	for i, target := range manifest.Targets {
		if target.Symbol == "" {
			return m.Manifest{}, fmt.Errorf("%s: target %d has no symbol", path, i)
		}
	}

	return manifest, nil
}

// Resolve joins a relative file onto dir and makes it absolute. Absolute files
// are only cleaned.
func (s *LocalManifestStore) Resolve(dir m.Path, file string) m.Path {
	abs, err := s.fs.Abs(dir, m.Path(file))
	if err != nil {
		return m.Path(filepath.Clean(file))
	}

	return abs
}

// ManifestDir is the directory relative target files in the manifest at path
// are resolved against.
func ManifestDir(path m.Path) m.Path {
	return m.Path(filepath.Dir(string(path)))
}

// SaveReport writes report to path as YAML.
func (s *LocalManifestStore) SaveReport(path m.Path, report m.SubjectReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := s.fs.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}
