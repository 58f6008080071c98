package model

// Manifest lists the targets a caller wants resolved to subjects.
type Manifest struct {
	Targets []ManifestTarget `yaml:"targets"`
}

// ManifestTarget is one recorded runtime symbol with its source location.
// An empty File means the runtime reported no location.
type ManifestTarget struct {
	Symbol string `yaml:"symbol"`
	File   string `yaml:"file,omitempty"`
	Line   int    `yaml:"line,omitempty"`
}

// SubjectReport is the persisted outcome of a match run.
type SubjectReport struct {
	Subjects []SubjectRecord `yaml:"subjects"`
	Warnings []string        `yaml:"warnings,omitempty"`
}

// SubjectRecord describes one emitted subject.
type SubjectRecord struct {
	Name     string      `yaml:"name"`
	Kind     SubjectKind `yaml:"kind"`
	Package  string      `yaml:"package"`
	Receiver string      `yaml:"receiver,omitempty"`
	Path     Path        `yaml:"path"`
	Line     int         `yaml:"line"`
	Column   int         `yaml:"column"`
	Ignore   []string    `yaml:"ignore,omitempty"`
}

// NewSubjectRecord flattens a Subject for persistence.
func NewSubjectRecord(s *Subject) SubjectRecord {
	ignore := s.Ignore.Names
	if s.Ignore.All {
		ignore = []string{"all"}
	}

	return SubjectRecord{
		Name:     s.Name(),
		Kind:     s.Kind,
		Package:  s.Context.Scope.Package,
		Receiver: s.Context.Scope.Receiver,
		Path:     s.Context.Path,
		Line:     s.Position.Line,
		Column:   s.Position.Column,
		Ignore:   ignore,
	}
}
