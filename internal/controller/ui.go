// Package controller provides output adapters for displaying match results.
package controller

import (
	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

// UI defines the interface for displaying matched subjects.
type UI interface {
	// DisplaySubjects shows the subjects of a run and the warnings it raised.
	DisplaySubjects(subjects []*m.Subject, warnings []string) error
	// DisplaySource prints the source of each subject.
	DisplaySource(subjects []*m.Subject, warnings []string) error
}
