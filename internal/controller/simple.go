package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd       *cobra.Command
	warnStyle lipgloss.Style
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{
		cmd:       cmd,
		warnStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	}
}

// DisplaySubjects prints a table of subjects followed by warnings.
func (s *SimpleUI) DisplaySubjects(subjects []*m.Subject, warnings []string) error {
	if len(subjects) == 0 {
		s.printf("No subjects matched\n")
	} else {
		var tableBuffer bytes.Buffer

		table := tablewriter.NewWriter(&tableBuffer)
		table.SetHeader([]string{"Subject", "Kind", "Location", "Ignore"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetAutoWrapText(false)

		for _, subject := range subjects {
			table.Append([]string{
				displayName(subject),
				string(subject.Kind),
				fmt.Sprintf("%s:%d", subject.Context.Path, subject.Position.Line),
				ignoreText(subject.Ignore),
			})
		}

		table.SetFooter([]string{fmt.Sprintf("Total Subjects %d", len(subjects)), "", "", ""})
		table.Render()
		s.printf("\n%s", tableBuffer.String())
	}

	s.displayWarnings(warnings)

	return nil
}

// DisplaySource prints each subject's position and source.
func (s *SimpleUI) DisplaySource(subjects []*m.Subject, warnings []string) error {
	if len(subjects) == 0 {
		s.printf("No subject matched\n")
	}

	for _, subject := range subjects {
		src, err := subject.Source()
		if err != nil {
			return fmt.Errorf("failed to print %s: %w", displayName(subject), err)
		}

		s.printf("%s (%s) %s:%d\n\n%s\n", displayName(subject), subject.Kind, subject.Context.Path, subject.Position.Line, src)
	}

	s.displayWarnings(warnings)

	return nil
}

func (s *SimpleUI) displayWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	s.printf("\n%s\n", s.warnStyle.Render(fmt.Sprintf("Warnings (%d)", len(warnings))))

	for _, warning := range warnings {
		s.printf("  - %s\n", warning)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func displayName(subject *m.Subject) string {
	if receiver := subject.Context.Scope.Receiver; receiver != "" {
		return receiver + "." + subject.Name()
	}

	return subject.Name()
}

func ignoreText(rule m.IgnoreRule) string {
	if rule.All {
		return "all"
	}

	return strings.Join(rule.Names, ",")
}
