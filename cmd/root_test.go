package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/gooze-matcher/internal/domain"
	domainmocks "github.com/mouse-blink/gooze-matcher/internal/domain/mocks"
	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

func withWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	originalWorkflow := workflow
	workflow = wf

	t.Cleanup(func() {
		workflow = originalWorkflow
		configFlag = ""
		logLevelFlag = ""
	})
}

func TestMatchCmd_PassesFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newMatchCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Match", mock.MatchedBy(func(args domain.MatchArgs) bool {
		return args.Manifest == m.Path("targets.yaml") &&
			args.Report == m.Path("out.yaml") &&
			args.Config.Threads == 4
	})).Return(nil)

	cmd.SetArgs([]string{"match", "-m", "targets.yaml", "-r", "out.yaml", "-p", "4"})
	require.NoError(t, cmd.Execute())
}

func TestMatchCmd_RequiresManifest(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newMatchCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"match"})
	require.Error(t, cmd.Execute())
	mockWorkflow.AssertNotCalled(t, "Match", mock.Anything)
}

func TestMatchCmd_UsesConfigFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	configPath := filepath.Join(t.TempDir(), "gooze.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("threads: 3\ndenylist: [\"<generated>\"]\n"), 0o600))

	cmd := newRootCmd()
	cmd.AddCommand(newMatchCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Match", mock.MatchedBy(func(args domain.MatchArgs) bool {
		return args.Config.Threads == 3 &&
			len(args.Config.Denylist) == 1 &&
			args.Config.Denylist[0] == "<generated>"
	})).Return(nil)

	cmd.SetArgs([]string{"--config", configPath, "match", "-m", "targets.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newMatchCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"--log-level", "loud", "match", "-m", "targets.yaml"})
	require.Error(t, cmd.Execute())
}

func TestShowCmd_ParsesArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newShowCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Show(mock.MatchedBy(func(args domain.ShowArgs) bool {
		return args.Target == m.ManifestTarget{Symbol: "example.com/shapes.Perimeter", File: "shapes.go", Line: 14}
	})).Return(nil)

	cmd.SetArgs([]string{"show", "shapes.go", "example.com/shapes.Perimeter", "14"})
	require.NoError(t, cmd.Execute())
}

func TestShowCmd_InvalidLine(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newShowCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"show", "shapes.go", "example.com/shapes.Perimeter", "zero"})
	require.Error(t, cmd.Execute())
}

func TestNewCommands(t *testing.T) {
	match := newMatchCmd()
	assert.Equal(t, "match", match.Use)
	assert.Equal(t, matchLongDescription, match.Long)
	assert.NotNil(t, match.Flags().Lookup("manifest"))
	assert.NotNil(t, match.Flags().Lookup("report"))
	assert.NotNil(t, match.Flags().Lookup("parallel"))

	show := newShowCmd()
	assert.Equal(t, "show <file> <symbol> [line]", show.Use)
	assert.NotEmpty(t, show.Short)
}
