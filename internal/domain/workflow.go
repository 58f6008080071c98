// Package domain contains the match workflow driven by the CLI.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mouse-blink/gooze-matcher/internal/adapter"
	"github.com/mouse-blink/gooze-matcher/internal/config"
	"github.com/mouse-blink/gooze-matcher/internal/controller"
	"github.com/mouse-blink/gooze-matcher/internal/domain/matcher"
	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

// MatchArgs contains the arguments for resolving a manifest.
type MatchArgs struct {
	Manifest m.Path
	// Report is where the YAML subject report is written; empty skips it.
	Report m.Path
	Config config.Config
}

// ShowArgs contains the arguments for resolving a single target.
type ShowArgs struct {
	Target m.ManifestTarget
	Config config.Config
}

// Workflow defines the interface for subject matching operations.
type Workflow interface {
	Match(args MatchArgs) error
	Show(args ShowArgs) error
}

type workflow struct {
	goAdapter adapter.GoFileAdapter
	store     adapter.ManifestStore
	ui        controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(goAdapter adapter.GoFileAdapter, store adapter.ManifestStore, ui controller.UI) Workflow {
	return &workflow{
		goAdapter: goAdapter,
		store:     store,
		ui:        ui,
	}
}

func (w *workflow) Match(args MatchArgs) error {
	manifest, err := w.store.LoadManifest(args.Manifest)
	if err != nil {
		return err
	}

	methods := make([]*matcher.Method, 0, len(manifest.Targets))
	for _, target := range manifest.Targets {
		methods = append(methods, matcher.Detect(matcher.NewStaticMethod(target)))
	}

	env := w.newEnv(args.Config, adapter.ManifestDir(args.Manifest))
	env.Logger.Info("matching targets", "manifest", string(args.Manifest), "targets", len(methods), "threads", args.Config.Threads)

	subjects, err := matcher.MatchAll(context.Background(), env, methods, args.Config.Threads)
	if err != nil {
		return fmt.Errorf("failed to match %s: %w", args.Manifest, err)
	}

	warnings := env.Warnings.List()

	if err := w.ui.DisplaySubjects(subjects, warnings); err != nil {
		return err
	}

	if args.Report == "" {
		return nil
	}

	return w.store.SaveReport(args.Report, buildReport(subjects, warnings))
}

func (w *workflow) Show(args ShowArgs) error {
	env := w.newEnv(args.Config, ".")

	subjects, err := matcher.Detect(matcher.NewStaticMethod(args.Target)).Call(env)
	if err != nil {
		return err
	}

	return w.ui.DisplaySource(subjects, env.Warnings.List())
}

// newEnv builds the matcher environment. Target files are resolved against
// dir only after the denylist has ruled out marker names.
func (w *workflow) newEnv(cfg config.Config, dir m.Path) *matcher.Env {
	return matcher.NewEnv(
		w.goAdapter,
		m.NewWarnings(),
		matcher.WithDenylist(cfg.Denylist),
		matcher.WithLogger(slog.Default()),
		matcher.WithPathname(func(file string) m.Path {
			return w.store.Resolve(dir, file)
		}),
	)
}

func buildReport(subjects []*m.Subject, warnings []string) m.SubjectReport {
	report := m.SubjectReport{
		Subjects: make([]m.SubjectRecord, 0, len(subjects)),
		Warnings: warnings,
	}

	for _, subject := range subjects {
		report.Subjects = append(report.Subjects, m.NewSubjectRecord(subject))
	}

	return report
}
