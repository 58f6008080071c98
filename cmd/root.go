// Package cmd provides the root command and CLI setup for gooze-matcher.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/gooze-matcher/internal/adapter"
	"github.com/mouse-blink/gooze-matcher/internal/config"
	"github.com/mouse-blink/gooze-matcher/internal/controller"
	"github.com/mouse-blink/gooze-matcher/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var goFileAdapter adapter.GoFileAdapter
var manifestStore adapter.ManifestStore
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewSimpleUI(rootCmd)
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	goFileAdapter = adapter.NewLocalGoFileAdapter(fsAdapter)
	manifestStore = adapter.NewManifestStore(fsAdapter)
	workflow = domain.NewWorkflow(goFileAdapter, manifestStore, ui)
}

var configFlag string
var logLevelFlag string

// activeConfig is loaded before any subcommand runs.
var activeConfig = config.Default()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gooze-matcher",
		Short: "Resolve loaded Go functions to mutation subjects",
		Long: `gooze-matcher maps functions recorded from a running Go program (symbol name
plus source file and line) to the declarations that define them, and reports
the subjects a mutation engine can work on.

Targets without a readable source location, or defined by a function literal,
are skipped with a warning.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			level, err := cfg.Level()
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			activeConfig = cfg

			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level (debug, info, warn, error)")

	return cmd
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(fsAdapter, configFlag)
	if err != nil {
		return config.Config{}, err
	}

	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}

	return cfg, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
