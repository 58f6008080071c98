package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/gooze-matcher/internal/domain"
	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

const matchLongDescription = `Resolve every target of a YAML manifest to a mutation subject.

Manifest format:
  targets:
    - symbol: example.com/shapes.(*Square).Area
      file: shapes.go
      line: 7

Relative files are resolved against the manifest's directory.`

var matchManifestFlag string
var matchReportFlag string
var matchParallelFlag int

// matchCmd represents the match command.
var matchCmd = newMatchCmd()

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Resolve manifest targets to mutation subjects",
		Long:  matchLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := activeConfig
			if cmd.Flags().Changed("parallel") {
				cfg.Threads = matchParallelFlag
			}

			return workflow.Match(domain.MatchArgs{
				Manifest: m.Path(matchManifestFlag),
				Report:   m.Path(matchReportFlag),
				Config:   cfg,
			})
		},
	}
	cmd.Flags().StringVarP(&matchManifestFlag, "manifest", "m", "", "YAML manifest listing the targets")
	cmd.Flags().StringVarP(&matchReportFlag, "report", "r", "", "write the matched subjects to this YAML file")
	cmd.Flags().IntVarP(&matchParallelFlag, "parallel", "p", 1, "number of targets evaluated concurrently")
	_ = cmd.MarkFlagRequired("manifest")

	return cmd
}

func init() {
	rootCmd.AddCommand(matchCmd)
}
