package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/gooze-matcher/internal/domain"
	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file> <symbol> [line]",
		Short: "Print the declaration a single target resolves to",
		Long:  "Resolve one runtime symbol defined in file and print the matched source. Without a line any declaration of the symbol in the file matches.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(_ *cobra.Command, args []string) error {
			target, err := parseShowArgs(args)
			if err != nil {
				return err
			}

			return workflow.Show(domain.ShowArgs{Target: target, Config: activeConfig})
		},
	}

	return cmd
}

func parseShowArgs(args []string) (m.ManifestTarget, error) {
	target := m.ManifestTarget{File: args[0], Symbol: args[1]}

	if len(args) == 3 {
		line, err := strconv.Atoi(args[2])
		if err != nil || line <= 0 {
			return m.ManifestTarget{}, fmt.Errorf("invalid line %q", args[2])
		}

		target.Line = line
	}

	return target, nil
}

func init() {
	rootCmd.AddCommand(showCmd)
}
