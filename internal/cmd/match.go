package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/consolidator/internal/display"
	"github.com/harrison/consolidator/internal/pattern"
	"github.com/harrison/consolidator/internal/report"
)

// NewMatchCommand creates the match command
func NewMatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <template> [names...]",
		Short: "Print the candidate names that instantiate a template",
		Long: `Match candidate names against a template and print those that fit,
in candidate order. Candidates come from arguments or --stdin.

Examples:
  consolidator match 'isa_[1n].png' isa_1.png isa_12.png isa_a.png
  ls renders/ | consolidator match 'shot_[4n].exr' --stdin`,
		Args: cobra.MinimumNArgs(1),
		RunE: runMatch,
	}

	cmd.Flags().Bool("stdin", false, "Read candidates from stdin, one per line")

	return cmd
}

func runMatch(cmd *cobra.Command, args []string) error {
	template := args[0]
	candidates := args[1:]
	fromStdin, _ := cmd.Flags().GetBool("stdin")

	if fromStdin && len(candidates) > 0 {
		return fmt.Errorf("candidates must come from either arguments or --stdin, not both")
	}

	t, err := pattern.ParseTemplate(template)
	if err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	source := "args"
	if fromStdin {
		source = "stdin"
		candidates, err = readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	matches := t.Filter(candidates)
	s.log.LogMatches(template, len(matches), len(candidates))
	if len(matches) == 0 {
		display.WarnNoMatches(template, len(candidates), "").Display(cmd.ErrOrStderr())
	}

	return s.writeReport(cmd, report.FromMatches(report.CommandMatch, source, template, len(candidates), matches))
}
