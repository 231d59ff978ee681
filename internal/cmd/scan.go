package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/consolidator/internal/display"
	"github.com/harrison/consolidator/internal/gateway"
	"github.com/harrison/consolidator/internal/pattern"
	"github.com/harrison/consolidator/internal/report"
)

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <dir|gs://bucket/prefix> <template>",
		Short: "List the files in a directory that instantiate a template",
		Long: `Scan lists a directory (not recursively) with the template's glob and
prints the files whose names match the template, sorted by name.

Google Cloud Storage prefixes use application default credentials unless
gcs.credentials_file, gcs.credentials_json or CONSOLIDATOR_GCS_CREDENTIALS
is set.

Examples:
  consolidator scan renders/ 'isa_[1n].png'
  consolidator scan gs://bucket/renders/shot_010 'shot_010.[4n].exr' --format json`,
		Args: cobra.ExactArgs(2),
		RunE: runScan,
	}

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	dir, template := args[0], args[1]

	// Reject bad templates before touching the filesystem or network.
	if _, err := pattern.ParseTemplate(template); err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	l, err := s.lister(cmd.Context(), dir)
	if err != nil {
		return err
	}

	matches, err := gateway.ListTemplateInstances(cmd.Context(), l, dir, template)
	if err != nil {
		if gateway.IsScanFailure(err) {
			s.log.LogError(fmt.Sprintf("Listing %s failed, no matches reported", dir))
		} else {
			s.log.LogError(err.Error())
		}
		return err
	}

	s.log.LogMatches(template, len(matches), l.listed)
	if len(matches) == 0 {
		display.WarnNoMatches(template, l.listed, dir).Display(cmd.ErrOrStderr())
	}

	return s.writeReport(cmd, report.FromMatches(report.CommandScan, dir, template, l.listed, matches))
}
