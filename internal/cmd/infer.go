package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/consolidator/internal/display"
	"github.com/harrison/consolidator/internal/logger"
	"github.com/harrison/consolidator/internal/pattern"
	"github.com/harrison/consolidator/internal/report"
)

// NewInferCommand creates the infer command
func NewInferCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "infer [names...]",
		Short: "Fold a batch of names into wildcard templates",
		Long: `Infer templates from a batch of names. Names that differ from another
name in exactly one segment are folded into a template; the rest are
printed unchanged.

Names come from exactly one source: arguments, --stdin (one per line),
or --dir (a local directory or gs://bucket/prefix, not recursive).

Examples:
  consolidator infer isa_1.png isa_2.png isa_7.png
  ls renders/ | consolidator infer --stdin
  consolidator infer --dir renders/ --glob '*.exr'
  consolidator infer --dir renders/ --ext .exr --ext .dpx
  consolidator infer --dir gs://bucket/renders --format json
  consolidator infer --strategy components --stdin < names.txt`,
		RunE: runInfer,
	}

	cmd.Flags().Bool("stdin", false, "Read names from stdin, one per line")
	cmd.Flags().String("dir", "", "List names from a directory or gs://bucket/prefix")
	cmd.Flags().String("glob", "*", "Glob applied to --dir listings")
	cmd.Flags().StringSlice("ext", nil, "Keep only these extensions in --dir listings (repeatable)")

	return cmd
}

func runInfer(cmd *cobra.Command, args []string) error {
	fromStdin, _ := cmd.Flags().GetBool("stdin")
	dir, _ := cmd.Flags().GetString("dir")
	glob, _ := cmd.Flags().GetString("glob")
	exts, _ := cmd.Flags().GetStringSlice("ext")

	sources := 0
	if len(args) > 0 {
		sources++
	}
	if fromStdin {
		sources++
	}
	if dir != "" {
		sources++
	}
	if sources != 1 {
		return fmt.Errorf("names must come from exactly one of: arguments, --stdin, --dir")
	}
	if len(exts) > 0 && dir == "" {
		return fmt.Errorf("--ext only applies to --dir listings")
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	names := args
	source := "args"
	switch {
	case fromStdin:
		source = "stdin"
		names, err = readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
	case dir != "":
		source = dir
		l, err := s.lister(cmd.Context(), dir, exts...)
		if err != nil {
			return err
		}
		names, err = l.ListFiles(cmd.Context(), dir, glob)
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", dir, err)
		}
		if len(names) == 0 {
			display.WarnEmptyListing(dir, glob).Display(cmd.ErrOrStderr())
		}
	}

	consolidator := pattern.NewConsolidator(s.cfg.PatternConfig()).WithTrace(func(format string, args ...interface{}) {
		s.log.LogTrace(fmt.Sprintf(format, args...))
	})

	start := time.Now()
	clusters, err := consolidator.Clusters(names)
	if err != nil {
		if errors.Is(err, pattern.ErrEmptyInput) {
			return fmt.Errorf("no names to consolidate from %s: %w", source, err)
		}
		return err
	}

	rep := report.FromClusters(source, consolidator.Strategy(), len(names), clusters)
	s.log.LogInference(logger.InferenceSummary{
		Names:     len(names),
		Templates: len(clusters),
		Wildcards: rep.Wildcards(),
		Strategy:  string(consolidator.Strategy()),
		Duration:  time.Since(start),
	})

	return s.writeReport(cmd, rep)
}
