package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for consolidator
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consolidator",
		Short: "Infer filename templates and find the names that match them",
		Long: `Consolidator folds batches of similarly structured names, such as
numbered render frames, into compact templates with a single wildcard:

  isa_1.png isa_2.png isa_7.png  ->  isa_[1n].png

A wildcard [<N><n|s>] stands for exactly N characters, numeric (n) or
non-numeric (s). Templates can then be matched against candidate names,
a local directory, or a Google Cloud Storage prefix (gs://bucket/prefix).

Configuration is loaded from .consolidator/config.yaml (or
$CONSOLIDATOR_HOME/config.yaml) if present. CLI flags override it.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	addCommonFlags(cmd)

	cmd.AddCommand(NewInferCommand())
	cmd.AddCommand(NewMatchCommand())
	cmd.AddCommand(NewScanCommand())

	return cmd
}
