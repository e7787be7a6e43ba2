package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sleuth-io/fmcat/internal/catalog"
	"github.com/sleuth-io/fmcat/internal/ui"
)

// NewVerifyCommand creates the verify command
func NewVerifyCommand() *cobra.Command {
	var flags configFlags
	var limit int

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the catalog tree against the layer table",
		Long: `Read every expected folder and image set and report missing folders,
missing or unreadable Contents.json files, descriptors that declare the
wrong file, image sets without their image, and image sets numbered past
the layer's count. Nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, &flags, limit)
		},
	}

	addConfigFlags(cmd, &flags)
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of issues to print (0 for all)")

	return cmd
}

func runVerify(cmd *cobra.Command, flags *configFlags, limit int) error {
	out := ui.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	log := runLogger("verify")

	cfg, err := flags.load(cmd)
	if err != nil {
		return err
	}

	report, err := catalog.Verify(cfg.CatalogDir, cfg.Subjects, cfg.Layers)
	if err != nil {
		return fmt.Errorf("failed to verify catalog: %w", err)
	}
	log.Info("verify complete", "catalog", cfg.CatalogDir, "imagesets", report.ImageSets, "complete", report.Complete, "issues", len(report.Issues))

	out.KeyValue("Catalog", cfg.CatalogDir)
	out.KeyValue("Image sets", fmt.Sprintf("%d", report.ImageSets))
	out.KeyValue("Complete", fmt.Sprintf("%d", report.Complete))

	if report.OK() {
		out.Success("Catalog is complete")
		return nil
	}

	shown := report.Issues
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for _, issue := range shown {
		out.ErrorItem(issue.String())
	}
	if hidden := len(report.Issues) - len(shown); hidden > 0 {
		out.Muted(fmt.Sprintf("... and %d more", hidden))
	}

	return fmt.Errorf("catalog has %d issues", len(report.Issues))
}
