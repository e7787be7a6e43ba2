package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sleuth-io/fmcat/internal/ui"
)

// NewLayersCommand creates the layers command
func NewLayersCommand() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "layers",
		Short: "Show the effective layer table and paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := ui.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			out.KeyValue("Catalog", cfg.CatalogDir)
			out.KeyValue("Source", cfg.SourceDir)
			out.KeyValue("Index mode", string(cfg.IndexMode))
			out.Newline()

			for _, subject := range cfg.Subjects {
				out.SubHeader(subject)
				for _, layer := range cfg.Layers {
					out.ListItem(fmt.Sprintf("%-6s <- layer %-2d  %d feature maps", layer.Name, layer.SourceIndex, layer.Count))
				}
			}
			out.Newline()
			out.Printf("%d image sets per subject\n", cfg.TotalExpected())

			return nil
		},
	}

	addConfigFlags(cmd, &flags)

	return cmd
}
