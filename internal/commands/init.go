package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sleuth-io/fmcat/internal/config"
	"github.com/sleuth-io/fmcat/internal/constants"
	"github.com/sleuth-io/fmcat/internal/ui"
	"github.com/sleuth-io/fmcat/internal/ui/components"
	"github.com/sleuth-io/fmcat/internal/utils"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	var output string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the built-in defaults",
		Long: `Write the built-in paths and AlexNet layer table to a TOML config file
so they can be edited. fmcat picks up ./fmcat.toml automatically.

An existing file is only replaced with --force or after confirming at
the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := ui.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

			if utils.FileExists(output) && !force {
				overwrite, err := components.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("%s already exists. Overwrite?", output), false)
				if errors.Is(err, components.ErrNotInteractive) {
					return fmt.Errorf("%s already exists (use --force to overwrite)", output)
				}
				if err != nil {
					return err
				}
				if !overwrite {
					out.Muted("Left " + output + " unchanged")
					return nil
				}
			}

			if err := config.Write(config.Default(), output); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Wrote %s", output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", constants.ConfigFile, "Config file to write")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
