package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sleuth-io/fmcat/internal/buildinfo"
	"github.com/sleuth-io/fmcat/internal/commands"
	"github.com/sleuth-io/fmcat/internal/logger"
)

func main() {
	// Log command invocation with context
	log := logger.Get()
	cwd, _ := os.Getwd()
	log.Info("command invoked", "version", buildinfo.Version, "command", strings.Join(os.Args[1:], " "), "cwd", cwd)

	rootCmd := &cobra.Command{
		Use:   "fmcat",
		Short: "fmcat - Organize feature-map images into an asset catalog",
		Long: `fmcat prepares feature-map visualizations for an Xcode asset catalog.

Run 'fmcat scaffold' to create the folder and Contents.json skeleton, then
'fmcat copy' to place the exported PNG files into their image sets.`,
		Version:      buildinfo.GetVersionString(),
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(commands.NewScaffoldCommand())
	rootCmd.AddCommand(commands.NewCopyCommand())
	rootCmd.AddCommand(commands.NewVerifyCommand())
	rootCmd.AddCommand(commands.NewLayersCommand())
	rootCmd.AddCommand(commands.NewInitCommand())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
