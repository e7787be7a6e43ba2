package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sleuth-io/fmcat/internal/config"
	"github.com/sleuth-io/fmcat/internal/logger"
	"github.com/sleuth-io/fmcat/internal/utils"
)

// configFlags are the flags every catalog command accepts
type configFlags struct {
	configFile  string
	catalogDir  string
	subjects    []string
	lockTimeout time.Duration
}

func addConfigFlags(cmd *cobra.Command, f *configFlags) {
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "Config file (TOML or YAML); defaults to ./fmcat.toml when present")
	cmd.Flags().StringVar(&f.catalogDir, "catalog", "", "Network folder inside the asset catalog (overrides config)")
	cmd.Flags().StringSliceVarP(&f.subjects, "subject", "s", nil, "Subjects to process (overrides config)")
}

func addLockFlag(cmd *cobra.Command, f *configFlags) {
	cmd.Flags().DurationVar(&f.lockTimeout, "lock-timeout", 0, "How long to wait for another fmcat run on the same catalog (0 fails immediately)")
}

// load resolves the effective config: flags over config file over built-in defaults
func (f *configFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(f.configFile)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("catalog") {
		cfg.CatalogDir = f.catalogDir
	}
	if cmd.Flags().Changed("subject") {
		cfg.Subjects = f.subjects
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.CatalogDir, err = utils.NormalizePath(cfg.CatalogDir)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// runLogger returns the global logger tagged with a fresh run id
func runLogger(command string) *slog.Logger {
	return logger.Get().With("run", uuid.NewString(), "command", command)
}
