package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sleuth-io/fmcat/internal/config"
	"github.com/sleuth-io/fmcat/internal/copier"
	"github.com/sleuth-io/fmcat/internal/lock"
	"github.com/sleuth-io/fmcat/internal/ui"
	"github.com/sleuth-io/fmcat/internal/utils"
)

type copyOptions struct {
	sourceDir string
	indexMode string
	dryRun    bool
	verbose   bool
}

// NewCopyCommand creates the copy command
func NewCopyCommand() *cobra.Command {
	var flags configFlags
	var opts copyOptions

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy exported feature maps into their catalog image sets",
		Long: `Copy <layer>_feature_map_<n>.png files from the flat source directory into
<catalog>/<subject>/<layer>/<subject>_<layer>_<k>.imageset/<subject>_<layer>_<k>.png.

By default k is the file's position among the files that exist for the
layer, so a missing source file shifts every later image set down by one.
Use --index-mode=preserve to keep k equal to n-1 and leave a gap instead.

A missing source or catalog directory aborts before anything is copied.
A file that fails to copy is reported and the run continues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, &flags, &opts)
		},
	}

	addConfigFlags(cmd, &flags)
	addLockFlag(cmd, &flags)
	cmd.Flags().StringVar(&opts.sourceDir, "source", "", "Source directory of exported feature maps; {subject} is replaced (overrides config)")
	cmd.Flags().StringVar(&opts.indexMode, "index-mode", "", "Numbering of copied files: compact or preserve (overrides config)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show where files would go without copying")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print every copied file instead of a progress bar")

	return cmd
}

func runCopy(cmd *cobra.Command, flags *configFlags, opts *copyOptions) error {
	out := ui.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	log := runLogger("copy")

	cfg, err := flags.load(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("source") {
		cfg.SourceDir = opts.sourceDir
	}
	if cmd.Flags().Changed("index-mode") {
		cfg.IndexMode = config.IndexMode(opts.indexMode)
		if !cfg.IndexMode.IsValid() {
			return fmt.Errorf("invalid index mode: %s (must be 'compact' or 'preserve')", opts.indexMode)
		}
	}

	if !opts.dryRun {
		l, err := lock.Acquire(cmd.Context(), cfg.CatalogDir, flags.lockTimeout)
		if err != nil {
			return fmt.Errorf("failed to lock %s: %w", cfg.CatalogDir, err)
		}
		defer func() { _ = l.Release() }()
	}

	for _, subject := range cfg.Subjects {
		sourceDir, err := utils.NormalizePath(cfg.SourceDirFor(subject))
		if err != nil {
			return err
		}
		destDir := cfg.SubjectDir(subject)

		out.Header(fmt.Sprintf("Starting to copy PNG files from source to %s asset structure...", subject))
		out.KeyValue("Source", sourceDir)
		out.KeyValue("Destination", destDir)
		if cfg.IndexMode != config.IndexModeCompact {
			out.KeyValue("Index mode", string(cfg.IndexMode))
		}
		out.Newline()

		copyOpts := copier.Options{
			SourceDir: sourceDir,
			DestDir:   destDir,
			Subject:   subject,
			Layers:    cfg.Layers,
			IndexMode: cfg.IndexMode,
			DryRun:    opts.dryRun,
		}
		showFiles := opts.verbose || !out.Interactive()
		if !showFiles && !opts.dryRun {
			copyOpts.Progress = out.Writer()
		}

		reporter := &copyReporter{out: out, showFiles: showFiles}
		report, err := copier.New(copyOpts, reporter).WithLogger(log).Run(cmd.Context())
		if errors.Is(err, copier.ErrSourceMissing) || errors.Is(err, copier.ErrDestinationMissing) {
			// Precondition failures skip the subject without failing the command
			out.Error(fmt.Sprintf("Error: %v", err))
			out.Newline()
			continue
		}
		if err != nil {
			return err
		}

		if opts.dryRun {
			printPlan(out, report)
		}

		out.Success(fmt.Sprintf("Finished! Total files copied: %d", report.Expected))
		out.Muted(fmt.Sprintf("(%d found, %d copied, %d failed)", report.Found, report.Copied, report.Failed))
		out.Newline()
	}

	return nil
}

func printPlan(out *ui.Output, report *copier.Report) {
	for _, lr := range report.Layers {
		if len(lr.Placements) == 0 {
			continue
		}
		out.SubHeader(lr.Layer.Name)
		for _, p := range lr.Placements {
			out.ListItem(fmt.Sprintf("%s -> %s", filepath.Base(p.Source.Path), p.Dest))
		}
	}
}

// copyReporter prints copy progress in the familiar per-layer format
type copyReporter struct {
	out       *ui.Output
	showFiles bool
}

func (r *copyReporter) LayerStarted(layer config.Layer) {
	r.out.Info(fmt.Sprintf("Copying %d files from layer %d to %s...", layer.Count, layer.SourceIndex, layer.Name))
}

func (r *copyReporter) LayerFound(layer config.Layer, found int) {
	r.out.Printf("Found %d files for layer %d\n", found, layer.SourceIndex)
}

func (r *copyReporter) FileCopied(p copier.Placement) {
	if r.showFiles {
		r.out.Printf("  Copied: %s -> %s\n", filepath.Base(p.Source.Path), p.Dest)
	}
}

func (r *copyReporter) FileFailed(p copier.Placement, err error) {
	r.out.ErrorItem(fmt.Sprintf("Error copying %s: %v", filepath.Base(p.Source.Path), err))
}

func (r *copyReporter) LayerDone(lr copier.LayerReport) {
	r.out.Newline()
}
