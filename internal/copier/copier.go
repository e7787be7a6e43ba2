// Package copier places exported feature maps into a scaffolded asset catalog.
package copier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/sleuth-io/fmcat/internal/config"
	"github.com/sleuth-io/fmcat/internal/logger"
	"github.com/sleuth-io/fmcat/internal/utils"
)

var (
	// ErrSourceMissing is returned when the source directory does not exist
	ErrSourceMissing = errors.New("source directory does not exist")
	// ErrDestinationMissing is returned when the destination directory does not exist
	ErrDestinationMissing = errors.New("destination directory does not exist")
)

// Reporter receives progress while files are copied
type Reporter interface {
	LayerStarted(layer config.Layer)
	LayerFound(layer config.Layer, found int)
	FileCopied(p Placement)
	FileFailed(p Placement, err error)
	LayerDone(lr LayerReport)
}

type nopReporter struct{}

func (nopReporter) LayerStarted(config.Layer)    {}
func (nopReporter) LayerFound(config.Layer, int) {}
func (nopReporter) FileCopied(Placement)         {}
func (nopReporter) FileFailed(Placement, error)  {}
func (nopReporter) LayerDone(LayerReport)        {}

// Options configures a copy run for a single subject
type Options struct {
	SourceDir string
	DestDir   string // subject folder, e.g. Assets.xcassets/Alexnet/ship
	Subject   string
	Layers    []config.Layer
	IndexMode config.IndexMode
	DryRun    bool      // plan placements without touching the destination
	Progress  io.Writer // receives a progress bar per layer when set
}

// Failure records a file that could not be copied
type Failure struct {
	Placement Placement
	Err       error
}

// LayerReport is the outcome for one layer
type LayerReport struct {
	Layer      config.Layer
	Found      int
	Copied     int
	Placements []Placement
	Failures   []Failure
}

// Report is the outcome of a run
type Report struct {
	Layers []LayerReport

	// Expected is the sum of configured counts. It is what the run intended
	// to copy, not what it copied.
	Expected int
	Found    int
	Copied   int
	Failed   int
}

// Copier copies found source files into their image sets
type Copier struct {
	opts     Options
	reporter Reporter
	log      *slog.Logger
}

// New creates a copier. A nil reporter discards progress.
func New(opts Options, reporter Reporter) *Copier {
	if reporter == nil {
		reporter = nopReporter{}
	}
	if opts.IndexMode == "" {
		opts.IndexMode = config.IndexModeCompact
	}
	return &Copier{opts: opts, reporter: reporter}
}

// WithLogger replaces the copier's logger
func (c *Copier) WithLogger(log *slog.Logger) *Copier {
	c.log = log
	return c
}

func (c *Copier) logger() *slog.Logger {
	if c.log == nil {
		return logger.Get()
	}
	return c.log
}

// CheckPreconditions verifies both roots exist as directories
func (c *Copier) CheckPreconditions() error {
	if !utils.IsDirectory(c.opts.SourceDir) {
		return fmt.Errorf("%w: %s", ErrSourceMissing, c.opts.SourceDir)
	}
	if !utils.IsDirectory(c.opts.DestDir) {
		return fmt.Errorf("%w: %s", ErrDestinationMissing, c.opts.DestDir)
	}
	return nil
}

// Run copies every layer. A missing source or destination root aborts before
// any file is touched. Individual copy failures are logged and recorded in
// the report without stopping the run. Only cancellation stops a run early.
func (c *Copier) Run(ctx context.Context) (*Report, error) {
	log := c.logger()

	if err := c.CheckPreconditions(); err != nil {
		log.Error("copy aborted", "error", err)
		return nil, err
	}

	report := &Report{}
	for _, layer := range c.opts.Layers {
		report.Expected += layer.Count

		lr, err := c.copyLayer(ctx, log, layer)
		report.Layers = append(report.Layers, *lr)
		report.Found += lr.Found
		report.Copied += lr.Copied
		report.Failed += len(lr.Failures)
		if err != nil {
			return report, err
		}
		c.reporter.LayerDone(*lr)
	}

	log.Info("copy complete",
		"subject", c.opts.Subject,
		"expected", report.Expected,
		"found", report.Found,
		"copied", report.Copied,
		"failed", report.Failed,
		"dry_run", c.opts.DryRun)
	return report, nil
}

func (c *Copier) copyLayer(ctx context.Context, log *slog.Logger, layer config.Layer) (*LayerReport, error) {
	c.reporter.LayerStarted(layer)

	found := FindSources(c.opts.SourceDir, layer)
	c.reporter.LayerFound(layer, len(found))
	log.Debug("layer probed", "source", layer.SourceIndex, "layer", layer.Name, "expected", layer.Count, "found", len(found))

	placements := Plan(found, c.opts.DestDir, c.opts.Subject, layer, c.opts.IndexMode)
	lr := &LayerReport{Layer: layer, Found: len(found), Placements: placements}

	if c.opts.DryRun {
		return lr, nil
	}

	bar := c.newBar(layer, len(placements))
	defer func() {
		if bar != nil {
			_ = bar.Finish()
		}
	}()

	for _, p := range placements {
		if err := ctx.Err(); err != nil {
			return lr, err
		}

		if err := copyPlacement(p); err != nil {
			log.Error("copy failed", "source", filepath.Base(p.Source.Path), "dest", p.Dest, "error", err)
			lr.Failures = append(lr.Failures, Failure{Placement: p, Err: err})
			c.reporter.FileFailed(p, err)
		} else {
			lr.Copied++
			c.reporter.FileCopied(p)
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return lr, nil
}

func (c *Copier) newBar(layer config.Layer, total int) *progressbar.ProgressBar {
	if c.opts.Progress == nil || total == 0 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(c.opts.Progress),
		progressbar.OptionSetDescription(fmt.Sprintf("%s %s", c.opts.Subject, layer.Name)),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionClearOnFinish(),
	)
}

// copyPlacement creates the image set on demand and copies the file into it
func copyPlacement(p Placement) error {
	if err := os.MkdirAll(p.ImageSet, 0755); err != nil {
		return fmt.Errorf("failed to create image set: %w", err)
	}
	return utils.CopyFile(p.Source.Path, p.Dest)
}
