// Package scaffold builds the empty asset-catalog tree that copied feature
// maps are later placed into: one folder per subject and layer, and one
// image set per expected feature map, each with its Contents.json.
package scaffold

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sleuth-io/fmcat/internal/catalog"
	"github.com/sleuth-io/fmcat/internal/config"
	"github.com/sleuth-io/fmcat/internal/logger"
)

// Reporter receives progress while the tree is built
type Reporter interface {
	SubjectCreated(subject string)
	LayerCreated(subject, layer string)
	ImageSetsCreated(subject, layer string, count int)
}

type nopReporter struct{}

func (nopReporter) SubjectCreated(string)                {}
func (nopReporter) LayerCreated(string, string)          {}
func (nopReporter) ImageSetsCreated(string, string, int) {}

// Options configures a scaffold run
type Options struct {
	CatalogDir string // network folder subjects are created in
	Subjects   []string
	Layers     []config.Layer

	// NetworkFolder also writes a folder descriptor into CatalogDir itself
	NetworkFolder bool
}

// Summary counts what a run created or refreshed
type Summary struct {
	Subjects  int
	Layers    int
	ImageSets int
}

// Scaffolder creates directories and descriptors, never image data
type Scaffolder struct {
	opts     Options
	reporter Reporter
	log      *slog.Logger
}

// New creates a scaffolder. A nil reporter discards progress.
func New(opts Options, reporter Reporter) *Scaffolder {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Scaffolder{
		opts:     opts,
		reporter: reporter,
	}
}

// WithLogger replaces the scaffolder's logger
func (s *Scaffolder) WithLogger(log *slog.Logger) *Scaffolder {
	s.log = log
	return s
}

func (s *Scaffolder) logger() *slog.Logger {
	if s.log == nil {
		return logger.Get()
	}
	return s.log
}

// Run builds the tree. Existing directories are reused and descriptors are
// rewritten with identical content, so running twice is harmless. Any
// filesystem error other than an existing directory stops the run.
func (s *Scaffolder) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{}
	log := s.logger()

	if s.opts.NetworkFolder {
		if err := ensureFolder(s.opts.CatalogDir); err != nil {
			return summary, err
		}
	}

	for _, subject := range s.opts.Subjects {
		subjectDir := filepath.Join(s.opts.CatalogDir, subject)
		if err := ensureFolder(subjectDir); err != nil {
			return summary, err
		}
		summary.Subjects++
		log.Debug("subject folder ready", "path", subjectDir)
		s.reporter.SubjectCreated(subject)

		for _, layer := range s.opts.Layers {
			if err := ctx.Err(); err != nil {
				return summary, err
			}

			layerDir := catalog.LayerDir(subjectDir, layer.Name)
			if err := ensureFolder(layerDir); err != nil {
				return summary, err
			}
			summary.Layers++
			s.reporter.LayerCreated(subject, layer.Name)

			for i := 0; i < layer.Count; i++ {
				dir := catalog.ImageSetDir(subjectDir, subject, layer.Name, i)
				if err := os.MkdirAll(dir, 0755); err != nil {
					return summary, fmt.Errorf("failed to create image set %s: %w", dir, err)
				}
				contents := catalog.ImageSetContents(catalog.ImageFileName(subject, layer.Name, i))
				if err := catalog.WriteContents(dir, contents); err != nil {
					return summary, err
				}
				summary.ImageSets++
			}

			log.Debug("layer scaffolded", "subject", subject, "layer", layer.Name, "imagesets", layer.Count)
			s.reporter.ImageSetsCreated(subject, layer.Name, layer.Count)
		}
	}

	log.Info("scaffold complete", "subjects", summary.Subjects, "layers", summary.Layers, "imagesets", summary.ImageSets)
	return summary, nil
}

// ensureFolder creates dir if needed and writes its folder descriptor
func ensureFolder(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create folder %s: %w", dir, err)
	}
	return catalog.WriteContents(dir, catalog.FolderContents())
}
