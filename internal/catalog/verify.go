package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sleuth-io/fmcat/internal/config"
	"github.com/sleuth-io/fmcat/internal/constants"
)

// IssueKind classifies a problem found while verifying a catalog
type IssueKind string

const (
	IssueMissingDir         IssueKind = "missing-dir"
	IssueMissingDescriptor  IssueKind = "missing-descriptor"
	IssueInvalidDescriptor  IssueKind = "invalid-descriptor"
	IssueFilenameMismatch   IssueKind = "filename-mismatch"
	IssueMissingImage       IssueKind = "missing-image"
	IssueUnexpectedImageSet IssueKind = "unexpected-imageset"
)

// Issue is a single verification finding
type Issue struct {
	Kind   IssueKind
	Path   string
	Detail string
}

func (i Issue) String() string {
	if i.Detail == "" {
		return fmt.Sprintf("%s: %s", i.Kind, i.Path)
	}
	return fmt.Sprintf("%s: %s (%s)", i.Kind, i.Path, i.Detail)
}

// VerifyReport summarizes a verification pass
type VerifyReport struct {
	ImageSets int // image sets the layer table expects
	Complete  int // image sets with a valid descriptor and their image
	Issues    []Issue
}

// OK reports whether no issues were found
func (r *VerifyReport) OK() bool {
	return len(r.Issues) == 0
}

// CountByKind returns how many issues of kind were found
func (r *VerifyReport) CountByKind(kind IssueKind) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Kind == kind {
			n++
		}
	}
	return n
}

func (r *VerifyReport) add(kind IssueKind, path, detail string) {
	r.Issues = append(r.Issues, Issue{Kind: kind, Path: path, Detail: detail})
}

// Verify checks the catalog tree under catalogDir against the layer table
// for every subject. It never writes. Only unexpected filesystem failures
// are returned as errors; everything else becomes an issue in the report.
func Verify(catalogDir string, subjects []string, layers []config.Layer) (*VerifyReport, error) {
	report := &VerifyReport{}

	for _, subject := range subjects {
		subjectDir := filepath.Join(catalogDir, subject)
		if err := checkFolder(report, subjectDir); err != nil {
			return nil, err
		}

		for _, layer := range layers {
			report.ImageSets += layer.Count

			layerDir := LayerDir(subjectDir, layer.Name)
			if err := checkFolder(report, layerDir); err != nil {
				return nil, err
			}

			for i := 0; i < layer.Count; i++ {
				complete, err := checkImageSet(report, subjectDir, subject, layer.Name, i)
				if err != nil {
					return nil, err
				}
				if complete {
					report.Complete++
				}
			}

			if err := checkUnexpected(report, layerDir, subject, layer); err != nil {
				return nil, err
			}
		}
	}

	return report, nil
}

func checkFolder(report *VerifyReport, dir string) error {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		report.add(IssueMissingDir, dir, "")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		report.add(IssueMissingDir, dir, "not a directory")
		return nil
	}

	if _, err := ReadContents(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			report.add(IssueMissingDescriptor, filepath.Join(dir, constants.ContentsFile), "")
			return nil
		}
		report.add(IssueInvalidDescriptor, filepath.Join(dir, constants.ContentsFile), err.Error())
	}
	return nil
}

func checkImageSet(report *VerifyReport, subjectDir, subject, layer string, index int) (bool, error) {
	dir := ImageSetDir(subjectDir, subject, layer, index)
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			report.add(IssueMissingDir, dir, "")
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", dir, err)
	}

	descriptor := filepath.Join(dir, constants.ContentsFile)
	contents, err := ReadContents(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			report.add(IssueMissingDescriptor, descriptor, "")
		} else {
			report.add(IssueInvalidDescriptor, descriptor, err.Error())
		}
		return false, nil
	}

	want := ImageFileName(subject, layer, index)
	if got := contents.Filename(); got != want {
		report.add(IssueFilenameMismatch, descriptor, fmt.Sprintf("declares %q, want %q", got, want))
		return false, nil
	}

	if _, err := os.Stat(filepath.Join(dir, want)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			report.add(IssueMissingImage, filepath.Join(dir, want), "")
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", want, err)
	}

	return true, nil
}

// checkUnexpected flags image sets numbered past the layer's count
func checkUnexpected(report *VerifyReport, layerDir, subject string, layer config.Layer) error {
	entries, err := os.ReadDir(layerDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", layerDir, err)
	}

	expected := make(map[string]bool, layer.Count)
	for i := 0; i < layer.Count; i++ {
		expected[ImageSetDirName(subject, layer.Name, i)] = true
	}

	var unexpected []string
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasSuffix(entry.Name(), constants.ImageSetExt) {
			continue
		}
		if !expected[entry.Name()] {
			unexpected = append(unexpected, entry.Name())
		}
	}

	sort.Strings(unexpected)
	for _, name := range unexpected {
		report.add(IssueUnexpectedImageSet, filepath.Join(layerDir, name), "")
	}
	return nil
}
