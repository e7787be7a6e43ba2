package copier

import (
	"path/filepath"

	"github.com/sleuth-io/fmcat/internal/catalog"
	"github.com/sleuth-io/fmcat/internal/config"
	"github.com/sleuth-io/fmcat/internal/utils"
)

// Source is an exported feature map found on disk
type Source struct {
	Index int // 1-based feature-map number from the file name
	Path  string
}

// Placement maps one source file onto its catalog image set
type Placement struct {
	Source   Source
	DestIdx  int
	ImageSet string
	Dest     string
}

// FindSources probes sourceDir for the layer's numbered files 1..Count and
// returns those that exist, in ascending order. Missing files are skipped.
func FindSources(sourceDir string, layer config.Layer) []Source {
	var found []Source
	for i := 1; i <= layer.Count; i++ {
		path := filepath.Join(sourceDir, catalog.SourceFileName(layer.SourceIndex, i))
		if utils.FileExists(path) {
			found = append(found, Source{Index: i, Path: path})
		}
	}
	return found
}

// Plan assigns each found source a destination under destDir (the subject folder).
// In compact mode the destination index is the rank within found; in preserve
// mode it is the original index minus one.
func Plan(found []Source, destDir, subject string, layer config.Layer, mode config.IndexMode) []Placement {
	placements := make([]Placement, 0, len(found))
	for rank, src := range found {
		idx := rank
		if mode == config.IndexModePreserve {
			idx = src.Index - 1
		}
		placements = append(placements, Placement{
			Source:   src,
			DestIdx:  idx,
			ImageSet: catalog.ImageSetDir(destDir, subject, layer.Name, idx),
			Dest:     catalog.ImagePath(destDir, subject, layer.Name, idx),
		})
	}
	return placements
}
