package catalog

import (
	"fmt"
	"path/filepath"

	"github.com/sleuth-io/fmcat/internal/constants"
)

// ImageSetBase returns the shared stem of an image set and its image, e.g. ship_conv1_5
func ImageSetBase(subject, layer string, index int) string {
	return fmt.Sprintf("%s_%s_%d", subject, layer, index)
}

// ImageSetDirName returns the image-set directory name, e.g. ship_conv1_5.imageset
func ImageSetDirName(subject, layer string, index int) string {
	return ImageSetBase(subject, layer, index) + constants.ImageSetExt
}

// ImageFileName returns the image file name an image set declares, e.g. ship_conv1_5.png
func ImageFileName(subject, layer string, index int) string {
	return ImageSetBase(subject, layer, index) + constants.ImageExt
}

// SourceFileName returns the exported feature-map name for a 1-based index,
// e.g. 3_feature_map_2.png
func SourceFileName(sourceIndex, index int) string {
	return fmt.Sprintf("%d%s%d%s", sourceIndex, constants.SourceFeatureMapInfix, index, constants.ImageExt)
}

// LayerDir returns the layer folder inside a subject folder
func LayerDir(subjectDir, layer string) string {
	return filepath.Join(subjectDir, layer)
}

// ImageSetDir returns the image-set directory inside a subject folder
func ImageSetDir(subjectDir, subject, layer string, index int) string {
	return filepath.Join(subjectDir, layer, ImageSetDirName(subject, layer, index))
}

// ImagePath returns the image file path inside a subject folder
func ImagePath(subjectDir, subject, layer string, index int) string {
	return filepath.Join(ImageSetDir(subjectDir, subject, layer, index), ImageFileName(subject, layer, index))
}
