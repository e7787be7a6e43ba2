package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/sleuth-io/fmcat/internal/constants"
)

// Info is the author/version block every descriptor carries
type Info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// Image is a single entry of an image set's images list
type Image struct {
	Filename string `json:"filename,omitempty"`
	Idiom    string `json:"idiom"`
}

// Contents is the Contents.json descriptor of a catalog folder or image set
type Contents struct {
	Images []Image `json:"images,omitempty"`
	Info   Info    `json:"info"`
}

func defaultInfo() Info {
	return Info{Author: constants.DescriptorAuthor, Version: constants.DescriptorVersion}
}

// FolderContents returns the descriptor for a plain catalog folder
func FolderContents() *Contents {
	return &Contents{Info: defaultInfo()}
}

// ImageSetContents returns the descriptor for an image set holding filename
func ImageSetContents(filename string) *Contents {
	return &Contents{
		Images: []Image{{Filename: filename, Idiom: constants.IdiomUniversal}},
		Info:   defaultInfo(),
	}
}

// Filename returns the single declared image file name, or "" when none is declared
func (c *Contents) Filename() string {
	if len(c.Images) == 0 {
		return ""
	}
	return c.Images[0].Filename
}

// Marshal renders a descriptor with two-space indentation and no trailing newline
func Marshal(c *Contents) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contents: %w", err)
	}
	return data, nil
}

// WriteContents writes Contents.json into dir, replacing any existing descriptor
func WriteContents(dir string, c *Contents) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, constants.ContentsFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// ParseContents parses a descriptor. Comments and trailing commas are accepted.
func ParseContents(data []byte) (*Contents, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse contents: %w", err)
	}

	var c Contents
	if err := json.Unmarshal(std, &c); err != nil {
		return nil, fmt.Errorf("failed to parse contents: %w", err)
	}

	return &c, nil
}

// ReadContents reads Contents.json from dir
func ReadContents(dir string) (*Contents, error) {
	data, err := os.ReadFile(filepath.Join(dir, constants.ContentsFile))
	if err != nil {
		return nil, err
	}
	return ParseContents(data)
}
