package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/sleuth-io/fmcat/internal/constants"
	"github.com/sleuth-io/fmcat/internal/utils"
)

// IndexMode controls how found source files are numbered in the catalog
type IndexMode string

const (
	// IndexModeCompact numbers files by their rank among files that exist,
	// so a missing source shifts every later image set down by one.
	IndexModeCompact IndexMode = "compact"

	// IndexModePreserve numbers files by their original 1-based index minus one,
	// leaving an empty image set where a source file is missing.
	IndexModePreserve IndexMode = "preserve"
)

// IsValid reports whether the mode is known
func (m IndexMode) IsValid() bool {
	return m == IndexModeCompact || m == IndexModePreserve
}

// Layer describes one stage of the network and where its feature maps go
type Layer struct {
	// SourceIndex is the numeric layer prefix of the exported files
	SourceIndex int `toml:"source" yaml:"source"`

	// Name is the catalog folder for the layer, e.g. conv1
	Name string `toml:"name" yaml:"name"`

	// Count is the number of feature maps the layer is expected to have
	Count int `toml:"count" yaml:"count"`
}

// Config represents the configuration for fmcat
type Config struct {
	// Version of the config format
	Version string `toml:"version" yaml:"version"`

	// SourceDir is the flat directory of exported feature maps.
	// The token {subject} is replaced with the subject being processed.
	SourceDir string `toml:"source_dir" yaml:"source_dir"`

	// CatalogDir is the network folder inside the asset catalog
	CatalogDir string `toml:"catalog_dir" yaml:"catalog_dir"`

	// Subjects are the input samples whose feature maps are organized
	Subjects []string `toml:"subjects" yaml:"subjects"`

	// Layers is the ordered layer table
	Layers []Layer `toml:"layers" yaml:"layers"`

	// IndexMode selects compact or preserve numbering for the copier
	IndexMode IndexMode `toml:"index_mode" yaml:"index_mode"`
}

// Load loads the configuration from a TOML or YAML file on top of the defaults.
// Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var file Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg := Default()
	cfg.merge(&file)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// merge overwrites c with every field set in other
func (c *Config) merge(other *Config) {
	if other.Version != "" {
		c.Version = other.Version
	}
	if other.SourceDir != "" {
		c.SourceDir = other.SourceDir
	}
	if other.CatalogDir != "" {
		c.CatalogDir = other.CatalogDir
	}
	if len(other.Subjects) > 0 {
		c.Subjects = other.Subjects
	}
	if len(other.Layers) > 0 {
		c.Layers = other.Layers
	}
	if other.IndexMode != "" {
		c.IndexMode = other.IndexMode
	}
}

// LoadOrDefault loads path when given, otherwise fmcat.toml from the working
// directory if present, otherwise the built-in defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if utils.FileExists(constants.ConfigFile) {
		return Load(constants.ConfigFile)
	}
	return Default(), nil
}

// Marshal converts a configuration to TOML bytes
func Marshal(cfg *Config) ([]byte, error) {
	buf := new(bytes.Buffer)
	encoder := toml.NewEncoder(buf)

	if err := encoder.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return buf.Bytes(), nil
}

// Write writes a configuration to a TOML file
func Write(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Version == "" {
		return errors.New("version is required")
	}

	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("invalid semantic version %q: %w", c.Version, err)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", SupportedVersions, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("unsupported config version %s (supported: %s)", c.Version, SupportedVersions)
	}

	if c.SourceDir == "" {
		return errors.New("source_dir is required")
	}
	if c.CatalogDir == "" {
		return errors.New("catalog_dir is required")
	}

	if len(c.Subjects) == 0 {
		return errors.New("at least one subject is required")
	}
	for _, subject := range c.Subjects {
		if err := validateName("subject", subject); err != nil {
			return err
		}
	}

	if len(c.Layers) == 0 {
		return errors.New("at least one layer is required")
	}
	names := make(map[string]bool, len(c.Layers))
	sources := make(map[int]bool, len(c.Layers))
	for _, layer := range c.Layers {
		if err := validateName("layer name", layer.Name); err != nil {
			return err
		}
		if names[layer.Name] {
			return fmt.Errorf("duplicate layer name: %s", layer.Name)
		}
		names[layer.Name] = true

		if layer.SourceIndex < 0 {
			return fmt.Errorf("layer %s: source index must not be negative", layer.Name)
		}
		if sources[layer.SourceIndex] {
			return fmt.Errorf("duplicate source index: %d", layer.SourceIndex)
		}
		sources[layer.SourceIndex] = true

		if layer.Count <= 0 {
			return fmt.Errorf("layer %s: count must be positive", layer.Name)
		}
	}

	if !c.IndexMode.IsValid() {
		return fmt.Errorf("invalid index mode: %s (must be 'compact' or 'preserve')", c.IndexMode)
	}

	return nil
}

func validateName(kind, name string) error {
	if name == "" {
		return fmt.Errorf("%s must not be empty", kind)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid %s %q: must be a single path segment", kind, name)
	}
	return nil
}

// SourceDirFor returns the source directory for a subject
func (c *Config) SourceDirFor(subject string) string {
	return strings.ReplaceAll(c.SourceDir, "{subject}", subject)
}

// SubjectDir returns the catalog folder for a subject
func (c *Config) SubjectDir(subject string) string {
	return filepath.Join(c.CatalogDir, subject)
}

// TotalExpected returns the sum of expected counts across all layers
func (c *Config) TotalExpected() int {
	total := 0
	for _, layer := range c.Layers {
		total += layer.Count
	}
	return total
}

// FindLayer returns the layer with the given catalog name
func (c *Config) FindLayer(name string) (Layer, bool) {
	for _, layer := range c.Layers {
		if layer.Name == name {
			return layer, true
		}
	}
	return Layer{}, false
}
