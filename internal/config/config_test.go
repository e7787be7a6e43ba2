package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}

	if got, want := cfg.TotalExpected(), 1664; got != want {
		t.Errorf("TotalExpected() = %d, want %d", got, want)
	}

	wantOrder := []string{"conv1", "maxp1", "conv2", "maxp2", "conv3", "conv4", "conv5", "maxp3"}
	for i, layer := range cfg.Layers {
		if layer.Name != wantOrder[i] {
			t.Errorf("Layers[%d].Name = %s, want %s", i, layer.Name, wantOrder[i])
		}
	}

	// Mutating a default must not leak into the next one
	cfg.Layers[0].Count = 1
	cfg.Subjects[0] = "cat"
	fresh := Default()
	if fresh.Layers[0].Count != 64 || fresh.Subjects[0] != "ship" {
		t.Error("Default() shares state between calls")
	}
}

func TestSourceDirFor(t *testing.T) {
	cfg := Default()
	if got, want := cfg.SourceDirFor("ship"), "feature_maps_alexnet/+ship"; got != want {
		t.Errorf("SourceDirFor() = %s, want %s", got, want)
	}

	cfg.SourceDir = "/exports/all"
	if got := cfg.SourceDirFor("dog"); got != "/exports/all" {
		t.Errorf("SourceDirFor() without token = %s, want /exports/all", got)
	}
}

func TestSubjectDir(t *testing.T) {
	cfg := Default()
	if got, want := cfg.SubjectDir("ship"), filepath.Join("Assets.xcassets", "Alexnet", "ship"); got != want {
		t.Errorf("SubjectDir() = %s, want %s", got, want)
	}
}

func TestFindLayer(t *testing.T) {
	cfg := Default()

	layer, ok := cfg.FindLayer("conv3")
	if !ok {
		t.Fatal("FindLayer(conv3) not found")
	}
	if layer.SourceIndex != 6 || layer.Count != 384 {
		t.Errorf("FindLayer(conv3) = %+v, want source 6 count 384", layer)
	}

	if _, ok := cfg.FindLayer("fc6"); ok {
		t.Error("FindLayer(fc6) should not be found")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "missing version",
			mutate:  func(c *Config) { c.Version = "" },
			wantErr: "version is required",
		},
		{
			name:    "bad version",
			mutate:  func(c *Config) { c.Version = "one" },
			wantErr: "invalid semantic version",
		},
		{
			name:    "unsupported version",
			mutate:  func(c *Config) { c.Version = "2.0.0" },
			wantErr: "unsupported config version",
		},
		{
			name:    "no subjects",
			mutate:  func(c *Config) { c.Subjects = nil },
			wantErr: "at least one subject",
		},
		{
			name:    "subject with separator",
			mutate:  func(c *Config) { c.Subjects = []string{"ship/../cat"} },
			wantErr: "single path segment",
		},
		{
			name:    "no layers",
			mutate:  func(c *Config) { c.Layers = nil },
			wantErr: "at least one layer",
		},
		{
			name: "duplicate layer name",
			mutate: func(c *Config) {
				c.Layers = []Layer{{SourceIndex: 0, Name: "conv1", Count: 1}, {SourceIndex: 1, Name: "conv1", Count: 1}}
			},
			wantErr: "duplicate layer name",
		},
		{
			name: "duplicate source index",
			mutate: func(c *Config) {
				c.Layers = []Layer{{SourceIndex: 0, Name: "conv1", Count: 1}, {SourceIndex: 0, Name: "conv2", Count: 1}}
			},
			wantErr: "duplicate source index",
		},
		{
			name:    "negative source index",
			mutate:  func(c *Config) { c.Layers[0].SourceIndex = -1 },
			wantErr: "must not be negative",
		},
		{
			name:    "zero count",
			mutate:  func(c *Config) { c.Layers[0].Count = 0 },
			wantErr: "count must be positive",
		},
		{
			name:    "bad index mode",
			mutate:  func(c *Config) { c.IndexMode = "sparse" },
			wantErr: "invalid index mode",
		},
		{
			name:   "preserve mode",
			mutate: func(c *Config) { c.IndexMode = IndexModePreserve },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fmcat.toml")
	content := `version = "1.2.0"
catalog_dir = "/tmp/Assets.xcassets/Lenet"
subjects = ["cat", "dog"]
index_mode = "preserve"

[[layers]]
source = 0
name = "conv1"
count = 6

[[layers]]
source = 1
name = "maxp1"
count = 6
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CatalogDir != "/tmp/Assets.xcassets/Lenet" {
		t.Errorf("CatalogDir = %s", cfg.CatalogDir)
	}
	if cfg.SourceDir != DefaultSourceDir {
		t.Errorf("SourceDir = %s, want default %s", cfg.SourceDir, DefaultSourceDir)
	}
	if len(cfg.Subjects) != 2 || cfg.Subjects[1] != "dog" {
		t.Errorf("Subjects = %v", cfg.Subjects)
	}
	if len(cfg.Layers) != 2 || cfg.Layers[1] != (Layer{SourceIndex: 1, Name: "maxp1", Count: 6}) {
		t.Errorf("Layers = %+v", cfg.Layers)
	}
	if cfg.IndexMode != IndexModePreserve {
		t.Errorf("IndexMode = %s, want preserve", cfg.IndexMode)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fmcat.yaml")
	content := `version: "1.0.0"
source_dir: exports/{subject}
layers:
  - source: 4
    name: conv2
    count: 16
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.SourceDirFor("ship"); got != "exports/ship" {
		t.Errorf("SourceDirFor() = %s, want exports/ship", got)
	}
	if len(cfg.Layers) != 1 || cfg.Layers[0].SourceIndex != 4 {
		t.Errorf("Layers = %+v", cfg.Layers)
	}
	if cfg.CatalogDir != DefaultCatalogDir {
		t.Errorf("CatalogDir = %s, want default", cfg.CatalogDir)
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	badSyntax := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(badSyntax, []byte("layers = [[["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(badSyntax); err == nil {
		t.Error("Load() with bad syntax should fail")
	}

	badVersion := filepath.Join(dir, "v2.toml")
	if err := os.WriteFile(badVersion, []byte(`version = "2.0.0"`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(badVersion); err == nil || !strings.Contains(err.Error(), "unsupported config version") {
		t.Errorf("Load() with version 2 error = %v", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load() with missing file should fail")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fmcat.toml")

	if err := Write(Default(), path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Layers) != len(AlexNetLayers) {
		t.Errorf("len(Layers) = %d, want %d", len(cfg.Layers), len(AlexNetLayers))
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Subjects[0] != "ship" {
		t.Errorf("LoadOrDefault() without file subjects = %v", cfg.Subjects)
	}

	if err := os.WriteFile("fmcat.toml", []byte(`subjects = ["cat"]`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Subjects[0] != "cat" {
		t.Errorf("LoadOrDefault() with fmcat.toml subjects = %v, want [cat]", cfg.Subjects)
	}
}
