package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sleuth-io/fmcat/internal/config"
)

func TestLayersCommand(t *testing.T) {
	env := NewTestEnv(t)

	stdout, _, err := env.Run(NewLayersCommand())
	if err != nil {
		t.Fatalf("layers error = %v", err)
	}

	for _, want := range []string{
		"Index mode: compact",
		"conv1  <- layer 0",
		"maxp1  <- layer 2",
		"6 image sets per subject",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fmcat.toml")

	cmd := NewInitCommand()
	cmd.SetOut(&strings.Builder{})
	cmd.SetArgs([]string{"--output", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init error = %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Layers) != len(config.AlexNetLayers) {
		t.Errorf("written layers = %d, want %d", len(cfg.Layers), len(config.AlexNetLayers))
	}

	again := NewInitCommand()
	again.SetOut(&strings.Builder{})
	again.SetErr(&strings.Builder{})
	again.SetArgs([]string{"--output", path})
	if err := again.Execute(); err == nil {
		t.Error("init over existing file should fail without --force")
	}

	if err := os.WriteFile(path, []byte("junk"), 0644); err != nil {
		t.Fatal(err)
	}
	forced := NewInitCommand()
	forced.SetOut(&strings.Builder{})
	forced.SetArgs([]string{"--output", path, "--force"})
	if err := forced.Execute(); err != nil {
		t.Errorf("init --force error = %v", err)
	}
}
