package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandTilde(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "tilde only",
			input: "~",
			want:  homeDir,
		},
		{
			name:  "tilde with path",
			input: "~/Assets.xcassets",
			want:  filepath.Join(homeDir, "Assets.xcassets"),
		},
		{
			name:  "absolute path",
			input: "/absolute/path",
			want:  "/absolute/path",
		},
		{
			name:  "relative path",
			input: "relative/path",
			want:  "relative/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandTilde(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ExpandTilde() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ExpandTilde() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	got, err := NormalizePath("feature_maps/./ship/../ship/")
	if err != nil {
		t.Fatalf("NormalizePath() error = %v", err)
	}
	if want := filepath.Join("feature_maps", "ship"); got != want {
		t.Errorf("NormalizePath() = %v, want %v", got, want)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "0_feature_map_1.png")
	if err := os.WriteFile(existing, []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{
			name: "existing file",
			path: existing,
			want: true,
		},
		{
			name: "non-existing file",
			path: filepath.Join(tmpDir, "0_feature_map_2.png"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.png")
	if err := os.WriteFile(file, []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}

	if !IsDirectory(tmpDir) {
		t.Errorf("IsDirectory(%s) = false, want true", tmpDir)
	}
	if IsDirectory(file) {
		t.Errorf("IsDirectory(%s) = true, want false", file)
	}
	if IsDirectory(filepath.Join(tmpDir, "missing")) {
		t.Error("IsDirectory() on missing path = true, want false")
	}
}

func TestEnsureDir(t *testing.T) {
	testDir := filepath.Join(t.TempDir(), "ship", "conv1", "ship_conv1_0.imageset")

	if err := EnsureDir(testDir); err != nil {
		t.Errorf("EnsureDir() error = %v", err)
	}

	if !IsDirectory(testDir) {
		t.Errorf("EnsureDir() did not create directory")
	}

	// Calling again should not error
	if err := EnsureDir(testDir); err != nil {
		t.Errorf("EnsureDir() on existing dir error = %v", err)
	}
}
