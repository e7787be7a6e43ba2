package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCopyFile(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "0_feature_map_1.png")
	dst := filepath.Join(tmpDir, "ship_conv1_0.png")

	content := []byte("\x89PNG fake image data")
	if err := os.WriteFile(src, content, 0640); err != nil {
		t.Fatal(err)
	}
	mtime := time.Date(2025, 9, 5, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(src, mtime, mtime); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Errorf("CopyFile() content = %q, want %q", got, content)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(mtime) {
		t.Errorf("CopyFile() mtime = %v, want %v", info.ModTime(), mtime)
	}
}

func TestCopyFileOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.png")
	dst := filepath.Join(tmpDir, "dst.png")

	if err := os.WriteFile(src, []byte("new"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("older and longer"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	got, _ := os.ReadFile(dst)
	if string(got) != "new" {
		t.Errorf("CopyFile() content = %q, want %q", got, "new")
	}
}

func TestCopyFileErrors(t *testing.T) {
	tmpDir := t.TempDir()

	if err := CopyFile(filepath.Join(tmpDir, "missing.png"), filepath.Join(tmpDir, "out.png")); err == nil {
		t.Error("CopyFile() with missing source should fail")
	}

	if err := CopyFile(tmpDir, filepath.Join(tmpDir, "out.png")); err == nil {
		t.Error("CopyFile() with directory source should fail")
	}

	src := filepath.Join(tmpDir, "src.png")
	if err := os.WriteFile(src, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := CopyFile(src, filepath.Join(tmpDir, "no", "such", "dir", "out.png")); err == nil {
		t.Error("CopyFile() into missing directory should fail")
	}
}
