package utils

import (
	"fmt"
	"io"
	"os"
	"time"
)

// CopyFile copies src to dst, then carries over the permission bits and
// modification time of src. The destination is truncated in place, so an
// interrupted copy leaves a partial file behind.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}

	// Zero atime leaves the access time alone
	return os.Chtimes(dst, time.Time{}, info.ModTime())
}
