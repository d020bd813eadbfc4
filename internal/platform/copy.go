package platform

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrExists is returned by CopyFile when dst is already present.
var ErrExists = errors.New("destination already exists")

// CopyFile copies src to dst, preserving the permission bits and the
// modification time of src. It refuses to overwrite an existing dst.
//
// The copy is written to a temporary sibling and linked to dst only once it
// is complete, so a failed copy never leaves a partial dst behind.
func CopyFile(src, dst string) error {
	if Exists(dst) {
		return fmt.Errorf("%s: %w", dst, ErrExists)
	}

	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := Chmod(tmp.Name(), info.Mode().Perm()); err != nil {
		return err
	}
	if err := os.Chtimes(tmp.Name(), info.ModTime(), info.ModTime()); err != nil {
		return err
	}

	if err := os.Link(tmp.Name(), dst); err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%s: %w", dst, ErrExists)
		}
		return err
	}
	return nil
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteFile replaces the content of an existing file while keeping its
// permission bits. If the file does not exist it is created with 0644.
func WriteFile(path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return err
	}
	return Chmod(path, mode)
}
