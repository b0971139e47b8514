package core

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CopyTo writes the contents of src to name inside dst, creating parent
// directories as needed. Directory creation uses mode 0755.
//
// Example:
//
//	f, _ := fsys.Open("/srv/data/a.txt")
//	defer f.Close()
//	err := core.CopyTo(out, "/tmp/extract/a.txt", f, 0644)
func CopyTo(dst WriteFS, name string, src io.Reader, perm fs.FileMode) error {
	if dir := filepath.Dir(name); dir != "." && dir != "" {
		if err := dst.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := dst.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, src); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
