package billy

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/go/collection/fs/core"
)

// LocalFS wraps billy's osfs for local filesystem access.
type LocalFS struct {
	provider
}

// MemoryFS wraps billy's memfs for in-memory filesystem access.
type MemoryFS struct {
	provider
}

// NewLocal creates a go-billy-backed local filesystem rooted at "/".
func NewLocal() *LocalFS {
	return &LocalFS{provider{bfs: osfs.New("/")}}
}

// NewMemory creates an empty go-billy-backed in-memory filesystem.
func NewMemory() *MemoryFS {
	return &MemoryFS{provider{bfs: memfs.New()}}
}

// Chroot returns a filesystem scoped to the given directory.
func (lfs *LocalFS) Chroot(dir string) (core.FS, error) {
	bfs, err := lfs.bfs.Chroot(normalize(dir))
	if err != nil {
		return nil, err
	}
	return &LocalFS{provider{bfs: bfs}}, nil
}

// Type returns FSTypeLocal.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// Chroot returns a filesystem scoped to the given directory.
func (mfs *MemoryFS) Chroot(dir string) (core.FS, error) {
	bfs, err := mfs.bfs.Chroot(normalize(dir))
	if err != nil {
		return nil, err
	}
	return &MemoryFS{provider{bfs: bfs}}, nil
}

// Type returns FSTypeMemory.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// provider holds the operations shared by every billy backend.
type provider struct {
	bfs billy.Filesystem
}

// Unwrap returns the underlying billy.Filesystem.
func (p provider) Unwrap() billy.Filesystem {
	return p.bfs
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// dirEntry adapts the fs.FileInfo values billy lists to fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Open opens the named file for reading.
func (p provider) Open(name string) (fs.File, error) {
	name = normalize(name)
	f, err := p.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: p.bfs, name: name}, nil
}

// Stat returns file metadata for the named file.
func (p provider) Stat(name string) (fs.FileInfo, error) {
	return p.bfs.Stat(normalize(name))
}

// Lstat returns file metadata without following a final symbolic link.
func (p provider) Lstat(name string) (fs.FileInfo, error) {
	return p.bfs.Lstat(normalize(name))
}

// ReadDir lists the directory's children sorted by filename.
func (p provider) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := p.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, 0, len(infos))
	for _, info := range infos {
		if n := info.Name(); n == "." || n == ".." {
			continue
		}
		entries = append(entries, &dirEntry{info: info})
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (p provider) ReadFile(name string) ([]byte, error) {
	f, err := p.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file or directory exists.
func (p provider) Exists(name string) (bool, error) {
	_, err := p.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Create creates or truncates the named file for writing.
func (p provider) Create(name string) (core.File, error) {
	name = normalize(name)
	f, err := p.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: p.bfs, name: name}, nil
}

// OpenFile opens a file with the specified flags and permissions.
func (p provider) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	f, err := p.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: p.bfs, name: name}, nil
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (p provider) MkdirAll(path string, perm fs.FileMode) error {
	return p.bfs.MkdirAll(normalize(path), perm)
}

// WriteFile writes data to the named file, creating it if necessary.
func (p provider) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f, err := p.bfs.OpenFile(normalize(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Compile-time interface checks.
var (
	_ core.FS = (*LocalFS)(nil)
	_ core.FS = (*MemoryFS)(nil)
)
