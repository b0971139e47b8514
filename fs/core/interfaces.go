package core

import (
	"io"
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the full provider contract.
type FS interface {
	ReadFS
	WriteFS

	// Chroot returns a filesystem scoped to dir. The directory must exist.
	Chroot(dir string) (FS, error)

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines the read-only operations a collection relies on.
type ReadFS interface {
	// Open opens the named file for reading. The returned file is
	// positioned at offset zero and must be closed by the caller.
	Open(name string) (fs.File, error)

	// Stat returns metadata for name, following symbolic links.
	Stat(name string) (fs.FileInfo, error)

	// Lstat returns metadata for name without following a final symbolic
	// link.
	Lstat(name string) (fs.FileInfo, error)

	// ReadDir lists the immediate children of the directory name, sorted
	// by filename. The "." and ".." pseudo-entries are never included.
	// Entries describe the children themselves, so a symbolic link to a
	// directory does not report IsDir.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether name exists. A false result with a non-nil
	// error means existence could not be determined.
	Exists(name string) (bool, error)
}

// WriteFS defines the write operations used when copying entries out.
type WriteFS interface {
	// Create creates or truncates the named file.
	Create(name string) (File, error)

	// OpenFile opens a file with the specified flags and permissions.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// MkdirAll creates a directory along with any necessary parents.
	MkdirAll(path string, perm fs.FileMode) error

	// WriteFile writes data to the named file, creating it if necessary.
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// File is an open file handle that can also be written.
type File interface {
	fs.File
	io.Writer

	// Name returns the name as provided to Open or Create.
	Name() string
}
