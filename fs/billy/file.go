package billy

import (
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/collection/fs/core"
)

// File wraps billy.File to implement core.File.
// It keeps the name it was opened with because billy.File.Name() differs
// between backends, and a reference to the filesystem to serve Stat.
type File struct {
	file billy.File
	fs   billy.Basic
	name string
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// ReadAt implements io.ReaderAt.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	return f.file.ReadAt(p, off)
}

// Write implements io.Writer.
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Close implements io.Closer.
func (f *File) Close() error {
	return f.file.Close()
}

// Stat implements fs.File.Stat by asking the filesystem, since billy.File
// has no Stat of its own.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.name)
}

// Name returns the name provided to Open or Create.
func (f *File) Name() string {
	return f.name
}

var (
	_ core.File   = (*File)(nil)
	_ io.Seeker   = (*File)(nil)
	_ io.ReaderAt = (*File)(nil)
)
