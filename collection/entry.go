package collection

import (
	"io/fs"
	"strings"

	"github.com/jmgilman/go/collection/dostime"
	"github.com/jmgilman/go/collection/errors"
	"github.com/jmgilman/go/collection/fs/core"
)

// Entry describes one node discovered in a collection. It records the
// node's identity and kind at scan time and never changes afterwards.
type Entry struct {
	name  string
	path  string
	isDir bool
	fsys  core.ReadFS
}

func newEntry(fsys core.ReadFS, name, path string, isDir bool) *Entry {
	return &Entry{name: name, path: path, isDir: isDir, fsys: fsys}
}

// Name returns the path relative to the collection root, using "/" as the
// separator. The root entry's name is empty.
func (e *Entry) Name() string {
	return e.name
}

// FileName returns the final component of Name.
func (e *Entry) FileName() string {
	return baseName(e.name)
}

// Path returns the filesystem path used to reopen the entry.
func (e *Entry) Path() string {
	return e.path
}

// IsDir reports whether the entry was a directory when it was scanned.
// Symbolic links are never directories here, even when they point at one.
func (e *Entry) IsDir() bool {
	return e.isDir
}

// Info stats the entry now, without following a final symbolic link.
// Unlike the other accessors the result reflects the current filesystem.
func (e *Entry) Info() (fs.FileInfo, error) {
	info, err := e.fsys.Lstat(e.path)
	if err != nil {
		return nil, errors.WrapWithContext(err, classify(err), "failed to stat entry",
			map[string]interface{}{"entry": e.name})
	}
	return info, nil
}

// DOSTime returns the entry's current modification time in MS-DOS format,
// read in the local time zone. Times outside the DOS range yield 0.
func (e *Entry) DOSTime() (dostime.Time, error) {
	info, err := e.Info()
	if err != nil {
		return 0, err
	}
	return dostime.FromTime(info.ModTime().Local()), nil
}

// String returns the entry name, with a trailing "/" for directories.
func (e *Entry) String() string {
	if e.isDir && e.name != "" {
		return e.name + "/"
	}
	return e.name
}

// baseName returns the text after the last "/". Unlike path.Base it maps
// the empty name to itself.
func baseName(name string) string {
	return name[strings.LastIndex(name, "/")+1:]
}
