// Package core defines the filesystem contracts consumed by collections.
//
// A collection needs very little from a filesystem: a way to test whether a
// path is a directory, to list a directory's immediate children, to stat a
// node without following links, and to open a file for reading. Those
// operations make up ReadFS. WriteFS exists only for tooling that copies
// entries out of a collection into another tree; collections never write.
//
// # Interface Hierarchy
//
//   - ReadFS: Open, Stat, Lstat, ReadDir, ReadFile, Exists
//   - WriteFS: Create, MkdirAll, WriteFile
//   - FS: ReadFS + WriteFS + Chroot + Type
//
// Concrete providers live in github.com/jmgilman/go/collection/fs/billy.
//
// # Usage Example
//
//	isDir, err := core.IsDir(fsys, "/srv/data")
//	if err != nil || !isDir {
//	    // not usable as a collection root
//	}
package core
