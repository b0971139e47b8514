package collection

import (
	"io/fs"
	"path/filepath"

	"github.com/jmgilman/go/collection/errors"
	"github.com/jmgilman/go/collection/fs/core"
)

// listing is a directory whose children are being visited.
type listing struct {
	dir      string // name relative to the root, "" for the root
	children []fs.DirEntry
	next     int
}

// scan walks the tree depth-first in pre-order. Children are visited in the
// order ReadDir returns them and a subdirectory is fully visited before its
// next sibling. Pending listings are kept on an explicit stack.
func (d *DirectoryCollection) scan() ([]*Entry, error) {
	excluded, err := compilePatterns(d.exclude)
	if err != nil {
		return nil, err
	}

	root, err := d.list("")
	if err != nil {
		return nil, err
	}

	entries := []*Entry{newEntry(d.fsys, "", d.root, true)}
	stack := []*listing{root}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.children) {
			stack = stack[:len(stack)-1]
			continue
		}
		child := top.children[top.next]
		top.next++

		base := child.Name()
		if base == "." || base == ".." {
			continue
		}
		name := joinName(top.dir, base)
		if excluded.match(name) {
			continue
		}

		e := newEntry(d.fsys, name, d.fsPath(name), child.IsDir())
		entries = append(entries, e)

		if d.recursive && e.isDir {
			sub, err := d.list(name)
			if err != nil {
				return nil, err
			}
			stack = append(stack, sub)
		}
	}

	return entries, nil
}

func (d *DirectoryCollection) list(dir string) (*listing, error) {
	children, err := d.fsys.ReadDir(d.fsPath(dir))
	if err != nil {
		return nil, errors.WrapWithContext(err, classify(err), "failed to list directory",
			map[string]interface{}{"root": d.root, "dir": dir})
	}
	return &listing{dir: dir, children: children}, nil
}

// fsPath maps a name relative to the root to a filesystem path.
func (d *DirectoryCollection) fsPath(name string) string {
	if name == "" {
		return d.root
	}
	return filepath.Join(d.root, filepath.FromSlash(name))
}

func joinName(dir, base string) string {
	if dir == "" {
		return base
	}
	return dir + "/" + base
}

// classify maps filesystem errors to error codes.
func classify(err error) errors.ErrorCode {
	switch {
	case errors.Is(err, core.ErrNotExist):
		return errors.CodeNotFound
	case errors.Is(err, core.ErrPermission):
		return errors.CodeForbidden
	default:
		return errors.CodeIO
	}
}
