package collection

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"

	"github.com/jmgilman/go/collection/errors"
	"github.com/jmgilman/go/collection/fs/billy"
	"github.com/jmgilman/go/collection/fs/core"
)

// closedName is the name reported by a closed collection.
const closedName = "-"

// DirectoryCollection is a Collection whose entries are the files and
// directories found under a root directory.
//
// Nothing is read from the filesystem until the first query. The zero value
// is an invalid, empty collection.
type DirectoryCollection struct {
	mu sync.Mutex

	fsys      core.ReadFS
	root      string
	name      string
	recursive bool
	exclude   []string
	logger    *slog.Logger

	valid   bool
	loaded  bool
	entries []*Entry // entries[0] is the root once loaded
}

// NewDirectory creates a collection rooted at root. It never fails: when
// root is not an existing directory the collection is created invalid and
// every query reports ErrInvalidState.
func NewDirectory(root string, opts ...Option) *DirectoryCollection {
	o := &options{recursive: true}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = discardLogger()
	}
	if o.fsys == nil {
		o.fsys = billy.NewLocal()
		if root != "" {
			if abs, err := filepath.Abs(root); err == nil {
				root = abs
			}
		}
	}

	d := &DirectoryCollection{
		fsys:      o.fsys,
		root:      root,
		name:      root,
		recursive: o.recursive,
		exclude:   slices.Clone(o.exclude),
		logger:    o.logger,
	}

	if root != "" {
		isDir, err := core.IsDir(o.fsys, root)
		if err != nil {
			o.logger.Debug("failed to stat collection root", "root", root, "error", err)
		}
		d.valid = err == nil && isDir
	}
	if !d.valid {
		o.logger.Debug("collection root is not a directory", "root", root)
	}
	return d
}

// Name returns the root path, or "-" once the collection is closed.
func (d *DirectoryCollection) Name() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.name
}

// IsValid reports whether queries can be answered.
func (d *DirectoryCollection) IsValid() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.valid
}

// Recursive reports whether subdirectories are scanned.
func (d *DirectoryCollection) Recursive() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.recursive
}

// Loaded reports whether the scan has already run.
func (d *DirectoryCollection) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loaded
}

// Load scans the tree if it has not been scanned yet. It is called by every
// query; calling it directly moves the cost of the scan to a known point,
// for example before sharing the collection.
func (d *DirectoryCollection) Load() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ensureLoaded("load")
}

// Entries returns a copy of the cached entries, root first.
func (d *DirectoryCollection) Entries() ([]*Entry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.ensureLoaded("list entries"); err != nil {
		return nil, err
	}
	return slices.Clone(d.entries), nil
}

// GetEntry returns the first entry whose name matches under mode.
func (d *DirectoryCollection) GetEntry(name string, mode MatchPath) (*Entry, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.ensureLoaded("get entry"); err != nil {
		return nil, false, err
	}
	e := findEntry(d.entries, name, mode)
	return e, e != nil, nil
}

// Size returns the number of entries, the root included.
func (d *DirectoryCollection) Size() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.ensureLoaded("size"); err != nil {
		return 0, err
	}
	return len(d.entries), nil
}

// Open opens the named file for binary reading at offset zero. It reports
// opened == false without an error when nothing matches or the match is a
// directory, including a symbolic link that currently resolves to one.
func (d *DirectoryCollection) Open(name string, mode MatchPath) (fs.File, bool, error) {
	e, found, err := d.GetEntry(name, mode)
	if err != nil || !found || e.IsDir() {
		return nil, false, err
	}

	info, err := e.fsys.Stat(e.path)
	if err != nil {
		return nil, false, errors.WrapWithContext(err, classify(err), "failed to stat entry",
			map[string]interface{}{"entry": e.name})
	}
	if info.IsDir() {
		return nil, false, nil
	}

	f, err := e.fsys.Open(e.path)
	if err != nil {
		return nil, false, errors.WrapWithContext(err, classify(err), "failed to open entry",
			map[string]interface{}{"entry": e.name})
	}
	return f, true, nil
}

// Close invalidates the collection and drops its cache. It always returns
// nil. A closed collection cannot be reopened.
func (d *DirectoryCollection) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.valid = false
	d.loaded = false
	d.entries = nil
	d.root = ""
	d.name = closedName
	return nil
}

// Clone returns a copy that shares no mutable state with d. If d is already
// loaded the copy is too and will not rescan.
func (d *DirectoryCollection) Clone() Collection {
	d.mu.Lock()
	defer d.mu.Unlock()

	return &DirectoryCollection{
		fsys:      d.fsys,
		root:      d.root,
		name:      d.name,
		recursive: d.recursive,
		exclude:   slices.Clone(d.exclude),
		logger:    d.logger,
		valid:     d.valid,
		loaded:    d.loaded,
		entries:   slices.Clone(d.entries),
	}
}

// ensureLoaded must be called with d.mu held.
func (d *DirectoryCollection) ensureLoaded(op string) error {
	if !d.valid {
		return invalidState(op, d.name)
	}
	if d.loaded {
		return nil
	}

	log := d.log().With("root", d.root, "recursive", d.recursive)
	log.Debug("scanning collection")

	entries, err := d.scan()
	if err != nil {
		log.Error("scan failed, invalidating collection", "error", err)
		d.valid = false
		d.entries = nil
		return err
	}

	d.entries = entries
	d.loaded = true
	log.Debug("collection loaded", "entries", len(entries))
	return nil
}

func (d *DirectoryCollection) log() *slog.Logger {
	if d.logger == nil {
		return discardLogger()
	}
	return d.logger
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

var (
	_ Collection = (*DirectoryCollection)(nil)
	_ Loader     = (*DirectoryCollection)(nil)
)
