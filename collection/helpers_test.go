package collection

import (
	"io/fs"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jmgilman/go/collection/fs/billy"
	"github.com/jmgilman/go/collection/fs/core"
	"github.com/stretchr/testify/require"
)

// treeFiles is the fixture used by most tests, rooted at "data":
//
//	data/a.txt
//	data/b.txt        (empty)
//	data/other/file.txt
//	data/sub/file.txt
//	data/sub/deep/c.txt
var treeFiles = map[string]string{
	"data/a.txt":          "alpha",
	"data/b.txt":          "",
	"data/other/file.txt": "other",
	"data/sub/file.txt":   "sub",
	"data/sub/deep/c.txt": "deep",
}

// recursiveNames is the expected scan order of the fixture.
var recursiveNames = []string{
	"",
	"a.txt",
	"b.txt",
	"other",
	"other/file.txt",
	"sub",
	"sub/deep",
	"sub/deep/c.txt",
	"sub/file.txt",
}

func newTree(t *testing.T) *billy.MemoryFS {
	t.Helper()
	mem := billy.NewMemory()
	for name, content := range treeFiles {
		require.NoError(t, mem.WriteFile(name, []byte(content), 0o644))
	}
	return mem
}

func names(entries []*Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name()
	}
	return out
}

// countingFS counts directory listings.
type countingFS struct {
	core.ReadFS
	readDirs atomic.Int32
}

func (c *countingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	c.readDirs.Add(1)
	return c.ReadFS.ReadDir(name)
}

// failingFS fails ReadDir for one path.
type failingFS struct {
	core.ReadFS
	path string
	err  error

	mu    sync.Mutex
	calls []string
}

func (f *failingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
	if name == f.path {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: f.err}
	}
	return f.ReadFS.ReadDir(name)
}
