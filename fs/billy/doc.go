// Package billy provides go-billy-backed implementations of core.FS.
//
// NewLocal wraps billy's osfs rooted at "/", so names are absolute host
// paths. NewMemory wraps memfs and is mostly useful in tests, where a tree
// can be built without touching the disk.
//
// Usage:
//
//	fsys := billy.NewLocal()
//	entries, err := fsys.ReadDir("/srv/data")
//
//	mem := billy.NewMemory()
//	_ = mem.MkdirAll("root/sub", 0o755)
//	_ = mem.WriteFile("root/sub/a.txt", []byte("data"), 0o644)
//
// Unwrap exposes the underlying billy.Filesystem for operations outside the
// core contracts, such as creating symbolic links in a test fixture.
//
// # Thread Safety
//
// LocalFS and MemoryFS are safe for concurrent use by multiple goroutines.
// File handles are not.
package billy
