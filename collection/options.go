package collection

import (
	"log/slog"

	"github.com/jmgilman/go/collection/fs/core"
)

// Option configures a DirectoryCollection.
type Option func(*options)

type options struct {
	recursive bool
	fsys      core.ReadFS
	logger    *slog.Logger
	exclude   []string
}

// WithRecursive controls whether subdirectories are descended into.
// Defaults to true. When false only the root's immediate children are
// listed; nested directories still appear as entries.
//
// Example:
//
//	c := collection.NewDirectory("/srv/data", collection.WithRecursive(false))
func WithRecursive(recursive bool) Option {
	return func(o *options) {
		o.recursive = recursive
	}
}

// WithFilesystem sets the filesystem the root is resolved against.
// If not provided, the local filesystem is used and a relative root is made
// absolute against the working directory.
//
// This option is primarily useful for testing with an in-memory filesystem:
//
//	mem := billy.NewMemory()
//	c := collection.NewDirectory("root", collection.WithFilesystem(mem))
func WithFilesystem(fsys core.ReadFS) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// WithLogger sets the logger used for scan diagnostics.
// Defaults to a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithExclude skips entries matching any of the glob patterns. Patterns use
// "/" as the separator and are tested against both the name relative to the
// root and its final component, so "*.tmp" matches at any depth while
// "build/*" only matches directly under build. An excluded directory is not
// descended into.
//
// Patterns are compiled by the scan; an invalid pattern makes the scan fail.
func WithExclude(patterns ...string) Option {
	return func(o *options) {
		o.exclude = append(o.exclude, patterns...)
	}
}
