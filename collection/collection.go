package collection

import (
	"io/fs"

	"github.com/jmgilman/go/collection/errors"
)

// MatchPath selects how a name is compared against entry names.
type MatchPath int

const (
	// Match compares the full name relative to the collection root.
	Match MatchPath = iota
	// Ignore compares only the final path component of both names.
	Ignore
)

// String returns the lowercase name of the mode.
func (m MatchPath) String() string {
	switch m {
	case Match:
		return "match"
	case Ignore:
		return "ignore"
	default:
		return "unknown"
	}
}

// ErrInvalidState is matched (with errors.Is) by every error returned from a
// query on a collection that was never valid or has been closed.
var ErrInvalidState = errors.New(errors.CodeInvalidState, "collection is not valid")

// IsInvalidState reports whether err came from querying an invalid collection.
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// Collection is a queryable set of entries.
type Collection interface {
	// Name identifies the collection. Directory collections return their
	// root path, or "-" once closed.
	Name() string

	// IsValid reports whether queries can be answered.
	IsValid() bool

	// Close invalidates the collection and releases its cache.
	Close() error

	// Entries returns every entry. The slice is owned by the caller.
	Entries() ([]*Entry, error)

	// GetEntry returns the first entry whose name matches under mode.
	// found is false when nothing matches.
	GetEntry(name string, mode MatchPath) (entry *Entry, found bool, err error)

	// Size returns the number of entries.
	Size() (int, error)

	// Open returns a stream over the named file's bytes. opened is false
	// when nothing matches or the match is a directory. The caller must
	// close the stream.
	Open(name string, mode MatchPath) (file fs.File, opened bool, err error)

	// Clone returns an independent copy of the collection's current state.
	Clone() Collection
}

// Loader is implemented by collections that can materialize their entries
// ahead of the first query.
type Loader interface {
	Load() error
}

// invalidState builds the error returned by op on an invalid collection.
func invalidState(op, name string) error {
	return errors.WrapWithContext(ErrInvalidState, errors.CodeInvalidState,
		"cannot "+op+" on an invalid collection",
		map[string]interface{}{"collection": name})
}
