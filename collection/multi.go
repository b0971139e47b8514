package collection

import (
	"context"
	"io/fs"
	"sync"

	"github.com/jmgilman/go/collection/errors"
)

// multiName is the name reported by every Multi.
const multiName = "multi"

// Multi presents several collections as one. Entries are the children's
// entries in the order the children were added; lookups consult children in
// that order and the first match wins.
//
// The zero value is invalid; use NewMulti.
type Multi struct {
	mu       sync.Mutex
	children []Collection
	valid    bool
}

// NewMulti creates a valid Multi holding children.
// It fails if any child is rejected by Add.
func NewMulti(children ...Collection) (*Multi, error) {
	m := &Multi{valid: true}
	for _, c := range children {
		if err := m.Add(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Add appends a child. Nil, invalid children and m itself are rejected with
// CodeInvalidInput.
func (m *Multi) Add(c Collection) error {
	if c == nil {
		return errors.New(errors.CodeInvalidInput, "cannot add a nil collection")
	}
	if other, ok := c.(*Multi); ok && other == m {
		return errors.New(errors.CodeInvalidInput, "cannot add a collection to itself")
	}
	if !c.IsValid() {
		return errors.WithContext(
			errors.New(errors.CodeInvalidInput, "cannot add an invalid collection"),
			"collection", c.Name())
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.valid {
		return invalidState("add collection", multiName)
	}
	m.children = append(m.children, c)
	return nil
}

// Name returns "multi".
func (m *Multi) Name() string {
	return multiName
}

// IsValid reports whether m has not been closed.
func (m *Multi) IsValid() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.valid
}

// Len returns the number of children.
func (m *Multi) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.children)
}

// Load materializes every child that supports it, concurrently.
func (m *Multi) Load() error {
	children, err := m.snapshot("load")
	if err != nil {
		return err
	}

	loaders := make([]Loader, 0, len(children))
	for _, c := range children {
		if l, ok := c.(Loader); ok {
			loaders = append(loaders, l)
		}
	}
	return LoadAll(context.Background(), 0, loaders...)
}

// Entries concatenates the children's entries.
func (m *Multi) Entries() ([]*Entry, error) {
	children, err := m.snapshot("list entries")
	if err != nil {
		return nil, err
	}

	var all []*Entry
	for _, c := range children {
		entries, err := c.Entries()
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return all, nil
}

// GetEntry returns the first match among the children.
func (m *Multi) GetEntry(name string, mode MatchPath) (*Entry, bool, error) {
	children, err := m.snapshot("get entry")
	if err != nil {
		return nil, false, err
	}

	for _, c := range children {
		e, found, err := c.GetEntry(name, mode)
		if err != nil {
			return nil, false, err
		}
		if found {
			return e, true, nil
		}
	}
	return nil, false, nil
}

// Size sums the children's sizes.
func (m *Multi) Size() (int, error) {
	children, err := m.snapshot("size")
	if err != nil {
		return 0, err
	}

	total := 0
	for _, c := range children {
		n, err := c.Size()
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// Open opens the entry from the first child that has a match. If that match
// is a directory nothing is opened, even when a later child has a file of
// the same name.
func (m *Multi) Open(name string, mode MatchPath) (fs.File, bool, error) {
	children, err := m.snapshot("open")
	if err != nil {
		return nil, false, err
	}

	for _, c := range children {
		_, found, err := c.GetEntry(name, mode)
		if err != nil {
			return nil, false, err
		}
		if found {
			return c.Open(name, mode)
		}
	}
	return nil, false, nil
}

// Close closes every child and invalidates m.
func (m *Multi) Close() error {
	m.mu.Lock()
	children := m.children
	m.children = nil
	m.valid = false
	m.mu.Unlock()

	var first error
	for _, c := range children {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Clone returns a Multi holding clones of every child.
func (m *Multi) Clone() Collection {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := &Multi{valid: m.valid, children: make([]Collection, 0, len(m.children))}
	for _, c := range m.children {
		clone.children = append(clone.children, c.Clone())
	}
	return clone
}

// snapshot returns the current children, or ErrInvalidState for op.
func (m *Multi) snapshot(op string) ([]Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.valid {
		return nil, invalidState(op, multiName)
	}
	return append([]Collection(nil), m.children...), nil
}

var (
	_ Collection = (*Multi)(nil)
	_ Loader     = (*Multi)(nil)
)
