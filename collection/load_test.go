package collection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAll(t *testing.T) {
	t.Run("loads every collection", func(t *testing.T) {
		mem := newTree(t)
		a := NewDirectory("data", WithFilesystem(mem))
		b := NewDirectory("data/sub", WithFilesystem(mem))
		c := NewDirectory("data/other", WithFilesystem(mem))

		require.NoError(t, LoadAll(context.Background(), 2, a, b, c))
		assert.True(t, a.Loaded())
		assert.True(t, b.Loaded())
		assert.True(t, c.Loaded())
	})

	t.Run("reports invalid collections", func(t *testing.T) {
		mem := newTree(t)
		a := NewDirectory("data", WithFilesystem(mem))
		bad := NewDirectory("missing", WithFilesystem(mem))

		err := LoadAll(context.Background(), 0, a, bad)
		assert.True(t, IsInvalidState(err))
	})

	t.Run("cancelled context skips loads", func(t *testing.T) {
		cfs := &countingFS{ReadFS: newTree(t)}
		a := NewDirectory("data", WithFilesystem(cfs))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := LoadAll(ctx, 0, a)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, a.Loaded())
		assert.Equal(t, int32(0), cfs.readDirs.Load())
	})

	t.Run("no loaders", func(t *testing.T) {
		assert.NoError(t, LoadAll(context.Background(), 0))
	})
}
