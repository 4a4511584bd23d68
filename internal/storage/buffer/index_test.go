package buffer

import (
	"testing"

	util "github.com/bietkhonhungvandi212/clock-db/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestFrameIndex(t *testing.T) {
	fa := newMockFile("a.dat")
	fb := newMockFile("b.dat")

	t.Run("InsertLookup", func(t *testing.T) {
		ix := NewFrameIndex(4)

		assert.NoError(t, ix.Insert(fa, 1, 0))
		assert.NoError(t, ix.Insert(fb, 1, 1), "same page id under another file is a distinct key")

		frameId, ok := ix.Lookup(fa, 1)
		assert.True(t, ok)
		assert.Equal(t, util.FrameID(0), frameId)

		frameId, ok = ix.Lookup(fb, 1)
		assert.True(t, ok)
		assert.Equal(t, util.FrameID(1), frameId)

		_, ok = ix.Lookup(fa, 2)
		assert.False(t, ok, "absent key is found=false, not an error")
		assert.Equal(t, 2, ix.Len())
	})

	t.Run("DuplicateInsertFails", func(t *testing.T) {
		ix := NewFrameIndex(4)

		assert.NoError(t, ix.Insert(fa, 1, 0))
		assert.ErrorIs(t, ix.Insert(fa, 1, 2), ErrDuplicateEntry)

		frameId, ok := ix.Lookup(fa, 1)
		assert.True(t, ok)
		assert.Equal(t, util.FrameID(0), frameId, "failed insert leaves the mapping untouched")
	})

	t.Run("RemoveIsTolerant", func(t *testing.T) {
		ix := NewFrameIndex(4)

		assert.NoError(t, ix.Insert(fa, 1, 0))
		ix.Remove(fa, 1)
		_, ok := ix.Lookup(fa, 1)
		assert.False(t, ok)

		ix.Remove(fa, 1) // absent: no-op
		ix.Remove(fb, 9) // never inserted: no-op
		assert.Equal(t, 0, ix.Len())
	})
}
