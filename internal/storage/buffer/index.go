package buffer

import (
	"github.com/bietkhonhungvandi212/clock-db/internal/storage/file"
	util "github.com/bietkhonhungvandi212/clock-db/internal/utils"
)

// frameTag locates a page: which file it belongs to plus its id in that file.
// The Filer itself is the key component so two files with equal names in
// different managers never collide.
type frameTag struct {
	file   file.Filer
	pageId util.PageID
}

// FrameIndex maps (file, pageId) to the frame currently caching that page.
// It must mirror the set of valid frame descriptors at all times. A missing
// key is routine control flow, not a failure.
type FrameIndex struct {
	entries map[frameTag]util.FrameID
}

func NewFrameIndex(capacity int) *FrameIndex {
	return &FrameIndex{
		entries: make(map[frameTag]util.FrameID, capacity),
	}
}

// Insert registers the mapping; the key must not already exist.
func (ix *FrameIndex) Insert(f file.Filer, pageId util.PageID, frameId util.FrameID) error {
	tag := frameTag{file: f, pageId: pageId}
	if _, ok := ix.entries[tag]; ok {
		return ErrDuplicateEntry
	}
	ix.entries[tag] = frameId
	return nil
}

// Lookup reports the frame caching (f, pageId), if any.
func (ix *FrameIndex) Lookup(f file.Filer, pageId util.PageID) (util.FrameID, bool) {
	frameId, ok := ix.entries[frameTag{file: f, pageId: pageId}]
	return frameId, ok
}

// Remove drops the mapping. Removing an absent key is a no-op.
func (ix *FrameIndex) Remove(f file.Filer, pageId util.PageID) {
	delete(ix.entries, frameTag{file: f, pageId: pageId})
}

func (ix *FrameIndex) Len() int {
	return len(ix.entries)
}
