package buffer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bietkhonhungvandi212/clock-db/internal/storage/file"
	"github.com/bietkhonhungvandi212/clock-db/internal/storage/page"
	util "github.com/bietkhonhungvandi212/clock-db/internal/utils"
)

/*
Manager is the buffer pool facade: all page access from higher layers goes
through it. It owns a contiguous arena of page frames, a parallel descriptor
table, the frame index, and the clock hand.

The manager does no internal locking. Every operation runs to completion on
the calling goroutine; concurrent callers must serialize externally. A pin
taken by FetchPage/AllocatePage guarantees the frame's identity and content
stay put until the matching UnpinPage.
*/
type Manager struct {
	frames []page.Page
	descs  []FrameDesc
	index  *FrameIndex
	hand   util.FrameID
}

// NewManager builds a pool of numFrames invalid frames. The hand starts on
// the last frame so the first advance lands on frame 0.
func NewManager(numFrames int) *Manager {
	if numFrames <= 0 {
		panic(util.ErrInvalidPoolSize)
	}
	return &Manager{
		frames: make([]page.Page, numFrames),
		descs:  newDescTable(numFrames),
		index:  NewFrameIndex(numFrames),
		hand:   util.FrameID(numFrames - 1),
	}
}

// NumFrames returns the pool capacity.
func (m *Manager) NumFrames() int {
	return len(m.frames)
}

// FetchPage returns the frame buffer holding (f, pageId), reading it from
// disk on a miss, and takes one pin on it. Every successful call must be
// paired with one UnpinPage.
func (m *Manager) FetchPage(f file.Filer, pageId util.PageID) (*page.Page, error) {
	if frameId, ok := m.index.Lookup(f, pageId); ok {
		d := &m.descs[frameId]
		d.pinCount++
		d.refBit = true
		return &m.frames[frameId], nil
	}

	frameId, err := m.allocFrame()
	if err != nil {
		return nil, err
	}

	p, err := f.ReadPage(pageId)
	if err != nil {
		return nil, fmt.Errorf("fetch page %d of %s: %w", pageId, f.Name(), err)
	}
	m.frames[frameId] = *p

	if err := m.index.Insert(f, pageId, frameId); err != nil {
		return nil, err
	}
	m.descs[frameId].Set(f, pageId)

	return &m.frames[frameId], nil
}

// UnpinPage releases one pin on (f, pageId) and records the caller's dirty
// verdict. Unpinning a non-resident page is a no-op; unpinning below zero
// fails with NotPinnedError.
func (m *Manager) UnpinPage(f file.Filer, pageId util.PageID, dirty bool) error {
	frameId, ok := m.index.Lookup(f, pageId)
	if !ok {
		return nil
	}

	d := &m.descs[frameId]
	if d.pinCount == 0 {
		return &NotPinnedError{File: f.Name(), PageID: pageId, FrameID: frameId}
	}
	d.pinCount--
	if dirty {
		d.dirty = true
	}
	return nil
}

// AllocatePage asks the file for a fresh page, caches its initial content in
// a frame and pins it. Returns the new page id and the frame buffer.
func (m *Manager) AllocatePage(f file.Filer) (util.PageID, *page.Page, error) {
	pageId, p, err := f.AllocatePage()
	if err != nil {
		return 0, nil, fmt.Errorf("allocate page in %s: %w", f.Name(), err)
	}

	frameId, err := m.allocFrame()
	if err != nil {
		return 0, nil, err
	}
	m.frames[frameId] = *p

	if err := m.index.Insert(f, pageId, frameId); err != nil {
		return 0, nil, err
	}
	m.descs[frameId].Set(f, pageId)

	return pageId, &m.frames[frameId], nil
}

// DisposePage drops (f, pageId) from the pool if resident, then deletes its
// persistent storage. The frame is cleared without a pin check: disposing a
// page still pinned discards that pin bookkeeping.
func (m *Manager) DisposePage(f file.Filer, pageId util.PageID) error {
	if frameId, ok := m.index.Lookup(f, pageId); ok {
		m.descs[frameId].Clear()
		m.index.Remove(f, pageId)
	}

	if err := f.DeletePage(pageId); err != nil {
		return fmt.Errorf("dispose page %d of %s: %w", pageId, f.Name(), err)
	}
	return nil
}

// FlushFile writes back and releases every frame owned by f, in ascending
// frame order. A pinned frame aborts the scan with PagePinnedError; frames
// processed before it stay flushed. An invalid frame still attributed to f
// means the pool is corrupted and surfaces as BadBufferError.
func (m *Manager) FlushFile(f file.Filer) error {
	for i := range m.descs {
		d := &m.descs[i]
		if d.file != f {
			continue
		}

		if d.pinCount > 0 {
			return &PagePinnedError{File: f.Name(), PageID: d.pageId, FrameID: d.frameId}
		}
		if !d.valid {
			return &BadBufferError{FrameID: d.frameId, Dirty: d.dirty, Valid: d.valid, RefBit: d.refBit}
		}

		if d.dirty {
			if err := f.WritePage(&m.frames[i]); err != nil {
				return fmt.Errorf("flush page %d of %s: %w", d.pageId, f.Name(), err)
			}
			d.dirty = false
		}
		m.index.Remove(f, d.pageId)
		d.Clear()
	}
	return nil
}

// Close writes back every dirty frame regardless of pins, then releases the
// pool. The manager must not be used afterwards.
func (m *Manager) Close() error {
	var err error
	for i := range m.descs {
		d := &m.descs[i]
		if d.dirty {
			if e := d.file.WritePage(&m.frames[i]); e != nil {
				err = errors.Join(err, fmt.Errorf("write back page %d of %s: %w", d.pageId, d.file.Name(), e))
				continue
			}
			d.dirty = false
		}
	}
	m.frames = nil
	m.descs = nil
	m.index = nil
	return err
}

// String dumps per-frame metadata and the number of valid frames.
func (m *Manager) String() string {
	var b strings.Builder
	validFrames := 0
	for i := range m.descs {
		fmt.Fprintf(&b, "frame %d: %s\n", i, m.descs[i].String())
		if m.descs[i].valid {
			validFrames++
		}
	}
	fmt.Fprintf(&b, "total valid frames: %d\n", validFrames)
	return b.String()
}
