package buffer

import (
	"fmt"

	"github.com/bietkhonhungvandi212/clock-db/internal/storage/file"
	util "github.com/bietkhonhungvandi212/clock-db/internal/utils"
)

// FrameDesc is the per-frame metadata slot, kept in an array parallel to the
// frame arena. Invariants:
//   - !valid implies pinCount == 0, !dirty and file == nil
//   - pinCount > 0 implies valid
type FrameDesc struct {
	frameId  util.FrameID
	file     file.Filer
	pageId   util.PageID
	pinCount int32
	dirty    bool
	valid    bool
	refBit   bool
}

// Set marks the frame valid for (f, pageId) with a single pin held by the
// caller that loaded it.
func (d *FrameDesc) Set(f file.Filer, pageId util.PageID) {
	d.file = f
	d.pageId = pageId
	d.pinCount = 1
	d.dirty = false
	d.valid = true
	d.refBit = true
}

// Clear resets the frame to the invalid state.
func (d *FrameDesc) Clear() {
	d.file = nil
	d.pageId = 0
	d.pinCount = 0
	d.dirty = false
	d.valid = false
	d.refBit = false
}

func (d *FrameDesc) FrameID() util.FrameID { return d.frameId }
func (d *FrameDesc) PageID() util.PageID   { return d.pageId }
func (d *FrameDesc) File() file.Filer      { return d.file }
func (d *FrameDesc) PinCount() int32       { return d.pinCount }
func (d *FrameDesc) Dirty() bool           { return d.dirty }
func (d *FrameDesc) Valid() bool           { return d.valid }
func (d *FrameDesc) RefBit() bool          { return d.refBit }

func (d *FrameDesc) String() string {
	name := "<none>"
	if d.file != nil {
		name = d.file.Name()
	}
	return fmt.Sprintf("file=%s pageId=%d pinCount=%d dirty=%v valid=%v refBit=%v",
		name, d.pageId, d.pinCount, d.dirty, d.valid, d.refBit)
}

// newDescTable builds n invalid descriptors with frame ids assigned in order.
func newDescTable(n int) []FrameDesc {
	descs := make([]FrameDesc, n)
	for i := range descs {
		descs[i].frameId = util.FrameID(i)
	}
	return descs
}
