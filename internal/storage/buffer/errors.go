package buffer

import (
	"errors"
	"fmt"

	util "github.com/bietkhonhungvandi212/clock-db/internal/utils"
)

var (
	// ErrCapacityExceeded means victim selection exhausted the pool: every
	// frame is pinned, so nothing can be evicted. Release pins or grow the
	// pool.
	ErrCapacityExceeded = errors.New("buffer pool capacity exceeded: all frames pinned")

	// ErrDuplicateEntry means an index insert hit an existing (file, pageId)
	// key. The index must stay injective.
	ErrDuplicateEntry = errors.New("frame index entry already exists")
)

// NotPinnedError reports an unpin of a resident page whose pin count is
// already zero. This is a caller bookkeeping bug.
type NotPinnedError struct {
	File    string
	PageID  util.PageID
	FrameID util.FrameID
}

func (e *NotPinnedError) Error() string {
	return fmt.Sprintf("page %d of file %s in frame %d is not pinned", e.PageID, e.File, e.FrameID)
}

// PagePinnedError reports a flush that ran into a frame still pinned by some
// caller. The flush aborts at this frame.
type PagePinnedError struct {
	File    string
	PageID  util.PageID
	FrameID util.FrameID
}

func (e *PagePinnedError) Error() string {
	return fmt.Sprintf("page %d of file %s is pinned in frame %d", e.PageID, e.File, e.FrameID)
}

// BadBufferError reports a frame attributed to a file while marked invalid.
// Under the descriptor invariants this state is unreachable; seeing it means
// the pool is corrupted and the manager cannot be trusted further.
type BadBufferError struct {
	FrameID util.FrameID
	Dirty   bool
	Valid   bool
	RefBit  bool
}

func (e *BadBufferError) Error() string {
	return fmt.Sprintf("corrupted frame %d: dirty=%v valid=%v refBit=%v",
		e.FrameID, e.Dirty, e.Valid, e.RefBit)
}
