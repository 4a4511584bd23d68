package file

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/ncw/directio"

	"github.com/bietkhonhungvandi212/clock-db/internal/storage/page"
	util "github.com/bietkhonhungvandi212/clock-db/internal/utils"
)

/**
* This module is the on-disk page file collaborator: one FileManager per data
* file. It owns page identities (allocate/delete) and moves whole pages
* between disk and memory by offset pageId * PageSize.
**/
type FileManager struct {
	File     *os.File
	Size     int64
	numPages util.PageID
	freeList []util.PageID // deleted page slots, reused before growing the file
	path     string
	opts     util.Options
}

func NewFileManager(path string, initialPages int) (*FileManager, error) {
	return NewFileManagerOpts(path, initialPages, util.DefaultOptions())
}

func NewFileManagerOpts(path string, initialPages int, opts util.Options) (*FileManager, error) {
	if initialPages <= 0 {
		return nil, util.ErrInvalidInitialPages
	}

	var f *os.File
	var err error
	if opts.DirectIO {
		f, err = directio.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o666)
	} else {
		f, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o666)
	}
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	initialSize := int64(initialPages) * int64(util.PageSize)
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}
	size := info.Size()
	if size < initialSize {
		if err := f.Truncate(initialSize); err != nil {
			f.Close()
			return nil, fmt.Errorf("truncate to %d: %w", initialSize, err)
		}
		size = initialSize
	}

	return &FileManager{
		File:     f,
		Size:     size,
		numPages: util.PageID(size / int64(util.PageSize)),
		path:     path,
		opts:     opts,
	}, nil
}

// Name returns the stable identity of this file, used for index keys and
// error messages.
func (fm *FileManager) Name() string {
	return fm.path
}

// NumPages returns the number of page slots currently backed by the file,
// including deleted ones.
func (fm *FileManager) NumPages() util.PageID {
	return fm.numPages
}

/* READ FILE */
func (fm *FileManager) ReadPage(pageId util.PageID) (*page.Page, error) {
	if fm.File == nil {
		return nil, util.ErrFileManagerNil
	}
	if pageId >= fm.numPages {
		return nil, util.ErrPageOutOfBounds
	}
	if slices.Contains(fm.freeList, pageId) {
		return nil, util.ErrPageDeleted
	}

	buf := fm.pageBuffer()
	offset := int64(pageId) * int64(util.PageSize)
	if _, err := fm.File.ReadAt(buf, offset); err != nil {
		return nil, fmt.Errorf("read page %d: %w", pageId, err)
	}

	p, err := page.Deserialize(buf)
	if err != nil {
		return nil, fmt.Errorf("deserialize page %d: %w", pageId, err)
	}

	// A zero checksum marks size-backed space no page was ever written to;
	// stamp the requested id so a later write-back lands on this slot and
	// not on page 0. A written page must carry the id it was read from.
	if p.Header.Checksum == 0 {
		p.Header.PageID = pageId
	} else if p.Header.PageID != pageId {
		return nil, fmt.Errorf("page %d carries id %d: %w", pageId, p.Header.PageID, util.ErrPageIdMismatch)
	}

	return p, nil
}

/* WRITE FILE */
func (fm *FileManager) WritePage(p *page.Page) error {
	if fm.File == nil {
		return util.ErrFileManagerNil
	}

	offset := int64(p.Header.PageID) * int64(util.PageSize)
	buf := fm.pageBuffer()
	copy(buf, p.Serialize())

	if _, err := fm.File.WriteAt(buf, offset); err != nil {
		return fmt.Errorf("write page %d: %w", p.Header.PageID, err)
	}

	if offset+int64(util.PageSize) > fm.Size {
		fm.Size = offset + int64(util.PageSize)
	}
	if p.Header.PageID >= fm.numPages {
		fm.numPages = p.Header.PageID + 1
	}
	// Writing a slot resurrects it
	if i := slices.Index(fm.freeList, p.Header.PageID); i != -1 {
		fm.freeList = slices.Delete(fm.freeList, i, i+1)
	}

	if fm.opts.SyncWrites {
		if err := fm.File.Sync(); err != nil {
			return fmt.Errorf("sync file: %w", err)
		}
	}
	return nil
}

// AllocatePage hands out a fresh zeroed page, reusing a deleted slot when one
// exists, otherwise extending the file.
func (fm *FileManager) AllocatePage() (util.PageID, *page.Page, error) {
	if fm.File == nil {
		return 0, nil, util.ErrFileManagerNil
	}

	var pageId util.PageID
	if n := len(fm.freeList); n > 0 {
		pageId = fm.freeList[n-1]
		fm.freeList = fm.freeList[:n-1]
	} else {
		pageId = fm.numPages
	}

	p := &page.Page{Header: page.PageHeader{PageID: pageId}}
	if err := fm.WritePage(p); err != nil {
		return 0, nil, fmt.Errorf("allocate page %d: %w", pageId, err)
	}

	return pageId, p, nil
}

// DeletePage marks the slot reusable. The on-disk bytes are left in place
// until the slot is reallocated.
func (fm *FileManager) DeletePage(pageId util.PageID) error {
	if fm.File == nil {
		return util.ErrFileManagerNil
	}
	if pageId >= fm.numPages {
		return util.ErrPageOutOfBounds
	}
	if slices.Contains(fm.freeList, pageId) {
		return util.ErrPageDeleted
	}

	fm.freeList = append(fm.freeList, pageId)
	return nil
}

// pageBuffer returns a page-sized scratch buffer, block-aligned when the file
// was opened with O_DIRECT.
func (fm *FileManager) pageBuffer() []byte {
	if fm.opts.DirectIO {
		return directio.AlignedBlock(util.PageSize)
	}
	return make([]byte, util.PageSize)
}

/**
* CLOSE FUNCTION
**/
func (fm *FileManager) Close() error {
	if fm == nil {
		return nil // Idempotent
	}
	var err error
	if fm.File != nil {
		if e := fm.File.Sync(); e != nil {
			err = errors.Join(err, fmt.Errorf("sync file: %w", e))
		}
		if e := fm.File.Close(); e != nil {
			err = errors.Join(err, fmt.Errorf("close file: %w", e))
		}
		fm.File = nil
	}
	return err
}
