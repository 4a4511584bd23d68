package page

import (
	"encoding/binary"
	"hash/crc32"

	util "github.com/bietkhonhungvandi212/clock-db/internal/utils"
)

const (
	HEADER_SIZE = 16 // Size of PageHeader struct: PageID(8) + Checksum(4) + Flags(2) + padding(2)
)

// Header flag bits
const (
	FlagDirty uint16 = 1 << iota
	FlagPinned
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Page is block that read/write from disk
type Page struct {
	Header PageHeader
	Data   [util.PageSize - HEADER_SIZE]byte
}

type PageHeader struct {
	PageID   util.PageID // 8 bytes
	Checksum uint32      // 4 bytes
	Flags    uint16      // 2 bytes
	_        uint16      // 2 bytes (padding)
}

func (h *PageHeader) SetDirtyFlag()   { h.Flags |= FlagDirty }
func (h *PageHeader) ClearDirtyFlag() { h.Flags &^= FlagDirty }
func (h *PageHeader) IsDirty() bool   { return h.Flags&FlagDirty != 0 }

func (h *PageHeader) SetPinnedFlag()   { h.Flags |= FlagPinned }
func (h *PageHeader) ClearPinnedFlag() { h.Flags &^= FlagPinned }
func (h *PageHeader) IsPinned() bool   { return h.Flags&FlagPinned != 0 }

// Serialize packs the page into a byte slice for writing.
// The checksum is recomputed over the data area on every call.
func (p *Page) Serialize() []byte {
	p.Header.Checksum = crc32.Checksum(p.Data[:], castagnoli)

	buf := make([]byte, util.PageSize)
	binary.LittleEndian.PutUint64(buf[0:8], uint64(p.Header.PageID))
	binary.LittleEndian.PutUint32(buf[8:12], p.Header.Checksum)
	binary.LittleEndian.PutUint16(buf[12:14], p.Header.Flags)

	copy(buf[HEADER_SIZE:], p.Data[:])

	return buf
}

// Deserialize unpacks from bytes, validates checksum.
// A zero checksum marks a page that was never serialized (fresh file space)
// and is accepted as-is.
func Deserialize(data []byte) (*Page, error) {
	if len(data) != util.PageSize {
		return nil, util.ErrInvalidPageSize
	}

	p := &Page{
		Header: PageHeader{
			PageID:   util.PageID(binary.LittleEndian.Uint64(data[0:8])),
			Checksum: binary.LittleEndian.Uint32(data[8:12]),
			Flags:    binary.LittleEndian.Uint16(data[12:14]),
		},
	}
	copy(p.Data[:], data[HEADER_SIZE:])

	if p.Header.Checksum != 0 && p.Header.Checksum != crc32.Checksum(p.Data[:], castagnoli) {
		return nil, util.ErrChecksumMismatch
	}

	return p, nil
}
