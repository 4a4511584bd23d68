package util

import "errors"

var (
	ErrInvalidPageId       = errors.New("invalid page id")
	ErrInvalidPageSize     = errors.New("invalid page size")
	ErrChecksumMismatch    = errors.New("checksum mismatch")
	ErrInvalidInitialPages = errors.New("initial pages must be positive")
	ErrPageOutOfBounds     = errors.New("page out of bounds")
	ErrPageDeleted         = errors.New("page has been deleted")
	ErrPageIdMismatch      = errors.New("page id does not match its slot")
	ErrFileManagerNil      = errors.New("file manager is nil")
	ErrInvalidPoolSize     = errors.New("invalid pool size")
)
