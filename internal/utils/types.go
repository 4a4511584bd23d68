package util

// PageID represents a unique page identifier within one file
type PageID uint64

// FrameID indexes a frame slot inside the buffer pool
type FrameID int

// PageSize represents the standard page size (4KB)
const PageSize = 4096

// Options represents storage configuration options
type Options struct {
	Path           string
	PageSize       int
	BufferPoolSize int
	InitialPages   int
	SyncWrites     bool
	DirectIO       bool
}

// DefaultOptions returns default storage options
func DefaultOptions() Options {
	return Options{
		PageSize:       PageSize,
		BufferPoolSize: 1000, // 4MB default buffer pool
		InitialPages:   1,
		SyncWrites:     false,
		DirectIO:       false,
	}
}
