package dirty

// DirtyTracker is the minimal interface for recording modified byte ranges.
// Devices notify it after each block write; they never flush themselves.
type DirtyTracker interface {
	// Add marks a byte range as dirty.
	// off is the offset from the start of the image, length is the number of bytes.
	Add(off, length int)
}

// Syncer persists ranges of a mapped image. It is satisfied by *mmfile.File.
type Syncer interface {
	// Sync writes [off, off+n) back to stable storage. off is page aligned.
	Sync(off, n int) error

	// Datasync flushes file data held by the operating system.
	Datasync() error
}
