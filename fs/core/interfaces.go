package core

import (
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the filesystem a content store reads from and writes to.
type FS interface {
	ReadFS
	WriteFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines the read-only operations.
type ReadFS interface {
	// ReadFile reads the named file and returns its contents.
	// A successful call returns err == nil, not err == EOF.
	ReadFile(name string) ([]byte, error)

	// Stat returns file metadata.
	// If there is an error, it will be of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined, not that the file is missing.
	Exists(name string) (bool, error)
}

// WriteFS defines the write operations.
type WriteFS interface {
	// WriteFile writes data to the named file, creating it if necessary
	// and truncating it otherwise. It is equivalent to opening the file
	// with O_WRONLY|O_CREATE|O_TRUNC, writing and closing.
	//
	// Providers may create missing parent directories. Callers that must
	// not rely on that check the parent with Stat first.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory named path, along with any necessary parents.
	// If path is already a directory, MkdirAll does nothing and returns nil.
	MkdirAll(path string, perm fs.FileMode) error
}
