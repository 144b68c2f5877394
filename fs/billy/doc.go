// Package billy provides go-billy-backed implementations of core.FS.
//
// This package wraps go-billy's osfs (local) and memfs (in-memory)
// implementations behind the narrow core.FS contract used by content stores,
// while keeping the underlying billy.Filesystem reachable through Unwrap.
//
// Usage:
//
//	// Local disk, rooted at "/"
//	fs := billy.NewLocal()
//	data, err := fs.ReadFile("/etc/hostname")
//
//	// In-memory, for tests
//	mem := billy.NewMemory()
//	err := mem.WriteFile("notes.txt", []byte("hi"), 0644)
//
// # Thread Safety
//
// LocalFS and MemoryFS are safe for concurrent use by multiple goroutines.
package billy
