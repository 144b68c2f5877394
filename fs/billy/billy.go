package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/go/content/fs/core"
)

// LocalFS wraps billy's osfs for local filesystem access.
type LocalFS struct {
	adapter
}

// MemoryFS wraps billy's memfs for in-memory filesystem access.
type MemoryFS struct {
	adapter
}

// Option configures filesystem creation.
// Reserved for future extensibility.
type Option func(*config)

type config struct{}

// NewLocal creates a go-billy-backed local filesystem.
// The returned filesystem is rooted at the filesystem root ("/"), so relative
// names resolve against "/" rather than the working directory.
func NewLocal(_ ...Option) *LocalFS {
	return &LocalFS{adapter{bfs: osfs.New("/")}}
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory(_ ...Option) *MemoryFS {
	return &MemoryFS{adapter{bfs: memfs.New()}}
}

// Type returns FSTypeLocal.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// Type returns FSTypeMemory.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// adapter implements the provider-independent part of core.FS on top of a
// billy.Filesystem.
type adapter struct {
	bfs billy.Filesystem
}

// Unwrap returns the underlying billy.Filesystem.
func (a adapter) Unwrap() billy.Filesystem {
	return a.bfs
}

// normalize converts paths to use forward slashes consistently.
// Billy handles the rest of path sanitizing.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// ReadFile reads the named file and returns its contents.
func (a adapter) ReadFile(name string) ([]byte, error) {
	f, err := a.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Stat returns file metadata for the named file.
func (a adapter) Stat(name string) (fs.FileInfo, error) {
	return a.bfs.Stat(normalize(name))
}

// Exists reports whether the named file or directory exists.
func (a adapter) Exists(name string) (bool, error) {
	_, err := a.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// WriteFile writes data to the named file, creating or truncating it.
// Both billy backends create missing parent directories.
func (a adapter) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f, err := a.bfs.OpenFile(normalize(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (a adapter) MkdirAll(path string, perm fs.FileMode) error {
	return a.bfs.MkdirAll(normalize(path), perm)
}

// Compile-time interface checks.
var (
	_ core.FS = (*LocalFS)(nil)
	_ core.FS = (*MemoryFS)(nil)
)
