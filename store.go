package content

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"unicode/utf8"

	"github.com/jmgilman/go/content/fs/billy"
	"github.com/jmgilman/go/content/fs/core"
)

var errNotDir = stderrors.New("not a directory")

// TextStore is a Content backed by a single file.
//
// The path is fixed at construction and need not exist yet. Every Read and
// Write goes to the filesystem; nothing is cached.
type TextStore struct {
	path       string
	filesystem core.FS
	perm       fs.FileMode
	logger     *slog.Logger
}

// NewTextStore returns a store bound to path.
//
// With a local filesystem (the default) a relative path is resolved against
// the working directory here, once.
func NewTextStore(path string, opts ...Option) *TextStore {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.filesystem == nil {
		cfg.filesystem = billy.NewLocal()
	}

	if cfg.filesystem.Type() == core.FSTypeLocal && !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return &TextStore{
		path:       path,
		filesystem: cfg.filesystem,
		perm:       cfg.perm,
		logger:     cfg.logger.With("path", path),
	}
}

// Path returns the path the store is bound to.
func (s *TextStore) Path() string {
	return s.path
}

// Read returns the whole file decoded as UTF-8.
//
// Returns CodeNotFound if the file does not exist, CodeForbidden if it cannot
// be read and CodeEncoding if it is not valid UTF-8.
func (s *TextStore) Read() (string, error) {
	data, err := s.filesystem.ReadFile(s.path)
	if err != nil {
		return "", s.fail("read", err)
	}
	if !utf8.Valid(data) {
		return "", s.fail("read", ErrInvalidUTF8)
	}

	s.logger.Debug("read content", "bytes", len(data))
	return string(data), nil
}

// Write replaces the whole file with text, creating it if needed.
//
// The parent directory must already exist. Returns CodeNotFound if it does
// not, CodeForbidden on permission errors and CodeEncoding if text is not
// valid UTF-8, in which case the file is left untouched.
func (s *TextStore) Write(text string) error {
	if !utf8.ValidString(text) {
		return s.fail("write", ErrInvalidUTF8)
	}
	if err := s.checkParent(); err != nil {
		return s.fail("write", err)
	}
	if err := s.filesystem.WriteFile(s.path, []byte(text), s.perm); err != nil {
		return s.fail("write", err)
	}

	s.logger.Debug("wrote content", "bytes", len(text))
	return nil
}

// checkParent fails unless the directory containing the file exists.
// Billy providers create missing parents on write, which a store must not do.
func (s *TextStore) checkParent() error {
	dir := path.Dir(filepath.ToSlash(s.path))
	if dir == "." || dir == "/" {
		return nil
	}

	info, err := s.filesystem.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "write", Path: dir, Err: errNotDir}
	}
	return nil
}

func (s *TextStore) fail(op string, err error) error {
	s.logger.Warn("content operation failed", "op", op, "error", err)
	return wrapStoreError(err, op, s.path)
}
