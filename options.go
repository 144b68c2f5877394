package content

import (
	"io/fs"
	"log/slog"

	"github.com/jmgilman/go/content/fs/core"
)

// DefaultPerm is the mode used for files a TextStore creates.
const DefaultPerm fs.FileMode = 0o644

// Option configures a TextStore.
type Option func(*config)

type config struct {
	filesystem core.FS
	perm       fs.FileMode
	logger     *slog.Logger
}

func defaultConfig() config {
	return config{
		perm:   DefaultPerm,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithFS sets the filesystem the store reads from and writes to.
// The default is the local disk. A nil filesystem is ignored.
func WithFS(filesystem core.FS) Option {
	return func(c *config) {
		if filesystem != nil {
			c.filesystem = filesystem
		}
	}
}

// WithPerm sets the mode for newly created files (before umask).
// Existing files keep their mode. Zero is ignored.
func WithPerm(perm fs.FileMode) Option {
	return func(c *config) {
		if perm != 0 {
			c.perm = perm
		}
	}
}

// WithLogger sets the logger for read and write events.
// The default discards everything. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
