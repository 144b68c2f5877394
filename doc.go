// Package content provides whole-file text access behind a small Content
// interface, plus a decorator that restricts text to the ASCII range.
//
// A TextStore reads and writes the complete contents of one file. An
// ASCIIFilter wraps any Content and removes every code point above 127 from
// text passing through it, in both directions. Filters compose freely:
//
//	store := content.NewTextStore("/var/data/greeting.txt")
//	ascii := content.NewASCIIFilter(store)
//
//	if err := ascii.Write("Привет!!!"); err != nil {
//	    return err
//	}
//	text, err := ascii.Read() // "!!!"
//
// # Backing Filesystem
//
// TextStore works against a core.FS. By default it uses the local disk via
// the go-billy provider; tests typically inject billy.NewMemory() with WithFS.
// Each call opens and closes its own handle, nothing is cached between calls,
// and parent directories are never created.
//
// # Errors
//
// TextStore failures are errors.PlatformError values whose cause is the
// provider error, so errors.Is(err, fs.ErrNotExist) keeps working. ASCIIFilter
// returns errors from the wrapped Content unchanged.
//
// # Concurrency
//
// Nothing here locks. Concurrent writes to the same path leave whichever
// write the filesystem finished last.
package content
