package content

import (
	"io/fs"

	"github.com/jmgilman/go/content/errors"
)

// ErrInvalidUTF8 is the cause of failures on text that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New(errors.CodeEncoding, "text is not valid UTF-8")

// wrapStoreError wraps a failed store operation with a code matching the
// cause and attaches the path and operation as context.
func wrapStoreError(err error, op, path string) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, classify(err), "failed to "+op+" content", makeContext("path", path, "op", op))
}

// classify maps provider errors onto error codes.
func classify(err error) errors.ErrorCode {
	switch {
	case errors.Is(err, ErrInvalidUTF8):
		return errors.CodeEncoding
	case errors.Is(err, fs.ErrNotExist):
		return errors.CodeNotFound
	case errors.Is(err, fs.ErrPermission):
		return errors.CodeForbidden
	default:
		return errors.CodeStorage
	}
}

// makeContext builds a context map from alternating keys and values.
// Example: makeContext("path", "/foo/bar", "op", "read").
func makeContext(kvPairs ...interface{}) map[string]interface{} {
	ctx := make(map[string]interface{}, len(kvPairs)/2)
	for i := 0; i < len(kvPairs)-1; i += 2 {
		key, ok := kvPairs[i].(string)
		if !ok {
			continue
		}
		ctx[key] = kvPairs[i+1]
	}
	if len(ctx) == 0 {
		return nil
	}
	return ctx
}
