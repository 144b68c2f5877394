// Package errors provides the structured error type returned by content stores.
//
// Every failure surfaced by a store is a PlatformError carrying an ErrorCode,
// a retry classification, a human-readable message, optional context metadata
// and the underlying cause. The cause stays reachable through Unwrap, so
// standard library checks keep working:
//
//	text, err := store.Read()
//	if errors.Is(err, fs.ErrNotExist) {
//	    // the file has not been written yet
//	}
//
// # Error Codes
//
//   - CodeNotFound: the file or its parent directory does not exist
//   - CodeForbidden: the filesystem denied access
//   - CodeEncoding: the text is not valid UTF-8
//   - CodeStorage: any other failure reported by the backing filesystem
//   - CodeInvalidInput, CodeInternal, CodeUnknown: generic fallbacks
//
// CodeStorage is classified as retryable, everything else as permanent. The
// classification is advisory: nothing in this module retries on its own.
package errors
