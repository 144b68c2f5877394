package errors

// ErrorCode identifies a failure category.
// Codes are strings so they read well in logs.
type ErrorCode string

const (
	// CodeNotFound indicates the file, or the directory that should contain
	// it, does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeForbidden indicates the filesystem denied the operation.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// CodeEncoding indicates text that is not valid UTF-8.
	CodeEncoding ErrorCode = "INVALID_ENCODING"

	// CodeStorage indicates any other failure reported by the backing store.
	CodeStorage ErrorCode = "STORAGE_ERROR"

	// CodeInvalidInput indicates a caller supplied an unusable argument.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInternal indicates a bug in this module.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown is used for errors that carry no code.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// ErrorClassification indicates whether retrying an operation may succeed.
type ErrorClassification string

const (
	// ClassificationRetryable marks failures that may be transient.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent marks failures that will recur on retry.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable reports whether c is ClassificationRetryable.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeStorage: ClassificationRetryable,

	CodeNotFound:     ClassificationPermanent,
	CodeForbidden:    ClassificationPermanent,
	CodeEncoding:     ClassificationPermanent,
	CodeInvalidInput: ClassificationPermanent,
	CodeInternal:     ClassificationPermanent,
	CodeUnknown:      ClassificationPermanent,
}

// getDefaultClassification falls back to permanent for unmapped codes.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
