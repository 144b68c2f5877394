package errors

import (
	stderrors "errors"
)

// Is is the standard library errors.Is, re-exported so callers need only
// one errors import.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As is the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode returns the code of the outermost PlatformError in err's chain,
// or CodeUnknown.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // nothing written yet
//	}
func GetCode(err error) ErrorCode {
	var platformErr PlatformError
	if err != nil && stderrors.As(err, &platformErr) {
		return platformErr.Code()
	}
	return CodeUnknown
}

// GetClassification returns the classification of the outermost
// PlatformError in err's chain, or ClassificationPermanent.
func GetClassification(err error) ErrorClassification {
	var platformErr PlatformError
	if err != nil && stderrors.As(err, &platformErr) {
		return platformErr.Classification()
	}
	return ClassificationPermanent
}

// IsRetryable reports whether err is classified as retryable.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
