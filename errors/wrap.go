package errors

import (
	"errors"
	"fmt"
)

// New creates a PlatformError with the default classification for code.
//
// Example:
//
//	var ErrInvalidUTF8 = errors.New(errors.CodeEncoding, "text is not valid UTF-8")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf is New with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. The result unwraps to err, so
// errors.Is and errors.As see through it.
//
// If err already contains a PlatformError its classification is kept;
// otherwise the default classification for code applies.
//
// Returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) PlatformError {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps err and attaches a copy of ctx in one step.
//
// Returns nil if err is nil.
//
// Example:
//
//	data, err := filesystem.ReadFile(path)
//	if err != nil {
//	    return errors.WrapWithContext(err, errors.CodeNotFound, "file does not exist", map[string]interface{}{
//	        "path": path,
//	    })
//	}
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		context:        copyContext(ctx),
		cause:          err,
	}
}

// WithContext returns a copy of err with one more context field.
// Errors that are not PlatformErrors are wrapped with CodeUnknown first.
//
// Returns nil if err is nil.
func WithContext(err error, key string, value interface{}) PlatformError {
	if err == nil {
		return nil
	}

	var platformErr PlatformError
	if !errors.As(err, &platformErr) {
		platformErr = &platformError{
			code:           CodeUnknown,
			classification: ClassificationPermanent,
			message:        err.Error(),
			cause:          err,
		}
	}

	ctx := platformErr.Context()
	if ctx == nil {
		ctx = make(map[string]interface{}, 1)
	}
	ctx[key] = value

	return &platformError{
		code:           platformErr.Code(),
		classification: platformErr.Classification(),
		message:        platformErr.Message(),
		context:        ctx,
		cause:          platformErr.Unwrap(),
	}
}
