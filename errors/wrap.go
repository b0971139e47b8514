package errors

import (
	"errors"
	"fmt"
)

// Wrap attaches a code and message to err, keeping err reachable through
// Unwrap. When err already is a PlatformError its classification is kept.
// Returns nil if err is nil.
//
// Example:
//
//	f, err := fsys.Open(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to open entry")
//	}
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
// Returns nil if err is nil.
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var inner PlatformError
	if errors.As(err, &inner) {
		classification = inner.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		context:        copyContext(ctx),
		cause:          err,
	}
}
