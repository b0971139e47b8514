package errors

import "fmt"

// New creates a PlatformError with the default classification for code.
//
// Example:
//
//	var ErrInvalidState = errors.New(errors.CodeInvalidState, "collection is not valid")
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
