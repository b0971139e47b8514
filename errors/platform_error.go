package errors

import "fmt"

// PlatformError is an error with a code, a retry classification, a message
// and optional metadata. It unwraps to its cause.
type PlatformError interface {
	error

	// Code returns the category of the failure.
	Code() ErrorCode

	// Classification reports whether a retry can help.
	Classification() ErrorClassification

	// Message returns the message without the cause appended.
	Message() string

	// Context returns a copy of the attached metadata, or nil.
	Context() map[string]interface{}

	// Unwrap returns the wrapped cause, or nil.
	Unwrap() error
}

// platformError is the only PlatformError implementation. Values are never
// mutated after construction.
type platformError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error formats as "[CODE] message" with ": cause" appended when wrapped.
func (e *platformError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *platformError) Code() ErrorCode { return e.code }

func (e *platformError) Classification() ErrorClassification { return e.classification }

func (e *platformError) Message() string { return e.message }

func (e *platformError) Context() map[string]interface{} {
	return copyContext(e.context)
}

func (e *platformError) Unwrap() error { return e.cause }

// copyContext returns nil for a nil map so that "no context" survives copies.
func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
