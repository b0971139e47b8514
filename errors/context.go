package errors

import "errors"

// WithContext returns a copy of err with key set in its metadata.
// A plain error is first converted to a PlatformError with CodeUnknown.
// Returns nil if err is nil.
func WithContext(err error, key string, value interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap returns a copy of err with every field of ctx merged into
// its metadata; fields in ctx win over existing ones.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	base := asPlatformError(err)
	merged := base.Context()
	if merged == nil {
		merged = make(map[string]interface{}, len(ctx))
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &platformError{
		code:           base.Code(),
		classification: base.Classification(),
		message:        base.Message(),
		context:        merged,
		cause:          base.Unwrap(),
	}
}

// WithClassification returns a copy of err with its classification replaced.
// Returns nil if err is nil.
func WithClassification(err error, classification ErrorClassification) PlatformError {
	if err == nil {
		return nil
	}

	base := asPlatformError(err)
	return &platformError{
		code:           base.Code(),
		classification: classification,
		message:        base.Message(),
		context:        base.Context(),
		cause:          base.Unwrap(),
	}
}

func asPlatformError(err error) PlatformError {
	var pe PlatformError
	if errors.As(err, &pe) {
		return pe
	}
	return &platformError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
