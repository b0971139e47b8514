package errors

// ErrorClassification tells a caller whether repeating the failed operation
// might succeed.
type ErrorClassification string

const (
	// ClassificationRetryable marks transient failures.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent marks failures that will repeat.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable reports whether the classification allows a retry.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps codes to their classification when the caller
// does not override it. Codes missing from the map are permanent.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeIO: ClassificationRetryable,

	CodeInvalidState:  ClassificationPermanent,
	CodeNotFound:      ClassificationPermanent,
	CodeForbidden:     ClassificationPermanent,
	CodeInvalidInput:  ClassificationPermanent,
	CodeInvalidConfig: ClassificationPermanent,
	CodeInternal:      ClassificationPermanent,
	CodeUnknown:       ClassificationPermanent,
}

func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
