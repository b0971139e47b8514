package errors

// ErrorCode identifies a category of failure.
// Codes are strings so they read well in logs and serialize naturally.
type ErrorCode string

const (
	// CodeInvalidState indicates the receiver cannot answer queries, either
	// because it was never valid or because it has been closed.
	CodeInvalidState ErrorCode = "INVALID_STATE"

	// CodeNotFound indicates a path disappeared or never existed.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeForbidden indicates the filesystem denied access to a path.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// CodeInvalidInput indicates a malformed argument.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates configuration could not be loaded or is inconsistent.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// CodeIO indicates a filesystem read, list or open failed.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeInternal indicates a bug or an impossible state.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown is used for errors that did not originate in this module.
	CodeUnknown ErrorCode = "UNKNOWN"
)
