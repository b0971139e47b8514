// Package errors provides the structured errors returned by collections.
//
// Every error produced by this module carries an ErrorCode that tells the
// caller what went wrong without string matching, and a classification that
// tells it whether trying again can help. Errors stay compatible with the
// standard library (errors.Is, errors.As, errors.Unwrap), so sentinel values
// such as collection.ErrInvalidState can be matched through any number of
// wraps.
//
// # Codes used by collections
//
//   - CodeInvalidState: the collection was never valid or has been closed.
//     Callers must obtain a fresh collection; retrying cannot succeed.
//   - CodeNotFound, CodeForbidden, CodeIO: the filesystem failed while a
//     collection was scanning or opening an entry.
//   - CodeInvalidInput: a malformed argument such as a bad glob pattern.
//   - CodeInvalidConfig: tooling configuration could not be used.
//
// # Creating and wrapping
//
//	err := errors.New(errors.CodeInvalidState, "collection is closed")
//
//	if err := fsys.ReadDir(dir); err != nil {
//	    return errors.WrapWithContext(err, errors.CodeIO, "failed to list directory",
//	        map[string]interface{}{"path": dir})
//	}
//
// # Inspecting
//
//	switch errors.GetCode(err) {
//	case errors.CodeInvalidState:
//	    // re-obtain the collection
//	}
//
// ToJSON flattens any error into an ErrorResponse for machine-readable
// output without exposing the wrapped chain.
package errors
