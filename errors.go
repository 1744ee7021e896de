package claims

import (
	"errors"
	"fmt"
)

// Core error definitions
var (
	// ErrInvalidJSON reports input that is not a well-formed JSON document
	ErrInvalidJSON = errors.New("invalid JSON format")
	// ErrTypeMismatch reports a present scalar that does not coerce to the
	// requested type, or array contents of the wrong shape
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrMalformedAlgorithm reports an algorithm name that is not a valid
	// JOSE header value
	ErrMalformedAlgorithm = errors.New("malformed algorithm name")
	// ErrBlobCorrupt reports a legacy blob that failed base64url decoding
	// or deserialization; it is distinguishable from absence
	ErrBlobCorrupt = errors.New("blob corrupt")
	// ErrStreamCorrupt reports a malformed construct on a streaming reader
	ErrStreamCorrupt = errors.New("stream corrupt")
	// ErrOperationFailed reports configuration or setup failures
	ErrOperationFailed = errors.New("operation failed")
)

// FieldError represents an extraction error with essential context
type FieldError struct {
	Op      string // Operation that failed
	Member  string // Object member involved, if any
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *FieldError) Error() string {
	if e.Member != "" {
		return fmt.Sprintf("claims %s failed for member '%s': %s", e.Op, e.Member, e.Message)
	}
	return fmt.Sprintf("claims %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is
func (e *FieldError) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*FieldError); ok {
		return e.Op == targetErr.Op && errors.Is(e.Err, targetErr.Err)
	}
	return errors.Is(e.Err, target)
}

// newTypeError creates a FieldError for scalar coercion mismatches
func newTypeError(op, member, message string) error {
	return &FieldError{
		Op:      op,
		Member:  member,
		Message: message,
		Err:     ErrTypeMismatch,
	}
}

// newAlgorithmError creates a FieldError wrapping an algorithm parse failure
func newAlgorithmError(op, member string, err error) error {
	return &FieldError{
		Op:      op,
		Member:  member,
		Message: err.Error(),
		Err:     err,
	}
}

// newBlobError creates a FieldError for legacy blob failures
func newBlobError(op, message string, err error) error {
	return &FieldError{
		Op:      op,
		Message: fmt.Sprintf("%s: %v", message, err),
		Err:     ErrBlobCorrupt,
	}
}

// newStreamError creates a FieldError for streaming reader failures
func newStreamError(op string, err error) error {
	return &FieldError{
		Op:      op,
		Message: err.Error(),
		Err:     ErrStreamCorrupt,
	}
}

// newParseError creates a FieldError for malformed JSON input
func newParseError(op string, err error) error {
	return &FieldError{
		Op:      op,
		Message: err.Error(),
		Err:     ErrInvalidJSON,
	}
}

// newOperationError creates a FieldError for setup failures
func newOperationError(op, message string) error {
	return &FieldError{
		Op:      op,
		Message: message,
		Err:     ErrOperationFailed,
	}
}
