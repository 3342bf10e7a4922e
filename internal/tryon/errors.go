package tryon

import "fmt"

// Kind classifies a workflow failure so the HTTP layer can map it to a
// status code without parsing messages.
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindForbidden  Kind = "forbidden"
	KindValidation Kind = "validation"
	KindRemote     Kind = "remote_service"
	KindIO         Kind = "io"
)

// Error is the single failure value the workflow boundary produces; no
// lower-level error escapes Generate unwrapped.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}
