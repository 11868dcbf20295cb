package response

import (
	"errors"
	"fmt"
)

type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}

// NewErrorf builds an Error whose message is formatted at the call site.
// A %w verb keeps the cause reachable through errors.Is / errors.As.
func NewErrorf(code int, format string, args ...interface{}) error {
	return &Error{code, fmt.Errorf(format, args...)}
}
