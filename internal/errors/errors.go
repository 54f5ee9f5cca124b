package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a contract violation.
type ErrorCode int

const (
	// InvalidArgument means the caller broke a precondition: an index out of range, a missing value, a component that
	// is not properly escaped or a malformed delimiter. Always fixable by the caller.
	InvalidArgument ErrorCode = iota + 1
	// InvalidState means a class invariant was found broken when checked, i.e. the receiver was corrupted earlier.
	InvalidState
	// MethodFailed means a postcondition the method itself guarantees did not hold after it ran.
	MethodFailed
	// ServiceFailure wraps the failure of a composite operation (e.g. a tree-wide search) together with its cause.
	ServiceFailure
)

func (c ErrorCode) String() string {
	switch c {
	case InvalidArgument:
		return "invalid argument"
	case InvalidState:
		return "invalid state"
	case MethodFailed:
		return "method failed"
	case ServiceFailure:
		return "service failure"
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

func ErrorIsCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}

type errorStruct struct {
	c   ErrorCode
	s   string
	err error
}

var _ error = (*errorStruct)(nil)
var _ hasCode = (*errorStruct)(nil)

func (e *errorStruct) code() ErrorCode {
	return e.c
}

func (e *errorStruct) Error() string {
	return e.s
}

func (e *errorStruct) Unwrap() error {
	return e.err
}

type hasCode interface {
	code() ErrorCode
}

func NewError(code ErrorCode, s string) error {
	return &errorStruct{
		c: code,
		s: s,
	}
}

func NewErrorf(code ErrorCode, format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	return &errorStruct{
		c:   code,
		s:   err.Error(),
		err: errors.Unwrap(err),
	}
}

// GetErrorCode returns the code of the outermost error in err's chain that carries one, or 0.
func GetErrorCode(err error) ErrorCode {
	var hasCode hasCode
	if errors.As(err, &hasCode) {
		return hasCode.code()
	}
	return 0
}

// Assert returns nil if condition holds and an error with the given code and message otherwise.
func Assert(condition bool, code ErrorCode, format string, args ...any) error {
	if condition {
		return nil
	}
	return NewErrorf(code, format, args...)
}
