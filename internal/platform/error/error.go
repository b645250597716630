package error

import (
	"fmt"
	"runtime"
)

type Code uint32

const (
	EmptyListErrorCode Code = iota
	InvalidPositionErrorCode
	ListConsumedErrorCode
	NilListErrorCode
	SameListErrorCode
)

func (c Code) String() string {
	switch c {
	case EmptyListErrorCode:
		return "EmptyList"
	case InvalidPositionErrorCode:
		return "InvalidPosition"
	case ListConsumedErrorCode:
		return "ListConsumed"
	case NilListErrorCode:
		return "NilList"
	case SameListErrorCode:
		return "SameList"
	default:
		return fmt.Sprintf("Code(%d)", uint32(c))
	}
}

// StackTraceError wraps any error and captures a stack trace
type StackTraceError struct {
	Msg       string
	Stack     string
	ErrorCode Code
}

func NewStackTraceError(msg string, errorCode Code) *StackTraceError {
	buf := make([]byte, 1024*8)
	n := runtime.Stack(buf, false)
	return &StackTraceError{Msg: msg, Stack: string(buf[:n]), ErrorCode: errorCode}
}

func (e *StackTraceError) Error() string {
	return fmt.Sprintf("%s: %s\nStack trace:\n%s", e.ErrorCode, e.Msg, e.Stack)
}

// Is reports whether target is a StackTraceError with the same code.
func (e *StackTraceError) Is(target error) bool {
	t, ok := target.(*StackTraceError)
	return ok && t.ErrorCode == e.ErrorCode
}

// CodeOf returns the code carried by v if it is a StackTraceError, typically
// the value recovered from a panic.
func CodeOf(v any) (Code, bool) {
	e, ok := v.(*StackTraceError)
	if !ok {
		return 0, false
	}
	return e.ErrorCode, true
}
