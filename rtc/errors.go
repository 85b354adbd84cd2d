package rtc

import (
	"errors"
	"fmt"
)

type ErrorCode uint32

// Error codes raised by devices and scenes.
const (
	NoError ErrorCode = iota
	UnknownError
	InvalidArgument
	InvalidOperation
	OutOfMemory
	UnsupportedCPU
	Cancelled
)

var (
	ErrUnknownBackend = errors.New("rtc: unknown backend")
	ErrDuplicateName  = errors.New("rtc: backend already registered")
)

func (c ErrorCode) String() string {
	switch c {
	case NoError:
		return "NO_ERROR"
	case UnknownError:
		return "UNKNOWN_ERROR"
	case InvalidArgument:
		return "INVALID_ARGUMENT"
	case InvalidOperation:
		return "INVALID_OPERATION"
	case OutOfMemory:
		return "OUT_OF_MEMORY"
	case UnsupportedCPU:
		return "UNSUPPORTED_CPU"
	case Cancelled:
		return "CANCELLED"
	default:
		return fmt.Sprintf("unknown error code %d", uint32(c))
	}
}

// Callback for errors raised by a device.
type ErrorFunc func(code ErrorCode, msg string)

// A coded error raised by a device or scene.
type Error struct {
	Code ErrorCode
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("rtc: %s (error: %s; code %d)", e.Msg, e.Code, uint32(e.Code))
}

// Extract the error code from err. Returns UnknownError if err does not wrap
// an *Error and NoError if err is nil.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return NoError
	}

	var rtcErr *Error
	if errors.As(err, &rtcErr) {
		return rtcErr.Code
	}
	return UnknownError
}
