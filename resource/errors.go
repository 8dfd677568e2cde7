package resource

import "fmt"

// ErrorCode classifies a failed invocation. The zero value means no error
type ErrorCode int

const (
	InvalidRequest ErrorCode = iota + 1
	AccessDenied
	NotFound
	NotUpdatable
	InternalFailure
)

// String returns the handler error code name CloudFormation expects
func (c ErrorCode) String() string {
	switch c {
	case InvalidRequest:
		return "InvalidRequest"
	case AccessDenied:
		return "AccessDenied"
	case NotFound:
		return "NotFound"
	case NotUpdatable:
		return "NotUpdatable"
	case InternalFailure:
		return "InternalFailure"
	default:
		return ""
	}
}

// HandlerError is the typed failure every operation returns
type HandlerError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func newError(code ErrorCode, format string, args ...any) *HandlerError {
	return &HandlerError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func (e *HandlerError) Error() string {
	return e.Code.String() + ": " + e.Message
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}
