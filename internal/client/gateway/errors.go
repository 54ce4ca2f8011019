package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed call.
type Kind int

const (
	KindBusiness Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindServer
	KindHTTPStatus
	KindNoResponse
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindBusiness:
		return "business"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	case KindHTTPStatus:
		return "http_status"
	case KindNoResponse:
		return "no_response"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

const (
	msgUnknownBusiness = "unknown business error"
	msgSessionExpired  = "session expired, please log in again"
	msgForbidden       = "insufficient permissions"
	msgNotFound        = "endpoint not found"
	msgServer          = "server error"
	msgNoResponse      = "no response from server, check connectivity"
	msgMalformed       = "malformed response from server"
)

var (
	// ErrUnauthorized matches any *Error raised by a 401, whether it came as
	// an envelope code or an HTTP status.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnavailable matches any *Error raised when no response was received.
	ErrUnavailable = errors.New("server unavailable")
)

// Error is the uniform failure returned by every gateway call. Error()
// returns Message only, which is safe to show to the user.
type Error struct {
	Kind    Kind
	Code    int // envelope code, 0 when the failure did not come from an envelope
	Status  int // HTTP status, 0 when there was no response
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Kind == KindUnauthorized
	case ErrUnavailable:
		return e.Kind == KindNoResponse
	}
	return false
}

// businessError keeps the server's message. A 401 in either the code or the
// HTTP status still makes it KindUnauthorized.
func businessError(code, status int, message string) *Error {
	if message == "" {
		message = msgUnknownBusiness
	}
	kind := KindBusiness
	if code == codeUnauthorized || status == http.StatusUnauthorized {
		kind = KindUnauthorized
	}
	return &Error{Kind: kind, Code: code, Status: status, Message: message}
}

// statusError classifies a non-2xx response that carried no usable envelope.
func statusError(status int) *Error {
	e := &Error{Status: status}
	switch status {
	case 401:
		e.Kind, e.Message = KindUnauthorized, msgSessionExpired
	case 403:
		e.Kind, e.Message = KindForbidden, msgForbidden
	case 404:
		e.Kind, e.Message = KindNotFound, msgNotFound
	case 500:
		e.Kind, e.Message = KindServer, msgServer
	default:
		e.Kind, e.Message = KindHTTPStatus, fmt.Sprintf("network error (%d)", status)
	}
	return e
}

func noResponseError(err error) *Error {
	return &Error{Kind: KindNoResponse, Message: msgNoResponse, Err: err}
}

func malformedError(status int, err error) *Error {
	return &Error{Kind: KindMalformed, Status: status, Message: msgMalformed, Err: err}
}
