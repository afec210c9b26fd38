package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors wrapped by [RequestError].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
	ErrMalformedResponse   = errors.New("malformed response")
	ErrTransport           = errors.New("transport failure")
)

// RequestError describes a failed search request.
//
// Kind is one of the sentinels above. Cause holds the underlying error when
// there is one (a network error, a JSON decoding error). StatusCode is zero
// when no response was received.
type RequestError struct {
	Kind       error
	Cause      error
	StatusCode int
	// Message is the "message" field of a JSON error body, if present.
	Message string
	Body    []byte
}

func (e *RequestError) Error() string {
	msg := e.Kind.Error()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (http %d)", msg, e.StatusCode)
	}
	switch {
	case e.Message != "":
		msg += ": " + e.Message
	case e.Cause != nil:
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both Kind and Cause to errors.Is and errors.As.
func (e *RequestError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// Status returns the HTTP status text of the response, or an empty string
// when no response was received.
func (e *RequestError) Status() string {
	if e.StatusCode == 0 {
		return ""
	}
	return http.StatusText(e.StatusCode)
}
