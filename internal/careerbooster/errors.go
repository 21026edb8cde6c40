package careerbooster

import (
	"errors"
	"fmt"
)

// ErrNoToken is returned when an authenticated call is attempted without an
// active session token. No request is sent in that case.
var ErrNoToken = errors.New("no session token, log in first")

// AuthError reports a rejected credential: either the backend answered 401
// or the token was missing before the request was built.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication failed, log in again"
	}
	return e.Message
}

// PayloadTooLargeError is raised by the local size pre-check or by HTTP 413.
type PayloadTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("file size %d exceeds the %d byte limit", e.Size, e.Limit)
}

// UnsupportedMediaTypeError maps HTTP 415.
type UnsupportedMediaTypeError struct {
	MediaType string
}

func (e *UnsupportedMediaTypeError) Error() string {
	if e.MediaType == "" {
		return "unsupported file type, only PDF is accepted"
	}
	return fmt.Sprintf("unsupported file type %q, only PDF is accepted", e.MediaType)
}

// ValidationError reports locally rejected input before any request is made.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}
	return fmt.Sprintf("invalid input: %v", e.Fields)
}

// ServerError carries any other non-2xx answer together with the raw body so
// the failure can be diagnosed without re-running the request.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %d - %s", e.StatusCode, e.Body)
}

// TransportError means the request never completed at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
