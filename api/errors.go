package api

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"
)

type ErrorKind string

const (
	ErrTimeout      ErrorKind = "TIMEOUT"
	ErrNotFound     ErrorKind = "NOT_FOUND"
	ErrServer       ErrorKind = "SERVER_ERROR"
	ErrNetwork      ErrorKind = "NETWORK_ERROR"
	ErrValidation   ErrorKind = "VALIDATION_ERROR"
	ErrConflict     ErrorKind = "CONFLICT"
	ErrUnauthorized ErrorKind = "UNAUTHORIZED"
)

// Error is the classified failure of one request, after retries. Callers
// branch on Kind to pick the user-facing message and whether to offer a
// manual retry.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (http %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Retryable reports whether the failure class is worth another attempt.
// NOT_FOUND, CONFLICT, UNAUTHORIZED and validation failures are terminal.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case ErrTimeout, ErrNetwork, ErrServer:
		return true
	}
	return false
}

// classify maps a transport error or non-2xx response to the taxonomy.
// Returns nil for successful responses.
func classify(resp *resty.Response, err error) *Error {
	if err != nil {
		if isTimeout(err) {
			return &Error{Kind: ErrTimeout, Message: err.Error()}
		}
		return &Error{Kind: ErrNetwork, Message: err.Error()}
	}
	code := resp.StatusCode()
	switch {
	case code < 300:
		return nil
	case code == http.StatusNotFound:
		return &Error{Kind: ErrNotFound, StatusCode: code, Message: string(resp.Body())}
	case code == http.StatusUnauthorized:
		return &Error{Kind: ErrUnauthorized, StatusCode: code, Message: string(resp.Body())}
	case code == http.StatusConflict:
		return &Error{Kind: ErrConflict, StatusCode: code, Message: string(resp.Body())}
	case code >= 500:
		return &Error{Kind: ErrServer, StatusCode: code, Message: string(resp.Body())}
	case code >= 400:
		return &Error{Kind: ErrValidation, StatusCode: code, Message: string(resp.Body())}
	}
	return &Error{Kind: ErrNetwork, StatusCode: code, Message: string(resp.Body())}
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if ne, ok := err.(net.Error); ok && ne.Timeout() {
		return true
	}
	// resty wraps the url.Error, unwrap through the chain
	type timeout interface{ Timeout() bool }
	for e := err; e != nil; {
		if t, ok := e.(timeout); ok && t.Timeout() {
			return true
		}
		if e == context.DeadlineExceeded {
			return true
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = u.Unwrap()
	}
	return false
}

// AsError extracts the classified *Error from an error chain, nil if the
// error isn't one of ours.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	for e := err; e != nil; {
		if apiErr, ok := e.(*Error); ok {
			return apiErr
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		e = u.Unwrap()
	}
	return nil
}

func IsNotFound(err error) bool {
	e := AsError(err)
	return e != nil && e.Kind == ErrNotFound
}
