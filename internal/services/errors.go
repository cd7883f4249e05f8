package services

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a request failure for the transport layer.
type Kind string

const (
	KindInvalidRequest Kind = "invalid_request"
	KindNotFound       Kind = "not_found"
	KindUpstream       Kind = "upstream_failure"
	KindInternal       Kind = "internal"
)

// Error carries the failure taxonomy kind plus a human-readable detail
// string. The detail is safe to relay verbatim to chat-facing callers.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }

func invalidRequest(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidRequest, Detail: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Detail: fmt.Sprintf(format, args...)}
}

func upstream(err error, format string, args ...any) *Error {
	return &Error{Kind: KindUpstream, Detail: fmt.Sprintf(format, args...), Err: err}
}

// Classify returns the taxonomy kind and detail for any error.
// Unclassified errors are reported as internal.
func Classify(err error) (Kind, string) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, e.Detail
	}
	return KindInternal, "internal error"
}

// HTTPStatus maps a taxonomy kind to its HTTP status class.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
