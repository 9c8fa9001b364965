package types

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindInvalidRequest    ErrorKind = "invalid_request"
	KindUnauthorized      ErrorKind = "unauthorized"
	KindConfiguration     ErrorKind = "configuration_error"
	KindUpstream          ErrorKind = "upstream_error"
	KindGenerationBlocked ErrorKind = "generation_blocked"
	KindNotFound          ErrorKind = "not_found"
	KindStore             ErrorKind = "store_error"
	KindSchema            ErrorKind = "schema_error"
	KindInternal          ErrorKind = "internal_error"
)

// RelayError is the single error type surfaced at the handler boundary.
// Message is safe to show to callers; Err holds the internal cause and is only logged.
type RelayError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *RelayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *RelayError) Unwrap() error {
	return e.Err
}

func NewInvalidRequest(message string) *RelayError {
	return &RelayError{Kind: KindInvalidRequest, Status: http.StatusBadRequest, Message: message}
}

func NewUnauthorized(message string, err error) *RelayError {
	return &RelayError{Kind: KindUnauthorized, Status: http.StatusUnauthorized, Message: message, Err: err}
}

func NewConfigurationError(message string) *RelayError {
	return &RelayError{Kind: KindConfiguration, Status: http.StatusInternalServerError, Message: message}
}

// NewUpstreamError keeps the upstream status so callers can tell a quota
// rejection (429) from an outage (503). Statuses outside 4xx/5xx become 502.
func NewUpstreamError(status int, body string) *RelayError {
	code := status
	if code < 400 || code > 599 {
		code = http.StatusBadGateway
	}
	return &RelayError{
		Kind:    KindUpstream,
		Status:  code,
		Message: fmt.Sprintf("AI service request failed with status %d", status),
		Err:     fmt.Errorf("upstream body: %s", body),
	}
}

func NewGenerationBlocked(reason string) *RelayError {
	if reason == "" {
		reason = "unknown reason"
	}
	return &RelayError{
		Kind:    KindGenerationBlocked,
		Status:  http.StatusInternalServerError,
		Message: "Content generation blocked: " + reason,
	}
}

func NewNotFound(message string) *RelayError {
	return &RelayError{Kind: KindNotFound, Status: http.StatusInternalServerError, Message: message}
}

func NewStoreError(message string, err error) *RelayError {
	return &RelayError{Kind: KindStore, Status: http.StatusInternalServerError, Message: message, Err: err}
}

func NewSchemaError(message string, err error) *RelayError {
	return &RelayError{Kind: KindSchema, Status: http.StatusInternalServerError, Message: message, Err: err}
}

func NewInternalError(err error) *RelayError {
	return &RelayError{Kind: KindInternal, Status: http.StatusInternalServerError, Message: "Internal server error", Err: err}
}

// AsRelayError returns err as a *RelayError, wrapping anything unknown as an internal error.
func AsRelayError(err error) *RelayError {
	var relayErr *RelayError
	if errors.As(err, &relayErr) {
		return relayErr
	}
	return NewInternalError(err)
}

// IsKind reports whether err is a RelayError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var relayErr *RelayError
	return errors.As(err, &relayErr) && relayErr.Kind == kind
}
