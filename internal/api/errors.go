package api

import (
	"errors"
	"fmt"

	"livadm/internal/reconcile"
)

// TransportError wraps a network-level failure: no response obtained.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError is a response with a non-success status. Message is the
// human-readable text extracted from a structured body when the server
// sent one, else the generic status-coded fallback.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server status %d: %s", e.Status, e.Message)
}

// PayloadError is a success status whose body failed to decode into the
// action kind's result shape.
type PayloadError struct {
	Kind reconcile.Kind
	Err  error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("payload for %s: %v", e.Kind, e.Err)
}

func (e *PayloadError) Unwrap() error { return e.Err }

// ToastMessage maps an exchange failure to the operator-facing toast
// text: extracted server messages pass through, everything else stays
// deliberately generic.
func ToastMessage(err error) string {
	var srv *ServerError
	if errors.As(err, &srv) {
		return srv.Message
	}
	var payload *PayloadError
	if errors.As(err, &payload) {
		return "Unexpected response from server"
	}
	return "Unexpected error"
}
