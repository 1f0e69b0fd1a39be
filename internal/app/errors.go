package app

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions the UI handles without surfacing a notice.
var (
	// ErrEmptyQuestion rejects whitespace-only input before any request.
	ErrEmptyQuestion = errors.New("question is empty")
	// ErrRequestInFlight rejects a submission while another is sending.
	ErrRequestInFlight = errors.New("a request is already in flight")
	// ErrSessionComplete rejects submissions on an answered single-turn chat.
	ErrSessionComplete = errors.New("session is complete")
)

// APIError is a non-2xx backend response. The backend sends plain-text error
// bodies; Body carries them verbatim for display.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Body)
}

// AuthError wraps a token acquisition failure. Requests that cannot carry
// credentials never reach the backend.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return "token acquisition failed: " + e.Err.Error()
}

func (e *AuthError) Unwrap() error { return e.Err }

// IsRecoverable reports whether an error should be shown as a dismissible
// notice and leave the session usable. Everything in the taxonomy is
// recoverable; nothing here is fatal to the application.
func IsRecoverable(err error) bool {
	return err != nil
}
