package connect

import (
	"fmt"
	"net/http"
)

// AuthError means the session could not be established: missing or
// invalid credentials, or a malformed authentication response.
type AuthError struct {
	Message      string
	StatusCode   int
	ResponseBody string
}

func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s | status %d | response: %s", e.Message, e.StatusCode, e.ResponseBody)
	}
	return e.Message
}

func (e *AuthError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// Error is a failed call to a data endpoint, it carries the HTTP status
// and the raw response body for the operator diagnostic.
type Error struct {
	Operation    string
	Message      string
	StatusCode   int
	ResponseBody string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Operation, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s | status %d", msg, e.StatusCode)
	}
	if e.ResponseBody != "" {
		msg = fmt.Sprintf("%s | response: %s", msg, e.ResponseBody)
	}
	return msg
}

// ConflictError means the service denied the connector creation.
type ConflictError struct {
	StatusCode   int
	ResponseBody string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("connector creation denied | status %d | response: %s", e.StatusCode, e.ResponseBody)
}
