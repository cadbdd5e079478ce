package remote

import (
	"errors"
	"fmt"
)

// AuthError indicates an unauthorized or forbidden response (401/403).
// Observing it anywhere must clear the stored session; the transport
// itself only classifies and reports.
type AuthError struct {
	Status int
	Detail string
}

func (e *AuthError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("unauthorized: %s", e.Detail)
	}
	return fmt.Sprintf("unauthorized (status %d)", e.Status)
}

// ValidationError indicates the server rejected the input (400/422).
// Detail carries the server's message verbatim so callers can
// distinguish causes (e.g. duplicate username vs duplicate email).
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "invalid request"
}

// NotFoundError indicates a 404 response.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Path)
}

// ServerError indicates a 5xx response.
type ServerError struct {
	Status int
	Detail string
}

func (e *ServerError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server error (status %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("server error (status %d)", e.Status)
}

// NetworkError indicates a transport-level failure (DNS, refused
// connection, timeout). Indistinguishable from "server unreachable".
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("service unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsAuth reports whether err classifies as an authorization failure.
func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// IsValidation reports whether err classifies as a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err classifies as a missing resource.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// IsNetwork reports whether err classifies as a transport failure.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsServer reports whether err classifies as a 5xx failure.
func IsServer(err error) bool {
	var se *ServerError
	return errors.As(err, &se)
}
