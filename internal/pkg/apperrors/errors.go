// Package apperrors defines the error kinds every booking and ride transition
// can fail with. Handlers map kinds to HTTP statuses; callers branch with
// errors.Is. Business-rule kinds are deterministic and must never be retried;
// ErrRemoteUnavailable is the only kind a caller may retry.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound indicates the referenced ride, booking or live ride does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden indicates the caller is not the authorized actor for the transition
	ErrForbidden = errors.New("caller is not authorized for this action")

	// ErrSelfBooking indicates a passenger attempted to book their own ride
	ErrSelfBooking = errors.New("cannot book your own ride")

	// ErrInvalidTransition indicates the requested status change is not the legal next state
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrCapacityExceeded indicates the requested seats exceed availability
	ErrCapacityExceeded = errors.New("not enough seats available")

	// ErrDuplicateBooking indicates the passenger already holds an active booking on the ride
	ErrDuplicateBooking = errors.New("an active booking already exists for this ride")

	// ErrDuplicateReview indicates a review was already submitted for this ride pairing
	ErrDuplicateReview = errors.New("review already submitted for this ride")

	// ErrOperationInProgress indicates a same-kind mutation is already in flight
	ErrOperationInProgress = errors.New("operation already in progress")

	// ErrRemoteUnavailable indicates a store or network failure, distinct from
	// business-rule errors so callers can decide to retry
	ErrRemoteUnavailable = errors.New("remote store unavailable")
)

// HTTPStatus maps an error kind to the HTTP status the handlers respond with
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrSelfBooking):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrCapacityExceeded), errors.Is(err, ErrDuplicateBooking),
		errors.Is(err, ErrDuplicateReview), errors.Is(err, ErrOperationInProgress):
		return http.StatusConflict
	case errors.Is(err, ErrRemoteUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// codes are the wire names of the error kinds. Several kinds share an HTTP
// status, so the rides API responds with the code and the coordinator maps it
// back; the status alone cannot round-trip the taxonomy.
var codes = map[string]error{
	"not_found":             ErrNotFound,
	"forbidden":             ErrForbidden,
	"self_booking":          ErrSelfBooking,
	"invalid_transition":    ErrInvalidTransition,
	"capacity_exceeded":     ErrCapacityExceeded,
	"duplicate_booking":     ErrDuplicateBooking,
	"duplicate_review":      ErrDuplicateReview,
	"operation_in_progress": ErrOperationInProgress,
	"remote_unavailable":    ErrRemoteUnavailable,
}

// Code returns the wire name of an error's kind, or empty for errors outside
// the taxonomy.
func Code(err error) string {
	for code, kind := range codes {
		if errors.Is(err, kind) {
			return code
		}
	}
	return ""
}

// FromCode converts a wire code back to its error kind, or nil when unknown
func FromCode(code string) error {
	return codes[code]
}

// FromHTTPStatus converts an HTTP status received from the rides API back to
// the nearest error kind. Used as the fallback when a response carries no
// error code.
func FromHTTPStatus(status int) error {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusUnprocessableEntity:
		return ErrInvalidTransition
	case http.StatusConflict:
		return ErrDuplicateBooking
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return ErrRemoteUnavailable
	default:
		return ErrRemoteUnavailable
	}
}

// Retryable reports whether a failed read may be retried with backoff.
// Business-rule violations are deterministic and never retryable.
func Retryable(err error) bool {
	return errors.Is(err, ErrRemoteUnavailable)
}
