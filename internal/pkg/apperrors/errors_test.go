package apperrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_RoundTripsEveryKind(t *testing.T) {
	kinds := []error{
		ErrNotFound,
		ErrForbidden,
		ErrSelfBooking,
		ErrInvalidTransition,
		ErrCapacityExceeded,
		ErrDuplicateBooking,
		ErrDuplicateReview,
		ErrOperationInProgress,
		ErrRemoteUnavailable,
	}

	for _, kind := range kinds {
		code := Code(kind)
		require.NotEmpty(t, code, "kind %v has no wire code", kind)
		assert.ErrorIs(t, FromCode(code), kind)
	}
}

func TestCode_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("requesting 3 seats: %w", ErrCapacityExceeded)
	assert.Equal(t, "capacity_exceeded", Code(wrapped))
}

func TestCode_DistinguishesSharedStatuses(t *testing.T) {
	// these four all answer 409; the code keeps them apart on the wire
	conflicts := []error{ErrCapacityExceeded, ErrDuplicateBooking, ErrDuplicateReview, ErrOperationInProgress}

	seen := make(map[string]bool)
	for _, kind := range conflicts {
		assert.Equal(t, http.StatusConflict, HTTPStatus(kind))
		code := Code(kind)
		assert.False(t, seen[code], "code %q reused", code)
		seen[code] = true
	}
}

func TestCode_UnknownError(t *testing.T) {
	assert.Empty(t, Code(fmt.Errorf("some io failure")))
	assert.Nil(t, FromCode("no_such_code"))
	assert.Nil(t, FromCode(""))
}

func TestFromHTTPStatus_Fallback(t *testing.T) {
	assert.ErrorIs(t, FromHTTPStatus(http.StatusNotFound), ErrNotFound)
	assert.ErrorIs(t, FromHTTPStatus(http.StatusForbidden), ErrForbidden)
	assert.ErrorIs(t, FromHTTPStatus(http.StatusBadGateway), ErrRemoteUnavailable)
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(ErrRemoteUnavailable))
	assert.True(t, Retryable(fmt.Errorf("call failed: %w", ErrRemoteUnavailable)))
	assert.False(t, Retryable(ErrCapacityExceeded))
	assert.False(t, Retryable(ErrDuplicateBooking))
}
