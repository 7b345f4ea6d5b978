package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHelpers_MatchByCode(t *testing.T) {
	if !IsNotFound(ErrNotFound) {
		t.Error("sentinel should match")
	}
	if !IsNotFound(NewAppError(CodeNotFound, "company 3 missing", nil)) {
		t.Error("fresh instance with same code should match")
	}
	if !IsNotFound(fmt.Errorf("loading: %w", ErrNotFound)) {
		t.Error("wrapped error should match")
	}
	if IsNotFound(ErrConflict) {
		t.Error("different code must not match")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("plain error must not match")
	}
	if IsNotFound(nil) {
		t.Error("nil must not match")
	}
}

func TestErrorCode(t *testing.T) {
	if got := ErrorCode(ErrDeleteBlocked); got != CodeDeleteBlocked {
		t.Errorf("got %q; want %q", got, CodeDeleteBlocked)
	}
	if got := ErrorCode(errors.New("boom")); got != CodeInternal {
		t.Errorf("got %q; want %q for non-app errors", got, CodeInternal)
	}
	if got := ErrorCode(nil); got != CodeInternal {
		t.Errorf("got %q; want %q for nil", got, CodeInternal)
	}
}

func TestHTTPStatusCode(t *testing.T) {
	cases := map[error]int{
		ErrNotFound:          http.StatusNotFound,
		ErrConflict:          http.StatusConflict,
		ErrValidation:        http.StatusBadRequest,
		ErrDeleteBlocked:     http.StatusUnprocessableEntity,
		ErrUnauthorized:      http.StatusUnauthorized,
		ErrForbidden:         http.StatusForbidden,
		ErrInternal:          http.StatusInternalServerError,
		errors.New("opaque"): http.StatusInternalServerError,
	}
	for err, want := range cases {
		if got := HTTPStatusCode(err); got != want {
			t.Errorf("HTTPStatusCode(%v)=%d; want %d", err, got, want)
		}
	}

	rateLimited := NewAppError(CodeRateLimited, "slow down", nil)
	if got := HTTPStatusCode(rateLimited); got != http.StatusTooManyRequests {
		t.Errorf("got %d; want 429", got)
	}
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewAppError(CodeInternal, "write failed", cause)

	if err.Error() != "write failed: disk full" {
		t.Errorf("Error()=%q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap should expose the cause")
	}

	bare := NewAppError(CodeValidation, "bad input", nil)
	if bare.Error() != "bad input" {
		t.Errorf("Error()=%q", bare.Error())
	}
}
