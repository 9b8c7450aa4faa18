package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	t.Parallel()

	plain := NotFound("book not found")
	assert.Equal(t, "book not found", plain.Error())

	cause := stderrors.New("connection refused")
	wrapped := Wrap(cause, ErrCodeUnavailable, "backend request failed")
	assert.Equal(t, "backend request failed: connection refused", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("root cause")
	wrapped := Wrap(cause, ErrCodeInternal, "wrapped")
	assert.ErrorIs(t, wrapped, cause)

	// Another fmt.Errorf layer still unwraps down to the AppError.
	outer := fmt.Errorf("handler: %w", wrapped)
	assert.True(t, IsInternal(outer))
}

func TestCodePredicates(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		pred func(error) bool
	}{
		{NotFound("x"), IsNotFound},
		{Conflict("x"), IsConflict},
		{Validation("x"), IsValidation},
		{Unauthorized("x"), IsUnauthorized},
		{Forbidden("x"), IsForbidden},
		{Unavailable("x"), IsUnavailable},
		{Internal("x"), IsInternal},
	}
	for _, tc := range cases {
		assert.True(t, tc.pred(tc.err), "predicate for %v", GetCode(tc.err))
	}

	assert.False(t, IsNotFound(Validation("x")))
	assert.False(t, IsUnauthorized(nil))
	assert.False(t, IsForbidden(stderrors.New("plain")))
}

func TestWrap_NilCause(t *testing.T) {
	t.Parallel()

	require.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
	require.Nil(t, Wrapf(nil, ErrCodeInternal, "ignored %d", 1))
}

func TestValidationField(t *testing.T) {
	t.Parallel()

	err := ValidationField("email", "email is not a valid address")
	assert.True(t, IsValidation(err))
	assert.Equal(t, "email", GetField(err))
	assert.Equal(t, "", GetField(stderrors.New("plain")))
}

func TestGetCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ErrCodeForbidden, GetCode(Forbidden("nope")))
	assert.Equal(t, ErrorCode(""), GetCode(stderrors.New("plain")))
}
