package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bookcourier/ui-gateway/internal/errors"
)

func TestDecodeJSON_InvalidBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not-json"))
	w := httptest.NewRecorder()

	var dst struct{ Email string }
	ok := DecodeJSON(w, req, &dst)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_json")
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@b.c","bogus":1}`))
	w := httptest.NewRecorder()

	var dst struct {
		Email string `json:"email"`
	}
	ok := DecodeJSON(w, req, &dst)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatusForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: apperrors.NotFound("gone"), want: http.StatusNotFound},
		{name: "conflict", err: apperrors.Conflict("dup"), want: http.StatusConflict},
		{name: "validation", err: apperrors.Validation("bad"), want: http.StatusUnprocessableEntity},
		{name: "unauthorized", err: apperrors.Unauthorized("who"), want: http.StatusUnauthorized},
		{name: "forbidden", err: apperrors.Forbidden("no"), want: http.StatusForbidden},
		{name: "unavailable", err: apperrors.Unavailable("down"), want: http.StatusBadGateway},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StatusForError(tt.err))
		})
	}
}

func TestWriteServiceError_Body(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	WriteServiceError(w, apperrors.ValidationField("rating", "rating must be between 1 and 5"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation", body["error"])
	assert.Equal(t, "rating", body["field"])
	assert.Equal(t, "rating must be between 1 and 5", body["message"])
}

func TestWriteServiceError_UnknownErrorIsInternal(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	WriteServiceError(w, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal")
}
