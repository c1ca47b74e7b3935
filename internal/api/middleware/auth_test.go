package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	var gotUserID uuid.UUID
	var called bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		id, ok := GetUserID(r.Context())
		require.True(t, ok)
		gotUserID = id
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid header passes through", func(t *testing.T) {
		called = false
		userID := uuid.New()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/1", nil)
		req.Header.Set("X-User-ID", userID.String())
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, gotUserID)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		called = false

		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/1", nil)
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed uuid rejected", func(t *testing.T) {
		called = false

		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/1", nil)
		req.Header.Set("X-User-ID", "12345")
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetUserID(req.Context())
	assert.False(t, ok)
}
