package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jihopark/moneydash/internal/auth"
)

func TestService_Login(t *testing.T) {
	svc := auth.NewService("0153", "test-secret", time.Hour)

	t.Run("Success", func(t *testing.T) {
		token, err := svc.Login("0153")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NoError(t, svc.Verify(token))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login("1234")
		assert.ErrorIs(t, err, auth.ErrInvalidPassword)
	})
}

func TestService_Verify(t *testing.T) {
	svc := auth.NewService("0153", "test-secret", time.Hour)

	t.Run("Garbage", func(t *testing.T) {
		assert.ErrorIs(t, svc.Verify("not-a-token"), auth.ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := auth.NewService("0153", "other-secret", time.Hour)
		token, err := other.Login("0153")
		require.NoError(t, err)

		assert.ErrorIs(t, svc.Verify(token), auth.ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := auth.NewService("0153", "test-secret", -time.Minute)
		token, err := expired.Login("0153")
		require.NoError(t, err)

		assert.ErrorIs(t, svc.Verify(token), auth.ErrInvalidToken)
	})
}

func TestService_Middleware(t *testing.T) {
	svc := auth.NewService("0153", "test-secret", time.Hour)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := svc.Middleware(next)

	t.Run("ValidToken", func(t *testing.T) {
		token, err := svc.Login("0153")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic abc")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
