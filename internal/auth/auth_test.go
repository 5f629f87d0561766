package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyzeysDev/budgetflo-platform-sub002/internal/types"
)

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("device-uuid"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"token":  "tok-123",
			"userId": "u-1",
		})
	}))
	defer server.Close()

	svc := NewService(server.URL, server.Client(), nil)
	require.NoError(t, svc.Login(context.Background(), "user@example.com", "secret"))

	session, err := svc.GetSession()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.Token)
	assert.Equal(t, "u-1", session.UserID)
	assert.Equal(t, "user@example.com", session.Email)
	// Default expiry applies when the backend omits one
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), session.ExpiresAt, time.Minute)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{
			"error_code": "INVALID_CREDENTIALS",
			"message":    "wrong email or password",
		})
	}))
	defer server.Close()

	svc := NewService(server.URL, server.Client(), nil)
	err := svc.Login(context.Background(), "user@example.com", "wrong")
	assert.ErrorIs(t, err, types.ErrLoginFailed)
}

func TestLogin_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	svc := NewService(server.URL, server.Client(), nil)
	err := svc.Login(context.Background(), "user@example.com", "secret")
	require.Error(t, err)

	var apiErr *types.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "LOGIN_FAILED", apiErr.Code)
}

func TestGetSession_NotAuthenticated(t *testing.T) {
	svc := NewService("http://localhost", http.DefaultClient, nil)

	_, err := svc.GetSession()
	assert.ErrorIs(t, err, types.ErrNotAuthenticated)
}

func TestLogout_ClearsSessionEvenOnTransportFailure(t *testing.T) {
	svc := NewService("http://127.0.0.1:1", &http.Client{Timeout: 100 * time.Millisecond}, nil)
	svc.SetSession(&types.Session{Token: "tok-123"})

	require.NoError(t, svc.Logout(context.Background()))

	_, err := svc.GetSession()
	assert.ErrorIs(t, err, types.ErrNotAuthenticated)
}

func TestSaveAndLoadSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	svc := NewService("http://localhost", http.DefaultClient, nil)
	svc.SetSession(&types.Session{
		Token:     "tok-123",
		UserID:    "u-1",
		Email:     "user@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	})

	require.NoError(t, svc.SaveSession(path))

	loaded := NewService("http://localhost", http.DefaultClient, nil)
	require.NoError(t, loaded.LoadSession(path))

	session, err := loaded.GetSession()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.Token)
	assert.Equal(t, "user@example.com", session.Email)
}

func TestLoadSession_Expired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	svc := NewService("http://localhost", http.DefaultClient, nil)
	svc.SetSession(&types.Session{
		Token:     "tok-123",
		ExpiresAt: time.Now().Add(-time.Hour),
	})
	require.NoError(t, svc.SaveSession(path))

	loaded := NewService("http://localhost", http.DefaultClient, nil)
	assert.ErrorIs(t, loaded.LoadSession(path), types.ErrSessionExpired)
}

func TestLoadSession_MissingFile(t *testing.T) {
	svc := NewService("http://localhost", http.DefaultClient, nil)
	err := svc.LoadSession(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, types.ErrNotAuthenticated)
}
