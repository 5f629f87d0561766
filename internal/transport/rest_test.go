package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AyzeysDev/budgetflo-platform-sub002/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransport(serverURL string) *RESTTransport {
	tr := NewRESTTransport(&Options{BaseURL: serverURL})
	tr.SetSession(&types.Session{
		Token:     "test-token",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	return tr
}

func TestDo_UnwrapsDataEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/accounts", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"id": "acc-1", "name": "Everyday Checking"}}`))
	}))
	defer server.Close()

	tr := newTestTransport(server.URL)

	var result struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	err := tr.Do(context.Background(), http.MethodGet, "/accounts", nil, &result)

	require.NoError(t, err)
	assert.Equal(t, "acc-1", result.ID)
	assert.Equal(t, "Everyday Checking", result.Name)
}

func TestDo_DecodesBareBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "goal-1"}`))
	}))
	defer server.Close()

	tr := newTestTransport(server.URL)

	var result struct {
		ID string `json:"id"`
	}
	err := tr.Do(context.Background(), http.MethodGet, "/goals/goal-1", nil, &result)

	require.NoError(t, err)
	assert.Equal(t, "goal-1", result.ID)
}

func TestDo_NotAuthenticated(t *testing.T) {
	tr := NewRESTTransport(&Options{BaseURL: "http://localhost:1"})

	err := tr.Do(context.Background(), http.MethodGet, "/accounts", nil, nil)

	assert.ErrorIs(t, err, types.ErrNotAuthenticated)
}

func TestDo_SessionExpired(t *testing.T) {
	tr := NewRESTTransport(&Options{BaseURL: "http://localhost:1"})
	tr.SetSession(&types.Session{
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	err := tr.Do(context.Background(), http.MethodGet, "/accounts", nil, nil)

	assert.ErrorIs(t, err, types.ErrSessionExpired)
}

func TestHandleHTTPError_StatusMapping(t *testing.T) {
	tr := &RESTTransport{}

	tests := []struct {
		name       string
		statusCode int
		body       []byte
		expected   error
	}{
		{"401 maps to not authenticated", http.StatusUnauthorized, nil, types.ErrNotAuthenticated},
		{"403 maps to not authenticated", http.StatusForbidden, nil, types.ErrNotAuthenticated},
		{"404 maps to not found", http.StatusNotFound, nil, types.ErrNotFound},
		{"429 maps to rate limited", http.StatusTooManyRequests, nil, types.ErrRateLimited},
		{"504 wraps server error", http.StatusGatewayTimeout, nil, types.ErrTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tr.handleHTTPError(tt.statusCode, tt.body)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestHandleHTTPError_ServerError_IncludesResponseBody(t *testing.T) {
	tr := &RESTTransport{}

	err := tr.handleHTTPError(500, []byte(`{"error": "Internal server error", "message": "Database connection failed"}`))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "Database connection failed")

	var apiErr *types.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "SERVER_ERROR", apiErr.Code)
	assert.ErrorIs(t, err, types.ErrServerError)
}

func TestHandleHTTPError_BadRequest_PreservesCode(t *testing.T) {
	tr := &RESTTransport{}

	err := tr.handleHTTPError(400, []byte(`{"code": "INVALID_AMOUNT", "message": "amount must be positive"}`))

	var apiErr *types.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "INVALID_AMOUNT", apiErr.Code)
	assert.Equal(t, "amount must be positive", apiErr.Message)
	assert.Equal(t, 400, apiErr.StatusCode)
}
