package budgetflo

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	internalTypes "github.com/AyzeysDev/budgetflo-platform-sub002/internal/types"
)

// MockTransport is a testify mock for the Transport interface. Its Do
// expectation returns a canned JSON body as the first return value,
// which gets unmarshalled into the caller's result.
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Do(ctx context.Context, method, path string, body, result interface{}) error {
	args := m.Called(ctx, method, path, body, result)

	if err := args.Error(1); err != nil {
		return err
	}

	if raw, ok := args.Get(0).(string); ok && raw != "" && result != nil {
		if err := json.Unmarshal([]byte(raw), result); err != nil {
			return err
		}
	}

	return nil
}

func (m *MockTransport) SetAuth(token string) {
	m.Called(token)
}

func (m *MockTransport) SetSession(session *internalTypes.Session) {
	m.Called(session)
}

// newTestClient wires a client around a mock transport
func newTestClient(transport *MockTransport) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		transport: transport,
		options:   &ClientOptions{},
	}
	c.initServices()
	return c
}
