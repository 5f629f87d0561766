package budgetflo

import (
	"context"

	"github.com/AyzeysDev/budgetflo-platform-sub002/internal/auth"
	internalTypes "github.com/AyzeysDev/budgetflo-platform-sub002/internal/types"
)

// authService implements the AuthService interface by delegating to
// the internal auth package and keeping the client's transport in
// sync with the active session.
type authService struct {
	client  *Client
	service *auth.Service
}

// newAuthService creates a new auth service
func newAuthService(client *Client) *authService {
	return &authService{
		client:  client,
		service: auth.NewService(client.baseURL, client.httpClient, client.options.Logger),
	}
}

// Login performs authentication and propagates the session to the
// transport so subsequent requests carry the token
func (s *authService) Login(ctx context.Context, email, password string) error {
	if err := s.service.Login(ctx, email, password); err != nil {
		return err
	}

	session, err := s.service.GetSession()
	if err != nil {
		return err
	}

	s.adopt(session)
	return nil
}

// Logout invalidates the current session
func (s *authService) Logout(ctx context.Context) error {
	err := s.service.Logout(ctx)

	// Local state is cleared regardless of the server call outcome
	s.client.session = nil
	s.client.transport.SetSession(nil)

	return err
}

// GetSession returns the current session
func (s *authService) GetSession() (*Session, error) {
	session, err := s.service.GetSession()
	if err != nil {
		return nil, err
	}
	return convertSession(session), nil
}

// SaveSession saves the session to a file
func (s *authService) SaveSession(path string) error {
	return s.service.SaveSession(path)
}

// LoadSession loads a session from a file and propagates it to the
// transport
func (s *authService) LoadSession(path string) error {
	if err := s.service.LoadSession(path); err != nil {
		return err
	}

	session, err := s.service.GetSession()
	if err != nil {
		return err
	}

	s.adopt(session)
	return nil
}

func (s *authService) adopt(session *internalTypes.Session) {
	s.client.session = convertSession(session)
	s.client.transport.SetSession(session)
}

// convertSession converts an internal session to the public type
func convertSession(session *internalTypes.Session) *Session {
	if session == nil {
		return nil
	}
	return &Session{
		Token:      session.Token,
		UserID:     session.UserID,
		Email:      session.Email,
		ExpiresAt:  session.ExpiresAt,
		DeviceUUID: session.DeviceUUID,
	}
}
