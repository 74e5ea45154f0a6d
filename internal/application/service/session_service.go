package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/gateway"
	"github.com/opticore/optipos/internal/domain/store"
	"github.com/opticore/optipos/pkg/apperror"
	"github.com/opticore/optipos/pkg/utils"
)

// SessionService manages terminal sessions: it exchanges credentials with the
// store API, caches the resulting profile locally, and issues the terminal's
// own JWT so per-request validation never leaves the box.
type SessionService struct {
	auth       gateway.AuthGateway
	sessions   store.SessionStore
	jwtManager *utils.JWTManager
	ttl        time.Duration
}

// NewSessionService creates a new session service
func NewSessionService(
	auth gateway.AuthGateway,
	sessions store.SessionStore,
	jwtManager *utils.JWTManager,
	ttl time.Duration,
) *SessionService {
	return &SessionService{
		auth:       auth,
		sessions:   sessions,
		jwtManager: jwtManager,
		ttl:        ttl,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput carries the terminal token handed to the client and the cached
// session behind it.
type LoginOutput struct {
	Token   string
	Session *entity.Session
}

// Login authenticates against the store API and opens a terminal session. The
// password is bcrypt-hashed into the session so privileged payment mutations
// can demand re-entry later without another round trip.
func (s *SessionService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	result, err := s.auth.Login(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	reauthHash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		ID:         uuid.NewString(),
		Token:      result.Token,
		User:       result.User,
		ReauthHash: reauthHash,
		CreatedAt:  time.Now(),
	}
	if err := s.sessions.Save(ctx, session, s.ttl); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateSessionToken(
		session.ID,
		session.User.ID,
		session.User.Email,
		string(session.User.Role),
		session.User.Permissions,
	)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{Token: token, Session: session}, nil
}

// Resolve loads the session behind a validated terminal token.
func (s *SessionService) Resolve(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.ErrNoSession
	}
	return session, nil
}

// RefreshProfile re-fetches the authenticated profile from the store API and
// updates the cached session, so permission changes land without re-login.
func (s *SessionService) RefreshProfile(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := s.Resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := s.auth.Me(ctx)
	if err != nil {
		return nil, err
	}

	session.User = *user
	if err := s.sessions.Save(ctx, session, s.ttl); err != nil {
		return nil, err
	}
	return session, nil
}

// Logout discards the terminal session.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// Reauthorize verifies the account password against the hash captured at
// login. Privileged payment mutations call this before touching the store API.
func (s *SessionService) Reauthorize(ctx context.Context, sessionID, password string) error {
	session, err := s.Resolve(ctx, sessionID)
	if err != nil {
		return err
	}
	if password == "" || session.ReauthHash == "" {
		return apperror.ErrReauthRequired
	}
	if !utils.CheckPasswordHash(password, session.ReauthHash) {
		return apperror.ErrReauthRequired
	}
	return nil
}
