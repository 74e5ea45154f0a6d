package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/enum"
	"github.com/opticore/optipos/internal/infrastructure/localstore"
	"github.com/opticore/optipos/pkg/apperror"
	"github.com/opticore/optipos/pkg/utils"
)

func TestSessionServiceLogin(t *testing.T) {
	auth := &fakeAuthGateway{
		email:    "cashier@example.com",
		password: "s3cret-pass",
		user:     entity.User{ID: "u1", Email: "cashier@example.com", Role: enum.RoleSalesperson},
	}
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	svc := NewSessionService(auth, localstore.NewMemorySessionStore(), jwtManager, time.Hour)
	ctx := context.Background()

	_, err := svc.Login(ctx, &LoginInput{Email: "cashier@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	out, err := svc.Login(ctx, &LoginInput{Email: "cashier@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "remote-token", out.Session.Token)

	// The terminal token's jti carries the session ID.
	claims, err := jwtManager.ValidateSessionToken(out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Session.ID, claims.ID)
	assert.Equal(t, "u1", claims.UserID)

	session, err := svc.Resolve(ctx, out.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, "cashier@example.com", session.User.Email)
}

func TestSessionServiceResolveUnknown(t *testing.T) {
	svc, _ := newTestSessionService(t)
	_, err := svc.Resolve(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, apperror.ErrNoSession)
}

func TestSessionServiceLogout(t *testing.T) {
	svc, sessionID := newTestSessionService(t)
	ctx := context.Background()

	require.NoError(t, svc.Logout(ctx, sessionID))
	_, err := svc.Resolve(ctx, sessionID)
	assert.ErrorIs(t, err, apperror.ErrNoSession)
}

func TestSessionServiceReauthorize(t *testing.T) {
	svc, sessionID := newTestSessionService(t)
	ctx := context.Background()

	assert.NoError(t, svc.Reauthorize(ctx, sessionID, "s3cret-pass"))
	assert.ErrorIs(t, svc.Reauthorize(ctx, sessionID, "wrong"), apperror.ErrReauthRequired)
	assert.ErrorIs(t, svc.Reauthorize(ctx, sessionID, ""), apperror.ErrReauthRequired)
}
