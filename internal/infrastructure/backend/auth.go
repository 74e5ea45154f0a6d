package backend

import (
	"context"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/gateway"
)

type authGateway struct {
	client *Client
}

// NewAuthGateway creates the store API auth gateway
func NewAuthGateway(client *Client) gateway.AuthGateway {
	return &authGateway{client: client}
}

func (g *authGateway) Login(ctx context.Context, email, password string) (*gateway.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result gateway.LoginResult
	if err := g.client.post(ctx, "/auth/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (g *authGateway) Me(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := g.client.get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
