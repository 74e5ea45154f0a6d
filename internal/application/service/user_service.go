package service

import (
	"context"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/gateway"
	"github.com/opticore/optipos/pkg/apperror"
)

// UserService fronts user and permission administration.
type UserService struct {
	users gateway.UserGateway
}

// NewUserService creates a new user service
func NewUserService(users gateway.UserGateway) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context, params gateway.ListParams) ([]entity.User, error) {
	return s.users.List(ctx, params)
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	return s.users.Get(ctx, id)
}

func (s *UserService) Create(ctx context.Context, u *entity.User, password string) (*entity.User, error) {
	if u.Email == "" {
		return nil, apperror.NewBadRequestError("Email is required")
	}
	if len(password) < 6 {
		return nil, apperror.NewBadRequestError("Password must be at least 6 characters")
	}
	return s.users.Create(ctx, u, password)
}

func (s *UserService) Update(ctx context.Context, id string, u *entity.User) (*entity.User, error) {
	return s.users.Update(ctx, id, u)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

// Permissions returns the catalog of assignable permission codes.
func (s *UserService) Permissions(ctx context.Context) ([]string, error) {
	return s.users.Permissions(ctx)
}

// SettingsService fronts the global invoice-settings record.
type SettingsService struct {
	settings gateway.SettingsGateway
}

// NewSettingsService creates a new settings service
func NewSettingsService(settings gateway.SettingsGateway) *SettingsService {
	return &SettingsService{settings: settings}
}

func (s *SettingsService) Get(ctx context.Context) (*entity.InvoiceSettings, error) {
	return s.settings.Get(ctx)
}

func (s *SettingsService) Update(ctx context.Context, settings *entity.InvoiceSettings) (*entity.InvoiceSettings, error) {
	if settings.BusinessName == "" {
		return nil, apperror.NewBadRequestError("Business name is required")
	}
	if settings.PaperWidthMM <= 0 {
		return nil, apperror.NewBadRequestError("Paper width must be positive")
	}
	return s.settings.Update(ctx, settings)
}

func (s *SettingsService) UploadLogo(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", apperror.NewBadRequestError("Logo file is empty")
	}
	return s.settings.UploadLogo(ctx, filename, data)
}
