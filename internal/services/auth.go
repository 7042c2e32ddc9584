package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/babanaplo/babanaplo/internal/api"
	"github.com/babanaplo/babanaplo/internal/models"
)

const (
	loginName    = "Bejelentkezési"
	registerName = "Regisztrációs"
)

// TokenWriter is the write side of the token store the auth service needs
type TokenWriter interface {
	Save(token, expiration string) error
	Clear() error
}

type authService struct {
	client *api.Client
	tokens TokenWriter
	logger *logrus.Logger
}

// NewAuthService creates the HTTP-backed auth service. Successful logins and
// registrations persist the bearer token through the given writer.
func NewAuthService(client *api.Client, tokens TokenWriter, logger *logrus.Logger) AuthService {
	return &authService{client: client, tokens: tokens, logger: logger}
}

// Login posts credentials and persists the returned token on success
func (s *authService) Login(ctx context.Context, data *models.LoginData) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.client.Post(ctx, "/auth/login", data, &resp); err != nil {
		return nil, api.Normalize(err, loginName, "")
	}
	if err := s.tokens.Save(resp.Token, resp.Expiration); err != nil {
		return nil, api.Normalize(err, loginName, "")
	}
	s.logger.WithField("email", data.Email).Info("logged in")
	return &resp, nil
}

// Register creates an account and persists the returned token, so a new user
// is logged in immediately.
func (s *authService) Register(ctx context.Context, data *models.RegisterData) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.client.Post(ctx, "/auth/register", data, &resp); err != nil {
		return nil, api.Normalize(err, registerName, "")
	}
	if err := s.tokens.Save(resp.Token, resp.Expiration); err != nil {
		return nil, api.Normalize(err, registerName, "")
	}
	s.logger.WithField("email", data.Email).Info("registered")
	return &resp, nil
}

// Logout removes the persisted session. It never fails: a storage error is
// logged and swallowed so logging out always succeeds locally.
func (s *authService) Logout() {
	if err := s.tokens.Clear(); err != nil {
		s.logger.WithError(err).Error("Kijelentkezési hiba")
	}
}
