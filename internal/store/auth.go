package store

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/babanaplo/babanaplo/internal/models"
	"github.com/babanaplo/babanaplo/internal/services"
	"github.com/babanaplo/babanaplo/internal/token"
)

// AuthStore tracks the session's authentication state and the user's profile
type AuthStore struct {
	state
	authed  bool
	profile *models.UserProfile

	auth     services.AuthService
	profiles services.ProfileService
	logger   *logrus.Logger
}

// NewAuthStore creates an auth store. The initial authentication state comes
// from the persisted token, so a restarted client stays logged in.
func NewAuthStore(auth services.AuthService, profiles services.ProfileService, tokens token.Provider, logger *logrus.Logger) *AuthStore {
	s := &AuthStore{auth: auth, profiles: profiles, logger: logger}
	if tok, err := tokens.Token(); err == nil && tok != "" {
		s.authed = true
	}
	return s
}

// IsAuthenticated reports whether the session holds a token
func (s *AuthStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authed
}

// Profile returns the cached user profile, or nil before LoadProfile
func (s *AuthStore) Profile() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Login authenticates with the backend; the token is persisted by the
// auth service before the store flips to authenticated.
func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	ticket := s.begin()
	_, err := s.auth.Login(ctx, &models.LoginData{Email: email, Password: password})
	if err != nil {
		s.logger.WithError(err).Error("login failed")
		s.finish(ticket, "Hiba történt a bejelentkezés során", nil)
		return err
	}
	s.finish(ticket, "", func() { s.authed = true })
	return nil
}

// Register creates an account; on success the user is logged in immediately
func (s *AuthStore) Register(ctx context.Context, email, password, fullName string) error {
	ticket := s.begin()
	_, err := s.auth.Register(ctx, &models.RegisterData{Email: email, Password: password, FullName: fullName})
	if err != nil {
		s.logger.WithError(err).Error("registration failed")
		s.finish(ticket, "Hiba történt a regisztráció során", nil)
		return err
	}
	s.finish(ticket, "", func() { s.authed = true })
	return nil
}

// Logout drops the session. It always succeeds locally, whatever the token
// store does.
func (s *AuthStore) Logout() {
	s.auth.Logout()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authed = false
	s.profile = nil
	s.errMsg = ""
}

// LoadProfile fetches the user's profile
func (s *AuthStore) LoadProfile(ctx context.Context) error {
	ticket := s.begin()
	profile, err := s.profiles.GetProfile(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to load profile")
		s.finish(ticket, "Hiba történt a profil lekérése során", nil)
		return err
	}
	s.finish(ticket, "", func() { s.profile = profile })
	return nil
}

// UpdateProfile applies a partial profile update
func (s *AuthStore) UpdateProfile(ctx context.Context, data *models.UpdateProfileData) error {
	ticket := s.begin()
	profile, err := s.profiles.UpdateProfile(ctx, data)
	if err != nil {
		s.logger.WithError(err).Error("failed to update profile")
		s.finish(ticket, "Hiba történt a profil frissítése során", nil)
		return err
	}
	s.finish(ticket, "", func() { s.profile = profile })
	return nil
}

// UploadProfileImage uploads a new profile image and records its URL on the
// cached profile.
func (s *AuthStore) UploadProfileImage(ctx context.Context, localPath string) error {
	ticket := s.begin()
	imageURL, err := s.profiles.UploadProfileImage(ctx, localPath)
	if err != nil {
		s.logger.WithError(err).Error("failed to upload profile image")
		s.finish(ticket, "Hiba történt a profil kép feltöltése során", nil)
		return err
	}
	s.finish(ticket, "", func() {
		if s.profile != nil {
			s.profile.ProfileImage = &imageURL
		}
	})
	return nil
}
