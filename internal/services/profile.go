package services

import (
	"context"

	"github.com/babanaplo/babanaplo/internal/api"
	"github.com/babanaplo/babanaplo/internal/models"
)

const (
	profileName      = "Profil"
	profileImageName = "Profil kép"
)

type profileService struct {
	client *api.Client
}

// NewProfileService creates the HTTP-backed profile service
func NewProfileService(client *api.Client) ProfileService {
	return &profileService{client: client}
}

func (s *profileService) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	profile := &models.UserProfile{}
	if err := s.client.Get(ctx, "/user/profile", nil, profile); err != nil {
		return nil, api.Normalize(err, profileName, opGet)
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, data *models.UpdateProfileData) (*models.UserProfile, error) {
	profile := &models.UserProfile{}
	if err := s.client.Put(ctx, "/user/profile", data, profile); err != nil {
		return nil, api.Normalize(err, profileName, opUpdate)
	}
	return profile, nil
}

// UploadProfileImage posts the image at localPath as multipart form data and
// returns the URL the server stored it under.
func (s *profileService) UploadProfileImage(ctx context.Context, localPath string) (string, error) {
	var resp struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := s.client.PostMultipart(ctx, "/user/profile/image", localPath, &resp); err != nil {
		return "", api.Normalize(err, profileImageName, opUpload)
	}
	return resp.ImageURL, nil
}
