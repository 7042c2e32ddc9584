package services

import (
	"context"
	"fmt"

	"github.com/babanaplo/babanaplo/internal/api"
	"github.com/babanaplo/babanaplo/internal/models"
)

const babyName = "Baba"

type babyService struct {
	client *api.Client
}

// NewBabyService creates the HTTP-backed baby service
func NewBabyService(client *api.Client) BabyService {
	return &babyService{client: client}
}

func (s *babyService) GetAll(ctx context.Context) ([]*models.Baby, error) {
	var babies []*models.Baby
	if err := s.client.Get(ctx, "/baby", nil, &babies); err != nil {
		return nil, api.Normalize(err, babyName, opGet)
	}
	return babies, nil
}

func (s *babyService) GetByID(ctx context.Context, id int64) (*models.Baby, error) {
	baby := &models.Baby{}
	if err := s.client.Get(ctx, fmt.Sprintf("/baby/%d", id), nil, baby); err != nil {
		return nil, api.Normalize(err, babyName, opGet)
	}
	return baby, nil
}

func (s *babyService) Create(ctx context.Context, data *models.CreateBabyData) (*models.Baby, error) {
	baby := &models.Baby{}
	if err := s.client.Post(ctx, "/baby", data, baby); err != nil {
		return nil, api.Normalize(err, babyName, opCreate)
	}
	return baby, nil
}

func (s *babyService) Update(ctx context.Context, id int64, data *models.UpdateBabyData) (*models.Baby, error) {
	baby := &models.Baby{}
	if err := s.client.Put(ctx, fmt.Sprintf("/baby/%d", id), data, baby); err != nil {
		return nil, api.Normalize(err, babyName, opUpdate)
	}
	return baby, nil
}

func (s *babyService) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("/baby/%d", id)); err != nil {
		return api.Normalize(err, babyName, opDelete)
	}
	return nil
}
