package services

import (
	"context"
	"fmt"
	"time"

	"github.com/babanaplo/babanaplo/internal/api"
	"github.com/babanaplo/babanaplo/internal/models"
)

const feedingName = "Etetési adat"

type feedingService struct {
	client *api.Client
}

// NewFeedingService creates the HTTP-backed feeding service
func NewFeedingService(client *api.Client) FeedingService {
	return &feedingService{client: client}
}

func (s *feedingService) GetAllByBaby(ctx context.Context, babyID int64) ([]*models.Feeding, error) {
	var feedings []*models.Feeding
	if err := s.client.Get(ctx, fmt.Sprintf("/feeding/baby/%d", babyID), nil, &feedings); err != nil {
		return nil, api.Normalize(err, feedingName, opGet)
	}
	return feedings, nil
}

func (s *feedingService) GetByID(ctx context.Context, id int64) (*models.Feeding, error) {
	feeding := &models.Feeding{}
	if err := s.client.Get(ctx, fmt.Sprintf("/feeding/%d", id), nil, feeding); err != nil {
		return nil, api.Normalize(err, feedingName, opGet)
	}
	return feeding, nil
}

func (s *feedingService) Create(ctx context.Context, data *models.FeedingData) (*models.Feeding, error) {
	feeding := &models.Feeding{}
	if err := s.client.Post(ctx, "/feeding", data, feeding); err != nil {
		return nil, api.Normalize(err, feedingName, opCreate)
	}
	return feeding, nil
}

func (s *feedingService) Update(ctx context.Context, id int64, feeding *models.Feeding) (*models.Feeding, error) {
	updated := &models.Feeding{}
	if err := s.client.Put(ctx, fmt.Sprintf("/feeding/%d", id), feeding, updated); err != nil {
		return nil, api.Normalize(err, feedingName, opUpdate)
	}
	return updated, nil
}

func (s *feedingService) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("/feeding/%d", id)); err != nil {
		return api.Normalize(err, feedingName, opDelete)
	}
	return nil
}

func (s *feedingService) GetByDateRange(ctx context.Context, babyID int64, start, end time.Time) ([]*models.Feeding, error) {
	var feedings []*models.Feeding
	path := fmt.Sprintf("/feeding/baby/%d/range", babyID)
	if err := s.client.Get(ctx, path, rangeQuery(start, end), &feedings); err != nil {
		return nil, api.Normalize(err, feedingName, opByRange)
	}
	return feedings, nil
}
