package services

import (
	"context"
	"fmt"
	"time"

	"github.com/babanaplo/babanaplo/internal/api"
	"github.com/babanaplo/babanaplo/internal/models"
)

const growthName = "Növekedési adat"

type growthService struct {
	client *api.Client
}

// NewGrowthService creates the HTTP-backed growth record service
func NewGrowthService(client *api.Client) GrowthService {
	return &growthService{client: client}
}

func (s *growthService) GetAllByBaby(ctx context.Context, babyID int64) ([]*models.Growth, error) {
	var records []*models.Growth
	if err := s.client.Get(ctx, fmt.Sprintf("/growth/baby/%d", babyID), nil, &records); err != nil {
		return nil, api.Normalize(err, growthName, opGet)
	}
	return records, nil
}

func (s *growthService) GetByID(ctx context.Context, id int64) (*models.Growth, error) {
	record := &models.Growth{}
	if err := s.client.Get(ctx, fmt.Sprintf("/growth/%d", id), nil, record); err != nil {
		return nil, api.Normalize(err, growthName, opGet)
	}
	return record, nil
}

func (s *growthService) Create(ctx context.Context, data *models.GrowthData) (*models.Growth, error) {
	record := &models.Growth{}
	if err := s.client.Post(ctx, "/growth", data, record); err != nil {
		return nil, api.Normalize(err, growthName, opCreate)
	}
	return record, nil
}

func (s *growthService) Update(ctx context.Context, id int64, growth *models.Growth) (*models.Growth, error) {
	updated := &models.Growth{}
	if err := s.client.Put(ctx, fmt.Sprintf("/growth/%d", id), growth, updated); err != nil {
		return nil, api.Normalize(err, growthName, opUpdate)
	}
	return updated, nil
}

func (s *growthService) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("/growth/%d", id)); err != nil {
		return api.Normalize(err, growthName, opDelete)
	}
	return nil
}

func (s *growthService) GetByDateRange(ctx context.Context, babyID int64, start, end time.Time) ([]*models.Growth, error) {
	var records []*models.Growth
	path := fmt.Sprintf("/growth/baby/%d/range", babyID)
	if err := s.client.Get(ctx, path, rangeQuery(start, end), &records); err != nil {
		return nil, api.Normalize(err, growthName, opByRange)
	}
	return records, nil
}
