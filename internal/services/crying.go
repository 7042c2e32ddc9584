package services

import (
	"context"
	"fmt"
	"time"

	"github.com/babanaplo/babanaplo/internal/api"
	"github.com/babanaplo/babanaplo/internal/models"
)

const cryingName = "Sírási adat"

type cryingService struct {
	client *api.Client
}

// NewCryingService creates the HTTP-backed crying period service
func NewCryingService(client *api.Client) CryingService {
	return &cryingService{client: client}
}

func (s *cryingService) GetAllByBaby(ctx context.Context, babyID int64) ([]*models.CryingPeriod, error) {
	var periods []*models.CryingPeriod
	if err := s.client.Get(ctx, fmt.Sprintf("/crying/baby/%d", babyID), nil, &periods); err != nil {
		return nil, api.Normalize(err, cryingName, opGet)
	}
	return periods, nil
}

func (s *cryingService) GetByID(ctx context.Context, id int64) (*models.CryingPeriod, error) {
	period := &models.CryingPeriod{}
	if err := s.client.Get(ctx, fmt.Sprintf("/crying/%d", id), nil, period); err != nil {
		return nil, api.Normalize(err, cryingName, opGet)
	}
	return period, nil
}

func (s *cryingService) Create(ctx context.Context, data *models.CryingData) (*models.CryingPeriod, error) {
	period := &models.CryingPeriod{}
	if err := s.client.Post(ctx, "/crying", data, period); err != nil {
		return nil, api.Normalize(err, cryingName, opCreate)
	}
	return period, nil
}

func (s *cryingService) Update(ctx context.Context, id int64, crying *models.CryingPeriod) (*models.CryingPeriod, error) {
	updated := &models.CryingPeriod{}
	if err := s.client.Put(ctx, fmt.Sprintf("/crying/%d", id), crying, updated); err != nil {
		return nil, api.Normalize(err, cryingName, opUpdate)
	}
	return updated, nil
}

func (s *cryingService) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("/crying/%d", id)); err != nil {
		return api.Normalize(err, cryingName, opDelete)
	}
	return nil
}

func (s *cryingService) GetByDateRange(ctx context.Context, babyID int64, start, end time.Time) ([]*models.CryingPeriod, error) {
	var periods []*models.CryingPeriod
	path := fmt.Sprintf("/crying/baby/%d/range", babyID)
	if err := s.client.Get(ctx, path, rangeQuery(start, end), &periods); err != nil {
		return nil, api.Normalize(err, cryingName, opByRange)
	}
	return periods, nil
}
