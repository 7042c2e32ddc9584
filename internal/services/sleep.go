package services

import (
	"context"
	"fmt"
	"time"

	"github.com/babanaplo/babanaplo/internal/api"
	"github.com/babanaplo/babanaplo/internal/models"
)

const sleepName = "Alvási adat"

type sleepService struct {
	client *api.Client
}

// NewSleepService creates the HTTP-backed sleep period service
func NewSleepService(client *api.Client) SleepService {
	return &sleepService{client: client}
}

func (s *sleepService) GetAllByBaby(ctx context.Context, babyID int64) ([]*models.SleepPeriod, error) {
	var periods []*models.SleepPeriod
	if err := s.client.Get(ctx, fmt.Sprintf("/sleep/baby/%d", babyID), nil, &periods); err != nil {
		return nil, api.Normalize(err, sleepName, opGet)
	}
	return periods, nil
}

func (s *sleepService) GetByID(ctx context.Context, id int64) (*models.SleepPeriod, error) {
	period := &models.SleepPeriod{}
	if err := s.client.Get(ctx, fmt.Sprintf("/sleep/%d", id), nil, period); err != nil {
		return nil, api.Normalize(err, sleepName, opGet)
	}
	return period, nil
}

func (s *sleepService) Create(ctx context.Context, data *models.SleepData) (*models.SleepPeriod, error) {
	// Sent as-is even when endTime precedes startTime; ordering is enforced
	// server-side.
	period := &models.SleepPeriod{}
	if err := s.client.Post(ctx, "/sleep", data, period); err != nil {
		return nil, api.Normalize(err, sleepName, opCreate)
	}
	return period, nil
}

func (s *sleepService) Update(ctx context.Context, id int64, sleep *models.SleepPeriod) (*models.SleepPeriod, error) {
	updated := &models.SleepPeriod{}
	if err := s.client.Put(ctx, fmt.Sprintf("/sleep/%d", id), sleep, updated); err != nil {
		return nil, api.Normalize(err, sleepName, opUpdate)
	}
	return updated, nil
}

func (s *sleepService) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("/sleep/%d", id)); err != nil {
		return api.Normalize(err, sleepName, opDelete)
	}
	return nil
}

func (s *sleepService) GetByDateRange(ctx context.Context, babyID int64, start, end time.Time) ([]*models.SleepPeriod, error) {
	var periods []*models.SleepPeriod
	path := fmt.Sprintf("/sleep/baby/%d/range", babyID)
	if err := s.client.Get(ctx, path, rangeQuery(start, end), &periods); err != nil {
		return nil, api.Normalize(err, sleepName, opByRange)
	}
	return periods, nil
}
