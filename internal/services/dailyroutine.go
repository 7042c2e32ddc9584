package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/babanaplo/babanaplo/internal/api"
	"github.com/babanaplo/babanaplo/internal/models"
)

const (
	routineName        = "Napi rutin"
	defaultRoutineName = "Alapértelmezett rutin"
)

type dailyRoutineService struct {
	client *api.Client
}

// NewDailyRoutineService creates the HTTP-backed daily routine service
func NewDailyRoutineService(client *api.Client) DailyRoutineService {
	return &dailyRoutineService{client: client}
}

func (s *dailyRoutineService) GetAllByBaby(ctx context.Context, babyID int64) ([]*models.DailyRoutine, error) {
	var routines []*models.DailyRoutine
	if err := s.client.Get(ctx, fmt.Sprintf("/dailyroutine/baby/%d", babyID), nil, &routines); err != nil {
		return nil, api.Normalize(err, routineName, opGet)
	}
	return routines, nil
}

func (s *dailyRoutineService) GetByID(ctx context.Context, id int64) (*models.DailyRoutine, error) {
	routine := &models.DailyRoutine{}
	if err := s.client.Get(ctx, fmt.Sprintf("/dailyroutine/%d", id), nil, routine); err != nil {
		return nil, api.Normalize(err, routineName, opGet)
	}
	return routine, nil
}

func (s *dailyRoutineService) Create(ctx context.Context, data *models.RoutineData) (*models.DailyRoutine, error) {
	routine := &models.DailyRoutine{}
	if err := s.client.Post(ctx, "/dailyroutine", data, routine); err != nil {
		return nil, api.Normalize(err, routineName, opCreate)
	}
	return routine, nil
}

func (s *dailyRoutineService) Update(ctx context.Context, id int64, routine *models.DailyRoutine) (*models.DailyRoutine, error) {
	updated := &models.DailyRoutine{}
	if err := s.client.Put(ctx, fmt.Sprintf("/dailyroutine/%d", id), routine, updated); err != nil {
		return nil, api.Normalize(err, routineName, opUpdate)
	}
	return updated, nil
}

func (s *dailyRoutineService) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("/dailyroutine/%d", id)); err != nil {
		return api.Normalize(err, routineName, opDelete)
	}
	return nil
}

func (s *dailyRoutineService) GetByDateRange(ctx context.Context, babyID int64, start, end time.Time) ([]*models.DailyRoutine, error) {
	var routines []*models.DailyRoutine
	path := fmt.Sprintf("/dailyroutine/baby/%d/range", babyID)
	if err := s.client.Get(ctx, path, rangeQuery(start, end), &routines); err != nil {
		return nil, api.Normalize(err, routineName, opByRange)
	}
	return routines, nil
}

// GetDefaultRoutine fetches the baby's default routine template
func (s *dailyRoutineService) GetDefaultRoutine(ctx context.Context, babyID int64) (*models.DailyRoutine, error) {
	routine := &models.DailyRoutine{}
	if err := s.client.Get(ctx, fmt.Sprintf("/dailyroutine/baby/%d/default", babyID), nil, routine); err != nil {
		return nil, api.Normalize(err, defaultRoutineName, opGet)
	}
	return routine, nil
}

// SetDefaultRoutine replaces the baby's default routine template
func (s *dailyRoutineService) SetDefaultRoutine(ctx context.Context, babyID int64, data *models.RoutineData) (*models.DailyRoutine, error) {
	routine := &models.DailyRoutine{}
	if err := s.client.Post(ctx, fmt.Sprintf("/dailyroutine/baby/%d/default", babyID), data, routine); err != nil {
		return nil, api.Normalize(err, defaultRoutineName, opSet)
	}
	return routine, nil
}

// GetRoutineForDate returns the routine for the given date; the server falls
// back to the default template when no dated routine exists.
func (s *dailyRoutineService) GetRoutineForDate(ctx context.Context, babyID int64, date time.Time) (*models.DailyRoutine, error) {
	q := url.Values{}
	q.Set("date", date.Format(time.RFC3339))

	routine := &models.DailyRoutine{}
	if err := s.client.Get(ctx, fmt.Sprintf("/dailyroutine/baby/%d/date", babyID), q, routine); err != nil {
		return nil, api.Normalize(err, routineName, opByRange)
	}
	return routine, nil
}
