package store

import (
	"context"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/babanaplo/babanaplo/internal/models"
	"github.com/babanaplo/babanaplo/internal/services"
)

// RoutineStore caches the daily and default routines of the selected baby.
// Every operation is keyed off the BabyStore selection: with no baby selected
// the operation is a no-op and leaves state untouched.
type RoutineStore struct {
	state
	daily *models.DailyRoutine
	def   *models.DailyRoutine

	svc    services.DailyRoutineService
	babies *BabyStore
	logger *logrus.Logger
}

// NewRoutineStore creates an empty routine store bound to the baby selection
func NewRoutineStore(svc services.DailyRoutineService, babies *BabyStore, logger *logrus.Logger) *RoutineStore {
	return &RoutineStore{svc: svc, babies: babies, logger: logger}
}

// DailyRoutine returns the cached routine for the last loaded date
func (s *RoutineStore) DailyRoutine() *models.DailyRoutine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.daily
}

// DefaultRoutine returns the cached default routine template
func (s *RoutineStore) DefaultRoutine() *models.DailyRoutine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.def
}

// LoadDailyRoutine loads the routine for the given date; the server resolves
// the fallback to the default template.
func (s *RoutineStore) LoadDailyRoutine(ctx context.Context, date time.Time) error {
	baby := s.babies.CurrentBaby()
	if baby == nil {
		return nil
	}

	ticket := s.begin()
	routine, err := s.svc.GetRoutineForDate(ctx, baby.ID, date)
	if err != nil {
		s.logger.WithError(err).Error("Hiba a napi rutin betöltésekor")
		s.finish(ticket, "Nem sikerült betölteni a napi rutint", nil)
		return err
	}
	s.finish(ticket, "", func() { s.daily = routine })
	return nil
}

// LoadDefaultRoutine loads the default routine template
func (s *RoutineStore) LoadDefaultRoutine(ctx context.Context) error {
	baby := s.babies.CurrentBaby()
	if baby == nil {
		return nil
	}

	ticket := s.begin()
	routine, err := s.svc.GetDefaultRoutine(ctx, baby.ID)
	if err != nil {
		s.logger.WithError(err).Error("Hiba az alapértelmezett rutin betöltésekor")
		s.finish(ticket, "Nem sikerült betölteni az alapértelmezett rutint", nil)
		return err
	}
	s.finish(ticket, "", func() { s.def = routine })
	return nil
}

// SaveDailyRoutine creates a dated routine for the selected baby
func (s *RoutineStore) SaveDailyRoutine(ctx context.Context, data *models.RoutineData) error {
	baby := s.babies.CurrentBaby()
	if baby == nil {
		return nil
	}

	ticket := s.begin()
	routine, err := s.svc.Create(ctx, data)
	if err != nil {
		s.logger.WithError(err).Error("Hiba a napi rutin mentésekor")
		s.finish(ticket, "Nem sikerült menteni a napi rutint", nil)
		return err
	}
	s.finish(ticket, "", func() { s.daily = routine })
	return nil
}

// SaveDefaultRoutine replaces the default routine template of the selected baby
func (s *RoutineStore) SaveDefaultRoutine(ctx context.Context, data *models.RoutineData) error {
	baby := s.babies.CurrentBaby()
	if baby == nil {
		return nil
	}

	ticket := s.begin()
	routine, err := s.svc.SetDefaultRoutine(ctx, baby.ID, data)
	if err != nil {
		s.logger.WithError(err).Error("Hiba az alapértelmezett rutin mentésekor")
		s.finish(ticket, "Nem sikerült menteni az alapértelmezett rutint", nil)
		return err
	}
	s.finish(ticket, "", func() { s.def = routine })
	return nil
}

// LoadAll loads both the dated routine and the default template, collecting
// failures instead of stopping at the first one.
func (s *RoutineStore) LoadAll(ctx context.Context, date time.Time) error {
	var result *multierror.Error
	if err := s.LoadDailyRoutine(ctx, date); err != nil {
		result = multierror.Append(result, err)
	}
	if err := s.LoadDefaultRoutine(ctx); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
