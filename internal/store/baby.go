package store

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/babanaplo/babanaplo/internal/models"
	"github.com/babanaplo/babanaplo/internal/services"
)

// BabyStore caches the user's babies and tracks which one is selected. The
// selection is a transient client-side pointer, never persisted server-side.
type BabyStore struct {
	state
	babies  []*models.Baby
	current *models.Baby

	svc    services.BabyService
	logger *logrus.Logger
}

// NewBabyStore creates an empty baby store
func NewBabyStore(svc services.BabyService, logger *logrus.Logger) *BabyStore {
	return &BabyStore{svc: svc, logger: logger}
}

// Babies returns a copy of the cached baby list
func (s *BabyStore) Babies() []*models.Baby {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Baby, len(s.babies))
	copy(out, s.babies)
	return out
}

// CurrentBaby returns the selected baby, or nil when none is selected
func (s *BabyStore) CurrentBaby() *models.Baby {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetCurrentBaby changes the selection without touching the server
func (s *BabyStore) SetCurrentBaby(baby *models.Baby) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = baby
}

// LoadBabies fetches the full baby list
func (s *BabyStore) LoadBabies(ctx context.Context) error {
	ticket := s.begin()
	babies, err := s.svc.GetAll(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to load babies")
		s.finish(ticket, "Hiba történt a babák lekérése során", nil)
		return err
	}
	s.finish(ticket, "", func() { s.babies = babies })
	return nil
}

// LoadBaby fetches one baby and makes it the current selection
func (s *BabyStore) LoadBaby(ctx context.Context, id int64) error {
	ticket := s.begin()
	baby, err := s.svc.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("baby_id", id).Error("failed to load baby")
		s.finish(ticket, "Hiba történt a baba adatainak lekérése során", nil)
		return err
	}
	s.finish(ticket, "", func() { s.current = baby })
	return nil
}

// CreateBaby creates a baby, appends it to the list and selects it
func (s *BabyStore) CreateBaby(ctx context.Context, data *models.CreateBabyData) error {
	ticket := s.begin()
	baby, err := s.svc.Create(ctx, data)
	if err != nil {
		s.logger.WithError(err).Error("failed to create baby")
		s.finish(ticket, "Hiba történt a baba létrehozása során", nil)
		return err
	}
	s.finish(ticket, "", func() {
		s.babies = append(s.babies, baby)
		s.current = baby
	})
	return nil
}

// UpdateBaby applies the update, then re-fetches the authoritative record:
// the PUT response may be partial, so the cached copy always comes from a
// fresh GET.
func (s *BabyStore) UpdateBaby(ctx context.Context, id int64, data *models.UpdateBabyData) error {
	ticket := s.begin()

	if _, err := s.svc.Update(ctx, id, data); err != nil {
		s.logger.WithError(err).WithField("baby_id", id).Error("failed to update baby")
		s.finish(ticket, "Hiba történt a baba frissítése során", nil)
		return err
	}

	baby, err := s.svc.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("baby_id", id).Error("failed to reload baby after update")
		s.finish(ticket, "Hiba történt a baba frissítése során", nil)
		return err
	}

	s.finish(ticket, "", func() {
		for i, b := range s.babies {
			if b.ID == id {
				s.babies[i] = baby
			}
		}
		if s.current != nil && s.current.ID == id {
			s.current = baby
		}
	})
	return nil
}

// DeleteBaby removes the baby from the server and the cache, clearing the
// selection when the deleted baby was selected.
func (s *BabyStore) DeleteBaby(ctx context.Context, id int64) error {
	ticket := s.begin()
	if err := s.svc.Delete(ctx, id); err != nil {
		s.logger.WithError(err).WithField("baby_id", id).Error("failed to delete baby")
		s.finish(ticket, "Hiba történt a baba törlése során", nil)
		return err
	}
	s.finish(ticket, "", func() {
		kept := s.babies[:0]
		for _, b := range s.babies {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		s.babies = kept
		if s.current != nil && s.current.ID == id {
			s.current = nil
		}
	})
	return nil
}
