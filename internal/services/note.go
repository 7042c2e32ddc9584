package services

import (
	"context"
	"fmt"
	"time"

	"github.com/babanaplo/babanaplo/internal/api"
	"github.com/babanaplo/babanaplo/internal/models"
)

const noteName = "Jegyzet"

type noteService struct {
	client *api.Client
}

// NewNoteService creates the HTTP-backed note service
func NewNoteService(client *api.Client) NoteService {
	return &noteService{client: client}
}

func (s *noteService) GetAllByBaby(ctx context.Context, babyID int64) ([]*models.Note, error) {
	var notes []*models.Note
	if err := s.client.Get(ctx, fmt.Sprintf("/note/baby/%d", babyID), nil, &notes); err != nil {
		return nil, api.Normalize(err, noteName, opGet)
	}
	return notes, nil
}

func (s *noteService) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	note := &models.Note{}
	if err := s.client.Get(ctx, fmt.Sprintf("/note/%d", id), nil, note); err != nil {
		return nil, api.Normalize(err, noteName, opGet)
	}
	return note, nil
}

func (s *noteService) Create(ctx context.Context, data *models.NoteData) (*models.Note, error) {
	note := &models.Note{}
	if err := s.client.Post(ctx, "/note", data, note); err != nil {
		return nil, api.Normalize(err, noteName, opCreate)
	}
	return note, nil
}

func (s *noteService) Update(ctx context.Context, id int64, note *models.Note) (*models.Note, error) {
	updated := &models.Note{}
	if err := s.client.Put(ctx, fmt.Sprintf("/note/%d", id), note, updated); err != nil {
		return nil, api.Normalize(err, noteName, opUpdate)
	}
	return updated, nil
}

func (s *noteService) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("/note/%d", id)); err != nil {
		return api.Normalize(err, noteName, opDelete)
	}
	return nil
}

func (s *noteService) GetByDateRange(ctx context.Context, babyID int64, start, end time.Time) ([]*models.Note, error) {
	var notes []*models.Note
	path := fmt.Sprintf("/note/baby/%d/range", babyID)
	if err := s.client.Get(ctx, path, rangeQuery(start, end), &notes); err != nil {
		return nil, api.Normalize(err, noteName, opByRange)
	}
	return notes, nil
}
