package models

import "time"

// Note is a free-form note attached to a baby
type Note struct {
	ID        int64     `json:"id"`
	BabyID    int64     `json:"babyId"`
	Content   string    `json:"content"`
	Category  *string   `json:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteData is the create payload for a note
type NoteData struct {
	BabyID   int64   `json:"babyId"`
	Content  string  `json:"content"`
	Category *string `json:"category,omitempty"`
}
