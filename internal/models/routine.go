package models

import "time"

// DailyRoutine records a baby's schedule for one date. At most one routine per
// baby acts as the default template; a dated routine overrides it for that
// day. The server is the source of truth for default uniqueness.
type DailyRoutine struct {
	ID           int64     `json:"id"`
	BabyID       int64     `json:"babyId"`
	Date         time.Time `json:"date"`
	WakeUpTime   *string   `json:"wakeUpTime,omitempty"`
	BedTime      *string   `json:"bedTime,omitempty"`
	NapCount     *int      `json:"napCount,omitempty"`
	FeedingCount *int      `json:"feedingCount,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	IsDefault    bool      `json:"isDefault"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RoutineData is the create payload for a routine; the server assigns the id
// and the timestamps.
type RoutineData struct {
	BabyID       int64     `json:"babyId"`
	Date         time.Time `json:"date"`
	WakeUpTime   *string   `json:"wakeUpTime,omitempty"`
	BedTime      *string   `json:"bedTime,omitempty"`
	NapCount     *int      `json:"napCount,omitempty"`
	FeedingCount *int      `json:"feedingCount,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	IsDefault    bool      `json:"isDefault"`
}
