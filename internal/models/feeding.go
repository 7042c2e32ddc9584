package models

import "time"

// FeedingType describes how the baby was fed
type FeedingType string

const (
	FeedingBreast FeedingType = "breast"
	FeedingBottle FeedingType = "bottle"
	FeedingSolid  FeedingType = "solid"
)

// Feeding represents a single feeding session. EndTime is nil while the
// session is still in progress. Time ordering is not validated on the client;
// the server enforces it.
type Feeding struct {
	ID        int64       `json:"id"`
	BabyID    int64       `json:"babyId"`
	StartTime time.Time   `json:"startTime"`
	EndTime   *time.Time  `json:"endTime,omitempty"`
	Type      FeedingType `json:"type"`
	Amount    *float64    `json:"amount,omitempty"`
	Notes     *string     `json:"notes,omitempty"`
}

// Duration returns the feeding length, or zero while it is still in progress
func (f *Feeding) Duration() time.Duration {
	if f.EndTime == nil {
		return 0
	}
	return f.EndTime.Sub(f.StartTime)
}

// FeedingData is the create payload for a feeding; the id is server-assigned
type FeedingData struct {
	BabyID    int64       `json:"babyId"`
	StartTime time.Time   `json:"startTime"`
	EndTime   *time.Time  `json:"endTime,omitempty"`
	Type      FeedingType `json:"type"`
	Amount    *float64    `json:"amount,omitempty"`
	Notes     *string     `json:"notes,omitempty"`
}
