package models

import "time"

// SleepQuality is the parent's rating of a sleep period
type SleepQuality string

const (
	SleepGood SleepQuality = "good"
	SleepFair SleepQuality = "fair"
	SleepPoor SleepQuality = "poor"
)

// SleepPeriod represents one stretch of sleep. EndTime is nil while the baby
// is still asleep.
type SleepPeriod struct {
	ID        int64         `json:"id"`
	BabyID    int64         `json:"babyId"`
	StartTime time.Time     `json:"startTime"`
	EndTime   *time.Time    `json:"endTime,omitempty"`
	Quality   *SleepQuality `json:"quality,omitempty"`
	Location  *string       `json:"location,omitempty"`
	Notes     *string       `json:"notes,omitempty"`
}

// IsOngoing returns true while the sleep period has no recorded end
func (s *SleepPeriod) IsOngoing() bool {
	return s.EndTime == nil
}

// SleepData is the create payload for a sleep period
type SleepData struct {
	BabyID    int64         `json:"babyId"`
	StartTime time.Time     `json:"startTime"`
	EndTime   *time.Time    `json:"endTime,omitempty"`
	Quality   *SleepQuality `json:"quality,omitempty"`
	Location  *string       `json:"location,omitempty"`
	Notes     *string       `json:"notes,omitempty"`
}
