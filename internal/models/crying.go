package models

import "time"

// CryingIntensity rates how intense a crying period was
type CryingIntensity string

const (
	CryingLow    CryingIntensity = "low"
	CryingMedium CryingIntensity = "medium"
	CryingHigh   CryingIntensity = "high"
)

// CryingPeriod represents one crying episode with the suspected reason and
// whatever finally calmed the baby down.
type CryingPeriod struct {
	ID        int64            `json:"id"`
	BabyID    int64            `json:"babyId"`
	StartTime time.Time        `json:"startTime"`
	EndTime   *time.Time       `json:"endTime,omitempty"`
	Reason    *string          `json:"reason,omitempty"`
	Intensity *CryingIntensity `json:"intensity,omitempty"`
	Solution  *string          `json:"solution,omitempty"`
	Notes     *string          `json:"notes,omitempty"`
}

// IsOngoing returns true while the crying period has no recorded end
func (c *CryingPeriod) IsOngoing() bool {
	return c.EndTime == nil
}

// CryingData is the create payload for a crying period
type CryingData struct {
	BabyID    int64            `json:"babyId"`
	StartTime time.Time        `json:"startTime"`
	EndTime   *time.Time       `json:"endTime,omitempty"`
	Reason    *string          `json:"reason,omitempty"`
	Intensity *CryingIntensity `json:"intensity,omitempty"`
	Solution  *string          `json:"solution,omitempty"`
	Notes     *string          `json:"notes,omitempty"`
}
