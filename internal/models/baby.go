package models

import "time"

// Gender of a baby as the backend encodes it
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Baby represents a tracked child. Every activity record is scoped to one baby,
// and each baby belongs to the authenticated user (ParentID).
type Baby struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Gender      Gender    `json:"gender"`
	ParentID    string    `json:"parentId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AgeInDays returns the baby's age in whole days at the given time
func (b *Baby) AgeInDays(at time.Time) int {
	if at.Before(b.DateOfBirth) {
		return 0
	}
	return int(at.Sub(b.DateOfBirth).Hours() / 24)
}

// CreateBabyData is the payload for creating a baby. The server assigns the
// id, the parent and the timestamps.
type CreateBabyData struct {
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Gender      Gender    `json:"gender"`
}

// UpdateBabyData carries the mutable baby fields; nil fields are left unchanged
type UpdateBabyData struct {
	Name        *string    `json:"name,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Gender      *Gender    `json:"gender,omitempty"`
}
