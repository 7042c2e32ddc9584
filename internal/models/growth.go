package models

import "time"

// Growth represents a set of measurements taken on one date. All measurements
// are optional; the client does not require any of them to be present.
type Growth struct {
	ID                int64     `json:"id"`
	BabyID            int64     `json:"babyId"`
	Date              time.Time `json:"date"`
	Weight            *float64  `json:"weight,omitempty"`
	Height            *float64  `json:"height,omitempty"`
	HeadCircumference *float64  `json:"headCircumference,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
}

// HasMeasurement returns true if at least one measurement was recorded
func (g *Growth) HasMeasurement() bool {
	return g.Weight != nil || g.Height != nil || g.HeadCircumference != nil
}

// GrowthData is the create payload for a growth record
type GrowthData struct {
	BabyID            int64     `json:"babyId"`
	Date              time.Time `json:"date"`
	Weight            *float64  `json:"weight,omitempty"`
	Height            *float64  `json:"height,omitempty"`
	HeadCircumference *float64  `json:"headCircumference,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
}
