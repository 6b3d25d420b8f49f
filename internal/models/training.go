package models

import "time"

type Training struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	SectionID   int64     `json:"section_id"`
	Duration    int       `json:"duration"`
	Intensity   int       `json:"intensity"`
	PerformedAt time.Time `json:"performed_at"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
