package models

import "time"

// DiaryEntry is a free-form journal note. Section is plain text here,
// not a relation, so users can log activities outside formal sections.
type DiaryEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	EntryDate time.Time `json:"date"`
	Section   string    `json:"section"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}
