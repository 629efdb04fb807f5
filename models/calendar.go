package models

import "time"

// CalendarEvent is the remote calendar's view of a created appointment.
// Kept provider-neutral; only the fields the dispatch flow reads.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}
