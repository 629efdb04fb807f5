package booking

import (
	"context"
	"time"

	repo "malone/database/repository/booking"
	"malone/models"
	"malone/services/calendar"
)

// SessionIntent is what the voice layer has gathered when the caller asks
// for availability. Appliance may arrive as free speech or as an IVR menu
// key; MenuKey wins when both are set.
type SessionIntent struct {
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	ZIP          string `json:"zip"`
	Appliance    string `json:"appliance"`
	MenuKey      string `json:"menuKey"`
}

// ConfirmInput is the caller's final selection.
type ConfirmInput struct {
	SessionID    string `json:"sessionId"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Date         string `json:"date"` // "YYYY-MM-DD" or spoken ("tomorrow", "the second one")
	Slot         string `json:"slot"` // slot label, e.g. "1:00 PM"
}

// ReminderScheduler queues an appointment-eve reminder for a confirmed
// booking.
type ReminderScheduler interface {
	ScheduleReminder(booking *models.Booking) error
}

// BookingSessionService drives a caller from availability to a confirmed,
// conflict-checked appointment.
type BookingSessionService interface {
	InitiateSession(ctx context.Context, intent SessionIntent) (*models.SessionOptions, error)
	GetSession(ctx context.Context, sessionID string) (*models.SessionOptions, error)
	ConfirmBooking(ctx context.Context, in ConfirmInput) (*models.BookingConfirmation, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Store     SessionStore
	Calendar  calendar.Gateway
	Repo      repo.BookingRepository
	Reminders ReminderScheduler
	// Clock is overridable so availability scans are deterministic in tests.
	Clock func() time.Time
}

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
