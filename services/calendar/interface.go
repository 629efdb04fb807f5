package calendar

import (
	"context"

	"malone/models"
)

// Gateway is the remote calendar the dispatch flow books against. It only
// reports outcomes; transport failures come back as errors and the booking
// orchestrator owns the fail-open / fail-soft policy for each operation.
type Gateway interface {
	// HasConflict reports whether any existing event overlaps [Start, End).
	HasConflict(ctx context.Context, window models.AppointmentWindow) (bool, error)
	// CreateEvent persists the appointment remotely and returns the created
	// event.
	CreateEvent(ctx context.Context, req models.BookingRequest) (*models.CalendarEvent, error)
}
