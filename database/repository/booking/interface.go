package bookingRepo

import (
	"context"

	"malone/models"
)

// BookingRepository defines data access for confirmed booking records. The
// calendar remains the source of truth for the tech's day; this store exists
// so the office can answer "what did we book for this caller" without an
// API round-trip.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	FindByPhone(ctx context.Context, phone string) ([]models.Booking, error)
	ListUpcoming(ctx context.Context, limit int64) ([]models.Booking, error)
}
