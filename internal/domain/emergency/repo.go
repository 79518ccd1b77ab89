package emergency

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no booking has the requested id.
var ErrNotFound = errors.New("booking not found")

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, bookingID string) (*Booking, error)
	// Update overwrites the stored booking. ErrNotFound if absent.
	Update(ctx context.Context, b *Booking) error
	// List returns all bookings in creation order.
	List(ctx context.Context) ([]*Booking, error)
}
