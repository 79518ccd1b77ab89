package appointment

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no appointment has the requested id.
var ErrNotFound = errors.New("appointment not found")

type Repository interface {
	// Create stores the appointment and assigns its id.
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id int) (*Appointment, error)
	// Update overwrites the stored record. ErrNotFound if the id is absent.
	Update(ctx context.Context, a *Appointment) error
	// Delete removes the record if present. Deleting an absent id is not an
	// error.
	Delete(ctx context.Context, id int) error
	// List returns all appointments in insertion order.
	List(ctx context.Context) ([]*Appointment, error)
}
