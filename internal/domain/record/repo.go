package record

import "context"

type Repository interface {
	// Create stores the record and assigns its id. New records are listed
	// first.
	Create(ctx context.Context, rec *MedicalRecord) error
	// Delete removes the record if present; absent ids are a no-op.
	Delete(ctx context.Context, id int) error
	// List returns all records, newest first.
	List(ctx context.Context) ([]*MedicalRecord, error)
}
