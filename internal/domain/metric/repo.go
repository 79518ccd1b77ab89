package metric

import "context"

type Repository interface {
	// Create stores the metric and assigns its id. New metrics are listed
	// first.
	Create(ctx context.Context, m *HealthMetric) error
	// Delete removes the record if present; absent ids are a no-op.
	Delete(ctx context.Context, id int) error
	// List returns all metrics, newest first.
	List(ctx context.Context) ([]*HealthMetric, error)
}
