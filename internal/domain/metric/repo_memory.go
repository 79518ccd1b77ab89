package metric

import (
	"context"
	"sync"
)

// MemoryRepo keeps metrics newest-first. Identity comes from a monotonic
// counter independent of the collection size.
type MemoryRepo struct {
	mu     sync.RWMutex
	items  []*HealthMetric
	nextID int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1}
}

func (r *MemoryRepo) Create(_ context.Context, m *HealthMetric) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextID
	r.nextID++
	cp := *m
	r.items = append([]*HealthMetric{&cp}, r.items...)
	return nil
}

func (r *MemoryRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryRepo) List(_ context.Context) ([]*HealthMetric, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*HealthMetric, 0, len(r.items))
	for _, item := range r.items {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}
