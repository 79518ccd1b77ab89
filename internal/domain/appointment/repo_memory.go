package appointment

import (
	"context"
	"sync"
)

// MemoryRepo is the default in-process store. Identity comes from a
// monotonically increasing counter, so deleting and re-creating records can
// never produce a duplicate id.
type MemoryRepo struct {
	mu     sync.RWMutex
	items  []*Appointment
	nextID int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1}
}

func (r *MemoryRepo) Create(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.items = append(r.items, &cp)
	return nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id int) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			cp := *item
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepo) Update(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID == a.ID {
			cp := *a
			r.items[i] = &cp
			return nil
		}
	}
	return ErrNotFound
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

func (r *MemoryRepo) List(_ context.Context) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Appointment, 0, len(r.items))
	for _, item := range r.items {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}
