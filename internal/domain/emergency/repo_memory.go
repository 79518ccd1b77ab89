package emergency

import (
	"context"
	"sync"
)

// MemoryRepo is the default in-process booking store.
type MemoryRepo struct {
	mu    sync.RWMutex
	items []*Booking
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Create(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *b
	r.items = append(r.items, &cp)
	return nil
}

func (r *MemoryRepo) GetByID(_ context.Context, bookingID string) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.BookingID == bookingID {
			cp := *item
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepo) Update(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.BookingID == b.BookingID {
			cp := *b
			r.items[i] = &cp
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepo) List(_ context.Context) ([]*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Booking, 0, len(r.items))
	for _, item := range r.items {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}
