package profile

import (
	"context"
	"sync"
)

// MemoryRepo holds the singleton profile in memory.
type MemoryRepo struct {
	mu      sync.RWMutex
	current Profile
}

func NewMemoryRepo(initial *Profile) *MemoryRepo {
	r := &MemoryRepo{}
	if initial != nil {
		r.current = *initial
	} else {
		r.current = Profile{ID: 1}
	}
	return r
}

func (r *MemoryRepo) Get(_ context.Context) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cp := r.current
	return &cp, nil
}

func (r *MemoryRepo) Put(_ context.Context, p *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = *p
	r.current.ID = 1
	return nil
}
