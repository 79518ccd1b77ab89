package identity

import (
	"context"
	"strings"
	"sync"
)

type memoryRepo struct {
	mu      sync.RWMutex
	byID    map[int]*Account
	byEmail map[string]int
	nextID  int
}

// NewMemoryRepo returns an in-memory Repository.
func NewMemoryRepo() Repository {
	return &memoryRepo{
		byID:    make(map[int]*Account),
		byEmail: make(map[string]int),
		nextID:  1,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *memoryRepo) Create(ctx context.Context, a *Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeEmail(a.Email)
	if _, exists := r.byEmail[key]; exists {
		return ErrEmailExists
	}
	a.ID = r.nextID
	r.nextID++

	cp := *a
	r.byID[a.ID] = &cp
	r.byEmail[key] = a.ID
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id int) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memoryRepo) GetByEmail(ctx context.Context, email string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r.byID[id]
	return &cp, nil
}
