package record

import (
	"context"
	"sync"
)

// MemoryRepo keeps records newest-first with a monotonic id counter.
type MemoryRepo struct {
	mu     sync.RWMutex
	items  []*MedicalRecord
	nextID int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1}
}

func (r *MemoryRepo) Create(_ context.Context, rec *MedicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = r.nextID
	r.nextID++
	cp := *rec
	r.items = append([]*MedicalRecord{&cp}, r.items...)
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

func (r *MemoryRepo) List(_ context.Context) ([]*MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*MedicalRecord, 0, len(r.items))
	for _, item := range r.items {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}
