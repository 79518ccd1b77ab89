package profile

import (
	"context"
	"testing"
)

func TestGet_ReturnsSeededProfile(t *testing.T) {
	svc := NewService(NewMemoryRepo(DemoProfile()))
	p, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "John Doe" || p.BloodGroup != "O+" {
		t.Errorf("unexpected profile: %+v", p)
	}
}

func TestUpdate_MergesPartialFields(t *testing.T) {
	svc := NewService(NewMemoryRepo(DemoProfile()))

	phone := "+1 999-000-1111"
	p, err := svc.Update(context.Background(), Patch{Phone: &phone})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Phone != phone {
		t.Errorf("expected updated phone, got %s", p.Phone)
	}
	if p.Name != "John Doe" {
		t.Error("expected untouched fields to survive")
	}

	// Merge persists across reads.
	again, _ := svc.Get(context.Background())
	if again.Phone != phone {
		t.Error("expected merged profile to be stored")
	}
}
