package appointment

import (
	"context"
	"testing"
)

func newTestService() *Service {
	return NewService(NewMemoryRepo())
}

func TestCreate_AssignsSequentialIDs(t *testing.T) {
	svc := newTestService()
	for i := 1; i <= 3; i++ {
		a := &Appointment{Doctor: "Dr. Smith", Specialty: "Cardiologist", Date: "2026-02-01", Time: "10:00 AM"}
		if err := svc.Create(context.Background(), a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ID != i {
			t.Errorf("expected id %d, got %d", i, a.ID)
		}
	}
}

func TestCreate_ForcesPendingStatus(t *testing.T) {
	svc := newTestService()
	a := &Appointment{Doctor: "Dr. Smith", Status: StatusConfirmed}
	if err := svc.Create(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != StatusPending {
		t.Errorf("expected status forced to pending, got %s", a.Status)
	}
}

func TestUpdate_MergesPartialFields(t *testing.T) {
	svc := newTestService()
	a := &Appointment{Doctor: "Dr. Smith", Specialty: "Cardiologist", Date: "2026-02-01", Time: "10:00 AM"}
	svc.Create(context.Background(), a)

	status := StatusConfirmed
	updated, err := svc.Update(context.Background(), a.ID, Patch{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != StatusConfirmed {
		t.Errorf("expected status confirmed, got %s", updated.Status)
	}
	if updated.Doctor != "Dr. Smith" || updated.Date != "2026-02-01" {
		t.Error("expected untouched fields to survive partial update")
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	svc := newTestService()
	status := StatusConfirmed
	if _, err := svc.Update(context.Background(), 999, Patch{Status: &status}); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	items, _ := svc.List(context.Background())
	if len(items) != 0 {
		t.Error("expected store unchanged after failed update")
	}
}

func TestDelete_UnknownIDIsNoop(t *testing.T) {
	svc := newTestService()
	a := &Appointment{Doctor: "Dr. Smith"}
	svc.Create(context.Background(), a)

	if err := svc.Delete(context.Background(), 999); err != nil {
		t.Fatalf("expected idempotent delete, got %v", err)
	}
	items, _ := svc.List(context.Background())
	if len(items) != 1 {
		t.Errorf("expected collection unchanged, got %d items", len(items))
	}
}

func TestDelete_ThenCreate_NoIDCollision(t *testing.T) {
	svc := newTestService()
	first := &Appointment{Doctor: "Dr. A"}
	second := &Appointment{Doctor: "Dr. B"}
	svc.Create(context.Background(), first)
	svc.Create(context.Background(), second)

	svc.Delete(context.Background(), first.ID)

	third := &Appointment{Doctor: "Dr. C"}
	svc.Create(context.Background(), third)
	if third.ID == second.ID {
		t.Errorf("id %d collides with an existing record", third.ID)
	}
}

func TestSeed(t *testing.T) {
	repo := NewMemoryRepo()
	if err := Seed(context.Background(), repo); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, _ := repo.List(context.Background())
	if len(items) != 3 {
		t.Fatalf("expected 3 seeded appointments, got %d", len(items))
	}
	if items[0].Doctor != "Dr. Sarah Smith" || items[0].Status != StatusConfirmed {
		t.Error("unexpected first seeded appointment")
	}
}
