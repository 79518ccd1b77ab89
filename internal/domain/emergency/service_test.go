package emergency

import (
	"context"
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"time"
)

func newTestService() *Service {
	svc := NewService(NewMemoryRepo())
	svc.now = func() time.Time { return time.UnixMilli(1750000000000) }
	svc.rand = rand.New(rand.NewSource(1))
	return svc
}

func testRequest() *BookingRequest {
	return &BookingRequest{
		PatientName:   "Jane Roe",
		PhoneNumber:   "+1 555-000-1234",
		Address:       "42 Oak Avenue",
		EmergencyType: "Cardiac Arrest",
		Description:   "Chest pain, difficulty breathing",
		Coordinates:   &Coordinates{Lat: 40.7128, Lng: -74.0060},
	}
}

func TestCreateBooking(t *testing.T) {
	svc := newTestService()
	b, err := svc.CreateBooking(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !regexp.MustCompile(`^EMG\d+$`).MatchString(b.BookingID) {
		t.Errorf("unexpected booking id: %s", b.BookingID)
	}
	if b.Status != StatusConfirmed {
		t.Errorf("expected confirmed status, got %s", b.Status)
	}
	if b.EstimatedTime != "10-15 minutes" {
		t.Errorf("unexpected estimate: %s", b.EstimatedTime)
	}
	if !strings.HasPrefix(b.AmbulanceDetails.Number, "AMB-") {
		t.Errorf("unexpected unit number: %s", b.AmbulanceDetails.Number)
	}
	if b.AmbulanceDetails.Driver == "" || b.AmbulanceDetails.DriverPhone == "" {
		t.Error("expected synthesized driver details")
	}
}

func TestTrack(t *testing.T) {
	svc := newTestService()
	b, _ := svc.CreateBooking(context.Background(), testRequest())

	info, err := svc.Track(context.Background(), b.BookingID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.PatientName != "Jane Roe" {
		t.Errorf("unexpected patient: %s", info.PatientName)
	}
	if info.Status != StatusOnTheWay {
		t.Errorf("expected on_the_way in tracking view, got %s", info.Status)
	}
	if info.AmbulanceLocation == nil {
		t.Fatal("expected synthetic ambulance location")
	}
	if info.AmbulanceLocation.Lat != 40.7228 {
		t.Errorf("expected offset latitude, got %f", info.AmbulanceLocation.Lat)
	}

	// The stored status is untouched by tracking.
	stored, _ := svc.repo.GetByID(context.Background(), b.BookingID)
	if stored.Status != StatusConfirmed {
		t.Errorf("tracking must not mutate stored status, got %s", stored.Status)
	}
}

func TestTrack_NoCoordinates(t *testing.T) {
	svc := newTestService()
	req := testRequest()
	req.Coordinates = nil
	b, _ := svc.CreateBooking(context.Background(), req)

	info, err := svc.Track(context.Background(), b.BookingID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.AmbulanceLocation != nil {
		t.Error("expected no ambulance location without coordinates")
	}
}

func TestTrack_Unknown(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Track(context.Background(), "EMG0"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc := newTestService()
	b, _ := svc.CreateBooking(context.Background(), testRequest())

	updated, err := svc.UpdateStatus(context.Background(), b.BookingID, StatusArrived)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != StatusArrived {
		t.Errorf("expected arrived, got %s", updated.Status)
	}
	if updated.UpdatedAt == nil {
		t.Error("expected update timestamp")
	}
}

func TestUpdateStatus_Unknown(t *testing.T) {
	svc := newTestService()
	if _, err := svc.UpdateStatus(context.Background(), "EMG0", StatusArrived); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLogCall(t *testing.T) {
	svc := newTestService()
	log := svc.LogCall("Stroke", "+1 555-1111", "caller slurring speech")
	if log.ID != 1750000000000 {
		t.Errorf("unexpected log id: %d", log.ID)
	}
	if log.EmergencyType != "Stroke" {
		t.Errorf("unexpected type: %s", log.EmergencyType)
	}
}
