package emergency

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Fixed dispatch parameters. No real dispatch system is contacted; the unit,
// driver, and timings are synthesized.
const (
	defaultEstimate = "10-15 minutes"
	trackingETA     = "8 minutes"
	driverName      = "John Driver"
	driverPhone     = "+1-234-567-8901"

	// trackingOffset is the fixed delta applied to the booking coordinates
	// to fake a live ambulance position.
	trackingOffset = 0.01
)

type Service struct {
	repo Repository
	now  func() time.Time
	rand *rand.Rand
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateBooking registers a dispatch request and synthesizes the assigned
// unit. The booking id is "EMG" plus the creation time in epoch
// milliseconds.
func (s *Service) CreateBooking(ctx context.Context, req *BookingRequest) (*Booking, error) {
	now := s.now()
	b := &Booking{
		BookingID:     fmt.Sprintf("EMG%d", now.UnixMilli()),
		PatientName:   req.PatientName,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		Landmark:      req.Landmark,
		EmergencyType: req.EmergencyType,
		Description:   req.Description,
		Coordinates:   req.Coordinates,
		Status:        StatusConfirmed,
		EstimatedTime: defaultEstimate,
		AmbulanceDetails: AmbulanceDetails{
			Number:      fmt.Sprintf("AMB-%d", s.rand.Intn(1000)),
			Driver:      driverName,
			DriverPhone: driverPhone,
		},
		CreatedAt: now,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context) ([]*Booking, error) {
	return s.repo.List(ctx)
}

// Track returns the booking with a synthetic ambulance position: the
// original coordinates shifted by a fixed delta.
func (s *Service) Track(ctx context.Context, bookingID string) (*TrackingInfo, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	info := &TrackingInfo{
		Booking: *b,
		ETA:     trackingETA,
		Status:  StatusOnTheWay,
	}
	if b.Coordinates != nil {
		info.AmbulanceLocation = &Coordinates{
			Lat: b.Coordinates.Lat + trackingOffset,
			Lng: b.Coordinates.Lng + trackingOffset,
		}
	}
	return info, nil
}

// UpdateStatus overwrites the booking status and stamps the update time.
func (s *Service) UpdateStatus(ctx context.Context, bookingID, status string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	b.Status = status
	now := s.now()
	b.UpdatedAt = &now
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// LogCall records an emergency phone call. The log only goes to the server
// log; the returned id lets the client correlate.
func (s *Service) LogCall(emergencyType, contactNumber, notes string) *CallLog {
	now := s.now()
	return &CallLog{
		ID:            now.UnixMilli(),
		EmergencyType: emergencyType,
		ContactNumber: contactNumber,
		Notes:         notes,
		Timestamp:     now,
	}
}
