package emergency

import "time"

// Booking statuses.
const (
	StatusConfirmed = "confirmed"
	StatusOnTheWay  = "on_the_way"
	StatusArrived   = "arrived"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Emergency types accepted on booking requests.
var EmergencyTypes = []string{
	"Cardiac Arrest",
	"Accident / Trauma",
	"Breathing Difficulty",
	"Stroke",
	"Severe Bleeding",
	"Burns",
	"Poisoning",
	"Pregnancy / Labor",
	"Other",
}

// Coordinates is a WGS84 point supplied by the caller's device.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AmbulanceDetails identifies the unit assigned to a booking.
type AmbulanceDetails struct {
	Number      string `json:"number"`
	Driver      string `json:"driver"`
	DriverPhone string `json:"driverPhone"`
}

// Booking is one ambulance dispatch record. The id is a generated string
// ("EMG" + epoch milliseconds), not a sequence number.
type Booking struct {
	BookingID        string           `json:"bookingId"`
	PatientName      string           `json:"patientName"`
	PhoneNumber      string           `json:"phoneNumber"`
	Address          string           `json:"address"`
	Landmark         *string          `json:"landmark,omitempty"`
	EmergencyType    string           `json:"emergencyType"`
	Description      string           `json:"description"`
	Coordinates      *Coordinates     `json:"coordinates,omitempty"`
	Status           string           `json:"status"`
	EstimatedTime    string           `json:"estimatedTime"`
	AmbulanceDetails AmbulanceDetails `json:"ambulanceDetails"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        *time.Time       `json:"updatedAt,omitempty"`
}

// BookingRequest is the payload for creating a booking.
type BookingRequest struct {
	PatientName   string       `json:"patientName"`
	PhoneNumber   string       `json:"phoneNumber"`
	Address       string       `json:"address"`
	Landmark      *string      `json:"landmark"`
	EmergencyType string       `json:"emergencyType"`
	Description   string       `json:"description"`
	Coordinates   *Coordinates `json:"coordinates"`
}

// TrackingInfo is a booking snapshot plus the synthetic live position. The
// ambulance location is the booking's coordinates offset by a fixed delta;
// there is no real position feed.
type TrackingInfo struct {
	Booking
	AmbulanceLocation *Coordinates `json:"ambulanceLocation,omitempty"`
	ETA               string       `json:"eta"`
	Status            string       `json:"status"`
}

// CallLog captures an emergency phone call reported by the client.
type CallLog struct {
	ID            int64     `json:"id"`
	EmergencyType string    `json:"emergencyType"`
	ContactNumber string    `json:"contactNumber"`
	Notes         string    `json:"notes"`
	Timestamp     time.Time `json:"timestamp"`
}
