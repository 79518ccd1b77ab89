package appointment

// Appointment statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

// Appointment is a booked consultation slot.
type Appointment struct {
	ID        int     `db:"id" json:"id"`
	Doctor    string  `db:"doctor" json:"doctor"`
	Specialty string  `db:"specialty" json:"specialty"`
	Date      string  `db:"date" json:"date"`
	Time      string  `db:"time" json:"time"`
	Status    string  `db:"status" json:"status"`
	Notes     *string `db:"notes" json:"notes,omitempty"`
}

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	Doctor    *string `json:"doctor"`
	Specialty *string `json:"specialty"`
	Date      *string `json:"date"`
	Time      *string `json:"time"`
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`
}

// DemoData returns the seed appointments loaded in in-memory mode.
func DemoData() []*Appointment {
	return []*Appointment{
		{Doctor: "Dr. Sarah Smith", Specialty: "Cardiologist", Date: "2026-01-15", Time: "10:00 AM", Status: StatusConfirmed},
		{Doctor: "Dr. Michael Johnson", Specialty: "General Physician", Date: "2026-01-20", Time: "2:30 PM", Status: StatusPending},
		{Doctor: "Dr. Emily Davis", Specialty: "Dermatologist", Date: "2026-01-25", Time: "11:00 AM", Status: StatusConfirmed},
	}
}
