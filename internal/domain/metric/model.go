package metric

// HealthMetric is one day's vital readings. Any subset of the measurement
// fields may be absent; values are stored as submitted with no range checks.
type HealthMetric struct {
	ID            int      `db:"id" json:"id"`
	Date          string   `db:"date" json:"date"`
	HeartRate     *int     `db:"heart_rate" json:"heartRate,omitempty"`
	BloodPressure *string  `db:"blood_pressure" json:"bloodPressure,omitempty"`
	Weight        *float64 `db:"weight" json:"weight,omitempty"`
	Temperature   *float64 `db:"temperature" json:"temperature,omitempty"`
	Steps         *int     `db:"steps" json:"steps,omitempty"`
	Notes         *string  `db:"notes" json:"notes,omitempty"`
}

func intp(v int) *int             { return &v }
func floatp(v float64) *float64   { return &v }
func stringp(v string) *string    { return &v }

// DemoData returns the seed metrics, oldest first so that after seeding the
// newest reading is listed first.
func DemoData() []*HealthMetric {
	return []*HealthMetric{
		{Date: "2026-01-09", HeartRate: intp(73), BloodPressure: stringp("119/79"), Weight: floatp(71), Steps: intp(10200)},
		{Date: "2026-01-10", HeartRate: intp(70), BloodPressure: stringp("122/82"), Weight: floatp(71), Steps: intp(7800)},
		{Date: "2026-01-11", HeartRate: intp(75), BloodPressure: stringp("118/78"), Weight: floatp(70.5), Steps: intp(9200)},
		{Date: "2026-01-12", HeartRate: intp(72), BloodPressure: stringp("120/80"), Weight: floatp(70), Steps: intp(8500)},
	}
}
