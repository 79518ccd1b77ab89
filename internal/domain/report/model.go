package report

import (
	"time"

	"github.com/healthtrack/healthtrack/internal/domain/appointment"
	"github.com/healthtrack/healthtrack/internal/domain/metric"
)

// Report is the aggregate health view computed from the live stores.
type Report struct {
	Summary       Summary                `json:"summary"`
	RecentMetrics []*metric.HealthMetric `json:"recentMetrics"`
	MonthlyTrends Trends                 `json:"monthlyTrends"`
}

// Summary holds the headline counters and averages.
type Summary struct {
	TotalAppointments     int     `json:"totalAppointments"`
	CompletedAppointments int     `json:"completedAppointments"`
	UpcomingAppointments  int     `json:"upcomingAppointments"`
	TotalRecords          int     `json:"totalRecords"`
	AvgHeartRate          float64 `json:"avgHeartRate"`
	AvgWeight             float64 `json:"avgWeight"`
}

// Trends carries the vitals series for charting, oldest reading first.
type Trends struct {
	HeartRate []int     `json:"heartRate"`
	Weight    []float64 `json:"weight"`
}

// DateRange bounds a generated report.
type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// GeneratedReport is a rendered PDF held for download.
type GeneratedReport struct {
	ID          string
	DateRange   DateRange
	GeneratedAt time.Time
	PDF         []byte
}

// Dashboard is the home-screen snapshot: latest vitals plus the next
// appointments.
type Dashboard struct {
	HealthData   *metric.HealthMetric       `json:"healthData"`
	Appointments []*appointment.Appointment `json:"appointments"`
}
