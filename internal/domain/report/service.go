package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/healthtrack/healthtrack/internal/domain/appointment"
	"github.com/healthtrack/healthtrack/internal/domain/metric"
	"github.com/healthtrack/healthtrack/internal/domain/record"
)

var ErrNotFound = errors.New("report not found")

const (
	recentMetricCount = 5
	trendPointCount   = 7
)

// Service computes aggregate reports over the live stores and renders
// downloadable PDF summaries. Generated PDFs are held in memory keyed by a
// generated id.
type Service struct {
	appointments appointment.Repository
	metrics      metric.Repository
	records      record.Repository

	mu        sync.RWMutex
	generated map[string]*GeneratedReport

	now   func() time.Time
	newID func() string
}

func NewService(appointments appointment.Repository, metrics metric.Repository, records record.Repository) *Service {
	return &Service{
		appointments: appointments,
		metrics:      metrics,
		records:      records,
		generated:    make(map[string]*GeneratedReport),
		now:          time.Now,
		newID:        func() string { return uuid.New().String() },
	}
}

// round1 keeps averages at one decimal place.
func round1(v float64) float64 { return math.Round(v*10) / 10 }

// Build aggregates the current state of the stores.
func (s *Service) Build(ctx context.Context) (*Report, error) {
	appts, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	metrics, err := s.metrics.List(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Summary: Summary{
			TotalAppointments: len(appts),
			TotalRecords:      len(records),
		},
		MonthlyTrends: Trends{HeartRate: []int{}, Weight: []float64{}},
	}
	for _, a := range appts {
		switch a.Status {
		case appointment.StatusConfirmed:
			r.Summary.CompletedAppointments++
		case appointment.StatusPending:
			r.Summary.UpcomingAppointments++
		}
	}

	var hrSum, hrN int
	var wSum float64
	var wN int
	for _, m := range metrics {
		if m.HeartRate != nil {
			hrSum += *m.HeartRate
			hrN++
		}
		if m.Weight != nil {
			wSum += *m.Weight
			wN++
		}
	}
	if hrN > 0 {
		r.Summary.AvgHeartRate = round1(float64(hrSum) / float64(hrN))
	}
	if wN > 0 {
		r.Summary.AvgWeight = round1(wSum / float64(wN))
	}

	// Metrics list newest first; recent is a direct prefix.
	recent := metrics
	if len(recent) > recentMetricCount {
		recent = recent[:recentMetricCount]
	}
	r.RecentMetrics = recent
	if r.RecentMetrics == nil {
		r.RecentMetrics = []*metric.HealthMetric{}
	}

	// Trend series read oldest first.
	trend := metrics
	if len(trend) > trendPointCount {
		trend = trend[:trendPointCount]
	}
	for i := len(trend) - 1; i >= 0; i-- {
		m := trend[i]
		if m.HeartRate != nil {
			r.MonthlyTrends.HeartRate = append(r.MonthlyTrends.HeartRate, *m.HeartRate)
		}
		if m.Weight != nil {
			r.MonthlyTrends.Weight = append(r.MonthlyTrends.Weight, *m.Weight)
		}
	}
	return r, nil
}

// Generate renders the current report into a PDF and stores it for
// download.
func (s *Service) Generate(ctx context.Context, rng DateRange) (*GeneratedReport, error) {
	rep, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := renderPDF(rep, rng, s.now())
	if err != nil {
		return nil, err
	}

	r := &GeneratedReport{
		ID:          s.newID(),
		DateRange:   rng,
		GeneratedAt: s.now(),
		PDF:         pdfBytes,
	}
	s.mu.Lock()
	s.generated[r.ID] = r
	s.mu.Unlock()
	return r, nil
}

// Get returns a previously generated report.
func (s *Service) Get(id string) (*GeneratedReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.generated[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

// Dashboard returns the newest metric and up to two appointments.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	metrics, err := s.metrics.List(ctx)
	if err != nil {
		return nil, err
	}
	appts, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{Appointments: appts}
	if len(metrics) > 0 {
		d.HealthData = metrics[0]
	}
	if len(d.Appointments) > 2 {
		d.Appointments = d.Appointments[:2]
	}
	if d.Appointments == nil {
		d.Appointments = []*appointment.Appointment{}
	}
	return d, nil
}

func renderPDF(rep *Report, rng DateRange, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Health Summary Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	if rng.StartDate != "" || rng.EndDate != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Period: %s to %s", rng.StartDate, rng.EndDate))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, "Generated: "+generatedAt.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Overview")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	for _, line := range []string{
		fmt.Sprintf("Total appointments: %d", rep.Summary.TotalAppointments),
		fmt.Sprintf("Completed appointments: %d", rep.Summary.CompletedAppointments),
		fmt.Sprintf("Upcoming appointments: %d", rep.Summary.UpcomingAppointments),
		fmt.Sprintf("Medical records: %d", rep.Summary.TotalRecords),
		fmt.Sprintf("Average heart rate: %.1f bpm", rep.Summary.AvgHeartRate),
		fmt.Sprintf("Average weight: %.1f kg", rep.Summary.AvgWeight),
	} {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}

	if len(rep.RecentMetrics) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Recent Vitals")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		for _, m := range rep.RecentMetrics {
			line := m.Date
			if m.HeartRate != nil {
				line += fmt.Sprintf("  heart rate %d bpm", *m.HeartRate)
			}
			if m.BloodPressure != nil {
				line += fmt.Sprintf("  blood pressure %s", *m.BloodPressure)
			}
			if m.Weight != nil {
				line += fmt.Sprintf("  weight %.1f kg", *m.Weight)
			}
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
