package appointment

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new appointment. The status is always forced to pending
// regardless of what the caller sent.
func (s *Service) Create(ctx context.Context, a *Appointment) error {
	a.Status = StatusPending
	return s.repo.Create(ctx, a)
}

func (s *Service) List(ctx context.Context) ([]*Appointment, error) {
	return s.repo.List(ctx)
}

// Update merges the provided fields over the stored record. Fields absent
// from the patch are left untouched.
func (s *Service) Update(ctx context.Context, id int, p Patch) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Doctor != nil {
		a.Doctor = *p.Doctor
	}
	if p.Specialty != nil {
		a.Specialty = *p.Specialty
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Notes != nil {
		a.Notes = p.Notes
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an appointment. Unknown ids are a no-op, not an error.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// Seed loads the demo dataset into the repository.
func Seed(ctx context.Context, repo Repository) error {
	for _, a := range DemoData() {
		if err := repo.Create(ctx, a); err != nil {
			return err
		}
	}
	return nil
}
