package metric

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, m *HealthMetric) error {
	return s.repo.Create(ctx, m)
}

func (s *Service) List(ctx context.Context) ([]*HealthMetric, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// Seed loads the demo dataset into the repository.
func Seed(ctx context.Context, repo Repository) error {
	for _, m := range DemoData() {
		if err := repo.Create(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
