package record

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/healthtrack/healthtrack/internal/platform/filestore"
)

type Service struct {
	repo  Repository
	files filestore.Store
	now   func() time.Time
}

func NewService(repo Repository, files filestore.Store) *Service {
	return &Service{repo: repo, files: files, now: time.Now}
}

// Create saves the uploaded file (when present) and stores the record
// metadata. The record date is stamped with today's date; a missing file
// yields the placeholder name "unknown" and a zero size.
func (s *Service) Create(ctx context.Context, rec *MedicalRecord, originalName string, content io.Reader) error {
	rec.Date = s.now().Format("2006-01-02")
	rec.FileName = "unknown"
	rec.Size = "0 MB"

	if content != nil {
		name, size, err := s.files.Save(originalName, content)
		if err != nil {
			return fmt.Errorf("save upload: %w", err)
		}
		rec.FileName = name
		rec.Size = filestore.FormatSize(size)
	}

	return s.repo.Create(ctx, rec)
}

func (s *Service) List(ctx context.Context) ([]*MedicalRecord, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// Seed loads the demo dataset into the repository.
func Seed(ctx context.Context, repo Repository) error {
	for _, rec := range DemoData() {
		if err := repo.Create(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
