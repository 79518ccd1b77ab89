package profile

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (*Profile, error) {
	return s.repo.Get(ctx)
}

// Update merges the provided fields over the stored profile and returns the
// merged result.
func (s *Service) Update(ctx context.Context, patch Patch) (*Profile, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.DateOfBirth != nil {
		p.DateOfBirth = *patch.DateOfBirth
	}
	if patch.Gender != nil {
		p.Gender = *patch.Gender
	}
	if patch.BloodGroup != nil {
		p.BloodGroup = *patch.BloodGroup
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.EmergencyContact != nil {
		p.EmergencyContact = *patch.EmergencyContact
	}
	if patch.Allergies != nil {
		p.Allergies = *patch.Allergies
	}
	if patch.ChronicConditions != nil {
		p.ChronicConditions = *patch.ChronicConditions
	}

	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
