package profile

import "context"

type Repository interface {
	Get(ctx context.Context) (*Profile, error)
	// Put overwrites the stored profile.
	Put(ctx context.Context, p *Profile) error
}
