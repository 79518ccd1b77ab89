package profile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgRepo struct{ pool *pgxpool.Pool }

// NewPGRepo returns a Postgres-backed Repository. The table holds exactly
// one row with id 1.
func NewPGRepo(pool *pgxpool.Pool) Repository { return &pgRepo{pool: pool} }

const cols = `id, name, email, phone, date_of_birth, gender, blood_group, address, emergency_contact, allergies, chronic_conditions`

func (r *pgRepo) Get(ctx context.Context) (*Profile, error) {
	var p Profile
	err := r.pool.QueryRow(ctx, `SELECT `+cols+` FROM user_profile WHERE id = 1`).Scan(
		&p.ID, &p.Name, &p.Email, &p.Phone, &p.DateOfBirth, &p.Gender, &p.BloodGroup,
		&p.Address, &p.EmergencyContact, &p.Allergies, &p.ChronicConditions)
	if errors.Is(err, pgx.ErrNoRows) {
		return &Profile{ID: 1}, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pgRepo) Put(ctx context.Context, p *Profile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_profile (id, name, email, phone, date_of_birth, gender, blood_group, address, emergency_contact, allergies, chronic_conditions)
		VALUES (1,$1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET
			name=EXCLUDED.name, email=EXCLUDED.email, phone=EXCLUDED.phone,
			date_of_birth=EXCLUDED.date_of_birth, gender=EXCLUDED.gender,
			blood_group=EXCLUDED.blood_group, address=EXCLUDED.address,
			emergency_contact=EXCLUDED.emergency_contact, allergies=EXCLUDED.allergies,
			chronic_conditions=EXCLUDED.chronic_conditions`,
		p.Name, p.Email, p.Phone, p.DateOfBirth, p.Gender, p.BloodGroup,
		p.Address, p.EmergencyContact, p.Allergies, p.ChronicConditions)
	return err
}
