package appointment

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgRepo struct{ pool *pgxpool.Pool }

// NewPGRepo returns a Postgres-backed Repository.
func NewPGRepo(pool *pgxpool.Pool) Repository { return &pgRepo{pool: pool} }

const cols = `id, doctor, specialty, date, time, status, notes`

func scan(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.Doctor, &a.Specialty, &a.Date, &a.Time, &a.Status, &a.Notes)
	return &a, err
}

func (r *pgRepo) Create(ctx context.Context, a *Appointment) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO appointment (doctor, specialty, date, time, status, notes)
		VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
		a.Doctor, a.Specialty, a.Date, a.Time, a.Status, a.Notes).Scan(&a.ID)
}

func (r *pgRepo) GetByID(ctx context.Context, id int) (*Appointment, error) {
	a, err := scan(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM appointment WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

func (r *pgRepo) Update(ctx context.Context, a *Appointment) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE appointment SET doctor=$2, specialty=$3, date=$4, time=$5, status=$6, notes=$7
		WHERE id = $1`,
		a.ID, a.Doctor, a.Specialty, a.Date, a.Time, a.Status, a.Notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgRepo) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM appointment WHERE id = $1`, id)
	return err
}

func (r *pgRepo) List(ctx context.Context) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM appointment ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Appointment
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
