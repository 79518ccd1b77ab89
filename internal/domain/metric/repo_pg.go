package metric

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgRepo struct{ pool *pgxpool.Pool }

// NewPGRepo returns a Postgres-backed Repository.
func NewPGRepo(pool *pgxpool.Pool) Repository { return &pgRepo{pool: pool} }

const cols = `id, date, heart_rate, blood_pressure, weight, temperature, steps, notes`

func scan(row pgx.Row) (*HealthMetric, error) {
	var m HealthMetric
	err := row.Scan(&m.ID, &m.Date, &m.HeartRate, &m.BloodPressure, &m.Weight, &m.Temperature, &m.Steps, &m.Notes)
	return &m, err
}

func (r *pgRepo) Create(ctx context.Context, m *HealthMetric) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO health_metric (date, heart_rate, blood_pressure, weight, temperature, steps, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
		m.Date, m.HeartRate, m.BloodPressure, m.Weight, m.Temperature, m.Steps, m.Notes).Scan(&m.ID)
}

func (r *pgRepo) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM health_metric WHERE id = $1`, id)
	return err
}

func (r *pgRepo) List(ctx context.Context) ([]*HealthMetric, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM health_metric ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*HealthMetric
	for rows.Next() {
		m, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
