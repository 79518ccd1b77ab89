package record

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgRepo struct{ pool *pgxpool.Pool }

// NewPGRepo returns a Postgres-backed Repository.
func NewPGRepo(pool *pgxpool.Pool) Repository { return &pgRepo{pool: pool} }

const cols = `id, title, type, doctor, date, file_name, size`

func scan(row pgx.Row) (*MedicalRecord, error) {
	var rec MedicalRecord
	err := row.Scan(&rec.ID, &rec.Title, &rec.Type, &rec.Doctor, &rec.Date, &rec.FileName, &rec.Size)
	return &rec, err
}

func (r *pgRepo) Create(ctx context.Context, rec *MedicalRecord) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO medical_record (title, type, doctor, date, file_name, size)
		VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
		rec.Title, rec.Type, rec.Doctor, rec.Date, rec.FileName, rec.Size).Scan(&rec.ID)
}

func (r *pgRepo) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM medical_record WHERE id = $1`, id)
	return err
}

func (r *pgRepo) List(ctx context.Context) ([]*MedicalRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM medical_record ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*MedicalRecord
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}
