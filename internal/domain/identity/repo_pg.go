package identity

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgRepo struct{ pool *pgxpool.Pool }

// NewPGRepo returns a Postgres-backed Repository.
func NewPGRepo(pool *pgxpool.Pool) Repository { return &pgRepo{pool: pool} }

const cols = `id, name, email, password_hash`

func scan(row pgx.Row) (*Account, error) {
	var a Account
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash)
	return &a, err
}

func (r *pgRepo) Create(ctx context.Context, a *Account) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO account (name, email, password_hash)
		VALUES ($1, lower($2), $3) RETURNING id`,
		a.Name, a.Email, a.PasswordHash).Scan(&a.ID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrEmailExists
	}
	return err
}

func (r *pgRepo) GetByID(ctx context.Context, id int) (*Account, error) {
	a, err := scan(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM account WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

func (r *pgRepo) GetByEmail(ctx context.Context, email string) (*Account, error) {
	a, err := scan(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM account WHERE email = lower($1)`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}
