package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is the full DDL for the Postgres-backed repositories. Every table
// uses BIGSERIAL so identity stays a monotonically increasing counter even
// after deletes.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS account (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS appointment (
		id BIGSERIAL PRIMARY KEY,
		doctor TEXT NOT NULL,
		specialty TEXT NOT NULL,
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS health_metric (
		id BIGSERIAL PRIMARY KEY,
		date TEXT NOT NULL,
		heart_rate INT,
		blood_pressure TEXT,
		weight DOUBLE PRECISION,
		temperature DOUBLE PRECISION,
		steps INT,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS medical_record (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		type TEXT NOT NULL,
		doctor TEXT NOT NULL,
		date TEXT NOT NULL,
		file_name TEXT NOT NULL,
		size TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS user_profile (
		id INT PRIMARY KEY DEFAULT 1,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		date_of_birth TEXT NOT NULL DEFAULT '',
		gender TEXT NOT NULL DEFAULT '',
		blood_group TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		emergency_contact TEXT NOT NULL DEFAULT '',
		allergies TEXT NOT NULL DEFAULT '',
		chronic_conditions TEXT NOT NULL DEFAULT '',
		CONSTRAINT user_profile_singleton CHECK (id = 1)
	)`,
	`CREATE TABLE IF NOT EXISTS emergency_booking (
		booking_id TEXT PRIMARY KEY,
		patient_name TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		address TEXT NOT NULL,
		landmark TEXT,
		emergency_type TEXT NOT NULL,
		description TEXT NOT NULL,
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION,
		status TEXT NOT NULL,
		estimated_time TEXT NOT NULL,
		ambulance_number TEXT NOT NULL,
		ambulance_driver TEXT NOT NULL,
		ambulance_driver_phone TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ
	)`,
}

// Migrate applies the embedded schema. Statements are idempotent, so running
// it repeatedly is safe. Returns the number of statements executed.
func Migrate(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	for i, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return i, fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return len(schema), nil
}
