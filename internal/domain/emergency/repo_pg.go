package emergency

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgRepo struct{ pool *pgxpool.Pool }

// NewPGRepo returns a Postgres-backed Repository.
func NewPGRepo(pool *pgxpool.Pool) Repository { return &pgRepo{pool: pool} }

const cols = `booking_id, patient_name, phone_number, address, landmark, emergency_type,
	description, lat, lng, status, estimated_time,
	ambulance_number, ambulance_driver, ambulance_driver_phone, created_at, updated_at`

func scan(row pgx.Row) (*Booking, error) {
	var b Booking
	var lat, lng *float64
	err := row.Scan(&b.BookingID, &b.PatientName, &b.PhoneNumber, &b.Address, &b.Landmark,
		&b.EmergencyType, &b.Description, &lat, &lng, &b.Status, &b.EstimatedTime,
		&b.AmbulanceDetails.Number, &b.AmbulanceDetails.Driver, &b.AmbulanceDetails.DriverPhone,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		b.Coordinates = &Coordinates{Lat: *lat, Lng: *lng}
	}
	return &b, nil
}

func (r *pgRepo) Create(ctx context.Context, b *Booking) error {
	var lat, lng *float64
	if b.Coordinates != nil {
		lat, lng = &b.Coordinates.Lat, &b.Coordinates.Lng
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO emergency_booking (booking_id, patient_name, phone_number, address, landmark,
			emergency_type, description, lat, lng, status, estimated_time,
			ambulance_number, ambulance_driver, ambulance_driver_phone, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		b.BookingID, b.PatientName, b.PhoneNumber, b.Address, b.Landmark,
		b.EmergencyType, b.Description, lat, lng, b.Status, b.EstimatedTime,
		b.AmbulanceDetails.Number, b.AmbulanceDetails.Driver, b.AmbulanceDetails.DriverPhone,
		b.CreatedAt, b.UpdatedAt)
	return err
}

func (r *pgRepo) GetByID(ctx context.Context, bookingID string) (*Booking, error) {
	b, err := scan(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM emergency_booking WHERE booking_id = $1`, bookingID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

func (r *pgRepo) Update(ctx context.Context, b *Booking) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE emergency_booking SET status=$2, updated_at=$3 WHERE booking_id = $1`,
		b.BookingID, b.Status, b.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgRepo) List(ctx context.Context) ([]*Booking, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM emergency_booking ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Booking
	for rows.Next() {
		b, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}
