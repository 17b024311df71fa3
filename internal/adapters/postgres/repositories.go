package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"organease/internal/domain"
	"organease/internal/ports"
)

var (
	_ ports.DonorRepository     = (*DB)(nil)
	_ ports.RecipientRepository = (*DB)(nil)
	_ ports.HospitalRepository  = (*DB)(nil)
)

func organStrings(organs []domain.Organ) []string {
	out := make([]string, len(organs))
	for i, o := range organs {
		out[i] = string(o)
	}
	return out
}

// DonorRepository

const donorColumns = `id::text, user_id, blood_group, organs, city, state, age, availability,
    emergency_available, verified, verified_by::text, verified_at, created_at`

func scanDonor(row pgx.Row) (domain.DonorProfile, error) {
	var d domain.DonorProfile
	var blood, availability string
	var organs []string
	err := row.Scan(&d.ID, &d.UserID, &blood, &organs, &d.Location.City, &d.Location.State, &d.Age,
		&availability, &d.EmergencyAvailable, &d.Verified, &d.VerifiedBy, &d.VerifiedAt, &d.CreatedAt)
	if err != nil {
		return d, err
	}
	d.BloodGroup = domain.BloodGroup(blood)
	d.Availability = domain.Availability(availability)
	d.Organs = make([]domain.Organ, len(organs))
	for i, o := range organs {
		d.Organs[i] = domain.Organ(o)
	}
	return d, nil
}

func (db *DB) CreateDonor(ctx context.Context, d domain.DonorProfile) (domain.DonorProfile, error) {
	return scanDonor(db.Pool.QueryRow(ctx, `
        INSERT INTO donors (user_id, blood_group, organs, city, state, age, availability, emergency_available, verified, verified_by, verified_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING `+donorColumns,
		d.UserID, string(d.BloodGroup), organStrings(d.Organs), d.Location.City, d.Location.State, d.Age,
		string(d.Availability), d.EmergencyAvailable, d.Verified, d.VerifiedBy, d.VerifiedAt))
}

func (db *DB) GetDonor(ctx context.Context, id string) (domain.DonorProfile, bool, error) {
	if !validID(id) {
		return domain.DonorProfile{}, false, nil
	}
	d, err := scanDonor(db.Pool.QueryRow(ctx, `SELECT `+donorColumns+` FROM donors WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return d, false, nil
	}
	return d, err == nil, err
}

func (db *DB) ListEligibleDonors(ctx context.Context) ([]domain.DonorProfile, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT `+donorColumns+` FROM donors
        WHERE verified AND availability = 'active'
        ORDER BY created_at, id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.DonorProfile
	for rows.Next() {
		d, err := scanDonor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (db *DB) SetDonorVerification(ctx context.Context, id string, verified bool, hospitalID *string, at *time.Time) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := db.Pool.Exec(ctx, `
        UPDATE donors SET verified = $2,
            verified_by = CASE WHEN $2 THEN $3::uuid ELSE verified_by END,
            verified_at = CASE WHEN $2 THEN $4::timestamptz ELSE verified_at END
        WHERE id = $1
    `, id, verified, hospitalID, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (db *DB) SetDonorAvailability(ctx context.Context, id string, availability domain.Availability) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := db.Pool.Exec(ctx, `UPDATE donors SET availability = $2 WHERE id = $1`, id, string(availability))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RecipientRepository

const recipientColumns = `id::text, user_id, blood_group, required_organ, city, state, age, priority,
    request_status, verified, verified_by::text, verified_at, created_at`

func scanRecipient(row pgx.Row) (domain.RecipientProfile, error) {
	var r domain.RecipientProfile
	var blood, organ, priority, status string
	err := row.Scan(&r.ID, &r.UserID, &blood, &organ, &r.Location.City, &r.Location.State, &r.Age,
		&priority, &status, &r.Verified, &r.VerifiedBy, &r.VerifiedAt, &r.CreatedAt)
	r.BloodGroup = domain.BloodGroup(blood)
	r.RequiredOrgan = domain.Organ(organ)
	r.Priority = domain.Priority(priority)
	r.RequestStatus = domain.RequestStatus(status)
	return r, err
}

func (db *DB) CreateRecipient(ctx context.Context, r domain.RecipientProfile) (domain.RecipientProfile, error) {
	return scanRecipient(db.Pool.QueryRow(ctx, `
        INSERT INTO recipients (user_id, blood_group, required_organ, city, state, age, priority, request_status, verified, verified_by, verified_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING `+recipientColumns,
		r.UserID, string(r.BloodGroup), string(r.RequiredOrgan), r.Location.City, r.Location.State, r.Age,
		string(r.Priority), string(r.RequestStatus), r.Verified, r.VerifiedBy, r.VerifiedAt))
}

func (db *DB) GetRecipient(ctx context.Context, id string) (domain.RecipientProfile, bool, error) {
	if !validID(id) {
		return domain.RecipientProfile{}, false, nil
	}
	r, err := scanRecipient(db.Pool.QueryRow(ctx, `SELECT `+recipientColumns+` FROM recipients WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return r, false, nil
	}
	return r, err == nil, err
}

func (db *DB) ListVerifiedRecipients(ctx context.Context, organs []domain.Organ) ([]domain.RecipientProfile, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT `+recipientColumns+` FROM recipients
        WHERE verified AND required_organ = ANY($1)
        ORDER BY created_at, id
    `, organStrings(organs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.RecipientProfile
	for rows.Next() {
		r, err := scanRecipient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (db *DB) SetRecipientVerification(ctx context.Context, id string, status domain.RequestStatus, hospitalID *string, at *time.Time) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	verified := status == domain.RequestVerified
	tag, err := db.Pool.Exec(ctx, `
        UPDATE recipients SET request_status = $2, verified = $3,
            verified_by = CASE WHEN $3 THEN $4::uuid ELSE verified_by END,
            verified_at = CASE WHEN $3 THEN $5::timestamptz ELSE verified_at END
        WHERE id = $1
    `, id, string(status), verified, hospitalID, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// HospitalRepository

func scanHospital(row pgx.Row) (domain.Hospital, error) {
	var h domain.Hospital
	err := row.Scan(&h.ID, &h.UserID, &h.Name, &h.Location.City, &h.Location.State, &h.CreatedAt)
	return h, err
}

func (db *DB) CreateHospital(ctx context.Context, h domain.Hospital) (domain.Hospital, error) {
	return scanHospital(db.Pool.QueryRow(ctx, `
        INSERT INTO hospitals (user_id, name, city, state)
        VALUES ($1, $2, $3, $4)
        RETURNING id::text, user_id, name, city, state, created_at
    `, h.UserID, h.Name, h.Location.City, h.Location.State))
}

func (db *DB) GetHospital(ctx context.Context, id string) (domain.Hospital, bool, error) {
	if !validID(id) {
		return domain.Hospital{}, false, nil
	}
	h, err := scanHospital(db.Pool.QueryRow(ctx, `
        SELECT id::text, user_id, name, city, state, created_at FROM hospitals WHERE id = $1
    `, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return h, false, nil
	}
	return h, err == nil, err
}
