package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"organease/internal/domain"
	"organease/internal/ports"
)

var _ ports.MatchRepository = (*DB)(nil)

const matchColumns = `id::text, donor_id::text, recipient_id::text, organ, score, status, hospital_id::text,
    hospital_approved, approved_at, hospital_notes,
    donor_accepted, donor_accepted_at, recipient_accepted, recipient_accepted_at,
    test_scheduled_at, procedure_scheduled_at, completed_at,
    consent_url, consent_generated_at, version, created_at, updated_at`

func scanMatch(row pgx.Row) (domain.MatchRecord, error) {
	var m domain.MatchRecord
	var organ string
	err := row.Scan(&m.ID, &m.DonorID, &m.RecipientID, &organ, &m.Score, &m.Status, &m.HospitalID,
		&m.HospitalApproved, &m.ApprovedAt, &m.HospitalNotes,
		&m.DonorAccepted, &m.DonorAcceptedAt, &m.RecipientAccepted, &m.RecipientAcceptedAt,
		&m.TestScheduledAt, &m.ProcedureScheduledAt, &m.CompletedAt,
		&m.ConsentURL, &m.ConsentGeneratedAt, &m.Version, &m.CreatedAt, &m.UpdatedAt)
	m.Organ = domain.Organ(organ)
	return m, err
}

// CreateMatch relies on the pair unique constraint: a losing concurrent insert
// falls through to reading the winner's row.
func (db *DB) CreateMatch(ctx context.Context, m domain.MatchRecord) (domain.MatchRecord, bool, error) {
	if !validID(m.DonorID) || !validID(m.RecipientID) {
		return m, false, domain.ErrNotFound
	}
	status := m.Status
	if status == "" {
		status = domain.StatusMatched
	}
	created, err := scanMatch(db.Pool.QueryRow(ctx, `
        INSERT INTO matches (donor_id, recipient_id, organ, score, status, hospital_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (donor_id, recipient_id) DO NOTHING
        RETURNING `+matchColumns,
		m.DonorID, m.RecipientID, string(m.Organ), m.Score, status, m.HospitalID))
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return m, false, err
	}
	existing, found, err := db.GetMatchByPair(ctx, m.DonorID, m.RecipientID)
	if err != nil {
		return m, false, err
	}
	if !found {
		return m, false, domain.ErrConflict
	}
	return existing, false, nil
}

func (db *DB) GetMatch(ctx context.Context, id string) (domain.MatchRecord, bool, error) {
	if !validID(id) {
		return domain.MatchRecord{}, false, nil
	}
	m, err := scanMatch(db.Pool.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return m, false, nil
	}
	return m, err == nil, err
}

func (db *DB) GetMatchByPair(ctx context.Context, donorID, recipientID string) (domain.MatchRecord, bool, error) {
	if !validID(donorID) || !validID(recipientID) {
		return domain.MatchRecord{}, false, nil
	}
	m, err := scanMatch(db.Pool.QueryRow(ctx, `
        SELECT `+matchColumns+` FROM matches WHERE donor_id = $1 AND recipient_id = $2
    `, donorID, recipientID))
	if errors.Is(err, pgx.ErrNoRows) {
		return m, false, nil
	}
	return m, err == nil, err
}

func (db *DB) UpdateMatch(ctx context.Context, m *domain.MatchRecord) error {
	if !validID(m.ID) {
		return domain.ErrNotFound
	}
	next, err := scanMatch(db.Pool.QueryRow(ctx, `
        UPDATE matches SET
            status = $3, hospital_id = $4, hospital_approved = $5, approved_at = $6, hospital_notes = $7,
            donor_accepted = $8, donor_accepted_at = $9, recipient_accepted = $10, recipient_accepted_at = $11,
            test_scheduled_at = $12, procedure_scheduled_at = $13, completed_at = $14,
            version = version + 1, updated_at = now()
        WHERE id = $1 AND version = $2
        RETURNING `+matchColumns,
		m.ID, m.Version, m.Status, m.HospitalID, m.HospitalApproved, m.ApprovedAt, m.HospitalNotes,
		m.DonorAccepted, m.DonorAcceptedAt, m.RecipientAccepted, m.RecipientAcceptedAt,
		m.TestScheduledAt, m.ProcedureScheduledAt, m.CompletedAt))
	if err == nil {
		*m = next
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	var exists bool
	if err := db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM matches WHERE id = $1)`, m.ID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

func (db *DB) SetConsentArtifact(ctx context.Context, id string, url string, at time.Time) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := db.Pool.Exec(ctx, `
        UPDATE matches SET consent_url = $2, consent_generated_at = $3 WHERE id = $1
    `, id, url, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (db *DB) ListMatches(ctx context.Context, f ports.MatchFilter) ([]domain.MatchRecord, error) {
	var where []string
	var args []any
	add := func(column, value string) bool {
		if value == "" {
			return true
		}
		if !validID(value) {
			return false
		}
		args = append(args, value)
		where = append(where, column+" = $"+strconv.Itoa(len(args)))
		return true
	}
	if !add("donor_id", f.DonorID) || !add("recipient_id", f.RecipientID) || !add("hospital_id", f.HospitalID) {
		return nil, nil
	}
	q := `SELECT ` + matchColumns + ` FROM matches`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY created_at, id`

	rows, err := db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.MatchRecord
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
