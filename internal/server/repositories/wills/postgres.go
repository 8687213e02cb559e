// Package wills provides the PostgreSQL-backed Will Store plus an in-memory
// implementation for tests.
package wills

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lasttx/willkeeper/internal/common"
	"github.com/lasttx/willkeeper/internal/cryptox"
	"github.com/lasttx/willkeeper/internal/dbx"
	"github.com/lasttx/willkeeper/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or
// *sql.Tx). Personal messages are encrypted at rest with the given cipher.
type PostgresRepository struct {
	db     dbx.DBTX
	cipher *cryptox.Cipher
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX, cipher *cryptox.Cipher) *PostgresRepository {
	return &PostgresRepository{db: db, cipher: cipher}
}

const willColumns = `id, owner, beneficiaries, inactivity_seconds, last_activity,
	personal_message, personal_message_nonce, status, schedule_token, reminder_token,
	attachment_key, claimed_by, claimed_at, created_at, updated_at`

func (r *PostgresRepository) sealMessage(w *models.Will) ([]byte, []byte, error) {
	if w.PersonalMessage == "" {
		return nil, nil, nil
	}
	if r.cipher == nil {
		return []byte(w.PersonalMessage), nil, nil
	}
	return r.cipher.Encrypt([]byte(w.PersonalMessage))
}

func (r *PostgresRepository) openMessage(ciphertext, nonce []byte) (string, error) {
	if len(ciphertext) == 0 {
		return "", nil
	}
	if r.cipher == nil || len(nonce) == 0 {
		return string(ciphertext), nil
	}
	plaintext, err := r.cipher.Decrypt(ciphertext, nonce)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// Create inserts a new will row.
func (r *PostgresRepository) Create(ctx context.Context, will *models.Will) error {
	beneficiaries, err := json.Marshal(will.Beneficiaries)
	if err != nil {
		return fmt.Errorf("marshal beneficiaries: %w", err)
	}
	message, nonce, err := r.sealMessage(will)
	if err != nil {
		return fmt.Errorf("seal message: %w", err)
	}

	query := `
		INSERT INTO wills (id, owner, beneficiaries, inactivity_seconds, last_activity,
			personal_message, personal_message_nonce, status, schedule_token, reminder_token,
			attachment_key, claimed_by, claimed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err = r.db.ExecContext(ctx, query,
		will.ID, will.Owner, beneficiaries, int64(will.InactivityDuration/time.Second), will.LastActivity,
		message, nonce, string(will.Status), will.ScheduleToken, will.ReminderToken,
		will.AttachmentKey, will.ClaimedBy, nullTime(will.ClaimedAt), will.CreatedAt, will.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	return nil
}

// Get returns the will by id, or common.ErrNotFound.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Will, error) {
	query := `SELECT ` + willColumns + ` FROM wills WHERE id = $1`
	will, err := r.scanWill(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	return will, nil
}

// ListByOwner returns the owner's wills, newest first.
func (r *PostgresRepository) ListByOwner(ctx context.Context, owner string) ([]*models.Will, error) {
	query := `SELECT ` + willColumns + ` FROM wills WHERE owner = $1 ORDER BY created_at DESC`
	return r.queryWills(ctx, query, owner)
}

// ListByStatus returns every will in the given status.
func (r *PostgresRepository) ListByStatus(ctx context.Context, status models.WillStatus) ([]*models.Will, error) {
	query := `SELECT ` + willColumns + ` FROM wills WHERE status = $1`
	return r.queryWills(ctx, query, string(status))
}

// UpdateIfStatus performs the conditional write that arbitrates all races:
// the row is updated only while its status still matches expected. Zero rows
// affected means either a lost race (ErrStatusConflict) or a missing record
// (ErrNotFound).
func (r *PostgresRepository) UpdateIfStatus(ctx context.Context, expected models.WillStatus, will *models.Will) error {
	beneficiaries, err := json.Marshal(will.Beneficiaries)
	if err != nil {
		return fmt.Errorf("marshal beneficiaries: %w", err)
	}
	message, nonce, err := r.sealMessage(will)
	if err != nil {
		return fmt.Errorf("seal message: %w", err)
	}

	query := `
		UPDATE wills SET
			beneficiaries = $1,
			inactivity_seconds = $2,
			last_activity = $3,
			personal_message = $4,
			personal_message_nonce = $5,
			status = $6,
			schedule_token = $7,
			reminder_token = $8,
			attachment_key = $9,
			claimed_by = $10,
			claimed_at = $11,
			updated_at = $12
		WHERE id = $13 AND status = $14
	`
	res, err := r.db.ExecContext(ctx, query,
		beneficiaries, int64(will.InactivityDuration/time.Second), will.LastActivity,
		message, nonce, string(will.Status), will.ScheduleToken, will.ReminderToken,
		will.AttachmentKey, will.ClaimedBy, nullTime(will.ClaimedAt), will.UpdatedAt,
		will.ID, string(expected))
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %v", common.ErrStore, err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		// Distinguish a lost race from a missing record.
		var exists bool
		err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM wills WHERE id = $1)`, will.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrStore, err)
		}
		if exists {
			return common.ErrStatusConflict
		}
		return common.ErrNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// HardDelete removes the row outright.
func (r *PostgresRepository) HardDelete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM wills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PostgresRepository) scanWill(row rowScanner) (*models.Will, error) {
	var (
		w             models.Will
		beneficiaries []byte
		seconds       int64
		message       []byte
		nonce         []byte
		status        string
		claimedAt     sql.NullTime
	)
	err := row.Scan(&w.ID, &w.Owner, &beneficiaries, &seconds, &w.LastActivity,
		&message, &nonce, &status, &w.ScheduleToken, &w.ReminderToken,
		&w.AttachmentKey, &w.ClaimedBy, &claimedAt, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(beneficiaries, &w.Beneficiaries); err != nil {
		return nil, fmt.Errorf("unmarshal beneficiaries: %w", err)
	}
	w.InactivityDuration = time.Duration(seconds) * time.Second
	w.Status = models.WillStatus(status)
	if claimedAt.Valid {
		w.ClaimedAt = claimedAt.Time
	}
	w.PersonalMessage, err = r.openMessage(message, nonce)
	if err != nil {
		return nil, fmt.Errorf("open message: %w", err)
	}
	return &w, nil
}

func (r *PostgresRepository) queryWills(ctx context.Context, query string, args ...any) ([]*models.Will, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	defer rows.Close()

	var result []*models.Will
	for rows.Next() {
		w, err := r.scanWill(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
	}
	return result, nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
