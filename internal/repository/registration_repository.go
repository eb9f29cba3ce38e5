package repository

import (
    "context"
    "database/sql"

    "github.com/eventflow/registration/internal/model"
)

// RegistrationRepo provides access to the registrations table. The
// pricing engine reads registrations for their event reference and
// creation time and writes back the computed total; every other column
// is owned by upstream flows. All timestamps are stored in UTC.
type RegistrationRepo struct {
    db *sql.DB
}

// NewRegistrationRepo returns a new RegistrationRepo bound to the given database.
func NewRegistrationRepo(db *sql.DB) *RegistrationRepo { return &RegistrationRepo{db: db} }

// DB exposes the underlying connection pool so callers can open
// transactions spanning multiple repositories.
func (r *RegistrationRepo) DB() *sql.DB { return r.db }

// GetByID loads a single registration. It returns
// ErrRegistrationNotFound when no row matches.
func (r *RegistrationRepo) GetByID(ctx context.Context, id uint64) (*model.Registration, error) {
    const q = `SELECT id, event_id, created_by, status, amount_total, created_at, updated_at
               FROM registrations WHERE id = ?`
    var reg model.Registration
    err := r.db.QueryRowContext(ctx, q, id).Scan(
        &reg.ID, &reg.EventID, &reg.CreatedBy, &reg.Status, &reg.AmountTotal,
        &reg.CreatedAt, &reg.UpdatedAt,
    )
    if err == sql.ErrNoRows {
        return nil, ErrRegistrationNotFound
    }
    if err != nil {
        return nil, err
    }
    return &reg, nil
}

// UpdateAmountTotal writes the authoritative total computed by the
// pricing rebuild. The value must equal the sum of the registration's
// item amounts at the time of writing.
func (r *RegistrationRepo) UpdateAmountTotal(ctx context.Context, id uint64, total float64) error {
    const q = `UPDATE registrations SET amount_total = ? WHERE id = ?`
    _, err := r.db.ExecContext(ctx, q, total, id)
    return err
}
