package repository

import (
    "context"
    "database/sql"

    "github.com/eventflow/registration/internal/model"
)

// ItemRepo provides access to the registration_items table, the pricing
// engine's sole persisted output besides the registration total. Items
// are always replaced wholesale: the rebuild deletes every item for a
// registration and reinserts the full set, never updating rows in place.
type ItemRepo struct {
    db *sql.DB
}

// NewItemRepo returns a new ItemRepo bound to the given database.
func NewItemRepo(db *sql.DB) *ItemRepo { return &ItemRepo{db: db} }

// DeleteByRegistration wipes all items for a registration. This is the
// first stage of every rebuild; its failure aborts the whole run so no
// partially-mixed item set can exist.
func (r *ItemRepo) DeleteByRegistration(ctx context.Context, registrationID uint64) error {
    const q = `DELETE FROM registration_items WHERE registration_id = ?`
    _, err := r.db.ExecContext(ctx, q, registrationID)
    return err
}

// InsertBulk inserts multiple items in a single statement. Passing an
// empty slice has no effect and returns nil.
func (r *ItemRepo) InsertBulk(ctx context.Context, items []model.RegistrationItem) error {
    if len(items) == 0 {
        return nil
    }
    query := `INSERT INTO registration_items (registration_id, kind, ref_table, ref_id, qty, unit_price, amount, description) VALUES `
    args := make([]interface{}, 0, len(items)*8)
    for i, it := range items {
        if i > 0 {
            query += ","
        }
        query += "(?, ?, ?, ?, ?, ?, ?, ?)"
        var refID interface{}
        if it.RefID != nil {
            refID = *it.RefID
        }
        args = append(args, it.RegistrationID, it.Kind, it.RefTable, refID, it.Qty, it.UnitPrice, it.Amount, it.Description)
    }
    _, err := r.db.ExecContext(ctx, query, args...)
    return err
}

// SumAmounts returns the sum of all item amounts for a registration.
// COALESCE keeps the result at zero when no items exist.
func (r *ItemRepo) SumAmounts(ctx context.Context, registrationID uint64) (float64, error) {
    const q = `SELECT COALESCE(SUM(amount), 0) FROM registration_items WHERE registration_id = ?`
    var sum float64
    if err := r.db.QueryRowContext(ctx, q, registrationID).Scan(&sum); err != nil {
        return 0, err
    }
    return sum, nil
}

// ListByRegistration returns all items for a registration in insertion
// order, for display on the review page.
func (r *ItemRepo) ListByRegistration(ctx context.Context, registrationID uint64) ([]model.RegistrationItem, error) {
    const q = `SELECT id, registration_id, kind, ref_table, ref_id, qty, unit_price, amount, description, created_at
               FROM registration_items WHERE registration_id = ? ORDER BY id`
    rows, err := r.db.QueryContext(ctx, q, registrationID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    items := make([]model.RegistrationItem, 0)
    for rows.Next() {
        var it model.RegistrationItem
        var refID sql.NullInt64
        if err := rows.Scan(
            &it.ID, &it.RegistrationID, &it.Kind, &it.RefTable, &refID,
            &it.Qty, &it.UnitPrice, &it.Amount, &it.Description, &it.CreatedAt,
        ); err != nil {
            return nil, err
        }
        if refID.Valid {
            id := uint64(refID.Int64)
            it.RefID = &id
        }
        items = append(items, it)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return items, nil
}
