package repository

import (
    "context"
    "database/sql"

    "github.com/eventflow/registration/internal/model"
)

// DiscountRepo provides read access to the event_discounts table.
// Discount rules are configured per event by organisers; the pricing
// engine loads them once per rebuild and never writes them.
type DiscountRepo struct {
    db *sql.DB
}

// NewDiscountRepo returns a new DiscountRepo bound to the given database.
func NewDiscountRepo(db *sql.DB) *DiscountRepo { return &DiscountRepo{db: db} }

// ListByEvent returns all discount rules configured for an event in
// creation order. The rebuild applies every qualifying rule in this
// order; is_stackable and priority are loaded but intentionally not
// used for ordering or exclusion.
func (r *DiscountRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.Discount, error) {
    const q = `SELECT id, event_id, code, label, scope, kind, value, starts_at, ends_at,
                      requires_role, min_attendees, is_stackable, priority, max_amount, created_at
               FROM event_discounts WHERE event_id = ? ORDER BY created_at, id`
    rows, err := r.db.QueryContext(ctx, q, eventID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    discounts := make([]model.Discount, 0)
    for rows.Next() {
        var d model.Discount
        var code, requiresRole sql.NullString
        var startsAt, endsAt sql.NullTime
        var minAttendees, priority sql.NullInt64
        var maxAmount sql.NullFloat64
        if err := rows.Scan(
            &d.ID, &d.EventID, &code, &d.Label, &d.Scope, &d.Kind, &d.Value, &startsAt, &endsAt,
            &requiresRole, &minAttendees, &d.IsStackable, &priority, &maxAmount, &d.CreatedAt,
        ); err != nil {
            return nil, err
        }
        if code.Valid {
            v := code.String
            d.Code = &v
        }
        if startsAt.Valid {
            t := startsAt.Time
            d.StartsAt = &t
        }
        if endsAt.Valid {
            t := endsAt.Time
            d.EndsAt = &t
        }
        if requiresRole.Valid {
            v := requiresRole.String
            d.RequiresRole = &v
        }
        if minAttendees.Valid {
            n := int(minAttendees.Int64)
            d.MinAttendees = &n
        }
        if priority.Valid {
            n := int(priority.Int64)
            d.Priority = &n
        }
        if maxAmount.Valid {
            v := maxAmount.Float64
            d.MaxAmount = &v
        }
        discounts = append(discounts, d)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return discounts, nil
}
