package repository

import (
    "context"
    "database/sql"

    "github.com/eventflow/registration/internal/model"
)

// MealRepo provides read access to attendee meal passes joined with
// their priced sessions. Only purchased passes are of interest to the
// pricing engine, so the filter lives in the query rather than in Go.
type MealRepo struct {
    db *sql.DB
}

// NewMealRepo returns a new MealRepo bound to the given database.
func NewMealRepo(db *sql.DB) *MealRepo { return &MealRepo{db: db} }

// PurchasedByAttendees returns every purchased meal pass for the given
// attendees, each joined with the session's date, type and price and
// the attendee's name for line-item descriptions. Rows are ordered by
// attendee then session so rebuild output is deterministic.
func (r *MealRepo) PurchasedByAttendees(ctx context.Context, attendeeIDs []uint64) ([]model.PurchasedMeal, error) {
    meals := make([]model.PurchasedMeal, 0)
    if len(attendeeIDs) == 0 {
        return meals, nil
    }
    q := `SELECT p.attendee_id, p.meal_session_id, a.full_name, s.meal_date, s.meal_type, s.price
          FROM attendee_meal_passes p
          JOIN meal_sessions s ON s.id = p.meal_session_id
          JOIN attendees a ON a.id = p.attendee_id
          WHERE p.purchased = 1 AND p.attendee_id IN (` + placeholders(len(attendeeIDs)) + `)
          ORDER BY p.attendee_id, p.meal_session_id`
    rows, err := r.db.QueryContext(ctx, q, idArgs(attendeeIDs)...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    for rows.Next() {
        var m model.PurchasedMeal
        if err := rows.Scan(&m.AttendeeID, &m.MealSessionID, &m.AttendeeName, &m.MealDate, &m.MealType, &m.Price); err != nil {
            return nil, err
        }
        meals = append(meals, m)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return meals, nil
}
